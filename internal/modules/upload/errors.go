package upload

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrNotOwner         = errors.New("you do not own this document")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType  = errors.New("file type is not allowed")
	ErrEmptyFile        = errors.New("file is empty")
)
