package directory

import "errors"

var (
	ErrEmailExists = errors.New("email already registered")
	ErrPhoneExists = errors.New("phone already registered")
	ErrNoServices  = errors.New("at least one service is required")
	ErrForbidden   = errors.New("forbidden")
)
