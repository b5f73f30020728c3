package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// Verification documents are scans and photos; 10 MB is plenty.
	MaxFileSize    = 10 * 1024 * 1024
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/documents"
)

// AllowedMimeTypes: image scans and PDFs only.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// Service stores verification documents on local disk and records them
// in the database.
type Service struct {
	repo       Repository
	baseDir    string
	staticBase string
}

func NewService(repo Repository, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{repo: repo, baseDir: baseDir, staticBase: staticBase}
}

// Store saves the file under a uuid name and records it. MIME type is
// sniffed from content, not trusted from the request.
func (s *Service) Store(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*Document, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d", now.Year(), now.Month())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	id := uuid.New().String()
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := id + ext

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	fileURL := s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/")

	doc := &Document{
		ID:           id,
		UserID:       userID,
		OriginalName: fileHeader.Filename,
		FilePath:     relPath,
		FileURL:      fileURL,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to save document record: %w", err)
	}

	return doc, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Document, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes the physical file and the record. Owner only.
func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.UserID != userID {
		return ErrNotOwner
	}

	absPath := filepath.Join(s.baseDir, doc.FilePath)
	_ = os.Remove(absPath)

	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*Document, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
