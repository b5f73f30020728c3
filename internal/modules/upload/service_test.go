package upload

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skillsconnect/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestUpload(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Document{}))

	return NewService(NewRepository(db), t.TempDir(), "/static/documents")
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestStore_SavesPNGUnderUUIDName(t *testing.T) {
	svc := newTestUpload(t)

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	doc, err := svc.Store(context.Background(), 7, fileHeader(t, "certificate.png", content))
	require.NoError(t, err)

	assert.Equal(t, "image/png", doc.MimeType)
	assert.Equal(t, "certificate.png", doc.OriginalName)
	assert.Equal(t, int64(7), doc.UserID)
	assert.True(t, strings.HasPrefix(doc.FileURL, "/static/documents/"))

	// Stored name is the uuid, not the client-supplied name
	assert.NotContains(t, filepath.Base(doc.FilePath), "certificate")

	abs := filepath.Join(svc.baseDir, doc.FilePath)
	info, err := os.Stat(abs)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), info.Size())
}

func TestStore_RejectsDisallowedType(t *testing.T) {
	svc := newTestUpload(t)

	_, err := svc.Store(context.Background(), 7, fileHeader(t, "notes.txt", []byte("plain text, not a document scan")))
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestStore_RejectsEmptyFile(t *testing.T) {
	svc := newTestUpload(t)

	_, err := svc.Store(context.Background(), 7, fileHeader(t, "empty.png", nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestDelete_OwnerOnly(t *testing.T) {
	svc := newTestUpload(t)
	ctx := context.Background()

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 16)...)
	doc, err := svc.Store(ctx, 7, fileHeader(t, "id.png", content))
	require.NoError(t, err)

	err = svc.Delete(ctx, doc.ID, 8)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.Delete(ctx, doc.ID, 7))

	_, err = svc.GetByID(ctx, doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, statErr := os.Stat(filepath.Join(svc.baseDir, doc.FilePath))
	assert.True(t, os.IsNotExist(statErr))
}

func TestListByUser(t *testing.T) {
	svc := newTestUpload(t)
	ctx := context.Background()

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 16)...)
	_, err := svc.Store(ctx, 7, fileHeader(t, "a.png", content))
	require.NoError(t, err)
	_, err = svc.Store(ctx, 9, fileHeader(t, "b.png", content))
	require.NoError(t, err)

	docs, err := svc.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a.png", docs[0].OriginalName)
}
