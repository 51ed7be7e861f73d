// Package uploads coordinates image assets between multipart requests and
// the storage backend. All three image-bearing resources (blogs, services,
// team members) share this path so the lifecycle rules stay in one place:
// upload on create, delete-old-then-upload-new on replace, best-effort
// delete on document removal.
package uploads

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxImageSize caps multipart image parts (10 MB).
const MaxImageSize = 10 << 20

// FormField is the multipart part name carrying the image.
const FormField = "image"

// Asset identifies a stored image: PublicID is the storage path used for
// deletion, URL is the public address served to clients.
type Asset struct {
	PublicID string
	URL      string
}

// ParseForm parses the request body as multipart when an image may be
// attached, or as a plain form otherwise.
func ParseForm(r *http.Request) error {
	err := r.ParseMultipartForm(MaxImageSize)
	if err == http.ErrNotMultipart {
		return r.ParseForm()
	}
	return err
}

// Image extracts the optional image part from an already-parsed multipart
// request. ok is false when the request carries no image.
func Image(r *http.Request) (file multipart.File, header *multipart.FileHeader, ok bool) {
	file, header, err := r.FormFile(FormField)
	if err != nil || header == nil || header.Size == 0 {
		return nil, nil, false
	}
	return file, header, true
}

// Discard releases the request's multipart temp state. Handlers defer this
// so spilled temp files are removed on every exit path, including validation
// failures and upload errors.
func Discard(r *http.Request, log *zap.Logger) {
	if r.MultipartForm == nil {
		return
	}
	if err := r.MultipartForm.RemoveAll(); err != nil {
		log.Warn("uploads: temp cleanup failed", zap.Error(err))
	}
}

// Put stores an image under folder and returns its asset handle. The path is
// folder/YYYY/MM/uuid8-filename, which keeps listings browsable and names
// collision-free.
func Put(ctx context.Context, store storage.Store, folder, filename string, reader io.Reader, contentType string) (Asset, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now().UTC()
	path := fmt.Sprintf("%s/%04d/%02d/%s-%s",
		folder, now.Year(), now.Month(), uuid.New().String()[:8], sanitizeFilename(filename))

	opts := &storage.PutOptions{ContentType: contentType}
	if err := store.Put(ctx, path, reader, opts); err != nil {
		return Asset{}, fmt.Errorf("failed to upload image: %w", err)
	}

	return Asset{PublicID: path, URL: store.URL(path)}, nil
}

// Remove deletes a stored asset. Failures are logged and swallowed: asset
// deletion is best-effort and must never block the owning document's
// operation.
func Remove(ctx context.Context, store storage.Store, publicID string, log *zap.Logger) {
	if publicID == "" {
		return
	}
	if err := store.Delete(ctx, publicID); err != nil {
		log.Warn("uploads: asset delete failed",
			zap.String("public_id", publicID),
			zap.Error(err))
	}
}

// sanitizeFilename keeps only filesystem- and URL-safe characters, preserving
// the extension when truncation is needed.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
