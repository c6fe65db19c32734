package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

const MaxFileSize = 10 << 20

var (
	ErrDisabled        = errors.New("media uploads are not configured")
	ErrUnsupportedType = errors.New("only image and video files are accepted")
	ErrTooLarge        = errors.New("file exceeds the 10MB limit")
)

// Store persists uploaded files and returns their public URL.
type Store interface {
	Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error)
	Remove(ctx context.Context, url string) error
}

// CheckFile validates a file before upload.
func CheckFile(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return ErrUnsupportedType
	}
	if size > MaxFileSize {
		return ErrTooLarge
	}
	return nil
}

// ObjectName builds a collision-free key that keeps the original extension.
func ObjectName(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
}
