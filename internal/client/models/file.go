package models

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// FileInput is a file picked for upload.
type FileInput struct {
	Name     string
	MimeType string
	Data     []byte
}

// IsImage reports whether the sniffed type is an image.
func (f *FileInput) IsImage() bool {
	return strings.HasPrefix(f.MimeType, "image/")
}

// FileFromPath reads a local file and sniffs its MIME type from the content.
func FileFromPath(path string) (*FileInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return &FileInput{
		Name:     filepath.Base(path),
		MimeType: mimetype.Detect(data).String(),
		Data:     data,
	}, nil
}

// FileFromReader reads an unnamed stream (e.g. a scanner piped to stdin).
// The name is generated from the time and the sniffed type: images become
// photo_<unix ms>.jpg style names, anything else file_<unix ms><ext>.
func FileFromReader(r io.Reader, now time.Time) (*FileInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	mt := mimetype.Detect(data)

	prefix := "file"
	if strings.HasPrefix(mt.String(), "image/") {
		prefix = "photo"
	}
	return &FileInput{
		Name:     fmt.Sprintf("%s_%d%s", prefix, now.UnixMilli(), mt.Extension()),
		MimeType: mt.String(),
		Data:     data,
	}, nil
}
