package validation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// MaxPictureSize is the upload ceiling for profile pictures (5 MiB).
const MaxPictureSize = 5 * 1024 * 1024

// Picture is an in-memory profile picture candidate. MIME is detected
// from the content, never taken from the file extension.
type Picture struct {
	Name string
	Size int64
	MIME string
	Data []byte
}

// NewPicture builds a Picture from raw bytes, sniffing the media type.
func NewPicture(name string, data []byte) *Picture {
	return &Picture{
		Name: name,
		Size: int64(len(data)),
		MIME: mimetype.Detect(data).String(),
		Data: data,
	}
}

// LoadPicture reads a picture file from disk.
func LoadPicture(path string) (*Picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading picture: %w", err)
	}
	return NewPicture(filepath.Base(path), data), nil
}
