package service

import (
	"context"
	"io"
)

// PhotoStorage persists uploaded bootcamp photos.
type PhotoStorage interface {
	// Save writes the content under name, replacing any previous file with that name.
	Save(ctx context.Context, name, contentType string, r io.Reader) error
}
