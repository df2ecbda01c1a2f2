// Package noop is the ObjectStorage used when no archive bucket is configured.
package noop

import (
	"context"

	"lexasta/internal/domain"
	"lexasta/internal/port"
)

// Storage rejects every operation with domain.ErrArchiveDisabled.
type Storage struct{}

// New returns a disabled ObjectStorage.
func New() port.ObjectStorage { return Storage{} }

func (Storage) Enabled() bool { return false }

func (Storage) Upload(context.Context, port.UploadInput) (*port.UploadOutput, error) {
	return nil, domain.ErrArchiveDisabled
}

func (Storage) Delete(context.Context, string) error { return domain.ErrArchiveDisabled }

func (Storage) GetPresignedURL(context.Context, string, int64) (string, error) {
	return "", domain.ErrArchiveDisabled
}
