package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lexasta/internal/domain"
	"lexasta/internal/export"
	"lexasta/internal/service"
)

// MockBatchService is a mock implementation of service.BatchService.
type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) Create(ctx context.Context) domain.BatchSnapshot {
	args := m.Called(ctx)
	return args.Get(0).(domain.BatchSnapshot)
}

func (m *MockBatchService) Get(ctx context.Context, id uuid.UUID) (domain.BatchSnapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.BatchSnapshot), args.Error(1)
}

func (m *MockBatchService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBatchService) AddFiles(ctx context.Context, id uuid.UUID, files []service.FileInput) (*service.AddFilesResult, error) {
	args := m.Called(ctx, id, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AddFilesResult), args.Error(1)
}

func (m *MockBatchService) RemoveFile(ctx context.Context, id, fileID uuid.UUID) error {
	args := m.Called(ctx, id, fileID)
	return args.Error(0)
}

func (m *MockBatchService) Reset(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBatchService) Analyze(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBatchService) Run(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBatchService) Report(ctx context.Context, id uuid.UUID, format export.Format) (*service.RenderedReport, error) {
	args := m.Called(ctx, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedReport), args.Error(1)
}

func (m *MockBatchService) Archive(ctx context.Context, id uuid.UUID, format export.Format) (*service.ArchiveResult, error) {
	args := m.Called(ctx, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchiveResult), args.Error(1)
}
