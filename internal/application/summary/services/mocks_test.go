package services

import (
	"context"
	"sync"

	"blogsummarizer/internal/domain/summary"
)

type mockRepository struct {
	mu         sync.Mutex
	CreateFunc func(ctx context.Context, record *summary.SummaryRecord) error
	calls      int
}

func (m *mockRepository) Create(ctx context.Context, record *summary.SummaryRecord) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, recordID string) (*summary.SummaryRecord, error) {
	return nil, summary.ErrRecordNotFound
}

func (m *mockRepository) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockArchive struct {
	mu       sync.Mutex
	SaveFunc func(ctx context.Context, record *summary.SummaryRecord) error
	calls    int
}

func (m *mockArchive) Save(ctx context.Context, record *summary.SummaryRecord) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *mockArchive) GetByID(ctx context.Context, recordID string) (*summary.SummaryRecord, error) {
	return nil, summary.ErrRecordNotFound
}

func (m *mockArchive) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
