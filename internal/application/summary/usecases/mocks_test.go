package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogsummarizer/internal/domain/summary"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}

type mockRepository struct {
	CreateFunc  func(ctx context.Context, record *summary.SummaryRecord) error
	GetByIDFunc func(ctx context.Context, recordID string) (*summary.SummaryRecord, error)
	created     []*summary.SummaryRecord
	lookups     []string
}

func (m *mockRepository) Create(ctx context.Context, record *summary.SummaryRecord) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, record); err != nil {
			return err
		}
	}
	m.created = append(m.created, record)
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, recordID string) (*summary.SummaryRecord, error) {
	m.lookups = append(m.lookups, recordID)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, recordID)
	}
	for _, r := range m.created {
		if r.ID() == recordID {
			return r, nil
		}
	}
	return nil, summary.ErrRecordNotFound
}

type mockArchive struct {
	SaveFunc    func(ctx context.Context, record *summary.SummaryRecord) error
	GetByIDFunc func(ctx context.Context, recordID string) (*summary.SummaryRecord, error)
	attempts    []*summary.SummaryRecord
}

func (m *mockArchive) Save(ctx context.Context, record *summary.SummaryRecord) error {
	m.attempts = append(m.attempts, record)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *mockArchive) GetByID(ctx context.Context, recordID string) (*summary.SummaryRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, recordID)
	}
	return nil, summary.ErrRecordNotFound
}
