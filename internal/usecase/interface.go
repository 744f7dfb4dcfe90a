package usecase

import (
	"context"

	"ark-import/internal/domain"
)

// DatasetRepository locates and loads the input tables.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type DatasetRepository interface {
	FindLatest(ctx context.Context, dir, pattern string) (string, error)
	LoadDataset(ctx context.Context, path string) (*domain.Dataset, error)
	LoadTemplateHeader(ctx context.Context, path string) ([]string, error)
}

// ReportWriter persists the converted table and the run reports.
type ReportWriter interface {
	WriteOutput(ctx context.Context, path string, table *domain.OutputTable) error
	WriteErrorLog(ctx context.Context, dir string, entries []domain.ErrorEntry) (string, error)
	WriteSummary(ctx context.Context, dir string, summary *domain.ProcessingSummary) (string, error)
}
