package service

import (
	"context"
	"fmt"

	"github.com/FilmThanapol/feeldiary/backend/internal/repository"
	"github.com/FilmThanapol/feeldiary/backend/internal/stats"
)

type exportService struct {
	entryRepo repository.MoodEntryRepository
}

// NewExportService creates a new export service
func NewExportService(entryRepo repository.MoodEntryRepository) ExportService {
	return &exportService{entryRepo: entryRepo}
}

func (s *exportService) ExportCSV(ctx context.Context, userID string) (string, error) {
	entries, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load mood entries: %w", err)
	}

	records, _ := stats.Normalize(entries)
	return stats.ExportCSV(records), nil
}
