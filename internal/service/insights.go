package service

import (
	"context"
	"fmt"

	"github.com/FilmThanapol/feeldiary/backend/internal/repository"
	"github.com/FilmThanapol/feeldiary/backend/internal/stats"
)

type insightsService struct {
	entryRepo repository.MoodEntryRepository
}

// NewInsightsService creates a new insights service
func NewInsightsService(entryRepo repository.MoodEntryRepository) InsightsService {
	return &insightsService{entryRepo: entryRepo}
}

func (s *insightsService) Insights(ctx context.Context, userID string) (*stats.Insights, error) {
	entries, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}

	records, _ := stats.Normalize(entries)
	insights := stats.BuildInsights(records)
	return &insights, nil
}
