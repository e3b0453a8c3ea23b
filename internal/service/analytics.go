package service

import (
	"context"
	"fmt"
	"time"

	"github.com/FilmThanapol/feeldiary/backend/internal/logger"
	"github.com/FilmThanapol/feeldiary/backend/internal/repository"
	"github.com/FilmThanapol/feeldiary/backend/internal/stats"
)

// DashboardResponse is the summary card set for the dashboard view.
type DashboardResponse struct {
	Summary     stats.Summary  `json:"summary"`
	WeeklyTrend []stats.Bucket `json:"weekly_trend"`
}

// PatternsResponse is the period-aggregation payload for the analytics view.
type PatternsResponse struct {
	Buckets      []stats.Bucket `json:"buckets"`
	WeeklyTrend  []stats.Bucket `json:"weekly_trend"`
	Distribution [5]int         `json:"distribution"`
}

// HeatmapResponse is the calendar heatmap payload: the day grid plus its
// monthly rollup and window-level stats.
type HeatmapResponse struct {
	Days    []stats.DayCell `json:"days"`
	Monthly []stats.Bucket  `json:"monthly"`
	Stats   stats.YearStats `json:"stats"`
}

type analyticsService struct {
	entryRepo repository.MoodEntryRepository
	log       logger.Logger
	now       func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(entryRepo repository.MoodEntryRepository, log logger.Logger) AnalyticsService {
	return &analyticsService{
		entryRepo: entryRepo,
		log:       log,
		now:       time.Now,
	}
}

// load fetches the user's history and normalizes it into engine records.
// Malformed rows are skipped, not fatal; the skip count is logged so bad data
// stays visible without breaking the views.
func (s *analyticsService) load(ctx context.Context, userID string) ([]stats.Record, error) {
	entries, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}

	records, skipped := stats.Normalize(entries)
	if skipped > 0 {
		s.log.WithContext(ctx).Warn("skipped malformed mood entries",
			logger.String("user_id", userID),
			logger.Int("skipped", skipped),
		)
	}

	return records, nil
}

func (s *analyticsService) Dashboard(ctx context.Context, userID string, days int) (*DashboardResponse, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive", ErrInvalidInput)
	}

	records, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	anchor := s.now().UTC()
	cutoff := anchor.Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))
	windowed := make([]stats.Record, 0, len(records))
	for _, r := range records {
		if !r.Date.Before(cutoff) {
			windowed = append(windowed, r)
		}
	}

	return &DashboardResponse{
		Summary:     stats.Summarize(windowed, anchor),
		WeeklyTrend: stats.WeeklyTrend(windowed),
	}, nil
}

// patternKeys maps the API's range parameter onto aggregation keys.
var patternKeys = map[string]stats.BucketKey{
	"weekday": stats.ByWeekday,
	"week":    stats.ByISOWeek,
	"month":   stats.ByMonth,
}

func (s *analyticsService) Patterns(ctx context.Context, userID, rangeKey string) (*PatternsResponse, error) {
	key, ok := patternKeys[rangeKey]
	if !ok {
		return nil, fmt.Errorf("%w: range must be one of weekday, week, month", ErrInvalidInput)
	}

	records, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets, err := stats.Aggregate(records, key)
	if err != nil {
		return nil, err
	}

	return &PatternsResponse{
		Buckets:      buckets,
		WeeklyTrend:  stats.WeeklyTrend(records),
		Distribution: stats.Distribution(records),
	}, nil
}

func (s *analyticsService) Heatmap(ctx context.Context, userID string, window int) (*HeatmapResponse, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive", ErrInvalidInput)
	}

	// The grid only covers the window, so fetch just that date range.
	anchor := s.now().UTC()
	end := anchor.Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(window - 1))

	entries, err := s.entryRepo.ListByUserRange(ctx, userID,
		start.Format(stats.DateLayout), end.Format(stats.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}

	records, skipped := stats.Normalize(entries)
	if skipped > 0 {
		s.log.WithContext(ctx).Warn("skipped malformed mood entries",
			logger.String("user_id", userID),
			logger.Int("skipped", skipped),
		)
	}
	days, err := stats.Heatmap(records, anchor, window)
	if err != nil {
		return nil, err
	}
	monthly, err := stats.MonthlyRollup(records, anchor, window)
	if err != nil {
		return nil, err
	}
	windowStats, err := stats.WindowStats(records, anchor, window)
	if err != nil {
		return nil, err
	}

	return &HeatmapResponse{
		Days:    days,
		Monthly: monthly,
		Stats:   windowStats,
	}, nil
}

func (s *analyticsService) Predictions(ctx context.Context, userID string) (*stats.Forecast, error) {
	records, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	forecast := stats.Predict(records)
	return &forecast, nil
}
