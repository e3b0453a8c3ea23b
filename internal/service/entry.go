package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/FilmThanapol/feeldiary/backend/internal/models"
	"github.com/FilmThanapol/feeldiary/backend/internal/repository"
	"github.com/FilmThanapol/feeldiary/backend/internal/stats"
)

// ErrInvalidInput marks request validation failures the transport layer maps
// to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

type moodEntryService struct {
	entryRepo repository.MoodEntryRepository
}

// NewMoodEntryService creates a new mood entry service
func NewMoodEntryService(entryRepo repository.MoodEntryRepository) MoodEntryService {
	return &moodEntryService{entryRepo: entryRepo}
}

func (s *moodEntryService) SaveEntry(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	if _, err := time.Parse(stats.DateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !models.ValidScale(req.MoodScale) {
		return nil, fmt.Errorf("%w: mood_scale must be between %d and %d", ErrInvalidInput, models.MinScale, models.MaxScale)
	}

	entry := &models.MoodEntry{
		UserID:    userID,
		Date:      req.Date,
		MoodScale: strconv.Itoa(req.MoodScale),
		MoodEmoji: models.ScaleEmoji(req.MoodScale),
		Notes:     normalizeNotes(req.Notes),
	}

	return s.entryRepo.Upsert(ctx, entry)
}

func (s *moodEntryService) GetEntry(ctx context.Context, userID, date string) (*models.MoodEntry, error) {
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return s.entryRepo.GetByDate(ctx, userID, date)
}

func (s *moodEntryService) ListEntries(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	return s.entryRepo.ListByUser(ctx, userID)
}

func (s *moodEntryService) UpdateEntry(ctx context.Context, userID, date string, req *models.UpdateMoodEntryRequest) (*models.MoodEntry, error) {
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	existing, err := s.entryRepo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	scale := existing.MoodScale
	emoji := existing.MoodEmoji
	if req.MoodScale != nil {
		if !models.ValidScale(*req.MoodScale) {
			return nil, fmt.Errorf("%w: mood_scale must be between %d and %d", ErrInvalidInput, models.MinScale, models.MaxScale)
		}
		scale = strconv.Itoa(*req.MoodScale)
		emoji = models.ScaleEmoji(*req.MoodScale)
	}

	notes := existing.Notes
	if req.Notes.Set {
		notes = normalizeNotes(req.Notes.ToPtr())
	}

	entry := &models.MoodEntry{
		UserID:    userID,
		Date:      date,
		MoodScale: scale,
		MoodEmoji: emoji,
		Notes:     notes,
	}

	return s.entryRepo.Upsert(ctx, entry)
}

func (s *moodEntryService) DeleteEntry(ctx context.Context, userID, date string) error {
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return s.entryRepo.DeleteByDate(ctx, userID, date)
}

// normalizeNotes trims whitespace and drops empty notes so the stored shape
// matches what the stats normalizer produces on read.
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := stats.ClipNotes(strings.TrimSpace(*notes))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
