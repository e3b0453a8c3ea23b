package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/FilmThanapol/feeldiary/backend/internal/models"
	"github.com/FilmThanapol/feeldiary/backend/pkg/supabase"
)

type moodEntryRepository struct {
	client *supabase.Client
}

// NewMoodEntryRepository creates a new mood entry repository backed by the
// mood_entries table.
func NewMoodEntryRepository(client *supabase.Client) MoodEntryRepository {
	return &moodEntryRepository{client: client}
}

func (r *moodEntryRepository) Upsert(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	data := map[string]interface{}{
		"user_id":    entry.UserID,
		"date":       entry.Date,
		"mood_scale": entry.MoodScale,
		"mood_emoji": entry.MoodEmoji,
	}
	if entry.Notes != nil {
		data["notes"] = *entry.Notes
	} else {
		data["notes"] = nil
	}

	// One row per user and date: a second save for the same day merges into
	// the existing row instead of failing.
	body, err := r.client.Upsert("mood_entries", data, "user_id,date", "")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert mood entry: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no mood entry returned")
	}

	return &entries[0], nil
}

func (r *moodEntryRepository) GetByDate(ctx context.Context, userID, date string) (*models.MoodEntry, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("eq.%s", date),
	}

	body, err := r.client.Query("mood_entries", query, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}

	return &entries[0], nil
}

func (r *moodEntryRepository) ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "date.asc",
	}

	body, err := r.client.Query("mood_entries", query, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *moodEntryRepository) ListByUserRange(ctx context.Context, userID, from, to string) ([]models.MoodEntry, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("gte.%s", from),
		"order":   "date.asc",
	}
	if to != "" {
		query["and"] = fmt.Sprintf("(date.lte.%s)", to)
	}

	body, err := r.client.Query("mood_entries", query, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *moodEntryRepository) DeleteByDate(ctx context.Context, userID, date string) error {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("eq.%s", date),
	}

	if err := r.client.DeleteWhere("mood_entries", query, ""); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}

	return nil
}
