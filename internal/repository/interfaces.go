package repository

import (
	"context"
	"errors"

	"github.com/FilmThanapol/feeldiary/backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// MoodEntryRepository defines the interface for mood entry data access.
// Entries are scoped to a single user with at most one entry per calendar
// date; Upsert enforces that uniqueness.
type MoodEntryRepository interface {
	Upsert(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetByDate(ctx context.Context, userID, date string) (*models.MoodEntry, error)
	ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error)
	ListByUserRange(ctx context.Context, userID, from, to string) ([]models.MoodEntry, error)
	DeleteByDate(ctx context.Context, userID, date string) error
}

// UserRepository defines the interface for user profile data access.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
