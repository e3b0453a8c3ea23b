package service

import (
	"context"

	"github.com/FilmThanapol/feeldiary/backend/internal/models"
	"github.com/FilmThanapol/feeldiary/backend/internal/stats"
)

// MoodEntryService defines the interface for mood entry business logic
type MoodEntryService interface {
	SaveEntry(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error)
	GetEntry(ctx context.Context, userID, date string) (*models.MoodEntry, error)
	ListEntries(ctx context.Context, userID string) ([]models.MoodEntry, error)
	UpdateEntry(ctx context.Context, userID, date string, req *models.UpdateMoodEntryRequest) (*models.MoodEntry, error)
	DeleteEntry(ctx context.Context, userID, date string) error
}

// AnalyticsService defines the interface for mood analytics business logic
type AnalyticsService interface {
	Dashboard(ctx context.Context, userID string, days int) (*DashboardResponse, error)
	Patterns(ctx context.Context, userID, rangeKey string) (*PatternsResponse, error)
	Heatmap(ctx context.Context, userID string, window int) (*HeatmapResponse, error)
	Predictions(ctx context.Context, userID string) (*stats.Forecast, error)
}

// InsightsService defines the interface for the insights panel
type InsightsService interface {
	Insights(ctx context.Context, userID string) (*stats.Insights, error)
}

// ExportService defines the interface for data export
type ExportService interface {
	ExportCSV(ctx context.Context, userID string) (string, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}
