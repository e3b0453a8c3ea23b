package models

import "time"

// User represents a user in the system
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoodEntry represents one logged mood for a calendar date.
// mood_scale is stored as a string enum ("1".."5") in Supabase, mirroring the
// original schema; the stats package normalizes it into an integer at its boundary.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD, unique per user
	MoodScale string    `json:"mood_scale"`
	MoodEmoji string    `json:"mood_emoji"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateMoodEntryRequest represents the request to log or re-log a mood for a date.
// Resubmitting for an existing date updates that entry (one entry per user per date).
type CreateMoodEntryRequest struct {
	Date      string  `json:"date" binding:"required"`
	MoodScale int     `json:"mood_scale" binding:"required,min=1,max=5"`
	Notes     *string `json:"notes" binding:"omitempty,max=500"`
}

// UpdateMoodEntryRequest represents the request to update an existing entry.
// Notes distinguishes "clear the notes" (explicit null) from "keep the notes"
// (field absent).
type UpdateMoodEntryRequest struct {
	MoodScale *int           `json:"mood_scale" binding:"omitempty,min=1,max=5"`
	Notes     NullableString `json:"notes"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
