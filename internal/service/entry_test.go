package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/FilmThanapol/feeldiary/backend/internal/models"
	"github.com/FilmThanapol/feeldiary/backend/internal/repository"
)

// mockMoodEntryRepository is a mock implementation of MoodEntryRepository for testing
type mockMoodEntryRepository struct {
	entries     map[string]*models.MoodEntry // "userID/date" -> entry
	upsertCalls int
	failWith    error
}

func newMockMoodEntryRepository() *mockMoodEntryRepository {
	return &mockMoodEntryRepository{
		entries: make(map[string]*models.MoodEntry),
	}
}

func entryKey(userID, date string) string {
	return userID + "/" + date
}

func (m *mockMoodEntryRepository) Upsert(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.upsertCalls++
	key := entryKey(entry.UserID, entry.Date)
	if existing, ok := m.entries[key]; ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	} else {
		entry.ID = fmt.Sprintf("entry-%d", len(m.entries)+1)
		entry.CreatedAt = time.Now()
	}
	entry.UpdatedAt = time.Now()
	m.entries[key] = entry
	return entry, nil
}

func (m *mockMoodEntryRepository) GetByDate(ctx context.Context, userID, date string) (*models.MoodEntry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if entry, ok := m.entries[entryKey(userID, date)]; ok {
		return entry, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockMoodEntryRepository) ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []models.MoodEntry
	for _, entry := range m.entries {
		if entry.UserID == userID {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (m *mockMoodEntryRepository) ListByUserRange(ctx context.Context, userID, from, to string) ([]models.MoodEntry, error) {
	return m.ListByUser(ctx, userID)
}

func (m *mockMoodEntryRepository) DeleteByDate(ctx context.Context, userID, date string) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.entries, entryKey(userID, date))
	return nil
}

func TestSaveEntry_CreatesWithDerivedEmoji(t *testing.T) {
	repo := newMockMoodEntryRepository()
	svc := NewMoodEntryService(repo)

	entry, err := svc.SaveEntry(context.Background(), "user-1", &models.CreateMoodEntryRequest{
		Date:      "2024-03-10",
		MoodScale: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.MoodScale != "4" {
		t.Errorf("expected stored scale \"4\", got %q", entry.MoodScale)
	}
	if entry.MoodEmoji != models.ScaleEmoji(4) {
		t.Errorf("expected emoji derived from scale, got %q", entry.MoodEmoji)
	}
	if entry.Notes != nil {
		t.Errorf("expected nil notes, got %q", *entry.Notes)
	}
}

func TestSaveEntry_SameDateUpserts(t *testing.T) {
	repo := newMockMoodEntryRepository()
	svc := NewMoodEntryService(repo)
	ctx := context.Background()

	first, err := svc.SaveEntry(ctx, "user-1", &models.CreateMoodEntryRequest{Date: "2024-03-10", MoodScale: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SaveEntry(ctx, "user-1", &models.CreateMoodEntryRequest{Date: "2024-03-10", MoodScale: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected the same row to be updated, got ids %s and %s", first.ID, second.ID)
	}
	if second.MoodScale != "5" {
		t.Errorf("expected scale updated to 5, got %q", second.MoodScale)
	}
	if len(repo.entries) != 1 {
		t.Errorf("expected a single stored entry, got %d", len(repo.entries))
	}
}

func TestSaveEntry_RejectsBadInput(t *testing.T) {
	svc := NewMoodEntryService(newMockMoodEntryRepository())
	ctx := context.Background()

	_, err := svc.SaveEntry(ctx, "user-1", &models.CreateMoodEntryRequest{Date: "10/03/2024", MoodScale: 3})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for bad date, got %v", err)
	}

	_, err = svc.SaveEntry(ctx, "user-1", &models.CreateMoodEntryRequest{Date: "2024-03-10", MoodScale: 9})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for out-of-range scale, got %v", err)
	}
}

func TestSaveEntry_TrimsNotes(t *testing.T) {
	svc := NewMoodEntryService(newMockMoodEntryRepository())

	notes := "  slept badly  "
	entry, err := svc.SaveEntry(context.Background(), "user-1", &models.CreateMoodEntryRequest{
		Date:      "2024-03-10",
		MoodScale: 2,
		Notes:     &notes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Notes == nil || *entry.Notes != "slept badly" {
		t.Errorf("expected trimmed notes, got %v", entry.Notes)
	}

	empty := "   "
	entry, err = svc.SaveEntry(context.Background(), "user-1", &models.CreateMoodEntryRequest{
		Date:      "2024-03-11",
		MoodScale: 2,
		Notes:     &empty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Notes != nil {
		t.Errorf("expected whitespace-only notes dropped, got %q", *entry.Notes)
	}
}

func TestSaveEntry_CapsMultibyteNotesOnRuneBoundary(t *testing.T) {
	svc := NewMoodEntryService(newMockMoodEntryRepository())
	ctx := context.Background()

	// 500 characters but more than 500 bytes: must be stored unchanged.
	exact := strings.Repeat("a", 498) + "😄😄"
	entry, err := svc.SaveEntry(ctx, "user-1", &models.CreateMoodEntryRequest{
		Date:      "2024-03-10",
		MoodScale: 4,
		Notes:     &exact,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Notes == nil || *entry.Notes != exact {
		t.Errorf("expected a 500-character note kept intact, got %v", entry.Notes)
	}

	// One character over the cap: truncation must not split the emoji.
	over := strings.Repeat("a", 499) + "😄😄"
	entry, err = svc.SaveEntry(ctx, "user-1", &models.CreateMoodEntryRequest{
		Date:      "2024-03-11",
		MoodScale: 4,
		Notes:     &over,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Notes == nil {
		t.Fatal("expected truncated notes, got nil")
	}
	if !utf8.ValidString(*entry.Notes) {
		t.Errorf("truncated notes are not valid UTF-8: %q", *entry.Notes)
	}
	if got := utf8.RuneCountInString(*entry.Notes); got != 500 {
		t.Errorf("expected 500 characters after truncation, got %d", got)
	}
	if !strings.HasSuffix(*entry.Notes, "😄") {
		t.Errorf("expected the truncated note to end on a whole emoji, got %q", *entry.Notes)
	}
}

func TestUpdateEntry_PartialUpdate(t *testing.T) {
	repo := newMockMoodEntryRepository()
	svc := NewMoodEntryService(repo)
	ctx := context.Background()

	notes := "long day"
	if _, err := svc.SaveEntry(ctx, "user-1", &models.CreateMoodEntryRequest{Date: "2024-03-10", MoodScale: 2, Notes: &notes}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scale := 4
	updated, err := svc.UpdateEntry(ctx, "user-1", "2024-03-10", &models.UpdateMoodEntryRequest{MoodScale: &scale})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.MoodScale != "4" {
		t.Errorf("expected scale 4 after update, got %q", updated.MoodScale)
	}
	if updated.MoodEmoji != models.ScaleEmoji(4) {
		t.Errorf("expected emoji refreshed with the scale, got %q", updated.MoodEmoji)
	}
	if updated.Notes == nil || *updated.Notes != "long day" {
		t.Errorf("expected notes preserved, got %v", updated.Notes)
	}
}

func TestUpdateEntry_ExplicitNullClearsNotes(t *testing.T) {
	repo := newMockMoodEntryRepository()
	svc := NewMoodEntryService(repo)
	ctx := context.Background()

	notes := "rough day"
	if _, err := svc.SaveEntry(ctx, "user-1", &models.CreateMoodEntryRequest{Date: "2024-03-10", MoodScale: 2, Notes: &notes}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Present-but-null notes clear the field; an absent field would keep it.
	updated, err := svc.UpdateEntry(ctx, "user-1", "2024-03-10", &models.UpdateMoodEntryRequest{
		Notes: models.NullableString{Set: true, Valid: false},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Notes != nil {
		t.Errorf("expected notes cleared, got %q", *updated.Notes)
	}
}

func TestUpdateEntry_MissingDate(t *testing.T) {
	svc := NewMoodEntryService(newMockMoodEntryRepository())

	scale := 4
	_, err := svc.UpdateEntry(context.Background(), "user-1", "2024-03-10", &models.UpdateMoodEntryRequest{MoodScale: &scale})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateEntry_RejectsBadDate(t *testing.T) {
	svc := NewMoodEntryService(newMockMoodEntryRepository())

	scale := 4
	_, err := svc.UpdateEntry(context.Background(), "user-1", "10/03/2024", &models.UpdateMoodEntryRequest{MoodScale: &scale})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for malformed date, got %v", err)
	}
}

func TestDeleteEntry_ValidatesDate(t *testing.T) {
	svc := NewMoodEntryService(newMockMoodEntryRepository())

	if err := svc.DeleteEntry(context.Background(), "user-1", "yesterday"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
