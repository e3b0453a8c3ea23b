// Package stats is the mood-statistics aggregation engine: pure functions that
// turn a snapshot of mood entries into the derived metrics (streaks, trends,
// period patterns, heatmap grid, predictions) shown across the dashboard,
// analytics, insights and heatmap views. It holds no state between calls and
// performs no I/O; callers fetch a snapshot and re-invoke after each refresh.
package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/FilmThanapol/feeldiary/backend/internal/models"
)

// DateLayout is the calendar-date format used throughout the engine.
const DateLayout = "2006-01-02"

// MaxNotesLen is the notes length cap applied at normalization.
const MaxNotesLen = 500

// Record is the canonical in-memory mood record. All engine components operate
// on normalized, date-ascending []Record produced by Normalize.
type Record struct {
	Date  time.Time // UTC midnight
	Scale int       // 1..5
	Emoji string
	Notes string // "" = absent
}

// DateKey returns the record's date formatted as YYYY-MM-DD.
func (r Record) DateKey() string {
	return r.Date.Format(DateLayout)
}

// Normalize validates and coerces stored entries into canonical Records,
// sorted ascending by date. Entries with an unparseable date or a mood scale
// outside [1,5] are excluded; the second return value is the count of skipped
// entries, surfaced to the caller as a non-fatal diagnostic. Notes are trimmed,
// capped at MaxNotesLen, and a missing emoji is derived from the scale table.
func Normalize(entries []models.MoodEntry) ([]Record, int) {
	records := make([]Record, 0, len(entries))
	skipped := 0

	for _, e := range entries {
		date, err := time.ParseInLocation(DateLayout, e.Date, time.UTC)
		if err != nil {
			skipped++
			continue
		}

		scale, err := strconv.Atoi(strings.TrimSpace(e.MoodScale))
		if err != nil || !models.ValidScale(scale) {
			skipped++
			continue
		}

		notes := ""
		if e.Notes != nil {
			notes = ClipNotes(strings.TrimSpace(*e.Notes))
		}

		emoji := e.MoodEmoji
		if emoji == "" {
			emoji = models.ScaleEmoji(scale)
		}

		records = append(records, Record{
			Date:  date,
			Scale: scale,
			Emoji: emoji,
			Notes: notes,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, skipped
}

// ClipNotes caps notes at MaxNotesLen characters. The cap counts runes, not
// bytes, so a multibyte note is never cut mid-rune into invalid UTF-8.
func ClipNotes(notes string) string {
	if utf8.RuneCountInString(notes) <= MaxNotesLen {
		return notes
	}
	return string([]rune(notes)[:MaxNotesLen])
}

// mean returns the arithmetic mean of the records' scales, 0 for an empty slice.
func mean(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += r.Scale
	}
	return float64(sum) / float64(len(records))
}

// round1 rounds to one decimal place, the precision used for every reported average.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
