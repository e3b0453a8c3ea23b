package stats

import (
	"fmt"
	"time"
)

// DefaultHeatmapWindow is the trailing-year window the heatmap view requests.
const DefaultHeatmapWindow = 365

// DayCell is one calendar day in the heatmap grid. Scale, Emoji and Notes are
// nil for days without an entry.
type DayCell struct {
	Date  string  `json:"date"`
	Scale *int    `json:"mood,omitempty"`
	Emoji *string `json:"emoji,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// YearStats summarizes the entries inside a heatmap window.
type YearStats struct {
	TotalEntries int     `json:"total_entries"`
	AverageMood  float64 `json:"average_mood"`
	BestMood     int     `json:"best_mood"`
	WorstMood    int     `json:"worst_mood"`
	Consistency  int     `json:"consistency"` // percent of window days with an entry
}

// Heatmap produces exactly window day-cells spanning [anchor-(window-1), anchor]
// inclusive, one per calendar day regardless of record presence. Records are
// indexed into a date-keyed map first so the build runs in O(window + n) rather
// than scanning the record list per day. A non-positive window is a contract
// violation.
func Heatmap(records []Record, anchor time.Time, window int) ([]DayCell, error) {
	if window <= 0 {
		return nil, fmt.Errorf("heatmap: window must be positive, got %d", window)
	}

	byDate := make(map[string]Record, len(records))
	for _, r := range records {
		byDate[r.DateKey()] = r
	}

	cells := make([]DayCell, 0, window)
	day := anchor.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(window - 1))
	for i := 0; i < window; i++ {
		key := day.Format(DateLayout)
		cell := DayCell{Date: key}
		if r, ok := byDate[key]; ok {
			scale := r.Scale
			emoji := r.Emoji
			cell.Scale = &scale
			cell.Emoji = &emoji
			if r.Notes != "" {
				notes := r.Notes
				cell.Notes = &notes
			}
		}
		cells = append(cells, cell)
		day = day.AddDate(0, 0, 1)
	}

	return cells, nil
}

// MonthlyRollup buckets the records that fall inside the heatmap window by
// calendar month, via the period aggregator's monthly bucketing.
func MonthlyRollup(records []Record, anchor time.Time, window int) ([]Bucket, error) {
	if window <= 0 {
		return nil, fmt.Errorf("monthly rollup: window must be positive, got %d", window)
	}

	end := anchor.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(window - 1))

	inWindow := make([]Record, 0, len(records))
	for _, r := range records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			inWindow = append(inWindow, r)
		}
	}

	return Aggregate(inWindow, ByMonth)
}

// WindowStats computes the window-level summary shown above the heatmap grid.
func WindowStats(records []Record, anchor time.Time, window int) (YearStats, error) {
	if window <= 0 {
		return YearStats{}, fmt.Errorf("window stats: window must be positive, got %d", window)
	}

	end := anchor.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(window - 1))

	stats := YearStats{}
	sum := 0
	for _, r := range records {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		stats.TotalEntries++
		sum += r.Scale
		if r.Scale > stats.BestMood {
			stats.BestMood = r.Scale
		}
		if stats.WorstMood == 0 || r.Scale < stats.WorstMood {
			stats.WorstMood = r.Scale
		}
	}

	if stats.TotalEntries > 0 {
		stats.AverageMood = round1(float64(sum) / float64(stats.TotalEntries))
		stats.Consistency = stats.TotalEntries * 100 / window
	}

	return stats, nil
}
