package stats

import (
	"fmt"
	"time"
)

// LoggingStreak counts consecutive calendar days with an entry, ending at
// anchor and scanning backward day by day until the first missing day. The
// scan depth is bounded by maxDays, supplied by the caller because different
// views use different bounds (the dashboard scans 30 days, the heatmap 365).
// maxDays must be positive; a non-positive bound is a programming error.
func LoggingStreak(records []Record, anchor time.Time, maxDays int) (int, error) {
	if maxDays <= 0 {
		return 0, fmt.Errorf("logging streak: maxDays must be positive, got %d", maxDays)
	}

	logged := make(map[string]bool, len(records))
	for _, r := range records {
		logged[r.DateKey()] = true
	}

	streak := 0
	day := anchor.UTC().Truncate(24 * time.Hour)
	for i := 0; i < maxDays; i++ {
		if !logged[day.Format(DateLayout)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak, nil
}

// PositiveStreaks scans records in list order (chronological after Normalize)
// and counts runs of consecutive entries with scale >= 4. This is a count over
// the record sequence, not calendar days: gaps between dates do not reset the
// run. Returns the run length at the end of the scan and the longest run seen.
func PositiveStreaks(records []Record) (current, longest int) {
	for _, r := range records {
		if r.Scale >= 4 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return current, longest
}
