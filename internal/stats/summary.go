package stats

import "time"

// Dashboard policy constants.
const (
	// WeeklyGoal is the target number of logged days per week.
	WeeklyGoal = 7
	// dashboardStreakBound caps the backward scan of the dashboard's
	// logging-streak card.
	dashboardStreakBound = 30
)

// Summary is the dashboard's derived-metric set, recomputed on every call and
// never persisted by the engine.
type Summary struct {
	TotalEntries          int     `json:"total_entries"`
	AverageMood           float64 `json:"average_mood"`
	CurrentStreak         int     `json:"current_streak"` // consecutive logged calendar days
	CurrentPositiveStreak int     `json:"current_positive_streak"`
	LongestPositiveStreak int     `json:"longest_positive_streak"`
	WeeklyProgress        int     `json:"weekly_progress"`
	WeeklyGoal            int     `json:"weekly_goal"`
	Trend                 Trend   `json:"trend"`
	BestMood              int     `json:"best_mood"`
	WorstMood             int     `json:"worst_mood"`
	ImprovementRate       float64 `json:"improvement_rate"`
	Distribution          [5]int  `json:"distribution"`
}

// Summarize computes the dashboard summary over a normalized snapshot. The
// anchor (usually today) fixes "now" for streak and weekly-progress windows so
// results are reproducible in tests. Zero records yield zero values and a
// stable trend.
func Summarize(records []Record, anchor time.Time) Summary {
	s := Summary{
		WeeklyGoal: WeeklyGoal,
		Trend:      TrendStable,
	}
	if len(records) == 0 {
		return s
	}

	s.TotalEntries = len(records)
	s.AverageMood = round1(mean(records))
	s.Trend = Classify(records)
	s.ImprovementRate = ImprovementRate(records)
	s.Distribution = Distribution(records)
	s.CurrentPositiveStreak, s.LongestPositiveStreak = PositiveStreaks(records)

	// Bound is a positive constant, so the error path cannot trigger here.
	s.CurrentStreak, _ = LoggingStreak(records, anchor, dashboardStreakBound)

	end := anchor.UTC().Truncate(24 * time.Hour)
	weekStart := end.AddDate(0, 0, -(WeeklyGoal - 1))
	for _, r := range records {
		if !r.Date.Before(weekStart) && !r.Date.After(end) {
			s.WeeklyProgress++
		}
		if r.Scale > s.BestMood {
			s.BestMood = r.Scale
		}
		if s.WorstMood == 0 || r.Scale < s.WorstMood {
			s.WorstMood = r.Scale
		}
	}

	return s
}
