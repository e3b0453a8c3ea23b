package stats

// Insights are the qualitative highlights derived from the full history.
type Insights struct {
	BestDay               string   `json:"best_day"`  // date of the highest recorded mood
	WorstDay              string   `json:"worst_day"` // date of the lowest recorded mood
	MostCommonMood        int      `json:"most_common_mood"`
	LongestPositiveStreak int      `json:"longest_positive_streak"`
	WeeklyAverage         float64  `json:"weekly_average"` // last 7 records
	Trend                 Trend    `json:"trend"`
	Recommendations       []string `json:"recommendations"`
}

// BuildInsights derives the insight panel's values from a normalized snapshot.
// An empty snapshot returns zero values with an empty recommendation list.
func BuildInsights(records []Record) Insights {
	ins := Insights{Trend: TrendStable}
	if len(records) == 0 {
		return ins
	}

	best, worst := records[0], records[0]
	var counts [5]int
	for _, r := range records {
		counts[r.Scale-1]++
		if r.Scale > best.Scale {
			best = r
		}
		if r.Scale < worst.Scale {
			worst = r
		}
	}
	ins.BestDay = best.DateKey()
	ins.WorstDay = worst.DateKey()

	most := 0
	for i, c := range counts {
		if c > counts[most] {
			most = i
		}
	}
	ins.MostCommonMood = most + 1

	_, ins.LongestPositiveStreak = PositiveStreaks(records)

	weekly := records
	if len(weekly) > 7 {
		weekly = weekly[len(weekly)-7:]
	}
	ins.WeeklyAverage = round1(mean(weekly))

	ins.Trend = Classify(records)
	ins.Recommendations = recommendations(ins.WeeklyAverage, len(records))

	return ins
}

// recommendations picks up to three tips keyed off the recent weekly average.
func recommendations(weeklyAvg float64, total int) []string {
	var tips []string

	switch {
	case weeklyAvg < 3:
		tips = append(tips,
			"Consider talking to a friend or counselor about how you're feeling",
			"Try incorporating more physical activity into your routine",
			"Practice mindfulness or meditation for 10 minutes daily",
		)
	case weeklyAvg < 4:
		tips = append(tips,
			"Keep up the good work! Try adding one small positive activity to your day",
			"Consider journaling to identify patterns in your mood",
		)
	default:
		tips = append(tips,
			"You're doing great! Keep maintaining your positive habits",
			"Consider helping others - it can boost your own mood too",
		)
	}

	if total < 5 {
		tips = append(tips, "Try to log your mood daily for better insights")
	}

	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}
