package stats

// Trend is the coarse three-way classification of mood direction over time.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// trendThreshold is the fixed policy constant for calling a trend: the two
// compared averages must differ by more than this to leave "stable".
const trendThreshold = 0.3

// Classify splits a chronologically sorted record list into a first and second
// half (split point floor(n/2); the extra record of an odd-length list goes to
// the second half), compares the halves' average scales, and labels the
// direction. Fewer than 2 records classify as stable; an empty half's average
// is treated as equal to the other half's, which also yields stable.
func Classify(records []Record) Trend {
	if len(records) < 2 {
		return TrendStable
	}

	mid := len(records) / 2
	firstAvg := mean(records[:mid])
	secondAvg := mean(records[mid:])

	return classifyDiff(secondAvg - firstAvg)
}

func classifyDiff(diff float64) Trend {
	switch {
	case diff > trendThreshold:
		return TrendImproving
	case diff < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// ImprovementRate reports the second half's average as a percentage change
// over the first half's, rounded to one decimal. Returns 0 for fewer than 2
// records or a zero first-half average.
func ImprovementRate(records []Record) float64 {
	if len(records) < 2 {
		return 0
	}

	mid := len(records) / 2
	firstAvg := mean(records[:mid])
	if firstAvg == 0 {
		return 0
	}
	secondAvg := mean(records[mid:])

	return round1((secondAvg - firstAvg) / firstAvg * 100)
}
