package stats

import (
	"fmt"
	"sort"
)

// BucketKey selects how Aggregate groups records.
type BucketKey string

const (
	// ByWeekday buckets by day of week, Sunday first (7 buckets, always complete).
	ByWeekday BucketKey = "weekday"
	// ByISOWeek buckets by ISO year+week, one bucket per week present, ascending.
	ByISOWeek BucketKey = "iso_week"
	// ByMonth buckets by calendar month, January first (12 buckets, always complete).
	ByMonth BucketKey = "month"
)

// Bucket holds one group's average mood and entry count. Empty buckets report
// {Average: 0, Count: 0} by definition, not as a gap.
type Bucket struct {
	Label   string  `json:"label"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

var weekdayLabels = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Aggregate groups records by the given key and computes per-bucket averages
// rounded to one decimal. ByWeekday and ByMonth always return the complete
// fixed-size bucket array in stable order (day 0 = Sunday, month 0 = January)
// so chart rendering is deterministic even with sparse data. An unknown key is
// a contract violation and fails fast.
func Aggregate(records []Record, key BucketKey) ([]Bucket, error) {
	switch key {
	case ByWeekday:
		return aggregateFixed(records, 7, func(r Record) int { return int(r.Date.Weekday()) }, weekdayLabels[:]), nil
	case ByMonth:
		return aggregateFixed(records, 12, func(r Record) int { return int(r.Date.Month()) - 1 }, monthLabels[:]), nil
	case ByISOWeek:
		return aggregateISOWeeks(records), nil
	default:
		return nil, fmt.Errorf("aggregate: unknown bucket key %q", key)
	}
}

func aggregateFixed(records []Record, size int, index func(Record) int, labels []string) []Bucket {
	sums := make([]int, size)
	counts := make([]int, size)
	for _, r := range records {
		i := index(r)
		sums[i] += r.Scale
		counts[i]++
	}

	buckets := make([]Bucket, size)
	for i := 0; i < size; i++ {
		b := Bucket{Label: labels[i], Count: counts[i]}
		if counts[i] > 0 {
			b.Average = round1(float64(sums[i]) / float64(counts[i]))
		}
		buckets[i] = b
	}
	return buckets
}

func aggregateISOWeeks(records []Record) []Bucket {
	type acc struct {
		sum, count int
	}
	byWeek := make(map[string]*acc)
	keys := make([]string, 0)

	for _, r := range records {
		year, week := r.Date.ISOWeek()
		k := fmt.Sprintf("%04d-W%02d", year, week)
		a, ok := byWeek[k]
		if !ok {
			a = &acc{}
			byWeek[k] = a
			keys = append(keys, k)
		}
		a.sum += r.Scale
		a.count++
	}

	sort.Strings(keys)
	buckets := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		a := byWeek[k]
		buckets = append(buckets, Bucket{
			Label:   k,
			Average: round1(float64(a.sum) / float64(a.count)),
			Count:   a.count,
		})
	}
	return buckets
}

// WeeklyTrend splits a chronological record list into consecutive chunks of 7
// entries labeled "Week 1".."Week N", one bucket per non-empty chunk. This is
// the trends-over-time series the analytics view charts.
func WeeklyTrend(records []Record) []Bucket {
	buckets := make([]Bucket, 0, (len(records)+6)/7)
	for i := 0; i < len(records); i += 7 {
		end := i + 7
		if end > len(records) {
			end = len(records)
		}
		chunk := records[i:end]
		buckets = append(buckets, Bucket{
			Label:   fmt.Sprintf("Week %d", i/7+1),
			Average: round1(mean(chunk)),
			Count:   len(chunk),
		})
	}
	return buckets
}

// Distribution counts entries per scale value, index 0 = scale 1.
func Distribution(records []Record) [5]int {
	var dist [5]int
	for _, r := range records {
		dist[r.Scale-1]++
	}
	return dist
}
