package stats

import "testing"

func TestBuildInsights_Empty(t *testing.T) {
	ins := BuildInsights(nil)

	if ins.BestDay != "" || ins.WorstDay != "" {
		t.Errorf("expected empty days, got %+v", ins)
	}
	if ins.Trend != TrendStable {
		t.Errorf("expected stable trend, got %s", ins.Trend)
	}
	if len(ins.Recommendations) != 0 {
		t.Errorf("expected no recommendations for empty history, got %v", ins.Recommendations)
	}
}

func TestBuildInsights_HighlightsAndCommonMood(t *testing.T) {
	records := []Record{
		rec("2024-01-01", 3),
		rec("2024-01-02", 1),
		rec("2024-01-03", 3),
		rec("2024-01-04", 5),
		rec("2024-01-05", 3),
	}

	ins := BuildInsights(records)

	if ins.BestDay != "2024-01-04" {
		t.Errorf("expected best day 2024-01-04, got %s", ins.BestDay)
	}
	if ins.WorstDay != "2024-01-02" {
		t.Errorf("expected worst day 2024-01-02, got %s", ins.WorstDay)
	}
	if ins.MostCommonMood != 3 {
		t.Errorf("expected most common mood 3, got %d", ins.MostCommonMood)
	}
}

func TestBuildInsights_WeeklyAverageUsesLastSeven(t *testing.T) {
	records := seq("2024-01-01", 1, 1, 1, 1, 1, 1, 1, 4, 4, 4, 4, 4, 4, 4)

	ins := BuildInsights(records)
	if ins.WeeklyAverage != 4.0 {
		t.Errorf("expected weekly average 4.0 from the last seven, got %v", ins.WeeklyAverage)
	}
	if ins.Trend != TrendImproving {
		t.Errorf("expected improving, got %s", ins.Trend)
	}
}

func TestRecommendations_Tiers(t *testing.T) {
	low := recommendations(2.5, 20)
	if len(low) != 3 {
		t.Errorf("expected 3 tips for a low average, got %d", len(low))
	}

	mid := recommendations(3.5, 20)
	if len(mid) != 2 {
		t.Errorf("expected 2 tips for a middling average, got %d", len(mid))
	}

	high := recommendations(4.5, 20)
	if len(high) != 2 {
		t.Errorf("expected 2 tips for a high average, got %d", len(high))
	}
}

func TestRecommendations_SparseHistoryAddsLoggingTip(t *testing.T) {
	tips := recommendations(4.5, 2)
	found := false
	for _, tip := range tips {
		if tip == "Try to log your mood daily for better insights" {
			found = true
		}
	}
	if !found {
		t.Error("expected the daily-logging tip for a sparse history")
	}

	// The list is capped at three even when the sparse tip applies.
	capped := recommendations(2.0, 2)
	if len(capped) != 3 {
		t.Errorf("expected tips capped at 3, got %d", len(capped))
	}
}
