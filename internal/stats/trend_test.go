package stats

import "testing"

func TestClassify_Improving(t *testing.T) {
	// Averages: first half (2+2)/2 = 2.0, second half (4+5)/2 = 4.5.
	records := []Record{
		rec("2024-01-01", 2),
		rec("2024-01-02", 2),
		rec("2024-01-03", 4),
		rec("2024-01-04", 5),
	}

	if got := Classify(records); got != TrendImproving {
		t.Errorf("expected improving, got %s", got)
	}
}

func TestClassify_Declining(t *testing.T) {
	records := []Record{
		rec("2024-01-01", 5),
		rec("2024-01-02", 4),
		rec("2024-01-03", 2),
		rec("2024-01-04", 1),
	}

	if got := Classify(records); got != TrendDeclining {
		t.Errorf("expected declining, got %s", got)
	}
}

func TestClassify_StableWithinThreshold(t *testing.T) {
	// Halves average 3.0 and 3.0; difference 0 is inside the threshold.
	records := []Record{
		rec("2024-01-01", 3),
		rec("2024-01-02", 3),
		rec("2024-01-03", 3),
		rec("2024-01-04", 3),
	}

	if got := Classify(records); got != TrendStable {
		t.Errorf("expected stable for identical values, got %s", got)
	}
}

func TestClassify_ThresholdIsExclusive(t *testing.T) {
	// first half avg 3.0, second half avg 3.3: diff exactly at the
	// threshold stays stable.
	records := []Record{
		rec("2024-01-01", 3),
		rec("2024-01-02", 3),
		rec("2024-01-03", 3),
		rec("2024-01-04", 3),
		rec("2024-01-05", 3),
		rec("2024-01-06", 3),
		rec("2024-01-07", 3),
		rec("2024-01-08", 3),
		rec("2024-01-09", 3),
		rec("2024-01-10", 3),
		rec("2024-01-11", 3),
		rec("2024-01-12", 3),
		rec("2024-01-13", 3),
		rec("2024-01-14", 3),
		rec("2024-01-15", 3),
		rec("2024-01-16", 3),
		rec("2024-01-17", 3),
		rec("2024-01-18", 4),
		rec("2024-01-19", 4),
		rec("2024-01-20", 4), // second half averages 3.3
	}

	if got := Classify(records); got != TrendStable {
		t.Errorf("expected stable at exactly the threshold, got %s", got)
	}
}

func TestClassify_FewerThanTwoRecords(t *testing.T) {
	if got := Classify(nil); got != TrendStable {
		t.Errorf("expected stable for empty input, got %s", got)
	}
	if got := Classify([]Record{rec("2024-01-01", 5)}); got != TrendStable {
		t.Errorf("expected stable for a single record, got %s", got)
	}
}

func TestClassify_OddLengthSplitsExtraToSecondHalf(t *testing.T) {
	// n=5, mid=2: first half {1,1} avg 1.0, second half {1,5,5} avg ~3.67.
	records := []Record{
		rec("2024-01-01", 1),
		rec("2024-01-02", 1),
		rec("2024-01-03", 1),
		rec("2024-01-04", 5),
		rec("2024-01-05", 5),
	}

	if got := Classify(records); got != TrendImproving {
		t.Errorf("expected improving with odd split, got %s", got)
	}
}

func TestImprovementRate(t *testing.T) {
	// first half avg 2.0, second half avg 4.5: (4.5-2)/2*100 = 125.0.
	records := []Record{
		rec("2024-01-01", 2),
		rec("2024-01-02", 2),
		rec("2024-01-03", 4),
		rec("2024-01-04", 5),
	}

	if got := ImprovementRate(records); got != 125.0 {
		t.Errorf("expected 125.0, got %v", got)
	}
}

func TestImprovementRate_ShortInput(t *testing.T) {
	if got := ImprovementRate([]Record{rec("2024-01-01", 4)}); got != 0 {
		t.Errorf("expected 0 for a single record, got %v", got)
	}
}
