package stats

// Prediction window and confidence bounds. The confidence score is a
// monotonic-but-bounded heuristic over the data point count, not a
// statistical estimate.
const (
	predictWindow = 7
	minConfidence = 50
	maxConfidence = 90
	minDataPoints = 7
)

// Forecast is the naive short-horizon mood forecast.
type Forecast struct {
	Trend      Trend   `json:"trend"`
	Confidence int     `json:"confidence"`
	Predicted  float64 `json:"predicted"`
}

// Predict extrapolates a recent-window average forecast from chronologically
// sorted records. Fewer than 7 records is the insufficient-data floor: a
// stable trend with zero confidence, no forecast attempted. Otherwise the
// average of the last 7 records is compared against the 7 before them (or
// against itself when no such prior window exists, so a short history cannot
// fabricate a trend) using the same threshold as the trend classifier.
func Predict(records []Record) Forecast {
	if len(records) < minDataPoints {
		return Forecast{Trend: TrendStable, Confidence: 0}
	}

	recent := records[len(records)-predictWindow:]
	recentAvg := mean(recent)

	priorAvg := recentAvg
	if len(records) >= 2*predictWindow {
		prior := records[len(records)-2*predictWindow : len(records)-predictWindow]
		priorAvg = mean(prior)
	}

	confidence := len(records) * 2
	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return Forecast{
		Trend:      classifyDiff(recentAvg - priorAvg),
		Confidence: confidence,
		Predicted:  round1(recentAvg),
	}
}
