package models

// ScaleInfo describes one step of the 1-5 mood scale.
type ScaleInfo struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// MinScale and MaxScale bound the valid mood scale.
const (
	MinScale = 1
	MaxScale = 5
)

// moodScaleTable is the single canonical scale -> {emoji, label, color} mapping.
// Every view and the stats engine derive display values from here rather than
// re-declaring their own arrays.
var moodScaleTable = [5]ScaleInfo{
	{Emoji: "😢", Label: "Terrible", Color: "#ef4444"},
	{Emoji: "😞", Label: "Bad", Color: "#f97316"},
	{Emoji: "😐", Label: "Okay", Color: "#eab308"},
	{Emoji: "😊", Label: "Good", Color: "#22c55e"},
	{Emoji: "😄", Label: "Excellent", Color: "#3b82f6"},
}

// ValidScale reports whether scale is within [MinScale, MaxScale].
func ValidScale(scale int) bool {
	return scale >= MinScale && scale <= MaxScale
}

// Scale returns the display info for a scale value. Out-of-range values
// return the neutral middle step so display code never indexes out of bounds.
func Scale(scale int) ScaleInfo {
	if !ValidScale(scale) {
		return moodScaleTable[2]
	}
	return moodScaleTable[scale-1]
}

// ScaleEmoji returns the emoji for a scale value.
func ScaleEmoji(scale int) string {
	return Scale(scale).Emoji
}

// ScaleLabel returns the label for a scale value.
func ScaleLabel(scale int) string {
	return Scale(scale).Label
}
