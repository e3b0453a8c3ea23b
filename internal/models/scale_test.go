package models

import "testing"

func TestScaleLookup(t *testing.T) {
	if ScaleLabel(1) != "Terrible" || ScaleLabel(5) != "Excellent" {
		t.Errorf("unexpected scale labels: %q, %q", ScaleLabel(1), ScaleLabel(5))
	}
	if ScaleEmoji(4) != "😊" {
		t.Errorf("unexpected emoji for scale 4: %q", ScaleEmoji(4))
	}
	if Scale(3).Color != "#eab308" {
		t.Errorf("unexpected color for scale 3: %q", Scale(3).Color)
	}
}

func TestScaleOutOfRangeFallsBackToNeutral(t *testing.T) {
	for _, scale := range []int{0, 6, -1, 99} {
		if ValidScale(scale) {
			t.Errorf("expected %d to be invalid", scale)
		}
		if got := Scale(scale); got != Scale(3) {
			t.Errorf("expected neutral fallback for %d, got %+v", scale, got)
		}
	}
}
