package cmd

import (
	"testing"

	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/config"
)

func TestThresholdsFromConfig(t *testing.T) {
	flagHour = 0
	flagMinRating = -1
	cfg := &config.Config{StartHour: 18, MinRating: 6.5}

	hour, rating := thresholds(cfg)
	if hour != 18 {
		t.Errorf("hour = %d, want 18", hour)
	}
	if rating != 6.5 {
		t.Errorf("rating = %g, want 6.5", rating)
	}
}

func TestThresholdsFlagOverrides(t *testing.T) {
	flagHour = 21
	flagMinRating = 8
	defer func() { flagHour = 0; flagMinRating = -1 }()
	cfg := &config.Config{StartHour: 18, MinRating: 6.5}

	hour, rating := thresholds(cfg)
	if hour != 21 {
		t.Errorf("hour = %d, want flag override 21", hour)
	}
	if rating != 8 {
		t.Errorf("rating = %g, want flag override 8", rating)
	}
}

func TestThresholdsZeroRatingOverride(t *testing.T) {
	flagHour = 0
	flagMinRating = 0
	defer func() { flagMinRating = -1 }()
	cfg := &config.Config{StartHour: 18, MinRating: 6.5}

	_, rating := thresholds(cfg)
	if rating != 0 {
		t.Errorf("rating = %g, want explicit 0 override", rating)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		got := formatBytes(tt.input)
		if got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
