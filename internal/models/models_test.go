package models

import (
	"testing"
	"time"
)

func TestNextID(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	base := now.UnixMilli()

	tests := []struct {
		name string
		last int64
		want int64
	}{
		{"no previous id", 0, base},
		{"older previous id", base - 100, base},
		{"same millisecond", base, base + 1},
		{"clock went backwards", base + 50, base + 51},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(now, tt.last); got != tt.want {
				t.Errorf("NextID = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntensityBand(t *testing.T) {
	tests := []struct {
		intensity int
		want      string
	}{
		{1, "low"},
		{3, "low"},
		{4, "medium"},
		{6, "medium"},
		{7, "high"},
		{9, "high"},
	}
	for _, tt := range tests {
		got := Trigger{Intensity: tt.intensity}.IntensityBand()
		if got != tt.want {
			t.Errorf("IntensityBand(%d) = %s, want %s", tt.intensity, got, tt.want)
		}
	}
}

func TestMoodValid(t *testing.T) {
	for _, m := range Moods() {
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
	}
	if Mood("ecstatic").Valid() {
		t.Error("unknown mood should be invalid")
	}
}
