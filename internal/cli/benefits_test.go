package cli

import (
	"strings"
	"testing"

	"clearday.dev/clearday/internal/content"
)

func TestBenefitLineMarksUnlocked(t *testing.T) {
	b := content.Benefit{Day: 7, Title: "Better Sleep Patterns"}

	tests := []struct {
		days     int
		unlocked bool
	}{
		{0, false},
		{6, false},
		{7, true},
		{30, true},
	}
	for _, tt := range tests {
		line := benefitLine(b, tt.days)
		if got := strings.HasPrefix(line, "✓"); got != tt.unlocked {
			t.Errorf("benefitLine at day %d = %q, unlocked = %v, want %v", tt.days, line, got, tt.unlocked)
		}
		if !strings.Contains(line, "Day 7: Better Sleep Patterns") {
			t.Errorf("line = %q, missing benefit text", line)
		}
	}
}

func TestFindBenefitCategory(t *testing.T) {
	categories := content.BenefitCategories()

	cat, ok := findBenefitCategory(categories, "physical health")
	if !ok || cat.Name != "Physical Health" {
		t.Errorf("case-insensitive lookup = %+v, %v", cat.Name, ok)
	}
	if _, ok := findBenefitCategory(categories, "astral projection"); ok {
		t.Error("unknown category matched")
	}
}
