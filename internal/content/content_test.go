package content

import "testing"

func TestGreetingBoundaries(t *testing.T) {
	tests := []struct {
		hour int
		want TimeOfDay
	}{
		{0, Morning},
		{11, Morning},
		{12, Afternoon},
		{17, Afternoon},
		{18, Evening},
		{21, Evening},
		{22, Night},
		{23, Night},
	}
	for _, tt := range tests {
		if got := TimeOfDayFor(tt.hour); got != tt.want {
			t.Errorf("TimeOfDayFor(%d) = %s, want %s", tt.hour, got, tt.want)
		}
		if Greeting(tt.hour) == "" {
			t.Errorf("Greeting(%d) is empty", tt.hour)
		}
	}
}

func TestReasonProgressCapsAt100(t *testing.T) {
	health, ok := ReasonByID("health")
	if !ok {
		t.Fatal("health reason missing")
	}
	if got := health.Progress(10); got != 5 {
		t.Errorf("Progress(10) = %v, want 5", got)
	}
	if got := health.Progress(1000); got != 100 {
		t.Errorf("Progress(1000) = %v, want capped at 100", got)
	}
}

func TestBenefitUnlocked(t *testing.T) {
	categories := BenefitCategories()
	if len(categories) != 5 {
		t.Fatalf("categories = %d, want 5", len(categories))
	}

	physical := categories[0]
	unlocked := physical.Unlocked(7)
	if len(unlocked) != 3 {
		t.Errorf("unlocked at day 7 = %d benefits, want 3", len(unlocked))
	}
	for _, b := range unlocked {
		if b.Day > 7 {
			t.Errorf("benefit %q unlocks at day %d, should not be listed", b.Title, b.Day)
		}
	}
}

func TestCopingStrategyLookup(t *testing.T) {
	if got := len(CopingStrategies()); got != 8 {
		t.Errorf("strategies = %d, want 8", got)
	}
	s, ok := CopingStrategyByID("urge-surfing")
	if !ok || len(s.Steps) != 5 {
		t.Errorf("urge-surfing = %+v, %v", s, ok)
	}
	if _, ok := CopingStrategyByID("nope"); ok {
		t.Error("unknown id matched")
	}
}
