package profile

import (
	"time"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/models"
)

// milestones is the fixed unlock table, ascending by day count.
var milestones = []models.Milestone{
	{Days: 1, Badge: "🌱", Message: "First Day Champion!"},
	{Days: 7, Badge: "🌟", Message: "One Week Strong!"},
	{Days: 30, Badge: "🏆", Message: "Monthly Milestone Master!"},
	{Days: 90, Badge: "💫", Message: "Quarterly Quest Complete!"},
	{Days: 180, Badge: "🌈", Message: "Half Year of Healing!"},
	{Days: 365, Badge: "👑", Message: "Year of Transformation!"},
}

// Milestones returns the milestone table in unlock order.
func Milestones() []models.Milestone {
	out := make([]models.Milestone, len(milestones))
	copy(out, milestones)
	return out
}

// MilestoneForDay returns the milestone whose threshold exactly matches days.
func MilestoneForDay(days int) (models.Milestone, bool) {
	for _, m := range milestones {
		if m.Days == days {
			return m, true
		}
	}
	return models.Milestone{}, false
}

// NextMilestone returns the first milestone with a threshold above days.
func NextMilestone(days int) (models.Milestone, bool) {
	for _, m := range milestones {
		if m.Days > days {
			return m, true
		}
	}
	return models.Milestone{}, false
}

// CheckinResult is the outcome of one streak evaluation.
type CheckinResult struct {
	Streak  int
	Changed bool
}

// EvaluateCheckin runs the once-per-day streak transition.
//
// If the streak was already evaluated today the result is a no-op. Otherwise
// the streak increments when the last check-in is absent or within the grace
// window, and resets to 1 when the gap reached the window. lastCheck carries
// date-only precision (midnight in the local calendar); hasLast is false when
// the user has never checked in.
func EvaluateCheckin(now time.Time, lastCheck time.Time, hasLast bool, streak int) CheckinResult {
	if hasLast && sameDay(now, lastCheck) {
		return CheckinResult{Streak: streak}
	}
	if !hasLast || now.Sub(lastCheck) < constants.StreakGraceWindow {
		return CheckinResult{Streak: streak + 1, Changed: true}
	}
	return CheckinResult{Streak: 1, Changed: true}
}

// SobrietyDays computes the displayed day count from an explicit start date:
// ceil of the elapsed time in days, so a start earlier today counts as day 1.
func SobrietyDays(now, start time.Time) int {
	diff := now.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
