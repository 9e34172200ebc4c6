package cli

import (
	"time"

	"clearday.dev/clearday/internal/assist"
	"clearday.dev/clearday/internal/content"
	"clearday.dev/clearday/internal/interaction"
	"clearday.dev/clearday/internal/journal"
	"clearday.dev/clearday/internal/models"
	"clearday.dev/clearday/internal/notify"
	"clearday.dev/clearday/internal/profile"
	"clearday.dev/clearday/internal/storage"
	"clearday.dev/clearday/internal/triggers"
)

// Context carries the app's wired services into every command.
type Context struct {
	Store    *storage.Store
	Profile  *profile.Manager
	Journal  *journal.Store
	Triggers *triggers.Store
	Assist   *assist.Facade
	Notifier notify.Notifier
	Tracker  *interaction.Tracker

	// Milestone unlocked by this activation's streak evaluation, if any.
	Milestone *models.Milestone
}

// BuildUserContext assembles the profile snapshot handed to AI prompts.
func (c *Context) BuildUserContext() assist.UserContext {
	now := time.Now()
	entries := c.Journal.Entries()
	if len(entries) > 3 {
		entries = entries[:3]
	}
	return assist.UserContext{
		Name:         c.Profile.Name(),
		SobrietyDays: c.Profile.SobrietyDays(),
		TimeOfDay:    string(content.TimeOfDayFor(now.Hour())),
		Mood:         c.Journal.Mood(),
		DominantMood: c.Journal.DominantMood(5),
		Journal:      entries,
		Triggers:     c.Triggers.All(),
	}
}
