package models

// Mood captures how the user felt when writing a journal entry
type Mood string

const (
	MoodGreat      Mood = "great"
	MoodGood       Mood = "good"
	MoodNeutral    Mood = "neutral"
	MoodDifficult  Mood = "difficult"
	MoodStruggling Mood = "struggling"
)

// Moods lists all moods in display order.
func Moods() []Mood {
	return []Mood{MoodGreat, MoodGood, MoodNeutral, MoodDifficult, MoodStruggling}
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodNeutral, MoodDifficult, MoodStruggling:
		return true
	}
	return false
}

// Emoji returns the display emoji for the mood. Unknown moods render neutral.
func (m Mood) Emoji() string {
	switch m {
	case MoodGreat:
		return "😄"
	case MoodGood:
		return "🙂"
	case MoodNeutral:
		return "😐"
	case MoodDifficult:
		return "😕"
	case MoodStruggling:
		return "😣"
	default:
		return "😐"
	}
}
