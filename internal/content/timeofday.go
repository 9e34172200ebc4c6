package content

// TimeOfDay labels the part of the day for greetings and AI context.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// TimeOfDayFor maps an hour of day onto its label.
func TimeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour < 12:
		return Morning
	case hour < 18:
		return Afternoon
	case hour < 22:
		return Evening
	default:
		return Night
	}
}

// Greeting returns the encouragement line for an hour of day.
func Greeting(hour int) string {
	switch TimeOfDayFor(hour) {
	case Morning:
		return "Morning is full of possibility."
	case Afternoon:
		return "You're doing great. Keep going strong."
	case Evening:
		return "The evening is yours to enjoy clearly and fully."
	default:
		return "Rest well, knowing you're making positive choices."
	}
}
