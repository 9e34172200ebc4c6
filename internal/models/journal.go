package models

import "time"

// JournalEntry is an immutable, timestamped reflection record. Entries are
// never edited or deleted once written.
type JournalEntry struct {
	ID      int64     `json:"id"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
	Mood    Mood      `json:"mood"`
}

// Trigger is a named craving trigger with a 1-9 intensity rating.
type Trigger struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Intensity int       `json:"intensity"`
	DateAdded time.Time `json:"dateAdded"`
}

// IntensityBand buckets a trigger intensity for display: "high" (>=7),
// "medium" (>=4), or "low".
func (t Trigger) IntensityBand() string {
	switch {
	case t.Intensity >= 7:
		return "high"
	case t.Intensity >= 4:
		return "medium"
	default:
		return "low"
	}
}

// NextID derives a creation-time id that is strictly greater than last, so
// ids stay unique and monotonic even when records are created within the
// same millisecond.
func NextID(now time.Time, last int64) int64 {
	id := now.UnixMilli()
	if id <= last {
		id = last + 1
	}
	return id
}
