package storage

import "time"

// TimestampLayout is the on-disk format of Event timestamps. Zero-padded
// fields make lexicographic order match chronological order.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-day prefix of TimestampLayout.
const DateLayout = "2006-01-02"

// Event is a single journal entry.
type Event struct {
	ID        int64
	Timestamp time.Time
	Text      string
}

// Stamp returns the timestamp in its stored form.
func (e Event) Stamp() string {
	return e.Timestamp.Format(TimestampLayout)
}

// Stats holds aggregate statistics about the journal database.
type Stats struct {
	TotalEvents       int64
	OldestEvent       time.Time
	NewestEvent       time.Time
	LastID            int64
	DatabaseSizeBytes int64
}
