package core

// TimestampKind selects the clock used when an event's timestamp is
// rendered.
type TimestampKind int

const (
	// LocalTime renders timestamps in the local time zone.
	LocalTime TimestampKind = iota

	// UTCTime renders timestamps in Coordinated Universal Time.
	UTCTime
)

// Event is a single log event. Events are transient: created at the
// call site, formatted and written once per sink, never persisted.
type Event struct {
	// Category groups related messages (subsystem, component).
	Category string

	// Level is the severity of the event.
	Level Level

	// Timestamp selects local or UTC rendering; the wall-clock value
	// itself is read when the event is formatted.
	Timestamp TimestampKind

	// Message is the pre-rendered message text.
	Message string

	// File, Function and Line locate the originating call site.
	File     string
	Function string
	Line     int
}
