package core

// Sink outputs formatted log events to a destination.
type Sink interface {
	// Write formats the event with the sink's pattern and writes it.
	Write(event *Event)

	// Flush forces any buffered output to the destination.
	Flush()

	// Pattern returns the sink's format pattern.
	Pattern() string

	// SetPattern replaces the sink's format pattern.
	SetPattern(pattern string)

	// Clone returns a new sink of the same kind with the same
	// configuration, writing to the same destination.
	Clone() Sink
}
