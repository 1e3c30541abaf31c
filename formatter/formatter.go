// Package formatter renders log events into text lines according to a
// pattern string.
//
// Pattern tokens:
//
//	%x  timestamp (local or UTC per the event)
//	%n  category
//	%l  level
//	%t  goroutine label ("Thread-N")
//	%$  source file
//	%!  function
//	%#  line number
//	%v  message
//
// Unknown % sequences pass through literally.
package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/patlog/patlog/core"
)

// TimestampLayout is the wall-clock format used by the %x token.
const TimestampLayout = "2006-01-02 15:04:05"

// now is swapped out by tests.
var now = time.Now

// Format renders the event using the given pattern. It is pure except
// for reading the clock for %x.
func Format(event *core.Event, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + len(event.Message) + len(TimestampLayout))

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 >= len(pattern) {
			b.WriteByte(pattern[i])
			continue
		}
		switch pattern[i+1] {
		case 'x':
			b.WriteString(timestamp(event.Timestamp))
			i++
		case 'n':
			b.WriteString(event.Category)
			i++
		case 'l':
			b.WriteString(event.Level.String())
			i++
		case 't':
			b.WriteString(goroutineLabel())
			i++
		case '$':
			b.WriteString(event.File)
			i++
		case '!':
			b.WriteString(event.Function)
			i++
		case '#':
			b.WriteString(strconv.Itoa(event.Line))
			i++
		case 'v':
			b.WriteString(event.Message)
			i++
		default:
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}

func timestamp(kind core.TimestampKind) string {
	t := now()
	if kind == core.UTCTime {
		t = t.UTC()
	}
	return t.Format(TimestampLayout)
}
