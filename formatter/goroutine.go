package formatter

import (
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

var (
	labels    sync.Map // goroutine id -> label
	nextLabel atomic.Int64
)

// goroutineLabel returns a stable "Thread-N" label for the calling
// goroutine, assigned in first-use order. Labels are never reclaimed;
// the table grows with the number of distinct logging goroutines.
func goroutineLabel() string {
	id := goroutineID()
	if v, ok := labels.Load(id); ok {
		return v.(string)
	}
	label := "Thread-" + strconv.FormatInt(nextLabel.Add(1), 10)
	if v, loaded := labels.LoadOrStore(id, label); loaded {
		return v.(string)
	}
	return label
}

// goroutineID extracts the runtime goroutine id from the stack header.
// Go doesn't expose goroutine IDs officially, so this parses the
// "goroutine <id> [" prefix of runtime.Stack.
func goroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	stack := buf[:n]

	const prefix = "goroutine "
	if len(stack) <= len(prefix) {
		return 0
	}
	stack = stack[len(prefix):]
	var id uint64
	for _, c := range stack {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
