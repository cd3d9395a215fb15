// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns the worker count for a run. threads <= 0 means
// one worker per CPU.
func EffectiveThreads(threads int) int {
	if threads > 0 {
		return threads
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// ClampThreads caps threads at the number of work items (never below 1).
func ClampThreads(threads, items int) int {
	if threads > items {
		threads = items
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}
