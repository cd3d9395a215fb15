// internal/qc/context.go
package qc

import (
	"sync"

	"seqguard/internal/rules"
)

// Context is the run-wide mutable state: the seen-header set and the
// non-canonical tally. Every read-modify-write holds mu.
type Context struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	tally rules.Tally
}

func newContext() *Context {
	return &Context{
		seen:  make(map[string]struct{}, 1<<12),
		tally: rules.Tally{},
	}
}

// Insert adds h to the seen set and reports whether it was new.
func (c *Context) Insert(h string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.seen[h]; dup {
		return false
	}
	c.seen[h] = struct{}{}
	return true
}

// Merge folds a worker-local tally into the shared one.
func (c *Context) Merge(t rules.Tally) {
	if len(t) == 0 {
		return
	}
	c.mu.Lock()
	c.tally.Add(t)
	c.mu.Unlock()
}

// Tally returns a copy of the shared tally.
func (c *Context) Tally() rules.Tally {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(rules.Tally, len(c.tally))
	out.Add(c.tally)
	return out
}
