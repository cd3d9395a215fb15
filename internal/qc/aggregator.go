// internal/qc/aggregator.go
package qc

import (
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"seqguard/internal/fastq"
	"seqguard/internal/rules"
)

// Result is the outcome of a run.
type Result struct {
	Pass        bool
	Records     int
	Failed      int
	FirstFailed int // lowest failing record index, 0 if none
	Bases       int64
	Tally       rules.Tally
	Fatal       error // structural or IO error that aborted the run, if any
}

// Aggregator applies the rule set to records and reduces per-record outcomes.
type Aggregator struct {
	params rules.Params
	sink   Sink
	ctx    *Context

	records     atomic.Int64
	failed      atomic.Int64
	firstFailed atomic.Int64
	bases       atomic.Int64

	fatalMu sync.Mutex
	fatal   error
}

// New returns an Aggregator for one run. A nil sink discards diagnostics.
func New(p rules.Params, sink Sink) *Aggregator {
	if sink == nil {
		sink = SinkFunc(func(error) {})
	}
	return &Aggregator{params: p, sink: sink, ctx: newContext()}
}

// Params returns the rule constants this run checks against.
func (a *Aggregator) Params() rules.Params { return a.params }

// Evaluate checks one record and reports whether it passed. Diagnostics are
// emitted immediately. Non-canonical bases go to local, which the caller owns
// and later hands to Merge.
func (a *Aggregator) Evaluate(index int, rec fastq.Record, local rules.Tally) bool {
	diags := rules.Check(index, rec, a.ctx, local, a.params)
	a.records.Add(1)
	a.bases.Add(int64(utf8.RuneCountInString(rec.Seq)))
	for _, d := range diags {
		a.sink.Report(d)
	}
	if len(diags) == 0 {
		return true
	}
	a.failed.Add(1)
	a.noteFailed(diags[0].Record())
	return false
}

func (a *Aggregator) noteFailed(index int) {
	n := int64(index)
	for {
		cur := a.firstFailed.Load()
		if cur != 0 && cur <= n {
			return
		}
		if a.firstFailed.CompareAndSwap(cur, n) {
			return
		}
	}
}

// Merge folds a worker-local tally into the run's tally.
func (a *Aggregator) Merge(local rules.Tally) { a.ctx.Merge(local) }

// Fail records a fatal error and emits it. Only the first one is kept.
func (a *Aggregator) Fail(err error) {
	a.fatalMu.Lock()
	first := a.fatal == nil
	if first {
		a.fatal = err
	}
	a.fatalMu.Unlock()
	if first {
		a.sink.Report(err)
	}
}

// Result returns the overall verdict: PASS iff no fatal error occurred, at
// least one record was evaluated and none failed.
func (a *Aggregator) Result() Result {
	a.fatalMu.Lock()
	fatal := a.fatal
	a.fatalMu.Unlock()

	r := Result{
		Records:     int(a.records.Load()),
		Failed:      int(a.failed.Load()),
		FirstFailed: int(a.firstFailed.Load()),
		Bases:       a.bases.Load(),
		Tally:       a.ctx.Tally(),
		Fatal:       fatal,
	}
	r.Pass = fatal == nil && r.Records > 0 && r.Failed == 0
	return r
}
