// Package qc owns the state of one validation run: the shared context, the
// AND-reduced verdict and the stream of diagnostics.
//
// Evaluate may be called from many goroutines. The verdict and the merged
// tally do not depend on call order. Under concurrent calls, which of two
// identical headers is reported as the duplicate depends on scheduling; the
// number of duplicate reports does not.
package qc
