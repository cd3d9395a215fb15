// Package pipeline drives a validation run: it pulls FASTQ records from a
// reader, hands them to a qc.Aggregator and returns the aggregated result.
//
// Two strategies are available. ModeBatch (the default) reads every record,
// checks them on a fixed worker pool and reports all defects. ModeStream
// checks records one at a time in file order and stops at the first failing
// record. Both reach the same verdict for the same input.
package pipeline
