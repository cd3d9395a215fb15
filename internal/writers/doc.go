// Package writers dispatches validation reports to format-specific writers.
//
// Design:
//   • Writers own all presentation knowledge (text summary, JSON).
//   • qc stays domain-only; pipeline stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
