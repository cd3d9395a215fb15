// internal/fastq/errors.go
package fastq

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when no non-blank lines remain.
	ErrEmpty = errors.New("empty FASTQ file")
	// ErrNotMultipleOfFour is returned when the non-blank line count is not divisible by 4.
	ErrNotMultipleOfFour = errors.New("FASTQ line count not a multiple of 4")
	// ErrTruncated is returned when a stream ends in the middle of a record.
	ErrTruncated = errors.New("truncated FASTQ record")
)

// StructuralKind enumerates file-level format failures.
type StructuralKind int

const (
	EmptyFile StructuralKind = iota + 1
	NotMultipleOfFour
	TruncatedRecord
)

func (k StructuralKind) String() string {
	switch k {
	case EmptyFile:
		return "empty-file"
	case NotMultipleOfFour:
		return "not-multiple-of-four"
	case TruncatedRecord:
		return "truncated-record"
	}
	return fmt.Sprintf("structural(%d)", int(k))
}

// StructuralError is a fatal format error. Count is the total retained line
// count for NotMultipleOfFour and the number of dangling lines (1-3) for
// TruncatedRecord; it is unused for EmptyFile.
type StructuralError struct {
	Kind  StructuralKind
	Count int
}

func (e *StructuralError) Error() string {
	switch e.Kind {
	case EmptyFile:
		return "File is empty or contains only blank lines."
	case NotMultipleOfFour:
		return fmt.Sprintf("FASTQ format error: number of lines (%d) is not a multiple of 4", e.Count)
	case TruncatedRecord:
		return fmt.Sprintf("FASTQ format error: truncated record at end of file (%d dangling lines)", e.Count)
	}
	return "FASTQ format error"
}

// Is lets errors.Is match the package sentinels.
func (e *StructuralError) Is(target error) bool {
	switch target {
	case ErrEmpty:
		return e.Kind == EmptyFile
	case ErrNotMultipleOfFour:
		return e.Kind == NotMultipleOfFour
	case ErrTruncated:
		return e.Kind == TruncatedRecord
	}
	return false
}

// IOError wraps a failure to open or read the input stream.
type IOError struct {
	Op  string // "open" | "read"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("Failed to %s file: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsFatal reports whether err aborts a validation run (IO or structural).
func IsFatal(err error) bool {
	var ioe *IOError
	var se *StructuralError
	return errors.As(err, &ioe) || errors.As(err, &se)
}
