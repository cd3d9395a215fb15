// internal/rules/errors.go
package rules

import "fmt"

// RecordError is a non-fatal diagnostic tied to a 1-based record index.
type RecordError interface {
	error
	Record() int
}

// InvalidHeaderError: header does not start with an accepted prefix.
type InvalidHeaderError struct {
	Index  int
	Header string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("Invalid header line (record %d): %s", e.Index, e.Header)
}
func (e *InvalidHeaderError) Record() int { return e.Index }

// DuplicateHeaderError: header string already seen in this run.
type DuplicateHeaderError struct {
	Index  int
	Header string
}

func (e *DuplicateHeaderError) Error() string {
	return fmt.Sprintf("Duplicate header found (record %d): %s", e.Index, e.Header)
}
func (e *DuplicateHeaderError) Record() int { return e.Index }

// LengthMismatchError: sequence and quality differ in code point length.
type LengthMismatchError struct {
	Index   int
	SeqLen  int
	QualLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("Length mismatch (record %d): seq = %d, qual = %d", e.Index, e.SeqLen, e.QualLen)
}
func (e *LengthMismatchError) Record() int { return e.Index }

// InvalidQualityCharError: one quality character outside the allowed range.
// Position is 1-based within the quality string.
type InvalidQualityCharError struct {
	Index    int
	Position int
	Char     rune
}

func (e *InvalidQualityCharError) Error() string {
	return fmt.Sprintf("Invalid character in quality string (record %d, position %d): '%c'", e.Index, e.Position, e.Char)
}
func (e *InvalidQualityCharError) Record() int { return e.Index }
