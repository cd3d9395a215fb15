// internal/rules/rules.go
package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"seqguard/internal/fastq"
)

// HeaderSet is the shared seen-header store. Insert reports whether h was newly added.
type HeaderSet interface {
	Insert(h string) bool
}

// Tally counts non-canonical bases by uppercased rune.
type Tally map[rune]int

// Add folds other into t.
func (t Tally) Add(other Tally) {
	for r, n := range other {
		t[r] += n
	}
}

// CheckHeader passes iff the header's first character is an accepted prefix.
func CheckHeader(index int, header string, p Params) RecordError {
	r, size := utf8.DecodeRuneInString(header)
	if size == 0 || !strings.ContainsRune(p.HeaderPrefixes, r) {
		return &InvalidHeaderError{Index: index, Header: header}
	}
	return nil
}

// CheckDuplicate inserts header into seen; it fails if the header was already there.
// The insertion happens regardless of any other check on the record.
func CheckDuplicate(index int, header string, seen HeaderSet) RecordError {
	if !seen.Insert(header) {
		return &DuplicateHeaderError{Index: index, Header: header}
	}
	return nil
}

// CheckLength compares sequence and quality lengths in code points.
func CheckLength(index int, seq, qual string) RecordError {
	sl, ql := utf8.RuneCountInString(seq), utf8.RuneCountInString(qual)
	if sl != ql {
		return &LengthMismatchError{Index: index, SeqLen: sl, QualLen: ql}
	}
	return nil
}

// TallyNonCanonical adds every uppercased non-canonical base of seq to t. It never fails.
func TallyNonCanonical(seq string, t Tally, p Params) {
	for _, r := range seq {
		up := unicode.ToUpper(r)
		if !strings.ContainsRune(p.Canonical, up) {
			t[up]++
		}
	}
}

// CheckQuality reports one error per quality character outside [MinQual, MaxQual].
func CheckQuality(index int, qual string, p Params) []RecordError {
	var errs []RecordError
	pos := 0
	for _, r := range qual {
		pos++
		if r < p.MinQual || r > p.MaxQual {
			errs = append(errs, &InvalidQualityCharError{Index: index, Position: pos, Char: r})
		}
	}
	return errs
}

// Check runs all five checks on rec in a fixed order and returns every
// diagnostic. The record passes iff the result is empty. Every check runs
// even when an earlier one fails.
func Check(index int, rec fastq.Record, seen HeaderSet, t Tally, p Params) []RecordError {
	var errs []RecordError
	if err := CheckHeader(index, rec.Header, p); err != nil {
		errs = append(errs, err)
	}
	if err := CheckDuplicate(index, rec.Header, seen); err != nil {
		errs = append(errs, err)
	}
	if err := CheckLength(index, rec.Seq, rec.Qual); err != nil {
		errs = append(errs, err)
	}
	TallyNonCanonical(rec.Seq, t, p)
	errs = append(errs, CheckQuality(index, rec.Qual, p)...)
	return errs
}
