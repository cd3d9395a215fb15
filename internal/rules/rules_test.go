// internal/rules/rules_test.go
package rules

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqguard/internal/fastq"
)

type mapSet map[string]struct{}

func (m mapSet) Insert(h string) bool {
	if _, ok := m[h]; ok {
		return false
	}
	m[h] = struct{}{}
	return true
}

func TestCheckHeader(t *testing.T) {
	p := DefaultParams()
	assert.NoError(t, CheckHeader(1, "@r1", p))
	assert.NoError(t, CheckHeader(1, ">r1", p))

	err := CheckHeader(7, "r1", p)
	require.Error(t, err)
	assert.Equal(t, "Invalid header line (record 7): r1", err.Error())
	var re RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 7, re.Record())

	var he *InvalidHeaderError
	require.True(t, errors.As(CheckHeader(2, "", p), &he), "empty header must fail")
	assert.Equal(t, 2, he.Record())
}

func TestCheckDuplicate(t *testing.T) {
	seen := mapSet{}
	require.NoError(t, CheckDuplicate(1, "@r1", seen))
	require.NoError(t, CheckDuplicate(2, "@r2", seen))

	err := CheckDuplicate(3, "@r1", seen)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate header")
	assert.Equal(t, "Duplicate header found (record 3): @r1", err.Error())
}

func TestCheckLength(t *testing.T) {
	assert.NoError(t, CheckLength(1, "ACGT", "IIII"))

	err := CheckLength(4, "ACGN", "III")
	var le *LengthMismatchError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 4, le.SeqLen)
	assert.Equal(t, 3, le.QualLen)
	assert.Equal(t, "Length mismatch (record 4): seq = 4, qual = 3", err.Error())
}

func TestCheckLength_CountsCodePoints(t *testing.T) {
	// "é" is two bytes but one character.
	assert.NoError(t, CheckLength(1, "AéGT", "IIII"))
}

func TestTallyNonCanonical(t *testing.T) {
	tally := Tally{}
	TallyNonCanonical("ACGNnrY", tally, DefaultParams())
	TallyNonCanonical("acgt", tally, DefaultParams())
	if d := cmp.Diff(Tally{'N': 2, 'R': 1, 'Y': 1}, tally); d != "" {
		t.Fatalf("tally mismatch (-want +got):\n%s", d)
	}
}

func TestCheckQuality_ReportsEveryOffender(t *testing.T) {
	errs := CheckQuality(5, "I I\x7fI~!", DefaultParams())
	require.Len(t, errs, 2)
	assert.Equal(t, "Invalid character in quality string (record 5, position 2): ' '", errs[0].Error())

	var qe *InvalidQualityCharError
	require.ErrorAs(t, errs[1], &qe)
	assert.Equal(t, 4, qe.Position)
	assert.Equal(t, rune(0x7f), qe.Char)
}

func TestCheckQuality_Bounds(t *testing.T) {
	p := DefaultParams()
	assert.Empty(t, CheckQuality(1, "!~", p), "33 and 126 are inclusive")
	assert.Len(t, CheckQuality(1, "\x20\x7f", p), 2)

	lo, hi, err := QualityRange(EncodingPhred64)
	require.NoError(t, err)
	p.MinQual, p.MaxQual = lo, hi
	assert.Len(t, CheckQuality(1, "!#5@h", p), 3, "phred64 rejects ASCII below '@'")
}

func TestCheck_AllRulesRunAndDuplicateStillInserted(t *testing.T) {
	seen := mapSet{}
	tally := Tally{}
	p := DefaultParams()

	bad := fastq.Record{Header: "r1", Seq: "NNA", Sep: "+", Qual: "I\x01"}
	errs := Check(1, bad, seen, tally, p)
	require.Len(t, errs, 3) // header, length, quality
	assert.IsType(t, &InvalidHeaderError{}, errs[0])
	assert.IsType(t, &LengthMismatchError{}, errs[1])
	assert.IsType(t, &InvalidQualityCharError{}, errs[2])
	assert.Equal(t, 2, tally['N'], "tally runs even when other checks fail")

	errs = Check(2, fastq.Record{Header: "r1", Seq: "A", Sep: "+", Qual: "I"}, seen, tally, p)
	require.Len(t, errs, 2)
	assert.IsType(t, &DuplicateHeaderError{}, errs[1])
}

func TestCheck_Pass(t *testing.T) {
	errs := Check(1, fastq.Record{Header: "@r1", Seq: "ACGT", Sep: "+", Qual: "IIII"}, mapSet{}, Tally{}, DefaultParams())
	assert.Empty(t, errs)
}

func TestParams(t *testing.T) {
	assert.Equal(t, "A, T, G, or C", DefaultParams().CanonicalPhrase())
	assert.Equal(t, "A or C", Params{Canonical: "AC"}.CanonicalPhrase())
	assert.NoError(t, DefaultParams().Validate())
	assert.Error(t, Params{MinQual: 50, MaxQual: 40, Canonical: "A", HeaderPrefixes: "@"}.Validate())

	_, _, err := QualityRange("solexa")
	assert.Error(t, err)
}
