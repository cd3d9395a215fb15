// internal/rules/params.go
package rules

import (
	"fmt"
	"strings"
)

// Domain defaults. Quality characters are Sanger/Illumina 1.8+ (Phred+33)
// printable ASCII; canonical bases are compared after uppercasing.
const (
	DefaultMinQual        = 33
	DefaultMaxQual        = 126
	DefaultCanonical      = "ATGC"
	DefaultHeaderPrefixes = "@>"
)

// Quality encodings selectable by name.
const (
	EncodingPhred33 = "phred33"
	EncodingPhred64 = "phred64"
)

// Params carries the constants the rule set checks against.
type Params struct {
	MinQual        rune   // inclusive lower bound for quality code points
	MaxQual        rune   // inclusive upper bound for quality code points
	Canonical      string // uppercase bases that are not tallied
	HeaderPrefixes string // accepted first characters of a header line
}

// DefaultParams returns the Phred+33 / ATGC / "@>" rule constants.
func DefaultParams() Params {
	return Params{
		MinQual:        DefaultMinQual,
		MaxQual:        DefaultMaxQual,
		Canonical:      DefaultCanonical,
		HeaderPrefixes: DefaultHeaderPrefixes,
	}
}

// QualityRange returns the inclusive code point bounds for a named encoding.
func QualityRange(encoding string) (lo, hi rune, err error) {
	switch strings.ToLower(encoding) {
	case "", EncodingPhred33:
		return DefaultMinQual, DefaultMaxQual, nil
	case EncodingPhred64:
		return 64, DefaultMaxQual, nil
	}
	return 0, 0, fmt.Errorf("unknown quality encoding %q (want %s|%s)", encoding, EncodingPhred33, EncodingPhred64)
}

// Validate checks that Params describe a usable rule set.
func (p Params) Validate() error {
	if p.MinQual < 0 || p.MaxQual < p.MinQual {
		return fmt.Errorf("invalid quality range %d-%d", p.MinQual, p.MaxQual)
	}
	if p.Canonical == "" {
		return fmt.Errorf("canonical base set must not be empty")
	}
	if p.HeaderPrefixes == "" {
		return fmt.Errorf("header prefixes must not be empty")
	}
	return nil
}

// CanonicalPhrase renders the canonical set for humans: "A, T, G, or C".
func (p Params) CanonicalPhrase() string {
	bases := strings.Split(p.Canonical, "")
	switch len(bases) {
	case 0:
		return ""
	case 1:
		return bases[0]
	case 2:
		return bases[0] + " or " + bases[1]
	}
	return strings.Join(bases[:len(bases)-1], ", ") + ", or " + bases[len(bases)-1]
}
