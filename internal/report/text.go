// internal/report/text.go
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"seqguard/internal/qc"
	"seqguard/internal/rules"
	"seqguard/internal/writers"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

func init() {
	writers.Register(FormatText, func(w io.Writer, data interface{}) error {
		s, ok := data.(Summary)
		if !ok {
			return fmt.Errorf("text writer: unexpected payload %T", data)
		}
		return WriteText(w, s)
	})
	writers.Register(FormatJSON, func(w io.Writer, data interface{}) error {
		s, ok := data.(Summary)
		if !ok {
			return fmt.Errorf("json writer: unexpected payload %T", data)
		}
		return WriteJSON(w, s)
	})
}

// Summary is everything a report writer needs.
type Summary struct {
	Input  string
	Result qc.Result
	Params rules.Params
}

// SummaryLine returns "QC Result: PASS" or "QC Result: FAIL".
func SummaryLine(pass bool) string {
	if pass {
		return "QC Result: PASS"
	}
	return "QC Result: FAIL"
}

// SortedBases returns the tallied runes in ascending order.
func SortedBases(t rules.Tally) []rune {
	out := make([]rune, 0, len(t))
	for r := range t {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WriteText renders the summary line and, once any record was evaluated, the
// non-canonical base histogram. The histogram depends on neither the verdict
// nor a later fatal error; a run that evaluated nothing prints the summary only.
func WriteText(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, SummaryLine(s.Result.Pass))
	if s.Result.Records > 0 {
		if len(s.Result.Tally) > 0 {
			fmt.Fprintf(bw, "\nNon-%s base report:\n", s.Params.Canonical)
			for _, r := range SortedBases(s.Result.Tally) {
				fmt.Fprintf(bw, "  %c: %d\n", r, s.Result.Tally[r])
			}
		} else {
			fmt.Fprintf(bw, "\nAll bases are %s.\n", s.Params.CanonicalPhrase())
		}
	}
	return bw.Flush()
}
