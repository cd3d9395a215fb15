// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Report writer registry (format → handler). Formats register themselves in
// init() blocks of the packages that implement them.
var ReportWriters = map[string]func(w io.Writer, data interface{}) error{}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn func(io.Writer, interface{}) error) { ReportWriters[format] = fn }

// Write dispatches payload to the writer registered for format.
func Write(format string, w io.Writer, payload interface{}) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

// Formats lists registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for f := range ReportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
