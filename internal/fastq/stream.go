// internal/fastq/stream.go
package fastq

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// LinesPerRecord is the fixed FASTQ record height.
const LinesPerRecord = 4

// Record is one 4-line FASTQ group. Sep (line 3) is carried but never validated.
type Record struct {
	Header string
	Seq    string
	Sep    string
	Qual   string
}

func recordFrom(lines []string) Record {
	return Record{Header: lines[0], Seq: lines[1], Sep: lines[2], Qual: lines[3]}
}

// ScanLines calls emit for every line of r that is not empty or whitespace-only.
// Line terminators (\n, \r\n) are stripped; retained lines are otherwise untouched.
// Cancellation via ctx is honored between lines. Read failures are *IOError.
func ScanLines(ctx context.Context, r io.Reader, emit func(line string) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // long-read platforms produce very long single lines (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := emit(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		return &IOError{Op: "read", Err: err}
	}
	return nil
}

// ReadAll collects every record of r. The whole input is read before any
// record is returned so that a malformed file yields zero records:
// no retained lines → EmptyFile, count % 4 != 0 → NotMultipleOfFour.
func ReadAll(ctx context.Context, r io.Reader) ([]Record, error) {
	var lines []string
	err := ScanLines(ctx, r, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &StructuralError{Kind: EmptyFile}
	}
	if len(lines)%LinesPerRecord != 0 {
		return nil, &StructuralError{Kind: NotMultipleOfFour, Count: len(lines)}
	}
	recs := make([]Record, 0, len(lines)/LinesPerRecord)
	for i := 0; i < len(lines); i += LinesPerRecord {
		recs = append(recs, recordFrom(lines[i:i+LinesPerRecord]))
	}
	return recs, nil
}

// Stream emits records in file order as soon as each 4-line group is complete.
// index is 1-based. A non-nil error from emit stops the scan and is returned
// as-is. If the input ends mid-group the result is TruncatedRecord carrying
// the dangling line count; an input without retained lines is EmptyFile.
func Stream(ctx context.Context, r io.Reader, emit func(index int, rec Record) error) error {
	var (
		group = make([]string, 0, LinesPerRecord)
		total int
		index int
	)
	err := ScanLines(ctx, r, func(line string) error {
		total++
		group = append(group, line)
		if len(group) < LinesPerRecord {
			return nil
		}
		index++
		rec := recordFrom(group)
		group = group[:0]
		return emit(index, rec)
	})
	if err != nil {
		return err
	}
	if total == 0 {
		return &StructuralError{Kind: EmptyFile}
	}
	if n := len(group); n > 0 {
		return &StructuralError{Kind: TruncatedRecord, Count: n}
	}
	return nil
}
