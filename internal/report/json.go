// internal/report/json.go
package report

import (
	"io"

	"seqguard/internal/jsonutil"
	"seqguard/pkg/api"
)

// ToAPI converts a Summary to the stable v1 schema.
func ToAPI(s Summary) api.ReportV1 {
	out := api.ReportV1{
		Result:            api.ResultFail,
		Input:             s.Input,
		Records:           s.Result.Records,
		FailedRecords:     s.Result.Failed,
		FirstFailedRecord: s.Result.FirstFailed,
		Bases:             s.Result.Bases,
		NonCanonical:      make(map[string]int, len(s.Result.Tally)),
	}
	if s.Result.Pass {
		out.Result = api.ResultPass
	}
	for r, n := range s.Result.Tally {
		out.NonCanonical[string(r)] = n
	}
	if s.Result.Fatal != nil {
		out.Error = s.Result.Fatal.Error()
	}
	return out
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	return jsonutil.EncodePretty(w, ToAPI(s))
}
