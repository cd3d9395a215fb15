// pkg/api/report_v1.go
package api

// Result values.
const (
	ResultPass = "PASS"
	ResultFail = "FAIL"
)

// ReportV1 is the stable JSON schema for a validation report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Result            string         `json:"result"` // "PASS" | "FAIL"
	Input             string         `json:"input,omitempty"`
	Records           int            `json:"records"`
	FailedRecords     int            `json:"failed_records"`
	FirstFailedRecord int            `json:"first_failed_record,omitempty"` // 1-based
	Bases             int64          `json:"bases"`
	NonCanonical      map[string]int `json:"non_canonical"`
	Error             string         `json:"error,omitempty"` // structural or IO error that aborted the run
}
