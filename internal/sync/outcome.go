package sync

import "github.com/docketwatch/docketwatch/internal/logger"

// Status tags the result of one row
type Status string

const (
	StatusUpdated Status = "updated"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome is the per-row result the run loop aggregates: exactly one of the
// three statuses, with the skip reason or error message attached.
type Outcome struct {
	RecordID   string            `json:"record_id"`
	CaseNumber string            `json:"case_number,omitempty"`
	Status     Status            `json:"status"`
	Reason     string            `json:"reason,omitempty"`
	Error      string            `json:"error,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func updated(recordID, caseNumber string, fields map[string]string) Outcome {
	logger.IncrCounter("rows.updated")
	return Outcome{RecordID: recordID, CaseNumber: caseNumber, Status: StatusUpdated, Fields: fields}
}

func skipped(recordID, caseNumber, reason string) Outcome {
	logger.IncrCounter("rows.skipped")
	return Outcome{RecordID: recordID, CaseNumber: caseNumber, Status: StatusSkipped, Reason: reason}
}

func failed(recordID, caseNumber string, err error) Outcome {
	logger.IncrCounter("rows.failed")
	return Outcome{RecordID: recordID, CaseNumber: caseNumber, Status: StatusFailed, Error: err.Error()}
}

// Summary aggregates outcome counts for the end-of-run report
type Summary struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Summarize tallies outcomes into a Summary
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status {
		case StatusUpdated:
			s.Updated++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
