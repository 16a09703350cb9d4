package sync

import (
	"fmt"
	"time"

	"github.com/docketwatch/docketwatch/internal/airtable"
	"github.com/docketwatch/docketwatch/internal/config"
	"github.com/docketwatch/docketwatch/internal/docket"
	"github.com/docketwatch/docketwatch/internal/extract"
	"github.com/docketwatch/docketwatch/internal/logger"
)

// Source lists the rows to sync
type Source interface {
	ListAll() ([]*airtable.Record, error)
}

// Sink receives partial field updates for a row
type Sink interface {
	UpdateFields(recordID string, fields map[string]string) error
}

// Fetcher retrieves one docket page per case number
type Fetcher interface {
	Fetch(caseNumber string) (*docket.Page, error)
}

// ErrorPageStore persists soft-failure response bodies for diagnosis
type ErrorPageStore interface {
	SaveErrorPage(caseNumber string, body []byte) (string, error)
}

// Runner drives one sequential sync run: list rows, fetch each docket page,
// extract fields, patch the row back.
type Runner struct {
	source  Source
	fetcher Fetcher
	sink    Sink
	store   ErrorPageStore

	caseField   string
	chargeField string
	eventField  string

	delay time.Duration
	limit int

	// now is replaceable in tests; the calendar heuristic matches on it
	now func() time.Time
}

// NewRunner wires a runner from the run configuration and its collaborators.
// limit caps how many rows are processed (0 = all).
func NewRunner(cfg *config.Config, source Source, fetcher Fetcher, sink Sink, store ErrorPageStore, limit int) *Runner {
	return &Runner{
		source:      source,
		fetcher:     fetcher,
		sink:        sink,
		store:       store,
		caseField:   cfg.CaseField,
		chargeField: cfg.ChargeField,
		eventField:  cfg.EventField,
		delay:       cfg.Delay,
		limit:       limit,
		now:         time.Now,
	}
}

// Run processes every row end-to-end, one at a time. Only a listing failure
// is fatal; every per-row problem becomes a Skipped or Failed outcome and the
// run continues. A fixed delay separates successive docket requests.
func (r *Runner) Run() ([]Outcome, error) {
	records, err := r.source.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listing rows: %w", err)
	}

	if r.limit > 0 && len(records) > r.limit {
		records = records[:r.limit]
	}

	logger.Info("Starting sync run", logger.Fields{
		"rows": len(records),
	})

	outcomes := make([]Outcome, 0, len(records))
	fetched := false

	for _, rec := range records {
		caseNumber := rec.StringField(r.caseField)
		if caseNumber == "" {
			outcomes = append(outcomes, skipped(rec.ID, "", "no case number"))
			continue
		}

		if fetched {
			time.Sleep(r.delay)
		}
		fetched = true

		outcomes = append(outcomes, r.processRow(rec.ID, caseNumber))
	}

	return outcomes, nil
}

// processRow fetches, extracts, and updates one row
func (r *Runner) processRow(recordID, caseNumber string) Outcome {
	start := time.Now()
	page, err := r.fetcher.Fetch(caseNumber)
	logger.RecordTiming("docket.fetch", time.Since(start))

	if err != nil {
		logger.Error("Docket fetch failed", logger.Fields{
			"case_number": caseNumber,
		}, err)
		return failed(recordID, caseNumber, err)
	}

	if page.StatusCode != 200 {
		logger.Debug("Docket fetch non-200", logger.Fields{
			"case_number": caseNumber,
			"status":      page.StatusCode,
		})
		return skipped(recordID, caseNumber, fmt.Sprintf("status %d", page.StatusCode))
	}

	if phrase := page.FailurePhrase(); phrase != "" {
		if path, err := r.store.SaveErrorPage(caseNumber, page.Body); err != nil {
			logger.Error("Failed to save error page", logger.Fields{
				"case_number": caseNumber,
			}, err)
		} else {
			logger.Info("Saved error page", logger.Fields{
				"case_number": caseNumber,
				"path":        path,
			})
		}
		return skipped(recordID, caseNumber, fmt.Sprintf("error page (%s)", phrase))
	}

	fields := make(map[string]string)
	if charge := extract.Charge(page.Doc); charge != "" {
		fields[r.chargeField] = charge
	}
	if event := extract.TodayEvent(page.Doc, r.now()); event != "" {
		fields[r.eventField] = event
	}

	if len(fields) == 0 {
		return skipped(recordID, caseNumber, "no extractable fields")
	}

	if err := r.sink.UpdateFields(recordID, fields); err != nil {
		logger.Error("Row update failed", logger.Fields{
			"case_number": caseNumber,
		}, err)
		return failed(recordID, caseNumber, err)
	}

	logger.Info("Row updated", logger.Fields{
		"case_number": caseNumber,
		"fields":      len(fields),
	})
	return updated(recordID, caseNumber, fields)
}
