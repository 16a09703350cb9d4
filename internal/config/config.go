package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultDocketURL is the case lookup endpoint; the case number is
	// appended verbatim as the query value.
	DefaultDocketURL = "https://www.superiorcourt.maricopa.gov/docket/CriminalCourtCases/caseInfo.asp?caseNumber="

	// DefaultDelay is the fixed pause between docket requests.
	DefaultDelay = 4 * time.Second

	// DefaultDataDir holds error-page dumps for failed lookups.
	DefaultDataDir = "~/.local/share/docketwatch"

	DefaultCaseField   = "Case #"
	DefaultChargeField = "Crime"
	DefaultEventField  = "Case Number Links"
)

// Environment variable names
const (
	EnvAirtableToken = "DOCKETWATCH_AIRTABLE_TOKEN"
	EnvAirtableTable = "DOCKETWATCH_AIRTABLE_TABLE"
	EnvDocketURL     = "DOCKETWATCH_DOCKET_URL"
	EnvCaseField     = "DOCKETWATCH_CASE_FIELD"
	EnvChargeField   = "DOCKETWATCH_CHARGE_FIELD"
	EnvEventField    = "DOCKETWATCH_EVENT_FIELD"
)

// Config holds everything the sync run needs, built once at startup and
// passed into the airtable client, fetcher, and runner constructors.
type Config struct {
	// AirtableToken is the bearer token for the Airtable API.
	AirtableToken string
	// AirtableTable is the base/table path, e.g. "appXXXXXXXX/tblYYYYYYYY".
	AirtableTable string

	// DocketURL is the lookup base the case number is appended to.
	DocketURL string

	// CaseField is the Airtable field holding the case number.
	CaseField string
	// ChargeField receives the extracted charge description.
	ChargeField string
	// EventField receives the extracted same-day calendar event.
	EventField string

	// Delay is the fixed pause between docket requests.
	Delay time.Duration
	// DataDir receives error-page dumps.
	DataDir string
}

// FromEnv builds a Config from environment variables, applying defaults for
// everything optional. Call Validate before using the result.
func FromEnv() *Config {
	cfg := &Config{
		AirtableToken: os.Getenv(EnvAirtableToken),
		AirtableTable: os.Getenv(EnvAirtableTable),
		DocketURL:     envOr(EnvDocketURL, DefaultDocketURL),
		CaseField:     envOr(EnvCaseField, DefaultCaseField),
		ChargeField:   envOr(EnvChargeField, DefaultChargeField),
		EventField:    envOr(EnvEventField, DefaultEventField),
		Delay:         DefaultDelay,
		DataDir:       DefaultDataDir,
	}
	return cfg
}

// Validate checks the required secrets/identifiers. A missing value is a
// fatal startup condition for the CLI.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AirtableToken) == "" {
		return fmt.Errorf("missing required environment variable %s", EnvAirtableToken)
	}
	if strings.TrimSpace(c.AirtableTable) == "" {
		return fmt.Errorf("missing required environment variable %s", EnvAirtableTable)
	}
	if !strings.Contains(c.AirtableTable, "/") {
		return fmt.Errorf("%s must be a base/table path like appXXX/tblYYY, got %q", EnvAirtableTable, c.AirtableTable)
	}
	return nil
}

// envOr returns the value of the environment variable or a fallback
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
