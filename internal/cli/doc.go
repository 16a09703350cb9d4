// Package cli implements the command-line interface for docketwatch.
//
// The cli package provides the Cobra-based CLI that wires configuration, the
// Airtable client, the docket fetcher, and the sync runner together, then
// reports per-row outcomes and a run summary as text or JSON. Exit codes:
// 0 clean run, 1 error, 2 run completed with failed rows.
package cli
