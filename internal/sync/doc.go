// Package sync drives the row-by-row synchronization run.
//
// The runner lists every row of the store, fetches the matching docket page,
// extracts the charge and same-day event, and patches the row with whatever
// non-empty values came back. Each row produces exactly one tagged Outcome
// (updated, skipped with a reason, or failed with an error); no row problem
// aborts the run, only the initial listing can. Rows are processed strictly
// sequentially with a fixed delay between docket requests.
package sync
