// Package extract derives the two synced fields from a parsed docket page.
//
// Both heuristics are pattern matching over the court site's semi-structured
// Bootstrap grid: charge selection walks the docket block's rows looking for
// "Description"-tagged cells (homicide charges take priority over filing
// order), and the calendar lookup matches today's date against a fixed cell
// position. A page missing either block yields no value rather than an error.
package extract
