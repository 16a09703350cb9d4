//go:build ignore

// Manual probe against the live court site: fetches one case number and
// prints what the sync would extract. Run with:
//
//	go run scripts/probe-docket.go CR2025-123456
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/docketwatch/docketwatch/internal/config"
	"github.com/docketwatch/docketwatch/internal/docket"
	"github.com/docketwatch/docketwatch/internal/extract"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: probe-docket <case-number>")
		os.Exit(1)
	}
	caseNumber := os.Args[1]

	fetcher := docket.New(config.DefaultDocketURL)

	page, err := fetcher.Fetch(caseNumber)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching docket: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Status: %d\n", page.StatusCode)
	if page.StatusCode != 200 {
		os.Exit(1)
	}

	if phrase := page.FailurePhrase(); phrase != "" {
		fmt.Printf("Soft failure detected: %q\n", phrase)
		os.Exit(1)
	}

	fmt.Printf("Charge: %q\n", extract.Charge(page.Doc))
	fmt.Printf("Today (%s) event: %q\n",
		extract.DocketDate(time.Now()), extract.TodayEvent(page.Doc, time.Now()))
}
