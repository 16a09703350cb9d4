package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// The court site's docket layout is a versioned parsing contract: these
// selectors and indices are the only place that knows how the page is built.
// A site redesign means updating this block, not the callers.
const (
	chargeContainerSel   = "#tblDocket12"
	calendarContainerSel = "#tblForms4"
	rowSel               = "div.row.g-0"
	cellSel              = "div"

	// descriptionMarker tags the cell immediately before a charge text cell
	descriptionMarker = "Description"

	// priorityKeyword short-circuits charge selection: a homicide charge is
	// the operationally significant one regardless of filing order.
	priorityKeyword = "MURDER"

	calendarDateCell  = 1
	calendarEventCell = 5
	calendarMinCells  = 6
)

// Charge returns the case's charge description from the docket block.
//
// Each cell containing the "Description" marker makes the following cell a
// candidate. The first candidate is kept as the fallback, but any candidate
// mentioning murder wins immediately. Returns "" when the docket block is
// absent or carries no candidates.
func Charge(doc *goquery.Document) string {
	container := doc.Find(chargeContainerSel)
	if container.Length() == 0 {
		return ""
	}

	firstCharge := ""
	priorityCharge := ""

	container.Find(rowSel).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find(cellSel)
		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(cell.Text()))
		})

		for i := 0; i+1 < len(texts); i++ {
			if !strings.Contains(texts[i], descriptionMarker) {
				continue
			}
			candidate := texts[i+1]
			if firstCharge == "" {
				firstCharge = candidate
			}
			if strings.Contains(strings.ToUpper(candidate), priorityKeyword) {
				priorityCharge = candidate
				return false
			}
		}
		return true
	})

	if priorityCharge != "" {
		return priorityCharge
	}
	return firstCharge
}

// TodayEvent returns the calendar entry scheduled for now's date, or "".
//
// The calendar block lists one event per row; a row matches when it has at
// least six cells and its date cell exactly equals today formatted without
// leading zeros. The first match wins.
func TodayEvent(doc *goquery.Document, now time.Time) string {
	container := doc.Find(calendarContainerSel)
	if container.Length() == 0 {
		return ""
	}

	today := DocketDate(now)
	event := ""

	container.Find(rowSel).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find(cellSel)
		if cells.Length() < calendarMinCells {
			return true
		}
		if strings.TrimSpace(cells.Eq(calendarDateCell).Text()) != today {
			return true
		}
		event = strings.TrimSpace(cells.Eq(calendarEventCell).Text())
		return false
	})

	return event
}

// DocketDate formats a date the way the court site prints calendar dates:
// month/day/year with no leading zeros, e.g. "9/5/2025".
func DocketDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Month(), t.Day(), t.Year())
}
