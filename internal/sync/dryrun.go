package sync

import "fmt"

// DryRunSink prints what would be written without touching the store
type DryRunSink struct{}

// NewDryRunSink creates a new dry-run sink
func NewDryRunSink() *DryRunSink {
	return &DryRunSink{}
}

// UpdateFields prints the update that would be issued
func (s *DryRunSink) UpdateFields(recordID string, fields map[string]string) error {
	fmt.Printf("[DRY RUN] Would update %s:\n", recordID)
	for name, value := range fields {
		fmt.Printf("  %s: %s\n", name, value)
	}
	return nil
}
