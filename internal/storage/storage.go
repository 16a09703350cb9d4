package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage handles persistence of error-page dumps for offline diagnosis
type Storage struct {
	dataDir string
}

// New creates a new Storage instance rooted at dataDir
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// errorPagePath returns the dump path for a case number
func (s *Storage) errorPagePath(caseNumber string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("error_page_%s.html", caseNumber))
}

// SaveErrorPage writes the raw body of a soft-failure response to disk, named
// deterministically from the case number, and returns the written path. A
// later run for the same case overwrites the previous dump.
func (s *Storage) SaveErrorPage(caseNumber string, body []byte) (string, error) {
	path := s.errorPagePath(caseNumber)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", fmt.Errorf("writing error page: %w", err)
	}
	return path, nil
}
