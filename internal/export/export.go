// Package export writes search results to delimited and structured files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hfsearch/internal/models"
)

// ErrUnknownFormat indicates an unsupported export format name.
var ErrUnknownFormat = errors.New("unknown export format")

// Format identifies an export file format.
type Format string

// Supported export formats.
const (
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name from config or CLI flags.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatTXT:
		return FormatTXT, nil
	case FormatJSON:
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Filename generates the default export filename for a result set, e.g.
// "models_search_20260823_153000.csv".
func Filename(kind models.Kind, format Format, now time.Time) string {
	return fmt.Sprintf("%s_search_%s.%s", kind.Plural(), now.Format("20060102_150405"), format)
}

// Write serializes records in the given format to w.
func Write(w io.Writer, format Format, kind models.Kind, records []models.Record) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, kind, records)
	case FormatTXT:
		return writeTXT(w, kind, records)
	case FormatJSON:
		return writeJSON(w, records)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile writes records to path, creating parent directories as needed.
func WriteFile(path string, format Format, kind models.Kind, records []models.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Write(f, format, kind, records); err != nil {
		_ = f.Close()

		return fmt.Errorf("failed to write export file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	return nil
}
