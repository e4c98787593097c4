package export

import (
	"encoding/json"
	"fmt"
	"io"

	"hfsearch/internal/models"
)

// writeJSON writes records as an indented JSON array.
func writeJSON(w io.Writer, records []models.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}
