package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"hfsearch/internal/models"
	"hfsearch/pkg/utils"
)

// writeCSV writes records as CSV with a header row. Counts carry thousands
// separators and the tags column joins every tag.
func writeCSV(w io.Writer, kind models.Kind, records []models.Record) error {
	cw := csv.NewWriter(w)

	header := []string{kind.IDHeader(), "Author", "Downloads", "Likes", "Tags"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Author,
			utils.FormatCount(rec.Downloads),
			utils.FormatCount(rec.Likes),
			rec.AllTags(),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
