package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"hfsearch/internal/models"
	"hfsearch/pkg/utils"
)

// writeTXT writes records as a numbered plain-text report.
func writeTXT(w io.Writer, kind models.Kind, records []models.Record) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s Search Results\n", kind.Singular())
	fmt.Fprintln(bw, strings.Repeat("=", 80))
	fmt.Fprintln(bw)

	for i, rec := range records {
		fmt.Fprintf(bw, "%d. %s\n", i+1, rec.ID)
		fmt.Fprintf(bw, "   Author: %s\n", rec.Author)
		fmt.Fprintf(bw, "   Downloads: %s\n", utils.FormatCount(rec.Downloads))
		fmt.Fprintf(bw, "   Likes: %s\n", utils.FormatCount(rec.Likes))

		if len(rec.Tags) > 0 {
			fmt.Fprintf(bw, "   Tags: %s\n", rec.AllTags())
		}

		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "\nTotal: %d %s\n", len(records), kind.Plural())

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write TXT report: %w", err)
	}

	return nil
}
