// Package render formats search results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"hfsearch/internal/models"
	"hfsearch/pkg/utils"

	"github.com/mattn/go-runewidth"
)

// tagColumnLimit is how many tags the table shows before truncating.
const tagColumnLimit = 3

// column indexes with right-justified numeric content.
var numericColumns = map[int]bool{2: true, 3: true}

// Table renders search results as a width-aware terminal table.
func Table(w io.Writer, kind models.Kind, records []models.Record) {
	headers := []string{kind.IDHeader(), "Author", "Downloads", "Likes", "Tags"}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.ID,
			rec.Author,
			utils.FormatCount(rec.Downloads),
			utils.FormatCount(rec.Likes),
			rec.TagSummary(tagColumnLimit),
		})
	}

	widths := columnWidths(headers, rows)

	fmt.Fprintf(w, "%s Search Results\n", kind.Singular())
	fmt.Fprintln(w, formatRow(headers, widths, nil))
	fmt.Fprintln(w, separatorRow(widths))

	for _, row := range rows {
		fmt.Fprintln(w, formatRow(row, widths, numericColumns))
	}
}

// Summary prints the trailing result count line.
func Summary(w io.Writer, kind models.Kind, count int) {
	fmt.Fprintf(w, "\nFound %d %s\n", count, kind.Plural())
}

// NoResults prints the empty-result notice.
func NoResults(w io.Writer, kind models.Kind) {
	fmt.Fprintf(w, "No %s found matching your criteria.\n", kind.Plural())
}

// columnWidths returns the display width of each column, using
// runewidth so wide runes line up.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))

	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			width := runewidth.StringWidth(row[i])
			if width > widths[i] {
				widths[i] = width
			}
		}
	}

	return widths
}

func formatRow(cells []string, widths []int, rightJustified map[int]bool) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, width := range widths {
		content := ""
		if i < len(cells) {
			content = cells[i]
		}

		padding := width - runewidth.StringWidth(content)
		if padding < 0 {
			padding = 0
		}

		sb.WriteString(" ")

		if rightJustified[i] {
			sb.WriteString(strings.Repeat(" ", padding))
			sb.WriteString(content)
		} else {
			sb.WriteString(content)
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func separatorRow(widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
