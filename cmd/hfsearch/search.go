package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"hfsearch/internal/export"
	"hfsearch/internal/hub"
	"hfsearch/internal/models"
	"hfsearch/internal/render"
	"hfsearch/internal/search"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// searchTarget describes one search subcommand (models or datasets).
type searchTarget struct {
	use     string
	short   string
	kind    models.Kind
	hasTask bool
	run     func(ctx context.Context, svc *search.Service, opts search.Options) ([]models.Record, error)
}

var searchModels = searchTarget{
	use:     "models",
	short:   "Search for models",
	kind:    models.KindModel,
	hasTask: true,
	run: func(ctx context.Context, svc *search.Service, opts search.Options) ([]models.Record, error) {
		return svc.Models(ctx, opts)
	},
}

var searchDatasets = searchTarget{
	use:   "datasets",
	short: "Search for datasets",
	kind:  models.KindDataset,
	run: func(ctx context.Context, svc *search.Service, opts search.Options) ([]models.Record, error) {
		return svc.Datasets(ctx, opts)
	},
}

// newSearchCmd builds the models or datasets subcommand.
func newSearchCmd(a *app, target searchTarget) *cobra.Command {
	var (
		opts         search.Options
		doExport     bool
		exportFormat string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   target.use,
		Short: target.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, a, target, opts, doExport, exportFormat, outputPath)
		},
	}

	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Search query/keywords")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 0, "Maximum number of results to return (default from config)")
	cmd.Flags().StringVarP(&opts.Author, "author", "a", "", "Filter by author/organization")
	cmd.Flags().StringSliceVar(&opts.Tags, "tags", nil, "Filter by tags (comma-separated or repeated)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort results by field (downloads, likes, ...)")
	cmd.Flags().StringVar(&opts.Direction, "direction", "", "Sort direction: asc or desc")
	cmd.Flags().BoolVarP(&doExport, "export", "e", false, "Export results to a file (auto-generates filename)")
	cmd.Flags().StringVar(&exportFormat, "export-format", "", "Export format: csv, txt or json (default from config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Export file path (overrides the generated filename)")

	if target.hasTask {
		cmd.Flags().StringVar(&opts.Task, "task", "", "Filter by task (e.g. text-classification, translation)")
	}

	return cmd
}

// runSearch executes one search, renders the results, and exports them when
// requested.
func runSearch(cmd *cobra.Command, a *app, target searchTarget, opts search.Options, doExport bool, exportFormat, outputPath string) error {
	client := hub.NewClient(a.cfg, a.log)
	svc := search.NewService(client, a.cfg, a.log)
	out := cmd.OutOrStdout()

	var spinner *render.Spinner
	if !a.quiet && term.IsTerminal(int(os.Stderr.Fd())) {
		spinner = render.NewSpinner(os.Stderr, "Searching Hugging Face Hub...")
		spinner.Start()
	}

	records, err := target.run(cmd.Context(), svc, opts)

	if spinner != nil {
		spinner.Stop()
	}

	if err != nil {
		return err
	}

	if len(records) == 0 {
		render.NoResults(out, target.kind)

		return nil
	}

	if a.jsonOutput {
		if err := export.Write(out, export.FormatJSON, target.kind, records); err != nil {
			return err
		}
	} else {
		render.Table(out, target.kind, records)

		if !a.quiet {
			render.Summary(out, target.kind, len(records))
		}
	}

	if !doExport && outputPath == "" {
		return nil
	}

	return exportResults(out, a, target.kind, records, exportFormat, outputPath)
}

// exportResults writes records to a file and reports the path.
func exportResults(out io.Writer, a *app, kind models.Kind, records []models.Record, formatName, path string) error {
	if formatName == "" {
		formatName = a.cfg.Export.Format
	}

	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if path == "" {
		path = filepath.Join(a.cfg.Export.Dir, export.Filename(kind, format, time.Now()))
	}

	if err := export.WriteFile(path, format, kind, records); err != nil {
		return err
	}

	a.log.Debug("export written", "path", path, "format", string(format), "records", len(records))

	if !a.quiet {
		fmt.Fprintf(out, "Results exported to %s\n", path)
	}

	return nil
}
