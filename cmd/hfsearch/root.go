package main

import (
	"fmt"
	"os"

	"hfsearch/internal/config"
	"hfsearch/internal/logger"

	"github.com/spf13/cobra"
)

// defaultConfigPath is probed when --config is not given.
const defaultConfigPath = "configs/hfsearch.yaml"

// app carries state shared across subcommands, resolved in
// PersistentPreRunE before any RunE executes.
type app struct {
	configPath string
	jsonOutput bool
	quiet      bool
	verbose    bool

	cfg *config.Config
	log *logger.Logger
}

// newRootCmd builds the hfsearch command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "hfsearch",
		Short: "Search the Hugging Face Hub",
		Long:  "Search the Hugging Face Hub for models and datasets, with terminal tables and CSV/TXT/JSON export.",
		Example: `  hfsearch models --query "bert"
  hfsearch models --query "translation" --limit 20
  hfsearch models --author google --limit 5
  hfsearch datasets --query "sentiment"
  hfsearch datasets --tags text-classification --limit 15
  hfsearch models --query "bert" --export
  hfsearch models --query "bert" --export --export-format txt`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}

			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", errInvalidUsage, err)
	})

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to YAML configuration file")
	cmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output results as JSON instead of a table")
	cmd.PersistentFlags().BoolVar(&a.quiet, "quiet", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newSearchCmd(a, searchModels))
	cmd.AddCommand(newSearchCmd(a, searchDatasets))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup resolves configuration and the logger. Precedence: --config flag,
// then configs/hfsearch.yaml in the working directory, then defaults.
func (a *app) setup() error {
	switch {
	case a.configPath != "":
		cfg, err := config.LoadConfig(a.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		a.cfg = cfg
	default:
		if _, err := os.Stat(defaultConfigPath); err == nil {
			cfg, err := config.LoadConfig(defaultConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load default config: %w", err)
			}

			a.cfg = cfg
		} else {
			a.cfg = config.DefaultConfig()
		}
	}

	level := a.cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}

	a.log = logger.NewLogger(level)

	return nil
}

// newVersionCmd reports the build version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hfsearch version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hfsearch version %s\n", version)
		},
	}
}
