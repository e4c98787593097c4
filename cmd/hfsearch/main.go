// Command hfsearch searches the Hugging Face Hub for models and datasets,
// renders results as terminal tables, and optionally exports them to files.
package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"hfsearch/internal/config"
	"hfsearch/internal/export"
	"hfsearch/internal/hub"
)

// version is overridable at build time with -ldflags.
var version = "1.0.0"

// errInvalidUsage marks flag-parse and usage errors so they map to
// ExitInvalidArgs. Set as the command tree's flag error func.
var errInvalidUsage = errors.New("invalid usage")

// CLI exit codes for standardized error reporting.
const (
	// ExitSuccess indicates the operation completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidArgs indicates invalid command line arguments or config.
	ExitInvalidArgs = 2

	// ExitNetworkError indicates a network or hub API failure.
	ExitNetworkError = 3

	// ExitUnauthorized indicates the hub rejected the access token.
	ExitUnauthorized = 4
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFromError(err))
	}

	os.Exit(ExitSuccess)
}

// exitCodeFromError maps known error types to exit codes.
func exitCodeFromError(err error) int {
	var urlErr *url.Error

	switch {
	case errors.Is(err, errInvalidUsage):
		return ExitInvalidArgs
	case errors.Is(err, hub.ErrUnauthorized):
		return ExitUnauthorized
	case errors.Is(err, hub.ErrRateLimited),
		errors.Is(err, hub.ErrUnexpectedStatusCode),
		errors.As(err, &urlErr):
		return ExitNetworkError
	case errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, config.ErrInvalidExportFormat),
		errors.Is(err, config.ErrInvalidLogLevel):
		return ExitInvalidArgs
	}

	return ExitGeneralError
}
