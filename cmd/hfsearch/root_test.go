package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Tree(t *testing.T) {
	cmd := newRootCmd()

	require.NotNil(t, cmd)
	assert.Equal(t, "hfsearch", cmd.Use)

	for _, name := range []string{"config", "json", "quiet", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing global flag: %s", name)
	}

	for _, name := range []string{"models", "datasets", "version"} {
		found := false

		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true

				break
			}
		}

		assert.True(t, found, "missing subcommand: %s", name)
	}
}

func TestSearchCommand_Flags(t *testing.T) {
	cmd := newRootCmd()

	modelsCmd, _, err := cmd.Find([]string{"models"})
	require.NoError(t, err)

	for _, name := range []string{"query", "limit", "author", "tags", "task", "sort", "direction", "export", "export-format", "output"} {
		assert.NotNil(t, modelsCmd.Flags().Lookup(name), "models missing flag: %s", name)
	}

	datasetsCmd, _, err := cmd.Find([]string{"datasets"})
	require.NoError(t, err)

	assert.Nil(t, datasetsCmd.Flags().Lookup("task"), "datasets should not have a task flag")
	assert.NotNil(t, datasetsCmd.Flags().Lookup("query"))
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "hfsearch version")
}

// writeHubConfig writes a config pointing at the test server and returns
// its path.
func writeHubConfig(t *testing.T, endpoint string) string {
	t.Helper()

	content := fmt.Sprintf("hub:\n  endpoint: %q\nretry:\n  max_attempts: 1\n  initial_delay_ms: 0\n", endpoint)
	path := filepath.Join(t.TempDir(), "hfsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestModelsCommand_RendersTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/models", r.URL.Path)
		assert.Equal(t, "bert", r.URL.Query().Get("search"))

		_, _ = w.Write([]byte(`[{"id": "google/bert-base", "author": "google", "downloads": 1200, "likes": 45, "tags": ["pytorch"]}]`))
	}))
	defer srv.Close()

	cmd := newRootCmd()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"models", "--query", "bert", "--config", writeHubConfig(t, srv.URL)})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Model Search Results")
	assert.Contains(t, out, "google/bert-base")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "Found 1 models")
}

func TestDatasetsCommand_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/datasets", r.URL.Path)

		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cmd := newRootCmd()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"datasets", "--query", "nothing", "--config", writeHubConfig(t, srv.URL)})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No datasets found matching your criteria.")
}

func TestModelsCommand_JSONOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": "bert-tiny", "likes": 2}]`))
	}))
	defer srv.Close()

	cmd := newRootCmd()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"models", "--json", "--config", writeHubConfig(t, srv.URL)})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, `"id": "bert-tiny"`)
	assert.NotContains(t, out, "Model Search Results")
}

func TestModelsCommand_ExportToFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": "google/bert-base", "author": "google", "downloads": 1200, "likes": 45}]`))
	}))
	defer srv.Close()

	outPath := filepath.Join(t.TempDir(), "results.csv")

	cmd := newRootCmd()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"models", "--export", "--output", outPath, "--config", writeHubConfig(t, srv.URL)})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Results exported to "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Model ID,Author,Downloads,Likes,Tags")
	assert.Contains(t, string(data), "google/bert-base")
}

func TestModelsCommand_BadExportFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": "bert-tiny"}]`))
	}))
	defer srv.Close()

	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"models", "--export", "--export-format", "xml", "--config", writeHubConfig(t, srv.URL)})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCodeFromError(err))
}

func TestModelsCommand_HubError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "down for maintenance"}`))
	}))
	defer srv.Close()

	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"models", "--config", writeHubConfig(t, srv.URL)})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down for maintenance")
	assert.Equal(t, ExitNetworkError, exitCodeFromError(err))
}

func TestExitCodeFromError_Default(t *testing.T) {
	assert.Equal(t, ExitGeneralError, exitCodeFromError(assert.AnError))
}

func TestInvalidFlag_ExitCode(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"models", "--no-such-flag"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCodeFromError(err))
}

func TestInvalidFlagValue_ExitCode(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"models", "--limit", "abc"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCodeFromError(err))
}
