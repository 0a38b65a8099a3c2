package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/platform-client/cmd/platform/commands"
)

const testAPIKey = "pk_test_cli"

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

type commandResult struct {
	Stdout string
	Stderr string
	Err    error
}

// executeCommand runs the CLI with a fresh viper state and an empty HOME.
// Tests using it cannot run in parallel.
func executeCommand(t *testing.T, stdin string, args ...string) commandResult {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	root := commands.NewRootCommand("1.2.3", "abc123", "2026-10-01")

	var stdout, stderr bytes.Buffer

	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return commandResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// apiArgs prefixes args with the flags pointing the CLI at a test server.
func apiArgs(serverURL string, args ...string) []string {
	return append([]string{"--api-key", testAPIKey, "--base-url", serverURL}, args...)
}

func writeEnvelope(writer http.ResponseWriter, status int, data interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func writeError(writer http.ResponseWriter, status int, code, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"success": false,
		"error":   map[string]interface{}{"code": code, "message": message},
	})
}

func pageOf(items []map[string]interface{}, page, pageSize, total int) map[string]interface{} {
	totalPages := (total + pageSize - 1) / pageSize

	return map[string]interface{}{
		"data": items,
		"meta": map[string]interface{}{
			"page":            page,
			"pageSize":        pageSize,
			"totalCount":      total,
			"totalPages":      totalPages,
			"hasNextPage":     page < totalPages,
			"hasPreviousPage": page > 1,
		},
	}
}
