package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/platform-client/cmd/platform/commands"
	"github.com/fivetwenty-io/platform-client/internal/constants"
)

func readSavedConfig(t *testing.T) commands.FileConfig {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), constants.ConfigDirName, constants.ConfigFileName+".yml"))
	require.NoError(t, err)

	var config commands.FileConfig
	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

func TestConfigureCommand_FromFlag(t *testing.T) {
	result := executeCommand(t, "", "configure", "--api-key", "pk_live_abcdef", "--base-url", "https://api.example.com")
	require.NoError(t, result.Err)

	assert.Contains(t, result.Stdout, "Configuration saved to")

	config := readSavedConfig(t)
	assert.Equal(t, "pk_live_abcdef", config.APIKey)
	assert.Equal(t, "https://api.example.com", config.BaseURL)
	assert.Equal(t, constants.FormatTable, config.Output)
}

func TestConfigureCommand_Prompt(t *testing.T) {
	t.Setenv("PLATFORM_API_KEY", "")

	result := executeCommand(t, "pk_prompted_9876\n", "configure")
	require.NoError(t, result.Err)

	assert.Contains(t, result.Stderr, "API key [none]:")
	assert.Equal(t, "pk_prompted_9876", readSavedConfig(t).APIKey)
}

func TestConfigureCommand_EmptyInput(t *testing.T) {
	t.Setenv("PLATFORM_API_KEY", "")

	result := executeCommand(t, "\n", "configure")
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, constants.ErrEmptyAPIKeyInput)
}

func TestConfigureCommand_ShowMasksKey(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("api_key: pk_live_secret1234\ntimeout: 10s\n"), 0o600))

	result := executeCommand(t, "", "configure", "show", "--config", configFile)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Stdout, "***1234")
	assert.NotContains(t, result.Stdout, "pk_live_secret1234")
	assert.Contains(t, result.Stdout, "10s")
}

func TestConfigureCommand_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "platform.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("output: json\n"), 0o600))

	result := executeCommand(t, "", "configure", "--config", configFile, "--api-key", "pk_file_0001")
	require.NoError(t, result.Err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var config commands.FileConfig
	require.NoError(t, yaml.Unmarshal(data, &config))
	assert.Equal(t, "pk_file_0001", config.APIKey)
	assert.Equal(t, constants.FormatJSON, config.Output)
}
