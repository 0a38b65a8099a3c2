package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/platform-client/internal/constants"
)

// FileConfig is the on-disk CLI configuration.
type FileConfig struct {
	APIKey  string `json:"api_key"            yaml:"api_key"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout string `json:"timeout,omitempty"  yaml:"timeout,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure API credentials",
		Long: `Store the API key and endpoint in $HOME/.platform/config.yml.

The API key is read from --api-key or prompted for without echo.`,
		RunE: runConfigure,
	}

	cmd.AddCommand(newConfigureShowCommand())

	return cmd
}

func runConfigure(cmd *cobra.Command, _ []string) error {
	current := currentFileConfig()

	apiKey := current.APIKey
	if cmd.Flags().Changed("api-key") {
		apiKey = viper.GetString(keyAPIKey)
	} else {
		entered, err := promptSecret(cmd, fmt.Sprintf("API key [%s]: ", maskSecret(current.APIKey)))
		if err != nil {
			return err
		}

		if entered != "" {
			apiKey = entered
		}
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return constants.ErrEmptyAPIKeyInput
	}

	current.APIKey = apiKey

	path, err := saveFileConfig(current)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)

	return nil
}

func newConfigureShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := currentFileConfig()
			config.APIKey = maskSecret(config.APIKey)

			return renderDetails(cmd.OutOrStdout(), config, []detailRow{
				{"API Key", config.APIKey},
				{"Base URL", valueOr(config.BaseURL, constants.DefaultBaseURL)},
				{"Timeout", valueOr(config.Timeout, constants.DefaultHTTPTimeout.String())},
				{"Output", config.Output},
				{"Config File", valueOr(viper.ConfigFileUsed(), constants.None)},
			})
		},
	}
}

// currentFileConfig returns the effective configuration from viper.
func currentFileConfig() FileConfig {
	config := FileConfig{
		APIKey:  viper.GetString(keyAPIKey),
		BaseURL: viper.GetString(keyBaseURL),
		Output:  viper.GetString(keyOutput),
	}

	if timeout := viper.GetDuration(keyTimeout); timeout > 0 {
		config.Timeout = timeout.String()
	}

	return config
}

func saveFileConfig(config FileConfig) (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configDir, err := configDirectory()
		if err != nil {
			return "", err
		}

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, constants.ConfigFileName+".yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}

// promptSecret reads a line without echo when stdin is a terminal.
func promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)

	if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		secret, err := term.ReadPassword(int(file.Fd()))

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func maskSecret(secret string) string {
	const visible = 4

	if secret == "" {
		return constants.None
	}

	if len(secret) <= visible {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-visible:]
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// promptLine reads one trimmed, lower-cased line from stdin.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.ToLower(strings.TrimSpace(line)), nil
}
