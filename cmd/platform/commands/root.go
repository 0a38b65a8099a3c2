package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/platform-client/internal/constants"
)

// Viper keys shared by the root flags, the config file and PLATFORM_* env.
const (
	keyAPIKey  = "api_key"
	keyBaseURL = "base_url"
	keyTimeout = "timeout"
	keyOutput  = "output"
	keyVerbose = "verbose"
)

// NewRootCommand creates the platform command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	userAgent = "platform-cli/" + version

	rootCmd := &cobra.Command{
		Use:   "platform",
		Short: "Platform API CLI",
		Long: `A command-line interface for the Platform API.

Manage projects, customers, reservations, orders, menus, products and
voice agents from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.platform/config.yml)")
	flags.String("api-key", "", "Platform API key")
	flags.String("base-url", "", "API base URL")
	flags.Duration("timeout", 0, "request timeout (default 30s)")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log HTTP requests and responses to stderr")

	_ = viper.BindPFlag(keyAPIKey, flags.Lookup("api-key"))
	_ = viper.BindPFlag(keyBaseURL, flags.Lookup("base-url"))
	_ = viper.BindPFlag(keyTimeout, flags.Lookup("timeout"))
	_ = viper.BindPFlag(keyOutput, flags.Lookup("output"))
	_ = viper.BindPFlag(keyVerbose, flags.Lookup("verbose"))

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigureCommand())
	rootCmd.AddCommand(NewOrgsCommand())
	rootCmd.AddCommand(NewProjectsCommand())
	rootCmd.AddCommand(NewCustomersCommand())
	rootCmd.AddCommand(NewReservationsCommand())
	rootCmd.AddCommand(NewOrdersCommand())
	rootCmd.AddCommand(NewMenusCommand())
	rootCmd.AddCommand(NewProductsCommand())
	rootCmd.AddCommand(NewDeploymentsCommand())
	rootCmd.AddCommand(NewPhoneNumbersCommand())
	rootCmd.AddCommand(NewVoiceCommand())

	return rootCmd
}

func initConfig(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := configDirectory()
		if err != nil {
			return err
		}

		// Search config in ~/.platform/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName(constants.ConfigFileName)
	}

	// PLATFORM_API_KEY, PLATFORM_BASE_URL, ...
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else if viper.GetBool(keyVerbose) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}

	output := viper.GetString(keyOutput)
	if !slices.Contains([]string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}, output) {
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, output)
	}

	return nil
}

func configDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName), nil
}
