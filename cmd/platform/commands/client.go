package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
	"github.com/fivetwenty-io/platform-client/pkg/platformclient"
)

// userAgent is reported by every request the CLI sends.
var userAgent = "platform-cli/dev"

// CreateClient builds a Platform API client from flags, PLATFORM_* env and
// the config file, in that order of precedence.
func CreateClient(cmd *cobra.Command) (platform.Client, error) {
	apiKey := viper.GetString(keyAPIKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	config := &platform.Config{
		APIKey:    apiKey,
		BaseURL:   viper.GetString(keyBaseURL),
		Timeout:   viper.GetDuration(keyTimeout),
		UserAgent: userAgent,
	}

	if viper.GetBool(keyVerbose) {
		config.Debug = true
		config.Logger = platform.NewConsoleLogger(cmd.ErrOrStderr(), zerolog.DebugLevel)
	}

	return platformclient.New(config)
}
