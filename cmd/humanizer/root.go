package main

import (
	"github.com/deppfellow/humanizer/internal/config"
	"github.com/deppfellow/humanizer/internal/logger"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "humanizer",
		Short:         "Humanize text through a remote humanize API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newRunCmd())

	return root
}

// loadConfig loads the config and reports failures on a bootstrap logger,
// since the real logger depends on the config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap := logger.NewLogger(config.DefaultObservabilityConfig())
		bootstrap.Error().Err(err).Msg("could not load config")
		return nil, err
	}
	return cfg, nil
}
