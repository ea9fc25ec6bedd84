package main

import (
	"strings"

	"github.com/deppfellow/humanizer/internal/humanize"
	"github.com/deppfellow/humanizer/internal/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// errAlerted signals a failure the user has already been told about.
var errAlerted = errors.New("request failed")

type runOptions struct {
	text     string
	mode     string
	ultra    bool
	endpoint string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [text]",
		Short: "Humanize text once and print the result and confidence",
		Long: "Posts the text to the configured humanize endpoint and prints the\n" +
			"result followed by the confidence score. Text comes from --text or\n" +
			"the positional arguments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.text == "" && len(args) > 0 {
				opts.text = strings.Join(args, " ")
			}
			return runOnce(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "text to humanize")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", `mode passed to the engine (default "standard")`)
	cmd.Flags().BoolVarP(&opts.ultra, "ultra", "u", false, "enable ultra mode")
	cmd.Flags().StringVarP(&opts.endpoint, "endpoint", "e", "", "override the configured endpoint URL")

	return cmd
}

func runOnce(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Diagnostics go to stderr so stdout carries only the result.
	log := logger.NewLogger(cfg.Observability).Output(cmd.ErrOrStderr())

	endpoint := cfg.Client.Endpoint
	if opts.endpoint != "" {
		endpoint = opts.endpoint
	}

	view := humanize.NewTerminalView(cmd.OutOrStdout(), cmd.ErrOrStderr())
	client := humanize.NewClient(endpoint, humanize.WithLogger(&log))
	h := humanize.NewHandler(client, view, &log)

	if err := h.Handle(cmd.Context(), humanize.FormState{
		Text:  opts.text,
		Mode:  opts.mode,
		Ultra: opts.ultra,
	}); err != nil {
		return errAlerted
	}

	return nil
}
