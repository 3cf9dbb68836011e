package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"notes-to-tasks/config"
	"notes-to-tasks/internal/bootstrap"
	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/pkg/log"
)

// buildFunc builds the use case for one invocation. Tests swap it out.
type buildFunc func(ctx context.Context, configFile string, opts bootstrap.Options, logOut io.Writer, verbose bool) (suggestion.UseCase, error)

// NewRootCmd returns the notetasks command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(buildUseCase)
}

func newRootCmd(build buildFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "notetasks",
		Short:        "Turn notes into task suggestions",
		Long:         `notetasks reads a free-form note or a photo of one and prints the action items it finds, with priority, due date and tags.`,
		Version:      "0.1.0",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newExtractCmd(build))
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func buildUseCase(ctx context.Context, configFile string, opts bootstrap.Options, logOut io.Writer, verbose bool) (suggestion.UseCase, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	level := "error"
	if verbose {
		level = cfg.Logger.Level
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
		Output:   logOut,
	})

	return bootstrap.NewSuggestionUseCase(ctx, cfg, logger, opts)
}
