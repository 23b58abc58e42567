package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/semhl/cmd/semhl/decode"
	"github.com/walteh/semhl/cmd/semhl/scopes"
	loghooks "github.com/walteh/semhl/pkg/debug"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "semhl",
		Short: "debug tools for the semantic highlighting wire format",
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	rootCmd.AddCommand(decode.NewDecodeCommand())
	rootCmd.AddCommand(scopes.NewScopesCommand())

	logger := zerolog.New(zerolog.NewConsoleWriter()).
		Hook(loghooks.TimeHook{}).
		Hook(loghooks.CallerHook{WithColor: true})
	ctx := logger.WithContext(context.Background())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
