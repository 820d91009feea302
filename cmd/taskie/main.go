package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"taskie/config"
	"taskie/internal/session"
	cliDelivery "taskie/internal/task/delivery/cli"
	"taskie/internal/task/usecase"
	"taskie/pkg/log"
	"taskie/pkg/taskie"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Session
	sess, err := session.Open(session.NewFileStore(cfg.Client.SessionFile))
	if err != nil {
		logger.Warnf(ctx, "Ignoring unreadable session file %s: %v", cfg.Client.SessionFile, err)
		sess = session.New()
	}

	// 4. Taskie client
	httpClient := taskie.NewHTTPClient(taskie.TransportConfig{
		Timeout:   cfg.Client.Timeout,
		LogBodies: cfg.Client.LogBodies,
	}, logger, sess)
	api := taskie.NewClient(cfg.Client.BaseURL, httpClient)
	logger.Debugf(ctx, "Taskie API: %s", api.BaseURL())

	// 5. Commands
	taskUC := usecase.New(logger, api, sess)
	handler := cliDelivery.New(logger, taskUC, os.Stdout, cfg.Logger.ColorEnabled)

	rootCmd := &cobra.Command{
		Use:           "taskie",
		Short:         "Taskie - a to-do list client",
		Long:          `Taskie manages your to-do list on a Taskie server from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(handler.Commands()...)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Request failed:", err)
		stop()
		os.Exit(1)
	}
}
