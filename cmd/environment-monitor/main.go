package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/username/environment-monitor/internal/config"
	"github.com/username/environment-monitor/internal/envreader"
	"github.com/username/environment-monitor/internal/monitor"
	"github.com/username/environment-monitor/internal/tray"
	"go.uber.org/zap"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "environment-monitor",
		Short: "Environment Monitor",
		Long:  "Tray utility that warns when the machine Path variable grows longer than 2048 characters",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonitor(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: config.yaml in . or $HOME/.environment-monitor)")

	rootCmd.AddCommand(checkCmd(
		func() sourceReader { return envreader.NewMachineReader(logger) },
		func() tray.Notifier { return tray.NewNotifier(monitor.DefaultApplicationName, logger) },
	))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMonitor owns the tray event loop. The monitor is disposed when the
// loop ends, whichever way it ends.
func runMonitor(ctx context.Context) error {
	presence := tray.New(tray.NewNotifier(monitor.DefaultApplicationName, logger), logger)
	reader := envreader.NewMachineReader(logger)

	proc, err := monitor.New(
		cfg.Monitor.GetInterval(),
		cfg.Monitor.GetAlertDuration(),
		presence,
		monitor.NewTicker(),
		reader,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create monitor: %w", err)
	}
	defer func() {
		if err := proc.Dispose(); err != nil {
			logger.Warn("Failed to dispose monitor", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		presence.Quit()
	}()

	logger.Info("Starting environment monitor",
		zap.String("source", reader.Source()),
		zap.String("variable", monitor.VariableName))

	if err := presence.Run(proc.Start); err != nil {
		return fmt.Errorf("failed to start monitor: %w", err)
	}
	return nil
}
