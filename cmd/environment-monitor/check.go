package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/environment-monitor/internal/monitor"
	"github.com/username/environment-monitor/internal/tray"
	"go.uber.org/zap"
)

// sourceReader is an environment reader that can name where it reads from
type sourceReader interface {
	monitor.EnvReader
	Source() string
}

// checkCmd builds the check command. The constructors run at execution
// time, after the logger is set up.
func checkCmd(newReader func() sourceReader, newNotifier func() tray.Notifier) *cobra.Command {
	var notify bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Measure the machine Path variable once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := newReader()

			measurement, err := monitor.Measure(reader, monitor.VariableName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Source:    %s\n", reader.Source())
			if !measurement.Present {
				fmt.Fprintf(out, "Variable:  %s (not set)\n", measurement.Name)
				return nil
			}
			fmt.Fprintf(out, "Variable:  %s\n", measurement.Name)
			fmt.Fprintf(out, "Length:    %d / %d characters\n", measurement.Length, monitor.LengthThreshold)

			if !measurement.Exceeds() {
				fmt.Fprintln(out, "Status:    ok")
				return nil
			}

			message := monitor.AlertMessage(measurement.Length)
			fmt.Fprintf(out, "Status:    %s\n", message)

			if notify {
				err := newNotifier().Notify(monitor.Notification{
					Title:    monitor.DefaultApplicationName,
					Message:  message,
					Duration: cfg.Monitor.GetAlertDuration(),
				})
				if err != nil {
					logger.Warn("Failed to show notification", zap.Error(err))
					return fmt.Errorf("failed to show notification: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&notify, "notify", false, "Also show a desktop notification when the limit is exceeded")

	return cmd
}
