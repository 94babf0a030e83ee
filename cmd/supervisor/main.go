package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jwalitptl/healthcare-platform/internal/supervisor"
	"github.com/jwalitptl/healthcare-platform/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "supervisor",
		Short:        "Run the API server and the auxiliary server together",
		Long:         "Settings are read from SUPERVISOR_* environment variables.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(startCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newManager() (*supervisor.Manager, *logger.Logger, error) {
	cfg, err := supervisor.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	l := logger.Setup(&logger.Config{Level: cfg.LogLevel})
	return supervisor.NewManager(*cfg, l, os.Stdout), l, nil
}

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Check requirements, set up the database and supervise the servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, l, err := newManager()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := m.Run(ctx); err != nil {
				l.Error(err, "Supervisor stopped")
				return err
			}
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify commands and required paths without starting anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := newManager()
			if err != nil {
				return err
			}
			return m.CheckRequirements()
		},
	}
}
