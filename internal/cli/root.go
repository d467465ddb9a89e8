// Package cli implements the fraction console command.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/govalues/fraction/internal/config"
	"github.com/govalues/fraction/internal/logger"
)

// Execute runs the fraction command and exits with status 1 on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
		precision  int
		noWait     bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:          "fraction",
		Short:        "Add, subtract, multiply and divide two fractions",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("precision") {
				cfg.Precision = precision
			}
			if flags.Changed("no-wait") {
				cfg.Wait = !noWait
			}
			if flags.Changed("log-file") {
				cfg.LogFile = logFile
			}
			if flags.Changed("debug") {
				cfg.Debug = debug
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, cleanup, err := logger.Setup(logger.Config{
				Path:  cfg.LogFile,
				Debug: cfg.Debug,
			})
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			s := NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, log)
			return s.Run()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (.toml, .yaml or .yml)")
	cmd.Flags().IntVarP(&precision, "precision", "p", -1, "Decimal places for values (-1 prints the shortest float)")
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Exit without waiting for a final line of input")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Append JSON logs to this file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable verbose logging")
	return cmd
}
