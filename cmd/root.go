// Package cmd implements the brandkit command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/brandkit/api/config"
	"github.com/brandkit/api/logger"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	lo.Must0(viper.BindPFlag(config.LogLevel, rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")
	lo.Must0(viper.BindPFlag(config.LogJSON, rootCmd.PersistentFlags().Lookup("json-logs")))
}

var rootCmd = &cobra.Command{
	Use:           "brandkit",
	Short:         "Brand palettes and type scales, served over HTTP or computed locally",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Setup(); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Setup(os.Stderr)
		return nil
	},
}

// Execute runs the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		handleErr(err)
	}
}

func handleErr(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", failStyle.Render("✖"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
