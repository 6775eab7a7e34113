package cmd

import (
	"fmt"

	"github.com/brandkit/api/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "List configuration keys, their environment variables and current values",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, field := range config.Fields() {
			value := viper.Get(field.Key)
			if field.Key == config.DBPassword && viper.GetString(field.Key) != "" {
				value = "********"
			}
			fmt.Fprintf(out, "%s = %v\n  %s\n", headerStyle.Render(field.Key), value,
				mutedStyle.Render(field.Env()+"  "+field.Description))
		}
	},
}
