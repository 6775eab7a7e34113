package cmd

import (
	"fmt"

	"github.com/brandkit/api/palette"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(contrastCmd)
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <color> [against]",
	Short: "Check WCAG contrast against white and black, or another color",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := palette.ParseColor(args[0])
		if err != nil {
			return err
		}
		acc, err := palette.CheckAccessibility(v.Hex)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s  %s\n", swatch(v, acc, " "+v.Hex), badges(acc), contrastLine(acc))

		if len(args) == 2 {
			other, err := palette.ParseColor(args[1])
			if err != nil {
				return err
			}
			ratio, err := palette.ContrastRatio(v.Hex, other.Hex)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s on %s: %.2f:1\n", v.Hex, other.Hex, ratio)
		}
		return nil
	},
}
