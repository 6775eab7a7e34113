package cmd

import (
	"fmt"
	"strings"

	"github.com/brandkit/api/palette"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	formats := strings.Join(lo.Map(palette.Formats, func(f palette.Format, _ int) string { return string(f) }), ", ")
	convertCmd.Flags().String("from", "", "Input notation, detected when empty")
	convertCmd.Flags().String("to", string(palette.FormatOKLCH), "Output notation: "+formats)
}

var convertCmd = &cobra.Command{
	Use:     "convert <color>",
	Short:   "Convert a color between notations",
	Example: "  brandkit convert '#0033a0' --to pantone\n  brandkit convert 'cmyk(100%, 68%, 0%, 12%)' --to rgb",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from := palette.Format(lo.Must(cmd.Flags().GetString("from")))
		to := palette.Format(lo.Must(cmd.Flags().GetString("to")))

		result, err := palette.ConvertColor(args[0], from, to)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}
