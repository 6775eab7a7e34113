package cmd

import (
	"fmt"

	"github.com/brandkit/api/palette"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().IntP("steps", "n", palette.DefaultSteps, "Number of steps")
	paletteCmd.Flags().Bool("chroma", false, "Vary chroma at the base lightness instead of walking lightness")
	paletteCmd.Flags().Float64("hue-shift", 0, "Total hue drift across the palette, in degrees")
	paletteCmd.Flags().String("distribution", string(palette.Linear), "Lightness easing: linear, easeIn, easeOut, s-curve")
	paletteCmd.Flags().String("chroma-mode", string(palette.ChromaConstant), "Chroma curve: constant, increase, decrease")
	paletteCmd.Flags().Bool("unlock-base", false, "Let the base slot follow the curve instead of the input color")
	paletteCmd.Flags().StringP("format", "f", string(palette.FormatHex), "Notation to print each step in")
}

var paletteCmd = &cobra.Command{
	Use:     "palette <color>",
	Short:   "Generate a palette around a base color",
	Example: "  brandkit palette '#3366ff' -n 11\n  brandkit palette 'oklch(60% 0.15 250)' --hue-shift 40 -f oklch",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := palette.DefaultConfig()
		cfg.NumSteps = lo.Must(cmd.Flags().GetInt("steps"))
		cfg.UseLightness = !lo.Must(cmd.Flags().GetBool("chroma"))
		cfg.HueShift = lo.Must(cmd.Flags().GetFloat64("hue-shift"))
		cfg.LightnessDistribution = palette.Distribution(lo.Must(cmd.Flags().GetString("distribution")))
		cfg.ChromaMode = palette.ChromaMode(lo.Must(cmd.Flags().GetString("chroma-mode")))
		cfg.LockBaseColor = !lo.Must(cmd.Flags().GetBool("unlock-base"))
		format := palette.Format(lo.Must(cmd.Flags().GetString("format")))

		steps, genErr := palette.Generate(args[0], cfg.NumSteps, cfg.UseLightness, cfg)
		out := cmd.OutOrStdout()
		if genErr != nil {
			fmt.Fprintln(out, warnStyle.Render("fallback palette: "+genErr.Error()))
		}

		for _, step := range steps {
			notation, err := palette.FormatValues(step.Values, format)
			if err != nil {
				return err
			}
			marker := " "
			if step.IsBaseColor {
				marker = "●"
			}
			fmt.Fprintf(out, "%s %s %-28s %s  %s\n",
				marker,
				swatch(step.Values, step.Accessibility, " "+step.Name),
				notation,
				badges(step.Accessibility),
				contrastLine(step.Accessibility),
			)
		}
		return nil
	},
}
