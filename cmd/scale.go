package cmd

import (
	"fmt"
	"strconv"

	"github.com/brandkit/api/typescale"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
	scaleCmd.Flags().Float64P("base", "b", typescale.DefaultBaseSize, "Base size in px")
	scaleCmd.Flags().StringP("ratio", "r", "major-third", "Ratio as a number or an interval name")
	scaleCmd.Flags().Int("up", 5, "Steps above the base")
	scaleCmd.Flags().Int("down", 2, "Steps below the base")

	scaleCmd.Flags().Bool("distance", false, "Derive the base size from viewing conditions")
	scaleCmd.Flags().Float64("viewing-distance", 50, "Viewing distance in cm")
	scaleCmd.Flags().Float64("acuity", 1, "Decimal visual acuity, 1.0 is normal")
	scaleCmd.Flags().Float64("length-ratio", 1, "Mean character length ratio of the typeface")
	scaleCmd.Flags().String("text-type", string(typescale.Continuous), "continuous or isolated")
	scaleCmd.Flags().String("lighting", string(typescale.LightingGood), "good, moderate or poor")
	scaleCmd.Flags().Float64("ppi", typescale.DefaultPPI, "Display pixel density")
	_ = scaleCmd.RegisterFlagCompletionFunc("ratio", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(typescale.Ratios, func(r typescale.NamedRatio, _ int) string { return r.Name }), cobra.ShellCompDirectiveNoFileComp
	})
}

func parseRatio(raw string) (float64, error) {
	if r, ok := typescale.RatioByName(raw); ok {
		return r, nil
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("ratio %q is neither a number nor a known interval", raw)
	}
	return r, nil
}

var scaleCmd = &cobra.Command{
	Use:     "scale",
	Short:   "Print a modular or distance-based type scale",
	Example: "  brandkit scale -b 18 -r perfect-fourth\n  brandkit scale --distance --viewing-distance 300 --lighting poor",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		ratio, err := parseRatio(lo.Must(flags.GetString("ratio")))
		if err != nil {
			return err
		}

		cfg := typescale.Config{
			Method:    typescale.Modular,
			BaseSize:  lo.Must(flags.GetFloat64("base")),
			Ratio:     ratio,
			StepsUp:   lo.Must(flags.GetInt("up")),
			StepsDown: lo.Must(flags.GetInt("down")),
			Distance: typescale.DistanceParams{
				ViewingDistance: lo.Must(flags.GetFloat64("viewing-distance")),
				VisualAcuity:    lo.Must(flags.GetFloat64("acuity")),
				MeanLengthRatio: lo.Must(flags.GetFloat64("length-ratio")),
				TextType:        typescale.TextType(lo.Must(flags.GetString("text-type"))),
				Lighting:        typescale.Lighting(lo.Must(flags.GetString("lighting"))),
				PPI:             lo.Must(flags.GetFloat64("ppi")),
			},
		}
		if lo.Must(flags.GetBool("distance")) {
			cfg.Method = typescale.Distance
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s scale, base %gpx, ratio %g", cfg.Method, cfg.BaseSizePx(), cfg.Ratio)))
		for _, v := range cfg.Values() {
			fmt.Fprintf(out, "%-5s %5gpx  %s\n", v.Label, v.Size, mutedStyle.Render(fmt.Sprintf("×%g", v.Ratio)))
		}
		return nil
	},
}
