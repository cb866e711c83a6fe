package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/urbanclimate/uwgo/pkg/district"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate <district-file>",
	Short: "Validate a district description",
	Long: `Check a district description file for schema and semantic errors and
print a summary of the district the engine would simulate.

Examples:
  uwgo validate district.json
  uwgo validate district.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	d, err := district.Load(args[0])
	if err != nil {
		return fmt.Errorf("invalid district %s: %w", args[0], err)
	}

	title := cases.Title(language.English)
	report := func(label string, format string, v ...any) {
		fmt.Fprintf(os.Stdout, "%-28s %s\n",
			title.String(label)+":", fmt.Sprintf(format, v...))
	}

	fmt.Fprintf(os.Stdout, "%s is valid\n\n", args[0])
	report("climate zone", "%s", d.ClimateZone)
	report("site area", "%.1f m2", d.SiteArea)
	report("characteristic length", "%.1f m", d.ResolvedCharacteristicLength())
	report("average building height", "%.2f m", d.AverageHeight())
	report("site coverage ratio", "%.3f", d.SiteCoverageRatio())
	report("facade to site ratio", "%.3f", d.FacadeToSiteRatio())
	report("glazing ratio", "%.3f", d.GlazingRatio())
	report("tree coverage", "%.3f", d.TreeCoverage)
	report("grass coverage", "%.3f", d.GrassCoverage)

	ratios := d.TypeRatios()
	keys := make([]string, 0, len(ratios))
	for key := range ratios {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(os.Stdout, "\n%s\n", title.String("building typologies"))
	for _, key := range keys {
		fmt.Fprintf(os.Stdout, "  %-40s %5.1f%%\n", key, ratios[key]*100)
	}
	return nil
}
