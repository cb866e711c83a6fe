package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urbanclimate/uwgo"
	"github.com/urbanclimate/uwgo/pkg/logging"
)

var (
	translateSimPar string
	translateFolder string
	translateName   string
	translateLegacy bool
)

// translateCmd represents the translate command.
var translateCmd = &cobra.Command{
	Use:   "translate <district-file> <epw-file>",
	Short: "Write engine input without running a simulation",
	Long: `Translate a district description and rural EPW into the Urban
Weather Generator's input JSON without invoking the engine.

Useful for inspecting what the engine will see, or for running the
engine by hand on another machine.

Examples:
  uwgo translate district.json boston.epw
  uwgo translate district.json boston.epw --legacy --folder ./out`,
	Args: cobra.ExactArgs(2),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVar(&translateSimPar, "sim-par", "",
		"simulation parameter file (JSON or YAML)")
	translateCmd.Flags().StringVar(&translateFolder, "folder", "",
		"output folder (default is the EPW's folder)")
	translateCmd.Flags().StringVar(&translateName, "name", "",
		"base name for written files (default is the EPW name with a _uwg suffix)")
	translateCmd.Flags().BoolVar(&translateLegacy, "legacy", false,
		"also write the legacy .uwg text input")
}

func runTranslate(_ *cobra.Command, args []string) error {
	opts := []uwgo.Option{
		uwgo.WithDistrictFile(args[0]),
		uwgo.WithEPW(args[1]),
		uwgo.WithLegacyInput(translateLegacy),
		uwgo.WithLogger(*logging.Default()),
	}
	if translateSimPar != "" {
		opts = append(opts, uwgo.WithParameterFile(translateSimPar))
	}
	if translateFolder != "" {
		opts = append(opts, uwgo.WithOutputDir(translateFolder))
	}
	if translateName != "" {
		opts = append(opts, uwgo.WithName(translateName))
	}

	wf, err := uwgo.New(opts...)
	if err != nil {
		return err
	}

	inputs, err := wf.WriteInputs()
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, inputs.JSONPath)
	if inputs.LegacyPath != "" {
		fmt.Fprintln(os.Stdout, inputs.LegacyPath)
	}
	return nil
}
