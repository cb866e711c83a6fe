package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/urbanclimate/uwgo"
	"github.com/urbanclimate/uwgo/pkg/logging"
)

var (
	simulateSimPar  string
	simulateFolder  string
	simulateName    string
	simulateEngine  string
	simulateLegacy  bool
	simulateTimeout time.Duration
	simulateLogFile string
)

// simulateCmd represents the simulate command.
var simulateCmd = &cobra.Command{
	Use:   "simulate <district-file> <epw-file>",
	Short: "Morph an EPW through the Urban Weather Generator",
	Long: `Translate a district description into engine input, run the Urban
Weather Generator against the rural EPW, and write the morphed urban EPW.

On success, a JSON manifest with the paths of the engine input and the
urban EPW is printed to stdout.

Examples:
  uwgo simulate district.json boston.epw
  uwgo simulate district.yaml boston.epw --sim-par summer.json --folder ./out`,
	Args: cobra.ExactArgs(2),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVar(&simulateSimPar, "sim-par", "",
		"simulation parameter file (JSON or YAML)")
	simulateCmd.Flags().StringVar(&simulateFolder, "folder", "",
		"output folder (default is the EPW's folder)")
	simulateCmd.Flags().StringVar(&simulateName, "name", "",
		"base name for written files (default is the EPW name with a _uwg suffix)")
	simulateCmd.Flags().StringVar(&simulateEngine, "engine", "",
		"engine executable name or path (default uwg on PATH)")
	simulateCmd.Flags().BoolVar(&simulateLegacy, "legacy", false,
		"also write the legacy .uwg text input")
	simulateCmd.Flags().DurationVar(&simulateTimeout, "timeout", 0,
		"engine run timeout (default 30m)")
	simulateCmd.Flags().StringVar(&simulateLogFile, "log-file", "",
		"write the result manifest to this file instead of stdout")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := logging.WithDistrict(cmd.Context(), args[0])
	ctx = logging.WithWeatherFile(ctx, args[1])

	opts := []uwgo.Option{
		uwgo.WithDistrictFile(args[0]),
		uwgo.WithEPW(args[1]),
		uwgo.WithLegacyInput(simulateLegacy),
		uwgo.WithLogger(*logging.Ctx(ctx)),
	}
	if simulateSimPar != "" {
		opts = append(opts, uwgo.WithParameterFile(simulateSimPar))
	}
	if simulateFolder != "" {
		opts = append(opts, uwgo.WithOutputDir(simulateFolder))
	}
	if simulateName != "" {
		opts = append(opts, uwgo.WithName(simulateName))
	}
	if simulateEngine != "" {
		opts = append(opts, uwgo.WithEngine(simulateEngine))
	}
	if simulateTimeout > 0 {
		opts = append(opts, uwgo.WithTimeout(simulateTimeout))
	}

	wf, err := uwgo.New(opts...)
	if err != nil {
		return err
	}

	res, err := wf.Run(ctx)
	if err != nil {
		return err
	}

	manifest := struct {
		UWGJSON string `json:"uwg_json"`
		EPW     string `json:"epw"`
	}{
		UWGJSON: res.JSONPath,
		EPW:     res.EPWPath,
	}
	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if simulateLogFile != "" {
		return os.WriteFile(simulateLogFile, append(out, '\n'), 0o644)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
