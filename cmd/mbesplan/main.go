package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/preset"
	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/report"
	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/tui"
	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/validate"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	presetsFile = preset.DefaultPath
	verbose     bool
	jsonOutput  bool
	tuiMode     bool
	chartFile   string
	presetName  string

	flagDepth    float64
	flagCellSize float64
	flagOverlap  float64
	flagMinHits  int
	flagBeams    int
	flagSpeed    float64

	rootCmd = &cobra.Command{
		Use:   "mbesplan",
		Short: "A survey-planning calculator for multibeam echo-sounder (MBES) line spacing.",
		Long: `mbesplan estimates the widest sonar opening angle that still satisfies a
minimum sounding-density requirement per seafloor grid cell, and the
corresponding maximum spacing between adjacent survey lines. Feed it your
planned depth, grid resolution, overlap, beam count and vessel speed before
going to sea.`,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().
		StringVar(&presetsFile, "presets-file", preset.DefaultPath, "Path to the presets file")

	addConfigFlags(planCmd)
	planCmd.Flags().StringVar(&presetName, "preset", "", "Start from a saved or built-in preset")
	planCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full sweep in JSON format instead of the table")
	planCmd.Flags().BoolVar(&tuiMode, "tui", false, "Interactive mode: adjust parameters and watch the sweep update live")
	planCmd.Flags().StringVar(&chartFile, "chart", "", "Also render the sweep as an HTML chart to the given file")

	addConfigFlags(presetSaveCmd)

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(presetCmd)

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetDeleteCmd)
	presetCmd.AddCommand(presetExportCmd)
	presetCmd.AddCommand(presetImportCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

// addConfigFlags binds the survey parameter flags shared by `plan` and
// `preset save`. Defaults are the recommended starting parameters.
func addConfigFlags(cmd *cobra.Command) {
	def := sweep.DefaultConfig()
	cmd.Flags().Float64Var(&flagDepth, "depth", def.Depth, "Water depth in meters (0-400)")
	cmd.Flags().Float64Var(&flagCellSize, "cell-size", def.CellSize, "Grid cell size in meters")
	cmd.Flags().Float64Var(&flagOverlap, "overlap", def.OverlapPercent, "Swath overlap between adjacent lines in percent (0-80)")
	cmd.Flags().IntVar(&flagMinHits, "min-hits", def.MinHitCount, "Minimum soundings per grid cell (1-10)")
	cmd.Flags().IntVar(&flagBeams, "beams", def.BeamCount, "Beams per ping (512 or 1024)")
	cmd.Flags().Float64Var(&flagSpeed, "speed", def.SpeedKnots, "Acquisition speed in knots (2-8)")
}

// resolveConfig builds the effective configuration: preset (if any) as the
// base, then any explicitly set flags on top.
func resolveConfig(cmd *cobra.Command) sweep.Config {
	cfg := sweep.DefaultConfig()
	if presetName != "" {
		store, err := preset.NewStore(presetsFile)
		if err != nil {
			logrus.Fatalf("Unable to open presets: %v", err)
		}
		p, ok := store.Get(presetName)
		if !ok {
			logrus.Fatalf("No preset named %q (try 'mbesplan preset list')", presetName)
		}
		cfg = p.Config
	}
	if cmd.Flags().Changed("depth") {
		cfg.Depth = flagDepth
	}
	if cmd.Flags().Changed("cell-size") {
		cfg.CellSize = flagCellSize
	}
	if cmd.Flags().Changed("overlap") {
		cfg.OverlapPercent = flagOverlap
	}
	if cmd.Flags().Changed("min-hits") {
		cfg.MinHitCount = flagMinHits
	}
	if cmd.Flags().Changed("beams") {
		cfg.BeamCount = flagBeams
	}
	if cmd.Flags().Changed("speed") {
		cfg.SpeedKnots = flagSpeed
	}
	return cfg
}

// checkConfig applies the input-layer constraints: the validate tags plus
// the overlap widget cap, which is tighter than what the evaluator accepts.
func checkConfig(cfg sweep.Config) {
	if err := validate.Struct(cfg); err != nil {
		logrus.Fatalf("Invalid survey parameters: %v", err)
	}
	if cfg.OverlapPercent > sweep.MaxOverlapPercent {
		logrus.Fatalf("Invalid survey parameters: overlap must be between 0 and %d percent", sweep.MaxOverlapPercent)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the angle sweep and the maximum valid line spacing",
	Long: `Sweep candidate opening angles for the given parameters, report the
expected hit count per grid cell at each angle, and select the widest angle
that still meets the minimum. Wider angle means wider swath means fewer
survey lines.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Check for conflicting flags
		if jsonOutput && tuiMode {
			logrus.Fatal("Cannot use --json and --tui flags together")
		}

		// Set log level based on flags
		if (jsonOutput || tuiMode) && !verbose {
			logrus.SetLevel(logrus.WarnLevel)
		} else if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		cfg := resolveConfig(cmd)
		checkConfig(cfg)

		if tuiMode {
			finalCfg, err := tui.Run(cfg)
			if err != nil {
				logrus.Fatalf("TUI mode failed: %v", err)
			}
			// Leave the last-viewed plan on the terminal after the
			// alt-screen session closes.
			res := sweep.Evaluate(finalCfg)
			if err := report.PrintSweep(os.Stdout, res, false); err != nil {
				logrus.Fatal(err)
			}
			return
		}

		res := sweep.Evaluate(cfg)
		if err := report.PrintSweep(os.Stdout, res, jsonOutput); err != nil {
			logrus.Fatal(err)
		}
		if chartFile != "" {
			if err := report.WriteChartFile(chartFile, res); err != nil {
				logrus.Fatal(err)
			}
			fmt.Fprintf(os.Stderr, "Chart written to %s\n", chartFile)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved survey parameter presets",
	Long:  "List, inspect, save, delete, export or import named survey parameter presets. Presets store inputs only, never computed results.",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available presets (built-ins included)",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := preset.NewStore(presetsFile)
		if err != nil {
			logrus.Fatal(err)
		}
		builtins := preset.Builtins()
		for _, name := range store.Names() {
			if _, ok := builtins[name]; ok {
				fmt.Fprintf(os.Stdout, "%s (built-in)\n", name)
				continue
			}
			fmt.Fprintln(os.Stdout, name)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetShowCmd = &cobra.Command{
	Use:   "show [NAME]",
	Short: "Show a preset's parameters",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := preset.NewStore(presetsFile)
		if err != nil {
			logrus.Fatal(err)
		}
		p, ok := store.Get(args[0])
		if !ok {
			logrus.Fatalf("No preset named %q", args[0])
		}
		c := p.Config
		fmt.Fprintf(os.Stdout, "%s:\n", p.Name)
		fmt.Fprintf(os.Stdout, "  depth:    %.1f m\n", c.Depth)
		fmt.Fprintf(os.Stdout, "  cell:     %.2f m\n", c.CellSize)
		fmt.Fprintf(os.Stdout, "  overlap:  %.0f %%\n", c.OverlapPercent)
		fmt.Fprintf(os.Stdout, "  min hits: %d\n", c.MinHitCount)
		fmt.Fprintf(os.Stdout, "  beams:    %d\n", c.BeamCount)
		fmt.Fprintf(os.Stdout, "  speed:    %.1f kn\n", c.SpeedKnots)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetSaveCmd = &cobra.Command{
	Use:   "save [NAME]",
	Short: "Save survey parameters under a name",
	Long:  "Save the given parameter flags as a named preset. Unspecified flags take their default values.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)
		checkConfig(cfg)
		store, err := preset.NewOrExistingStore(presetsFile)
		if err != nil {
			logrus.Fatalf("Unable to open or create presets: %v", err)
		}
		if err := store.Set(args[0], cfg); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Preset %q saved\n", args[0])
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetDeleteCmd = &cobra.Command{
	Use:   "delete [NAME]",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := preset.NewStore(presetsFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := store.Delete(args[0]); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Preset %q deleted\n", args[0])
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved presets as YAML to stdout",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := preset.NewStore(presetsFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := store.Export(os.Stdout); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetImportCmd = &cobra.Command{
	Use:   "import [FILE]",
	Short: "Import presets from a JSON or YAML file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := preset.NewOrExistingStore(presetsFile)
		if err != nil {
			logrus.Fatalf("Unable to open or create presets: %v", err)
		}
		n, err := store.Import(args[0])
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Imported %d preset(s)\n", n)
	},
}

func main() {
	Execute()
}
