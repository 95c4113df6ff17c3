package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plasmakit/tokaval/internal/config"
	"github.com/plasmakit/tokaval/internal/engineering"
	"github.com/plasmakit/tokaval/internal/lawson"
	"github.com/plasmakit/tokaval/internal/mhd"
	"github.com/plasmakit/tokaval/internal/report"
	"github.com/plasmakit/tokaval/internal/storage"
	"github.com/plasmakit/tokaval/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	saveRun    bool

	// equilibrium overrides
	beta    float64
	current float64
	field   float64
	minorR  float64
	majorR  float64
	q0      float64
	q95     float64
	kappa   float64
	delta   float64

	// scan options
	scanHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tokaval",
		Short: "tokamak design validation suite",
		Long:  "Evaluates MHD stability, engineering limits, and ignition criteria\nfor a fixed tokamak equilibrium.",
		RunE:  runAll,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tokaval", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset equilibrium")
	addEquilibriumFlags(rootCmd)
	rootCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")

	mhdCmd := &cobra.Command{
		Use:   "mhd",
		Short: "run the MHD stability checks",
		RunE:  runMHD,
	}
	addEquilibriumFlags(mhdCmd)
	mhdCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")

	engCmd := &cobra.Command{
		Use:   "engineering",
		Short: "run the engineering validation checks",
		RunE:  runEngineering,
	}

	lawsonCmd := &cobra.Command{
		Use:   "lawson",
		Short: "run the ignition validation checks",
		RunE:  runLawson,
	}

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "plot the ballooning radial scan",
		RunE:  runScan,
	}
	addEquilibriumFlags(scanCmd)
	scanCmd.Flags().IntVar(&scanHeight, "height", 12, "plot height")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available equilibrium presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			eq, err := cfg.ToEquilibrium()
			if err != nil {
				return err
			}
			return tui.Run(eq, cfg.ToLimits())
		},
	}

	rootCmd.AddCommand(mhdCmd, engCmd, lawsonCmd, scanCmd, listCmd, exportJSONCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addEquilibriumFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&beta, "beta", 0, "normalized pressure")
	cmd.Flags().Float64Var(&current, "current", 0, "plasma current [A]")
	cmd.Flags().Float64Var(&field, "field", 0, "toroidal field [T]")
	cmd.Flags().Float64Var(&minorR, "minor-radius", 0, "minor radius [m]")
	cmd.Flags().Float64Var(&majorR, "major-radius", 0, "major radius [m]")
	cmd.Flags().Float64Var(&q0, "q0", 0, "axis safety factor")
	cmd.Flags().Float64Var(&q95, "q95", 0, "edge safety factor")
	cmd.Flags().Float64Var(&kappa, "kappa", 0, "elongation")
	cmd.Flags().Float64Var(&delta, "delta", 0, "triangularity")
}

// loadConfig resolves the effective configuration: defaults, then preset,
// then config file, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		cfg.Preset = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("beta") {
		cfg.Equilibrium.Beta = beta
	}
	if flags.Changed("current") {
		cfg.Equilibrium.Current = current
	}
	if flags.Changed("field") {
		cfg.Equilibrium.Field = field
	}
	if flags.Changed("minor-radius") {
		cfg.Equilibrium.MinorRadius = minorR
	}
	if flags.Changed("major-radius") {
		cfg.Equilibrium.MajorRadius = majorR
	}
	if flags.Changed("q0") {
		cfg.Equilibrium.Q0 = q0
	}
	if flags.Changed("q95") {
		cfg.Equilibrium.Q95 = q95
	}
	if flags.Changed("kappa") {
		cfg.Equilibrium.Elongation = kappa
	}
	if flags.Changed("delta") {
		cfg.Equilibrium.Triangularity = delta
	}

	return cfg, nil
}

func presetName(cfg *config.Config) string {
	if cfg.Preset != "" {
		return cfg.Preset
	}
	return "gsm"
}

func runMHD(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eq, err := cfg.ToEquilibrium()
	if err != nil {
		return err
	}

	rep := mhd.Run(eq, cfg.ToLimits())

	fmt.Println(report.Equilibrium(eq))
	fmt.Println(report.MHD(rep))

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(presetName(cfg), rep)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runEngineering(cmd *cobra.Command, args []string) error {
	cs := engineering.Validate(engineering.DefaultDesign())
	fmt.Println(report.Checks("ENGINEERING VALIDATION",
		"ALL ENGINEERING VALIDATIONS PASS: DESIGN FEASIBLE",
		"ENGINEERING VALIDATION FAILURES", cs))
	return nil
}

func runLawson(cmd *cobra.Command, args []string) error {
	cs := lawson.Validate(lawson.DefaultParams())
	fmt.Println(report.Checks("IGNITION VALIDATION",
		"ALL IGNITION CRITERIA SATISFIED",
		"IGNITION CRITERIA NOT MET", cs))
	return nil
}

func runAll(cmd *cobra.Command, args []string) error {
	if err := runMHD(cmd, args); err != nil {
		return err
	}
	fmt.Println(report.Rule(64))
	if err := runEngineering(cmd, args); err != nil {
		return err
	}
	fmt.Println(report.Rule(64))
	return runLawson(cmd, args)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eq, err := cfg.ToEquilibrium()
	if err != nil {
		return err
	}

	samples := mhd.NewBallooning().Scan(eq, cfg.ToLimits())
	fmt.Println(report.Scan(samples, scanHeight))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSTABLE\tP(DISRUPT)")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%.2e\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Stable,
			run.DisruptionProbability,
		)
	}
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// No run id: evaluate the current configuration and export the
		// full suite.
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		eq, err := cfg.ToEquilibrium()
		if err != nil {
			return err
		}
		rep := mhd.Run(eq, cfg.ToLimits())
		eng := engineering.Validate(engineering.DefaultDesign())
		law := lawson.Validate(lawson.DefaultParams())
		return storage.ExportJSONStdout(storage.NewExportData(presetName(cfg), rep, eng, law))
	}

	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	rep := mhd.Report{
		Results:               results,
		DisruptionProbability: meta.DisruptionProbability,
		Stable:                meta.Stable,
	}
	return storage.ExportJSONStdout(storage.NewExportData(meta.Preset, rep, nil, nil))
}
