package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchgrade/internal/config"
	"github.com/katalvlaran/searchgrade/internal/ctxlog"
)

// flags holds the persistent command-line overrides.
type flags struct {
	configPath    string
	seed          int64
	maxExpansions int
	runTimeout    time.Duration
	concurrency   int
	giveUp        int
	logLevel      string
	logFormat     string
	noColor       bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "searchgrade",
		Short:         "Grade search-algorithm submissions against a fixed rubric",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.Int64Var(&f.seed, "seed", 0, "seed for flounder walks and tile scrambles")
	pf.IntVar(&f.maxExpansions, "max-expansions", 0, "node expansions allowed per search run (0 = unlimited)")
	pf.DurationVar(&f.runTimeout, "timeout", 0, "wall-clock limit per search run (0 = unlimited)")
	pf.IntVar(&f.concurrency, "concurrency", 1, "students graded at once")
	pf.IntVar(&f.giveUp, "flounder-give-up", 0, "random-walk steps before flounder gives up (0 = default)")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "text or json")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colors and rounded borders")

	root.AddCommand(newGradeCmd(f), newWatchCmd(f), newMethodsCmd(f))
	return root
}

// resolve loads the configuration file and applies the flags that were set
// explicitly, then installs the logger in the command context.
func (f *flags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	pf := cmd.Flags()
	if pf.Changed("seed") {
		cfg.Seed = f.seed
	}
	if pf.Changed("max-expansions") {
		cfg.MaxExpansions = f.maxExpansions
	}
	if pf.Changed("timeout") {
		cfg.RunTimeout = f.runTimeout
	}
	if pf.Changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if pf.Changed("flounder-give-up") {
		cfg.FlounderGiveUp = f.giveUp
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if pf.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if pf.Changed("no-color") {
		cfg.NoColor = f.noColor
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	return cfg, nil
}
