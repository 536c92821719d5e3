// Package main provides the CLI entrypoint for glyphpass.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/glyphpass/internal/config"
	"github.com/verte-zerg/glyphpass/internal/display"
	"github.com/verte-zerg/glyphpass/internal/generator"
	"github.com/verte-zerg/glyphpass/internal/historyui"
	"github.com/verte-zerg/glyphpass/internal/model"
	"github.com/verte-zerg/glyphpass/internal/pool"
	"github.com/verte-zerg/glyphpass/internal/samples"
	"github.com/verte-zerg/glyphpass/internal/stats"
	"github.com/verte-zerg/glyphpass/internal/store"
	"github.com/verte-zerg/glyphpass/internal/tui"
)

const (
	defaultVariant       = "multilingual"
	defaultLength        = 32
	defaultCount         = 1
	defaultMinDigits     = 0
	defaultMinScripts    = 5
	defaultLongLength    = 64
	defaultLongMinDigits = 4
	defaultLogFormat     = "text"
	defaultLogLevel      = "warn"
	headlineLength       = 64
	curveWindow          = 10
	curveHeight          = 8
	fallbackTermWidth    = 80
)

var defaultLengths = []int{16, 32, 64, 128, 256}

var (
	logFormat string
	logLevel  string
	noHistory bool

	genLengths       []int
	genMinDigits     int
	genMinScripts    int
	genLongLength    int
	genLongMinDigits int
	genWidth         int
	genPoolFile      string

	genVariant string
	genLength  int
	genCount   int

	historyVariant string
	historySince   string
	historyLast    int
	historyPlain   bool
	historyPrune   string
)

var (
	standardPool = sync.OnceValue(pool.Standard)
	extendedPool = sync.OnceValue(pool.Extended)
	sampleMap    = sync.OnceValue(samples.Build)
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "glyphpass",
		Short:         "Multilingual password generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogging(logFormat, logLevel)
		},
		RunE: runReportCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", defaultLogFormat, "log format (text or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record run metadata")
	addGenerateFlags(rootCmd)
	rootCmd.Flags().IntSliceVar(&genLengths, "lengths", defaultLengths, "password lengths to report")

	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newPoolsCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// addGenerateFlags registers the flags shared by every command that
// generates passwords.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&genMinDigits, "min-digits", defaultMinDigits, "minimum digits per password")
	cmd.Flags().IntVar(&genMinScripts, "min-scripts", defaultMinScripts, "minimum scripts in multilingual passwords")
	cmd.Flags().IntVar(&genLongLength, "long-length", defaultLongLength, "length that forces extra digits (0 disables)")
	cmd.Flags().IntVar(&genLongMinDigits, "long-min-digits", defaultLongMinDigits, "digits forced at --long-length")
	cmd.Flags().IntVar(&genWidth, "width", display.DefaultWidth, "characters per output line (0 disables wrapping)")
	cmd.Flags().StringVar(&genPoolFile, "pool-file", "", "file with characters for the custom variant")
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := generator.New()
	if err != nil {
		return fmt.Errorf("failed to seed generator: %w", err)
	}
	pools := generator.Pools{
		Standard: standardPool(),
		Extended: extendedPool(),
		Samples:  sampleMap(),
	}
	slog.Debug("pools built",
		"standard", pools.Standard.Len(),
		"extended", pools.Extended.Len(),
		"scripts", len(pools.Samples))

	out := cmd.OutOrStdout()
	if err := stats.RenderPools(out, pools.Standard, pools.Extended, pools.Samples); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	headline, err := stats.Bits(headlineLength, pools.Extended.Len())
	if err != nil {
		return fmt.Errorf("failed to compute entropy: %w", err)
	}
	if _, err := fmt.Fprintf(out, "\nEntropy for a %d-character password using extended pool: %.2f bits\n", headlineLength, headline); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintln(out, "\nGenerating passwords of different lengths:"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	runs := make([]model.Run, 0, len(cfg.Lengths)*len(model.Variants))
	for _, length := range cfg.Lengths {
		if _, err := fmt.Fprintf(out, "\n== %d-character passwords ==\n", length); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, variant := range model.Variants {
			res, err := gen.Run(cfg.Request(variant, length), pools)
			if err != nil {
				return fmt.Errorf("failed to generate %s password: %w", variant, err)
			}
			if _, err := fmt.Fprintf(out, "\n%s (%.2f bits):\n%s\n", variant.Label(), res.Run.EntropyBits, display.Chunk(res.Password, outputWidth(cfg.Width, res.Password))); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			runs = append(runs, res.Run)
		}
	}
	recordRuns(cmd.Context(), cfg, runs)
	return nil
}

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate passwords",
		Args:  cobra.NoArgs,
		RunE:  runGenCmd,
	}
	addGenerateFlags(cmd)
	cmd.Flags().StringVar(&genVariant, "variant", defaultVariant, "standard, extended, multilingual or custom")
	cmd.Flags().IntVar(&genLength, "length", defaultLength, "password length in characters")
	cmd.Flags().IntVar(&genCount, "count", defaultCount, "number of passwords")
	return cmd
}

func runGenCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	variant, err := model.ParseVariant(genVariant)
	if err != nil {
		return err
	}
	if genLength <= 0 {
		return fmt.Errorf("--length must be > 0")
	}
	if genCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	pools, err := poolsFor(cfg, variant)
	if err != nil {
		return err
	}
	gen, err := generator.New()
	if err != nil {
		return fmt.Errorf("failed to seed generator: %w", err)
	}

	out := cmd.OutOrStdout()
	req := cfg.Request(variant, genLength)
	runs := make([]model.Run, 0, genCount)
	for i := 0; i < genCount; i++ {
		res, err := gen.Run(req, pools)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		if _, err := fmt.Fprintln(out, display.Chunk(res.Password, outputWidth(cfg.Width, res.Password))); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		runs = append(runs, res.Run)
	}
	if len(runs) > 0 {
		r := runs[0]
		logErrf("%s, %d characters, pool %d, %.2f bits\n", variant.Label(), r.Length, r.PoolSize, r.EntropyBits)
	}
	recordRuns(cmd.Context(), cfg, runs)
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List scripts used by multilingual passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := stats.RenderScripts(cmd.OutOrStdout(), sampleMap()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func newPoolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Show pool sizes, Unicode blocks and entropy per length",
		Args:  cobra.NoArgs,
		RunE:  runPoolsCmd,
	}
	cmd.Flags().StringVar(&genPoolFile, "pool-file", "", "file with characters for the custom variant")
	cmd.Flags().IntSliceVar(&genLengths, "lengths", defaultLengths, "password lengths for the entropy table")
	return cmd
}

func runPoolsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	std, ext, s := standardPool(), extendedPool(), sampleMap()
	sizes := []stats.PoolSize{
		{Name: model.VariantStandard.Label(), Size: std.Len()},
		{Name: model.VariantExtended.Label(), Size: ext.Len()},
		{Name: model.VariantMultilingual.Label(), Size: s.TotalSize()},
	}
	if cfg.PoolFile != "" {
		custom, err := pool.LoadFile(cfg.PoolFile)
		if err != nil {
			return fmt.Errorf("failed to load pool file: %w", err)
		}
		sizes = append(sizes, stats.PoolSize{Name: model.VariantCustom.Label(), Size: custom.Len()})
	}

	out := cmd.OutOrStdout()
	if err := stats.RenderPools(out, std, ext, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintln(out, "\nExtended pool blocks"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderBlocks(out, pool.Blocks()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintln(out, "\nEntropy (bits)"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderEntropy(out, cfg.Lengths, sizes); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Generate passwords interactively",
		Args:  cobra.NoArgs,
		RunE:  runTUICmd,
	}
	addGenerateFlags(cmd)
	cmd.Flags().StringVar(&genVariant, "variant", defaultVariant, "initial variant")
	cmd.Flags().IntVar(&genLength, "length", defaultLength, "initial password length")
	return cmd
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	variant, err := model.ParseVariant(genVariant)
	if err != nil {
		return err
	}
	if genLength <= 0 {
		return fmt.Errorf("--length must be > 0")
	}
	pools, err := poolsFor(cfg, variant)
	if err != nil {
		return err
	}
	gen, err := generator.New()
	if err != nil {
		return fmt.Errorf("failed to seed generator: %w", err)
	}

	var st *store.Store
	if cfg.History {
		st, err = store.Open(cfg.HistoryPath)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	m := tui.NewModel(cfg, st, gen, pools, variant, genLength)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyVariant, "variant", "", "variant filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print tables instead of the interactive view")
	cmd.Flags().StringVar(&historyPrune, "prune", "", "delete runs before this date (YYYY-MM-DD)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	filter, err := historyFilter(historyVariant, historySince, historyLast)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	if historyPrune != "" {
		before, err := parseDate(historyPrune)
		if err != nil {
			return fmt.Errorf("invalid --prune value: %w", err)
		}
		n, err := st.DeleteBefore(ctx, before)
		if err != nil {
			return fmt.Errorf("failed to prune history: %w", err)
		}
		logErrf("Deleted %d runs before %s\n", n, historyPrune)
		return nil
	}

	if !historyPlain {
		program := tea.NewProgram(historyui.NewModel(st, filter), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run history TUI: %w", err)
		}
		return nil
	}

	aggs, err := st.Summarize(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to summarize history: %w", err)
	}
	runs, err := st.ListRuns(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderRunSummary(out, aggs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(aggs) == 0 {
		return nil
	}
	if err := stats.RenderRuns(out, runs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(runs) < 2 {
		return nil
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderEntropyCurves(out, runs, curveWindow, display.TerminalWidth(fallbackTermWidth), curveHeight, stats.IsTerminal(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		slog.Info("config created", "path", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveConfig merges the config file under the flags of cmd. Flags set on
// the command line always win.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	g := fileCfg.Generate
	applyIntsConfig(cmd, "lengths", &genLengths, g.Lengths)
	applyIntConfig(cmd, "min-digits", &genMinDigits, g.MinDigits)
	applyIntConfig(cmd, "min-scripts", &genMinScripts, g.MinScripts)
	applyIntConfig(cmd, "long-length", &genLongLength, g.LongLength)
	applyIntConfig(cmd, "long-min-digits", &genLongMinDigits, g.LongMinDigits)
	applyIntConfig(cmd, "width", &genWidth, g.Width)
	applyStringConfig(cmd, "pool-file", &genPoolFile, g.PoolFile)

	history := true
	if fileCfg.History.Enabled != nil {
		history = *fileCfg.History.Enabled
	}
	if noHistory {
		history = false
	}
	historyPath := config.DefaultDBPath()
	if p := fileCfg.History.Path; p != nil && *p != "" {
		historyPath = *p
	}

	cfg := model.Config{
		Lengths:    genLengths,
		MinDigits:  genMinDigits,
		MinScripts: genMinScripts,
		Long: model.LongRepair{
			Length:    genLongLength,
			MinDigits: genLongMinDigits,
		},
		Width:       genWidth,
		PoolFile:    genPoolFile,
		History:     history,
		HistoryPath: historyPath,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if len(cfg.Lengths) == 0 {
		return fmt.Errorf("--lengths must not be empty")
	}
	for _, length := range cfg.Lengths {
		if length <= 0 {
			return fmt.Errorf("--lengths must be > 0, got %d", length)
		}
	}
	if cfg.MinDigits < 0 {
		return fmt.Errorf("--min-digits must be >= 0")
	}
	if cfg.MinScripts < 0 {
		return fmt.Errorf("--min-scripts must be >= 0")
	}
	if cfg.Long.Length < 0 {
		return fmt.Errorf("--long-length must be >= 0")
	}
	if cfg.Long.MinDigits < 0 {
		return fmt.Errorf("--long-min-digits must be >= 0")
	}
	if cfg.Width < 0 {
		return fmt.Errorf("--width must be >= 0")
	}
	if cfg.History && cfg.HistoryPath == "" {
		return fmt.Errorf("history path must not be empty")
	}
	return nil
}

func poolsFor(cfg model.Config, variant model.Variant) (generator.Pools, error) {
	pools := generator.Pools{
		Standard: standardPool(),
		Extended: extendedPool(),
		Samples:  sampleMap(),
	}
	if cfg.PoolFile == "" {
		if variant == model.VariantCustom {
			return generator.Pools{}, fmt.Errorf("--pool-file is required for the custom variant")
		}
		return pools, nil
	}
	custom, err := pool.LoadFile(cfg.PoolFile)
	if err != nil {
		return generator.Pools{}, fmt.Errorf("failed to load pool file: %w", err)
	}
	if variant != model.VariantCustom {
		slog.Warn("pool file ignored", "variant", variant, "path", cfg.PoolFile)
	}
	pools.Custom = custom
	return pools, nil
}

func historyFilter(variant, since string, last int) (store.Filter, error) {
	var filter store.Filter
	if variant != "" {
		v, err := model.ParseVariant(variant)
		if err != nil {
			return store.Filter{}, err
		}
		filter.Variant = v
	}
	if since != "" {
		parsed, err := parseDate(since)
		if err != nil {
			return store.Filter{}, fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}
	if last < 0 {
		return store.Filter{}, fmt.Errorf("--last must be >= 0")
	}
	filter.Last = last
	return filter, nil
}

func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

// outputWidth narrows the configured width so the wrapped password fits the
// terminal.
func outputWidth(want int, password string) int {
	return display.FitWidth(password, want, display.TerminalWidth(0))
}

// recordRuns stores run metadata. Failures are logged and never fail the
// command.
func recordRuns(ctx context.Context, cfg model.Config, runs []model.Run) {
	if !cfg.History || len(runs) == 0 {
		return
	}
	st, err := store.Open(cfg.HistoryPath)
	if err != nil {
		slog.Warn("failed to open history", "path", cfg.HistoryPath, "error", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			slog.Warn("failed to close history", "error", cerr)
		}
	}()
	ids, err := st.InsertRuns(ctx, runs)
	if err != nil {
		slog.Warn("failed to record runs", "error", err)
		return
	}
	slog.Debug("runs recorded", "count", len(ids))
}

func setupLogging(format, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format %q: must be 'json' or 'text'", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntsConfig(cmd *cobra.Command, name string, target *[]int, value []int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = append([]int(nil), value...)
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# glyphpass configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# lengths = %s  # Lengths printed by the report
# min-digits = %d                    # Minimum digits per password
# min-scripts = %d                   # Minimum scripts in multilingual passwords
# long-length = %d                  # Length that forces extra digits (0 disables)
# long-min-digits = %d               # Digits forced at long-length
# width = %d                        # Characters per output line (0 disables wrapping)
# pool-file = ""                     # Characters for the custom variant

[history]
# enabled = true                     # Record run metadata (never passwords)
# path = %q
`,
		formatInts(defaultLengths),
		defaultMinDigits,
		defaultMinScripts,
		defaultLongLength,
		defaultLongMinDigits,
		display.DefaultWidth,
		config.DefaultDBPath(),
	)
}

func formatInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
