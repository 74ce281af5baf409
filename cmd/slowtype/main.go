// Package main provides the CLI entrypoint for slowtype.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/slowtype/internal/config"
	"github.com/verte-zerg/slowtype/internal/generator"
	"github.com/verte-zerg/slowtype/internal/logging"
	"github.com/verte-zerg/slowtype/internal/model"
	"github.com/verte-zerg/slowtype/internal/session"
	"github.com/verte-zerg/slowtype/internal/store"
	"github.com/verte-zerg/slowtype/internal/tui"
)

const (
	defaultLang        = "en"
	defaultMode        = "words"
	defaultDuration    = 30
	defaultLevels      = "easy,medium,hard"
	defaultCaps        = 0.0
	defaultPunct       = 0.0
	defaultCurveWindow = 10
	defaultLogLevel    = "info"
)

const defaultPunctSet = ".,!?;:"

var (
	practiceLang     string
	practiceMode     string
	practiceDuration int
	practiceLevels   string
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string

	logLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slowtype",
		Short:         "Timed typing test for the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language code (en, th)")
	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "text mode (words, quotes)")
	rootCmd.Flags().IntVar(&practiceDuration, "duration", defaultDuration, "test length in seconds (10, 15, 25, 30, 50, 60, 100, 120)")
	rootCmd.Flags().StringVar(&practiceLevels, "levels", defaultLevels, "comma separated word levels")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyIntConfig(cmd, "duration", &practiceDuration, fileCfg.Practice.Duration)
	applyStringConfig(cmd, "levels", &practiceLevels, fileCfg.Practice.Levels)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)

	cfg, err := buildPracticeConfig()
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	display := fileCfg.Display.Apply(model.DefaultDisplay())

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStore(fileCfg)
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	custom, err := st.ListCustomWords(ctx, cfg.Lang, cfg.Levels)
	if err != nil {
		return fmt.Errorf("failed to load custom words: %w", err)
	}
	history, err := st.ListResults(ctx, model.HistoryFilter{Lang: cfg.Lang})
	if err != nil {
		// The footer averages are optional.
		logger.Warn("failed to load history", "err", err)
	}

	texts := generator.New().Source(generator.Options{
		Mode:       cfg.Mode,
		Lang:       cfg.Lang,
		Duration:   cfg.Duration,
		Levels:     cfg.Levels,
		ExtraWords: store.CustomWordStrings(custom),
		CapsPct:    cfg.CapsPct,
		PunctPct:   cfg.PunctPct,
		PunctSet:   []rune(cfg.PunctSet),
	})
	logger.Info("starting practice",
		"lang", cfg.Lang,
		"mode", cfg.Mode,
		"duration", cfg.Duration,
		"custom_words", len(custom),
	)

	m := tui.NewModel(tui.Options{
		Config:   cfg,
		Display:  display,
		Texts:    texts,
		Recorder: st,
		Clock:    session.NewMonotonicClock(),
		Logger:   logger,
		History:  history,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func buildPracticeConfig() (model.Config, error) {
	lang, err := model.ParseLanguage(practiceLang)
	if err != nil {
		return model.Config{}, fmt.Errorf("--lang: %w", err)
	}
	mode, err := model.ParseMode(practiceMode)
	if err != nil {
		return model.Config{}, fmt.Errorf("--mode: %w", err)
	}
	return model.Config{
		Lang:     lang,
		Mode:     mode,
		Duration: practiceDuration,
		Levels:   model.ParseLevels(practiceLevels),
		CapsPct:  practiceCaps,
		PunctPct: practicePunct,
		PunctSet: practicePunctSet,
	}, nil
}

// openLogger returns the file logger and a func that closes it.
func openLogger() (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}
	logger, closer, err := logging.Open(config.DefaultLogPath(), level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { closeQuietly(closer, "log file") }, nil
}

func openStore(fileCfg config.FileConfig) (*store.Store, error) {
	var opts []store.Option
	if fileCfg.History.MaxEntries != nil {
		opts = append(opts, store.WithMaxResults(*fileCfg.History.MaxEntries))
	}
	st, err := store.Open(config.DefaultDBPath(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	closeQuietly(st, "db")
}

func closeQuietly(c io.Closer, what string) {
	if cerr := c.Close(); cerr != nil {
		logErrf("failed to close %s: %v\n", what, cerr)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
