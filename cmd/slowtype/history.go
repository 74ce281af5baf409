package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/slowtype/internal/config"
	"github.com/verte-zerg/slowtype/internal/model"
	"github.com/verte-zerg/slowtype/internal/stats"
	"github.com/verte-zerg/slowtype/internal/statsui"
)

var (
	historyLang        string
	historyMode        string
	historySince       string
	historyLast        int
	historyCurveWindow int
	historyPlain       bool

	historyClearYes bool
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past results",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&historyMode, "mode", "", "mode filter (words, quotes)")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N results")
	cmd.Flags().IntVar(&historyCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print a plain-text report instead of the TUI")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored results",
		Args:  cobra.NoArgs,
		RunE:  runHistoryClearCmd,
	}
	clearCmd.Flags().BoolVarP(&historyClearYes, "yes", "y", false, "do not ask for confirmation")
	cmd.AddCommand(clearCmd)
	return cmd
}

func buildHistoryFilter() (model.HistoryFilter, error) {
	filter := model.HistoryFilter{
		Last:        historyLast,
		CurveWindow: historyCurveWindow,
	}
	if historyLang != "" {
		lang, err := model.ParseLanguage(historyLang)
		if err != nil {
			return filter, fmt.Errorf("--lang: %w", err)
		}
		filter.Lang = lang
	}
	if historyMode != "" {
		mode, err := model.ParseMode(historyMode)
		if err != nil {
			return filter, fmt.Errorf("--mode: %w", err)
		}
		filter.Mode = mode
	}
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}
	if filter.Last < 0 {
		return filter, fmt.Errorf("--last must be >= 0")
	}
	if filter.CurveWindow < 1 {
		return filter, fmt.Errorf("--curve-window must be >= 1")
	}
	return filter, nil
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	filter, err := buildHistoryFilter()
	if err != nil {
		return err
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st, err := openStore(fileCfg)
	if err != nil {
		return err
	}
	defer closeStore(st)

	if historyPlain {
		report, err := stats.BuildReport(context.Background(), st, filter)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		return stats.RenderReport(cmd.OutOrStdout(), report, stats.RenderOptions{CurveWindow: filter.CurveWindow})
	}

	program := tea.NewProgram(statsui.NewModel(st, filter), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func runHistoryClearCmd(cmd *cobra.Command, _ []string) error {
	if !historyClearYes {
		ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), "Delete all stored results?")
		if err != nil {
			return err
		}
		if !ok {
			logErrln("Aborted.")
			return nil
		}
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st, err := openStore(fileCfg)
	if err != nil {
		return err
	}
	defer closeStore(st)
	if err := st.ClearResults(context.Background()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	logErrln("History cleared.")
	return nil
}

func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N] ", question); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
