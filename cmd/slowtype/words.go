package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/slowtype/internal/config"
	"github.com/verte-zerg/slowtype/internal/generator"
	"github.com/verte-zerg/slowtype/internal/model"
	"github.com/verte-zerg/slowtype/internal/store"
	"github.com/verte-zerg/slowtype/internal/wordlist"
)

var (
	wordsLang  string
	wordsLevel string
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage custom practice words",
	}
	cmd.PersistentFlags().StringVar(&wordsLang, "lang", defaultLang, "language code (en, th)")
	cmd.PersistentFlags().StringVar(&wordsLevel, "level", "", "word level (easy, medium, hard); derived from length when empty")

	cmd.AddCommand(&cobra.Command{
		Use:   "add <word>...",
		Short: "Add custom words",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runWordsAddCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Add custom words from a file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordsImportCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List custom words",
		Args:  cobra.NoArgs,
		RunE:  runWordsListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <word>...",
		Short: "Remove custom words",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runWordsRemoveCmd,
	})
	return cmd
}

func parseWordsFlags() (model.Language, model.Level, error) {
	lang, err := model.ParseLanguage(wordsLang)
	if err != nil {
		return "", "", fmt.Errorf("--lang: %w", err)
	}
	level := model.Level(strings.ToLower(strings.TrimSpace(wordsLevel)))
	switch level {
	case "", model.LevelEasy, model.LevelMedium, model.LevelHard:
	default:
		return "", "", fmt.Errorf("--level: unknown level %q", wordsLevel)
	}
	return lang, level, nil
}

// customWords validates words for lang and assigns their levels.
func customWords(lang model.Language, level model.Level, words []string) (kept []model.CustomWord, rejected []string) {
	valid, rejected := wordlist.Split(words, wordlist.FilterForLang(lang))
	kept = make([]model.CustomWord, 0, len(valid))
	for _, w := range valid {
		l := level
		if l == "" {
			l = generator.LevelOf(lang, w)
		}
		kept = append(kept, model.CustomWord{Word: w, Language: lang, Level: l})
	}
	return kept, rejected
}

func withStore(fn func(ctx context.Context, st *store.Store) error) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st, err := openStore(fileCfg)
	if err != nil {
		return err
	}
	defer closeStore(st)
	return fn(context.Background(), st)
}

func addWords(cmd *cobra.Command, words []string) error {
	lang, level, err := parseWordsFlags()
	if err != nil {
		return err
	}
	kept, rejected := customWords(lang, level, words)
	for _, w := range rejected {
		logErrf("Skipping %q (not a valid %s word)\n", w, lang)
	}
	if len(kept) == 0 {
		return fmt.Errorf("no valid words to add")
	}
	return withStore(func(ctx context.Context, st *store.Store) error {
		added, err := st.AddCustomWords(ctx, kept)
		if err != nil {
			return fmt.Errorf("failed to add words: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %d word(s), %d already present.\n", added, len(kept)-added)
		return err
	})
}

func runWordsAddCmd(cmd *cobra.Command, args []string) error {
	return addWords(cmd, args)
}

func runWordsImportCmd(cmd *cobra.Command, args []string) error {
	words, err := wordlist.LoadWords(args[0])
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	return addWords(cmd, words)
}

func runWordsListCmd(cmd *cobra.Command, _ []string) error {
	lang, level, err := parseWordsFlags()
	if err != nil {
		return err
	}
	var levels []model.Level
	if level != "" {
		levels = []model.Level{level}
	}
	return withStore(func(ctx context.Context, st *store.Store) error {
		words, err := st.ListCustomWords(ctx, lang, levels)
		if err != nil {
			return fmt.Errorf("failed to list words: %w", err)
		}
		if len(words) == 0 {
			logErrf("No custom %s words. Add some with: slowtype words add --lang %s <word>\n", lang, lang)
			return nil
		}
		for _, w := range words {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", w.Level, w.Word); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	})
}

func runWordsRemoveCmd(cmd *cobra.Command, args []string) error {
	lang, _, err := parseWordsFlags()
	if err != nil {
		return err
	}
	return withStore(func(ctx context.Context, st *store.Store) error {
		for _, w := range args {
			removed, err := st.RemoveCustomWord(ctx, lang, w)
			if err != nil {
				return fmt.Errorf("failed to remove %q: %w", w, err)
			}
			if !removed {
				logErrf("%q not found\n", w)
				continue
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", w); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	})
}
