package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/slowtype/internal/generator"
	"github.com/verte-zerg/slowtype/internal/model"
)

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List built-in languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	for _, lang := range model.Languages {
		counts := map[model.Level]int{}
		for _, w := range generator.Pool(lang, nil, nil) {
			counts[generator.LevelOf(lang, w)]++
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\teasy=%d medium=%d hard=%d\n",
			lang, counts[model.LevelEasy], counts[model.LevelMedium], counts[model.LevelHard])
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
