package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptlens/internal/logging"
	"promptlens/internal/overlap"
	"promptlens/internal/promptset"
	"promptlens/internal/report"
	"promptlens/internal/store"
)

var (
	compareSave      bool
	compareHighlight bool
)

// compareCmd compares prompt variants and prints their shared content.
var compareCmd = &cobra.Command{
	Use:   "compare [files...]",
	Short: "Extract the content shared by a set of prompt variants",
	Long: `Compares prompt variants and prints the content they share.

Accepts either a single prompt-set YAML file (its "variants" list is
compared) or two or more plain-text files, one variant per file.

Example:
  promptlens compare greeting.yaml
  promptlens compare v1.txt v2.txt v3.txt --highlight`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareSave, "save", false, "persist the report to the history database")
	compareCmd.Flags().BoolVar(&compareHighlight, "highlight", false, "render each variant with shared phrases emphasized")
}

func runCompare(cmd *cobra.Command, args []string) error {
	name, texts, err := loadVariants(args)
	if err != nil {
		return err
	}

	log := logging.Get(logging.CategoryCLI)
	log.Debug("comparing variants", zap.String("set", name), zap.Int("count", len(texts)))

	r := report.Build(name, texts)
	printReport(cmd, r)

	if compareHighlight {
		phrases := overlap.CommonPhrases(texts)
		for i, text := range texts {
			cmd.Printf("\n--- variant %d ---\n%s\n", i+1, highlight(text, phrases))
		}
	}

	if compareSave {
		s, err := store.Open(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Save(r); err != nil {
			return err
		}
		log.Info("report saved", zap.String("id", r.ID))
		cmd.Printf("\nSaved as %s\n", r.ID)
	}
	return nil
}

// loadVariants resolves command arguments into a named set of variant texts.
func loadVariants(args []string) (string, []string, error) {
	if len(args) == 1 {
		if !promptset.IsYAML(args[0]) {
			return "", nil, fmt.Errorf("a single argument must be a prompt-set YAML file; pass multiple text files to compare them directly")
		}
		set, err := promptset.Load(args[0])
		if err != nil {
			return "", nil, err
		}
		if len(set.Variants) == 0 {
			return "", nil, fmt.Errorf("prompt set %s has no variants", args[0])
		}
		return set.Name, set.Variants, nil
	}

	texts, err := promptset.LoadTexts(args)
	if err != nil {
		return "", nil, err
	}
	return "ad-hoc", texts, nil
}

func printReport(cmd *cobra.Command, r report.Report) {
	cmd.Printf("Set:         %s\n", r.Name)
	cmd.Printf("Inputs:      %d\n", r.InputCount)
	cmd.Printf("Similarity:  %.2f\n", r.Similarity)
	cmd.Printf("Common words: %d\n", r.CommonWordCount)
	if r.Shared == "" {
		cmd.Println("Shared:      (nothing shared)")
		return
	}
	cmd.Printf("Shared:      %s\n", r.Shared)
}
