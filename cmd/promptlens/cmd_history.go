package main

import (
	"github.com/spf13/cobra"

	"promptlens/internal/store"
)

var historyLimit int

// historyCmd lists recent saved comparison reports.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent saved comparison reports",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of reports to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	reports, err := s.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		cmd.Println("No saved reports.")
		return nil
	}

	for _, r := range reports {
		shared := r.Shared
		if shared == "" {
			shared = "(nothing shared)"
		}
		if len(shared) > 60 {
			shared = shared[:57] + "..."
		}
		cmd.Printf("%s  %-16s  inputs=%d  sim=%.2f  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Name, r.InputCount, r.Similarity, shared)
	}
	return nil
}
