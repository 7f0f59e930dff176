package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptlens/internal/promptset"
	"promptlens/internal/thread"
)

// prefixCmd extracts the shared prefix of the conversations in a prompt set.
var prefixCmd = &cobra.Command{
	Use:   "prefix <set.yaml>",
	Short: "Extract the labeled segments shared by every conversation in a set",
	Long: `Compares the conversations of a prompt-set file position by position.
A position survives only when every conversation carries the same role there
and the message bodies still share content; the walk stops at the first
disagreement.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrefix,
}

func runPrefix(cmd *cobra.Command, args []string) error {
	set, err := promptset.Load(args[0])
	if err != nil {
		return err
	}
	if len(set.Conversations) == 0 {
		return fmt.Errorf("prompt set %s has no conversations", args[0])
	}

	shared := thread.SharedPrefix(set.Conversations)
	if len(shared) == 0 {
		cmd.Println("(no shared prefix)")
		return nil
	}
	for i, seg := range shared {
		cmd.Printf("%d. [%s] %s\n", i+1, seg.Role, seg.Body.Flatten())
	}
	return nil
}
