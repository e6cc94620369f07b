package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"lifeplan-engine/internal/scenario"
)

var diffCmd = &cobra.Command{
	Use:   "diff <previous.toml> <current.toml>",
	Short: "Show what changed between two scenario files",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	prev, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	cur, err := scenario.Load(args[1])
	if err != nil {
		return err
	}

	ops, err := scenario.Diff(prev, cur)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ops)
	}

	if len(ops) == 0 {
		fmt.Fprintln(out, "  No changes.")
		return nil
	}
	for _, op := range ops {
		if op.Value == nil {
			fmt.Fprintf(out, "  %-7s %s\n", op.Op, op.Path)
			continue
		}
		v, _ := json.Marshal(op.Value)
		fmt.Fprintf(out, "  %-7s %s = %s\n", op.Op, op.Path, v)
	}
	return nil
}
