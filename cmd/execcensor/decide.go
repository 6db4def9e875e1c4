package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decideCmd = &cobra.Command{
	Use:   "decide <target> [argv...]",
	Short: "Run the decision pipeline for one exec call and print the split",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDecide,
}

func init() {
	rootCmd.AddCommand(decideCmd)
}

func runDecide(cmd *cobra.Command, args []string) error {
	target := args[0]
	argv := args[1:]
	if len(argv) == 0 {
		argv = []string{target}
	}

	e := newEngine()
	split := e.Decide(target, argv)

	switch {
	case split.Forbidden != nil:
		fmt.Printf("forbidden: target=%s argv=%v\n", split.Forbidden.Target, split.Forbidden.Argv)
	case split.Allowed != nil:
		fmt.Printf("allowed: target=%s argv=%v\n", split.Allowed.Target, split.Allowed.Argv)
	default:
		fmt.Println("no decision produced")
	}

	for i, tag := range split.ArgTags {
		fmt.Printf("  argv[%d]=%q tag=%s\n", i, argv[i], tag)
	}
	return nil
}
