package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandboxtools/execcensor/internal/dispatch"
	"github.com/sandboxtools/execcensor/internal/scenarios"
)

var replayInteractive bool

var replayCmd = &cobra.Command{
	Use:   "replay [name]",
	Short: "Replay the spec's literal test scenarios against a recording stub",
	Long: `replay runs each named scenario (S1, S2, S3, S6-managed,
S6-unspecified, or "all") through Decide and Dispatch using a Recorder in
place of a live image-replacement syscall, printing every notification and
allowed-exec attempt the supervisor would have observed.

With --interactive, an allowed scenario's target is additionally launched
for real under a PTY so an operator can see the permitted command run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&replayInteractive, "interactive", false, "actually run an allowed scenario's target under a PTY")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	want := "all"
	if len(args) == 1 {
		want = args[0]
	}

	for _, sc := range scenarios.Named() {
		if want != "all" && want != sc.Name {
			continue
		}

		rec := &dispatch.Recorder{}
		result := sc.Run(rec.Exec)

		fmt.Printf("=== %s ===\n", sc.Name)
		for _, call := range rec.Calls {
			fmt.Printf("  exec attempt: %s %v\n", call.Path, call.Argv)
		}
		fmt.Printf("  notified=%v err=%v\n", result.Notified, result.Err)

		if replayInteractive && len(rec.Calls) > 0 && !result.Notified {
			if err := runInteractive(rec.Calls[len(rec.Calls)-1]); err != nil {
				fmt.Printf("  interactive run failed: %v\n", err)
			}
		}
	}

	return nil
}
