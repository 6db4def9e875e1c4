package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandboxtools/execcensor/internal/pathres"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Report which policy lists match a path, and its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	canonical, err := pathres.Realpath(target)
	if err != nil {
		return fmt.Errorf("canonicalize %s: %w", target, err)
	}
	e := newEngine()
	lists := e.Lists()

	fmt.Printf("target:        %s\n", target)
	fmt.Printf("canonical:     %s\n", canonical)
	fmt.Printf("helpers:       %v\n", lists.Helpers.Match(target))
	fmt.Printf("managed-bins:  %v\n", lists.ManagedBins.Match(target))
	fmt.Printf("managed-files: %v\n", lists.ManagedFiles.Match(target))
	return nil
}
