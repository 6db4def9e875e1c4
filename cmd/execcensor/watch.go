package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the policy list directories and re-print them on change",
	Long: `watch is a CLI-only convenience layered outside the core
decision pipeline: the engine itself only ever refreshes a policy file's
contents synchronously inside Get, on the next call that needs it. This
command exists so an operator editing policy files can see the effect of
each edit immediately, without re-invoking "list" by hand.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dirs := map[string]bool{
		filepath.Dir(flagHelpersList):      true,
		filepath.Dir(flagManagedBinsList):  true,
		filepath.Dir(flagManagedFilesList): true,
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			slog.Warn("watch: cannot watch directory", "dir", dir, "error", err)
		}
	}

	e := newEngine()
	fmt.Println("watching policy lists, press Ctrl-C to stop")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fmt.Printf("--- %s changed ---\n", event.Name)
			lists := e.Lists()
			printEntriesStdout("helpers", lists.Helpers)
			printEntriesStdout("managed-bins", lists.ManagedBins)
			printEntriesStdout("managed-files", lists.ManagedFiles)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch: watcher error", "error", err)
		}
	}
}

func printEntriesStdout(name string, entries []string) {
	if len(entries) == 0 {
		fmt.Printf("%s: (empty)\n", name)
		return
	}
	for _, e := range entries {
		fmt.Printf("%s: %s\n", name, e)
	}
}
