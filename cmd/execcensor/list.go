package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the current contents of the three policy lists",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	e := newEngine()
	lists := e.Lists()

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "LIST\tENTRY")
	printEntries(w, "helpers", lists.Helpers)
	printEntries(w, "managed-bins", lists.ManagedBins)
	printEntries(w, "managed-files", lists.ManagedFiles)
	return w.Flush()
}

func printEntries(w *tabwriter.Writer, name string, entries []string) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "%s\t(empty)\n", name)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", name, e)
	}
}
