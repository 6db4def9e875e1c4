//go:build linux

package main

import (
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/sandboxtools/execcensor/internal/dispatch"
)

// runInteractive launches call's target under a real PTY so an operator
// can watch the allowed half of a replayed decision run as it actually
// would at exec time. It never substitutes for Dispatch.Run's own
// Execer — this is strictly an after-the-fact demonstration.
func runInteractive(call dispatch.RecordedCall) error {
	var extraArgs []string
	if len(call.Argv) > 1 {
		extraArgs = call.Argv[1:]
	}
	cmd := exec.Command(call.Path, extraArgs...)
	cmd.Env = os.Environ()

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ptmx.Close() }()
	_ = pty.InheritSize(os.Stdin, ptmx)

	restore := func() {}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if old, err := term.MakeRaw(int(os.Stdin.Fd())); err == nil {
			restore = func() { _ = term.Restore(int(os.Stdin.Fd()), old) }
		}
	}
	defer restore()

	go func() { _, _ = io.Copy(ptmx, os.Stdin) }()
	_, _ = io.Copy(os.Stdout, ptmx)

	return cmd.Wait()
}
