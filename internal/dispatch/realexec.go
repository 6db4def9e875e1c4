//go:build linux || darwin

package dispatch

import "golang.org/x/sys/unix"

// UnixExec replaces the calling process's image via execve(2). On success
// it never returns; on failure it returns the raw errno, matching the
// "otherwise the raw errno from the underlying image-replacement call"
// exit surface the spec promises callers.
func UnixExec(path string, argv []string, envp []string) error {
	return unix.Exec(path, argv, envp)
}
