// Package interceptor implements the three thin entry-point adapters the
// spec describes: by absolute path, by bare name (search-path lookup),
// and by open file descriptor. Each normalizes its input to a resolved
// path and delegates to execpolicy.Engine.
package interceptor

import (
	"fmt"
	"os"

	"github.com/sandboxtools/execcensor/execpolicy"
	"github.com/sandboxtools/execcensor/internal/dispatch"
	"github.com/sandboxtools/execcensor/internal/pathres"
	"github.com/sandboxtools/execcensor/internal/perr"
)

// ByPath is the adapter for an exec-by-absolute-path call (the execve(2)
// analogue): target is used as given, without search-path resolution.
func ByPath(e *execpolicy.Engine, target string, argv, envp []string, exec dispatch.Execer) dispatch.Result {
	return e.DecideAndDispatch(target, argv, envp, exec)
}

// ByName is the adapter for an exec-by-bare-name call (the execvpe(2)
// analogue): name is resolved against the caller's search path before the
// decision pipeline runs.
func ByName(e *execpolicy.Engine, name string, argv, envp []string, exec dispatch.Execer) dispatch.Result {
	resolved, err := pathres.Resolve(name)
	if err != nil {
		return dispatch.Result{Err: fmt.Errorf("%w: %v", perr.ErrNotFound, err)}
	}
	return e.DecideAndDispatch(resolved, argv, envp, exec)
}

// ByDescriptor is the adapter for an exec-by-open-file-descriptor call
// (the fexecve(2) analogue): fd is converted to a path via
// /proc/self/fd/<n> before the decision pipeline runs. A negative
// descriptor or an unreadable link fails invalid-argument without
// recording any call.
func ByDescriptor(e *execpolicy.Engine, fd int, argv, envp []string, exec dispatch.Execer) dispatch.Result {
	if fd < 0 {
		return dispatch.Result{Err: fmt.Errorf("%w: negative descriptor %d", perr.ErrInvalidArgument, fd)}
	}

	link := fmt.Sprintf("/proc/self/fd/%d", fd)
	target, err := os.Readlink(link)
	if err != nil {
		return dispatch.Result{Err: fmt.Errorf("%w: %v", perr.ErrInvalidArgument, err)}
	}
	resolved, err := pathres.Realpath(target)
	if err != nil {
		return dispatch.Result{Err: fmt.Errorf("%w: %v", perr.ErrInvalidArgument, err)}
	}

	return e.DecideAndDispatch(resolved, argv, envp, exec)
}
