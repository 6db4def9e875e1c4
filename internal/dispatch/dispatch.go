// Package dispatch implements the dispatch protocol (component G): it
// signals the forbidden half of a decided call to the supervisor via a
// sentinel-path exec, then executes the allowed half.
package dispatch

import (
	"fmt"
	"log/slog"

	"github.com/sandboxtools/execcensor/internal/decision"
	"github.com/sandboxtools/execcensor/internal/pathres"
	"github.com/sandboxtools/execcensor/internal/perr"
)

// SentinelPrefix is prepended to the resolved forbidden target to build
// the synthetic path an external supervisor watches for.
const SentinelPrefix = "/firejail/denied/"

// Execer replaces the calling process's image, matching the execve(2)
// family's "does not return on success" contract. Tests substitute a
// recording stub instead of the real syscall (see Recorder).
type Execer func(path string, argv []string, envp []string) error

// Recorder is a test Execer that appends every attempted call instead of
// executing it. It always returns a non-nil error: Err if set, otherwise
// a generic one, because an exec that returns to its caller has failed.
type Recorder struct {
	Calls []RecordedCall
	Err   error
}

// RecordedCall is one attempted image replacement observed by Recorder.
type RecordedCall struct {
	Path string
	Argv []string
}

func (r *Recorder) Exec(path string, argv []string, _ []string) error {
	r.Calls = append(r.Calls, RecordedCall{Path: path, Argv: append([]string(nil), argv...)})
	if r.Err != nil {
		return r.Err
	}
	return fmt.Errorf("recorder: exec %s did not actually run", path)
}

// Result reports the terminal outcome of Run.
type Result struct {
	Notified bool
	Err      error
}

// Run performs at most two image-replacement attempts for split, per the
// dispatch state machine: if Forbidden is set, a best-effort notification
// exec is issued first (its error is always swallowed); if Allowed is set,
// the real exec is attempted and any error is propagated; if neither half
// is executable, permission-denied is returned.
func Run(split decision.Split, envp []string, exec Execer, log *slog.Logger) Result {
	if log == nil {
		log = slog.Default()
	}

	result := Result{}

	if split.Forbidden != nil {
		sentinelPath, err := sentinelFor(split.Forbidden.Target)
		if err != nil {
			log.Warn("dispatch: could not resolve forbidden target for sentinel", "target", split.Forbidden.Target, "error", err)
			sentinelPath = SentinelPrefix + split.Forbidden.Target
		}
		log.Info("dispatch: notifying supervisor", "sentinel", sentinelPath, "argv", split.Forbidden.Argv)
		_ = exec(sentinelPath, split.Forbidden.Argv, envp) // best-effort; errno discarded per spec
		result.Notified = true
	}

	if split.Allowed != nil {
		log.Info("dispatch: exec allowed", "target", split.Allowed.Target, "argv", split.Allowed.Argv)
		if err := exec(split.Allowed.Target, split.Allowed.Argv, envp); err != nil {
			result.Err = fmt.Errorf("%w: %w", perr.ErrDispatch, err)
			return result
		}
		return result
	}

	result.Err = perr.ErrPermissionDenied
	return result
}

func sentinelFor(target string) (string, error) {
	resolved, err := pathres.Realpath(target)
	if err != nil {
		return "", err
	}
	return SentinelPrefix + resolved, nil
}
