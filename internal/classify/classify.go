// Package classify implements the argument classifier (component E): for
// each argv entry it decides whether the entry names a restricted file.
package classify

import (
	"errors"
	"strings"

	"github.com/sandboxtools/execcensor/internal/dtag"
	"github.com/sandboxtools/execcensor/internal/pathres"
	"github.com/sandboxtools/execcensor/internal/perr"
	"github.com/sandboxtools/execcensor/internal/policy"
)

// Argument classifies one argv entry (index >= 1) against the
// managed-files policy list. An argument is considered "file-like" if it
// contains a path separator, if its literal form canonicalizes, or if
// canonicalization fails with permission-denied, loop, or no-memory — all
// of which imply that something exists at that path. File-like arguments
// matched by managedFiles are tagged SandboxManaged; everything else is
// Unspecified.
func Argument(arg string, managedFiles policy.List) dtag.Tag {
	canonical, fileLike := classifyFileLike(arg)
	if !fileLike {
		return dtag.Unspecified
	}
	if managedFiles.Match(canonical) {
		return dtag.SandboxManaged
	}
	return dtag.Unspecified
}

func classifyFileLike(arg string) (canonical string, fileLike bool) {
	hasSeparator := strings.ContainsRune(arg, '/')

	canonical, err := pathres.Realpath(arg)
	if err == nil {
		return canonical, true
	}

	impliesExistence := errors.Is(err, perr.ErrPermissionDenied) ||
		errors.Is(err, perr.ErrLoop) ||
		errors.Is(err, perr.ErrNoMemory)

	if impliesExistence {
		return arg, true
	}

	return arg, hasSeparator
}
