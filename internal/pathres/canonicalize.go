// Package pathres resolves user-supplied names to absolute, symlink-free
// paths (component A, the path canonicalizer) and locates bare file names
// on the caller's executable search path (component B).
package pathres

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/sandboxtools/execcensor/internal/perr"
)

// Mode selects how missing path components are treated during
// canonicalization. Exactly one Mode must be supplied to Canonicalize.
type Mode int

const (
	// Existing requires every path component to exist.
	Existing Mode = iota + 1
	// AllButLast allows the final component to be missing.
	AllButLast
	// Missing imposes no existence requirement at all.
	Missing
)

// Flag holds orthogonal canonicalization modifiers.
type Flag uint8

const (
	// NoLinks disables symlink resolution: components are normalized
	// (., .. collapsed) but never substituted with their link targets.
	NoLinks Flag = 1 << iota
)

// readlinkStart is the initial readlink buffer size; it doubles on
// truncation up to readlinkCeiling.
const (
	readlinkStart   = 256
	readlinkCeiling = 4096
)

type cycleKey struct {
	name string
	dev  uint64
	ino  uint64
}

// Canonicalize resolves input to an absolute path under the given mode and
// flags. It implements the two-pass-composable algorithm of the path
// canonicalizer: component-by-component walking with symlink substitution,
// "." / ".." collapsing, and (name, device, inode) cycle detection.
func Canonicalize(input string, mode Mode, flags Flag) (string, error) {
	if mode != Existing && mode != AllButLast && mode != Missing {
		return "", fmt.Errorf("%w: invalid mode %d", perr.ErrInvalidArgument, mode)
	}
	if input == "" {
		return "", fmt.Errorf("%w: empty path", perr.ErrNotFound)
	}

	remaining, err := toAbsoluteForm(input)
	if err != nil {
		return "", err
	}

	noLinks := flags&NoLinks != 0
	result := "" // accumulated output; "" means root so far
	seen := make(map[cycleKey]bool)

	for {
		remaining = strings.TrimLeft(remaining, "/")
		if remaining == "" {
			break
		}

		var comp string
		if idx := strings.IndexByte(remaining, '/'); idx == -1 {
			comp = remaining
			remaining = ""
		} else {
			comp = remaining[:idx]
			remaining = remaining[idx:]
		}

		switch comp {
		case ".":
			continue
		case "..":
			result = parentOf(result)
			continue
		}

		isLast := strings.Trim(remaining, "/") == ""
		candidate := result + "/" + comp

		if noLinks && mode == Missing {
			result = candidate
			continue
		}

		var st unix.Stat_t
		statErr := unix.Lstat(candidate, &st)
		if statErr != nil {
			switch mode {
			case Existing:
				return "", translateStatErr(statErr)
			case AllButLast:
				if isLast && statErr == unix.ENOENT {
					result = candidate
					continue
				}
				return "", translateStatErr(statErr)
			case Missing:
				result = candidate
				continue
			}
		}

		isSymlink := st.Mode&unix.S_IFMT == unix.S_IFLNK
		if isSymlink && !noLinks {
			key := cycleKey{name: candidate, dev: uint64(st.Dev), ino: uint64(st.Ino)}
			if seen[key] {
				if mode == Missing {
					result = candidate
					continue
				}
				return "", fmt.Errorf("%w: %s", perr.ErrLoop, candidate)
			}
			seen[key] = true

			target, rlErr := readLink(candidate)
			if rlErr != nil {
				return "", rlErr
			}

			remaining = target + remaining
			if strings.HasPrefix(target, "/") {
				result = ""
			}
			// A relative link target resolves against the symlink's own
			// parent directory, which is exactly the current (pre-append)
			// result — nothing to back up.
			continue
		}

		isDir := st.Mode&unix.S_IFMT == unix.S_IFDIR
		if !isDir && !isLast && mode != Missing {
			return "", fmt.Errorf("%w: %s", perr.ErrNotADirectory, candidate)
		}

		result = candidate
	}

	if result == "" {
		result = "/"
	}
	return result, nil
}

// Realpath resolves name in two passes: first a NoLinks/Missing pass that
// normalizes "." and ".." without touching symlinks (so hypothetical,
// partially-nonexistent paths still normalize), then a Missing pass with
// symlink resolution enabled to collapse any links that do exist.
func Realpath(name string) (string, error) {
	normalized, err := Canonicalize(name, Missing, NoLinks)
	if err != nil {
		return "", err
	}
	return Canonicalize(normalized, Missing, 0)
}

func toAbsoluteForm(input string) (string, error) {
	switch {
	case input == "~" || strings.HasPrefix(input, "~/"):
		home := os.Getenv("HOME")
		if home == "" {
			return "", fmt.Errorf("%w: HOME is unset", perr.ErrInvalidArgument)
		}
		if input == "~" {
			return home, nil
		}
		return home + "/" + input[2:], nil
	case strings.HasPrefix(input, "/"):
		return input, nil
	default:
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: %v", perr.ErrNotFound, err)
		}
		return cwd + "/" + input, nil
	}
}

func parentOf(result string) string {
	if result == "" {
		return ""
	}
	idx := strings.LastIndexByte(result, '/')
	if idx <= 0 {
		return ""
	}
	return result[:idx]
}

func readLink(path string) (string, error) {
	size := readlinkStart
	for {
		buf := make([]byte, size)
		n, err := unix.Readlink(path, buf)
		if err != nil {
			return "", fmt.Errorf("%w: readlink %s: %v", perr.ErrNotFound, path, err)
		}
		if n < size {
			return string(buf[:n]), nil
		}
		if size >= readlinkCeiling {
			return "", fmt.Errorf("%w: readlink %s exceeds %d bytes", perr.ErrNoMemory, path, readlinkCeiling)
		}
		size *= 2
		if size > readlinkCeiling {
			size = readlinkCeiling
		}
	}
}

func translateStatErr(err error) error {
	switch err {
	case unix.ENOENT:
		return fmt.Errorf("%w: %v", perr.ErrNotFound, err)
	case unix.EACCES:
		return fmt.Errorf("%w: %v", perr.ErrPermissionDenied, err)
	case unix.ENOTDIR:
		return fmt.Errorf("%w: %v", perr.ErrNotADirectory, err)
	case unix.ELOOP:
		return fmt.Errorf("%w: %v", perr.ErrLoop, err)
	default:
		return fmt.Errorf("%w: %v", perr.ErrNotFound, err)
	}
}
