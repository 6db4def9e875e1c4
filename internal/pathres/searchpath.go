package pathres

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/sandboxtools/execcensor/internal/perr"
)

// DefaultSearchPath is used when the caller's PATH environment variable is
// unset.
const DefaultSearchPath = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"

// Resolve locates name on the search path. If name contains a separator it
// is delegated straight to Realpath. Otherwise the PATH environment
// variable (or DefaultSearchPath if unset) is split on ':' and each
// directory is probed in order for an executable "directory/name".
//
// A leading, trailing, or doubled ':' in PATH selects the current
// directory for that segment, matching traditional shell PATH semantics.
func Resolve(name string) (string, error) {
	if strings.ContainsRune(name, '/') {
		return Realpath(name)
	}

	searchPath := os.Getenv("PATH")
	if searchPath == "" {
		searchPath = DefaultSearchPath
	}

	sawPermissionDenied := false
	for _, dir := range splitSearchPath(searchPath) {
		candidate := dir + "/" + name
		err := unix.Access(candidate, unix.X_OK)
		if err == nil {
			return Realpath(candidate)
		}

		switch err {
		case unix.EACCES:
			sawPermissionDenied = true
			continue
		case unix.ENOENT, unix.ENAMETOOLONG, unix.ENOTDIR, unix.ELOOP, unix.EROFS, unix.ETXTBSY:
			continue
		default:
			return "", fmt.Errorf("%w: %s: %v", perr.ErrNotFound, name, err)
		}
	}

	if sawPermissionDenied {
		return "", fmt.Errorf("%w: %s", perr.ErrPermissionDenied, name)
	}
	return "", fmt.Errorf("%w: %s", perr.ErrNotFound, name)
}

func splitSearchPath(searchPath string) []string {
	parts := strings.Split(searchPath, ":")
	dirs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			dirs = append(dirs, ".")
			continue
		}
		dirs = append(dirs, p)
	}
	return dirs
}
