package assoc

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
)

// fileGroup is the on-disk shape of one association group entry: main is
// the group's main key, members are additional paths (which may be glob
// patterns such as "/usr/lib/thunderbird/**/thunderbird-bin") that are
// expanded against the filesystem at load time.
type fileGroup struct {
	Main    string   `json:"main"`
	Members []string `json:"members"`
}

// LoadJSONC parses an association table from a JSONC file (JSON with
// comments) and
// builds a Registry from it. Glob patterns among the members are expanded
// via doublestar against the root filesystem; a pattern matching nothing
// is dropped rather than erroring, since policy files often describe
// distro layouts that don't all exist on a given host.
func LoadJSONC(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assoc: read %s: %w", path, err)
	}

	var fileGroups []fileGroup
	if err := json.Unmarshal(jsonc.ToJSON(raw), &fileGroups); err != nil {
		return nil, fmt.Errorf("assoc: parse %s: %w", path, err)
	}

	table := make([][]string, 0, len(fileGroups))
	for _, fg := range fileGroups {
		if fg.Main == "" {
			continue
		}
		members := make([]string, 0, len(fg.Members)+1)
		for _, m := range fg.Members {
			members = append(members, expandMember(m)...)
		}
		members = append(members, fg.Main)
		table = append(table, members)
	}

	return NewRegistry(table)
}

// expandMember resolves a member entry, expanding it as a glob pattern
// against the root filesystem if it contains glob metacharacters.
func expandMember(pattern string) []string {
	if !strings.ContainsAny(pattern, "*?[") {
		return []string{pattern}
	}

	rel := strings.TrimPrefix(pattern, "/")
	matches, err := doublestar.Glob(os.DirFS("/"), rel)
	if err != nil || len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, "/"+m)
	}
	return out
}
