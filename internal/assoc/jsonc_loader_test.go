package assoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSONCParsesCommentsAndBuildsRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assoc.jsonc")
	raw := `[
		// a minimal browser group, no globs
		{"main": "/usr/bin/firefox", "members": ["/usr/lib/firefox/firefox-bin"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r, err := LoadJSONC(path)
	require.NoError(t, err)
	assert.True(t, r.IsAssociated("/usr/bin/firefox", "/usr/lib/firefox/firefox-bin"))
	assert.False(t, r.IsAssociated("/usr/bin/firefox", "/usr/bin/soffice"))
}

func TestLoadJSONCSkipsGroupsWithEmptyMain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assoc.jsonc")
	raw := `[{"main": "", "members": ["/a"]}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r, err := LoadJSONC(path)
	require.NoError(t, err)
	assert.False(t, r.IsAssociated("/a", "/a"))
}

func TestLoadJSONCExpandsGlobMembers(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "lib", "app")
	require.NoError(t, os.MkdirAll(libDir, 0o755))
	helper := filepath.Join(libDir, "app-bin")
	require.NoError(t, os.WriteFile(helper, nil, 0o755))

	pattern := filepath.Join(dir, "lib", "*", "app-bin")
	path := filepath.Join(dir, "assoc.jsonc")
	raw := `[{"main": "/usr/bin/app", "members": ["` + pattern + `"]}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r, err := LoadJSONC(path)
	require.NoError(t, err)
	assert.True(t, r.IsAssociated("/usr/bin/app", helper))
}

func TestLoadJSONCUnreadableFileErrors(t *testing.T) {
	_, err := LoadJSONC(filepath.Join(t.TempDir(), "does-not-exist.jsonc"))
	require.Error(t, err)
}
