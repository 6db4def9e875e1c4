package execpolicy

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sandboxtools/execcensor/internal/dispatch"
)

func writeLists(t *testing.T, dir string, helpers, managedBins, managedFiles string) Paths {
	t.Helper()
	p := Paths{
		Helpers:      filepath.Join(dir, "helpers.list"),
		ManagedBins:  filepath.Join(dir, "managed-bins.list"),
		ManagedFiles: filepath.Join(dir, "managed-files.list"),
	}
	if err := os.WriteFile(p.Helpers, []byte(helpers), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p.ManagedBins, []byte(managedBins), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p.ManagedFiles, []byte(managedFiles), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEngineListsReflectsPolicyFiles(t *testing.T) {
	dir := t.TempDir()
	paths := writeLists(t, dir, "/usr/bin/firefox\n", "", "/secret\n")

	e := New(paths, "", nil)
	lists := e.Lists()

	if len(lists.Helpers) != 1 || lists.Helpers[0] != "/usr/bin/firefox" {
		t.Fatalf("got %v", lists.Helpers)
	}
	if len(lists.ManagedFiles) != 1 || lists.ManagedFiles[0] != "/secret" {
		t.Fatalf("got %v", lists.ManagedFiles)
	}
}

func TestEngineDecideAndDispatchEndToEnd(t *testing.T) {
	dir := t.TempDir()
	paths := writeLists(t, dir, "/usr/bin/firefox\n", "", "")

	e := New(paths, "", nil)
	rec := &dispatch.Recorder{}

	res := e.DecideAndDispatch("/usr/bin/firefox", []string{"firefox"}, nil, rec.Exec)

	if res.Notified {
		t.Error("a helper target with no arguments must not notify")
	}
	if len(rec.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(rec.Calls))
	}
}

func TestEngineInitIsSafeForConcurrentFirstUse(t *testing.T) {
	dir := t.TempDir()
	paths := writeLists(t, dir, "", "", "")
	e := New(paths, "", nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = e.Lists()
		}()
	}
	wg.Wait()
}
