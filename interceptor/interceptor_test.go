package interceptor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandboxtools/execcensor/execpolicy"
	"github.com/sandboxtools/execcensor/internal/dispatch"
	"github.com/sandboxtools/execcensor/internal/perr"
)

func testEngine(t *testing.T, dir string) *execpolicy.Engine {
	t.Helper()
	helpers := filepath.Join(dir, "helpers.list")
	managedBins := filepath.Join(dir, "managed-bins.list")
	managedFiles := filepath.Join(dir, "managed-files.list")
	for _, p := range []string{helpers, managedBins, managedFiles} {
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return execpolicy.New(execpolicy.Paths{
		Helpers:      helpers,
		ManagedBins:  managedBins,
		ManagedFiles: managedFiles,
	}, "", nil)
}

func TestByDescriptorNegativeFDFailsFastWithoutRecording(t *testing.T) {
	e := testEngine(t, t.TempDir())
	rec := &dispatch.Recorder{}

	res := ByDescriptor(e, -1, nil, nil, rec.Exec)

	if len(rec.Calls) != 0 {
		t.Fatalf("expected no recorded calls, got %v", rec.Calls)
	}
	if !errors.Is(res.Err, perr.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", res.Err)
	}
}

func TestByNameResolvesThenDecides(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "mybin")
	if err := os.WriteFile(bin, nil, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	e := testEngine(t, t.TempDir())
	rec := &dispatch.Recorder{}

	res := ByName(e, "mybin", []string{"mybin"}, nil, rec.Exec)

	if res.Notified {
		t.Error("an unlisted binary with no arguments should be allowed, not notified")
	}
	if len(rec.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(rec.Calls))
	}
}

func TestByNameUnresolvableNameFails(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	e := testEngine(t, t.TempDir())
	rec := &dispatch.Recorder{}

	res := ByName(e, "totally-missing-xyz", nil, nil, rec.Exec)

	if !errors.Is(res.Err, perr.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", res.Err)
	}
	if len(rec.Calls) != 0 {
		t.Fatal("an unresolvable name must never reach dispatch")
	}
}

func TestByPathUsesTargetVerbatim(t *testing.T) {
	e := testEngine(t, t.TempDir())
	rec := &dispatch.Recorder{}

	res := ByPath(e, "/usr/bin/firefox", []string{"firefox"}, nil, rec.Exec)

	if res.Notified {
		t.Error("no policy lists are populated, so this call must be allowed")
	}
	if len(rec.Calls) != 1 || rec.Calls[0].Path != "/usr/bin/firefox" {
		t.Fatalf("unexpected calls: %+v", rec.Calls)
	}
}
