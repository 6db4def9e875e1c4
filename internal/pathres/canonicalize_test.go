package pathres

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCanonicalizeIdempotence(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	first, err := Canonicalize(sub+"/./../b", Existing, 0)
	if err != nil {
		t.Fatalf("first canonicalize: %v", err)
	}
	second, err := Canonicalize(first, Existing, 0)
	if err != nil {
		t.Fatalf("second canonicalize: %v", err)
	}
	if first != second {
		t.Fatalf("canon(canon(P))=%q, want %q", second, first)
	}
}

func TestCanonicalizeInvariants(t *testing.T) {
	dir := t.TempDir()
	got, err := Canonicalize(dir+"/./x/../", Missing, 0)
	if err != nil {
		t.Fatalf("canonicalize: %v", err)
	}
	if !strings.HasPrefix(got, "/") {
		t.Errorf("result %q does not start with /", got)
	}
	for _, bad := range []string{"//", "/./", "/../"} {
		if strings.Contains(got, bad) {
			t.Errorf("result %q contains forbidden substring %q", got, bad)
		}
	}
}

func TestCycleDetection(t *testing.T) {
	dir := t.TempDir()
	loop := filepath.Join(dir, "a")
	if err := os.Symlink("a", loop); err != nil {
		t.Fatal(err)
	}

	if _, err := Canonicalize(loop, Existing, 0); err == nil {
		t.Fatal("expected loop error under Existing mode")
	}

	got, err := Canonicalize(loop, Missing, 0)
	if err != nil {
		t.Fatalf("expected Missing mode to skip the loop, got error: %v", err)
	}
	if got != loop {
		t.Fatalf("expected loop to resolve to literal %q, got %q", loop, got)
	}
}

func TestTildeExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	got, err := Canonicalize("~/docs/./../docs", Missing, 0)
	if err != nil {
		t.Fatalf("canonicalize: %v", err)
	}
	if got != "/home/u/docs" {
		t.Fatalf("got %q, want /home/u/docs", got)
	}
}

func TestRealpathTwoPass(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	got, err := Realpath(link + "/nonexistent-child")
	if err != nil {
		t.Fatalf("realpath: %v", err)
	}
	want := target + "/nonexistent-child"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmptyInputFails(t *testing.T) {
	if _, err := Canonicalize("", Missing, 0); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestInvalidModeFails(t *testing.T) {
	if _, err := Canonicalize("/tmp", 0, 0); err == nil {
		t.Fatal("expected error for unset mode")
	}
}
