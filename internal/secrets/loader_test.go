package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  s3cret \n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := Source{Name: "gemini api key", File: path}.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("expected trimmed secret, got %q", got)
	}
}

func TestResolveFilePrecedesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := Source{Name: "key", Value: "inline", File: path}.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file to win, got %q", got)
	}
}

func TestResolveEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Source{Name: "gemini api key", File: path}.Resolve()
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestResolveUnconfigured(t *testing.T) {
	_, err := Source{Name: "gemini api key"}.Resolve()
	if err == nil || !strings.Contains(err.Error(), "gemini api key is not configured") {
		t.Fatalf("expected unconfigured error, got %v", err)
	}
}
