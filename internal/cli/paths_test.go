package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	custom := t.TempDir()

	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"default", "", filepath.Join(home, ".cache", appName)},
		{"xdg cache home", custom, filepath.Join(custom, appName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdg)
			got, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCachePathCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	var stdout bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "path"})
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache path: %v", err)
	}

	if got, want := strings.TrimSpace(stdout.String()), filepath.Join(xdg, appName); got != want {
		t.Errorf("cache path printed %q, want %q", got, want)
	}
}

func TestCacheClearEmpty(t *testing.T) {
	status := captureOutput(t)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "missing"))

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	root.SetOut(io.Discard)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(status.String(), "Cache is empty") {
		t.Errorf("cache clear output %q, want it to report an empty cache", status.String())
	}
}
