package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Shell: "auto", MultiFormat: []string{"space"}, Output: "text", Precision: -1}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BOUNDED_SHELL", "powershell")
	t.Setenv("BOUNDED_MULTI_FORMAT", "comma,newline")
	t.Setenv("BOUNDED_OUTPUT", "yaml")
	t.Setenv("BOUNDED_PRECISION", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Shell: "powershell", MultiFormat: []string{"comma", "newline"}, Output: "yaml", Precision: 4}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("BOUNDED_PRECISION", "not-an-int")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
