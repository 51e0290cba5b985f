package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_Defaults(t *testing.T) {
	cfg, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Inflate.Namespace != "widget" {
		t.Errorf("Namespace = %q, want widget", cfg.Inflate.Namespace)
	}
	if cfg.Inflate.Strict {
		t.Error("Strict should default to false")
	}
	if cfg.Convert.Indent != 4 {
		t.Errorf("Indent = %d, want 4", cfg.Convert.Indent)
	}
}

func TestResolve_FromFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("inflate:\n  namespace: app\n  strict: true\nconvert:\n  indent: 2\n")
	if err := os.WriteFile(filepath.Join(dir, "uirt.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Inflate.Namespace != "app" {
		t.Errorf("Namespace = %q, want app", cfg.Inflate.Namespace)
	}
	if !cfg.Inflate.Strict {
		t.Error("Strict not read")
	}
	if cfg.Convert.Indent != 2 {
		t.Errorf("Indent = %d, want 2", cfg.Convert.Indent)
	}
}

func TestResolve_BadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "uirt.yaml"), []byte("inflate: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(dir); err == nil {
		t.Fatal("malformed uirt.yaml should fail")
	}
}
