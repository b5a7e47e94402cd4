package home

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDefaultsToUserHome(t *testing.T) {
	d, err := New("")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !strings.HasSuffix(d.Path(), DefaultDirName) {
		t.Errorf("path = %q, want %s suffix", d.Path(), DefaultDirName)
	}
}

func TestDirLayout(t *testing.T) {
	d, err := New("/tmp/hvacjack-test")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if d.ConfigPath() != "/tmp/hvacjack-test/config.yaml" {
		t.Errorf("config path = %q", d.ConfigPath())
	}
	if d.ReportPath("abc-123") != "/tmp/hvacjack-test/reports/abc-123.json" {
		t.Errorf("report path = %q", d.ReportPath("abc-123"))
	}
	if d.PlatePath("plate-1") != "/tmp/hvacjack-test/plates/plate-1.json" {
		t.Errorf("plate path = %q", d.PlatePath("plate-1"))
	}
}

func TestEnsureExists(t *testing.T) {
	root := filepath.Join(t.TempDir(), "hvacjack")
	d, err := New(root)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if d.Exists() {
		t.Fatal("directory should not exist yet")
	}
	if err := d.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists() error: %v", err)
	}
	if !d.Exists() {
		t.Error("directory should exist")
	}
	for _, dir := range []string{d.ReportsPath(), d.PlatesPath()} {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			t.Errorf("%s not created as directory", dir)
		}
	}
	if d.ConfigExists() {
		t.Error("config should not exist in fresh home")
	}
}
