// Package home manages the hvacjack home directory layout.
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the hvacjack home directory.
	DefaultDirName = ".hvacjack"

	// ReportsDirName is the subdirectory for saved diagnostic reports.
	ReportsDirName = "reports"

	// PlatesDirName is the subdirectory for saved nameplate records.
	PlatesDirName = "plates"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the hvacjack home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.hvacjack).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// ReportsPath returns the directory for saved diagnostic reports.
func (d *Dir) ReportsPath() string {
	return filepath.Join(d.path, ReportsDirName)
}

// ReportPath returns the file path for one saved report.
func (d *Dir) ReportPath(responseID string) string {
	return filepath.Join(d.ReportsPath(), responseID+".json")
}

// PlatesPath returns the directory for saved nameplate records.
func (d *Dir) PlatesPath() string {
	return filepath.Join(d.path, PlatesDirName)
}

// PlatePath returns the file path for one saved nameplate record.
func (d *Dir) PlatePath(name string) string {
	return filepath.Join(d.PlatesPath(), name+".json")
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	for _, dir := range []string{d.ReportsPath(), d.PlatesPath()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
