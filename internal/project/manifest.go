// Package project locates and parses the typelint.toml manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "typelint.toml"

// Manifest is the parsed typelint.toml.
type Manifest struct {
	Project ProjectSection `toml:"project"`
	Lint    LintSection    `toml:"lint"`
	Output  OutputSection  `toml:"output"`
}

// ProjectSection names the project and the paths it covers.
type ProjectSection struct {
	Name    string   `toml:"name"`
	Include []string `toml:"include"`
}

// LintSection selects rules; an empty list enables every rule.
type LintSection struct {
	Rules []string `toml:"rules"`
}

// OutputSection carries display defaults.
type OutputSection struct {
	Format string `toml:"format"`
}

// ErrProjectSectionMissing indicates that [project] is missing.
var ErrProjectSectionMissing = errors.New("missing [project]")

// Load parses a manifest file.
func Load(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrProjectSectionMissing)
	}
	m.Project.Name = strings.TrimSpace(m.Project.Name)
	if format := strings.TrimSpace(m.Output.Format); format != "" {
		switch format {
		case "pretty", "json":
			m.Output.Format = format
		default:
			return Manifest{}, fmt.Errorf("%s: unknown output format %q", path, format)
		}
	}
	return m, nil
}

// FindManifest walks up from startDir to locate typelint.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing typelint.toml, if any.
func FindRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}
