package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry describes a discovered project config file.
type Entry struct {
	// Name is the project name from the config, or the file's base name
	// when the config can't be parsed.
	Name string
	Path string
	// Windows is the declared window count (0 when Err is set).
	Windows int
	// Err holds the load error for configs that failed to parse, so the
	// picker can show them as broken instead of hiding them.
	Err error
}

// DefaultConfigDir returns the directory scanned for project configs when
// none is given: ~/.config/pmux.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "pmux")
}

// Discover lists the project configs (.toml, .yml, .yaml) in dir, sorted by
// name. Subdirectories are not descended into.
func Discover(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory %s: %w", dir, err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(f.Name())) {
		case ".toml", ".yml", ".yaml":
		default:
			continue
		}

		path := filepath.Join(dir, f.Name())
		p, err := Load(path)
		if err != nil {
			name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
			entries = append(entries, Entry{Name: name, Path: path, Err: err})
			continue
		}
		entries = append(entries, Entry{Name: p.Name, Path: path, Windows: len(p.Windows)})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
