package flow

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan is returned for plan files that parse but make no sense.
var ErrInvalidPlan = errors.New("invalid plan")

type document struct {
	Config `yaml:",inline"`
	Swipes []SwipeStep `yaml:"swipes"`
}

// ParseFile reads and parses a plan file.
func ParseFile(path string) (*Flow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return Parse(data, path)
}

// Parse parses plan YAML. sourcePath is only used for reporting.
func Parse(data []byte, sourcePath string) (*Flow, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", sourcePath, err)
	}

	f := &Flow{
		SourcePath: sourcePath,
		Config:     doc.Config,
		Steps:      doc.Swipes,
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", sourcePath, err)
	}
	return f, nil
}

// Validate checks that the plan can be computed.
func (f *Flow) Validate() error {
	if screen := f.Config.Screen; !screen.IsZero() {
		if err := screen.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
	}
	if len(f.Steps) == 0 {
		return fmt.Errorf("%w: no swipes", ErrInvalidPlan)
	}

	for i, step := range f.Steps {
		if !step.Direction.IsValid() {
			return fmt.Errorf("%w: swipe %d: missing direction", ErrInvalidPlan, i+1)
		}
		if v := step.View; v != nil {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("%w: swipe %d: %w", ErrInvalidPlan, i+1, err)
			}
		}
	}
	return nil
}

// ParsePaths parses every plan named by paths. Directories contribute their
// .yaml/.yml files in lexical order; subdirectories are not searched.
func ParsePaths(paths []string) ([]*Flow, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() || !isPlanFile(e.Name()) {
				continue
			}
			found = append(found, filepath.Join(p, e.Name()))
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no plan files found", ErrInvalidPlan)
	}

	flows := make([]*Flow, 0, len(files))
	for _, file := range files {
		f, err := ParseFile(file)
		if err != nil {
			return nil, err
		}
		flows = append(flows, f)
	}
	return flows, nil
}

func isPlanFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
