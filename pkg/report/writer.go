package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File names inside the output directory.
const (
	JSONFile  = "report.json"
	JUnitFile = "junit-report.xml"
)

// Write stores report.json and junit-report.xml in dir.
func Write(dir string, r *Report) error {
	if err := atomicWriteJSON(filepath.Join(dir, JSONFile), r); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	if err := atomicWriteFile(filepath.Join(dir, JUnitFile), []byte(buildJUnitXML(r)), 0o644); err != nil {
		return fmt.Errorf("write junit xml: %w", err)
	}
	return nil
}

// Read loads report.json from dir.
func Read(dir string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(dir, JSONFile))
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}
