// Package script loads driving scripts into ordered step sequences.
// The primary form is tabular CSV with a required header; YAML step
// lists are accepted as well.
package script

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shimf/uidrive/internal/model"
	"gopkg.in/yaml.v3"
)

// columns are the recognized header names, lowercased.
const (
	colAction      = "action"
	colWindow      = "window"
	colControlType = "controltype"
	colBy          = "by"
	colSelector    = "selector"
	colValue       = "value"
	colTimeoutMs   = "timeoutms"
)

// Load reads a script file and returns its ordered steps. The format is
// chosen by extension: .yaml/.yml parse as a YAML step list, everything
// else as tabular CSV.
func Load(path string) ([]model.Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadCSV(f)
	}
}

// LoadCSV parses a tabular script. The first non-blank record must be a
// header naming the columns (case-insensitive, any order); every field
// is trimmed, blank lines are ignored.
func LoadCSV(r io.Reader) ([]model.Step, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("script is empty: a header row is required")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read script header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := idx[colAction]; !ok {
		return nil, fmt.Errorf("script header must include an Action column (got %q)", strings.Join(header, ", "))
	}

	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var steps []model.Step
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", line, err)
		}
		if blankRecord(rec) {
			continue
		}

		step := model.Step{
			Action:      field(rec, colAction),
			Window:      field(rec, colWindow),
			ControlType: field(rec, colControlType),
			By:          field(rec, colBy),
			Selector:    field(rec, colSelector),
			Value:       field(rec, colValue),
		}
		if raw := field(rec, colTimeoutMs); raw != "" {
			ms, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("script line %d: invalid TimeoutMs %q", line, raw)
			}
			step.TimeoutMs = ms
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// LoadYAML parses a YAML list of step maps using the same field names as
// the tabular header.
func LoadYAML(r io.Reader) ([]model.Step, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var steps []model.Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	for i := range steps {
		steps[i].Action = strings.TrimSpace(steps[i].Action)
		steps[i].Window = strings.TrimSpace(steps[i].Window)
		steps[i].ControlType = strings.TrimSpace(steps[i].ControlType)
		steps[i].By = strings.TrimSpace(steps[i].By)
		steps[i].Selector = strings.TrimSpace(steps[i].Selector)
		steps[i].Value = strings.TrimSpace(steps[i].Value)
	}
	return steps, nil
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
