// Package content reads projects sections from JSON or YAML files.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"showcase.dev/internal/models"
)

// Format is a content file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for files whose extension is not recognised.
var ErrUnknownFormat = errors.New("unknown content format")

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadFile reads, decodes and validates a section file.
func LoadFile(path string) (*models.Section, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	section, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return section, nil
}

// Decode parses a section and normalizes absent collections to empty ones.
func Decode(data []byte, format Format) (*models.Section, error) {
	var section models.Section
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &section); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &section); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	section.Normalize()
	if err := Validate(&section); err != nil {
		return nil, err
	}
	return &section, nil
}

// Validate checks that every project has an id and a title and that ids are
// unique. Optional links are never validated.
func Validate(s *models.Section) error {
	seen := make(map[string]int, len(s.Projects))
	var errs []error
	for i, p := range s.Projects {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("project %d: id is required", i))
			continue
		}
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("project %q: title is required", id))
		}
		if prev, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("project %q: duplicate id (also at %d)", id, prev))
			continue
		}
		seen[id] = i
	}
	return errors.Join(errs...)
}

// Encode writes a section in the given format.
func Encode(s *models.Section, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	case FormatYAML:
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
