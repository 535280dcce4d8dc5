package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Defaults holds count defaults read from a config file.
// Values stay textual so they are validated like command-line counts.
type Defaults struct {
	Lines string `mapstructure:"lines"`
	Bytes string `mapstructure:"bytes"`
}

// LoadDefaults reads a YAML (or .json) defaults file such as:
//
//	lines: 20
//
// Unknown keys and files setting both lines and bytes are rejected.
func LoadDefaults(path string) (Defaults, error) {
	var d Defaults

	data, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return d, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return d, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &d,
	})
	if err != nil {
		return d, err
	}
	if err := decoder.Decode(raw); err != nil {
		return d, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}

	if d.Lines != "" && d.Bytes != "" {
		return d, fmt.Errorf("invalid config %s: lines and bytes are mutually exclusive", filepath.Base(path))
	}
	return d, nil
}
