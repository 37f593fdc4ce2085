// Package seed provides the sample events loaded into the store at startup.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"event-finder/data/models"

	"gopkg.in/yaml.v3"
)

//go:embed events.yaml
var defaultEvents []byte

type seedFile struct {
	Events []models.NewEvent `yaml:"events"`
}

// Default returns the built-in sample events.
func Default() ([]models.NewEvent, error) {
	return Load(bytes.NewReader(defaultEvents))
}

// LoadFile reads seed events from a YAML file on disk.
func LoadFile(path string) ([]models.NewEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a YAML document of the form `events: [...]`.
func Load(r io.Reader) ([]models.NewEvent, error) {
	var sf seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode seed events: %w", err)
	}
	return sf.Events, nil
}
