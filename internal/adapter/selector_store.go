package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/picket-dev/picket/internal/model"
)

// SelectorStore loads named selector definitions from a selectors file.
type SelectorStore interface {
	LoadSelectors(path m.Path) ([]m.SelectorDefinition, error)
}

type selectorStore struct{}

// NewSelectorStore creates a SelectorStore backed by the file system.
func NewSelectorStore() SelectorStore {
	return &selectorStore{}
}

func (s *selectorStore) LoadSelectors(path m.Path) ([]m.SelectorDefinition, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		// Callers distinguish a missing file via errors.Is(err, fs.ErrNotExist).
		return nil, fmt.Errorf("read selectors: %w", err)
	}

	var file m.SelectorsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse selectors %s: %w", path, err)
	}

	return file.Selectors, nil
}
