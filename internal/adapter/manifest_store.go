// Package adapter provides access to the manifest and selectors files.
package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/picket-dev/picket/internal/model"
)

// ManifestStore loads the node universe from a manifest file.
type ManifestStore interface {
	LoadUniverse(path m.Path) (*m.Universe, error)
}

type manifestStore struct{}

// NewManifestStore creates a ManifestStore backed by the file system.
func NewManifestStore() ManifestStore {
	return &manifestStore{}
}

type manifest struct {
	Nodes []m.Node `json:"nodes"`
}

func (s *manifestStore) LoadUniverse(path m.Path) (*m.Universe, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var doc manifest
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	universe, err := m.NewUniverse(doc.Nodes)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return universe, nil
}
