package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Provider supplies a catalog from some source.
type Provider interface {
	Load(ctx context.Context) (*Catalog, error)
}

// StaticProvider returns the compiled-in catalog.
type StaticProvider struct{}

// Load implements Provider.
func (StaticProvider) Load(_ context.Context) (*Catalog, error) {
	return Default(), nil
}

// FileProvider reads a catalog from a YAML file in the format written by
// Catalog.WriteYAML.
type FileProvider struct {
	Path string
}

// Load implements Provider.
func (p FileProvider) Load(_ context.Context) (*Catalog, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", p.Path, err)
	}
	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Path, err)
	}
	return c, nil
}

// ParseYAML decodes a catalog document.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(doc.Pizzas, doc.Beverages), nil
}
