package host

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/douglasmun/factmod/domain/entities"
)

// loaderConfig holds configuration for the Loader.
type loaderConfig struct {
	strictFields bool // Fail on unknown manifest keys
}

func defaultLoaderConfig() loaderConfig {
	return loaderConfig{
		strictFields: true, // Secure default: reject typo'd keys
	}
}

// Loader parses and validates module manifests.
type Loader struct {
	validate *validator.Validate
	config   loaderConfig
}

// LoaderOption configures the Loader.
type LoaderOption func(*loaderConfig)

// WithStrictFields enables/disables strict manifest parsing.
// When enabled (default), parsing fails on keys the manifest schema does
// not define. Disable only when reading manifests from newer SDK versions.
func WithStrictFields(enabled bool) LoaderOption {
	return func(c *loaderConfig) {
		c.strictFields = enabled
	}
}

// NewLoader creates a new Loader with defaults.
func NewLoader(opts ...LoaderOption) *Loader {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loader{
		validate: validator.New(),
		config:   cfg,
	}
}

// LoadManifest parses and validates a YAML module manifest.
func (l *Loader) LoadManifest(raw []byte) (*entities.ModuleManifest, error) {
	var manifest entities.ModuleManifest

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(l.config.strictFields)
	if err := dec.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := l.validate.Struct(&manifest); err != nil {
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}

	return &manifest, nil
}
