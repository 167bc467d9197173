package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `
name: factmod
version: 1.0.0
description: Computes the factorial of an integer.
operations:
  - factorial
`

func TestLoadManifest_Valid(t *testing.T) {
	loader := NewLoader()

	manifest, err := loader.LoadManifest([]byte(validManifest))
	require.NoError(t, err)

	assert.Equal(t, "factmod", manifest.Name)
	assert.Equal(t, "1.0.0", manifest.Version)
	assert.Equal(t, []string{"factorial"}, manifest.Operations)
}

func TestLoadManifest_MissingRequiredFields(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadManifest([]byte("description: no name or version\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadManifest_UnknownField(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadManifest([]byte(validManifest + "entrypoint: plugin.wasm\n"))
	require.Error(t, err)
}

func TestLoadManifest_UnknownFieldAllowed(t *testing.T) {
	loader := NewLoader(WithStrictFields(false))

	manifest, err := loader.LoadManifest([]byte(validManifest + "entrypoint: plugin.wasm\n"))
	require.NoError(t, err)
	assert.Equal(t, "factmod", manifest.Name)
}

func TestLoadManifest_MalformedYAML(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadManifest([]byte("name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}
