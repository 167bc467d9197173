package entities

// ModuleManifest is the on-disk description of a module, typically shipped
// as a YAML file next to the compiled .wasm artifact. It mirrors the
// metadata reported by the module's describe export.
type ModuleManifest struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Version     string   `json:"version" yaml:"version" validate:"required"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Operations  []string `json:"operations,omitempty" yaml:"operations,omitempty" validate:"dive,required"`
}
