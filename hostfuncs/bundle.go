package hostfuncs

// HostFuncBundle is a pre-configured set of related operations.
// Bundles allow registering multiple handlers at once.
type HostFuncBundle interface {
	// Handlers returns a map of operation names to ByteHandler functions.
	Handlers() map[string]ByteHandler
}

// staticBundle implements HostFuncBundle with a fixed set of handlers.
type staticBundle struct {
	handlers map[string]ByteHandler
}

func (b *staticBundle) Handlers() map[string]ByteHandler {
	return b.handlers
}

// FactorialOperation is the stable name under which the factorial routine
// is registered and discoverable by callers.
const FactorialOperation = "factorial"

// MathBundle returns a bundle with the module's arithmetic operations:
// factorial.
func MathBundle() HostFuncBundle {
	return &staticBundle{
		handlers: map[string]ByteHandler{
			FactorialOperation: factorialHandler,
		},
	}
}

// compositeBundle combines multiple bundles into one.
type compositeBundle struct {
	bundles []HostFuncBundle
}

func (b *compositeBundle) Handlers() map[string]ByteHandler {
	result := make(map[string]ByteHandler)
	for _, bundle := range b.bundles {
		for name, handler := range bundle.Handlers() {
			result[name] = handler
		}
	}
	return result
}

// AllBundles returns a bundle containing all built-in operations.
// Includes: factorial.
func AllBundles() HostFuncBundle {
	return &compositeBundle{
		bundles: []HostFuncBundle{
			MathBundle(),
		},
	}
}

// WithBundle registers all handlers from a bundle.
func WithBundle(bundle HostFuncBundle) RegistryOption {
	return func(b *registryBuilder) {
		for name, handler := range bundle.Handlers() {
			if err := b.addHandler(name, handler); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}
