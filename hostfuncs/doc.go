// Package hostfuncs provides pure Go implementations of the module's named
// operations. These implementations have NO WASM runtime dependencies; the
// same registry backs the in-process CLI and the wazero host module.
package hostfuncs
