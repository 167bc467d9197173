// Package host runs compiled factmod modules. The Executor owns a wazero
// runtime, wires the host function registry into the guest's import
// namespace, and exposes typed wrappers over the module's named exports.
package host
