// Package entities provides core domain entities for the SDK.
// These are general-purpose types shared by the guest plugin lifecycle,
// the host executor, and the in-process handler registry.
package entities
