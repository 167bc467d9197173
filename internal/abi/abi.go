//go:build wasip1

package abi

import (
	"sync"
	"unsafe"

	"github.com/douglasmun/factmod/domain/errors"
)

// MaxTotalAllocations caps the total memory the SDK will allocate in WASM
// linear memory. Factorial payloads are tiny; anything approaching this
// limit indicates a leak or a hostile host.
const MaxTotalAllocations = 4 * 1024 * 1024 // 4 MB

// memoryManager tracks all allocations made by the SDK in WASM linear
// memory. It keeps a reference to allocated slices to prevent the Go GC
// from collecting them, effectively pinning the memory until explicitly
// freed or during panic recovery.
var memoryManager = struct {
	sync.Mutex
	ptrs           map[uint32][]byte // ptr -> slice reference
	totalAllocated int
}{
	ptrs: make(map[uint32][]byte),
}

// allocate reserves memory in WASM linear memory and returns a pointer the
// host can write to or read from. The allocation is tracked to prevent GC.
// Panics with a MemoryError if the allocation would exceed the limit.
//
//go:wasmexport allocate
func allocate(size uint32) uint32 {
	if size == 0 {
		return 0
	}

	memoryManager.Lock()
	defer memoryManager.Unlock()

	if memoryManager.totalAllocated+int(size) > MaxTotalAllocations {
		panic(&errors.MemoryError{
			Requested: int(size),
			Current:   memoryManager.totalAllocated,
			Limit:     MaxTotalAllocations,
		})
	}

	buf := make([]byte, size)
	ptr := uint32(uintptr(unsafe.Pointer(&buf[0])))

	memoryManager.ptrs[ptr] = buf // pin: keep the slice referenced
	memoryManager.totalAllocated += int(size)

	return ptr
}

// deallocate frees memory by removing the reference from the memory manager,
// allowing the Go GC to collect it. Accounting uses the stored slice length,
// not the caller's size, so a mismatched argument cannot corrupt the counter.
//
//go:wasmexport deallocate
func deallocate(ptr uint32, size uint32) {
	memoryManager.Lock()
	defer memoryManager.Unlock()

	stored, exists := memoryManager.ptrs[ptr]
	if !exists {
		return // Ignore untracked pointers (idempotent)
	}

	delete(memoryManager.ptrs, ptr)
	memoryManager.totalAllocated -= len(stored)
	if memoryManager.totalAllocated < 0 {
		memoryManager.totalAllocated = 0
	}
}

// FreeAllTracked frees all memory currently tracked by the SDK.
// Called during panic recovery to prevent leaks.
func FreeAllTracked() {
	memoryManager.Lock()
	defer memoryManager.Unlock()

	for ptr := range memoryManager.ptrs {
		delete(memoryManager.ptrs, ptr)
	}
	memoryManager.totalAllocated = 0
}

// PtrFromBytes allocates WASM memory, copies the given data into it, and
// returns the packed pointer and length. Used when the guest returns data
// to the host.
func PtrFromBytes(data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}
	size := uint32(len(data))
	ptr := allocate(size)
	copyToMemory(ptr, data)
	return PackPtrLen(ptr, size)
}

// BytesFromPtr unpacks a uint64 into a pointer and length, then reads the
// corresponding data from WASM linear memory. Used when the guest receives
// data from the host.
func BytesFromPtr(packed uint64) []byte {
	ptr, length := UnpackPtrLen(packed)
	if ptr == 0 || length == 0 {
		return nil
	}
	return readFromMemory(ptr, length)
}

// copyToMemory copies data to WASM linear memory at the given pointer.
func copyToMemory(ptr uint32, data []byte) {
	//nolint:gosec // G103: valid unsafe.Pointer use for WASM linear memory access
	dest := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), len(data))
	copy(dest, data)
}

// readFromMemory reads a copy of data from WASM linear memory.
func readFromMemory(ptr uint32, length uint32) []byte {
	//nolint:gosec // G103: valid unsafe.Pointer use for WASM linear memory access
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), length)
	data := make([]byte, length)
	copy(data, src)
	return data
}
