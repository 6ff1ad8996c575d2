// File: alloc.go
// Title: Allocator Abstraction and Default Heap Allocator
// Description: Defines the Allocator interface consumed by the sso string
//              core and provides the default Go-heap implementation plus an
//              adapter for custom allocate/deallocate function pairs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with Heap and Func allocators

package alloc

// Allocator is the memory collaborator injected into owning buffer types.
// Buffers returned by Allocate are zero-filled and have len(buf) == n.
//
// Allocation-failure policy belongs to the implementation, not the caller:
// the Go heap never reports failure, and pooled implementations fall back to
// fresh buffers when the pool cannot serve a request.
type Allocator interface {
	// Allocate returns a zero-filled buffer of exactly n bytes.
	Allocate(n int) []byte
	// Reallocate returns a buffer of exactly n bytes holding the first
	// min(len(buf), n) bytes of buf. The old buffer must not be used
	// afterwards.
	Reallocate(buf []byte, n int) []byte
	// Deallocate releases a buffer previously obtained from this allocator.
	Deallocate(buf []byte)
}

// Heap allocates from the Go heap. It is stateless; all instances are
// interchangeable and safe to share between any number of owners.
type Heap struct{}

// Allocate returns a fresh zero-filled buffer of n bytes.
func (Heap) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, n)
}

// Reallocate copies buf into a fresh buffer of n bytes.
func (h Heap) Reallocate(buf []byte, n int) []byte {
	next := h.Allocate(n)
	copy(next, buf)
	return next
}

// Deallocate is a no-op; the garbage collector reclaims heap buffers.
func (Heap) Deallocate([]byte) {}

var defaultAllocator Allocator = Heap{}

// Default returns the process-wide default allocator.
func Default() Allocator {
	return defaultAllocator
}

// Func adapts a user-supplied allocate/deallocate function pair to the
// Allocator interface. Reallocate is expressed as allocate-copy-deallocate,
// so a pair of primitives is all a custom allocator needs to provide.
type Func struct {
	allocate   func(n int) []byte
	deallocate func(buf []byte)
}

// NewFunc builds an Allocator from the given function pair. allocate must
// return zero-filled buffers of exactly the requested size; deallocate may
// be nil in which case releasing is a no-op.
func NewFunc(allocate func(n int) []byte, deallocate func(buf []byte)) *Func {
	return &Func{allocate: allocate, deallocate: deallocate}
}

// Allocate calls the wrapped allocate function.
func (f *Func) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	return f.allocate(n)
}

// Reallocate allocates a new buffer, copies the old content and releases the
// old buffer.
func (f *Func) Reallocate(buf []byte, n int) []byte {
	next := f.Allocate(n)
	copy(next, buf)
	f.Deallocate(buf)
	return next
}

// Deallocate calls the wrapped deallocate function if one was supplied.
func (f *Func) Deallocate(buf []byte) {
	if f.deallocate != nil && len(buf) > 0 {
		f.deallocate(buf)
	}
}
