// File: counting.go
// Title: Counting Allocator Decorator
// Description: Implements an Allocator decorator that tracks allocation and
//              deallocation traffic of a wrapped allocator. Primarily used by
//              tests to verify that owning types neither leak nor double-free
//              their heap buffers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial counting allocator implementation

package alloc

import "sync/atomic"

// Counting wraps another Allocator and records how many buffers and bytes
// have flowed through it. The counters are atomic, so a Counting value can
// be shared like any other allocator handle.
type Counting struct {
	inner Allocator

	allocations   atomic.Int64
	deallocations atomic.Int64
	bytesObtained atomic.Int64
}

// NewCounting wraps inner with traffic counters. A nil inner wraps the
// default heap allocator.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Default()
	}
	return &Counting{inner: inner}
}

// Allocate forwards to the wrapped allocator and counts the allocation.
func (c *Counting) Allocate(n int) []byte {
	buf := c.inner.Allocate(n)
	if buf != nil {
		c.allocations.Add(1)
		c.bytesObtained.Add(int64(len(buf)))
	}
	return buf
}

// Reallocate forwards to the wrapped allocator, counting one allocation and
// one deallocation when the old buffer was non-empty.
func (c *Counting) Reallocate(buf []byte, n int) []byte {
	if len(buf) > 0 {
		c.deallocations.Add(1)
	}
	next := c.inner.Reallocate(buf, n)
	if next != nil {
		c.allocations.Add(1)
		c.bytesObtained.Add(int64(len(next)))
	}
	return next
}

// Deallocate forwards to the wrapped allocator and counts the release.
func (c *Counting) Deallocate(buf []byte) {
	if len(buf) > 0 {
		c.deallocations.Add(1)
	}
	c.inner.Deallocate(buf)
}

// Allocations reports the number of buffers handed out so far.
func (c *Counting) Allocations() int64 { return c.allocations.Load() }

// Deallocations reports the number of buffers released so far.
func (c *Counting) Deallocations() int64 { return c.deallocations.Load() }

// Live reports buffers currently outstanding (allocations minus
// deallocations).
func (c *Counting) Live() int64 { return c.Allocations() - c.Deallocations() }

// BytesObtained reports the total bytes of all buffers handed out.
func (c *Counting) BytesObtained() int64 { return c.bytesObtained.Load() }
