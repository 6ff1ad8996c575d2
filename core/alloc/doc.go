// File: doc.go
// Title: Package Documentation for alloc
// Description: Package alloc defines the memory allocator abstraction used
//              by the bytestring library and ships heap-backed, pooled,
//              counting and custom-function implementations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package alloc provides the allocator collaborator for owning buffer types.
//
// Overview
//
// Types that own growable byte storage, most prominently sso.String, do not
// call make directly. All of their heap traffic flows through an injected
// Allocator, which makes ownership auditable (a Counting decorator can prove
// the absence of leaks in tests) and lets hot workloads recycle buffers
// (Pooled) instead of re-allocating on every growth step.
//
// Implementations:
//
//   - Heap: the default. Allocates from the Go heap, releasing is a no-op.
//   - Pooled: recycles buffers through valyala/bytebufferpool; deallocated
//     buffers serve later allocations of a similar size class.
//   - Counting: decorator that counts buffers and bytes for leak checks.
//   - Func: adapter turning an allocate/deallocate function pair into an
//     Allocator.
//
// Contract
//
// Allocate returns zero-filled buffers of exactly the requested length.
// Reallocate preserves min(len(old), n) bytes and invalidates the old
// buffer. Deallocate accepts only buffers obtained from the same allocator;
// the heap implementation tolerates anything because releasing is a no-op.
// Allocators are handle-like: sharing one allocator value between many
// owners is expected, sharing the buffers it returns is not.
//
// Usage
//
//	pool := alloc.NewPooled()
//	s := sso.NewIn(pool)
//	// ... mutate s ...
//	s.Free()            // buffer returns to the pool
//
// Thread Safety
//
// Heap and Func are stateless with respect to callers. Pooled and Counting
// synchronize their internal bookkeeping, so the allocator handles are safe
// for concurrent use; the buffers they return are owned exclusively by the
// requester.
package alloc
