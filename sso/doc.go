// File: doc.go
// Title: Package Documentation for sso
// Description: Package sso provides a small-string-optimized, allocator-aware
//              byte string with non-owning views and random-access cursors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package sso provides a small-string-optimized byte string.
//
// Overview
//
// sso.String is an owned, resizable, byte-oriented (UTF-8-agnostic) string.
// Content up to InlineCapacity bytes lives inside the String value itself —
// no heap allocation at all — and transparently moves to a heap buffer
// obtained from an injected alloc.Allocator when it grows beyond that.
// The representation guarantees:
//
//   - length <= capacity at all times
//   - the backing buffer is always null-terminated at offset Length(),
//     whether inline or on the heap, so the storage can be handed to
//     terminator-expecting consumers
//   - exactly one of the two forms (short/inline, long/heap) is active;
//     growth flips short to long, but only ShrinkToFit or Resize flip back
//
// Views and cursors complete the surface: sso.View is a non-owning borrow
// (pointer plus length) into a String or any byte buffer, and sso.Cursor /
// sso.ViewCursor provide the random-access iteration contract with
// begin/end/rbegin/rend sentinels.
//
// Construction
//
//	s := sso.New()                    // empty, inline, no allocation
//	s = sso.FromString("hello")       // copies bytes in, short if they fit
//	s = sso.FromBytesIn(b, pool)      // explicit allocator
//	t := s.Clone()                    // deep copy, sized to the content
//
// Mutation
//
//	s.PushBack('!')                   // amortized O(1): 1.5x growth policy
//	s.InsertBytes([]byte(", "), 5)    // split + concatenate, never leaks
//	b, ok := s.PopBack()
//	s.EraseN(2, 3)                    // shift tail left, zero vacated bytes
//
// Two behaviors differ from what one might expect: Fill writes up to the
// capacity (not the length) and sets the length to the capacity, and cursor
// Next/Previous clamp the returned reference at the edges of the iteration
// instead of walking out of bounds.
//
// Error Handling
//
// Out-of-bounds indices and representation misuse are programmer errors and
// fail fast through core/contract. Conditions a correct program can hit —
// popping from an empty string, searching for an absent substring — are
// ordinary (value, ok) results. Allocation failure policy belongs to the
// injected allocator.
//
// Thread Safety
//
// None. A String has exactly one owner, and mutation is always performed in
// place by that owner. Views must not outlive the validity of the buffer
// they borrow; that contract is the caller's to uphold. Sharing an
// allocator handle between many strings is fine — sharing buffers is not,
// and Clone always deep-copies.
package sso
