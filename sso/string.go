// File: string.go
// Title: SSO String Representation and Construction
// Description: Implements the small-string-optimized byte string at the heart
//              of the bytestring library: the short/long representation
//              primitives, construction from the supported byte sources, and
//              the growth engine with its amortized 1.5x expansion policy.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of representation and growth

package sso

import (
	"strconv"

	"github.com/msto63/bytestring/core/alloc"
	"github.com/msto63/bytestring/core/contract"
)

const wordBytes = strconv.IntSize / 8

// sizeOfLongRep is the storage footprint of the long representation: one
// pointer-sized slice reference word plus two word-sized integers. The inline
// array is sized to mirror it so the short form costs no extra space.
const sizeOfLongRep = 3 * wordBytes

// InlineCapacity is the number of content bytes a short-form String holds
// without touching the heap (23 on 64-bit platforms). The inline array has
// one additional reserved byte; see the representation notes on String.
const InlineCapacity = sizeOfLongRep - 1

// String is an owned, resizable, byte-oriented string with a small-string
// optimization. Content up to InlineCapacity bytes lives in the String value
// itself; longer content moves to a heap buffer obtained from the injected
// allocator.
//
// Representation: the reserved trailing byte of the inline array encodes the
// remaining inline capacity (InlineCapacity - length). When the inline
// storage is full that byte is zero, so it doubles as the null terminator.
// Whether short or long, the backing buffer is always null-terminated at
// offset Length(); the buffer therefore always spans capacity+1 bytes.
//
// Which form is active is tracked by an explicit discriminant rather than a
// bit packed into the capacity word; no consumer depends on the raw memory
// layout, so the portable field wins over the bit twiddling.
//
// A String must be created by one of the constructors; its zero value is not
// a valid empty string. It is owned exclusively: no internal sharing, no
// copy-on-write, no synchronization.
type String struct {
	short    [InlineCapacity + 1]byte
	long     []byte // heap buffer of capacity+1 bytes; nil when short
	length   int    // meaningful bytes, long form only
	capacity int    // bytes the heap buffer holds minus the terminator
	isLong   bool
	alloc    alloc.Allocator
}

// New returns an empty short-form String using the default allocator. No
// allocation occurs.
func New() *String {
	return NewIn(alloc.Default())
}

// NewIn returns an empty short-form String that will use a for any heap
// buffer it ever needs. No allocation occurs.
func NewIn(a alloc.Allocator) *String {
	s := &String{alloc: a}
	s.short[InlineCapacity] = InlineCapacity // remaining == InlineCapacity, length 0
	return s
}

// WithCapacity returns an empty String with room for at least capacity bytes.
// Short form when capacity fits inline, otherwise a heap buffer of
// capacity+1 bytes is allocated up front.
func WithCapacity(capacity int) *String {
	return WithCapacityIn(capacity, alloc.Default())
}

// WithCapacityIn is WithCapacity with an explicit allocator.
func WithCapacityIn(capacity int, a alloc.Allocator) *String {
	s := NewIn(a)
	if capacity > InlineCapacity {
		s.setLong()
		s.setCapacity(capacity)
		s.long = a.Allocate(capacity + 1)
		s.setLength(0)
	}
	return s
}

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte) *String {
	return FromBytesIn(b, alloc.Default())
}

// FromBytesIn is FromBytes with an explicit allocator.
func FromBytesIn(b []byte, a alloc.Allocator) *String {
	s := WithCapacityIn(len(b), a)
	s.setLength(len(b))
	copy(s.buffer(), b)
	return s
}

// FromString is the boundary adapter for Go strings: the length is taken
// from the string header once and the bytes are copied in.
func FromString(str string) *String {
	return FromStringIn(str, alloc.Default())
}

// FromStringIn is FromString with an explicit allocator.
func FromStringIn(str string, a alloc.Allocator) *String {
	s := WithCapacityIn(len(str), a)
	s.setLength(len(str))
	copy(s.buffer(), str)
	return s
}

// FromView returns a String holding a copy of the viewed bytes.
func FromView(v View) *String {
	return FromBytes(v.Bytes())
}

// FromViewIn is FromView with an explicit allocator.
func FromViewIn(v View, a alloc.Allocator) *String {
	return FromBytesIn(v.Bytes(), a)
}

// Clone returns a deep copy of s sized to its current length, using the same
// allocator.
func (s *String) Clone() *String {
	return s.CloneIn(s.allocator())
}

// CloneIn returns a deep copy of s sized to its current length, using a.
func (s *String) CloneIn(a alloc.Allocator) *String {
	length := s.Length()
	clone := WithCapacityIn(length, a)
	clone.setLength(length)
	copy(clone.buffer(), s.buffer()[:length])
	return clone
}

// Free releases the heap buffer if s is in long form and resets s to an
// empty short-form string. Freeing a short-form String only clears it.
// Required when s was built on a recycling allocator; harmless otherwise.
func (s *String) Free() {
	if s.isLong {
		buf := s.long
		s.long = nil
		s.setShort()
		s.allocator().Deallocate(buf)
	}
	s.short = [InlineCapacity + 1]byte{}
	s.short[InlineCapacity] = InlineCapacity
	s.length = 0
	s.capacity = 0
}

// Allocator returns the allocator handle s was created with.
func (s *String) Allocator() alloc.Allocator {
	return s.allocator()
}

func (s *String) allocator() alloc.Allocator {
	if s.alloc == nil {
		return alloc.Default()
	}
	return s.alloc
}

// ---------------------------------------------------------------------------
// Representation primitives. Every mutating operation funnels through
// setLength after changing content; the primitives are the only code that
// touches the representation fields directly.
// ---------------------------------------------------------------------------

// IsShort reports whether the content currently lives in the inline storage.
func (s *String) IsShort() bool {
	return !s.isLong
}

func (s *String) setLong() {
	s.isLong = true
}

func (s *String) setShort() {
	s.isLong = false
}

func (s *String) getCapacity() int {
	if s.isLong {
		return s.capacity
	}
	return InlineCapacity
}

// setCapacity is valid only in long form; the inline capacity is a constant.
func (s *String) setCapacity(newCapacity int) {
	contract.Require(s.isLong, "sso.String.setCapacity",
		"cannot set capacity on a short-form string")
	s.capacity = newCapacity
}

// getShortLength decodes the length from the reserved trailing byte, which
// stores the remaining inline capacity.
func (s *String) getShortLength() int {
	contract.Require(!s.isLong, "sso.String.getShortLength",
		"cannot get short length of a long-form string")
	return InlineCapacity - int(s.short[InlineCapacity])
}

// setLength is the single choke point for length changes. It requires the
// representation to already have room for newLength bytes.
func (s *String) setLength(newLength int) {
	contract.Requiref(newLength <= s.getCapacity(), "sso.String.setLength",
		"cannot set length %d beyond capacity %d", newLength, s.getCapacity())
	if s.isLong {
		s.length = newLength
	} else {
		s.short[InlineCapacity] = byte(InlineCapacity - newLength)
	}
}

func (s *String) increaseLength(amount int) {
	s.setLength(s.Length() + amount)
}

func (s *String) decreaseLength(amount int) {
	length := s.Length()
	contract.Requiref(amount <= length, "sso.String.decreaseLength",
		"cannot decrease length %d by %d", length, amount)
	s.setLength(length - amount)
}

// buffer returns the full active backing storage including the terminator
// slot: InlineCapacity+1 bytes when short, capacity+1 bytes when long.
func (s *String) buffer() []byte {
	if s.isLong {
		return s.long
	}
	return s.short[:]
}

// ---------------------------------------------------------------------------
// Size queries
// ---------------------------------------------------------------------------

// Length returns the number of meaningful bytes, excluding the terminator.
func (s *String) Length() int {
	if s.isLong {
		return s.length
	}
	return s.getShortLength()
}

// Capacity returns the number of bytes the current storage can hold,
// excluding the terminator slot.
func (s *String) Capacity() int {
	return s.getCapacity()
}

// IsEmpty reports whether the string holds no bytes.
func (s *String) IsEmpty() bool {
	return s.Length() == 0
}

// IsFull reports whether the length has reached the current capacity.
func (s *String) IsFull() bool {
	return s.Length() == s.getCapacity()
}

// At returns a reference to the byte at index. Writes through the returned
// pointer mutate the string in place. index must satisfy index <= Length()
// and index < Capacity(); anything else is a contract violation.
func (s *String) At(index int) *byte {
	contract.Requiref(index >= 0 && index <= s.Length(), "sso.String.At",
		"index %d out of bounds for length %d", index, s.Length())
	contract.Requiref(index < s.getCapacity(), "sso.String.At",
		"index %d out of bounds for capacity %d", index, s.getCapacity())
	return &s.buffer()[index]
}

// ByteAt returns the byte at index with the same bounds contract as At.
func (s *String) ByteAt(index int) byte {
	return *s.At(index)
}

// Bytes returns the live content of s as a byte slice of Length() bytes.
// The slice aliases the backing buffer: it is invalidated by any mutation
// that grows, shrinks or frees the string. The byte following the returned
// slice in the backing buffer is always zero, so the underlying buffer can
// be handed to null-terminator-expecting consumers.
func (s *String) Bytes() []byte {
	return s.buffer()[:s.Length()]
}

// String copies the content out as a Go string. Implements fmt.Stringer.
func (s *String) String() string {
	return string(s.Bytes())
}

// ---------------------------------------------------------------------------
// Growth engine
// ---------------------------------------------------------------------------

// resizeInternal is the growth/shrink engine. It moves content between the
// inline storage and heap buffers sized newSize+1 (terminator included),
// zeroes any bytes being dropped, and never leaks a previous heap buffer.
// It adjusts length only as far as copying implies; callers fix up length
// through setLength afterwards.
func (s *String) resizeInternal(newSize int) {
	length := s.Length()
	// Zero every dropped byte, including the slot that becomes the
	// terminator after a truncation.
	if newSize < length {
		buf := s.buffer()
		for i := newSize; i < length; i++ {
			buf[i] = 0
		}
	}
	newSize++ // reserve the terminator slot
	if newSize > InlineCapacity {
		buf := s.allocator().Allocate(newSize)
		// newSize includes the terminator slot, so at most newSize-1
		// content bytes survive a truncating resize.
		numToCopy := min(length, newSize-1)
		copy(buf, s.buffer()[:numToCopy])
		if s.isLong {
			old := s.long
			s.long = nil
			s.allocator().Deallocate(old)
		}
		s.long = buf
		s.setLong()
		s.setCapacity(newSize - 1)
		s.setLength(numToCopy)
	} else if s.isLong {
		// Shrink back into the inline storage and release the heap buffer.
		old := s.long
		var inline [InlineCapacity + 1]byte
		copy(inline[:], old[:min(len(old), InlineCapacity+1)])
		s.long = nil
		s.setShort()
		s.short = inline
		s.setLength(InlineCapacity)
		s.allocator().Deallocate(old)
	}
}

// expandedCapacity computes the amortized growth target: numIncrements
// steps of the 1.5x expansion factor applied to oldCapacity.
func expandedCapacity(oldCapacity, numIncrements int) int {
	return numIncrements * ((oldCapacity * 3) / 2)
}

// Resize resizes the string to hold exactly newSize bytes of capacity,
// truncating the content when newSize is smaller than the current length.
func (s *String) Resize(newSize int) {
	length := s.Length()
	s.resizeInternal(newSize)
	s.setLength(min(newSize, length))
}

// Reserve ensures capacity for at least newCapacity bytes. It never shrinks.
// Growth is amortized: the actual new capacity is the smallest multiple of
// 1.5x the old capacity that covers the request, so repeated appends cost
// amortized constant time.
func (s *String) Reserve(newCapacity int) {
	capacity := s.getCapacity()
	if newCapacity > capacity {
		numIncrements := 1 + newCapacity/((capacity*3)/2)
		s.resizeInternal(expandedCapacity(capacity, numIncrements))
	}
}

// ShrinkToFit reallocates the storage to exactly the current length,
// releasing any excess. A long-form string whose content fits inline
// returns to short form.
func (s *String) ShrinkToFit() {
	old := *s
	*s = *old.Clone()
	old.Free()
}
