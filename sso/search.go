// File: search.go
// Title: SSO String Search, Comparison and Slicing
// Description: Implements the read-only operation surface of sso.String:
//              prefix/suffix extraction, substring copies, equality,
//              containment and find operations, and concatenation. Substring
//              search is the intentional naive scan, with Contains walking
//              from both ends inward for early exits.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of search and slicing

package sso

import (
	"bytes"

	"github.com/msto63/bytestring/core/alloc"
	"github.com/msto63/bytestring/core/contract"
)

// First returns a new String holding the first n bytes (or all of them when
// n exceeds the length). The result has capacity n; when n exceeds the
// length the surplus stays null-padded.
func (s *String) First(n int) *String {
	numToCopy := min(n, s.Length())
	out := WithCapacityIn(n, s.allocator())
	copy(out.buffer(), s.buffer()[:numToCopy])
	out.setLength(numToCopy)
	return out
}

// Last returns a new String holding the last n bytes (or all of them when n
// exceeds the length), with the same capacity and padding behavior as First.
func (s *String) Last(n int) *String {
	length := s.Length()
	numToCopy := min(n, length)
	start := 0
	if n < length {
		start = length - n
	}
	out := WithCapacityIn(n, s.allocator())
	copy(out.buffer(), s.buffer()[start:start+numToCopy])
	out.setLength(numToCopy)
	return out
}

// Substring returns a copy of length bytes starting at index. Requires
// index < Length() and index+length <= Length().
func (s *String) Substring(index, length int) *String {
	return s.SubstringIn(index, length, s.allocator())
}

// SubstringIn is Substring with an explicit allocator for the copy.
func (s *String) SubstringIn(index, length int, a alloc.Allocator) *String {
	selfLength := s.Length()
	contract.Requiref(index < selfLength, "sso.String.Substring",
		"index %d out of bounds for length %d", index, selfLength)
	contract.Requiref(index+length <= selfLength, "sso.String.Substring",
		"range [%d, %d) out of bounds for length %d", index, index+length, selfLength)

	out := WithCapacityIn(length, a)
	copy(out.buffer(), s.buffer()[index:index+length])
	out.setLength(length)
	return out
}

// Equal reports whether s and other hold the same bytes.
func (s *String) Equal(other *String) bool {
	return s.EqualBytes(other.Bytes())
}

// EqualBytes reports whether the content of s equals b.
func (s *String) EqualBytes(b []byte) bool {
	return bytes.Equal(s.Bytes(), b)
}

// EqualView reports whether the content of s equals the viewed bytes.
func (s *String) EqualView(v View) bool {
	return s.EqualBytes(v.Bytes())
}

// matchesAt reports whether the window of len(sub) bytes starting at index
// equals sub. The window must lie within the content.
func (s *String) matchesAt(sub []byte, index int) bool {
	contract.Requiref(index+len(sub) <= s.Length(), "sso.String.matchesAt",
		"window [%d, %d) out of bounds for length %d", index, index+len(sub), s.Length())
	return bytes.Equal(s.buffer()[index:index+len(sub)], sub)
}

// matchesEndingAt reports whether the window of len(sub) bytes ending at
// index (inclusive) equals sub.
func (s *String) matchesEndingAt(sub []byte, index int) bool {
	contract.Requiref(index+1 >= len(sub), "sso.String.matchesEndingAt",
		"window ending at %d cannot fit %d bytes", index, len(sub))
	start := index - (len(sub) - 1)
	return bytes.Equal(s.buffer()[start:index+1], sub)
}

// Contains reports whether the content of other occurs in s.
func (s *String) Contains(other *String) bool {
	return s.ContainsBytes(other.Bytes())
}

// ContainsBytes reports whether sub occurs in s. The scan walks candidate
// offsets from both ends inward, so hits near either edge exit early.
func (s *String) ContainsBytes(sub []byte) bool {
	length := s.Length()
	sublength := len(sub)
	if length < sublength {
		return false
	}
	if sublength == 0 {
		return true
	}
	for left, right := 0, length-1; right+1 >= sublength && left+sublength <= length; left, right = left+1, right-1 {
		if s.matchesAt(sub, left) {
			return true
		}
		if s.matchesEndingAt(sub, right) {
			return true
		}
	}
	return false
}

// ContainsView reports whether the viewed bytes occur in s.
func (s *String) ContainsView(v View) bool {
	return s.ContainsBytes(v.Bytes())
}

// StartsWith reports whether s begins with the content of other.
func (s *String) StartsWith(other *String) bool {
	return s.StartsWithBytes(other.Bytes())
}

// StartsWithBytes reports whether s begins with sub.
func (s *String) StartsWithBytes(sub []byte) bool {
	if len(sub) > s.Length() {
		return false
	}
	return s.matchesAt(sub, 0)
}

// StartsWithView reports whether s begins with the viewed bytes.
func (s *String) StartsWithView(v View) bool {
	return s.StartsWithBytes(v.Bytes())
}

// EndsWith reports whether s ends with the content of other.
func (s *String) EndsWith(other *String) bool {
	return s.EndsWithBytes(other.Bytes())
}

// EndsWithBytes reports whether s ends with sub.
func (s *String) EndsWithBytes(sub []byte) bool {
	length := s.Length()
	if len(sub) > length {
		return false
	}
	if len(sub) == 0 {
		return true
	}
	return s.matchesEndingAt(sub, length-1)
}

// EndsWithView reports whether s ends with the viewed bytes.
func (s *String) EndsWithView(v View) bool {
	return s.EndsWithBytes(v.Bytes())
}

// FindFirst returns the offset of the first occurrence of other. The second
// return is false when other does not occur or is empty.
func (s *String) FindFirst(other *String) (int, bool) {
	return s.FindFirstBytes(other.Bytes())
}

// FindFirstBytes returns the offset of the first occurrence of sub via a
// linear scan.
func (s *String) FindFirstBytes(sub []byte) (int, bool) {
	length := s.Length()
	sublength := len(sub)
	if sublength == 0 || sublength > length {
		return 0, false
	}
	for i := 0; i+sublength <= length; i++ {
		if s.matchesAt(sub, i) {
			return i, true
		}
	}
	return 0, false
}

// FindFirstView returns the offset of the first occurrence of the viewed
// bytes.
func (s *String) FindFirstView(v View) (int, bool) {
	return s.FindFirstBytes(v.Bytes())
}

// FindLast returns the offset of the last occurrence of other. The second
// return is false when other does not occur or is empty.
func (s *String) FindLast(other *String) (int, bool) {
	return s.FindLastBytes(other.Bytes())
}

// FindLastBytes returns the offset of the last occurrence of sub via a
// linear scan from the tail.
func (s *String) FindLastBytes(sub []byte) (int, bool) {
	length := s.Length()
	sublength := len(sub)
	if sublength == 0 || sublength > length {
		return 0, false
	}
	for i := length - sublength; i >= 0; i-- {
		if s.matchesAt(sub, i) {
			return i, true
		}
	}
	return 0, false
}

// FindLastView returns the offset of the last occurrence of the viewed
// bytes.
func (s *String) FindLastView(v View) (int, bool) {
	return s.FindLastBytes(v.Bytes())
}

// Concat returns a new String holding left followed by right, using left's
// allocator.
func Concat(left, right *String) *String {
	return ConcatIn(left, right, left.allocator())
}

// ConcatIn returns a new String holding left followed by right, allocated
// by a.
func ConcatIn(left, right *String, a alloc.Allocator) *String {
	return concatRaw(left.Bytes(), right.Bytes(), a)
}

// ConcatBytes returns a new String holding left followed by right, using
// left's allocator.
func ConcatBytes(left *String, right []byte) *String {
	return ConcatBytesIn(left, right, left.allocator())
}

// ConcatBytesIn returns a new String holding left followed by right,
// allocated by a.
func ConcatBytesIn(left *String, right []byte, a alloc.Allocator) *String {
	return concatRaw(left.Bytes(), right, a)
}

// ConcatViews returns a new String holding the bytes of left followed by
// the bytes of right, using the default allocator.
func ConcatViews(left, right View) *String {
	return ConcatViewsIn(left, right, alloc.Default())
}

// ConcatViewsIn is ConcatViews with an explicit allocator.
func ConcatViewsIn(left, right View, a alloc.Allocator) *String {
	return concatRaw(left.Bytes(), right.Bytes(), a)
}

func concatRaw(left, right []byte, a alloc.Allocator) *String {
	out := WithCapacityIn(len(left)+len(right), a)
	out.setLength(len(left) + len(right))
	buf := out.buffer()
	copy(buf, left)
	copy(buf[len(left):], right)
	return out
}
