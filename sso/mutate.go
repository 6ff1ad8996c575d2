// File: mutate.go
// Title: SSO String Mutation Operations
// Description: Implements the in-place mutation surface of sso.String: push
//              and pop at both ends, insert, erase, append, prepend, replace,
//              fill and clear. Every operation is expressed through the
//              representation primitives plus raw byte copies.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the mutation surface

package sso

import "github.com/msto63/bytestring/core/contract"

// PushBack appends a single byte, growing by one 1.5x increment when the
// storage is exhausted.
func (s *String) PushBack(b byte) {
	length := s.Length()
	capacity := s.getCapacity()
	if length+1 >= capacity {
		s.resizeInternal(expandedCapacity(capacity, 1))
	}
	s.buffer()[length] = b
	s.increaseLength(1)
}

// PushFront prepends a single byte, shifting the existing content right by
// one position.
func (s *String) PushFront(b byte) {
	length := s.Length()
	capacity := s.getCapacity()
	if length+1 >= capacity {
		s.resizeInternal(expandedCapacity(capacity, 1))
	}
	buf := s.buffer()
	copy(buf[1:length+1], buf[:length])
	buf[0] = b
	s.increaseLength(1)
}

// PopBack removes and returns the last byte. The second return is false when
// the string is empty.
func (s *String) PopBack() (byte, bool) {
	length := s.Length()
	if length == 0 {
		return 0, false
	}
	buf := s.buffer()
	b := buf[length-1]
	buf[length-1] = 0
	s.decreaseLength(1)
	return b, true
}

// PopFront removes and returns the first byte. The second return is false
// when the string is empty.
func (s *String) PopFront() (byte, bool) {
	length := s.Length()
	if length == 0 {
		return 0, false
	}
	buf := s.buffer()
	b := buf[0]
	copy(buf[:length-1], buf[1:length])
	buf[length-1] = 0
	s.decreaseLength(1)
	return b, true
}

// Insert inserts the content of other at index, so that the first inserted
// byte ends up at position index. index == Length() appends.
//
// The operation is deliberately allocation-heavy: self is split, the pieces
// are concatenated around the insertion and the result replaces self. The
// old backing storage is always released.
func (s *String) Insert(other *String, index int) {
	length := s.Length()
	contract.Requiref(index <= length, "sso.String.Insert",
		"index %d out of bounds for length %d", index, length)

	if index == 0 {
		combined := ConcatIn(other, s, s.allocator())
		old := *s
		*s = *combined
		old.Free()
		return
	}

	first := s.First(index)
	left := ConcatIn(first, other, s.allocator())
	old := *s
	if index < length {
		second := s.Last(length - index)
		*s = *ConcatIn(left, second, s.allocator())
		second.Free()
		left.Free()
	} else {
		*s = *left
	}
	first.Free()
	old.Free()
}

// InsertBytes inserts a copy of b at index. index == Length() appends.
func (s *String) InsertBytes(b []byte, index int) {
	length := s.Length()
	contract.Requiref(index <= length, "sso.String.InsertBytes",
		"index %d out of bounds for length %d", index, length)

	if index == 0 {
		tmp := FromBytesIn(b, s.allocator())
		combined := ConcatIn(tmp, s, s.allocator())
		tmp.Free()
		old := *s
		*s = *combined
		old.Free()
		return
	}

	first := s.First(index)
	left := ConcatBytesIn(first, b, s.allocator())
	old := *s
	if index < length {
		second := s.Last(length - index)
		*s = *ConcatIn(left, second, s.allocator())
		second.Free()
		left.Free()
	} else {
		*s = *left
	}
	first.Free()
	old.Free()
}

// InsertView inserts a copy of the viewed bytes at index.
func (s *String) InsertView(v View, index int) {
	s.InsertBytes(v.Bytes(), index)
}

// Erase removes the byte at index, shifting the tail left by one.
func (s *String) Erase(index int) {
	length := s.Length()
	contract.Requiref(index < length, "sso.String.Erase",
		"index %d out of bounds for length %d", index, length)

	buf := s.buffer()
	if index != length-1 {
		copy(buf[index:length-1], buf[index+1:length])
	}
	buf[length-1] = 0
	s.decreaseLength(1)
}

// EraseN removes count bytes starting at index, shifting any tail left over
// the removed range. Erasing through the end only zeroes the vacated bytes.
func (s *String) EraseN(index, count int) {
	length := s.Length()
	contract.Requiref(index < length, "sso.String.EraseN",
		"index %d out of bounds for length %d", index, length)
	contract.Requiref(index+count <= length, "sso.String.EraseN",
		"range [%d, %d) out of bounds for length %d", index, index+count, length)

	end := index + count
	buf := s.buffer()
	if end != length {
		copy(buf[index:], buf[end:length])
	}
	for i := length - count; i < length; i++ {
		buf[i] = 0
	}
	s.decreaseLength(count)
}

// Append appends the content of other; shorthand for Insert at Length().
func (s *String) Append(other *String) {
	s.Insert(other, s.Length())
}

// AppendBytes appends a copy of b.
func (s *String) AppendBytes(b []byte) {
	s.InsertBytes(b, s.Length())
}

// AppendView appends a copy of the viewed bytes.
func (s *String) AppendView(v View) {
	s.AppendBytes(v.Bytes())
}

// Prepend prepends the content of other; shorthand for Insert at 0.
func (s *String) Prepend(other *String) {
	s.Insert(other, 0)
}

// PrependBytes prepends a copy of b.
func (s *String) PrependBytes(b []byte) {
	s.InsertBytes(b, 0)
}

// PrependView prepends a copy of the viewed bytes.
func (s *String) PrependView(v View) {
	s.PrependBytes(v.Bytes())
}

// Replace overwrites the content starting at index with the content of
// other. A replacement extending past the current length grows the string
// and the overflow tail becomes part of the content.
func (s *String) Replace(other *String, index int) {
	s.ReplaceBytes(other.Bytes(), index)
}

// ReplaceBytes overwrites the content starting at index with b, growing the
// string when the replacement extends past the current length.
func (s *String) ReplaceBytes(b []byte, index int) {
	length := s.Length()
	contract.Requiref(index <= length, "sso.String.ReplaceBytes",
		"index %d out of bounds for length %d", index, length)

	stop := min(len(b)+index, length)
	copy(s.buffer()[index:stop], b[:stop-index])

	if stop == length {
		begin := length - index
		numRemaining := len(b) - begin
		if numRemaining > 0 {
			s.Reserve(length + numRemaining)
			copy(s.buffer()[length:length+numRemaining], b[begin:])
			s.setLength(length + numRemaining)
		}
	}
}

// ReplaceView overwrites starting at index with the viewed bytes.
func (s *String) ReplaceView(v View, index int) {
	s.ReplaceBytes(v.Bytes(), index)
}

// Fill writes b into every byte up to the capacity, not the current length,
// and sets the length to the capacity. Clear relies on this zeroing the
// whole storage.
func (s *String) Fill(b byte) {
	s.setLength(s.getCapacity())
	buf := s.buffer()
	for i := 0; i < s.Length(); i++ {
		buf[i] = b
	}
}

// Clear zeroes the entire storage and resets the length to 0. The capacity
// and representation form are unchanged.
func (s *String) Clear() {
	s.Fill(0)
	s.setLength(0)
}
