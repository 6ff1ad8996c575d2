// File: view.go
// Title: Non-Owning String Views
// Description: Implements View, a non-owning borrow of a byte range inside
//              an sso.String or any other byte buffer. A View carries no
//              lifecycle of its own; it stays valid exactly as long as the
//              borrowed storage does.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial view implementation

package sso

import (
	"bytes"

	"github.com/msto63/bytestring/core/contract"
)

// View is a non-owning borrow of a byte range: a pointer and a length,
// carried as a Go slice. It is trivially copyable and requires no
// destruction. The caller must ensure the viewed storage outlives every use
// of the view; in particular, mutating the viewed String may grow its buffer
// and leave the view dangling on the old storage. This contract is not
// runtime-checked.
type View struct {
	data []byte
}

// AsView borrows the entire current content of s.
func (s *String) AsView() View {
	return View{data: s.buffer()[:s.Length()]}
}

// ViewOf borrows length bytes of s starting at index. Requires
// index < Length() and index+length <= Length().
func (s *String) ViewOf(index, length int) View {
	selfLength := s.Length()
	contract.Requiref(index < selfLength, "sso.String.ViewOf",
		"index %d out of bounds for length %d", index, selfLength)
	contract.Requiref(index+length <= selfLength, "sso.String.ViewOf",
		"range [%d, %d) out of bounds for length %d", index, index+length, selfLength)
	return View{data: s.buffer()[index : index+length]}
}

// FirstView borrows the first min(n, Length()) bytes of s.
func (s *String) FirstView(n int) View {
	length := min(n, s.Length())
	return View{data: s.buffer()[:length]}
}

// LastView borrows the last min(n, Length()) bytes of s.
func (s *String) LastView(n int) View {
	selfLength := s.Length()
	begin := 0
	if n < selfLength {
		begin = selfLength - n
	}
	length := min(n, selfLength)
	return View{data: s.buffer()[begin : begin+length]}
}

// ViewOfBytes borrows length bytes of b starting at index.
func ViewOfBytes(b []byte, index, length int) View {
	contract.Requiref(index >= 0 && index+length <= len(b), "sso.ViewOfBytes",
		"range [%d, %d) out of bounds for buffer of %d bytes", index, index+length, len(b))
	return View{data: b[index : index+length]}
}

// ViewOfString views a copy of the bytes of a Go string. Go strings are
// immutable, so this conversion copies the content; use ViewOfBytes to
// borrow mutable storage without a copy.
func ViewOfString(str string) View {
	return View{data: []byte(str)}
}

// Len returns the number of viewed bytes.
func (v View) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the view covers no bytes.
func (v View) IsEmpty() bool {
	return len(v.data) == 0
}

// At returns the byte at index. index must be < Len().
func (v View) At(index int) byte {
	contract.Requiref(index >= 0 && index < len(v.data), "sso.View.At",
		"index %d out of bounds for length %d", index, len(v.data))
	return v.data[index]
}

// Bytes returns the viewed byte range. The slice is the borrow itself, not
// a copy; it never reads past Len() bytes.
func (v View) Bytes() []byte {
	return v.data
}

// String copies the viewed bytes out as a Go string. Implements
// fmt.Stringer.
func (v View) String() string {
	return string(v.data)
}

// Equal reports whether two views see the same byte content (not whether
// they borrow the same storage).
func (v View) Equal(other View) bool {
	return bytes.Equal(v.data, other.data)
}

// EqualBytes reports whether the viewed content equals b.
func (v View) EqualBytes(b []byte) bool {
	return bytes.Equal(v.data, b)
}

// EqualString reports whether the viewed content equals the content of s.
func (v View) EqualString(s *String) bool {
	return s.EqualView(v)
}
