// File: cursor.go
// Title: Random-Access Cursors over Strings and Views
// Description: Implements the iteration contract: a cursor holding an index
//              and a back-reference to its string or view. Forward, reverse,
//              bidirectional and random-access walks all derive from this one
//              cursor shape; begin/end/rbegin/rend are just index sentinels.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial cursor implementation

package sso

import "github.com/msto63/bytestring/core/contract"

// Cursor is a random-access cursor over the bytes of a String. The index
// may sit one position outside the content on either side: -1 is the
// reverse-end sentinel, Length() the forward-end sentinel. Accessing the
// byte at a sentinel position is a contract violation.
//
// Next and Previous return a reference whose index is clamped to the valid
// range — advancing past the end yields the last valid byte rather than
// walking out of bounds, and stepping before the beginning yields the
// first. The cursor index itself is not clamped, so sentinel comparisons
// against End and REnd still terminate loops.
type Cursor struct {
	index int
	str   *String
}

// Begin returns a cursor at index 0.
func (s *String) Begin() Cursor {
	return Cursor{index: 0, str: s}
}

// End returns the one-past-the-end sentinel cursor at index Length().
func (s *String) End() Cursor {
	return Cursor{index: s.Length(), str: s}
}

// RBegin returns a cursor at the last valid index, Length()-1.
func (s *String) RBegin() Cursor {
	return Cursor{index: s.Length() - 1, str: s}
}

// REnd returns the before-the-beginning sentinel cursor at index -1.
func (s *String) REnd() Cursor {
	return Cursor{index: -1, str: s}
}

// Index returns the cursor's current index.
func (c *Cursor) Index() int {
	return c.index
}

// Next advances the cursor and returns a reference to the byte at the new
// position, clamped to the last valid index when the advance crosses the
// end. The cursor must currently sit on a valid byte.
func (c *Cursor) Next() *byte {
	length := c.str.Length()
	contract.Require(c.index > -1, "sso.Cursor.Next",
		"cursor accessed before the beginning of the iteration")
	contract.Require(c.index < length, "sso.Cursor.Next",
		"cursor accessed past the end of the iteration")
	c.index++
	if c.index >= length {
		return c.str.At(length - 1)
	}
	return c.str.At(c.index)
}

// Previous steps the cursor back and returns a reference to the byte at the
// new position, clamped to index 0 when the step crosses the beginning. The
// cursor must currently sit on a valid byte.
func (c *Cursor) Previous() *byte {
	length := c.str.Length()
	contract.Require(c.index > -1, "sso.Cursor.Previous",
		"cursor accessed before the beginning of the iteration")
	contract.Require(c.index < length, "sso.Cursor.Previous",
		"cursor accessed past the end of the iteration")
	c.index--
	if c.index < 0 {
		return c.str.At(0)
	}
	return c.str.At(c.index)
}

// At returns a reference to the byte at the given iteration index without
// moving the cursor.
func (c *Cursor) At(index int) *byte {
	contract.Requiref(index >= 0 && index < c.str.Length(), "sso.Cursor.At",
		"index %d out of bounds for length %d", index, c.str.Length())
	return c.str.At(index)
}

// RAt returns a reference to the byte at the given reverse iteration index
// (0 addresses the last byte) without moving the cursor.
func (c *Cursor) RAt(index int) *byte {
	length := c.str.Length()
	contract.Requiref(index >= 0 && index < length, "sso.Cursor.RAt",
		"index %d out of bounds for length %d", index, length)
	return c.str.At((length - 1) - index)
}

// Current returns a reference to the byte the cursor sits on. The cursor
// must not sit on a sentinel position.
func (c *Cursor) Current() *byte {
	contract.Require(c.index > -1, "sso.Cursor.Current",
		"cursor accessed before the beginning of the iteration")
	contract.Require(c.index < c.str.Length(), "sso.Cursor.Current",
		"cursor accessed past the end of the iteration")
	return c.str.At(c.index)
}

// Equals reports whether two cursors address the same String and sit at the
// same index.
func (c *Cursor) Equals(other Cursor) bool {
	return c.str == other.str && c.index == other.index
}

// ViewCursor is a random-access cursor over the bytes of a View. Unlike
// Cursor it returns the byte at the current position and then moves, and
// its bounds are enforced by View.At at access time.
type ViewCursor struct {
	index int
	view  *View
}

// Begin returns a cursor at index 0.
func (v *View) Begin() ViewCursor {
	return ViewCursor{index: 0, view: v}
}

// End returns the one-past-the-end sentinel cursor at index Len().
func (v *View) End() ViewCursor {
	return ViewCursor{index: v.Len(), view: v}
}

// RBegin returns a cursor at the last valid index, Len()-1.
func (v *View) RBegin() ViewCursor {
	return ViewCursor{index: v.Len() - 1, view: v}
}

// REnd returns the before-the-beginning sentinel cursor at index -1.
func (v *View) REnd() ViewCursor {
	return ViewCursor{index: -1, view: v}
}

// Index returns the cursor's current index.
func (c *ViewCursor) Index() int {
	return c.index
}

// Next returns the byte at the current position and advances the cursor.
func (c *ViewCursor) Next() byte {
	b := c.view.At(c.index)
	c.index++
	return b
}

// Previous returns the byte at the current position and steps the cursor
// back.
func (c *ViewCursor) Previous() byte {
	b := c.view.At(c.index)
	c.index--
	return b
}

// At returns the byte at the given iteration index without moving the
// cursor.
func (c *ViewCursor) At(index int) byte {
	return c.view.At(index)
}

// RAt returns the byte at the given reverse iteration index (0 addresses
// the last byte) without moving the cursor.
func (c *ViewCursor) RAt(index int) byte {
	return c.view.At((c.view.Len() - 1) - index)
}

// Current returns the byte the cursor sits on.
func (c *ViewCursor) Current() byte {
	return c.view.At(c.index)
}

// Equals reports whether two cursors address the same View and sit at the
// same index.
func (c *ViewCursor) Equals(other ViewCursor) bool {
	return c.view == other.view && c.index == other.index
}
