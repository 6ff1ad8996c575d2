// File: string_test.go
// Title: Unit Tests for SSO String Representation
// Description: Tests for construction, the short/long representation
//              boundary, capacity management and the growth engine. Includes
//              the round-trip and capacity-monotonicity properties.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package sso

import (
	"bytes"
	"testing"

	"github.com/msto63/bytestring/core/alloc"
	"github.com/msto63/bytestring/core/contract"
)

// expectViolation runs fn and fails the test unless fn panics with a
// *contract.Violation.
func expectViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a contract violation, got none")
		}
		if _, ok := r.(*contract.Violation); !ok {
			t.Fatalf("panic value is %T (%v); want *contract.Violation", r, r)
		}
	}()
	fn()
}

func repeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func TestNewIsEmptyShort(t *testing.T) {
	s := New()
	if !s.IsShort() {
		t.Error("New() is not short form")
	}
	if s.Length() != 0 {
		t.Errorf("Length = %d; want 0", s.Length())
	}
	if s.Capacity() != InlineCapacity {
		t.Errorf("Capacity = %d; want %d", s.Capacity(), InlineCapacity)
	}
	if !s.IsEmpty() {
		t.Error("New() is not empty")
	}
}

func TestWithCapacity(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		wantShort bool
		wantCap   int
	}{
		{"zero", 0, true, InlineCapacity},
		{"small", 5, true, InlineCapacity},
		{"exactly inline", InlineCapacity, true, InlineCapacity},
		{"one past inline", InlineCapacity + 1, false, InlineCapacity + 1},
		{"large", 100, false, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := WithCapacity(tt.capacity)
			if s.IsShort() != tt.wantShort {
				t.Errorf("IsShort = %v; want %v", s.IsShort(), tt.wantShort)
			}
			if s.Capacity() != tt.wantCap {
				t.Errorf("Capacity = %d; want %d", s.Capacity(), tt.wantCap)
			}
			if s.Length() != 0 {
				t.Errorf("Length = %d; want 0", s.Length())
			}
		})
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	sizes := []int{0, 1, 5, InlineCapacity - 1, InlineCapacity, InlineCapacity + 1,
		30, 2 * InlineCapacity, 10 * InlineCapacity}

	for _, n := range sizes {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte('a' + i%26)
		}
		s := FromBytes(src)
		if s.Length() != n {
			t.Errorf("size %d: Length = %d", n, s.Length())
		}
		if !bytes.Equal(s.Bytes(), src) {
			t.Errorf("size %d: content mismatch", n)
		}
		if s.Capacity() < n {
			t.Errorf("size %d: Capacity %d < length", n, s.Capacity())
		}
	}
}

func TestShortLongBoundary(t *testing.T) {
	atBoundary := FromBytes(repeat('a', InlineCapacity))
	if !atBoundary.IsShort() {
		t.Errorf("length %d string is not short form", InlineCapacity)
	}
	if atBoundary.Length() != InlineCapacity {
		t.Errorf("Length = %d; want %d", atBoundary.Length(), InlineCapacity)
	}

	pastBoundary := FromBytes(repeat('a', InlineCapacity+1))
	if pastBoundary.IsShort() {
		t.Errorf("length %d string is still short form", InlineCapacity+1)
	}
	if pastBoundary.Length() != InlineCapacity+1 {
		t.Errorf("Length = %d; want %d", pastBoundary.Length(), InlineCapacity+1)
	}
}

func TestFromBytesLong(t *testing.T) {
	s := FromBytes(repeat('a', 30))
	if s.IsShort() {
		t.Error("30-byte string is short form")
	}
	if s.Length() != 30 {
		t.Errorf("Length = %d; want 30", s.Length())
	}
	if s.Capacity() < 30 {
		t.Errorf("Capacity = %d; want >= 30", s.Capacity())
	}
}

func TestFromString(t *testing.T) {
	s := FromString("hello")
	if s.String() != "hello" {
		t.Errorf("String = %q; want %q", s.String(), "hello")
	}
	if !s.IsShort() {
		t.Error("5-byte string is not short form")
	}
}

func TestFromView(t *testing.T) {
	src := FromString("hello world")
	v := src.ViewOf(6, 5)
	s := FromView(v)
	if s.String() != "world" {
		t.Errorf("String = %q; want %q", s.String(), "world")
	}
}

func TestCloneDeepCopy(t *testing.T) {
	original := FromString("hello world, longer than the inline capacity!")
	clone := original.Clone()

	if !clone.Equal(original) {
		t.Fatal("clone content differs from original")
	}

	*original.At(0) = 'H'
	if clone.ByteAt(0) != 'h' {
		t.Error("mutating the original changed the clone")
	}
}

func TestCloneShrinksToContent(t *testing.T) {
	s := WithCapacity(100)
	s.AppendBytes([]byte("tiny"))
	clone := s.Clone()
	if !clone.IsShort() {
		t.Error("clone of 4-byte content is not short form")
	}
	if clone.String() != "tiny" {
		t.Errorf("clone = %q; want %q", clone.String(), "tiny")
	}
}

func TestReserveMonotonicAndIdempotent(t *testing.T) {
	s := New()

	s.Reserve(50)
	capAfterFirst := s.Capacity()
	if capAfterFirst < 50 {
		t.Fatalf("Capacity = %d after Reserve(50); want >= 50", capAfterFirst)
	}

	// Same request again must not change anything.
	s.Reserve(50)
	if s.Capacity() != capAfterFirst {
		t.Errorf("Capacity = %d after second Reserve(50); want %d", s.Capacity(), capAfterFirst)
	}

	// Smaller request never shrinks.
	s.Reserve(10)
	if s.Capacity() != capAfterFirst {
		t.Errorf("Capacity = %d after Reserve(10); want %d", s.Capacity(), capAfterFirst)
	}
}

func TestReservePreservesContent(t *testing.T) {
	s := FromString("hello")
	s.Reserve(200)
	if s.String() != "hello" {
		t.Errorf("content after Reserve = %q; want %q", s.String(), "hello")
	}
	if s.Length() != 5 {
		t.Errorf("Length after Reserve = %d; want 5", s.Length())
	}
}

func TestResize(t *testing.T) {
	t.Run("grow", func(t *testing.T) {
		s := FromString("hello")
		s.Resize(40)
		if s.IsShort() {
			t.Error("string is still short after Resize(40)")
		}
		if s.Length() != 5 || s.String() != "hello" {
			t.Errorf("content = %q (len %d); want %q", s.String(), s.Length(), "hello")
		}
		if s.Capacity() < 40 {
			t.Errorf("Capacity = %d; want >= 40", s.Capacity())
		}
	})

	t.Run("truncate", func(t *testing.T) {
		s := FromString("hello world")
		s.Resize(5)
		if s.String() != "hello" {
			t.Errorf("content = %q; want %q", s.String(), "hello")
		}
	})

	t.Run("shrink long to short", func(t *testing.T) {
		s := FromBytes(repeat('a', 40))
		s.Resize(4)
		if !s.IsShort() {
			t.Error("string is still long after shrinking to 4 bytes")
		}
		if !s.EqualBytes(repeat('a', 4)) {
			t.Errorf("content = %q; want aaaa", s.String())
		}
	})
}

func TestShrinkToFit(t *testing.T) {
	s := WithCapacity(100)
	s.AppendBytes([]byte("hello"))
	s.ShrinkToFit()
	if !s.IsShort() {
		t.Error("5-byte string did not return to short form")
	}
	if s.String() != "hello" {
		t.Errorf("content = %q; want %q", s.String(), "hello")
	}

	big := FromBytes(repeat('b', 40))
	big.Reserve(500)
	big.ShrinkToFit()
	if big.Capacity() >= 500 {
		t.Errorf("Capacity = %d after ShrinkToFit; want shrunk", big.Capacity())
	}
	if !big.EqualBytes(repeat('b', 40)) {
		t.Error("content changed across ShrinkToFit")
	}
}

func TestFreeReleasesHeapBuffer(t *testing.T) {
	counting := alloc.NewCounting(nil)

	s := FromBytesIn(repeat('x', 100), counting)
	if counting.Live() != 1 {
		t.Fatalf("Live = %d after construction; want 1", counting.Live())
	}

	s.Free()
	if counting.Live() != 0 {
		t.Errorf("Live = %d after Free; want 0", counting.Live())
	}
	if !s.IsShort() || s.Length() != 0 {
		t.Error("freed string is not an empty short-form string")
	}
}

func TestFreeShortIsNoOpOnAllocator(t *testing.T) {
	counting := alloc.NewCounting(nil)
	s := FromBytesIn([]byte("tiny"), counting)
	s.Free()
	if counting.Allocations() != 0 {
		t.Errorf("Allocations = %d for inline-only lifecycle; want 0", counting.Allocations())
	}
}

func TestGrowthReleasesOldBuffers(t *testing.T) {
	counting := alloc.NewCounting(nil)
	s := NewIn(counting)

	for i := 0; i < 500; i++ {
		s.PushBack(byte('a' + i%26))
	}
	if counting.Live() != 1 {
		t.Errorf("Live = %d after repeated growth; want 1", counting.Live())
	}

	s.Free()
	if counting.Live() != 0 {
		t.Errorf("Live = %d after Free; want 0", counting.Live())
	}
}

func TestAtBounds(t *testing.T) {
	s := FromString("hello")

	if got := s.ByteAt(0); got != 'h' {
		t.Errorf("ByteAt(0) = %q; want 'h'", got)
	}
	if got := s.ByteAt(4); got != 'o' {
		t.Errorf("ByteAt(4) = %q; want 'o'", got)
	}
	// Index == length addresses the terminator slot and is legal.
	if got := s.ByteAt(5); got != 0 {
		t.Errorf("ByteAt(5) = %d; want terminator 0", got)
	}

	expectViolation(t, func() { s.ByteAt(6) })
	expectViolation(t, func() { s.ByteAt(-1) })
}

func TestAtMutatesInPlace(t *testing.T) {
	s := FromString("cat")
	*s.At(0) = 'b'
	if s.String() != "bat" {
		t.Errorf("content = %q; want %q", s.String(), "bat")
	}
}

func TestSetCapacityOnShortViolates(t *testing.T) {
	s := New()
	expectViolation(t, func() { s.setCapacity(40) })
}

func TestSetLengthBeyondCapacityViolates(t *testing.T) {
	s := New()
	expectViolation(t, func() { s.setLength(InlineCapacity + 1) })
}

func TestDecreaseLengthBelowZeroViolates(t *testing.T) {
	s := FromString("ab")
	expectViolation(t, func() { s.decreaseLength(3) })
}

func TestTerminatorInvariant(t *testing.T) {
	check := func(t *testing.T, s *String, when string) {
		t.Helper()
		if s.buffer()[s.Length()] != 0 {
			t.Errorf("%s: buffer[%d] = %d; want terminator 0", when, s.Length(), s.buffer()[s.Length()])
		}
	}

	s := New()
	check(t, s, "new")

	s.AppendBytes([]byte("hello"))
	check(t, s, "after append")

	s.AppendBytes(repeat('x', 50))
	check(t, s, "after growth to long form")

	s.PopBack()
	check(t, s, "after PopBack")

	s.PopFront()
	check(t, s, "after PopFront")

	s.EraseN(0, 10)
	check(t, s, "after EraseN")

	s.Resize(4)
	check(t, s, "after shrink to short")

	full := FromBytes(repeat('a', InlineCapacity))
	check(t, full, "full inline string")
}

func TestIsFull(t *testing.T) {
	s := FromBytes(repeat('a', InlineCapacity))
	if !s.IsFull() {
		t.Error("inline string at capacity is not full")
	}
	s.PopBack()
	if s.IsFull() {
		t.Error("string is full after PopBack")
	}
}
