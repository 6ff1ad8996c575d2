// File: ssox_test.go
// Title: Unit Tests for Extended String Operations
// Description: Tests for delimiter splitting (including the empty-segment
//              and adjacent-delimiter rules), occurrence counting and
//              locating, and content hashing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package ssox

import (
	"testing"

	"github.com/msto63/bytestring/core/alloc"
	"github.com/msto63/bytestring/sso"
)

func TestSplitOn(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter byte
		want      []string
	}{
		{"simple", "alpha,beta,gamma", ',', []string{"alpha", "beta", "gamma"}},
		{"no delimiter", "alpha", ',', []string{"alpha"}},
		{"leading delimiter", ",alpha,beta", ',', []string{"alpha", "beta"}},
		{"trailing delimiter", "alpha,beta,", ',', []string{"alpha", "beta"}},
		{"only delimiter", ",", ',', nil},
		{"only delimiters", ",,", ',', []string{","}},
		{"adjacent delimiters carry", "a,,b", ',', []string{"a", ",b"}},
		{"empty string", "", ',', nil},
		{"spaces", "the quick brown", ' ', []string{"the", "quick", "brown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sso.FromString(tt.input)
			segments := SplitOn(s, tt.delimiter)
			if len(segments) != len(tt.want) {
				t.Fatalf("got %d segments; want %d", len(segments), len(tt.want))
			}
			for i, segment := range segments {
				if segment.String() != tt.want[i] {
					t.Errorf("segment %d = %q; want %q", i, segment.String(), tt.want[i])
				}
			}
		})
	}
}

func TestViewSplitOn(t *testing.T) {
	s := sso.FromString("alpha,beta,gamma")

	views := ViewSplitOn(s, ',')
	if len(views) != 3 {
		t.Fatalf("got %d views; want 3", len(views))
	}
	for i, want := range []string{"alpha", "beta", "gamma"} {
		if views[i].String() != want {
			t.Errorf("view %d = %q; want %q", i, views[i].String(), want)
		}
	}

	// Views alias the source storage.
	*s.At(0) = 'A'
	if views[0].String() != "Alpha" {
		t.Errorf("view = %q after mutating the source; want %q", views[0].String(), "Alpha")
	}
}

func TestSplitOnInCopies(t *testing.T) {
	counting := alloc.NewCounting(nil)
	s := sso.FromString("a long first segment here,tail")

	segments := SplitOnIn(s, ',', counting)
	if len(segments) != 2 {
		t.Fatalf("got %d segments; want 2", len(segments))
	}

	// The copies are independent of the source.
	*s.At(0) = 'A'
	if segments[0].String() != "a long first segment here" {
		t.Errorf("segment = %q after mutating the source", segments[0].String())
	}

	for _, segment := range segments {
		segment.Free()
	}
	if counting.Live() != 0 {
		t.Errorf("Live = %d after freeing all segments; want 0", counting.Live())
	}
}

func TestOccurrencesOfByte(t *testing.T) {
	tests := []struct {
		input string
		b     byte
		want  int
	}{
		{"hello world", 'l', 3},
		{"hello world", 'z', 0},
		{"", 'a', 0},
		{"aaaa", 'a', 4},
	}

	for _, tt := range tests {
		s := sso.FromString(tt.input)
		if got := OccurrencesOfByte(s, tt.b); got != tt.want {
			t.Errorf("OccurrencesOfByte(%q, %q) = %d; want %d", tt.input, tt.b, got, tt.want)
		}
	}
}

func TestOccurrencesOf(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sub   string
		want  int
	}{
		{"distinct", "abcabcabc", "abc", 3},
		{"overlapping", "aaa", "aa", 2},
		{"absent", "hello", "xyz", 0},
		{"whole string", "hello", "hello", 1},
		{"longer than input", "hi", "hello", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sso.FromString(tt.input)
			if got := OccurrencesOf(s, sso.FromString(tt.sub)); got != tt.want {
				t.Errorf("OccurrencesOf = %d; want %d", got, tt.want)
			}
			if got := OccurrencesOfView(s, sso.ViewOfString(tt.sub)); got != tt.want {
				t.Errorf("OccurrencesOfView = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestFindOccurrencesOfByte(t *testing.T) {
	s := sso.FromString("hello world")

	got := FindOccurrencesOfByte(s, 'l')
	want := []int{2, 3, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d; want %d", i, got[i], want[i])
		}
	}

	if got := FindOccurrencesOfByte(s, 'z'); got != nil {
		t.Errorf("got %v for an absent byte; want nil", got)
	}
}

func TestFindOccurrencesOf(t *testing.T) {
	s := sso.FromString("abcabcabc")

	got := FindOccurrencesOf(s, sso.FromString("abc"))
	want := []int{0, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("got %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d; want %d", i, got[i], want[i])
		}
	}

	overlapping := FindOccurrencesOfView(sso.FromString("aaa"), sso.ViewOfString("aa"))
	if len(overlapping) != 2 || overlapping[0] != 0 || overlapping[1] != 1 {
		t.Errorf("overlapping occurrences = %v; want [0 1]", overlapping)
	}
}

func TestHash64(t *testing.T) {
	short := sso.FromString("hello")

	long := sso.WithCapacity(100)
	long.AppendBytes([]byte("hello"))
	long.Reserve(200)

	if Hash64(short) != Hash64(long) {
		t.Error("equal content hashes unequally across representations")
	}
	if Hash64(short) != HashBytes([]byte("hello")) {
		t.Error("Hash64 and HashBytes disagree on equal content")
	}
	if Hash64(short) != HashView(short.AsView()) {
		t.Error("Hash64 and HashView disagree on equal content")
	}
	if Hash64(short) == Hash64(sso.FromString("hellp")) {
		t.Error("different content produced the same digest")
	}
}
