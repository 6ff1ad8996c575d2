// File: ssox.go
// Title: Extended Operations for SSO Strings
// Description: Provides the extension surface over sso.String that does not
//              belong on the core type: delimiter splitting into owned
//              strings or non-owning views, occurrence counting and
//              locating, and content hashing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the extension surface

package ssox

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/msto63/bytestring/core/alloc"
	"github.com/msto63/bytestring/sso"
)

// SplitOn splits s on delimiter and returns the segments as owned copies.
// Empty segments are dropped: a leading delimiter and a trailing delimiter
// produce no segment, and a string without the delimiter comes back as a
// single copy of itself. When two delimiters are adjacent, the second one
// is carried into the following segment.
func SplitOn(s *sso.String, delimiter byte) []*sso.String {
	return SplitOnIn(s, delimiter, alloc.Default())
}

// SplitOnIn is SplitOn with an explicit allocator for the segment copies.
func SplitOnIn(s *sso.String, delimiter byte, a alloc.Allocator) []*sso.String {
	views := ViewSplitOn(s, delimiter)
	out := make([]*sso.String, 0, len(views))
	for _, v := range views {
		out = append(out, sso.FromViewIn(v, a))
	}
	return out
}

// ViewSplitOn splits s on delimiter without copying: the segments are
// non-owning views into s, with the same segment rules as SplitOn. The
// views stay valid only as long as the storage of s does.
func ViewSplitOn(s *sso.String, delimiter byte) []sso.View {
	var out []sso.View

	length := s.Length()
	start := 0
	for index := 0; index < length; index++ {
		if s.ByteAt(index) != delimiter {
			continue
		}
		if index == 0 {
			start = 1
			continue
		}
		if segment := index - start; segment > 0 {
			out = append(out, s.ViewOf(start, segment))
			start = min(index+1, length)
		}
	}
	// Emit the tail when the string does not end on a delimiter; this also
	// forwards the whole string when the delimiter never occurred.
	if start != length {
		out = append(out, s.ViewOf(start, length-start))
	}
	return out
}

// OccurrencesOfByte returns how many bytes of s equal b.
func OccurrencesOfByte(s *sso.String, b byte) int {
	count := 0
	for _, elem := range s.Bytes() {
		if elem == b {
			count++
		}
	}
	return count
}

// OccurrencesOf returns how many windows of s equal the content of sub.
// Overlapping occurrences all count.
func OccurrencesOf(s *sso.String, sub *sso.String) int {
	return occurrences(s, sub.Bytes())
}

// OccurrencesOfView returns how many windows of s equal the viewed bytes.
func OccurrencesOfView(s *sso.String, v sso.View) int {
	return occurrences(s, v.Bytes())
}

func occurrences(s *sso.String, sub []byte) int {
	return len(findOccurrences(s, sub))
}

// FindOccurrencesOfByte returns the indices of every byte of s equal to b.
func FindOccurrencesOfByte(s *sso.String, b byte) []int {
	var out []int
	for index, elem := range s.Bytes() {
		if elem == b {
			out = append(out, index)
		}
	}
	return out
}

// FindOccurrencesOf returns the starting indices of every window of s equal
// to the content of sub, including overlapping ones.
func FindOccurrencesOf(s *sso.String, sub *sso.String) []int {
	return findOccurrences(s, sub.Bytes())
}

// FindOccurrencesOfView returns the starting indices of every window of s
// equal to the viewed bytes.
func FindOccurrencesOfView(s *sso.String, v sso.View) []int {
	return findOccurrences(s, v.Bytes())
}

// findOccurrences scans every offset of s where a window of len(sub) bytes
// still fits. An empty sub matches at every offset, mirroring windowed
// equality.
func findOccurrences(s *sso.String, sub []byte) []int {
	var out []int
	content := s.Bytes()
	for index := 0; index < len(content); index++ {
		if index+len(sub) > len(content) {
			break
		}
		if bytes.Equal(content[index:index+len(sub)], sub) {
			out = append(out, index)
		}
	}
	return out
}

// Hash64 returns the xxHash64 digest of the content of s. Equal content
// hashes equally regardless of representation form or capacity.
func Hash64(s *sso.String) uint64 {
	return xxhash.Sum64(s.Bytes())
}

// HashView returns the xxHash64 digest of the viewed bytes. A view over a
// string hashes identically to the string itself.
func HashView(v sso.View) uint64 {
	return xxhash.Sum64(v.Bytes())
}

// HashBytes returns the xxHash64 digest of b.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
