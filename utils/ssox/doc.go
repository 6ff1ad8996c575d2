// File: doc.go
// Title: Package Documentation for ssox
// Description: Extended operations over sso.String: splitting, occurrence
//              search and hashing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

// Package ssox provides extended operations over sso.String that build
// purely on its public surface: delimiter splitting, occurrence counting
// and locating, and content hashing.
//
// Overview
//
// The core sso package keeps the String type to construction, mutation,
// search and iteration. Everything that can be expressed on top of that
// surface lives here, so the core type stays small and this package can
// grow freely.
//
// Splitting comes in two flavors. SplitOn returns owned copies of the
// segments and accepts an allocator through SplitOnIn; ViewSplitOn returns
// non-owning views into the source string and performs no allocation beyond
// the result slice:
//
//	s := sso.FromString("alpha,beta,gamma")
//	for _, segment := range ssox.ViewSplitOn(s, ',') {
//	    fmt.Println(segment.String())
//	}
//
// Empty segments are dropped rather than returned, so leading and trailing
// delimiters produce no output. Adjacent delimiters are not collapsed: the
// second delimiter of a pair is carried into the segment that follows it.
//
// Occurrence search counts or locates every window of the haystack that
// equals the needle, overlapping windows included:
//
//	s := sso.FromString("aaa")
//	ssox.OccurrencesOf(s, sso.FromString("aa")) // 2
//
// Hashing uses xxHash64 over the content bytes. Two strings with equal
// content hash equally regardless of their representation form, capacity
// or allocator, so the digests are suitable as map keys for interning and
// deduplication.
//
// Thread Safety
//
// All functions are pure with respect to their inputs and safe for
// concurrent use as long as the underlying strings are not mutated
// concurrently.
package ssox
