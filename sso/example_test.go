// File: example_test.go
// Title: Example Tests for SSO String Package Documentation
// Description: Executable examples that serve as both documentation and tests.
//              These examples demonstrate typical usage patterns and appear
//              in the generated documentation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial example implementation

package sso_test

import (
	"fmt"

	"github.com/msto63/bytestring/sso"
)

func ExampleFromString() {
	s := sso.FromString("hello")

	fmt.Println(s.String())
	fmt.Println(s.Length())
	fmt.Println(s.IsShort())
	// Output:
	// hello
	// 5
	// true
}

func ExampleString_PushBack() {
	s := sso.New()
	for _, b := range []byte("Hello") {
		s.PushBack(b)
	}

	fmt.Println(s.String())
	fmt.Println(s.IsShort())
	// Output:
	// Hello
	// true
}

func ExampleString_Insert() {
	s := sso.FromString("hello world")
	s.Insert(sso.FromString("cruel "), 6)

	fmt.Println(s.String())
	// Output:
	// hello cruel world
}

func ExampleString_FindFirst() {
	s := sso.FromString("hello world")

	index, found := s.FindFirst(sso.FromString("world"))
	fmt.Println(index, found)

	_, found = s.FindFirst(sso.FromString("xyz"))
	fmt.Println(found)
	// Output:
	// 6 true
	// false
}

func ExampleString_Substring() {
	s := sso.FromString("hello")

	fmt.Println(s.Substring(1, 3).String())
	// Output:
	// ell
}

func ExampleConcat() {
	left := sso.FromString("hello ")
	right := sso.FromString("world")

	fmt.Println(sso.Concat(left, right).String())
	// Output:
	// hello world
}

func ExampleString_ViewOf() {
	s := sso.FromString("hello world")
	v := s.ViewOf(6, 5)

	fmt.Println(v.String())
	fmt.Println(v.Len())
	// Output:
	// world
	// 5
}

func ExampleString_Begin() {
	s := sso.FromString("abc")

	for c := s.Begin(); !c.Equals(s.End()); {
		fmt.Printf("%c", *c.Current())
		c.Next()
	}
	fmt.Println()
	// Output:
	// abc
}
