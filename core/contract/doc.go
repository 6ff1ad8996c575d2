// File: doc.go
// Title: Package Documentation for contract
// Description: Package contract provides fail-fast precondition checking for
//              the bytestring library, separating programmer error from
//              recoverable runtime conditions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package contract provides fail-fast precondition checking.
//
// Overview
//
// The bytestring library distinguishes two failure classes. Programmer
// errors — an out-of-bounds index, decreasing a length below zero, calling a
// long-form-only primitive on a short-form string — are bugs in the calling
// code and must not be silently tolerated. This package makes them fail fast
// by panicking with a *Violation. Everything else (a substring that is not
// found, popping from an empty string) is an ordinary result and is reported
// with (value, ok) returns by the packages that own those operations.
//
// Usage
//
//	contract.Require(index <= s.Length(), "sso.String.At",
//	    "index out of bounds")
//	contract.Requiref(n <= length, "sso.String.decreaseLength",
//	    "cannot decrease length %d by %d", length, n)
//
// Tests that exercise contracts recover the panic and type-assert the value
// to *Violation to confirm the guard fired rather than some unrelated panic.
//
// Thread Safety
//
// The package holds no state; both functions are trivially safe for
// concurrent use.
package contract
