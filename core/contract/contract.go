// File: contract.go
// Title: Fail-Fast Precondition Checking
// Description: Implements the contract checking primitives used throughout the
//              bytestring library. Precondition violations represent programmer
//              error, not recoverable runtime conditions, so they fail fast via
//              panic rather than returning errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with Require and Requiref

package contract

import "fmt"

// Violation describes a broken precondition. It is carried as the panic value
// by Require and Requiref so callers can distinguish contract failures from
// other panics in tests and recovery code.
type Violation struct {
	// Op is the operation whose contract was broken, e.g. "sso.String.At"
	Op string
	// Message describes the broken precondition
	Message string
}

// Error implements the error interface so a recovered Violation can flow
// through standard error handling if a caller chooses to recover it.
func (v *Violation) Error() string {
	return "contract violation in " + v.Op + ": " + v.Message
}

// Require panics with a *Violation if cond is false.
//
// Use it to guard preconditions that only a programming error can break:
// index bounds, representation-state requirements, negative-length
// arithmetic. Runtime conditions that a correct program can encounter must
// be reported as values instead ("not found" results, (value, ok) returns).
func Require(cond bool, op, message string) {
	if !cond {
		panic(&Violation{Op: op, Message: message})
	}
}

// Requiref is Require with fmt.Sprintf-style message formatting. The message
// is only formatted when the condition fails, so hot paths pay nothing for
// the arguments beyond their evaluation.
func Requiref(cond bool, op, format string, args ...interface{}) {
	if !cond {
		panic(&Violation{Op: op, Message: fmt.Sprintf(format, args...)})
	}
}
