// Package testutil provides testing utilities for tickclock.
//
// This package contains mock errors used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockFailure is a generic failure with no user-facing mapping.
	ErrMockFailure = errors.New("something failed")

	// ErrMockBadInput stands in for an input error that is not a sentinel.
	ErrMockBadInput = errors.New("bad input")

	// ErrMockUnknownFlag mimics the error cobra returns for an unknown flag.
	ErrMockUnknownFlag = errors.New("unknown flag: --nope")

	// ErrMockFlagGroup mimics the error cobra returns for mutually exclusive flags.
	ErrMockFlagGroup = errors.New("if any flags in the group [ticks seconds] are set none of the others can be; [seconds ticks] were all set")
)
