// SPDX-License-Identifier: MIT

// Package chain: sentinel errors.
//
// Every message is prefixed with "chain: ". Functions return these directly
// or wrap them with the method name via chainErrorf, so callers branch with
// errors.Is and never compare strings.

package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLinkCount indicates a link count below MinLinks.
	ErrBadLinkCount = errors.New("chain: link count must be >= 1")

	// ErrBadAngle indicates a constraint angle outside the open interval (0, π)
	// or a non-finite angle.
	ErrBadAngle = errors.New("chain: constraint angle must be in (0, π)")

	// ErrBadStiffness indicates a non-positive or non-finite link stiffness.
	ErrBadStiffness = errors.New("chain: link stiffness must be finite and > 0")

	// ErrBadSampleCount indicates a non-positive number of Monte Carlo samples.
	ErrBadSampleCount = errors.New("chain: sample count must be >= 1")

	// ErrNilModel indicates a nil Model.
	ErrNilModel = errors.New("chain: model is nil")

	// ErrNilRand indicates a nil random source.
	ErrNilRand = errors.New("chain: random source is nil")
)

// chainErrorf prefixes err with the method name while keeping it matchable
// with errors.Is.
func chainErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
