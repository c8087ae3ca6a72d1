// SPDX-License-Identifier: MIT

package closedform

import "errors"

var (
	// ErrBadLinkCount indicates a link count the formula is not defined for.
	ErrBadLinkCount = errors.New("closedform: link count out of range")

	// ErrBadParameter indicates a non-finite or out-of-domain model parameter.
	ErrBadParameter = errors.New("closedform: parameter out of range")
)
