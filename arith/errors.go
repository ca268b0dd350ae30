// SPDX-License-Identifier: MIT

package arith

import "errors"

var (
	// ErrDivideByZero is returned by Divide and Reciprocal when the divisor is zero
	// under the strategy's own zero test.
	ErrDivideByZero = errors.New("arith: divide by zero")

	// ErrNumberFormat is returned by Parse when the text is not a number of the
	// strategy's representation.
	ErrNumberFormat = errors.New("arith: invalid number format")
)
