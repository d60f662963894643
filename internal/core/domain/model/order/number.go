package order

import (
	"fmt"
	"strconv"
	"strings"

	"orderflow/internal/pkg/errs"
)

const (
	// NumberPrefix is the fixed literal every order number starts with.
	NumberPrefix = "ORD"

	// numberPadding is the minimum width of the numeric suffix.
	// Sequences beyond 999999 widen the suffix instead of wrapping.
	numberPadding = 6
)

// Number is the unique, human-readable identifier of an order, formatted as
// the fixed prefix followed by a zero-padded monotonically increasing
// sequence value, e.g. "ORD000001". Numbers are immutable once assigned.
type Number string

// NumberFromSequence formats a sequence value as an order number.
// The sequence must be positive.
func NumberFromSequence(seq int64) (Number, error) {
	if seq <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("order number sequence",
			fmt.Errorf("%d is not greater than 0", seq))
	}
	return Number(fmt.Sprintf("%s%0*d", NumberPrefix, numberPadding, seq)), nil
}

// NumberFromString validates a raw string as an order number.
// Used when reconstructing orders from persistence.
func NumberFromString(s string) (Number, error) {
	number := Number(s)
	if err := number.Validate(); err != nil {
		return "", err
	}
	return number, nil
}

// Sequence extracts the numeric suffix of the order number.
func (n Number) Sequence() (int64, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}

	seq, err := strconv.ParseInt(strings.TrimPrefix(string(n), NumberPrefix), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	return seq, nil
}

// Validate checks the prefix and the numeric suffix of the order number.
// The zero value ("") is invalid.
func (n Number) Validate() error {
	s := string(n)
	if s == "" {
		return errs.NewValueIsRequiredError("order number")
	}

	suffix, ok := strings.CutPrefix(s, NumberPrefix)
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not start with %q", s, NumberPrefix))
	}
	if len(suffix) < numberPadding {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q has a suffix shorter than %d digits", s, numberPadding))
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("order number",
				fmt.Errorf("%q has a non-numeric suffix", s))
		}
	}
	return nil
}

// String returns the raw order number.
func (n Number) String() string {
	return string(n)
}
