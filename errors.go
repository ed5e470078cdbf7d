package money

import "errors"

// Errors returned by this package.
// They are always wrapped with the context of the failed operation,
// use [errors.Is] to tell them apart.
var (
	// ErrParse is returned when an integer-like value or a decimal string
	// cannot be parsed.
	ErrParse = errors.New("invalid number")
	// ErrAmountOutOfRange is returned when a raw amount is outside of [0, 2^256).
	ErrAmountOutOfRange = errors.New("amount out of uint256 range")
	// ErrCurrencyMismatch is returned when amounts in different currencies are combined.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrDecimalsExceeded is returned when an amount is requested with more
	// decimal places than its currency supports.
	ErrDecimalsExceeded = errors.New("decimals exceeded")
	// ErrInvalidPrecision is returned for a negative number of decimal places
	// or a non-positive number of significant digits.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrInvalidRounding is returned for an unknown rounding mode.
	ErrInvalidRounding = errors.New("invalid rounding mode")
	// ErrZeroDenominator is returned when a fraction is built with a zero denominator.
	ErrZeroDenominator = errors.New("zero denominator")
	// ErrDivisionByZero is returned when dividing by a zero fraction.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidChain is returned when a chain identifier cannot be parsed.
	ErrInvalidChain = errors.New("invalid chain")
	// ErrInvalidAddress is returned when a token address cannot be parsed.
	ErrInvalidAddress = errors.New("invalid token address")
)
