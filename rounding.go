package money

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"gopkg.in/inf.v0"
)

// Rounding represents a rounding mode used when an exact value is displayed
// with fewer digits than it has.
// The zero value is [RoundDown].
type Rounding uint8

const (
	// RoundDown drops the extra digits, rounding toward zero.
	RoundDown Rounding = iota
	// RoundHalfUp rounds to the nearest value, ties away from zero.
	RoundHalfUp
	// RoundUp rounds away from zero if any dropped digit is not zero.
	RoundUp
)

var roundingNames = [...]string{
	RoundDown:   "down",
	RoundHalfUp: "half-up",
	RoundUp:     "up",
}

var roundingRounders = [...]inf.Rounder{
	RoundDown:   inf.RoundDown,
	RoundHalfUp: inf.RoundHalfUp,
	RoundUp:     inf.RoundUp,
}

// ParseRounding converts a string to a rounding mode.
// The input string must be in one of the following formats:
//
//	down      half-up      up
//	DOWN      HALF_UP      UP
//	ROUND_DOWN ROUND_HALF_UP ROUND_UP
//
// ParseRounding returns an error if the string does not name a rounding mode.
func ParseRounding(s string) (Rounding, error) {
	name := strings.ToLower(strings.ReplaceAll(s, "_", "-"))
	name = strings.TrimPrefix(name, "round-")
	for r, n := range roundingNames {
		if n == name {
			return Rounding(r), nil //nolint:gosec
		}
	}
	return RoundDown, fmt.Errorf("parsing %q: %w", s, ErrInvalidRounding)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	if int(r) < len(roundingNames) {
		return roundingNames[r]
	}
	return fmt.Sprintf("Rounding(%d)", uint8(r))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rounding) MarshalText() ([]byte, error) {
	if _, err := r.rounder(); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRounding].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rounding) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRounding(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", RoundDown, err)
	}
	return nil
}

func (r Rounding) rounder() (inf.Rounder, error) {
	if int(r) >= len(roundingRounders) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRounding, r)
	}
	return roundingRounders[r], nil
}

// quo returns num / den rounded to the given number of digits after the
// decimal point. A negative scale rounds to the left of the decimal point.
// The rounding is applied to the exact remainder of the integer division.
func (r Rounding) quo(num, den *big.Int, scale int) (*inf.Dec, error) {
	rounder, err := r.rounder()
	if err != nil {
		return nil, err
	}
	if scale < math.MinInt32 || scale > math.MaxInt32 {
		return nil, fmt.Errorf("%w: scale %v is out of range", ErrInvalidPrecision, scale)
	}
	x := inf.NewDecBig(num, 0)
	y := inf.NewDecBig(den, 0)
	return new(inf.Dec).QuoRound(x, y, inf.Scale(scale), rounder), nil
}

// round returns x rounded to the given number of digits after the decimal point.
// Rounding a value that already has the target scale returns an equal value,
// so applying round twice with the same scale is the same as applying it once.
func (r Rounding) round(x *inf.Dec, scale int) (*inf.Dec, error) {
	rounder, err := r.rounder()
	if err != nil {
		return nil, err
	}
	if scale < math.MinInt32 || scale > math.MaxInt32 {
		return nil, fmt.Errorf("%w: scale %v is out of range", ErrInvalidPrecision, scale)
	}
	return new(inf.Dec).Round(x, inf.Scale(scale), rounder), nil
}

// decParts splits a decimal into its sign, integer digits and fractional digits.
// The number of fractional digits is equal to the scale of the decimal.
// Zero is never reported as negative.
func decParts(d *inf.Dec) (neg bool, intPart, fracPart string) {
	u := d.UnscaledBig()
	scale := int(d.Scale())
	neg = u.Sign() < 0
	digits := new(big.Int).Abs(u).String()
	if scale <= 0 {
		if u.Sign() == 0 {
			return false, "0", ""
		}
		return neg, digits + strings.Repeat("0", -scale), ""
	}
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	return neg, digits[:len(digits)-scale], digits[len(digits)-scale:]
}
