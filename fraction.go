package money

import (
	"fmt"
	"math/big"
	"strings"

	ethmath "github.com/ethereum/go-ethereum/common/math"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Fraction type represents an exact rational number num / den, where both
// num and den are arbitrary-precision integers and den is never zero.
// Its zero value corresponds to 0 / 1.
//
// Fractions are not reduced: 2 / 4 and 1 / 2 are different representations
// of the same value. Comparisons and rounding use exact integer arithmetic and
// never go through a binary floating-point value.
//
// Fraction is immutable and safe for concurrent use by multiple goroutines.
type Fraction struct {
	n *big.Int // numerator, nil means 0
	d *big.Int // denominator, nil means 1
}

// NewFraction returns a fraction equal to num / den.
// The arguments are copied.
//
// NewFraction returns an error if den is zero.
func NewFraction(num, den *big.Int) (Fraction, error) {
	if num == nil || den == nil {
		return Fraction{}, fmt.Errorf("creating fraction: %w: nil integer", ErrParse)
	}
	if den.Sign() == 0 {
		return Fraction{}, fmt.Errorf("creating fraction %v/%v: %w", num, den, ErrZeroDenominator)
	}
	return newFractionUnsafe(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// MustNewFraction is like [NewFraction] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNewFraction(num, den *big.Int) Fraction {
	f, err := NewFraction(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewFraction(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// NewFractionFromInt64 returns a fraction equal to num / den.
//
// NewFractionFromInt64 returns an error if den is zero.
func NewFractionFromInt64(num, den int64) (Fraction, error) {
	return NewFraction(big.NewInt(num), big.NewInt(den))
}

// ParseFraction converts a pair of integer-like values to a fraction.
// See [NewAmount] for the list of supported integer-like types.
//
// ParseFraction returns an error if either value cannot be parsed
// or if the denominator is zero.
func ParseFraction(num, den any) (Fraction, error) {
	n, err := parseInteger(num)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing numerator: %w", err)
	}
	d, err := parseInteger(den)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing denominator: %w", err)
	}
	if d.Sign() == 0 {
		return Fraction{}, fmt.Errorf("creating fraction %v/%v: %w", n, d, ErrZeroDenominator)
	}
	return newFractionUnsafe(n, d), nil
}

// newFractionUnsafe takes ownership of num and den without checking them.
func newFractionUnsafe(num, den *big.Int) Fraction {
	return Fraction{n: num, d: den}
}

func (f Fraction) num() *big.Int {
	if f.n == nil {
		return bigZero
	}
	return f.n
}

func (f Fraction) den() *big.Int {
	if f.d == nil {
		return bigOne
	}
	return f.d
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	return new(big.Int).Set(f.num())
}

// Denom returns a copy of the denominator.
func (f Fraction) Denom() *big.Int {
	return new(big.Int).Set(f.den())
}

// Quotient returns num / den truncated toward zero.
func (f Fraction) Quotient() *big.Int {
	return new(big.Int).Quo(f.num(), f.den())
}

// Remainder returns the fraction (num % den) / den, where the remainder has
// the sign of the numerator.
func (f Fraction) Remainder() Fraction {
	r := new(big.Int).Rem(f.num(), f.den())
	return newFractionUnsafe(r, f.Denom())
}

// Invert returns den / num.
//
// Invert returns an error if the fraction is zero.
func (f Fraction) Invert() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, fmt.Errorf("inverting %v: %w", f, ErrZeroDenominator)
	}
	return newFractionUnsafe(f.Denom(), f.Num()), nil
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	return f.num().Sign() * f.den().Sign()
}

// IsZero returns true if the fraction is equal to zero.
func (f Fraction) IsZero() bool {
	return f.num().Sign() == 0
}

// Rat returns the fraction as a new [big.Rat].
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).SetFrac(f.num(), f.den())
}

// String implements the [fmt.Stringer] interface and returns the fraction
// in the "num/den" form.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	return f.num().String() + "/" + f.den().String()
}

// Add returns the exact sum of fractions f and g.
// If both fractions have the same denominator, the result keeps it.
func (f Fraction) Add(g Fraction) Fraction {
	if f.den().Cmp(g.den()) == 0 {
		return newFractionUnsafe(new(big.Int).Add(f.num(), g.num()), f.Denom())
	}
	a := new(big.Int).Mul(f.num(), g.den())
	b := new(big.Int).Mul(g.num(), f.den())
	return newFractionUnsafe(a.Add(a, b), new(big.Int).Mul(f.den(), g.den()))
}

// Sub returns the exact difference between fractions f and g.
// If both fractions have the same denominator, the result keeps it.
func (f Fraction) Sub(g Fraction) Fraction {
	if f.den().Cmp(g.den()) == 0 {
		return newFractionUnsafe(new(big.Int).Sub(f.num(), g.num()), f.Denom())
	}
	a := new(big.Int).Mul(f.num(), g.den())
	b := new(big.Int).Mul(g.num(), f.den())
	return newFractionUnsafe(a.Sub(a, b), new(big.Int).Mul(f.den(), g.den()))
}

// Mul returns the exact product of fractions f and g.
func (f Fraction) Mul(g Fraction) Fraction {
	return newFractionUnsafe(
		new(big.Int).Mul(f.num(), g.num()),
		new(big.Int).Mul(f.den(), g.den()),
	)
}

// Quo returns the exact quotient of fractions f and g.
//
// Quo returns an error if g is zero.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, g, ErrDivisionByZero)
	}
	return newFractionUnsafe(
		new(big.Int).Mul(f.num(), g.den()),
		new(big.Int).Mul(f.den(), g.num()),
	), nil
}

// Cmp compares fractions and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
func (f Fraction) Cmp(g Fraction) int {
	a := new(big.Int).Mul(f.num(), g.den())
	b := new(big.Int).Mul(g.num(), f.den())
	// cross multiplication flips the order for each negative denominator
	return a.Cmp(b) * f.den().Sign() * g.den().Sign()
}

// Equal returns true if fractions represent the same value.
func (f Fraction) Equal(g Fraction) bool {
	return f.Cmp(g) == 0
}

// Less returns true if f < g.
func (f Fraction) Less(g Fraction) bool {
	return f.Cmp(g) < 0
}

// Greater returns true if f > g.
func (f Fraction) Greater(g Fraction) bool {
	return f.Cmp(g) > 0
}

// ToSignificant returns the value of the fraction rounded to the given number
// of significant digits using rounding mode r, and displayed with options opts.
// The result uses plain notation and has no trailing zeros after the
// decimal point:
//
//	1234.5678 to 3 digits, RoundDown    = "1230"
//	1234.5678 to 6 digits, RoundHalfUp  = "1234.57"
//	1.5       to 6 digits, RoundDown    = "1.5"
//
// ToSignificant returns an error if digits is less than 1.
func (f Fraction) ToSignificant(digits int, r Rounding, opts FormatOptions) (string, error) {
	s, err := f.toSignificant(digits, r, opts)
	if err != nil {
		return "", fmt.Errorf("formatting %v to %v significant digits: %w", f, digits, err)
	}
	return s, nil
}

func (f Fraction) toSignificant(digits int, r Rounding, opts FormatOptions) (string, error) {
	if digits < 1 {
		return "", fmt.Errorf("%w: %v significant digits", ErrInvalidPrecision, digits)
	}
	if _, err := r.rounder(); err != nil {
		return "", err
	}
	if f.IsZero() {
		return opts.render(false, "0", ""), nil
	}
	scale := digits - 1 - magnitude(f.num(), f.den())
	d, err := r.quo(f.num(), f.den(), scale)
	if err != nil {
		return "", err
	}
	neg, intPart, fracPart := decParts(d)
	fracPart = strings.TrimRight(fracPart, "0")
	return opts.render(neg, intPart, fracPart), nil
}

// ToFixed returns the value of the fraction rounded to the given number of
// digits after the decimal point using rounding mode r, and displayed with
// options opts. The fractional part is zero-padded to exactly places digits.
//
// ToFixed returns an error if places is negative.
func (f Fraction) ToFixed(places int, r Rounding, opts FormatOptions) (string, error) {
	s, err := f.toFixed(places, r, opts)
	if err != nil {
		return "", fmt.Errorf("formatting %v to %v decimal places: %w", f, places, err)
	}
	return s, nil
}

func (f Fraction) toFixed(places int, r Rounding, opts FormatOptions) (string, error) {
	if places < 0 {
		return "", fmt.Errorf("%w: %v decimal places", ErrInvalidPrecision, places)
	}
	d, err := r.quo(f.num(), f.den(), places)
	if err != nil {
		return "", err
	}
	neg, intPart, fracPart := decParts(d)
	return opts.render(neg, intPart, fracPart), nil
}

// magnitude returns floor(log10(|num / den|)) for a non-zero fraction.
func magnitude(num, den *big.Int) int {
	a := new(big.Int).Abs(num)
	b := new(big.Int).Abs(den)
	e := len(a.String()) - len(b.String())
	// a / b lies within (10^(e-1), 10^(e+1))
	if e >= 0 {
		b.Mul(b, pow10(e))
	} else {
		a.Mul(a, pow10(-e))
	}
	if a.Cmp(b) < 0 {
		e--
	}
	return e
}

// pow10 returns a new integer equal to 10^n.
func pow10(n int) *big.Int {
	return ethmath.BigPow(10, int64(n))
}
