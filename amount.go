package money

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	bigdecimal "github.com/shopspring/decimal"
	"gopkg.in/inf.v0"
)

// DefaultSignificantDigits is the number of significant digits conventionally
// used to display amounts, see [CurrencyAmount.ToSignificant].
const DefaultSignificantDigits = 6

var errPrecisionLoss = errors.New("precision loss")

// CurrencyAmount type represents an exact amount of a currency.
// It is a fraction raw / 10^decimals, where raw is the amount in the smallest
// indivisible unit of the currency (e.g. wei) and decimals is the number of
// decimals of the currency.
//
// Amounts can only be created by the validating constructors [NewAmount],
// [Native], [Ether], [ParseUnits] and [NewAmountFromDecimal], which require
// the raw amount to be within [0, 2^256).
// Results of [CurrencyAmount.Add] and [CurrencyAmount.Sub] are not
// re-validated and may leave this range, see [CurrencyAmount.InRange].
//
// Its zero value is a zero amount of the zero [Currency].
// CurrencyAmount is designed to be safe for concurrent use by multiple goroutines.
type CurrencyAmount struct {
	curr Currency // currency of the amount
	frac Fraction // raw / 10^decimals
}

// newAmountUnsafe creates a new amount without checking the raw amount.
// It takes ownership of raw.
func newAmountUnsafe(c Currency, raw *big.Int) CurrencyAmount {
	return CurrencyAmount{curr: c, frac: newFractionUnsafe(raw, c.unit())}
}

// newAmountSafe parses an integer-like raw amount and checks that it fits
// into an unsigned 256-bit integer.
func newAmountSafe(c Currency, amount any) (CurrencyAmount, error) {
	raw, err := parseInteger(amount)
	if err != nil {
		return CurrencyAmount{}, err
	}
	if err := checkUint256(raw); err != nil {
		return CurrencyAmount{}, err
	}
	return newAmountUnsafe(c, raw), nil
}

// NewAmount returns an amount of currency curr, where amount is the raw
// amount in the smallest unit of the currency.
// The amount can be given as any integer-like value:
//
//   - string, with an optional sign, in decimal or 0x-prefixed hexadecimal notation;
//   - int, int8, int16, int32, int64;
//   - uint, uint8, uint16, uint32, uint64;
//   - *big.Int, big.Int, *uint256.Int.
//
// NewAmount returns an error if:
//   - the amount cannot be parsed ([ErrParse]);
//   - the amount is negative or does not fit into 256 bits ([ErrAmountOutOfRange]).
func NewAmount(curr Currency, amount any) (CurrencyAmount, error) {
	a, err := newAmountSafe(curr, amount)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("converting %v amount: %w", curr, err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr Currency, amount any) CurrencyAmount {
	a, err := NewAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", curr, amount, err))
	}
	return a
}

// Native returns a raw amount of the native currency of the chain.
// If chain is [Unspecified], [DefaultChain] is used.
// See also function [NativeCurrency].
func Native(amount any, chain ChainID) (CurrencyAmount, error) {
	if chain == Unspecified {
		chain = DefaultChain
	}
	return NewAmount(NativeCurrency(chain), amount)
}

// Ether returns a raw amount of [ETH], in wei, regardless of the chain.
func Ether(amount any) (CurrencyAmount, error) {
	return NewAmount(ETH, amount)
}

// ParseUnits converts a decimal string in whole units of the currency, such
// as "1.5", to an amount. For [ETH], "1.5" is 1500000000000000000 wei.
// Exponential notation ("15e-1") is accepted.
//
// ParseUnits returns an error if:
//   - the string is not a decimal number ([ErrParse]);
//   - the number has more significant digits after the decimal point than the
//     currency has decimals ([ErrDecimalsExceeded]);
//   - the raw amount is negative or does not fit into 256 bits ([ErrAmountOutOfRange]).
func ParseUnits(curr Currency, units string) (CurrencyAmount, error) {
	a, err := parseUnits(curr, units)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("parsing %v units %q: %w", curr, units, err)
	}
	return a, nil
}

func parseUnits(curr Currency, units string) (CurrencyAmount, error) {
	d, err := bigdecimal.NewFromString(units)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("%w: not a decimal number: %v", ErrParse, err)
	}
	d = d.Shift(int32(curr.Decimals()))
	switch {
	case d.IsZero():
		return newAmountUnsafe(curr, new(big.Int)), nil
	case d.Sign() < 0:
		return CurrencyAmount{}, fmt.Errorf("%w: %v is negative", ErrAmountOutOfRange, units)
	case d.NumDigits()+int(d.Exponent()) > maxUint256Digits:
		return CurrencyAmount{}, fmt.Errorf("%w: %v has more than %v integer digits", ErrAmountOutOfRange, units, maxUint256Digits)
	}
	if !d.IsInteger() {
		return CurrencyAmount{}, fmt.Errorf("%w: %v supports %v decimals", ErrDecimalsExceeded, curr, curr.Decimals())
	}
	return newAmountSafe(curr, d.BigInt())
}

// MustParseUnits is like [ParseUnits] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseUnits(curr Currency, units string) CurrencyAmount {
	a, err := ParseUnits(curr, units)
	if err != nil {
		panic(fmt.Sprintf("ParseUnits(%v, %q) failed: %v", curr, units, err))
	}
	return a
}

// NewAmountFromDecimal converts a decimal in whole units of the currency
// to an amount. It follows the same rules as [ParseUnits].
// See also method [CurrencyAmount.Decimal].
func NewAmountFromDecimal(curr Currency, units decimal.Decimal) (CurrencyAmount, error) {
	a, err := parseUnits(curr, units.String())
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("converting %v to %v amount: %w", units, curr, err)
	}
	return a, nil
}

// Currency returns the currency of the amount.
func (a CurrencyAmount) Currency() Currency {
	return a.curr
}

// Decimals returns the number of decimals of the currency of the amount.
func (a CurrencyAmount) Decimals() int {
	return a.curr.Decimals()
}

// Raw returns a copy of the amount in the smallest unit of its currency.
func (a CurrencyAmount) Raw() *big.Int {
	return a.frac.Num()
}

// Fraction returns the amount as the fraction raw / 10^decimals.
func (a CurrencyAmount) Fraction() Fraction {
	if a.frac.d == nil {
		return newFractionUnsafe(a.frac.Num(), a.curr.unit())
	}
	return a.frac
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a CurrencyAmount) Sign() int {
	return a.frac.Sign()
}

// IsZero returns true if the amount is zero.
func (a CurrencyAmount) IsZero() bool {
	return a.frac.IsZero()
}

// InRange returns true if the raw amount is within [0, 2^256).
// This always holds for amounts returned by the constructors, but the results
// of [CurrencyAmount.Add] and [CurrencyAmount.Sub] are not checked.
func (a CurrencyAmount) InRange() bool {
	return checkUint256(a.frac.num()) == nil
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Currency.Equal].
func (a CurrencyAmount) SameCurr(b CurrencyAmount) bool {
	return a.Currency().Equal(b.Currency())
}

// Add returns the exact sum of amounts a and b.
// The result is not checked against the uint256 range.
//
// Add returns an error if amounts are denominated in different currencies.
func (a CurrencyAmount) Add(b CurrencyAmount) (CurrencyAmount, error) {
	if !a.SameCurr(b) {
		return CurrencyAmount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrCurrencyMismatch)
	}
	raw := new(big.Int).Add(a.frac.num(), b.frac.num())
	return newAmountUnsafe(a.Currency(), raw), nil
}

// Sub returns the exact difference between amounts a and b.
// The result is not checked against the uint256 range and can be negative.
//
// Sub returns an error if amounts are denominated in different currencies.
func (a CurrencyAmount) Sub(b CurrencyAmount) (CurrencyAmount, error) {
	if !a.SameCurr(b) {
		return CurrencyAmount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrCurrencyMismatch)
	}
	raw := new(big.Int).Sub(a.frac.num(), b.frac.num())
	return newAmountUnsafe(a.Currency(), raw), nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a CurrencyAmount) Cmp(b CurrencyAmount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.Fraction().Cmp(b.Fraction()), nil
}

// ToSignificant returns the amount rounded to the given number of significant
// digits using rounding mode r. Conventional arguments are
// [DefaultSignificantDigits] and [RoundDown].
// See also method [Fraction.ToSignificant].
//
// ToSignificant returns an error if digits is less than 1.
func (a CurrencyAmount) ToSignificant(digits int, r Rounding, opts FormatOptions) (string, error) {
	s, err := a.Fraction().toSignificant(digits, r, opts)
	if err != nil {
		return "", fmt.Errorf("formatting %v to %v significant digits: %w", a, digits, err)
	}
	return s, nil
}

// ToFixed returns the amount rounded to the given number of digits after
// the decimal point using rounding mode r.
// See also methods [CurrencyAmount.ToFixedCurr] and [Fraction.ToFixed].
//
// ToFixed returns an error if:
//   - places is negative ([ErrInvalidPrecision]);
//   - places is greater than the decimals of the currency ([ErrDecimalsExceeded]).
func (a CurrencyAmount) ToFixed(places int, r Rounding, opts FormatOptions) (string, error) {
	s, err := a.toFixed(places, r, opts)
	if err != nil {
		return "", fmt.Errorf("formatting %v to %v decimal places: %w", a, places, err)
	}
	return s, nil
}

func (a CurrencyAmount) toFixed(places int, r Rounding, opts FormatOptions) (string, error) {
	if places > a.Decimals() {
		return "", fmt.Errorf("%w: %v supports %v decimals", ErrDecimalsExceeded, a.Currency(), a.Decimals())
	}
	return a.Fraction().toFixed(places, r, opts)
}

// ToFixedCurr is like [CurrencyAmount.ToFixed] with places equal to the
// decimals of the currency. Since no digits are dropped, r only matters for
// validation.
func (a CurrencyAmount) ToFixedCurr(r Rounding, opts FormatOptions) (string, error) {
	return a.ToFixed(a.Decimals(), r, opts)
}

// ToExact returns the amount with full precision: the exact quotient
// raw / 10^decimals, without trailing zeros after the decimal point.
// The zero value of [FormatOptions] displays the amount without grouping.
func (a CurrencyAmount) ToExact(opts FormatOptions) string {
	return opts.render(a.exactParts())
}

func (a CurrencyAmount) exactParts() (neg bool, intPart, fracPart string) {
	d := bigdecimal.NewFromBigInt(a.frac.num(), -int32(a.Decimals()))
	return plainParts(d.String())
}

// fixedParts returns the amount truncated or zero-padded to the given number
// of digits after the decimal point.
func (a CurrencyAmount) fixedParts(places int) (neg bool, intPart, fracPart string, err error) {
	x := inf.NewDecBig(a.frac.num(), inf.Scale(a.Decimals()))
	d, err := RoundDown.round(x, places)
	if err != nil {
		return false, "", "", err
	}
	neg, intPart, fracPart = decParts(d)
	return neg, intPart, fracPart, nil
}

// Decimal returns the exact value of the amount in whole units as a decimal.
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the value cannot be represented exactly,
// that is, if it has more than [decimal.MaxPrec] significant digits.
func (a CurrencyAmount) Decimal() (decimal.Decimal, error) {
	s := a.ToExact(FormatOptions{})
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", a, decimal.Decimal{}, err)
	}
	if d.Trim(0).String() != s {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", a, decimal.Decimal{}, errPrecisionLoss)
	}
	return d, nil
}

// String implements the [fmt.Stringer] interface and returns the currency
// symbol followed by the exact amount, for example "ETH 1.5".
// See also methods [CurrencyAmount.ToExact], [CurrencyAmount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a CurrencyAmount) String() string {
	return a.Currency().String() + " " + a.ToExact(FormatOptions{})
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example      | Description                 |
//	| ------ | ------------ | --------------------------- |
//	| %s, %v | ETH 1.5      | Currency and exact amount   |
//	| %q     | "ETH 1.5"    | Quoted currency and amount  |
//	| %f     | 1.5          | Exact amount                |
//	| %.2f   | 1.50         | Amount with 2 decimals      |
//	| %d     | 1500000...   | Raw amount                  |
//	| %c     | ETH          | Currency                    |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb. Digits beyond the precision
// are dropped using [RoundDown], a precision above the decimals of the
// currency pads the amount with zeros.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
//
//gocyclo:ignore
func (a CurrencyAmount) Format(state fmt.State, verb rune) {
	c := a.Currency()

	// Integer and fractional digits
	neg, intdigs, fracdigs := false, "", ""
	switch verb {
	case 'c', 'C':
		// skip
	case 'd', 'D':
		neg = a.Sign() < 0
		intdigs = new(big.Int).Abs(a.frac.num()).String()
	default:
		neg, intdigs, fracdigs = a.exactParts()
		if p, ok := state.Precision(); ok && (verb == 'f' || verb == 'F') {
			if n, i, f, err := a.fixedParts(p); err == nil {
				neg, intdigs, fracdigs = n, i, f
			}
		}
	}

	// Decimal point
	dpoint := 0
	if fracdigs != "" {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if verb != 'c' && verb != 'C' && (neg || state.Flag('+') || state.Flag(' ')) {
		rsign = 1
	}

	// Currency symbol and delimiter
	curr, currdel := "", 0
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		curr = c.String()
	default:
		curr = c.String()
		currdel = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + len(curr) + currdel + rsign + len(intdigs) + dpoint + len(fracdigs) + tquote
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)

	// Leading spaces
	buf = appendSpaces(buf, lspaces)

	// Opening quote
	if lquote > 0 {
		buf = append(buf, '"')
	}

	// Currency symbol and delimiter
	buf = append(buf, curr...)
	if currdel > 0 {
		buf = append(buf, ' ')
	}

	// Arithmetic sign
	if rsign > 0 {
		switch {
		case neg:
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}

	// Leading zeros
	for range lzeros {
		buf = append(buf, '0')
	}

	// Integer digits, decimal point and fractional digits
	buf = append(buf, intdigs...)
	if dpoint > 0 {
		buf = append(buf, '.')
		buf = append(buf, fracdigs...)
	}

	// Closing quote
	if tquote > 0 {
		buf = append(buf, '"')
	}

	// Trailing spaces
	buf = appendSpaces(buf, tspaces)

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.CurrencyAmount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
