/*
Package money implements exact amounts of on-chain currencies and tokens.
Amounts are rational numbers over arbitrary-precision integers and are never
converted to binary floating-point numbers, so no precision is lost in
arithmetic, comparison, or string rendering.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Exact fractions with arithmetic and comparison operations
  - Amounts bound to a currency, with same-currency arithmetic
  - Validation of raw amounts against the uint256 range
  - Significant-digit, fixed-decimal, and exact decimal rendering
  - Explicit rounding modes and digit-grouping display options
  - Native currency resolution by chain id

# Representation

The package consists of three main types: Fraction, Currency and CurrencyAmount.
A [Fraction] is a pair of [math/big.Int] values, numerator and denominator.
A [Currency] is either the native currency of a chain, such as [ETH], or a
token contract, and carries the number of decimals of its smallest unit.
A [CurrencyAmount] combines a Currency and a Fraction raw / 10^decimals,
where raw is the amount in the smallest unit of the currency (e.g. wei).

# Supported Ranges

Fractions are unbounded.
CurrencyAmount constructors only accept raw amounts within [0, 2^256), the
range of the Solidity uint256 type. Sums and differences of amounts are not
re-validated; use [CurrencyAmount.InRange] to check them.

# Rounding

Amounts and fractions are displayed with [RoundDown], [RoundHalfUp], or
[RoundUp]. The rounding mode and the number of digits are always explicit
arguments; there is no package-level precision setting.

# Errors

Every failure is reported as an error wrapping one of the exported Err*
values, such as [ErrCurrencyMismatch] or [ErrAmountOutOfRange]. Use
[errors.Is] to tell them apart. The Must* functions panic instead.
*/
package money
