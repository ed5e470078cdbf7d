package money

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// parseInteger converts an integer-like value to a new big integer.
// The following types are supported:
//
//   - string, with an optional sign, in decimal or 0x-prefixed hexadecimal notation;
//   - int, int8, int16, int32, int64;
//   - uint, uint8, uint16, uint32, uint64;
//   - *big.Int, big.Int, *uint256.Int.
//
// parseInteger never returns a pointer shared with its argument.
func parseInteger(v any) (*big.Int, error) {
	switch v := v.(type) {
	case string:
		return parseIntegerString(v)
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("%w: nil %T", ErrParse, v)
		}
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case *uint256.Int:
		if v == nil {
			return nil, fmt.Errorf("%w: nil %T", ErrParse, v)
		}
		return v.ToBig(), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	default:
		return nil, fmt.Errorf("%w: type %T is not supported", ErrParse, v)
	}
}

func parseIntegerString(s string) (*big.Int, error) {
	body, neg := s, false
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}
	base := 10
	if len(body) > 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		base = 16
		body = body[2:]
	}
	// big.Int.SetString accepts its own sign, which must not follow ours
	if body == "" || body[0] == '+' || body[0] == '-' {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	x, ok := new(big.Int).SetString(body, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	if neg {
		x.Neg(x)
	}
	return x, nil
}

// maxUint256Digits is the number of decimal digits of 2^256 - 1.
const maxUint256Digits = 78

// checkUint256 returns an error if x is not within [0, 2^256).
func checkUint256(x *big.Int) error {
	if x.Sign() < 0 {
		return fmt.Errorf("%w: amount is negative", ErrAmountOutOfRange)
	}
	if _, overflow := uint256.FromBig(x); overflow {
		return fmt.Errorf("%w: amount has %v bits", ErrAmountOutOfRange, x.BitLen())
	}
	return nil
}
