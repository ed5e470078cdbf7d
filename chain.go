package money

import (
	"database/sql/driver"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

//go:generate go run scripts/chain/codegen.go

// ChainID identifies an EVM network by its [EIP-155] chain id.
// The zero value is [Unspecified].
//
// The supported chains are listed in chain_data.go, which is generated from
// scripts/chain/chain_data.csv. Other chain ids can still be represented,
// they resolve to the default native currency.
//
// [EIP-155]: https://eips.ethereum.org/EIPS/eip-155
type ChainID uint64

// Unspecified is the zero ChainID, meaning that no chain was selected.
const Unspecified ChainID = 0

// DefaultChain is the chain used by [Native] when no chain is specified.
// Its native currency is [ETH].
const DefaultChain = Mainnet

// NativeCurrency returns the native currency of the chain.
// It returns [ETH] for every chain that does not have its own native currency,
// including [Unspecified] and unsupported chain ids.
func NativeCurrency(chain ChainID) Currency {
	if c, ok := nativeLookup[chain]; ok {
		return c
	}
	return ETH
}

// ParseChainID converts a string to a chain id.
// The input string must be either a decimal chain id or a chain name:
//
//	1
//	mainnet
//	50312
//	somnia-testnet
//
// Chain names are case-insensitive.
// ParseChainID returns an error if the string is neither.
func ParseChainID(s string) (ChainID, error) {
	if c, ok := chainLookup[strings.ToLower(s)]; ok {
		return c, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Unspecified, fmt.Errorf("parsing %q: %w", s, ErrInvalidChain)
	}
	return ChainID(id), nil
}

// MustParseChainID is like [ParseChainID] but panics if the string cannot be parsed.
func MustParseChainID(s string) ChainID {
	c, err := ParseChainID(s)
	if err != nil {
		panic(fmt.Sprintf("ParseChainID(%q) failed: %v", s, err))
	}
	return c
}

// Chains returns the supported chain ids in ascending order.
func Chains() []ChainID {
	ids := make([]ChainID, 0, len(nameLookup))
	for id := range nameLookup {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsSupported returns true if the chain id is listed in the chain table.
func (c ChainID) IsSupported() bool {
	_, ok := nameLookup[c]
	return ok
}

// Name returns the name of a supported chain, or an empty string.
func (c ChainID) Name() string {
	return nameLookup[c]
}

// String implements the [fmt.Stringer] interface and returns the name of a
// supported chain or the decimal chain id otherwise.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c ChainID) String() string {
	if name, ok := nameLookup[c]; ok {
		return name
	}
	return strconv.FormatUint(uint64(c), 10)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the decimal chain id.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c ChainID) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c), 10), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseChainID].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *ChainID) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseChainID(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Unspecified, err)
	}
	return nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *ChainID) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		if value < 0 {
			err = fmt.Errorf("%w: negative id %v", ErrInvalidChain, value)
			break
		}
		*c = ChainID(value)
	case string:
		*c, err = ParseChainID(value)
	case []byte:
		*c, err = ParseChainID(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values", Unspecified)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Unspecified, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c ChainID) Value() (driver.Value, error) {
	if uint64(c) > math.MaxInt64 {
		return nil, fmt.Errorf("converting %T to driver value: %w: %d overflows int64", c, ErrInvalidChain, uint64(c))
	}
	return int64(c), nil
}
