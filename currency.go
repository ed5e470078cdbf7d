package money

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Currency represents either the native currency of a chain or a token
// contract deployed on a chain.
// The zero value is a native currency without symbol and with 0 decimals,
// it is displayed as "XXX", which indicates an unknown currency.
//
// Currency is a comparable value type and is safe for concurrent use by
// multiple goroutines. Use [Currency.Equal] rather than == to compare
// currencies, as tokens are identified by chain and address only.
type Currency struct {
	chain    ChainID        // chain of a token, Unspecified for native currencies
	address  common.Address // contract address of a token
	decimals uint8          // digits after the decimal point of the smallest unit
	symbol   string
	name     string
	token    bool
}

var (
	// ETH is the native currency of Ethereum and the default native currency.
	ETH = NewNativeCurrency(18, "ETH", "Ether")
	// STT is the native currency of the Somnia testnet.
	STT = NewNativeCurrency(18, "STT", "Somnia Testnet Token")
)

// NewNativeCurrency returns a native currency.
// Native currencies are not bound to a contract address.
func NewNativeCurrency(decimals uint8, symbol, name string) Currency {
	return Currency{decimals: decimals, symbol: symbol, name: name}
}

// NewToken returns a token deployed at the given address on the given chain.
func NewToken(chain ChainID, address common.Address, decimals uint8, symbol, name string) Currency {
	return Currency{
		chain:    chain,
		address:  address,
		decimals: decimals,
		symbol:   symbol,
		name:     name,
		token:    true,
	}
}

// ParseToken is like [NewToken] but takes a hex-encoded contract address.
//
// ParseToken returns an error if the address is not a 20-byte hex string.
func ParseToken(chain ChainID, address string, decimals uint8, symbol, name string) (Currency, error) {
	if !common.IsHexAddress(address) {
		return Currency{}, fmt.Errorf("parsing token %q: %w", address, ErrInvalidAddress)
	}
	return NewToken(chain, common.HexToAddress(address), decimals, symbol, name), nil
}

// MustParseToken is like [ParseToken] but panics if the address cannot be parsed.
// It simplifies safe initialization of global variables holding tokens.
func MustParseToken(chain ChainID, address string, decimals uint8, symbol, name string) Currency {
	c, err := ParseToken(chain, address, decimals, symbol, name)
	if err != nil {
		panic(fmt.Sprintf("ParseToken(%v, %q) failed: %v", chain, address, err))
	}
	return c
}

// Decimals returns the number of digits after the decimal point of the
// smallest indivisible unit of the currency.
// For example, 1 wei is 10^-18 ether, so [ETH] has 18 decimals.
func (c Currency) Decimals() int {
	return int(c.decimals)
}

// Symbol returns the ticker symbol of the currency, which may be empty.
func (c Currency) Symbol() string {
	return c.symbol
}

// Name returns the name of the currency, which may be empty.
func (c Currency) Name() string {
	return c.name
}

// ChainID returns the chain of a token.
// For native currencies it returns [Unspecified].
func (c Currency) ChainID() ChainID {
	return c.chain
}

// Address returns the contract address of a token.
// For native currencies it returns the zero address.
func (c Currency) Address() common.Address {
	return c.address
}

// IsToken returns true if the currency is a token contract.
func (c Currency) IsToken() bool {
	return c.token
}

// IsNative returns true if the currency is a native currency.
func (c Currency) IsNative() bool {
	return !c.token
}

// Equal reports whether currencies c and d are the same currency:
//   - two tokens are equal if they are deployed on the same chain at the same address;
//   - a token is never equal to a native currency;
//   - two native currencies are equal if their decimals, symbols and names are equal.
func (c Currency) Equal(d Currency) bool {
	switch {
	case c.IsToken() && d.IsToken():
		return c.chain == d.chain && c.address == d.address
	case c.IsToken() || d.IsToken():
		return false
	default:
		return c.decimals == d.decimals && c.symbol == d.symbol && c.name == d.name
	}
}

// unit returns 10^decimals, the number of smallest units in one whole unit.
func (c Currency) unit() *big.Int {
	return pow10(c.Decimals())
}

// String implements the [fmt.Stringer] interface and returns the symbol of
// the currency. Currencies without a symbol are displayed as "XXX".
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	if c.symbol == "" {
		return "XXX"
	}
	return c.symbol
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | ETH     | Currency        |
//	| %q         | "ETH"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	// Currency symbols
	curr := c.String()
	currlen := len(curr)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + currlen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	buf = appendSpaces(buf, lspaces)
	if lquote > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, curr...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	buf = appendSpaces(buf, tspaces)

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

func appendSpaces(buf []byte, n int) []byte {
	for range n {
		buf = append(buf, ' ')
	}
	return buf
}
