package main

import (
	"fmt"
	"math"

	"github.com/somniaswap/money"
	"github.com/spf13/pflag"
)

// currencyFlags declares the flags selecting the currency of an amount.
// Without --token the native currency of --chain is used.
func currencyFlags(flags *pflag.FlagSet) {
	chain := ChainFlag(money.Unspecified)
	flags.Var(&chain, "chain", "Chain name or id; selects the native currency and the chain of --token")
	flags.String("token", "", "Token contract address (hex)")
	flags.Uint8("decimals", 18, "Decimals of --token")
	flags.String("symbol", "", "Symbol of --token")
	flags.String("name", "", "Name of --token")
}

func (a *app) chain() (money.ChainID, error) {
	return money.ParseChainID(a.v.GetString("chain"))
}

func (a *app) token(chain money.ChainID) (money.Currency, error) {
	decimals := a.v.GetUint("decimals")
	if decimals > math.MaxUint8 {
		return money.Currency{}, fmt.Errorf("decimals %v is out of range [0, %v]", decimals, math.MaxUint8)
	}
	curr, err := money.ParseToken(chain, a.v.GetString("token"), uint8(decimals), a.v.GetString("symbol"), a.v.GetString("name"))
	if err != nil {
		return money.Currency{}, err
	}
	a.log.Debug().Stringer("chain", chain).Str("address", curr.Address().Hex()).Int("decimals", curr.Decimals()).Msg("Resolved token")
	return curr, nil
}

// currency resolves the currency selected by the currency flags.
func (a *app) currency() (money.Currency, error) {
	chain, err := a.chain()
	if err != nil {
		return money.Currency{}, err
	}
	if a.v.GetString("token") != "" {
		return a.token(chain)
	}
	if chain == money.Unspecified {
		chain = money.DefaultChain
	}
	curr := money.NativeCurrency(chain)
	a.log.Debug().Stringer("chain", chain).Stringer("currency", curr).Msg("Resolved native currency")
	return curr, nil
}

// amount returns the raw amount in the currency selected by the currency flags.
func (a *app) amount(raw string) (money.CurrencyAmount, error) {
	chain, err := a.chain()
	if err != nil {
		return money.CurrencyAmount{}, err
	}
	if a.v.GetString("token") == "" {
		amount, err := money.Native(raw, chain)
		if err != nil {
			return money.CurrencyAmount{}, err
		}
		a.log.Debug().Stringer("chain", chain).Stringer("currency", amount.Currency()).Msg("Resolved native currency")
		return amount, nil
	}
	curr, err := a.token(chain)
	if err != nil {
		return money.CurrencyAmount{}, err
	}
	return money.NewAmount(curr, raw)
}
