// Command tokenamount displays raw on-chain token amounts as human-readable
// decimals and converts decimals back to raw amounts.
//
//	tokenamount format 1500000000000000000 --chain somnia-testnet --show-symbol
//	tokenamount parse 1.5 --token 0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48 --decimals 6
//	tokenamount chains
//
// Every flag can also be set in a config file (--config) or in an environment
// variable prefixed with TOKENAMOUNT_, for example TOKENAMOUNT_ROUNDING=half-up.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
