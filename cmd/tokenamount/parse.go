package main

import (
	"fmt"

	"github.com/somniaswap/money"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <units>",
		Short: "Convert an amount in whole units to the raw amount",
		Long: `Convert an amount in whole units of its currency, such as 1.5, to the raw
amount in the smallest unit of the currency, such as 1500000000000000000 wei.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			curr, err := a.currency()
			if err != nil {
				return err
			}
			amount, err := money.ParseUnits(curr, args[0])
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("amount", amount).Msg("Parsed")
			if a.v.GetBool("hex") {
				fmt.Fprintf(cmd.OutOrStdout(), "%#x\n", amount.Raw())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", amount)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	currencyFlags(flags)
	flags.Bool("hex", false, "Print the raw amount in 0x-prefixed hexadecimal")
	return cmd
}
