package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/somniaswap/money"
	"github.com/spf13/cobra"
)

func newChainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List the supported chains and their native currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tNATIVE")
			for _, c := range money.Chains() {
				fmt.Fprintf(w, "%d\t%v\t%v\n", uint64(c), c, money.NativeCurrency(c))
			}
			a.log.Debug().Int("count", len(money.Chains())).Msg("Listed chains")
			return w.Flush()
		},
	}
}
