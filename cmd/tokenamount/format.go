package main

import (
	"fmt"
	"strings"

	"github.com/somniaswap/money"
	"github.com/spf13/cobra"
)

func parseMode(s string) (ModeFlag, error) {
	switch m := ModeFlag(strings.ToLower(s)); m {
	case modeExact, modeFixed, modeSignificant:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode %q, want one of %q, %q, %q", s, modeExact, modeFixed, modeSignificant)
	}
}

func newFormatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <raw amount>",
		Short: "Display a raw amount in whole units of its currency",
		Long: `Display a raw amount, given in the smallest unit of its currency (e.g. wei),
in whole units. The amount can be decimal or 0x-prefixed hexadecimal.

Modes:
  significant  round to --digits significant digits (default)
  fixed        round to --places digits after the decimal point,
               all decimals of the currency if --places is not set
  exact        full precision without trailing zeros`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.format(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	flags := cmd.Flags()
	currencyFlags(flags)
	mode, rounding := modeSignificant, RoundingFlag(money.RoundDown)
	flags.Var(&mode, "mode", "Display mode: significant, fixed or exact")
	flags.Var(&rounding, "rounding", "Rounding mode: down, half-up or up")
	flags.Int("digits", money.DefaultSignificantDigits, "Significant digits in significant mode")
	flags.Int("places", -1, "Digits after the decimal point in fixed mode")
	flags.Bool("show-symbol", false, "Append the currency symbol")
	flags.String("prefix", "", "Text written before the amount")
	flags.String("suffix", "", "Text written after the amount")
	flags.String("decimal-separator", "", "Decimal separator (default \".\")")
	flags.String("group-separator", "", "Separator of integer digit groups, no grouping if empty")
	flags.Int("group-size", 0, "Size of the rightmost integer digit group (default 3)")
	flags.Int("secondary-group-size", 0, "Size of the other integer digit groups (default --group-size)")
	flags.String("fraction-group-separator", "", "Separator of fractional digit groups (default no-break space)")
	flags.Int("fraction-group-size", 0, "Size of fractional digit groups, no grouping if zero")
	return cmd
}

func (a *app) formatOptions() money.FormatOptions {
	return money.FormatOptions{
		Prefix:                 a.v.GetString("prefix"),
		Suffix:                 a.v.GetString("suffix"),
		DecimalSeparator:       a.v.GetString("decimal-separator"),
		GroupSeparator:         a.v.GetString("group-separator"),
		GroupSize:              a.v.GetInt("group-size"),
		SecondaryGroupSize:     a.v.GetInt("secondary-group-size"),
		FractionGroupSeparator: a.v.GetString("fraction-group-separator"),
		FractionGroupSize:      a.v.GetInt("fraction-group-size"),
	}
}

func (a *app) format(raw string) (string, error) {
	amount, err := a.amount(raw)
	if err != nil {
		return "", err
	}
	mode, err := parseMode(a.v.GetString("mode"))
	if err != nil {
		return "", err
	}
	rounding, err := money.ParseRounding(a.v.GetString("rounding"))
	if err != nil {
		return "", err
	}
	opts := a.formatOptions()
	if a.v.GetBool("show-symbol") {
		opts.Suffix += " " + amount.Currency().String()
	}

	a.log.Debug().Stringer("amount", amount).Str("mode", string(mode)).Stringer("rounding", rounding).Msg("Formatting")

	switch mode {
	case modeExact:
		return amount.ToExact(opts), nil
	case modeFixed:
		places := a.v.GetInt("places")
		if places < 0 {
			return amount.ToFixedCurr(rounding, opts)
		}
		return amount.ToFixed(places, rounding, opts)
	default:
		return amount.ToSignificant(a.v.GetInt("digits"), rounding, opts)
	}
}
