package main

import "github.com/somniaswap/money"

type RoundingFlag money.Rounding

func (f *RoundingFlag) Type() string { return "rounding" }

func (f *RoundingFlag) String() string { return money.Rounding(*f).String() }

func (f *RoundingFlag) Set(s string) error {
	r, err := money.ParseRounding(s)
	if err != nil {
		return err
	}
	*f = RoundingFlag(r)
	return nil
}

type ChainFlag money.ChainID

func (f *ChainFlag) Type() string { return "chain" }

func (f *ChainFlag) String() string { return money.ChainID(*f).String() }

func (f *ChainFlag) Set(s string) error {
	c, err := money.ParseChainID(s)
	if err != nil {
		return err
	}
	*f = ChainFlag(c)
	return nil
}

type ModeFlag string

const (
	modeExact       ModeFlag = "exact"
	modeFixed       ModeFlag = "fixed"
	modeSignificant ModeFlag = "significant"
)

func (f *ModeFlag) Type() string { return "mode" }

func (f *ModeFlag) String() string { return string(*f) }

func (f *ModeFlag) Set(s string) error {
	m, err := parseMode(s)
	if err != nil {
		return err
	}
	*f = m
	return nil
}
