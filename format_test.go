package money

import "testing"

func TestFormatOptions_render(t *testing.T) {
	tests := []struct {
		opts              FormatOptions
		neg               bool
		intPart, fracPart string
		want              string
	}{
		// Zero value
		{FormatOptions{}, false, "1234567", "891", "1234567.891"},
		{FormatOptions{}, true, "1234567", "", "-1234567"},
		{FormatOptions{}, false, "0", "", "0"},
		// Integer grouping
		{FormatOptions{GroupSeparator: ","}, false, "123", "", "123"},
		{FormatOptions{GroupSeparator: ","}, false, "1234", "", "1,234"},
		{FormatOptions{GroupSeparator: ","}, false, "1234567", "891", "1,234,567.891"},
		{FormatOptions{GroupSeparator: ","}, true, "123456", "5", "-123,456.5"},
		{FormatOptions{GroupSeparator: ",", SecondaryGroupSize: 2}, false, "1234567", "", "12,34,567"},
		{FormatOptions{GroupSeparator: ",", SecondaryGroupSize: 2}, false, "123456789012", "", "1,23,45,67,89,012"},
		{FormatOptions{GroupSeparator: " ", GroupSize: 4}, false, "123456789", "", "1 2345 6789"},
		{FormatOptions{GroupSize: 4}, false, "123456789", "", "123456789"},
		// Decimal separator
		{FormatOptions{DecimalSeparator: ","}, false, "1", "5", "1,5"},
		{FormatOptions{GroupSeparator: ".", DecimalSeparator: ","}, false, "1234567", "891", "1.234.567,891"},
		// Fraction grouping
		{FormatOptions{FractionGroupSize: 3}, false, "0", "1234567", "0.123\u00a0456\u00a07"},
		{FormatOptions{FractionGroupSize: 3, FractionGroupSeparator: " "}, false, "0", "123456", "0.123 456"},
		{FormatOptions{FractionGroupSize: 3, FractionGroupSeparator: " "}, false, "0", "123", "0.123"},
		{FormatOptions{FractionGroupSeparator: " "}, false, "0", "123456", "0.123456"},
		// Prefix and suffix
		{FormatOptions{Prefix: "$"}, true, "12", "", "$-12"},
		{FormatOptions{Suffix: " ETH"}, false, "1", "5", "1.5 ETH"},
		{FormatOptions{Prefix: "~", Suffix: " STT", GroupSeparator: ","}, false, "1000", "25", "~1,000.25 STT"},
	}
	for _, tt := range tests {
		got := tt.opts.render(tt.neg, tt.intPart, tt.fracPart)
		if got != tt.want {
			t.Errorf("%+v.render(%v, %q, %q) = %q, want %q", tt.opts, tt.neg, tt.intPart, tt.fracPart, got, tt.want)
		}
	}
}

func TestPlainParts(t *testing.T) {
	tests := []struct {
		s                 string
		neg               bool
		intPart, fracPart string
	}{
		{"-12.345", true, "12", "345"},
		{"12.345", false, "12", "345"},
		{"12", false, "12", ""},
		{"0", false, "0", ""},
		{"-0", false, "0", ""},
		{"-0.000", false, "0", "000"},
		{"-0.001", true, "0", "001"},
	}
	for _, tt := range tests {
		neg, intPart, fracPart := plainParts(tt.s)
		if neg != tt.neg || intPart != tt.intPart || fracPart != tt.fracPart {
			t.Errorf("plainParts(%q) = %v, %q, %q, want %v, %q, %q", tt.s, neg, intPart, fracPart, tt.neg, tt.intPart, tt.fracPart)
		}
	}
}
