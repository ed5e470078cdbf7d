package money

import "strings"

const (
	defaultDecimalSeparator       = "."
	defaultGroupSize              = 3
	defaultFractionGroupSeparator = "\u00a0"
)

// FormatOptions controls how a decimal string is displayed.
// The zero value displays numbers with a "." decimal separator and without
// any digit grouping.
//
//	| Option                 | Zero value means       | Example          |
//	| ---------------------- | ---------------------- | ---------------- |
//	| Prefix                 | no prefix              | "$"              |
//	| Suffix                 | no suffix              | " ETH"           |
//	| DecimalSeparator       | "."                    | ","              |
//	| GroupSeparator         | no integer grouping    | ","              |
//	| GroupSize              | 3                      | 3                |
//	| SecondaryGroupSize     | same as GroupSize      | 2 (1,23,45,678)  |
//	| FractionGroupSeparator | U+00A0 no-break space  | " "              |
//	| FractionGroupSize      | no fraction grouping   | 3                |
//
// The prefix is written before the sign of a negative number.
type FormatOptions struct {
	Prefix                 string
	Suffix                 string
	DecimalSeparator       string
	GroupSeparator         string
	GroupSize              int
	SecondaryGroupSize     int
	FractionGroupSeparator string
	FractionGroupSize      int
}

// render assembles the display string of a number given as its sign,
// integer digits and fractional digits.
func (o FormatOptions) render(neg bool, intPart, fracPart string) string {
	var b strings.Builder
	b.WriteString(o.Prefix)
	if neg {
		b.WriteByte('-')
	}
	o.writeInt(&b, intPart)
	if fracPart != "" {
		if o.DecimalSeparator == "" {
			b.WriteString(defaultDecimalSeparator)
		} else {
			b.WriteString(o.DecimalSeparator)
		}
		o.writeFrac(&b, fracPart)
	}
	b.WriteString(o.Suffix)
	return b.String()
}

// writeInt groups integer digits from the right. The rightmost group has
// GroupSize digits, the groups to its left have SecondaryGroupSize digits.
func (o FormatOptions) writeInt(b *strings.Builder, digits string) {
	primary := o.GroupSize
	if primary <= 0 {
		primary = defaultGroupSize
	}
	secondary := o.SecondaryGroupSize
	if secondary <= 0 {
		secondary = primary
	}
	if o.GroupSeparator == "" || len(digits) <= primary {
		b.WriteString(digits)
		return
	}
	head, tail := digits[:len(digits)-primary], digits[len(digits)-primary:]
	first := len(head) % secondary
	if first == 0 {
		first = secondary
	}
	b.WriteString(head[:first])
	for i := first; i < len(head); i += secondary {
		b.WriteString(o.GroupSeparator)
		b.WriteString(head[i : i+secondary])
	}
	b.WriteString(o.GroupSeparator)
	b.WriteString(tail)
}

// writeFrac groups fractional digits from the left.
func (o FormatOptions) writeFrac(b *strings.Builder, digits string) {
	size := o.FractionGroupSize
	if size <= 0 || len(digits) <= size {
		b.WriteString(digits)
		return
	}
	sep := o.FractionGroupSeparator
	if sep == "" {
		sep = defaultFractionGroupSeparator
	}
	for i := 0; i < len(digits); i += size {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i:min(i+size, len(digits))])
	}
}

// plainParts splits a plain decimal string such as "-12.345" into its sign,
// integer digits and fractional digits.
func plainParts(s string) (neg bool, intPart, fracPart string) {
	if strings.HasPrefix(s, "-") {
		neg, s = true, s[1:]
	}
	intPart, fracPart, _ = strings.Cut(s, ".")
	if strings.Trim(intPart, "0") == "" && strings.Trim(fracPart, "0") == "" {
		neg = false
	}
	return neg, intPart, fracPart
}
