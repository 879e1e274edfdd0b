package fare

import (
	"strconv"
	"strings"
)

// Money is an amount in whole Vietnamese dong. VND has no minor unit.
type Money int64

func (m Money) Int64() int64 { return int64(m) }

// String renders 1500000 as "1.500.000đ".
func (m Money) String() string {
	s := strconv.FormatInt(int64(m), 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String() + "đ"
	}
	return b.String() + "đ"
}

func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}
