package utils

import (
	"strconv"
	"strings"
)

// FormatSalary renders a yearly amount with thousand separators: 45000 -> "45 000".
func FormatSalary(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + formatThousand(amount, ' ')
}

func formatThousand(n int64, sep byte) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(sep)
		}
		out.WriteRune(c)
	}
	return out.String()
}
