package css

import (
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/domfx/dom/style"
)

// Milliseconds interprets a CSS time value, e.g.
//
//     Milliseconds("300ms") => 300
//     Milliseconds("0.3s")  => 300
//
// Values not ending in "ms" are taken to be seconds. Values without a leading
// number result in 0.
func Milliseconds(p style.Property) float64 {
	s := strings.TrimSpace(p.String())
	x := leadingFloat(s)
	if x == 0 || strings.HasSuffix(s, "ms") {
		return x
	}
	return x * 1000
}

// Duration interprets a CSS time value as a time.Duration.
func Duration(p style.Property) time.Duration {
	return time.Duration(Milliseconds(p) * float64(time.Millisecond))
}

// FormatMilliseconds renders a number of milliseconds as a CSS time value.
func FormatMilliseconds(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64) + "ms"
}

// leadingFloat parses the longest prefix of s which is a decimal number.
func leadingFloat(s string) float64 {
	end, digits := 0, false
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits = true
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			digits = true
		}
	}
	if !digits {
		return 0
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && s[exp] >= '0' && s[exp] <= '9' {
			for exp < len(s) && s[exp] >= '0' && s[exp] <= '9' {
				exp++
			}
			end = exp
		}
	}
	x, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return x
}
