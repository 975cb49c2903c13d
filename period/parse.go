// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/chronology/safemath"
)

var ErrInvalidPeriod = errors.New("invalid ISO8601 period")

// consume splits the leading signed integer and its designator from p,
// returning the remainder.
func consume(p string) (int64, byte, string, error) {
	i := 0
	if i < len(p) && (p[i] == '-' || p[i] == '+') {
		i++
	}
	start := i
	for i < len(p) && p[i] >= '0' && p[i] <= '9' {
		i++
	}
	if start == i || i == len(p) {
		return 0, 0, "", fmt.Errorf("invalid number or designator: %q: %w", p, ErrInvalidPeriod)
	}
	n, err := strconv.ParseInt(p[:i], 10, 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid number %q: %w", p[:i], ErrInvalidPeriod)
	}
	return n, p[i], p[i+1:], nil
}

// Parse parses an ISO 8601 period of the form [-]PnYnMnWnDTnHnMn[.f]S
// with integer amounts. A leading '-' negates every component; weeks are
// converted to seven days. Fractions are accepted only on the seconds
// component.
func Parse(val string) (Period, error) {
	v := strings.TrimSpace(val)
	negate := false
	if strings.HasPrefix(v, "-") {
		negate, v = true, v[1:]
	}
	if len(v) < 2 || (v[0] != 'P' && v[0] != 'p') {
		return Zero, fmt.Errorf("%q: %w", val, ErrInvalidPeriod)
	}
	v = v[1:]
	var p Period
	inTime := false
	seen := map[byte]bool{}
	for len(v) > 0 {
		if v[0] == 'T' || v[0] == 't' {
			if inTime {
				return Zero, fmt.Errorf("%q: repeated 'T': %w", val, ErrInvalidPeriod)
			}
			inTime, v = true, v[1:]
			continue
		}
		n, c, rest, err := consume(v)
		if err != nil {
			return Zero, err
		}
		if c == '.' {
			// Fractional seconds: the fraction runs to the mandatory 'S'.
			p.seconds = n
			nanos, r, err := consumeFraction(rest, n < 0 || strings.HasPrefix(v, "-"))
			if err != nil {
				return Zero, err
			}
			p.nanos, rest, c = nanos, r, 'S'
			if !inTime {
				return Zero, fmt.Errorf("%q: seconds before 'T': %w", val, ErrInvalidPeriod)
			}
			v = rest
			if seen['S'] {
				return Zero, fmt.Errorf("%q: repeated designator 'S': %w", val, ErrInvalidPeriod)
			}
			seen['S'] = true
			continue
		}
		key := c
		if inTime && (c == 'M' || c == 'm') {
			key = 'n' // distinguish minutes from months
		}
		key = upper(key)
		if seen[key] {
			return Zero, fmt.Errorf("%q: repeated designator %q: %w", val, string(c), ErrInvalidPeriod)
		}
		seen[key] = true
		switch upper(c) {
		case 'Y':
			p.years = n
		case 'W':
			days, err := safemath.MulInt64(n, 7)
			if err != nil {
				return Zero, err
			}
			if p.days, err = safemath.AddInt64(p.days, days); err != nil {
				return Zero, err
			}
		case 'D':
			var err error
			if p.days, err = safemath.AddInt64(p.days, n); err != nil {
				return Zero, err
			}
		case 'M':
			if inTime {
				p.minutes = n
			} else {
				p.months = n
			}
		case 'H':
			if !inTime {
				return Zero, fmt.Errorf("%q: hours before 'T': %w", val, ErrInvalidPeriod)
			}
			p.hours = n
		case 'S':
			if !inTime {
				return Zero, fmt.Errorf("%q: seconds before 'T': %w", val, ErrInvalidPeriod)
			}
			p.seconds = n
		default:
			return Zero, fmt.Errorf("%q: unknown designator %q: %w", val, string(c), ErrInvalidPeriod)
		}
		v = rest
	}
	if len(seen) == 0 {
		return Zero, fmt.Errorf("%q: no components: %w", val, ErrInvalidPeriod)
	}
	if negate {
		return p.Negated()
	}
	return p, nil
}

// consumeFraction parses the digits following a decimal point up to the
// terminating 'S', scaling to nanoseconds.
func consumeFraction(p string, negative bool) (int64, string, error) {
	i := 0
	for i < len(p) && p[i] >= '0' && p[i] <= '9' {
		i++
	}
	if i == 0 || i > 9 || i == len(p) || upper(p[i]) != 'S' {
		return 0, "", fmt.Errorf("invalid fractional seconds %q: %w", p, ErrInvalidPeriod)
	}
	n, err := strconv.ParseInt(p[:i], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid fractional seconds %q: %w", p[:i], ErrInvalidPeriod)
	}
	for j := i; j < 9; j++ {
		n *= 10
	}
	if negative {
		n = -n
	}
	return n, p[i+1:], nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
