/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

package size

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberExpr = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?`)
	unitExpr   = regexp.MustCompile(`(?i)^[A-Za-z]*`)
)

func unitMultiplier(unit string) (float64, bool) {
	switch strings.ToUpper(unit) {
	case "B":
		return 1, true
	case "K", "KB", "KIB":
		return float64(SizeKilo), true
	case "M", "MB", "MIB":
		return float64(SizeMega), true
	case "G", "GB", "GIB":
		return float64(SizeGiga), true
	case "T", "TB", "TIB":
		return float64(SizeTera), true
	case "P", "PB", "PIB":
		return float64(SizePeta), true
	case "E", "EB", "EIB":
		return float64(SizeExa), true
	default:
		return 0, false
	}
}

// Parse interprets a human size string such as "5MB", "1.5GiB" or a
// compound form such as "1GB500MB" and returns the resulting Size.
func Parse(s string) (Size, error) {
	raw := strings.TrimSpace(s)

	if len(raw) >= 2 {
		if (raw[0] == '"' && raw[len(raw)-1] == '"') || (raw[0] == '\'' && raw[len(raw)-1] == '\'') {
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
		}
	}

	if raw == "" {
		return 0, fmt.Errorf("invalid size: empty input %q", s)
	}

	if raw[0] == '-' {
		return 0, fmt.Errorf("invalid size: negative values are not supported in %q", s)
	}

	if raw[0] == '+' {
		raw = strings.TrimSpace(raw[1:])
	}

	var (
		total   float64
		matched bool
	)

	for raw != "" {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			break
		}

		numLoc := numberExpr.FindStringIndex(raw)
		if numLoc == nil {
			return 0, fmt.Errorf("invalid size: missing number in %q", s)
		}

		numStr := raw[numLoc[0]:numLoc[1]]
		rest := raw[numLoc[1]:]

		unitLoc := unitExpr.FindStringIndex(rest)
		unitStr := rest[unitLoc[0]:unitLoc[1]]
		rest = rest[unitLoc[1]:]

		if unitStr == "" {
			return 0, fmt.Errorf("invalid size: missing unit in %q", s)
		}

		mult, ok := unitMultiplier(unitStr)
		if !ok {
			return 0, fmt.Errorf("invalid size: unknown unit %q in %q", unitStr, s)
		}

		num, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid size: %w", err)
		}

		total += num * mult
		if total > float64(math.MaxUint64) {
			return 0, fmt.Errorf("invalid size: value overflow in %q", s)
		}

		matched = true
		raw = rest
	}

	if !matched {
		return 0, fmt.Errorf("invalid size: missing number in %q", s)
	}

	return Size(total), nil
}

// ParseByte is Parse applied to a byte slice.
func ParseByte(b []byte) (Size, error) {
	return Parse(string(b))
}

// ParseSize is a deprecated alias of Parse.
//
// Deprecated: use Parse.
func ParseSize(s string) (Size, error) {
	return Parse(s)
}

// ParseByteAsSize is a deprecated alias of ParseByte.
//
// Deprecated: use ParseByte.
func ParseByteAsSize(b []byte) (Size, error) {
	return ParseByte(b)
}

// GetSize is a deprecated, panic-free variant of Parse.
//
// Deprecated: use Parse.
func GetSize(s string) (Size, bool) {
	v, err := Parse(s)
	if err != nil {
		return SizeNul, false
	}

	return v, true
}
