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

import "fmt"

// magnitude returns the scaled value of s and the magnitude prefix ("", "K",
// "M", "G", "T", "P" or "E") of the largest unit not exceeding s.
func (s Size) magnitude() (float64, string) {
	v := float64(s)

	switch {
	case s >= SizeExa:
		return v / float64(SizeExa), "E"
	case s >= SizePeta:
		return v / float64(SizePeta), "P"
	case s >= SizeTera:
		return v / float64(SizeTera), "T"
	case s >= SizeGiga:
		return v / float64(SizeGiga), "G"
	case s >= SizeMega:
		return v / float64(SizeMega), "M"
	case s >= SizeKilo:
		return v / float64(SizeKilo), "K"
	default:
		return v, ""
	}
}

// Format renders the scaled magnitude of s using a fmt verb such as
// FormatRound2, without a trailing unit suffix.
func (s Size) Format(format string) string {
	v, _ := s.magnitude()
	return fmt.Sprintf(format, v)
}

// Unit returns the magnitude prefix of s followed by r, or by the package
// default unit (set via SetDefaultUnit, 'B' initially) when r is 0.
func (s Size) Unit(r rune) string {
	if r == 0 {
		r = defaultUnit
	}

	_, prefix := s.magnitude()
	return prefix + string(r)
}

// Code behaves like Unit; it is kept distinct for callers that reason about
// a "unit code" rather than a display suffix.
func (s Size) Code(r rune) string {
	return s.Unit(r)
}

// String formats s with two decimals followed by its unit, e.g. "5.00MB".
func (s Size) String() string {
	return s.Format(FormatRound2) + s.Unit(0)
}

// KiloBytes returns s expressed as a whole number of kilobytes.
func (s Size) KiloBytes() uint64 {
	return uint64(s) / uint64(SizeKilo)
}

// MegaBytes returns s expressed as a whole number of megabytes.
func (s Size) MegaBytes() uint64 {
	return uint64(s) / uint64(SizeMega)
}

// GigaBytes returns s expressed as a whole number of gigabytes.
func (s Size) GigaBytes() uint64 {
	return uint64(s) / uint64(SizeGiga)
}

// TeraBytes returns s expressed as a whole number of terabytes.
func (s Size) TeraBytes() uint64 {
	return uint64(s) / uint64(SizeTera)
}

// PetaBytes returns s expressed as a whole number of petabytes.
func (s Size) PetaBytes() uint64 {
	return uint64(s) / uint64(SizePeta)
}

// ExaBytes returns s expressed as a whole number of exabytes.
func (s Size) ExaBytes() uint64 {
	return uint64(s) / uint64(SizeExa)
}
