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
)

// roundTo kills float64 representation noise (e.g. 10*1.1 != 11.0 exactly)
// before the arithmetic methods apply their ceiling.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func (s *Size) setFromFloat(v float64) bool {
	if v < 0 {
		v = 0
	}

	if v > float64(math.MaxUint64) {
		*s = Size(math.MaxUint64)
		return true
	}

	*s = Size(v)
	return false
}

// MulErr multiplies s by v in place, rounding fractional results up. A
// negative v is treated as zero. It reports an error, and clamps to
// math.MaxUint64, on overflow.
func (s *Size) MulErr(v float64) error {
	if v < 0 {
		v = 0
	}

	result := math.Ceil(roundTo(float64(*s)*v, 6))
	if s.setFromFloat(result) {
		return fmt.Errorf("size: multiplication overflow")
	}

	return nil
}

// Mul is MulErr ignoring the error.
func (s *Size) Mul(v float64) {
	_ = s.MulErr(v)
}

// DivErr divides s by v in place, rounding fractional results up. It
// refuses a non-positive divisor.
func (s *Size) DivErr(v float64) error {
	if v <= 0 {
		return fmt.Errorf("size: invalid diviser %v", v)
	}

	result := math.Ceil(roundTo(float64(*s)/v, 6))
	if s.setFromFloat(result) {
		return fmt.Errorf("size: division overflow")
	}

	return nil
}

// Div is DivErr ignoring the error; s is left unchanged on an invalid
// divisor.
func (s *Size) Div(v float64) {
	_ = s.DivErr(v)
}

// AddErr adds v to s in place, capping at math.MaxUint64 and reporting an
// error on overflow.
func (s *Size) AddErr(v uint64) error {
	cur := uint64(*s)
	sum := cur + v

	if sum < cur {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("size: addition overflow")
	}

	*s = Size(sum)
	return nil
}

// Add is AddErr ignoring the error.
func (s *Size) Add(v uint64) {
	_ = s.AddErr(v)
}

// SubErr subtracts v from s in place, flooring at zero and reporting an
// error when v exceeds the current value.
func (s *Size) SubErr(v uint64) error {
	cur := uint64(*s)

	if v > cur {
		*s = SizeNul
		return fmt.Errorf("size: invalid substractor %d", v)
	}

	*s = Size(cur - v)
	return nil
}

// Sub is SubErr ignoring the error.
func (s *Size) Sub(v uint64) {
	_ = s.SubErr(v)
}
