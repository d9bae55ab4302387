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

import "reflect"

var sizeType = reflect.TypeOf(Size(0))

// ViperDecoderHook returns a mapstructure.DecodeHookFuncType suitable for
// viper.DecodeHook, converting strings, byte slices and numeric kinds into
// a Size wherever the target field has that type. Any other target type,
// or source value that does not match its declared kind, passes through
// unchanged.
func ViperDecoderHook() func(reflect.Type, reflect.Type, interface{}) (interface{}, error) {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != sizeType {
			return data, nil
		}

		if data == nil {
			return data, nil
		}

		switch from.Kind() {
		case reflect.String:
			str, ok := data.(string)
			if !ok {
				return data, nil
			}

			return Parse(str)

		case reflect.Slice:
			if from.Elem().Kind() != reflect.Uint8 {
				return data, nil
			}

			b, ok := data.([]byte)
			if !ok {
				return data, nil
			}

			return ParseByte(b)

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v := reflect.ValueOf(data)
			if v.Kind() != from.Kind() {
				return data, nil
			}

			return ParseInt64(v.Int()), nil

		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			v := reflect.ValueOf(data)
			if v.Kind() != from.Kind() {
				return data, nil
			}

			return ParseUint64(v.Uint()), nil

		case reflect.Float32, reflect.Float64:
			v := reflect.ValueOf(data)
			if v.Kind() != from.Kind() {
				return data, nil
			}

			return ParseFloat64(v.Float()), nil

		default:
			return data, nil
		}
	}
}
