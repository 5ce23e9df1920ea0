// MIT License
//
// # Copyright (c) 2025 Jimmy Fjällid
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package dcerpc

import (
	"encoding/binary"
	"unicode/utf16"
)

// UTF16ToString decodes buf as UTF-16 in the given byte order and drops any
// trailing NUL characters. An odd trailing byte is ignored.
func UTF16ToString(buf []byte, order binary.ByteOrder) string {
	units := make([]uint16, len(buf)/2)
	for i := range units {
		units[i] = order.Uint16(buf[i*2:])
	}
	for len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	return string(utf16.Decode(units))
}

// UTF16Terminated decodes UTF-16 from buf up to the first NUL character or
// the end of buf. It returns the string and the number of characters before
// the terminator.
func UTF16Terminated(buf []byte, order binary.ByteOrder) (string, int) {
	units := make([]uint16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		u := order.Uint16(buf[i:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units)), len(units)
}

// ToUnicode encodes s as UTF-16LE without a terminator.
func ToUnicode(input string) []byte {
	codePoints := utf16.Encode([]rune(input))
	b := make([]byte, len(codePoints)*2)
	for i, c := range codePoints {
		le.PutUint16(b[i*2:], c)
	}
	return b
}
