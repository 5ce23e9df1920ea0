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
	"fmt"

	"github.com/jfjallid/ndr"
	"github.com/pkg/errors"
)

var (
	ErrShortHeader        = errors.New("PDU shorter than the common header")
	ErrUnsupportedVersion = errors.New("unsupported DCE/RPC version")
	ErrFragmentTooShort   = errors.New("fragment length exceeds available data")
	ErrUnknownContext     = errors.New("unknown presentation context")
)

func boundsError(name string, off, n, size int) error {
	return ndr.Malformed{
		EText: fmt.Sprintf("%s: read of %d bytes at offset %d exceeds buffer length %d", name, n, off, size),
	}
}

// Malformedf returns an error that IsMalformed recognises.
func Malformedf(format string, args ...any) error {
	return ndr.Malformed{EText: fmt.Sprintf(format, args...)}
}

// IsMalformed reports whether err, or anything it wraps, is a truncated or
// otherwise malformed NDR stream.
func IsMalformed(err error) bool {
	var m ndr.Malformed
	return errors.As(err, &m)
}
