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

// Buffer is an immutable view of the octets being decoded. Offsets handed to
// and returned by the decode functions are always relative to the start of
// the Buffer they refer to.
type Buffer struct {
	name string
	data []byte
}

func NewBuffer(name string, data []byte) *Buffer {
	return &Buffer{name: name, data: data}
}

func (self *Buffer) Name() string {
	return self.name
}

func (self *Buffer) Len() int {
	return len(self.data)
}

// Remaining returns the number of bytes left after off, or 0 if off lies
// outside the buffer.
func (self *Buffer) Remaining(off int) int {
	if off < 0 || off >= len(self.data) {
		return 0
	}
	return len(self.data) - off
}

// Bytes returns n bytes starting at off without copying them.
func (self *Buffer) Bytes(off, n int) ([]byte, error) {
	if err := self.check(off, n); err != nil {
		return nil, err
	}
	return self.data[off : off+n], nil
}

// Sub carves out an independently addressed buffer covering n bytes at off.
func (self *Buffer) Sub(name string, off, n int) (*Buffer, error) {
	if err := self.check(off, n); err != nil {
		log.Debugf("cannot create sub buffer %q: %v\n", name, err)
		return nil, err
	}
	return &Buffer{name: name, data: self.data[off : off+n]}, nil
}

func (self *Buffer) check(off, n int) error {
	if off < 0 || n < 0 || off > len(self.data) || n > len(self.data)-off {
		return boundsError(self.name, off, n, len(self.data))
	}
	return nil
}
