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

package msrprn

import (
	"github.com/jfjallid/go-spoolss/dcerpc"
)

const bufferSourceName = "SPOOLSS buffer"

// spoolssBuffer is the payload of a BUFFER. buf is nil when the pointer was
// NULL or the buffer empty.
type spoolssBuffer struct {
	buf  *dcerpc.Buffer
	item *dcerpc.Item
}

// decodeBuffer decodes a unique pointer to a length prefixed byte array and
// exposes the bytes as an independently addressed buffer.
func decodeBuffer(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, *spoolssBuffer, error) {
	b := &spoolssBuffer{}
	data := func(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
		if d.Conformance() {
			return off, nil
		}
		pos, size, err := d.Uint32(buf, off, tree, fieldBufferSize)
		if err != nil {
			return off, err
		}
		if int64(size) > int64(buf.Remaining(pos)) {
			return off, dcerpc.Malformedf("%s: buffer of %d bytes at offset %d exceeds the %d bytes left",
				buf.Name(), size, pos, buf.Remaining(pos))
		}
		raw, err := buf.Bytes(pos, int(size))
		if err != nil {
			return off, err
		}
		item := tree.AddField(fieldBufferData, buf, pos, len(raw), raw)
		if size > 0 {
			sub, err := buf.Sub(bufferSourceName, pos, len(raw))
			if err != nil {
				return off, err
			}
			b.buf = sub
			b.item = item
		}
		return pos + len(raw), nil
	}
	n, err := d.Pointer(buf, off, tree, dcerpc.PointerUnique, "Buffer", data, nil)
	if err != nil {
		return off, nil, err
	}
	return n, b, nil
}

// decodeLevel decodes the single structure of the given level held in b.
func decodeLevel(d *dcerpc.Decoder, b *spoolssBuffer, kind string, level uint32, known bool, lookup func(uint32) (dcerpc.StubDecoder, bool)) error {
	if b.buf == nil {
		return nil
	}
	fn, ok := lookup(level)
	if !known || !ok {
		unknownLevel(b, kind, level, known)
		return nil
	}
	_, err := fn(d, b.buf, 0, b.item)
	return err
}

// decodeLevelList decodes count structures of the given level held in b.
func decodeLevelList(d *dcerpc.Decoder, b *spoolssBuffer, kind string, level uint32, known bool, count uint32, lookup func(uint32) (dcerpc.StubDecoder, bool)) error {
	if b.buf == nil {
		return nil
	}
	fn, ok := lookup(level)
	if !known || !ok {
		unknownLevel(b, kind, level, known)
		return nil
	}
	return decodeList(d, b, count, fn)
}
