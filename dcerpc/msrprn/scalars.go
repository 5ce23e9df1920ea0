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

// uint32Fields decodes one uint32 per field.
func uint32Fields(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, fields ...*dcerpc.Field) (int, error) {
	var err error
	pos := off
	for _, f := range fields {
		if pos, _, err = d.Uint32(buf, pos, tree, f); err != nil {
			return off, err
		}
	}
	return pos, nil
}

// uint16Fields decodes one uint16 per field.
func uint16Fields(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, fields ...*dcerpc.Field) (int, error) {
	var err error
	pos := off
	for _, f := range fields {
		if pos, _, err = d.Uint16(buf, pos, tree, f); err != nil {
			return off, err
		}
	}
	return pos, nil
}

// relStrFields decodes one relative string per field.
func relStrFields(d *dcerpc.Decoder, buf *dcerpc.Buffer, off, structStart int, tree *dcerpc.Item, fields ...*dcerpc.Field) (int, error) {
	var err error
	pos := off
	for _, f := range fields {
		if pos, _, err = relStr(d, buf, pos, structStart, tree, f); err != nil {
			return off, err
		}
	}
	return pos, nil
}

// hiddenMarker adds an invisible item that lets filters match every PDU of
// a group of operations.
func hiddenMarker(tree *dcerpc.Item, f *dcerpc.Field, buf *dcerpc.Buffer, off int) {
	tree.AddField(f, buf, off, 0, uint32(1)).SetHidden()
}

// levelInfo appends the info level to the summary. Without a level from
// the request it shows Unknown.
func levelInfo(d *dcerpc.Decoder, level uint32, ok bool) {
	if !ok {
		d.Infof(", level Unknown")
		return
	}
	d.Infof(", level %d", level)
}
