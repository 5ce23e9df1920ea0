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

// decodeFormRel decodes a FORM_1 stored in a buffer with its name given as
// a relative string.
func decodeFormRel(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	structStart := off
	item := tree.AddText(buf, off, 0, "Form")
	pos, _, err := d.Uint32(buf, off, item, fieldFormFlags)
	if err != nil {
		return off, err
	}
	var name string
	if pos, name, err = relStr(d, buf, pos, structStart, item, fieldFormName); err != nil {
		return off, err
	}
	item.AppendText(": %s", name)
	if pos, err = uint32Fields(d, buf, pos, item,
		fieldFormWidth, fieldFormHeight, fieldFormLeft, fieldFormTop, fieldFormHoriz, fieldFormVert); err != nil {
		return off, err
	}
	item.SetLength(pos - structStart)
	return pos, nil
}

// decodeForm1 decodes the FORM_1 of a form container. A request may end
// right after the name.
func decodeForm1(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	item := tree.AddText(buf, off, 0, "Form level 1")
	pos, err := d.StrPointer(buf, off, item, dcerpc.PointerUnique, "Name", fieldFormName, 0, nil)
	if err != nil {
		return off, err
	}
	if buf.Remaining(pos) == 0 {
		item.SetLength(pos - off)
		return pos, nil
	}
	if pos, err = uint32Fields(d, buf, pos, item,
		fieldFormFlags, fieldFormUnknown, fieldFormWidth, fieldFormHeight,
		fieldFormLeft, fieldFormTop, fieldFormHoriz, fieldFormVert); err != nil {
		return off, err
	}
	item.SetLength(pos - off)
	return pos, nil
}

// decodeFormCtr decodes a FORM_CONTAINER.
func decodeFormCtr(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	item := tree.AddText(buf, off, 0, "Form container")
	pos, level, err := d.Uint32(buf, off, item, fieldFormLevel)
	if err != nil {
		return off, err
	}
	switch level {
	case 1:
		if pos, err = decodeForm1(d, buf, pos, item); err != nil {
			return off, err
		}
	default:
		item.AddText(buf, pos, 0, "[Unknown form info level %d]", level)
	}
	item.SetLength(pos - off)
	return pos, nil
}
