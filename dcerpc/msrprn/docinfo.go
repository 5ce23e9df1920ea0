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

func decodeDocInfo1(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	item := tree.AddText(buf, off, 0, "Document info level 1")
	pos, err := d.StrPointer(buf, off, item, dcerpc.PointerUnique, "Document name", fieldDocumentName, 0, nil)
	if err != nil {
		return off, err
	}
	if pos, err = d.StrPointer(buf, pos, item, dcerpc.PointerUnique, "Output file", fieldOutputFile, 0, nil); err != nil {
		return off, err
	}
	if pos, err = d.StrPointer(buf, pos, item, dcerpc.PointerUnique, "Data type", fieldDatatype, 0, nil); err != nil {
		return off, err
	}
	item.SetLength(pos - off)
	return pos, nil
}

// docInfoData returns the referent of the DOC_INFO union arm selected by
// level.
func docInfoData(level uint32) dcerpc.Referent {
	return func(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
		if d.Conformance() {
			return off, nil
		}
		if level != 1 {
			tree.AddText(buf, off, 0, "[Unknown documentinfo level %d]", level)
			return off, nil
		}
		return decodeDocInfo1(d, buf, off, tree)
	}
}

// decodeDocInfoCtr decodes the DOC_INFO_CONTAINER passed to StartDocPrinter.
func decodeDocInfoCtr(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	ctr := tree.AddText(buf, off, 0, "Document info container")
	pos, _, err := d.Uint32(buf, off, ctr, fieldLevel)
	if err != nil {
		return off, err
	}
	info := ctr.AddText(buf, pos, 0, "Document info")
	infoStart := pos
	var level uint32
	if pos, level, err = d.Uint32(buf, pos, info, fieldLevel); err != nil {
		return off, err
	}
	if pos, err = d.Pointer(buf, pos, info, dcerpc.PointerUnique, "Document info", docInfoData(level), nil); err != nil {
		return off, err
	}
	info.SetLength(pos - infoStart)
	ctr.SetLength(pos - off)
	return pos, nil
}
