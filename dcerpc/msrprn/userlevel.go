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

// decodePrinterDatatype is the referent of the datatype pointer passed to
// OpenPrinterEx.
func decodePrinterDatatype(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	pos, _, err := d.CVString(buf, off, tree, fieldDatatype)
	return pos, err
}

func decodeUserLevel1(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := uint32Fields(d, buf, off, tree, fieldLevel, fieldUserLevelSize)
	if err != nil {
		return off, err
	}
	if pos, err = d.StrPointer(buf, pos, tree, dcerpc.PointerUnique, "Client", fieldUserLevelClient, 0, nil); err != nil {
		return off, err
	}
	if pos, err = d.StrPointer(buf, pos, tree, dcerpc.PointerUnique, "User", fieldUserLevelUser, 0, nil); err != nil {
		return off, err
	}
	return uint32Fields(d, buf, pos, tree,
		fieldUserLevelBuild, fieldUserLevelMajor, fieldUserLevelMinor, fieldUserLevelProcessor)
}

// decodeUserLevelCtr decodes a SPLCLIENT_CONTAINER. Only level 1 is
// understood.
func decodeUserLevelCtr(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	item := tree.AddText(buf, off, 0, "User level container")
	pos, level, err := d.Uint32(buf, off, item, fieldLevel)
	if err != nil {
		return off, err
	}
	switch level {
	case 1:
		if pos, err = d.Pointer(buf, pos, item, dcerpc.PointerUnique, "User level 1", decodeUserLevel1, nil); err != nil {
			return off, err
		}
	default:
		tree.AddText(buf, pos, 0, "[Info level %d not decoded]", level)
	}
	item.SetLength(pos - off)
	return pos, nil
}
