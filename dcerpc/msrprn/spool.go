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

// decodeSecDescBuf decodes a SECURITY_CONTAINER: two lengths, an unused
// word and the self-relative descriptor.
func decodeSecDescBuf(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	item := tree.AddText(buf, off, 0, "Security descriptor buffer")
	pos, err := uint32Fields(d, buf, off, item, fieldSecDescBufMaxLen, fieldSecDescBufUndoc)
	if err != nil {
		return off, err
	}
	var length uint32
	if pos, length, err = d.Uint32(buf, pos, item, fieldSecDescBufLen); err != nil {
		return off, err
	}
	if length > 0 {
		if _, err = d.SecurityDescriptor(buf, pos, int(length), item, AccessRights); err != nil {
			return off, err
		}
	}
	pos += int(length)
	item.SetLength(pos - off)
	return pos, nil
}

// decodeSpoolPrinterInfo decodes the PRINTER_CONTAINER of SetPrinter. Only
// level 3 carries anything beyond the level; its pointers are read by hand
// and the referents follow inline.
func decodeSpoolPrinterInfo(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	item := tree.AddText(buf, off, 0, "Spool printer info level")
	pos, level, err := d.Uint32(buf, off, item, fieldLevel)
	if err != nil {
		return off, err
	}
	switch level {
	case 3:
		var devmodePtr, secdescPtr uint32
		if pos, devmodePtr, err = d.Uint32(buf, pos, item, fieldDevmodePtr); err != nil {
			return off, err
		}
		if pos, secdescPtr, err = d.Uint32(buf, pos, item, fieldSecDescPtr); err != nil {
			return off, err
		}
		if devmodePtr != 0 {
			if pos, err = decodeDevmodeCtr(d, buf, pos, item); err != nil {
				return off, err
			}
		}
		if secdescPtr != 0 {
			if pos, err = decodeSecDescBuf(d, buf, pos, item); err != nil {
				return off, err
			}
		}
	default:
		item.AddText(buf, pos, 0, "[Unknown spool printer info level %d]", level)
	}
	item.SetLength(pos - off)
	return pos, nil
}
