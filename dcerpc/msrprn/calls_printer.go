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

func decodeStatus(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, err := d.DosError(buf, off, tree, fieldRC)
	return pos, err
}

// decodeNamedHandle decodes a policy handle and appends its name, if one
// is known, to the summary.
func decodeNamedHandle(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, closing bool) (int, error) {
	pos, h, err := d.PolicyHandle(buf, off, tree, fieldHnd, closing)
	if err != nil {
		return off, err
	}
	if name, ok := d.HandleName(h); ok {
		d.Infof(", %s", name)
	}
	return pos, nil
}

func decodeHandle(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, err := d.PolicyHandle(buf, off, tree, fieldHnd, false)
	return pos, err
}

// handleResponse decodes the handle and status of a response. Handles
// returned with a zero status are named by name(pending, ok).
func handleResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, name func(pending string, ok bool) (string, bool)) (int, error) {
	h, err := d.PeekPolicyHandle(buf, off)
	if err != nil {
		return off, err
	}
	status, err := d.PeekUint32(buf, dcerpc.Align(off, 4)+len(h))
	if err != nil {
		return off, err
	}
	if status == 0 {
		pending, ok := d.Call().PendingName()
		if label, store := name(pending, ok); store {
			d.StoreHandleName(h, label)
			d.Call().Clear()
		}
	}
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

// genericResponse decodes responses of operations without a dedicated
// decoder. Only the trailing status code is shown.
func genericResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	tree.AddText(buf, off, 0, "[Unimplemented dissector: SPOOLSS]")
	if buf.Len() < 4 {
		return off, dcerpc.Malformedf("%s: %d bytes is too short for a status code", buf.Name(), buf.Len())
	}
	return decodeStatus(d, buf, buf.Len()-4, tree)
}

func enumPrintersRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, _, err := d.Bitmask(buf, off, tree, fieldEnumPrintersFlags, enumPrintersFlagFields)
	if err != nil {
		return off, err
	}
	if pos, err = d.StrPointer(buf, pos, tree, dcerpc.PointerUnique, "Server name", fieldServerName, 0, nil); err != nil {
		return off, err
	}
	var level uint32
	if pos, level, err = d.Uint32(buf, pos, tree, fieldLevel); err != nil {
		return off, err
	}
	d.Call().SetLevel(level)
	d.Infof(", level %d", level)
	if pos, _, err = decodeBuffer(d, buf, pos, tree); err != nil {
		return off, err
	}
	pos, _, err = d.Uint32(buf, pos, tree, fieldOffered)
	return pos, err
}

func enumPrintersResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	level, ok := d.Call().Level()
	levelInfo(d, level, ok)
	pos, b, err := decodeBuffer(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded); err != nil {
		return off, err
	}
	var count uint32
	if pos, count, err = d.Uint32(buf, pos, tree, fieldReturned); err != nil {
		return off, err
	}
	if err = decodePrinterInfoList(d, b, level, ok, count); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func openPrinterExRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	store := func(name string) {
		d.Infof(", %s", name)
		d.Call().SetPendingName(name)
	}
	pos, err := d.StrPointer(buf, off, tree, dcerpc.PointerUnique, "Printer name", fieldPrinterName, 1, store)
	if err != nil {
		return off, err
	}
	if pos, err = d.Pointer(buf, pos, tree, dcerpc.PointerUnique, "Printer datatype", decodePrinterDatatype, nil); err != nil {
		return off, err
	}
	if pos, err = decodeDevmodeCtr(d, buf, pos, tree); err != nil {
		return off, err
	}
	if pos, _, err = d.AccessMask(buf, pos, tree, fieldAccessRequired, AccessRights); err != nil {
		return off, err
	}
	return decodeUserLevelCtr(d, buf, pos, tree)
}

func openPrinterExResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return handleResponse(d, buf, off, tree, func(pending string, ok bool) (string, bool) {
		return "OpenPrinterEx(" + pending + ")", ok
	})
}

func addPrinterExResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return handleResponse(d, buf, off, tree, func(pending string, ok bool) (string, bool) {
		if ok {
			d.Infof(", %s", pending)
		}
		return pending, ok
	})
}

func closePrinterRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return decodeNamedHandle(d, buf, off, tree, true)
}

// handleStatusResponse decodes responses carrying a handle and a status.
func handleStatusResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func getPrinterRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var level uint32
	if pos, level, err = d.Uint32(buf, pos, tree, fieldLevel); err != nil {
		return off, err
	}
	d.Infof(", level %d", level)
	d.Call().SetLevel(level)
	if pos, _, err = decodeBuffer(d, buf, pos, tree); err != nil {
		return off, err
	}
	pos, _, err = d.Uint32(buf, pos, tree, fieldOffered)
	return pos, err
}

func getPrinterResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	level, ok := d.Call().Level()
	levelInfo(d, level, ok)
	pos, b, err := decodeBuffer(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if err = decodePrinterInfo(d, b, level, ok); err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func setPrinterRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var level uint32
	if pos, level, err = d.Uint32(buf, pos, tree, fieldLevel); err != nil {
		return off, err
	}
	d.Infof(", level %d", level)
	d.Call().SetLevel(level)
	if pos, err = decodeSpoolPrinterInfo(d, buf, pos, tree); err != nil {
		return off, err
	}
	pos, _, err = d.Uint32(buf, pos, tree, fieldSetPrinterCmd)
	return pos, err
}

func deletePrinterRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return decodeHandle(d, buf, off, tree)
}

func replyOpenPrinterRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, name, err := d.CVString(buf, off, tree, fieldServerName)
	if err != nil {
		return off, err
	}
	d.Infof(", %s", name)
	if _, ok := d.Call().PendingName(); !ok {
		d.Call().SetPendingName(name)
	}
	return uint32Fields(d, buf, pos, tree,
		fieldPrinterLocal, fieldPrinterDataType, fieldReplyOpenUnknown0, fieldReplyOpenUnknown1)
}

func replyOpenPrinterResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return handleResponse(d, buf, off, tree, func(pending string, ok bool) (string, bool) {
		if !ok {
			return "ReplyOpenPrinter handle", true
		}
		return "ReplyOpenPrinter(" + pending + ")", true
	})
}

func replyClosePrinterRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, err := d.PolicyHandle(buf, off, tree, fieldHnd, true)
	return pos, err
}
