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

func rffpcnexRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var flags uint32
	if pos, flags, _, err = d.Bitmask(buf, pos, tree, fieldRFFPCNEXFlags, changeFlagFields); err != nil {
		return off, err
	}
	for _, c := range changeClasses {
		if flags&c.Mask != 0 {
			d.Infof(", change %s", c.Name)
		}
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldRFFPCNEXOptions); err != nil {
		return off, err
	}
	if pos, err = d.StrPointer(buf, pos, tree, dcerpc.PointerUnique, "Server", fieldServerName, 0, nil); err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldPrinterLocal); err != nil {
		return off, err
	}
	return d.Pointer(buf, pos, tree, dcerpc.PointerUnique, "Notify Options Container", decodeNotifyOptionsArrayCtr, nil)
}

func rfnpcnexRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var change uint32
	if pos, change, err = d.Uint32(buf, pos, tree, fieldRRPCNChangeLow); err != nil {
		return off, err
	}
	d.Infof(", changeid %d", change)
	return d.Pointer(buf, pos, tree, dcerpc.PointerUnique, "Notify Options Array Container", decodeNotifyOptionsArrayCtr, nil)
}

func rfnpcnexResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := d.Pointer(buf, off, tree, dcerpc.PointerUnique, "Notify Info", decodeNotifyInfo, nil)
	if err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func rrpcnRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var change uint32
	if pos, change, err = d.Uint32(buf, pos, tree, fieldRRPCNChangeLow); err != nil {
		return off, err
	}
	d.Infof(", changeid %d", change)
	if pos, err = uint32Fields(d, buf, pos, tree, fieldRRPCNChangeHigh, fieldRRPCNUnknown0, fieldRRPCNUnknown1); err != nil {
		return off, err
	}
	return d.Pointer(buf, pos, tree, dcerpc.PointerUnique, "Notify Info", decodeNotifyInfo, nil)
}

func rrpcnResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, err := d.Uint32(buf, off, tree, fieldRRPCNUnknown0)
	if err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func fcpnRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return decodeHandle(d, buf, off, tree)
}

func routerReplyPrinterRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	return uint32Fields(d, buf, pos, tree, fieldRouterCondition, fieldRouterUnknown1, fieldRouterChangeID)
}
