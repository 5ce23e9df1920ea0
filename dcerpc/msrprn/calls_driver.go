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

func enumPrinterDriversRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := d.StrPointer(buf, off, tree, dcerpc.PointerUnique, "Name", fieldServerName, 0, nil)
	if err != nil {
		return off, err
	}
	if pos, err = d.StrPointer(buf, pos, tree, dcerpc.PointerUnique, "Environment", fieldArchitecture, 0, nil); err != nil {
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

func enumPrinterDriversResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
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
	if err = decodeLevelList(d, b, "driver", level, ok, count, driverInfoDecoder); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func getPrinterDriver2Request(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeNamedHandle(d, buf, off, tree, false)
	if err != nil {
		return off, err
	}
	if pos, err = d.StrPointer(buf, pos, tree, dcerpc.PointerUnique, "Architecture", fieldArchitecture, 0, nil); err != nil {
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
	return uint32Fields(d, buf, pos, tree, fieldOffered, fieldClientMajorVersion, fieldClientMinorVersion)
}

func getPrinterDriver2Response(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	level, ok := d.Call().Level()
	levelInfo(d, level, ok)
	pos, b, err := decodeBuffer(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if err = decodeLevel(d, b, "driver", level, ok, driverInfoDecoder); err != nil {
		return off, err
	}
	if pos, err = uint32Fields(d, buf, pos, tree, fieldNeeded, fieldServerMajorVersion, fieldServerMinorVersion); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}
