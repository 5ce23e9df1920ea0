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

func decodeDriverInfo1(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	item := tree.AddText(buf, off, 0, "Driver info level 1")
	pos, _, err := relStr(d, buf, off, off, item, fieldDriverName)
	if err != nil {
		return off, err
	}
	item.SetLength(pos - off)
	return pos, nil
}

// decodeDriverInfo3 decodes a DRIVER_INFO_3. Of the dependent files only
// the first is shown.
func decodeDriverInfo3(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	structStart := off
	item := tree.AddText(buf, off, 0, "Driver info level 3")
	pos, _, err := d.Uint32(buf, off, item, fieldDriverVersion)
	if err != nil {
		return off, err
	}
	if pos, err = relStrFields(d, buf, pos, structStart, item,
		fieldDriverName, fieldArchitecture, fieldDriverPath, fieldDataFile,
		fieldConfigFile, fieldHelpFile); err != nil {
		return off, err
	}
	if pos, _, err = relStrArray(d, buf, pos, structStart, item, fieldDependentFiles); err != nil {
		return off, err
	}
	if pos, err = relStrFields(d, buf, pos, structStart, item, fieldMonitorName, fieldDefaultDatatype); err != nil {
		return off, err
	}
	item.SetLength(pos - structStart)
	return pos, nil
}

func driverInfoDecoder(level uint32) (dcerpc.StubDecoder, bool) {
	switch level {
	case 1:
		return decodeDriverInfo1, true
	case 3:
		return decodeDriverInfo3, true
	}
	return nil, false
}
