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

const printerDataSourceName = "Printer data"

// decodePrinterData decodes the size prefixed value of a printer data
// entry.
func decodePrinterData(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, regType uint32) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	item := tree.AddText(buf, off, 0, "Data")
	pos, size, err := d.Uint32(buf, off, item, fieldPrinterDataSize)
	if err != nil {
		return off, err
	}
	if size > 0 {
		if pos, err = printerDataValue(d, buf, pos, item, tree, regType, size); err != nil {
			return off, err
		}
	}
	item.SetLength(int(size) + 4)
	return pos, nil
}

// printerDataValue decodes size bytes of registry data of type regType.
// String and DWORD values are summarised on item and indexed on tree.
func printerDataValue(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, item, tree *dcerpc.Item, regType, size uint32) (int, error) {
	pos, raw, err := d.Uint8s(buf, off, item, fieldPrinterDataData, int(size))
	if err != nil {
		return off, err
	}
	start := pos - len(raw)
	switch regType {
	case RegSz:
		s := dcerpc.UTF16ToString(raw, d.ByteOrder())
		item.AppendText(": %s", s)
		d.Infof(" = %s", s)
		tree.AddString(fieldPrinterDataSz, buf, start, len(raw), s).SetHidden()
	case RegDword:
		if len(raw) >= 4 {
			v := d.ByteOrder().Uint32(raw)
			item.AppendText(": 0x%08x", v)
			d.Infof(" = 0x%08x", v)
			tree.AddField(fieldPrinterDataDword, buf, start, 4, v).SetHidden()
		}
	case RegBinary:
		d.Infof(" = <binary data>")
	}
	return pos, nil
}

// decodeEnumValue decodes one PRINTER_ENUM_VALUES record. The name and
// value are located by offsets from the start of buf.
func decodeEnumValue(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	var nameOffset, nameLen, valType, valOffset, valLen uint32
	pos, nameOffset, err := d.ReadUint32(buf, off)
	if err != nil {
		return off, err
	}
	recStart := pos
	if pos, nameLen, err = d.ReadUint32(buf, pos+4); err != nil {
		return off, err
	}
	pos += 4

	namePos, err := resolveStructRelative(buf, 0, nameOffset)
	if err != nil {
		return off, err
	}
	nameStart, name, nameBytes, _, err := readUint16Uni(d, buf, namePos)
	if err != nil {
		return off, err
	}
	item := tree.AddText(buf, pos, 0, "Name: %s", name)
	item.AddField(fieldValueNameOffset, buf, recStart, 4, nameOffset)
	item.AddField(fieldValueNameLen, buf, recStart+4, 4, nameLen)
	item.AddString(fieldValueName, buf, nameStart, nameBytes, name)

	if pos, valType, err = d.Uint32(buf, pos, item, fieldPrinterDataType); err != nil {
		return off, err
	}
	if pos, valOffset, err = d.Uint32(buf, pos, item, fieldValueDataOffset); err != nil {
		return off, err
	}
	if pos, valLen, err = d.Uint32(buf, pos, item, fieldValueDataLen); err != nil {
		return off, err
	}

	valPos, err := resolveStructRelative(buf, 0, valOffset)
	if err != nil {
		return off, err
	}
	switch valType {
	case RegDword:
		// Two halves as the value need not be aligned.
		var low, high uint16
		p := valPos
		if p, low, err = d.Uint16(buf, p, item, fieldValueDwordLow); err != nil {
			return off, err
		}
		if _, high, err = d.Uint16(buf, p, item, fieldValueDwordHigh); err != nil {
			return off, err
		}
		value := uint32(high)<<16 | uint32(low)
		item.AddText(buf, valPos, 4, "Value: %d", value)
		item.AppendText(", Value: %d", value)
	case RegSz:
		var value string
		if _, value, err = uint16Uni(d, buf, valPos, item, fieldValueSz); err != nil {
			return off, err
		}
		item.AppendText(", Value: %s", value)
	case RegBinary:
		item.AddText(buf, valPos, int(valLen), "Value: <binary data>")
	default:
		item.AddText(buf, valPos, int(valLen), "%s: unknown type %d", name, valType)
	}
	return pos, nil
}

// decodeEnumValues decodes count PRINTER_ENUM_VALUES records held in the
// size bytes at off.
func decodeEnumValues(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, size, count uint32) error {
	sub, err := buf.Sub(printerDataSourceName, off, int(size))
	if err != nil {
		return err
	}
	item := tree.AddText(buf, off, int(size), "Printer data")
	pos := 0
	for i := uint32(0); i < count; i++ {
		if pos >= sub.Len() {
			log.Debugf("%s ends after %d of %d values\n", sub.Name(), i, count)
			break
		}
		if pos, err = decodeEnumValue(d, sub, pos, item); err != nil {
			return err
		}
	}
	return nil
}

// decodeKeyBuffer decodes the multi string returned by EnumPrinterKey.
func decodeKeyBuffer(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	pos, size, err := d.Uint32(buf, off, tree, fieldKeyBufferSize)
	if err != nil {
		return off, err
	}
	end := int64(pos) + int64(size)*2
	if end > int64(buf.Len()) {
		return off, dcerpc.Malformedf("%s: key buffer of %d characters at offset %d exceeds buffer length %d",
			buf.Name(), size, pos, buf.Len())
	}
	for int64(pos) < end {
		if pos, _, err = uint16Uni(d, buf, pos, tree, fieldKey); err != nil {
			return off, err
		}
	}
	return pos, nil
}
