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

// pendingNameInfo appends the name stored by the request to the summary.
func pendingNameInfo(d *dcerpc.Decoder) {
	name, ok := d.Call().PendingName()
	if !ok {
		name = "????"
	}
	d.Infof(", %s", name)
}

func getPrinterDataRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var value string
	if pos, value, err = d.CVString(buf, pos, tree, fieldPrinterDataValue); err != nil {
		return off, err
	}
	if name, ok := d.Call().PendingName(); ok {
		value = name
	} else {
		d.Call().SetPendingName(value)
	}
	d.Infof(", %s", value)
	pos, _, err = d.Uint32(buf, pos, tree, fieldOffered)
	return pos, err
}

func getPrinterDataResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, regType, err := d.Uint32(buf, off, tree, fieldPrinterDataType)
	if err != nil {
		return off, err
	}
	pendingNameInfo(d)
	if pos, err = decodePrinterData(d, buf, pos, tree, regType); err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

// keyValue decodes the key and value names that address an extended
// printer data entry.
func keyValue(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, string, error) {
	pos, key, err := d.CVString(buf, off, tree, fieldPrinterDataKey)
	if err != nil {
		return off, "", err
	}
	var value string
	if pos, value, err = d.CVString(buf, pos, tree, fieldPrinterDataValue); err != nil {
		return off, "", err
	}
	name := key + "/" + value
	d.Infof(", %s", name)
	return pos, name, nil
}

func getPrinterDataExRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var name string
	if pos, name, err = keyValue(d, buf, pos, tree); err != nil {
		return off, err
	}
	if _, ok := d.Call().PendingName(); !ok {
		d.Call().SetPendingName(name)
	}
	pos, _, err = d.Uint32(buf, pos, tree, fieldOffered)
	return pos, err
}

// getPrinterDataExResponse decodes the type, the conformant data array and
// the needed size.
func getPrinterDataExResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, regType, err := d.Uint32(buf, off, tree, fieldPrinterDataType)
	if err != nil {
		return off, err
	}
	var size uint32
	if pos, size, err = d.Uint32(buf, pos, tree, fieldReturned); err != nil {
		return off, err
	}
	pendingNameInfo(d)
	if size > 0 {
		item := tree.AddText(buf, pos, int(size), "Data")
		if pos, err = printerDataValue(d, buf, pos, item, tree, regType, size); err != nil {
			return off, err
		}
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func setPrinterDataRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var value string
	if pos, value, err = d.CVString(buf, pos, tree, fieldPrinterDataValue); err != nil {
		return off, err
	}
	d.Infof(", %s", value)
	var regType uint32
	if pos, regType, err = d.Uint32(buf, pos, tree, fieldPrinterDataType); err != nil {
		return off, err
	}
	if pos, err = decodePrinterData(d, buf, pos, tree, regType); err != nil {
		return off, err
	}
	pos, _, err = d.Uint32(buf, pos, tree, fieldOffered)
	return pos, err
}

// printerDataStatus decodes the bare status responses of the printer data
// operations.
func printerDataStatus(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	return decodeStatus(d, buf, off, tree)
}

func setPrinterDataExRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if pos, _, err = keyValue(d, buf, pos, tree); err != nil {
		return off, err
	}
	var maxLen uint32
	if pos, err = uint32Fields(d, buf, pos, tree, fieldPrinterDataType); err != nil {
		return off, err
	}
	if pos, maxLen, err = d.Uint32(buf, pos, tree, fieldSetPrinterDataMaxLen); err != nil {
		return off, err
	}
	if pos, _, err = d.Uint8s(buf, pos, tree, fieldSetPrinterDataData, int(maxLen)); err != nil {
		return off, err
	}
	pos, _, err = d.Uint32(buf, pos, tree, fieldSetPrinterDataRealLen)
	return pos, err
}

func deletePrinterDataRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var value string
	if pos, value, err = d.CVString(buf, pos, tree, fieldPrinterDataValue); err != nil {
		return off, err
	}
	d.Infof(", %s", value)
	return pos, nil
}

func enumPrinterDataRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var index uint32
	if pos, index, err = d.Uint32(buf, pos, tree, fieldEnumIndex); err != nil {
		return off, err
	}
	d.Infof(", index %d", index)
	return uint32Fields(d, buf, pos, tree, fieldValueOffered, fieldDataOffered)
}

// enumPrinterDataResponse decodes the value name, which is sized by its
// length field rather than its terminator, followed by the value.
func enumPrinterDataResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	item := tree.AddText(buf, off, 0, "Value")
	pos, valueLen, err := d.Uint32(buf, off, item, fieldValueLen)
	if err != nil {
		return off, err
	}
	if valueLen > 0 {
		if int64(valueLen)*2 > int64(buf.Remaining(pos)) {
			return off, dcerpc.Malformedf("%s: value name of %d characters at offset %d exceeds buffer length %d",
				buf.Name(), valueLen, pos, buf.Len())
		}
		start, name, length, _, err := readUint16Uni(d, buf, pos)
		if err != nil {
			return off, err
		}
		item.AddText(buf, start, length, "Value name: %s", name)
		pos += int(valueLen) * 2
		if name != "" {
			d.Infof(", %s", name)
		}
		item.AppendText(": %s", name)
		tree.AddString(fieldPrinterDataValue, buf, pos, 0, name).SetHidden()
	}
	item.SetLength(int(valueLen)*2 + 4)
	if pos, _, err = d.Uint32(buf, pos, item, fieldValueNeeded); err != nil {
		return off, err
	}
	var regType uint32
	if pos, regType, err = d.Uint32(buf, pos, tree, fieldPrinterDataType); err != nil {
		return off, err
	}
	if pos, err = decodePrinterData(d, buf, pos, tree, regType); err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldDataNeeded); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func enumPrinterKeyRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var key string
	if pos, key, err = d.CVString(buf, pos, tree, fieldPrinterDataKey); err != nil {
		return off, err
	}
	if key == "" {
		key = `""`
	}
	d.Infof(", %s", key)
	pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded)
	return pos, err
}

func enumPrinterKeyResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeKeyBuffer(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func enumPrinterDataExRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var key string
	if pos, key, err = d.CVString(buf, pos, tree, fieldPrinterDataKey); err != nil {
		return off, err
	}
	d.Infof(", %s", key)
	pos, _, err = d.Uint32(buf, pos, tree, fieldOffered)
	return pos, err
}

// enumPrinterDataExResponse decodes the value records. Their count
// trails the data so it is peeked before the records are decoded.
func enumPrinterDataExResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldPrinterData, buf, off)
	pos, size, err := d.Uint32(buf, off, tree, fieldBufferSize)
	if err != nil {
		return off, err
	}
	if int64(size) > int64(buf.Remaining(pos)) {
		return off, dcerpc.Malformedf("%s: printer data of %d bytes at offset %d exceeds the %d bytes left",
			buf.Name(), size, pos, buf.Remaining(pos))
	}
	count, err := d.PeekUint32(buf, pos+int(size)+4)
	if err != nil {
		return off, err
	}
	if size > 0 {
		if err = decodeEnumValues(d, buf, pos, tree, size, count); err != nil {
			return off, err
		}
	}
	pos += int(size)
	if pos, err = uint32Fields(d, buf, pos, tree, fieldNeeded, fieldReturned); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}
