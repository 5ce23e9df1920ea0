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
	"fmt"

	"github.com/jfjallid/go-spoolss/dcerpc"
)

func notifyPlural(count uint32) string {
	if count == 1 {
		return "notification"
	}
	return "notifies"
}

// skipUint32 consumes a uint32 without showing it.
func skipUint32(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int) (int, uint32, error) {
	if d.Conformance() {
		return off, 0, nil
	}
	start, v, err := d.ReadUint32(buf, off)
	if err != nil {
		return off, 0, err
	}
	return start + 4, v, nil
}

// decodeNotifyField decodes the field selector of a notify option or
// notify data entry. Its name depends on the notify type.
func decodeNotifyField(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, notifyType uint16) (int, uint16, error) {
	if d.Conformance() {
		return off, 0, nil
	}
	start, field, err := d.ReadUint16(buf, off)
	if err != nil {
		return off, 0, err
	}
	var name string
	var found bool
	switch notifyType {
	case PrinterNotifyType:
		name, found = printerNotifyFieldNames[field]
	case JobNotifyType:
		name, found = jobNotifyFieldNames[field]
	default:
		name, found = "Unknown notify type", true
	}
	if !found {
		name = "Unknown"
	}
	tree.AddField(fieldNotifyField, buf, start, 2, field).SetText("Field: %s (%d)", name, field)
	return start + 2, field, nil
}

// notifyOptionData returns the referent of the field list of a notify
// option of the given type.
func notifyOptionData(notifyType uint16) dcerpc.Referent {
	return func(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
		if d.Conformance() {
			return off, nil
		}
		pos, count, err := d.Uint32(buf, off, tree, fieldNotifyOptionDataCnt)
		if err != nil {
			return off, err
		}
		for i := uint32(0); i < count; i++ {
			if pos, _, err = decodeNotifyField(d, buf, pos, tree, notifyType); err != nil {
				return off, err
			}
		}
		return pos, nil
	}
}

func notifyTypeName(notifyType uint16) string {
	if name, ok := notifyTypeNames[int64(notifyType)]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", notifyType)
}

// decodeNotifyOption decodes one PRINTER_NOTIFY_OPTIONS_TYPE.
func decodeNotifyOption(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	item := tree.AddText(buf, off, 0, "Notify Option")
	pos, notifyType, err := d.Uint16(buf, off, item, fieldNotifyOptionType)
	if err != nil {
		return off, err
	}
	item.AppendText(": %s", notifyTypeName(notifyType))
	if pos, _, err = d.Uint16(buf, pos, item, fieldNotifyOptionRes1); err != nil {
		return off, err
	}
	if pos, err = uint32Fields(d, buf, pos, item, fieldNotifyOptionRes2, fieldNotifyOptionRes3); err != nil {
		return off, err
	}
	var count uint32
	if pos, count, err = d.Uint32(buf, pos, item, fieldNotifyOptionCount); err != nil {
		return off, err
	}
	item.AppendText(", %d %s", count, notifyPlural(count))
	if pos, err = d.Pointer(buf, pos, item, dcerpc.PointerUnique, "Notify Option Data", notifyOptionData(notifyType), nil); err != nil {
		return off, err
	}
	item.SetLength(pos - off)
	return pos, nil
}

func decodeNotifyOptionsArray(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return d.UCArray(buf, off, tree, decodeNotifyOption)
}

// decodeNotifyOptionsArrayCtr decodes a RPC_V2_NOTIFY_OPTIONS.
func decodeNotifyOptionsArrayCtr(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	pos, _, err := d.Uint32(buf, off, tree, fieldNotifyOptionsVersion)
	if err != nil {
		return off, err
	}
	if pos, _, _, err = d.Bitmask(buf, pos, tree, fieldNotifyOptionsFlags, notifyOptionsFlagFields); err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNotifyOptionsCount); err != nil {
		return off, err
	}
	return d.Pointer(buf, pos, tree, dcerpc.PointerUnique, "Notify Options Array", decodeNotifyOptionsArray, nil)
}

// notifyString returns the referent of a notify data string together with
// the callback that labels the enclosing items with the string. hidden, if
// set, receives a hidden copy of the string for filtering.
func notifyString(hidden *dcerpc.Field) (dcerpc.Referent, dcerpc.PointerCallback) {
	var s string
	var sStart, sLen int
	fn := func(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
		if d.Conformance() {
			return off, nil
		}
		pos, n, err := d.Uint32(buf, off, tree, fieldNotifyDataBufLen)
		if err != nil {
			return off, err
		}
		var raw []byte
		sStart = pos
		if pos, raw, err = d.Uint16s(buf, pos, tree, fieldNotifyDataBufData, int(n)); err != nil {
			return off, err
		}
		s = dcerpc.UTF16ToString(raw, d.ByteOrder())
		sLen = len(raw)
		return pos, nil
	}
	cb := func(d *dcerpc.Decoder, buf *dcerpc.Buffer, item *dcerpc.Item, start, end int) {
		if s != "" {
			item.AppendText(": %s", s)
			item.Parent().AppendText(": %s", s)
		}
		if hidden != nil {
			item.AddString(hidden, buf, sStart, sLen, s).SetHidden()
		}
	}
	return fn, cb
}

// notifyBuffer decodes the counted UTF-16 buffer of a notify data entry.
func notifyBuffer(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	pos, n, err := d.Uint32(buf, off, tree, fieldNotifyDataBufLen)
	if err != nil {
		return off, err
	}
	if pos, _, err = d.Uint16s(buf, pos, tree, fieldNotifyDataBufData, int(n)); err != nil {
		return off, err
	}
	return pos, nil
}

var printerNotifyStringFields = map[uint16]*dcerpc.Field{
	PrinterNotifyServerName:     fieldServerName,
	PrinterNotifyPrinterName:    fieldPrinterName,
	PrinterNotifyShareName:      fieldShareName,
	PrinterNotifyPortName:       fieldPortName,
	PrinterNotifyDriverName:     fieldDriverName,
	PrinterNotifyComment:        fieldPrinterComment,
	PrinterNotifyLocation:       fieldPrinterLocation,
	PrinterNotifySepFile:        fieldSepFile,
	PrinterNotifyPrintProcessor: fieldPrintProcessor,
	PrinterNotifyParameters:     fieldParameters,
	PrinterNotifyDatatype:       fieldDatatype,
}

var jobNotifyStringFields = map[uint16]*dcerpc.Field{
	JobNotifyPrinterName:    fieldPrinterName,
	JobNotifyMachineName:    fieldMachineName,
	JobNotifyPortName:       fieldPortName,
	JobNotifyUserName:       fieldUserName,
	JobNotifyNotifyName:     fieldNotifyName,
	JobNotifyDatatype:       fieldDatatype,
	JobNotifyPrintProcessor: fieldPrintProcessor,
	JobNotifyParameters:     nil,
	JobNotifyDriverName:     fieldDriverName,
	JobNotifyStatusString:   nil,
	JobNotifyDocument:       fieldDocumentName,
}

var jobNotifyNumberFields = map[uint16]*dcerpc.Field{
	JobNotifyPriority:     fieldJobPriority,
	JobNotifyPosition:     fieldJobPosition,
	JobNotifyTotalPages:   fieldJobTotalPages,
	JobNotifyPagesPrinted: fieldJobPagesPrinted,
	JobNotifyTotalBytes:   fieldJobTotalBytes,
	JobNotifyBytesPrinted: fieldJobBytesPrinted,
}

// decodeNotifyValues decodes the two generic values of a notify data entry
// whose meaning is not known.
func decodeNotifyValues(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return uint32Fields(d, buf, off, tree, fieldNotifyDataValue1, fieldNotifyDataValue2)
}

func decodeNotifyStringData(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, hidden *dcerpc.Field) (int, error) {
	pos, _, err := d.Uint32(buf, off, tree, fieldNotifyDataBufSize)
	if err != nil {
		return off, err
	}
	fn, cb := notifyString(hidden)
	return d.Pointer(buf, pos, tree, dcerpc.PointerUnique, "String", fn, cb)
}

func decodeNotifyBufferData(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, err := d.Uint32(buf, off, tree, fieldNotifyDataBufSize)
	if err != nil {
		return off, err
	}
	return d.Pointer(buf, pos, tree, dcerpc.PointerUnique, "Buffer", notifyBuffer, nil)
}

func decodePrinterNotifyData(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree, item *dcerpc.Item, field uint16) (int, error) {
	if hidden, ok := printerNotifyStringFields[field]; ok {
		return decodeNotifyStringData(d, buf, off, tree, hidden)
	}
	switch field {
	case PrinterNotifyAttributes:
		pos, _, _, err := d.Bitmask(buf, off, tree, fieldPrinterAttributes, printerAttributeFields)
		if err != nil {
			return off, err
		}
		pos, _, err = skipUint32(d, buf, pos)
		return pos, err
	case PrinterNotifyStatus:
		pos, status, err := d.Uint32(buf, off, tree, fieldPrinterStatus)
		if err != nil {
			return off, err
		}
		if pos, _, err = skipUint32(d, buf, pos); err != nil {
			return off, err
		}
		name, ok := printerStatusNames[int64(status)]
		if !ok {
			name = "Unknown"
		}
		item.AppendText(": %s", name)
		return pos, nil
	case PrinterNotifySecurityDescriptor, PrinterNotifyDevmode:
		return decodeNotifyBufferData(d, buf, off, tree)
	}
	return decodeNotifyValues(d, buf, off, tree)
}

func decodeJobNotifyData(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree, item *dcerpc.Item, field uint16) (int, error) {
	if hidden, ok := jobNotifyStringFields[field]; ok {
		return decodeNotifyStringData(d, buf, off, tree, hidden)
	}
	if hidden, ok := jobNotifyNumberFields[field]; ok {
		pos, value, err := d.Uint32(buf, off, tree, fieldNotifyDataValue1)
		if err != nil {
			return off, err
		}
		if pos, _, err = d.Uint32(buf, pos, tree, fieldNotifyDataValue2); err != nil {
			return off, err
		}
		item.AppendText(": %d", value)
		tree.AddField(hidden, buf, pos-8, 4, value).SetHidden()
		return pos, nil
	}
	switch field {
	case JobNotifyStatus:
		pos, _, err := decodeJobStatus(d, buf, off, tree)
		if err != nil {
			return off, err
		}
		pos, _, err = skipUint32(d, buf, pos)
		return pos, err
	case JobNotifySubmitted:
		pos, _, err := d.Uint32(buf, off, tree, fieldNotifyDataBufLen)
		if err != nil {
			return off, err
		}
		var submitted SystemTime
		fn := func(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
			n, t, err := decodeSystemTime(d, buf, off, tree, "")
			if err == nil && !d.Conformance() {
				submitted = t
			}
			return n, err
		}
		cb := func(d *dcerpc.Decoder, buf *dcerpc.Buffer, item *dcerpc.Item, start, end int) {
			item.AppendText(": %s", submitted)
			item.Parent().AppendText(": %s", submitted)
		}
		return d.Pointer(buf, pos, tree, dcerpc.PointerUnique, "Time submitted", fn, cb)
	case JobNotifyDevmode:
		return decodeNotifyBufferData(d, buf, off, tree)
	}
	return decodeNotifyValues(d, buf, off, tree)
}

// decodeNotifyInfoData decodes one PRINTER_NOTIFY_INFO_DATA. Its value
// layout depends on the notify type and field.
func decodeNotifyInfoData(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	item := tree.AddText(buf, off, 0, "")
	pos, notifyType, err := d.Uint16(buf, off, item, fieldNotifyDataType)
	if err != nil {
		return off, err
	}
	var field uint16
	if pos, field, err = decodeNotifyField(d, buf, pos, item, notifyType); err != nil {
		return off, err
	}
	fieldName, ok := notifyFieldName(notifyType, field)
	if !ok {
		fieldName = "Unknown field"
	}
	item.AppendText("%s, %s", notifyTypeName(notifyType), fieldName)

	if pos, err = uint32Fields(d, buf, pos, item,
		fieldNotifyDataCount, fieldNotifyDataJobID, fieldNotifyDataCount); err != nil {
		return off, err
	}

	switch notifyType {
	case PrinterNotifyType:
		pos, err = decodePrinterNotifyData(d, buf, pos, item, item, field)
	case JobNotifyType:
		pos, err = decodeJobNotifyData(d, buf, pos, item, item, field)
	default:
		tree.AddText(buf, pos, 0, "[Unknown notify type %d]", notifyType)
	}
	if err != nil {
		return off, err
	}
	item.SetLength(pos - off)
	return pos, nil
}

// decodeNotifyInfo decodes a PRINTER_NOTIFY_INFO.
func decodeNotifyInfo(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := uint32Fields(d, buf, off, tree, fieldNotifyInfoVersion, fieldNotifyInfoFlags)
	if err != nil {
		return off, err
	}
	var count uint32
	if pos, count, err = d.Uint32(buf, pos, tree, fieldNotifyInfoCount); err != nil {
		return off, err
	}
	if !d.Conformance() {
		d.Infof(", %d %s", count, notifyPlural(count))
	}
	return d.UCArray(buf, pos, tree, decodeNotifyInfoData)
}
