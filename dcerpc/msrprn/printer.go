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

// decodePrinterInfo0 decodes a PRINTER_INFO_0, the server statistics level.
func decodePrinterInfo0(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	structStart := off
	pos, err := relStrFields(d, buf, off, structStart, tree, fieldPrinterName, fieldServerName)
	if err != nil {
		return off, err
	}
	if pos, err = uint32Fields(d, buf, pos, tree, fieldCJobs, fieldTotalJobs, fieldTotalBytes); err != nil {
		return off, err
	}
	if pos, _, err = decodeSystemTime(d, buf, pos, tree, "Unknown time"); err != nil {
		return off, err
	}
	if pos, err = uint32Fields(d, buf, pos, tree, fieldGlobalCounter, fieldTotalPages); err != nil {
		return off, err
	}
	if pos, err = uint16Fields(d, buf, pos, tree, fieldMajorVersion, fieldBuildVersion); err != nil {
		return off, err
	}
	pos, err = uint32Fields(d, buf, pos, tree,
		fieldPrinterUnknown7, fieldPrinterUnknown8, fieldPrinterUnknown9, fieldSessionCounter,
		fieldPrinterUnknown11, fieldPrinterErrors, fieldPrinterUnknown13, fieldPrinterUnknown14,
		fieldPrinterUnknown15, fieldPrinterUnknown16, fieldChangeID, fieldPrinterUnknown18,
		fieldPrinterStatus, fieldPrinterUnknown20, fieldCSetPrinter)
	if err != nil {
		return off, err
	}
	return uint16Fields(d, buf, pos, tree,
		fieldPrinterUnknown22, fieldPrinterUnknown23, fieldPrinterUnknown24, fieldPrinterUnknown25,
		fieldPrinterUnknown26, fieldPrinterUnknown27, fieldPrinterUnknown28, fieldPrinterUnknown29)
}

func decodePrinterInfo1(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, err := d.Uint32(buf, off, tree, fieldPrinterFlags)
	if err != nil {
		return off, err
	}
	return relStrFields(d, buf, pos, off, tree, fieldPrinterDesc, fieldPrinterName, fieldPrinterComment)
}

// decodePrinterInfo2 decodes a PRINTER_INFO_2. Its DEVMODE and security
// descriptor are located by offsets from the start of buf rather than from
// the structure. An offset of 0 means the member is absent.
func decodePrinterInfo2(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	structStart := off
	pos, err := relStrFields(d, buf, off, structStart, tree,
		fieldServerName, fieldPrinterName, fieldShareName, fieldPortName,
		fieldDriverName, fieldPrinterComment, fieldPrinterLocation)
	if err != nil {
		return off, err
	}

	var devmodeOffset, secdescOffset uint32
	if pos, devmodeOffset, err = d.ReadUint32(buf, pos); err != nil {
		return off, err
	}
	pos += 4
	if devmodeOffset != 0 {
		dm, err := resolveBufferAbsolute(buf, int64(devmodeOffset)-4)
		if err != nil {
			return off, err
		}
		if _, err = decodeDevmode(d, buf, dm, tree); err != nil {
			return off, err
		}
	}

	if pos, err = relStrFields(d, buf, pos, structStart, tree,
		fieldSepFile, fieldPrintProcessor, fieldDatatype, fieldParameters); err != nil {
		return off, err
	}

	if pos, secdescOffset, err = d.ReadUint32(buf, pos); err != nil {
		return off, err
	}
	pos += 4
	if secdescOffset != 0 {
		sd, err := resolveBufferAbsolute(buf, int64(secdescOffset))
		if err != nil {
			return off, err
		}
		if _, err = d.SecurityDescriptor(buf, sd, buf.Remaining(sd), tree, AccessRights); err != nil {
			return off, err
		}
	}

	if pos, _, _, err = d.Bitmask(buf, pos, tree, fieldPrinterAttributes, printerAttributeFields); err != nil {
		return off, err
	}
	return uint32Fields(d, buf, pos, tree,
		fieldPriority, fieldDefaultPriority, fieldStartTime, fieldEndTime,
		fieldPrinterStatus, fieldPrinterJobs, fieldAveragePPM)
}

// decodePrinterInfo3 decodes a PRINTER_INFO_3. The security descriptor
// follows the flags and runs to the end of buf.
func decodePrinterInfo3(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, err := d.Uint32(buf, off, tree, fieldPrinterFlags)
	if err != nil {
		return off, err
	}
	return d.SecurityDescriptor(buf, pos, buf.Remaining(pos), tree, AccessRights)
}

func decodePrinterInfo7(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, err := relStr(d, buf, off, off, tree, fieldPrinterGUID)
	if err != nil {
		return off, err
	}
	pos, _, err = d.Uint32(buf, pos, tree, fieldPrinterAction)
	if err != nil {
		return off, err
	}
	return pos, nil
}

// printerInfoDecoder returns the decoder of a PRINTER_INFO level.
func printerInfoDecoder(level uint32) (dcerpc.StubDecoder, bool) {
	switch level {
	case 0:
		return decodePrinterInfo0, true
	case 1:
		return decodePrinterInfo1, true
	case 2:
		return decodePrinterInfo2, true
	case 3:
		return decodePrinterInfo3, true
	case 7:
		return decodePrinterInfo7, true
	}
	return nil, false
}

// decodePrinterInfo decodes the PRINTER_INFO of a GetPrinter response held
// in b. Unknown levels leave a marker and decode nothing.
func decodePrinterInfo(d *dcerpc.Decoder, b *spoolssBuffer, level uint32, known bool) error {
	if b.buf == nil {
		return nil
	}
	fn, ok := printerInfoDecoder(level)
	if !known || !ok {
		unknownLevel(b, "printer", level, known)
		return nil
	}
	item := b.item.AddText(b.buf, 0, b.buf.Len(), "Print info level %d", level)
	_, err := fn(d, b.buf, 0, item)
	return err
}

// decodePrinterInfoList decodes count consecutive PRINTER_INFO structures
// of an EnumPrinters buffer.
func decodePrinterInfoList(d *dcerpc.Decoder, b *spoolssBuffer, level uint32, known bool, count uint32) error {
	if b.buf == nil {
		return nil
	}
	fn, ok := printerInfoDecoder(level)
	if !known || !ok {
		unknownLevel(b, "printer", level, known)
		return nil
	}
	return decodeList(d, b, count, func(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
		item := tree.AddText(buf, off, 0, "Print info level %d", level)
		n, err := fn(d, buf, off, item)
		if err != nil {
			return off, err
		}
		item.SetLength(n - off)
		return n, nil
	})
}

// unknownLevel marks the sub-buffer of b as holding an undecoded level.
func unknownLevel(b *spoolssBuffer, kind string, level uint32, known bool) {
	if !known {
		b.item.AddText(b.buf, 0, b.buf.Len(), "[Unknown %s info level Unknown]", kind)
		return
	}
	b.item.AddText(b.buf, 0, b.buf.Len(), "[Unknown %s info level %d]", kind, level)
}

// decodeList decodes count consecutive structures from the start of the
// sub-buffer of b. Decoding stops early at the end of the sub-buffer.
func decodeList(d *dcerpc.Decoder, b *spoolssBuffer, count uint32, fn dcerpc.StubDecoder) error {
	pos := 0
	for i := uint32(0); i < count; i++ {
		if pos >= b.buf.Len() {
			log.Debugf("%s ends after %d of %d structures\n", b.buf.Name(), i, count)
			break
		}
		n, err := fn(d, b.buf, pos, b.item)
		if err != nil {
			return err
		}
		if n == pos {
			break
		}
		pos = n
	}
	return nil
}
