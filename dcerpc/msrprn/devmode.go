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

const devmodeNameSize = 64

// decodeDevmode decodes a DEVMODE. Fields whose bit is clear in the fields
// mask are still decoded but flagged as unset.
func decodeDevmode(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	log.Debugf("Decoding DEVMODE at offset %d of %s\n", off, buf.Name())
	structStart := off
	item := tree.AddText(buf, off, 0, "Devicemode")

	var err error
	var fields uint32
	var extra uint16
	pos := off

	u16 := func(f *dcerpc.Field, bit uint32) {
		if err != nil {
			return
		}
		var it *dcerpc.Item
		pos, _, it, err = d.Uint16Item(buf, pos, item, f)
		if bit != 0 {
			it.SetUnset(fields&bit == 0)
		}
	}
	u32 := func(f *dcerpc.Field, bit uint32) {
		if err != nil {
			return
		}
		var it *dcerpc.Item
		pos, _, it, err = d.Uint32Item(buf, pos, item, f)
		if bit != 0 {
			it.SetUnset(fields&bit == 0)
		}
	}

	if pos, _, err = d.Uint32(buf, pos, item, fieldDevmodeSize); err != nil {
		return off, err
	}
	if pos, _, _, err = fixedUint16Uni(d, buf, pos, devmodeNameSize, item, fieldDevmodeDeviceName); err != nil {
		return off, err
	}
	u16(fieldDevmodeSpecVersion, 0)
	u16(fieldDevmodeDriverVer, 0)
	u16(fieldDevmodeSize2, 0)
	if err != nil {
		return off, err
	}
	if pos, extra, err = d.Uint16(buf, pos, item, fieldDevmodeExtraLen); err != nil {
		return off, err
	}

	item.AddField(fieldDevmode, buf, pos, 0, uint32(1)).SetHidden()
	if pos, fields, _, err = d.Bitmask(buf, pos, item, fieldDevmodeFields, devmodeFieldBits); err != nil {
		return off, err
	}

	u16(fieldDevmodeOrientation, DMOrientation)
	u16(fieldDevmodePaperSize, DMPaperSize)
	u16(fieldDevmodePaperLength, DMPaperLength)
	u16(fieldDevmodePaperWidth, DMPaperWidth)
	u16(fieldDevmodeScale, DMScale)
	u16(fieldDevmodeCopies, DMCopies)
	u16(fieldDevmodeSource, DMDefaultSource)
	if err != nil {
		return off, err
	}

	qStart, raw, err := d.ReadUint16(buf, pos)
	if err != nil {
		return off, err
	}
	var q *dcerpc.Item
	if quality := int16(raw); quality < 0 {
		q = item.AddField(fieldDevmodeQuality, buf, qStart, 2, quality)
	} else {
		q = item.AddText(buf, qStart, 2, "Print Quality: %d dpi", quality)
	}
	q.SetUnset(fields&DMPrintQuality == 0)
	pos = qStart + 2

	u16(fieldDevmodeColor, DMColor)
	u16(fieldDevmodeDuplex, DMDuplex)
	u16(fieldDevmodeYResolution, DMYResolution)
	u16(fieldDevmodeTTOption, DMTTOption)
	u16(fieldDevmodeCollate, DMCollate)
	if err != nil {
		return off, err
	}

	var form *dcerpc.Item
	if pos, _, form, err = fixedUint16Uni(d, buf, pos, devmodeNameSize, item, fieldDevmodeFormName); err != nil {
		return off, err
	}
	form.SetUnset(fields&DMFormName == 0)

	u16(fieldDevmodeLogPixels, DMLogPixels)
	u32(fieldDevmodeBitsPerPel, DMBitsPerPel)
	u32(fieldDevmodePelsWidth, DMPelsWidth)
	u32(fieldDevmodePelsHeight, DMPelsHeight)
	u32(fieldDevmodeDisplayFlags, DMDisplayFlags)
	u32(fieldDevmodeDisplayFreq, DMDisplayFrequency)
	u32(fieldDevmodeICMMethod, DMICMMethod)
	u32(fieldDevmodeICMIntent, DMICMIntent)
	u32(fieldDevmodeMediaType, DMMediaType)
	u32(fieldDevmodeDitherType, DMDitherType)
	u32(fieldDevmodeReserved1, 0)
	u32(fieldDevmodeReserved2, 0)
	u32(fieldDevmodePanWidth, DMPanningWidth)
	u32(fieldDevmodePanHeight, DMPanningHeight)
	if err != nil {
		return off, err
	}

	if extra > 0 {
		if pos, _, err = d.Uint8s(buf, pos, item, fieldDevmodeDriverExtra, int(extra)); err != nil {
			return off, err
		}
	}
	item.SetLength(pos - structStart)
	return pos, nil
}

// decodeDevmodeCtr decodes a DEVMODE_CONTAINER.
func decodeDevmodeCtr(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	if d.Conformance() {
		return off, nil
	}
	item := tree.AddText(buf, off, 0, "Devicemode container")
	pos, _, err := d.Uint32(buf, off, item, fieldDevmodeCtrSize)
	if err != nil {
		return off, err
	}
	if pos, err = d.Pointer(buf, pos, item, dcerpc.PointerUnique, "Devicemode", decodeDevmode, nil); err != nil {
		return off, err
	}
	item.SetLength(pos - off)
	return pos, nil
}
