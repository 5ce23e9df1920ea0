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

// SPOOLSS buffers locate variable length data in two ways. Strings inside
// a structure carry offsets relative to the first byte of that structure,
// while the DEVMODE and security descriptor of PRINTER_INFO_2 carry
// offsets from the start of the whole buffer.

// resolveStructRelative returns the buffer position of a field stored at
// offset bytes past structStart.
func resolveStructRelative(buf *dcerpc.Buffer, structStart int, offset uint32) (int, error) {
	pos := int64(structStart) + int64(offset)
	if pos < 0 || pos >= int64(buf.Len()) {
		return 0, dcerpc.Malformedf("%s: relative offset %d from structure at %d is outside buffer of %d bytes",
			buf.Name(), offset, structStart, buf.Len())
	}
	return int(pos), nil
}

// resolveBufferAbsolute returns the buffer position of a field stored at an
// absolute offset into buf.
func resolveBufferAbsolute(buf *dcerpc.Buffer, offset int64) (int, error) {
	if offset < 0 || offset >= int64(buf.Len()) {
		return 0, dcerpc.Malformedf("%s: offset %d is outside buffer of %d bytes", buf.Name(), offset, buf.Len())
	}
	return int(offset), nil
}

// readUint16Uni reads a NUL terminated UTF-16 string at off, aligned to 2.
// A string missing its terminator runs to the end of buf. It returns the
// aligned start, the string, its length in bytes without the terminator and
// the offset following the terminator.
func readUint16Uni(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int) (start int, s string, length int, next int, err error) {
	start = dcerpc.Align(off, 2)
	b, err := buf.Bytes(start, buf.Remaining(start))
	if err != nil {
		return
	}
	if len(b) == 0 {
		err = dcerpc.Malformedf("%s: string at offset %d is outside buffer of %d bytes", buf.Name(), start, buf.Len())
		return
	}
	s, n := dcerpc.UTF16Terminated(b, d.ByteOrder())
	length = n * 2
	next = start + length + 2
	if next > buf.Len() {
		next = buf.Len()
	}
	return start, s, length, next, nil
}

// uint16Uni decodes a NUL terminated UTF-16 string at off.
func uint16Uni(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, f *dcerpc.Field) (int, string, error) {
	if d.Conformance() {
		return off, "", nil
	}
	start, s, length, next, err := readUint16Uni(d, buf, off)
	if err != nil {
		return off, "", err
	}
	tree.AddString(f, buf, start, length, s)
	return next, s, nil
}

// fixedUint16Uni decodes a UTF-16 string stored in a field of size bytes.
// The string ends at the first NUL or the end of the field.
func fixedUint16Uni(d *dcerpc.Decoder, buf *dcerpc.Buffer, off, size int, tree *dcerpc.Item, f *dcerpc.Field) (int, string, *dcerpc.Item, error) {
	if d.Conformance() {
		return off, "", nil, nil
	}
	b, err := buf.Bytes(off, size)
	if err != nil {
		return off, "", nil, err
	}
	s, n := dcerpc.UTF16Terminated(b, d.ByteOrder())
	item := tree.AddString(f, buf, off, n*2, s)
	return off + size, s, item, nil
}

// relStr decodes a string referenced by an offset relative to structStart.
// An offset of 0 is an empty string.
func relStr(d *dcerpc.Decoder, buf *dcerpc.Buffer, off, structStart int, tree *dcerpc.Item, f *dcerpc.Field) (int, string, error) {
	if d.Conformance() {
		return off, "", nil
	}
	start, rel, err := d.ReadUint32(buf, off)
	if err != nil {
		return off, "", err
	}
	var s string
	var strStart, strLen int
	if rel != 0 {
		pos, err := resolveStructRelative(buf, structStart, rel)
		if err != nil {
			return off, "", err
		}
		if strStart, s, strLen, _, err = readUint16Uni(d, buf, pos); err != nil {
			return off, "", err
		}
	}
	item := tree.AddString(f, buf, start, 4, s)
	item.AddField(fieldOffset, buf, start, 4, rel)
	if rel != 0 {
		item.AddString(fieldString, buf, strStart, strLen, s)
	}
	return start + 4, s, nil
}

// relStrArray decodes an array of relative strings. Only the first string
// of the array is decoded.
func relStrArray(d *dcerpc.Decoder, buf *dcerpc.Buffer, off, structStart int, tree *dcerpc.Item, f *dcerpc.Field) (int, string, error) {
	if d.Conformance() {
		return off, "", nil
	}
	start, rel, err := d.ReadUint32(buf, off)
	if err != nil {
		return off, "", err
	}
	if rel == 0 {
		item := tree.AddString(f, buf, start, 4, "")
		item.SetText("%s: NULL", f.Name)
		item.AddField(fieldOffset, buf, start, 4, rel)
		return start + 4, "", nil
	}
	pos, err := resolveStructRelative(buf, structStart, rel)
	if err != nil {
		return off, "", err
	}
	strStart, s, strLen, _, err := readUint16Uni(d, buf, pos)
	if err != nil {
		return off, "", err
	}
	item := tree.AddString(f, buf, start, 4, s)
	item.AddField(fieldOffset, buf, start, 4, rel)
	item.AddString(fieldString, buf, strStart, strLen, s)
	return start + 4, s, nil
}
