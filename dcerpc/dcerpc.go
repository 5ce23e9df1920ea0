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
//
// Package dcerpc decodes connection oriented DCE/RPC PDUs and provides the
// NDR primitives used by the interface specific decoders in the sub packages.
// Nothing in here talks to the network; input is always a captured byte
// stream.

package dcerpc

import (
	"encoding/binary"
	"fmt"

	"github.com/jfjallid/golog"
	"github.com/pkg/errors"
)

var (
	log = golog.Get("github.com/jfjallid/go-spoolss/dcerpc")
	le  = binary.LittleEndian
)

// DataRepresentation is the 4 byte NDR format label carried in every PDU
// header (C706 Section 14.1).
type DataRepresentation [4]byte

// LittleEndianASCII is what every Windows implementation sends.
var LittleEndianASCII = DataRepresentation{0x10, 0x00, 0x00, 0x00}

func (self DataRepresentation) ByteOrder() binary.ByteOrder {
	if self[0]>>4 == 0 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (self DataRepresentation) CharacterSet() string {
	if self[0]&0x0f == 0 {
		return "ASCII"
	}
	return "EBCDIC"
}

func (self DataRepresentation) String() string {
	order := "Big-endian"
	if self.ByteOrder() == binary.LittleEndian {
		order = "Little-endian"
	}
	return fmt.Sprintf("%s, %s", order, self.CharacterSet())
}

// Fields shared by every interface decoder
var (
	FieldMaxCount         = &Field{Name: "Max Count", Abbrev: "dcerpc.array.max_count", Type: FieldUint32}
	FieldOffset           = &Field{Name: "Offset", Abbrev: "dcerpc.array.offset", Type: FieldUint32}
	FieldActualCount      = &Field{Name: "Actual Count", Abbrev: "dcerpc.array.actual_count", Type: FieldUint32}
	FieldReferentID       = &Field{Name: "Referent ID", Abbrev: "dcerpc.referent_id", Type: FieldUint32, Base: BaseHex}
	FieldHandleAttributes = &Field{Name: "Attributes", Abbrev: "dcerpc.handle.attributes", Type: FieldUint32, Base: BaseHex}
	FieldHandleUUID       = &Field{Name: "UUID", Abbrev: "dcerpc.handle.uuid", Type: FieldString}
)

// Result is the outcome of decoding one stub.
type Result struct {
	Tree   *Item
	Info   string
	Offset int
	// Trailing is the number of stub bytes left undecoded.
	Trailing int
}

// StubDecoder decodes an operation stub starting at off.
type StubDecoder func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error)

// Decode runs fn over stub. On failure the returned Result still holds the
// partial tree, marked as malformed, and an Offset of 0.
func Decode(name string, stub []byte, drep DataRepresentation, call *Call, handles HandleNamer, fn StubDecoder) (*Result, error) {
	buf := NewBuffer(name, stub)
	tree := NewTree(name, buf)
	d := NewDecoder(drep, call, handles)
	res := &Result{Tree: tree}

	off, err := fn(d, buf, 0, tree)
	res.Info = d.Info()
	if err != nil {
		if IsMalformed(err) {
			tree.AddText(buf, 0, 0, "[Malformed Packet]")
		}
		log.Debugf("Failed to decode %s stub: %v\n", name, err)
		return res, errors.Wrapf(err, "decode %s", name)
	}
	res.Offset = off
	if off < buf.Len() {
		res.Trailing = buf.Len() - off
	}
	return res, nil
}
