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
// NDR stub decoding is done in two passes for every pointer referent. The
// first, the conformance run, only consumes the max_count of a conformant
// array that NDR hoists in front of the structure holding it. The second, the
// data run, decodes everything else. Scalar readers are no-ops in the
// conformance run so structure decoders can be written once and run twice.

package dcerpc

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
)

type Mode byte

const (
	ModeData Mode = iota
	ModeConformance
)

func (self Mode) String() string {
	if self == ModeConformance {
		return "conformance"
	}
	return "data"
}

type PointerKind byte

const (
	PointerRef PointerKind = iota
	PointerUnique
	PointerFull
)

// Referent decodes the data a pointer refers to. tree is nil during the
// conformance run.
type Referent func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error)

// PointerCallback runs after the data run of a referent. start and end
// delimit the bytes the data run consumed.
type PointerCallback func(d *Decoder, buf *Buffer, item *Item, start, end int)

type deferredPointer struct {
	fn   Referent
	cb   PointerCallback
	item *Item
}

// Decoder holds the state needed to decode one PDU stub. It must not be
// shared between goroutines or reused for another PDU.
type Decoder struct {
	order          binary.ByteOrder
	mode           Mode
	topLevel       bool
	pointers       []*deferredPointer
	next           int
	insertPos      int
	fullPointers   map[uint32]bool
	maxCount       uint32
	maxCountOffset int
	call           *Call
	handles        HandleNamer
	info           strings.Builder
}

// NewDecoder creates a decoder for a stub with the given data
// representation. call and handles may be nil.
func NewDecoder(drep DataRepresentation, call *Call, handles HandleNamer) *Decoder {
	if call == nil {
		call = &Call{}
	}
	if handles == nil {
		handles = noHandles{}
	}
	return &Decoder{
		order:        drep.ByteOrder(),
		topLevel:     true,
		fullPointers: make(map[uint32]bool),
		call:         call,
		handles:      handles,
	}
}

func (self *Decoder) ByteOrder() binary.ByteOrder {
	return self.order
}

func (self *Decoder) Mode() Mode {
	return self.mode
}

// Conformance reports whether the decoder is in the conformance run.
func (self *Decoder) Conformance() bool {
	return self.mode == ModeConformance
}

func (self *Decoder) Call() *Call {
	return self.call
}

func (self *Decoder) Infof(format string, args ...any) {
	fmt.Fprintf(&self.info, format, args...)
}

// Info returns the one line summary built up while decoding.
func (self *Decoder) Info() string {
	return self.info.String()
}

// Align rounds off up to a multiple of n. NDR alignment is relative to the
// start of the stub.
func Align(off, n int) int {
	if r := off % n; r != 0 {
		off += n - r
	}
	return off
}

// ReadUint16 reads an aligned 16-bit integer regardless of mode. The
// returned offset is the aligned start of the value.
func (self *Decoder) ReadUint16(buf *Buffer, off int) (int, uint16, error) {
	off = Align(off, 2)
	b, err := buf.Bytes(off, 2)
	if err != nil {
		return off, 0, err
	}
	return off, self.order.Uint16(b), nil
}

// ReadUint32 reads an aligned 32-bit integer regardless of mode. The
// returned offset is the aligned start of the value.
func (self *Decoder) ReadUint32(buf *Buffer, off int) (int, uint32, error) {
	off = Align(off, 4)
	b, err := buf.Bytes(off, 4)
	if err != nil {
		return off, 0, err
	}
	return off, self.order.Uint32(b), nil
}

// PeekUint32 returns the aligned 32-bit integer at off without producing
// any output.
func (self *Decoder) PeekUint32(buf *Buffer, off int) (uint32, error) {
	_, v, err := self.ReadUint32(buf, off)
	return v, err
}

func (self *Decoder) Uint8(buf *Buffer, off int, tree *Item, f *Field) (int, uint8, error) {
	if self.Conformance() {
		return off, 0, nil
	}
	b, err := buf.Bytes(off, 1)
	if err != nil {
		return off, 0, err
	}
	tree.AddField(f, buf, off, 1, b[0])
	return off + 1, b[0], nil
}

func (self *Decoder) Uint16(buf *Buffer, off int, tree *Item, f *Field) (int, uint16, error) {
	n, v, _, err := self.Uint16Item(buf, off, tree, f)
	return n, v, err
}

// Uint16Item is Uint16 but also returns the added item.
func (self *Decoder) Uint16Item(buf *Buffer, off int, tree *Item, f *Field) (int, uint16, *Item, error) {
	if self.Conformance() {
		return off, 0, nil, nil
	}
	start, v, err := self.ReadUint16(buf, off)
	if err != nil {
		return off, 0, nil, err
	}
	item := tree.AddField(f, buf, start, 2, v)
	return start + 2, v, item, nil
}

func (self *Decoder) Int16(buf *Buffer, off int, tree *Item, f *Field) (int, int16, error) {
	if self.Conformance() {
		return off, 0, nil
	}
	start, v, err := self.ReadUint16(buf, off)
	if err != nil {
		return off, 0, err
	}
	tree.AddField(f, buf, start, 2, int16(v))
	return start + 2, int16(v), nil
}

func (self *Decoder) Uint32(buf *Buffer, off int, tree *Item, f *Field) (int, uint32, error) {
	n, v, _, err := self.Uint32Item(buf, off, tree, f)
	return n, v, err
}

// Uint32Item is Uint32 but also returns the added item.
func (self *Decoder) Uint32Item(buf *Buffer, off int, tree *Item, f *Field) (int, uint32, *Item, error) {
	if self.Conformance() {
		return off, 0, nil, nil
	}
	start, v, err := self.ReadUint32(buf, off)
	if err != nil {
		return off, 0, nil, err
	}
	item := tree.AddField(f, buf, start, 4, v)
	return start + 4, v, item, nil
}

// Bitmask decodes a 32-bit flags word as f with one boolean child per bit
// field. Bits without a field are ignored.
func (self *Decoder) Bitmask(buf *Buffer, off int, tree *Item, f *Field, bits []*Field) (int, uint32, *Item, error) {
	if self.Conformance() {
		return off, 0, nil, nil
	}
	start, v, err := self.ReadUint32(buf, off)
	if err != nil {
		return off, 0, nil, err
	}
	item := tree.AddField(f, buf, start, 4, v)
	for _, b := range bits {
		item.AddField(b, buf, start, 4, v)
	}
	return start + 4, v, item, nil
}

// Uint8s consumes n raw bytes.
func (self *Decoder) Uint8s(buf *Buffer, off int, tree *Item, f *Field, n int) (int, []byte, error) {
	if self.Conformance() {
		return off, nil, nil
	}
	b, err := buf.Bytes(off, n)
	if err != nil {
		return off, nil, err
	}
	tree.AddField(f, buf, off, n, b)
	return off + n, b, nil
}

// Uint16s consumes n 16-bit units aligned to 2 and returns the raw bytes.
func (self *Decoder) Uint16s(buf *Buffer, off int, tree *Item, f *Field, n int) (int, []byte, error) {
	if self.Conformance() {
		return off, nil, nil
	}
	start := Align(off, 2)
	if n < 0 || n > buf.Remaining(start)/2 {
		return off, nil, boundsError(buf.Name(), start, n*2, buf.Len())
	}
	b, err := buf.Bytes(start, n*2)
	if err != nil {
		return off, nil, err
	}
	tree.AddField(f, buf, start, n*2, b)
	return start + n*2, b, nil
}

// CVString decodes a conformant varying array of UTF-16 characters. Trailing
// NUL characters are dropped.
func (self *Decoder) CVString(buf *Buffer, off int, tree *Item, f *Field) (int, string, error) {
	if self.Conformance() {
		return off, "", nil
	}
	start := off
	var maxCount, offset, actual uint32
	var err error
	pos := off
	if pos, maxCount, err = self.ReadUint32(buf, pos); err != nil {
		return off, "", err
	}
	pos += 4
	offStart := pos
	if offStart, offset, err = self.ReadUint32(buf, pos); err != nil {
		return off, "", err
	}
	pos = offStart + 4
	actualStart := pos
	if actualStart, actual, err = self.ReadUint32(buf, pos); err != nil {
		return off, "", err
	}
	pos = Align(actualStart+4, 2)
	if int64(actual)*2 > int64(buf.Remaining(pos)) {
		return off, "", boundsError(buf.Name(), pos, int(actual)*2, buf.Len())
	}
	data, err := buf.Bytes(pos, int(actual)*2)
	if err != nil {
		return off, "", err
	}
	s := UTF16ToString(data, self.order)

	item := tree.AddText(buf, start, pos+len(data)-start, "%s: %s", f.Name, s)
	item.AddField(FieldMaxCount, buf, Align(start, 4), 4, maxCount)
	item.AddField(FieldOffset, buf, offStart, 4, offset)
	item.AddField(FieldActualCount, buf, actualStart, 4, actual)
	item.AddString(f, buf, pos, len(data), s)
	return pos + len(data), s, nil
}

// Pointer decodes an NDR pointer and schedules its referent. Top level
// pointers have their referents, and everything those embed, decoded
// before Pointer returns. Embedded pointers are queued behind the
// referent currently being decoded.
func (self *Decoder) Pointer(buf *Buffer, off int, tree *Item, kind PointerKind, text string, fn Referent, cb PointerCallback) (int, error) {
	if self.Conformance() {
		return off, nil
	}
	start := off
	var item *Item
	if self.topLevel && kind == PointerRef {
		item = tree.AddText(buf, off, 0, "%s", text)
		self.addPointer(fn, cb, item)
	} else {
		idStart, id, err := self.ReadUint32(buf, off)
		if err != nil {
			return start, err
		}
		off = idStart + 4
		if id == 0 && kind != PointerRef {
			tree.AddText(buf, idStart, 4, "(NULL pointer) %s", text)
			return off, nil
		}
		item = tree.AddText(buf, idStart, 4, "%s", text)
		item.AddField(FieldReferentID, buf, idStart, 4, id)
		if kind == PointerFull {
			if self.fullPointers[id] {
				item.AppendText(" (duplicate referent)")
				return off, nil
			}
			self.fullPointers[id] = true
		}
		self.addPointer(fn, cb, item)
	}
	if !self.topLevel {
		return off, nil
	}
	n, err := self.flush(buf, off)
	if err != nil {
		return start, err
	}
	return n, nil
}

func (self *Decoder) addPointer(fn Referent, cb PointerCallback, item *Item) {
	p := &deferredPointer{fn: fn, cb: cb, item: item}
	self.pointers = slices.Insert(self.pointers, self.insertPos, p)
	self.insertPos++
}

func (self *Decoder) nextPending() *deferredPointer {
	for i := self.next; i < len(self.pointers); i++ {
		if self.pointers[i].fn != nil {
			self.next = i + 1
			self.insertPos = i + 1
			return self.pointers[i]
		}
	}
	return nil
}

func (self *Decoder) flush(buf *Buffer, off int) (int, error) {
	self.topLevel = false
	defer func() {
		self.topLevel = true
		self.insertPos = len(self.pointers)
	}()
	for {
		p := self.nextPending()
		if p == nil {
			return off, nil
		}
		fn := p.fn
		p.fn = nil

		self.mode = ModeConformance
		n, err := fn(self, buf, off, nil)
		self.mode = ModeData
		if err != nil {
			return off, err
		}
		dataStart := n
		n, err = fn(self, buf, n, p.item)
		if err != nil {
			return off, err
		}
		if p.cb != nil {
			p.cb(self, buf, p.item, dataStart, n)
		}
		off = n
	}
}

// UCArray decodes a uni-dimensional conformant array. In the conformance
// run it consumes the max_count; in the data run it decodes that many
// elements, stopping early if an element consumes nothing.
func (self *Decoder) UCArray(buf *Buffer, off int, tree *Item, elem Referent) (int, error) {
	if self.Conformance() {
		start, count, err := self.ReadUint32(buf, off)
		if err != nil {
			return off, err
		}
		self.maxCount = count
		self.maxCountOffset = start
		return start + 4, nil
	}
	count := self.maxCount
	tree.AddField(FieldMaxCount, buf, self.maxCountOffset, 4, count)
	start := off
	for i := uint32(0); i < count; i++ {
		prev := off
		n, err := elem(self, buf, off, tree)
		if err != nil {
			return start, err
		}
		if n == prev {
			break
		}
		off = n
	}
	return off, nil
}

// StrPointer decodes a pointer to a conformant varying string. The string
// is appended to the text of the pointer item and the levels-1 items above
// it. store, if set, receives the decoded string.
func (self *Decoder) StrPointer(buf *Buffer, off int, tree *Item, kind PointerKind, text string, f *Field, levels int, store func(string)) (int, error) {
	var s string
	fn := func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
		n, v, err := d.CVString(buf, off, tree, f)
		if err == nil && !d.Conformance() {
			s = v
		}
		return n, err
	}
	cb := func(d *Decoder, buf *Buffer, item *Item, start, end int) {
		for i := 0; i < levels; i++ {
			item.Ancestor(i).AppendText(": %s", s)
		}
		if store != nil {
			store(s)
		}
	}
	return self.Pointer(buf, off, tree, kind, text, fn, cb)
}

// PolicyHandle decodes a 20 byte context handle and labels it with its
// stored name. Closing marks the handle as closed.
func (self *Decoder) PolicyHandle(buf *Buffer, off int, tree *Item, f *Field, closing bool) (int, PolicyHandle, error) {
	var h PolicyHandle
	if self.Conformance() {
		return off, h, nil
	}
	start := Align(off, 4)
	b, err := buf.Bytes(start, len(h))
	if err != nil {
		return off, h, err
	}
	copy(h[:], b)
	item := tree.AddField(f, buf, start, len(h), b)
	item.AddField(FieldHandleAttributes, buf, start, 4, h.Attributes(self.order))
	item.AddString(FieldHandleUUID, buf, start+4, 16, h.UUID().String())
	if name, ok := self.handles.Name(h); ok {
		item.AppendText(": %s", name)
	}
	if closing {
		self.handles.Close(h)
	}
	return start + len(h), h, nil
}

// PeekPolicyHandle returns the handle at off without producing output.
func (self *Decoder) PeekPolicyHandle(buf *Buffer, off int) (PolicyHandle, error) {
	var h PolicyHandle
	b, err := buf.Bytes(Align(off, 4), len(h))
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func (self *Decoder) HandleName(h PolicyHandle) (string, bool) {
	return self.handles.Name(h)
}

func (self *Decoder) StoreHandleName(h PolicyHandle, name string) {
	log.Debugf("Naming policy handle %s %q\n", h, name)
	self.handles.StoreName(h, name)
}

// DosError decodes a Win32 status code. A non-zero status is added to the
// summary.
func (self *Decoder) DosError(buf *Buffer, off int, tree *Item, f *Field) (int, uint32, error) {
	if self.Conformance() {
		return off, 0, nil
	}
	start, v, err := self.ReadUint32(buf, off)
	if err != nil {
		return off, 0, err
	}
	item := tree.AddField(f, buf, start, 4, v)
	item.SetText("%s: %s (0x%08x)", f.Name, WerrorName(v), v)
	if v != 0 {
		self.Infof(", Error: %s", WerrorName(v))
	}
	return start + 4, v, nil
}
