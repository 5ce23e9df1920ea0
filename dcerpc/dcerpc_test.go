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

package dcerpc

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	testFieldA = &Field{Name: "A", Abbrev: "test.a", Type: FieldUint32}
	testFieldB = &Field{Name: "B", Abbrev: "test.b", Type: FieldUint32, Base: BaseHex}
	testFieldS = &Field{Name: "S", Abbrev: "test.s", Type: FieldString}
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestBindAndBindAck(t *testing.T) {
	bind := mustHex(t, "05000b0310000000480000004204cb9ab810b81000000000010000000000010081bb7a364498f135ad3298f03800100302000000045d888aeb1cc9119fe808002b10486002000000")
	ack := mustHex(t, "05000c0310000000440000004204cb9ab810b810d75400000d005c706970655c6e747376637300000100000000000000045d888aeb1cc9119fe808002b10486002000000")

	var req BindReq
	if err := req.UnmarshalBinary(bind); err != nil {
		t.Fatal(err)
	}
	if req.CallId != 2596996162 || len(req.Items) != 1 {
		t.Fatalf("unexpected bind %+v", req)
	}
	want := uuid.MustParse("367abb81-9844-35f1-ad32-98f038001003")
	if req.Items[0].AbstractSyntax.UUID != want || req.Items[0].AbstractSyntax.Major() != 2 {
		t.Errorf("unexpected abstract syntax %s", req.Items[0].AbstractSyntax)
	}

	var res BindRes
	if err := res.UnmarshalBinary(ack); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(res.SecAddr, []byte("\\pipe\\ntsvcs\x00")) {
		t.Error("Fail")
	}
	if len(res.Results) != 1 || res.Results[0].Result != ResultAcceptance {
		t.Errorf("unexpected results %+v", res.Results)
	}

	conv := NewConversation(0)
	for _, pdu := range [][]byte{bind, ack} {
		msg, err := conv.Feed(pdu)
		if err != nil {
			t.Fatal(err)
		}
		if msg != nil {
			t.Fatal("bind produced a message")
		}
	}
	syntax, ok := conv.Interface(0)
	if !ok || syntax.UUID != want {
		t.Errorf("context 0 bound to %v, %v", syntax, ok)
	}
}

func TestBindRequest(t *testing.T) {
	iface := uuid.MustParse("12345678-1234-abcd-ef00-0123456789ab")
	buf := bindPDU(3, 1, iface, 1, 0)
	var req BindReq
	if err := req.UnmarshalBinary(buf); err != nil {
		t.Fatal(err)
	}
	if int(req.FragLength) != len(buf) {
		t.Errorf("frag length %d, have %d bytes", req.FragLength, len(buf))
	}
	if req.Items[0].Id != 1 || req.Items[0].AbstractSyntax.UUID != iface {
		t.Errorf("unexpected context %+v", req.Items[0])
	}
	if req.Items[0].TransferSyntax[0].UUID != NDRTransferSyntax {
		t.Errorf("unexpected transfer syntax %s", req.Items[0].TransferSyntax[0])
	}
}

func TestBindAckTransferSyntax(t *testing.T) {
	iface := uuid.MustParse("12345678-1234-abcd-ef00-0123456789ab")
	ndr64 := uuid.MustParse("71710533-beba-4937-8319-b5dbef9ccc36")
	tests := []struct {
		name     string
		result   uint16
		transfer uuid.UUID
		bound    bool
	}{
		{"accepted", ResultAcceptance, NDRTransferSyntax, true},
		{"rejected", ResultProviderRejection, NDRTransferSyntax, false},
		{"ndr64", ResultAcceptance, ndr64, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := NewConversation(0)
			for _, pdu := range [][]byte{bindPDU(4, 2, iface, 1, 0), bindAckPDU(4, tt.result, tt.transfer)} {
				if _, err := conv.Feed(pdu); err != nil {
					t.Fatal(err)
				}
			}
			if _, ok := conv.Interface(2); ok != tt.bound {
				t.Errorf("context bound: %v, want %v", ok, tt.bound)
			}
		})
	}
}

func fragment(t *testing.T, callId uint32, flags uint8, stub []byte) []byte {
	t.Helper()
	return requestPDU(callId, 0, 69, flags, stub)
}

func TestConversationReassembly(t *testing.T) {
	conv := NewConversation(0)
	msg, err := conv.Feed(fragment(t, 9, PfcFirstFrag, []byte{1, 2, 3, 4}))
	if err != nil || msg != nil {
		t.Fatalf("first fragment: %v, %v", msg, err)
	}
	msg, err = conv.Feed(fragment(t, 9, PfcLastFrag, []byte{5, 6}))
	if err != nil {
		t.Fatal(err)
	}
	want := &Message{
		Type:           PacketTypeRequest,
		CallId:         9,
		Opnum:          69,
		Representation: LittleEndianASCII,
		Stub:           []byte{1, 2, 3, 4, 5, 6},
		Fragments:      2,
	}
	if diff := cmp.Diff(want, msg); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
	}

	if _, err = conv.Feed(fragment(t, 10, PfcLastFrag, []byte{1})); err == nil {
		t.Error("expected an error for a fragment without a first fragment")
	}
}

func TestConversationMaxStub(t *testing.T) {
	conv := NewConversation(4)
	if _, err := conv.Feed(fragment(t, 1, PfcFirstFrag, []byte{1, 2, 3})); err != nil {
		t.Fatal(err)
	}
	if _, err := conv.Feed(fragment(t, 1, PfcLastFrag, []byte{4, 5})); err == nil {
		t.Error("expected the stub limit to be enforced")
	}
}

func TestSplitPDUs(t *testing.T) {
	a := fragment(t, 1, PfcFirstFrag|PfcLastFrag, []byte{1, 2, 3, 4})
	b := fragment(t, 2, PfcFirstFrag|PfcLastFrag, nil)
	pdus, err := SplitPDUs(append(append([]byte{}, a...), b...))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]byte{a, b}, pdus); diff != "" {
		t.Errorf("split mismatch (-want +got):\n%s", diff)
	}

	_, err = SplitPDUs(a[:len(a)-1])
	if errors.Cause(err) != ErrFragmentTooShort {
		t.Errorf("truncated PDU: got %v", err)
	}
	_, err = SplitPDUs(a[:10])
	if errors.Cause(err) != ErrShortHeader {
		t.Errorf("short header: got %v", err)
	}
}

// elem decodes a structure of a uint32 and a unique pointer to a uint32.
func elem(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
	pos, _, err := d.Uint32(buf, off, tree, testFieldA)
	if err != nil {
		return off, err
	}
	return d.Pointer(buf, pos, tree, PointerUnique, "B", func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
		n, _, err := d.Uint32(buf, off, tree, testFieldB)
		return n, err
	}, nil)
}

func TestDeferredPointers(t *testing.T) {
	stub := mustHex(t, "00000200 02000000 07000000 04000200 08000000 08000200 aa000000 bb000000")
	res, err := Decode("test", stub, LittleEndianASCII, nil, nil, func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
		return d.Pointer(buf, off, tree, PointerUnique, "Array", func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
			return d.UCArray(buf, off, tree, elem)
		}, nil)
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Offset != len(stub) || res.Trailing != 0 {
		t.Errorf("offset %d, trailing %d", res.Offset, res.Trailing)
	}
	var got []any
	for _, item := range res.Tree.FindAll("test.b") {
		got = append(got, item.Value)
	}
	if diff := cmp.Diff([]any{uint32(0xaa), uint32(0xbb)}, got); diff != "" {
		t.Errorf("referents decoded out of order (-want +got):\n%s", diff)
	}
	if mc := res.Tree.Find(FieldMaxCount.Abbrev); mc == nil || mc.Offset != 4 {
		t.Error("max count not taken from the conformance run")
	}
}

func TestNullAndDuplicatePointers(t *testing.T) {
	stub := mustHex(t, "00000000 01000000 2a000000 01000000")
	res, err := Decode("test", stub, LittleEndianASCII, nil, nil, func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
		fn := func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
			n, _, err := d.Uint32(buf, off, tree, testFieldA)
			return n, err
		}
		pos, err := d.Pointer(buf, off, tree, PointerUnique, "First", fn, nil)
		if err != nil {
			return off, err
		}
		if pos, err = d.Pointer(buf, pos, tree, PointerFull, "Second", fn, nil); err != nil {
			return off, err
		}
		return d.Pointer(buf, pos, tree, PointerFull, "Third", fn, nil)
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Tree.FindText("(NULL pointer) First") == nil {
		t.Error("missing NULL pointer item")
	}
	if res.Tree.FindText("Third (duplicate referent)") == nil {
		t.Error("duplicate full pointer not detected")
	}
	if n := len(res.Tree.FindAll("test.a")); n != 1 {
		t.Errorf("decoded %d referents, want 1", n)
	}
}

func TestCVStringByteOrder(t *testing.T) {
	stub := mustHex(t, "00000002 00000000 00000002 0041 0000")
	res, err := Decode("test", stub, DataRepresentation{0x00, 0x00, 0x00, 0x00}, nil, nil, func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
		n, _, err := d.CVString(buf, off, tree, testFieldS)
		return n, err
	})
	if err != nil {
		t.Fatal(err)
	}
	if s := res.Tree.Find("test.s"); s == nil || s.Value != "A" {
		t.Errorf("unexpected string %v", s)
	}
}

func TestCVStringTooLong(t *testing.T) {
	stub := mustHex(t, "10000000 00000000 10000000 4100")
	_, err := Decode("test", stub, LittleEndianASCII, nil, nil, func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
		n, _, err := d.CVString(buf, off, tree, testFieldS)
		return n, err
	})
	if !IsMalformed(err) {
		t.Errorf("got %v", err)
	}
}

func TestDosError(t *testing.T) {
	res, err := Decode("test", mustHex(t, "05000000"), LittleEndianASCII, nil, nil, func(d *Decoder, buf *Buffer, off int, tree *Item) (int, error) {
		n, _, err := d.DosError(buf, off, tree, &Field{Name: "Return code", Abbrev: "test.rc", Type: FieldUint32})
		return n, err
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", Error: WERR_ACCESS_DENIED" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if WerrorName(0xdeadbeef) != "Unknown error 0xdeadbeef" {
		t.Error("Fail")
	}
}

func TestHandleTable(t *testing.T) {
	table := NewHandleTable()
	var h PolicyHandle
	h[4] = 1
	table.StoreName(h, "OpenPrinterEx(lp)")
	table.Close(h)
	if name, ok := table.Name(h); !ok || name != "OpenPrinterEx(lp)" {
		t.Errorf("closed handle lost its name: %q, %v", name, ok)
	}
	if table.Open() != 0 {
		t.Error("Fail")
	}
	var other PolicyHandle
	other[4] = 2
	table.StoreName(other, "OpenPrinterEx(pdf)")
	if table.Open() != 1 || table.Len() != 2 {
		t.Errorf("%d open of %d handles", table.Open(), table.Len())
	}
	if _, ok := table.Name(PolicyHandle{}); ok {
		t.Error("unknown handle has a name")
	}
}

func TestCallTable(t *testing.T) {
	calls := NewCallTable()
	c := calls.Begin(0, 5, 8)
	c.SetLevel(2)
	got, ok := calls.Lookup(0, 5)
	if !ok {
		t.Fatal("call not found")
	}
	if level, ok := got.Level(); !ok || level != 2 {
		t.Errorf("level %d, %v", level, ok)
	}
	got.SetPendingName("lp")
	if _, ok = got.Level(); ok {
		t.Error("level survived a pending name")
	}
	calls.End(0, 5)
	if calls.Len() != 0 {
		t.Error("Fail")
	}
	var nilCall *Call
	if _, ok = nilCall.Level(); ok {
		t.Error("Fail")
	}
}

func TestRender(t *testing.T) {
	buf := NewBuffer("test", make([]byte, 8))
	tree := NewTree("Root", buf)
	item := tree.AddText(buf, 0, 8, "Child")
	item.AddField(testFieldA, buf, 0, 4, uint32(7))
	item.AddField(testFieldB, buf, 4, 4, uint32(0x10)).SetHidden()
	item.AddField(testFieldA, buf, 4, 4, uint32(1)).SetUnset(true)

	var out bytes.Buffer
	if err := tree.Render(&out, RenderOptions{Indent: "  "}); err != nil {
		t.Fatal(err)
	}
	want := []string{"Root", "  Child", "    A: 7", "    A: 1 [not set in fields mask]", ""}
	if diff := cmp.Diff(want, strings.Split(out.String(), "\n")); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}

	out.Reset()
	if err := tree.Render(&out, RenderOptions{ShowHidden: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "B: 0x00000010") {
		t.Error("hidden item not rendered")
	}
}

func TestItemFind(t *testing.T) {
	tree := NewTree("Root", nil)
	a := tree.AddText(nil, 0, 0, "a")
	b := a.AddField(testFieldA, nil, 0, 4, uint32(1))
	if diff := cmp.Diff(b, tree.Find("test.a"), cmpopts.IgnoreUnexported(Item{})); diff != "" {
		t.Errorf("find mismatch:\n%s", diff)
	}
	if b.Ancestor(2) != tree || b.Parent() != a {
		t.Error("Fail")
	}
	var nilItem *Item
	if nilItem.AddText(nil, 0, 0, "x") != nil {
		t.Error("nil item grew a child")
	}
}
