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
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/jfjallid/go-spoolss/dcerpc"
)

const testHandle = "00000000" + "11111111111111111111111111111111"

// devmodeFixedSize is the size of a DEVMODE without driver extra data.
const devmodeFixedSize = 224

func decodeHex(t *testing.T, parts ...string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.Join(parts, ""))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func newTestDecoder(data []byte) (*dcerpc.Decoder, *dcerpc.Buffer, *dcerpc.Item) {
	buf := dcerpc.NewBuffer("test", data)
	return dcerpc.NewDecoder(dcerpc.LittleEndianASCII, nil, nil), buf, dcerpc.NewTree("test", buf)
}

func TestOperationsSorted(t *testing.T) {
	for i := 1; i < len(Operations); i++ {
		if Operations[i-1].Opnum >= Operations[i].Opnum {
			t.Fatalf("opnum %d listed after %d", Operations[i].Opnum, Operations[i-1].Opnum)
		}
	}
	for _, op := range Operations {
		if op.Response == nil {
			t.Errorf("%s has no response decoder", op.Name)
		}
	}
	op, ok := LookupOperation(OpAddPrinterDriverEx)
	if !ok || op.Name != "AddPrinterDriverEx" {
		t.Errorf("lookup of opnum 89 returned %q, %v", op.Name, ok)
	}
	if _, ok = LookupOperation(68); ok {
		t.Error("opnum 68 should be unknown")
	}
	if name := OperationName(68); name != "Unknown operation 68" {
		t.Errorf("unexpected name %q", name)
	}
	if OperationName(OpRouterReplyPrinterEx) != "RRPCN" {
		t.Error("Fail")
	}
}

func TestUnknownOpnum(t *testing.T) {
	res, err := DecodeRequest(nil, 68, dcerpc.LittleEndianASCII, nil, nil)
	if err == nil || res != nil {
		t.Fatal("expected an error for an unknown opnum")
	}
}

func TestSyntax(t *testing.T) {
	if !IsSpoolss(Syntax) {
		t.Fatal("Fail")
	}
	if Syntax.Major() != 1 || Syntax.Minor() != 0 {
		t.Errorf("unexpected version %d.%d", Syntax.Major(), Syntax.Minor())
	}
}

func TestGenericResponse(t *testing.T) {
	res, err := DecodeResponse(decodeHex(t, "00000000", "05000000"), OpOpenPrinter, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", Error: WERR_ACCESS_DENIED" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Tree.FindText("[Unimplemented dissector: SPOOLSS]") == nil {
		t.Error("missing unimplemented marker")
	}
	if rc := res.Tree.Find("spoolss.rc"); rc == nil || rc.Offset != 4 {
		t.Error("status not read from the last 4 bytes")
	}
}

func TestShortBufferIsMalformed(t *testing.T) {
	res, err := DecodeResponse([]byte{0, 0}, OpOpenPrinter, dcerpc.LittleEndianASCII, nil, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !dcerpc.IsMalformed(err) {
		t.Errorf("error %v is not malformed", err)
	}
	if res == nil || res.Tree.FindText("[Malformed Packet]") == nil {
		t.Error("missing malformed marker")
	}

	_, err = DecodeRequest(decodeHex(t, testHandle[:20]), OpGetPrinter, dcerpc.LittleEndianASCII, nil, nil)
	if !dcerpc.IsMalformed(err) {
		t.Errorf("truncated handle: got %v", err)
	}
}

func TestRelStr(t *testing.T) {
	// PRINTER_INFO_1 with only the name set
	data := decodeHex(t, "01000000", "00000000", "10000000", "00000000", "50004e000000")
	d, buf, tree := newTestDecoder(data)
	n, err := decodePrinterInfo1(d, buf, 0, tree)
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Errorf("consumed %d bytes, want 16", n)
	}
	if item := tree.Find("spoolss.printername"); item == nil || item.Value != "PN" {
		t.Errorf("unexpected printer name %v", item)
	}
	if item := tree.Find("spoolss.printerdesc"); item == nil || item.Value != "" {
		t.Errorf("offset 0 should give an empty description, got %v", item)
	}

	data = decodeHex(t, "01000000", "00000000", "40000000", "00000000")
	d, buf, tree = newTestDecoder(data)
	if _, err = decodePrinterInfo1(d, buf, 0, tree); !dcerpc.IsMalformed(err) {
		t.Errorf("offset outside the buffer: got %v", err)
	}
}

func TestRelStrUnterminated(t *testing.T) {
	data := decodeHex(t, "01000000", "00000000", "10000000", "00000000", "41004200")
	d, buf, tree := newTestDecoder(data)
	if _, err := decodePrinterInfo1(d, buf, 0, tree); err != nil {
		t.Fatal(err)
	}
	if item := tree.Find("spoolss.printername"); item == nil || item.Value != "AB" {
		t.Errorf("unexpected printer name %v", item)
	}
}

func TestSystemTime(t *testing.T) {
	data := decodeHex(t, "d307", "0400", "0200", "0f00", "0a00", "1e00", "0000", "0000")
	d, buf, tree := newTestDecoder(data)
	n, st, err := decodeSystemTime(d, buf, 0, tree, "Submitted")
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Errorf("consumed %d bytes, want 16", n)
	}
	if st.String() != "2003/04/15 10:30:00.000" {
		t.Errorf("unexpected time %s", st)
	}
	if tree.FindText("Submitted: 2003/04/15 10:30:00.000") == nil {
		t.Error("time not shown on the group item")
	}
}

func TestDevmodeUnsetFields(t *testing.T) {
	// 224 fixed bytes followed by 4 bytes of driver extra data
	data := make([]byte, devmodeFixedSize+4)
	binary.LittleEndian.PutUint16(data[74:], 4)
	binary.LittleEndian.PutUint32(data[76:], DMOrientation)
	binary.LittleEndian.PutUint16(data[80:], 1)
	d, buf, tree := newTestDecoder(data)
	n, err := decodeDevmode(d, buf, 0, tree)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(data) {
		t.Errorf("consumed %d bytes, want %d", n, len(data))
	}
	extra := tree.Find("spoolss.devmode.driver_extra")
	if extra == nil || extra.Offset != devmodeFixedSize || extra.Length != 4 {
		t.Errorf("unexpected driver extra %+v", extra)
	}
	orientation := tree.Find("spoolss.devmode.orientation")
	if orientation == nil || orientation.Unset || orientation.Value != uint16(1) {
		t.Errorf("unexpected orientation %+v", orientation)
	}
	paper := tree.Find("spoolss.devmode.paper_size")
	if paper == nil || !paper.Unset {
		t.Errorf("paper size should be flagged as unset: %+v", paper)
	}
}

func TestGetPrinterLevel(t *testing.T) {
	call := &dcerpc.Call{}
	req := decodeHex(t, testHandle, "01000000", "00000000", "00000000")
	res, err := DecodeRequest(req, OpGetPrinter, dcerpc.LittleEndianASCII, call, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", level 1" || res.Offset != len(req) {
		t.Errorf("unexpected request result %q, %d", res.Info, res.Offset)
	}
	if level, ok := call.Level(); !ok || level != 1 {
		t.Fatalf("level not stored: %d, %v", level, ok)
	}

	resp := decodeHex(t,
		"00000200", "14000000",
		"01000000", "10000000", "00000000", "00000000", "44000000",
		"14000000", "00000000")
	res, err = DecodeResponse(resp, OpGetPrinter, dcerpc.LittleEndianASCII, call, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", level 1" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Offset != len(resp) || res.Trailing != 0 {
		t.Errorf("offset %d, trailing %d", res.Offset, res.Trailing)
	}
	if item := res.Tree.Find("spoolss.printerdesc"); item == nil || item.Value != "D" {
		t.Errorf("unexpected description %v", item)
	}
	if item := res.Tree.FindText("Print info level 1"); item == nil || item.Source != bufferSourceName {
		t.Error("level 1 structure not decoded from the buffer")
	}

	res, err = DecodeResponse(resp, OpGetPrinter, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", level Unknown" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Tree.FindText("[Unknown printer info level Unknown]") == nil {
		t.Error("missing unknown level marker")
	}
	if res.Tree.Find("spoolss.printerdesc") != nil {
		t.Error("structure decoded without a level")
	}
}

func TestEnumPrintersStopsAtBufferEnd(t *testing.T) {
	call := &dcerpc.Call{}
	call.SetLevel(1)
	resp := decodeHex(t,
		"00000200", "10000000",
		"01000000", "00000000", "00000000", "00000000",
		"10000000", "03000000", "00000000")
	res, err := DecodeResponse(resp, OpEnumPrinters, dcerpc.LittleEndianASCII, call, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(res.Tree.FindAll("spoolss.printer.flags")); n != 1 {
		t.Errorf("decoded %d structures, want 1", n)
	}
	if res.Offset != len(resp) {
		t.Errorf("offset %d, want %d", res.Offset, len(resp))
	}
}

func TestOversizedBuffer(t *testing.T) {
	resp := decodeHex(t, "00000200", "00010000", "00000000")
	_, err := DecodeResponse(resp, OpGetPrinter, dcerpc.LittleEndianASCII, nil, nil)
	if !dcerpc.IsMalformed(err) {
		t.Errorf("got %v", err)
	}
}

func TestSetPrinterUnknownLevel(t *testing.T) {
	req := decodeHex(t, testHandle, "63000000", "63000000", "00000000")
	res, err := DecodeRequest(req, OpSetPrinter, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Offset != len(req) {
		t.Errorf("offset %d, want %d", res.Offset, len(req))
	}
	if res.Info != ", level 99" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Tree.FindText("[Unknown spool printer info level 99]") == nil {
		t.Error("missing unknown level marker")
	}
}

func TestOpenPrinterExNamesHandle(t *testing.T) {
	calls := dcerpc.NewCallTable()
	handles := dcerpc.NewHandleTable()
	drep := dcerpc.LittleEndianASCII

	req := decodeHex(t,
		"00000200", "03000000", "00000000", "03000000", "6c0070000000", "0000",
		"00000000",
		"00000000", "00000000",
		"08000000",
		"01000000", "00000000")
	call := calls.Begin(0, 7, OpOpenPrinterEx)
	res, err := DecodeRequest(req, OpOpenPrinterEx, drep, call, handles)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", lp" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Offset != len(req) {
		t.Errorf("offset %d, want %d", res.Offset, len(req))
	}
	if res.Tree.FindText("Printer name: lp") == nil {
		t.Error("name not shown on the pointer")
	}

	call, ok := calls.Lookup(0, 7)
	if !ok {
		t.Fatal("call not found")
	}
	resp := decodeHex(t, testHandle, "00000000")
	if _, err = DecodeResponse(resp, OpOpenPrinterEx, drep, call, handles); err != nil {
		t.Fatal(err)
	}
	calls.End(0, 7)

	var h dcerpc.PolicyHandle
	copy(h[:], resp)
	if name, ok := handles.Name(h); !ok || name != "OpenPrinterEx(lp)" {
		t.Fatalf("handle named %q, %v", name, ok)
	}
	if _, ok = call.PendingName(); ok {
		t.Error("pending name not cleared")
	}

	res, err = DecodeRequest(decodeHex(t, testHandle), OpClosePrinter, drep, nil, handles)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", OpenPrinterEx(lp)" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if handles.Open() != 0 {
		t.Error("handle not closed")
	}
}

func TestOpenPrinterExFailureKeepsHandleUnnamed(t *testing.T) {
	handles := dcerpc.NewHandleTable()
	call := &dcerpc.Call{}
	call.SetPendingName("lp")
	res, err := DecodeResponse(decodeHex(t, testHandle, "05000000"), OpOpenPrinterEx, dcerpc.LittleEndianASCII, call, handles)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", Error: WERR_ACCESS_DENIED" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if handles.Len() != 0 {
		t.Error("handle named despite the error")
	}
}

func TestReplyOpenPrinterWithoutRequest(t *testing.T) {
	handles := dcerpc.NewHandleTable()
	resp := decodeHex(t, testHandle, "00000000")
	if _, err := DecodeResponse(resp, OpReplyOpenPrinter, dcerpc.LittleEndianASCII, nil, handles); err != nil {
		t.Fatal(err)
	}
	var h dcerpc.PolicyHandle
	copy(h[:], resp)
	if name, _ := handles.Name(h); name != "ReplyOpenPrinter handle" {
		t.Errorf("unexpected name %q", name)
	}
}

func TestEnumPrinterDataEmptyName(t *testing.T) {
	resp := decodeHex(t, "00000000", "00000000", "01000000", "00000000", "00000000", "00000000")
	res, err := DecodeResponse(resp, OpEnumPrinterData, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != "" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Offset != len(resp) {
		t.Errorf("offset %d, want %d", res.Offset, len(resp))
	}
	if res.Tree.FindText("Value name") != nil {
		t.Error("empty value name shown")
	}
}

func TestWritePrinter(t *testing.T) {
	req := decodeHex(t, testHandle, "03000000", "616263", "00", "03000000")
	res, err := DecodeRequest(req, OpWritePrinter, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", 3 bytes" || res.Offset != len(req) {
		t.Errorf("unexpected request result %q, %d", res.Info, res.Offset)
	}
	res, err = DecodeResponse(decodeHex(t, "03000000", "00000000"), OpWritePrinter, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", 3 bytes written" {
		t.Errorf("unexpected info %q", res.Info)
	}
}

func TestRFFPCNEXChangeFlags(t *testing.T) {
	req := decodeHex(t, testHandle, "00010000", "00000000", "00000000", "00000000", "00000000")
	res, err := DecodeRequest(req, OpRemoteFindFirstPrinterChangeNotifyEx, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", change job" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Offset != len(req) {
		t.Errorf("offset %d, want %d", res.Offset, len(req))
	}
}

func TestEnumJobsUnknownLevel(t *testing.T) {
	call := &dcerpc.Call{}
	call.SetLevel(5)
	resp := decodeHex(t, "00000200", "04000000", "00000000", "04000000", "01000000", "00000000")
	res, err := DecodeResponse(resp, OpEnumJobs, dcerpc.LittleEndianASCII, call, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Tree.FindText("[Unknown job info level 5]") == nil {
		t.Error("missing unknown level marker")
	}
}
