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
	"testing"

	"github.com/jfjallid/go-spoolss/dcerpc"
)

// testNotifyInfo is a PRINTER_NOTIFY_INFO with five entries: a printer
// name string, a job page count, a job submission time, a job field
// without a known layout and an entry of an unknown notify type.
var testNotifyInfo = []string{
	"00000200",
	"05000000", // max_count
	"02000000", "00000000", "05000000",
	// Printer notify, Printer name: bufsize then a string pointer
	"0000", "0100", "01000000", "00000000", "01000000", "04000000", "04000200",
	// Job notify, Total pages
	"0100", "1400", "01000000", "07000000", "01000000", "05000000", "00000000",
	// Job notify, Submitted: buffer length then a SYSTEMTIME pointer
	"0100", "1000", "01000000", "07000000", "01000000", "10000000", "08000200",
	// Job notify, field 0x99
	"0100", "9900", "01000000", "07000000", "01000000", "aa000000", "bb000000",
	// Unknown notify type 5 carries no data
	"0500", "0000", "01000000", "00000000", "01000000",
	// Deferred referents
	"02000000", "6c007000",
	"d307", "0400", "0200", "0f00", "0a00", "1e00", "0000", "0000",
}

func checkNotifyInfo(t *testing.T, tree *dcerpc.Item) {
	t.Helper()
	if tree.FindText("Printer notify, Printer name: lp") == nil {
		t.Error("printer name not shown")
	}
	if item := tree.Find("spoolss.printername"); item == nil || item.Value != "lp" || !item.Hidden {
		t.Errorf("unexpected printer name %+v", item)
	}
	if tree.FindText("Job notify, Total pages: 5") == nil {
		t.Error("page count not shown")
	}
	if item := tree.Find("spoolss.job.totalpages"); item == nil || item.Value != uint32(5) {
		t.Errorf("unexpected page count %+v", item)
	}
	if tree.FindText("Job notify, Submitted: 2003/04/15 10:30:00.000") == nil {
		t.Error("submission time not shown")
	}

	unknownField := tree.FindText("Job notify, Unknown (153)")
	if unknownField == nil || unknownField.Length != 24 {
		t.Fatalf("unexpected entry for field 0x99 %+v", unknownField)
	}
	if v := unknownField.Find("spoolss.notify_info_data.value2"); v == nil || v.Value != uint32(0xbb) {
		t.Errorf("unexpected second value %+v", v)
	}

	unknownType := tree.FindText("Unknown (5), Unknown field")
	if unknownType == nil || unknownType.Length != 16 {
		t.Errorf("unexpected entry for type 5 %+v", unknownType)
	}
	if tree.FindText("[Unknown notify type 5]") == nil {
		t.Error("missing unknown notify type marker")
	}
}

func TestRRPCNNotifyInfo(t *testing.T) {
	parts := append([]string{testHandle, "03000000", "00000000", "00000000", "00000000"}, testNotifyInfo...)
	req := decodeHex(t, parts...)
	res, err := DecodeRequest(req, OpRouterReplyPrinterEx, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", changeid 3, 5 notifies" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Offset != len(req) {
		t.Errorf("offset %d, want %d", res.Offset, len(req))
	}
	checkNotifyInfo(t, res.Tree)
}

func TestRFNPCNEXNotifyInfo(t *testing.T) {
	resp := decodeHex(t, append(testNotifyInfo, "00000000")...)
	res, err := DecodeResponse(resp, OpRemoteFindNextPrinterChangeNotifyEx, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", 5 notifies" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Offset != len(resp) {
		t.Errorf("offset %d, want %d", res.Offset, len(resp))
	}
	checkNotifyInfo(t, res.Tree)
}

func TestNotifyInfoSingle(t *testing.T) {
	resp := decodeHex(t,
		"00000200", "01000000", "02000000", "00000000", "01000000",
		"0100", "9900", "01000000", "07000000", "01000000", "aa000000", "bb000000",
		"00000000")
	res, err := DecodeResponse(resp, OpRemoteFindNextPrinterChangeNotifyEx, dcerpc.LittleEndianASCII, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Info != ", 1 notification" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Tree.FindText("Field: Unknown (153)") == nil {
		t.Error("raw field number not shown")
	}
}
