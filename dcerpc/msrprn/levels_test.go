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
	"testing"

	"github.com/jfjallid/go-spoolss/dcerpc"
)

// Owner BUILTIN\Administrators, one DACL entry granting Everyone GENERIC_ALL
const testSD = "01000480140000000000000000000000" + "24000000" +
	"01020000000000052000000020020000" +
	"02001c0001000000" +
	"0003140000000010010100000000000100000000"

const (
	printerInfo2Size = 84
	jobInfo1Size     = 64
	jobInfo2Size     = 104
)

var le = binary.LittleEndian

// bufferStub returns a non NULL BUFFER holding data followed by the hex
// encoded tail.
func bufferStub(t *testing.T, data []byte, tail ...string) []byte {
	t.Helper()
	b := decodeHex(t, "00000200")
	b = le.AppendUint32(b, uint32(len(data)))
	b = append(b, data...)
	return append(b, decodeHex(t, tail...)...)
}

// putLandscapeDevmode writes a DEVMODE at off that only sets the
// orientation.
func putLandscapeDevmode(data []byte, off int) {
	le.PutUint32(data[off+76:], DMOrientation)
	le.PutUint16(data[off+80:], 2)
}

func decodeWithLevel(t *testing.T, resp []byte, opnum uint16, level uint32) *dcerpc.Result {
	t.Helper()
	call := &dcerpc.Call{}
	call.SetLevel(level)
	res, err := DecodeResponse(resp, opnum, dcerpc.LittleEndianASCII, call, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Offset != len(resp) {
		t.Errorf("offset %d, want %d", res.Offset, len(resp))
	}
	return res
}

func TestGetPrinterLevel2Offsets(t *testing.T) {
	sd := decodeHex(t, testSD)
	devmodeAt := printerInfo2Size
	sdAt := devmodeAt + devmodeFixedSize
	data := make([]byte, sdAt, sdAt+len(sd))
	// Both offsets count from the start of the buffer, the DEVMODE one
	// being 4 bytes too large.
	le.PutUint32(data[28:], uint32(devmodeAt+4))
	le.PutUint32(data[48:], uint32(sdAt))
	putLandscapeDevmode(data, devmodeAt)
	data = append(data, sd...)

	resp := bufferStub(t, data, "74010000", "00000000")
	res := decodeWithLevel(t, resp, OpGetPrinter, 2)

	orientation := res.Tree.Find("spoolss.devmode.orientation")
	if orientation == nil || orientation.Offset != devmodeAt+80 || orientation.Value != uint16(2) {
		t.Fatalf("unexpected orientation %+v", orientation)
	}
	if orientation.Source != bufferSourceName {
		t.Errorf("DEVMODE decoded from %s", orientation.Source)
	}
	owner := res.Tree.FindText("Owner: S-1-5-32-544 (BUILTIN\\Administrators)")
	if owner == nil || owner.Offset != sdAt+20 {
		t.Errorf("unexpected owner %+v", owner)
	}
	if res.Tree.FindText("ACE: AccessAllowed S-1-1-0") == nil {
		t.Error("DACL not decoded")
	}
}

func TestEnumJobsLevel2Offsets(t *testing.T) {
	sd := decodeHex(t, testSD)
	second := jobInfo2Size
	devmodeAt := 2 * jobInfo2Size
	sdAt := devmodeAt + devmodeFixedSize
	data := make([]byte, sdAt, sdAt+len(sd))
	le.PutUint32(data[0:], 1)
	le.PutUint32(data[second:], 2)
	// The DEVMODE offset counts from the structure, the security
	// descriptor offset from the start of the buffer.
	le.PutUint32(data[second+40:], uint32(devmodeAt-second+4))
	le.PutUint32(data[second+48:], uint32(sdAt))
	putLandscapeDevmode(data, devmodeAt)
	data = append(data, sd...)

	resp := bufferStub(t, data, "f0010000", "02000000", "00000000")
	res := decodeWithLevel(t, resp, OpEnumJobs, 2)

	if n := len(res.Tree.FindAll("spoolss.job.id")); n != 2 {
		t.Fatalf("decoded %d jobs, want 2", n)
	}
	orientations := res.Tree.FindAll("spoolss.devmode.orientation")
	if len(orientations) != 1 || orientations[0].Offset != devmodeAt+80 || orientations[0].Value != uint16(2) {
		t.Fatalf("unexpected orientations %+v", orientations)
	}
	owner := res.Tree.FindText("Owner: S-1-5-32-544")
	if owner == nil || owner.Offset != sdAt+20 {
		t.Errorf("unexpected owner %+v", owner)
	}
	job := res.Tree.FindText("Job info level 2")
	if job == nil || job.Length != jobInfo2Size {
		t.Errorf("unexpected first job %+v", job)
	}
}

func TestEnumJobsLevel1(t *testing.T) {
	data := make([]byte, 2*jobInfo1Size, 2*jobInfo1Size+8)
	le.PutUint32(data[0:], 1)
	le.PutUint32(data[16:], 2*jobInfo1Size)
	le.PutUint32(data[jobInfo1Size:], 2)
	le.PutUint32(data[jobInfo1Size+16:], jobInfo1Size+4)
	data = append(data, decodeHex(t, "61000000", "62000000")...)

	res := decodeWithLevel(t, bufferStub(t, data, "88000000", "02000000", "00000000"), OpEnumJobs, 1)
	for _, text := range []string{"Job info level 1: a", "Job info level 1: b"} {
		if item := res.Tree.FindText(text); item == nil || item.Length != jobInfo1Size {
			t.Errorf("%q: %+v", text, item)
		}
	}
	ids := res.Tree.FindAll("spoolss.job.id")
	if len(ids) != 2 || ids[0].Value != uint32(1) || ids[1].Value != uint32(2) {
		t.Errorf("unexpected job ids %+v", ids)
	}
}

func TestEnumPrinterDriversLevel1(t *testing.T) {
	data := decodeHex(t, "08000000", "0c000000", "6400310000000000", "6400320000000000")
	res := decodeWithLevel(t, bufferStub(t, data, "18000000", "02000000", "00000000"), OpEnumPrinterDrivers, 1)
	names := res.Tree.FindAll("spoolss.drivername")
	if len(names) != 2 || names[0].Value != "d1" || names[1].Value != "d2" {
		t.Errorf("unexpected driver names %+v", names)
	}
}

func TestEnumPrinterDriversLevel3(t *testing.T) {
	data := make([]byte, 40, 56)
	le.PutUint32(data[0:], 3)
	le.PutUint32(data[4:], 40)
	le.PutUint32(data[28:], 44)
	data = append(data, decodeHex(t, "78000000", "61000000", "62000000", "00000000")...)

	res := decodeWithLevel(t, bufferStub(t, data, "38000000", "01000000", "00000000"), OpEnumPrinterDrivers, 3)
	if item := res.Tree.Find("spoolss.driverversion"); item == nil || item.Value != uint32(3) {
		t.Errorf("unexpected version %+v", item)
	}
	if item := res.Tree.Find("spoolss.drivername"); item == nil || item.Value != "x" {
		t.Errorf("unexpected driver name %+v", item)
	}
	if item := res.Tree.Find("spoolss.dependentfiles"); item == nil || item.Value != "a" {
		t.Errorf("unexpected dependent files %+v", item)
	}
	if item := res.Tree.Find("spoolss.monitorname"); item == nil || item.Value != "" {
		t.Errorf("unexpected monitor name %+v", item)
	}
	if item := res.Tree.FindText("Driver info level 3"); item == nil || item.Length != 40 {
		t.Errorf("unexpected structure %+v", item)
	}
}

func TestEnumFormsLevel1(t *testing.T) {
	data := make([]byte, 64, 80)
	le.PutUint32(data[4:], 64)
	le.PutUint32(data[8:], 210000)
	le.PutUint32(data[36:], 72-32)
	data = append(data, decodeHex(t, "4100340000000000", "4200350000000000")...)

	res := decodeWithLevel(t, bufferStub(t, data, "50000000", "02000000", "00000000"), OpEnumForms, 1)
	for _, text := range []string{"Form: A4", "Form: B5"} {
		if item := res.Tree.FindText(text); item == nil || item.Length != 32 {
			t.Errorf("%q: %+v", text, item)
		}
	}
	if item := res.Tree.Find("spoolss.form.width"); item == nil || item.Value != uint32(210000) {
		t.Errorf("unexpected width %+v", item)
	}
}

func TestGetPrinterResponseUnknownLevel(t *testing.T) {
	resp := bufferStub(t, decodeHex(t, "01000000", "10000000", "00000000", "00000000", "44000000"),
		"14000000", "00000000")
	res := decodeWithLevel(t, resp, OpGetPrinter, 99)
	if res.Info != ", level 99" {
		t.Errorf("unexpected info %q", res.Info)
	}
	if res.Tree.FindText("[Unknown printer info level 99]") == nil {
		t.Error("missing unknown level marker")
	}
	if res.Tree.Find("spoolss.printerdesc") != nil {
		t.Error("structure decoded for an unknown level")
	}
}

func TestRelStrBigEndian(t *testing.T) {
	data := decodeHex(t, "00000001", "00000010", "00000000", "00000000", "0050004e0000")
	buf := dcerpc.NewBuffer("test", data)
	d := dcerpc.NewDecoder(dcerpc.DataRepresentation{0x00, 0x00, 0x00, 0x00}, nil, nil)
	tree := dcerpc.NewTree("test", buf)
	n, err := decodePrinterInfo1(d, buf, 0, tree)
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Errorf("consumed %d bytes, want 16", n)
	}
	if item := tree.Find("spoolss.printer.flags"); item == nil || item.Value != uint32(1) {
		t.Errorf("unexpected flags %+v", item)
	}
	desc := tree.Find("spoolss.printerdesc")
	if desc == nil || desc.Value != "PN" {
		t.Fatalf("unexpected description %+v", desc)
	}
	if s := desc.Find("spoolss.string"); s == nil || s.Offset != 16 || s.Length != 4 {
		t.Errorf("unexpected string item %+v", s)
	}
}

func TestEnumPrinterDataExValueOffsets(t *testing.T) {
	// Offsets of every record count from the start of the value buffer,
	// not from the record holding them.
	records := []string{
		"28000000", "04000000", "01000000", "2c000000", "04000000",
		"30000000", "04000000", "04000000", "34000000", "04000000",
		"61000000", "78000000", "62000000", "07000000",
	}
	resp := decodeHex(t, "38000000")
	resp = append(resp, decodeHex(t, records...)...)
	resp = append(resp, decodeHex(t, "38000000", "02000000", "00000000")...)
	res := decodeWithLevel(t, resp, OpEnumPrinterDataEx, 0)
	if res.Tree.FindText("Name: a, Value: x") == nil {
		t.Error("string value not found")
	}
	item := res.Tree.FindText("Name: b, Value: 7")
	if item == nil {
		t.Fatal("DWORD value not found")
	}
	if low := item.Find("spoolss.enumprinterdataex.val_dword.low"); low == nil || low.Offset != 52 {
		t.Errorf("unexpected DWORD item %+v", low)
	}
	if n := len(res.Tree.FindAll("spoolss.enumprinterdataex.name")); n != 2 {
		t.Errorf("%d names, want 2", n)
	}
}
