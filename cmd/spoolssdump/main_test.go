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

package main

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jfjallid/go-spoolss/dcerpc"
	"github.com/jfjallid/go-spoolss/dcerpc/msrprn"
)

const testHandle = "00000000" + "11111111111111111111111111111111"

func stub(t *testing.T, parts ...string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.Join(parts, ""))
	require.NoError(t, err)
	return b
}

// frame builds a single fragment little endian PDU of the given type.
func frame(ptype uint8, callID uint32, hdr, stub []byte) []byte {
	le := binary.LittleEndian
	b := []byte{5, 0, ptype, dcerpc.PfcFirstFrag | dcerpc.PfcLastFrag}
	b = append(b, dcerpc.LittleEndianASCII[:]...)
	b = le.AppendUint16(b, uint16(dcerpc.HeaderLen+len(hdr)+len(stub)))
	b = le.AppendUint16(b, 0)
	b = le.AppendUint32(b, callID)
	b = append(b, hdr...)
	return append(b, stub...)
}

func request(callID uint32, opnum uint16, stub []byte) []byte {
	le := binary.LittleEndian
	hdr := le.AppendUint32(nil, uint32(len(stub)))
	hdr = le.AppendUint16(hdr, 0)
	hdr = le.AppendUint16(hdr, opnum)
	return frame(dcerpc.PacketTypeRequest, callID, hdr, stub)
}

func response(callID uint32, stub []byte) []byte {
	hdr := binary.LittleEndian.AppendUint32(nil, uint32(len(stub)))
	hdr = append(hdr, 0, 0, 0, 0)
	return frame(dcerpc.PacketTypeResponse, callID, hdr, stub)
}

func concat(pdus ...[]byte) (out []byte) {
	for _, p := range pdus {
		out = append(out, p...)
	}
	return
}

// openPrinter is an OpenPrinterEx("lp") and its response.
func openPrinter(t *testing.T) []byte {
	openReq := stub(t,
		"00000200", "03000000", "00000000", "03000000", "6c0070000000", "0000",
		"00000000",
		"00000000", "00000000",
		"08000000",
		"01000000", "00000000")
	return concat(
		request(7, msrprn.OpOpenPrinterEx, openReq),
		response(7, stub(t, testHandle, "00000000")),
	)
}

// openClose is openPrinter followed by a ClosePrinter of the returned
// handle.
func openClose(t *testing.T) []byte {
	return concat(
		openPrinter(t),
		request(8, msrprn.OpClosePrinter, stub(t, testHandle)),
		response(8, stub(t, strings.Repeat("00", 20), "00000000")),
	)
}

func TestDumpCorrelatesCalls(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interface = "spoolss"
	var out bytes.Buffer
	d, err := newDumper(cfg, &out)
	require.NoError(t, err)

	d.Process("test", openClose(t))
	text := out.String()
	require.Contains(t, text, "SPOOLSS OpenPrinterEx request, lp\n")
	require.Contains(t, text, "SPOOLSS OpenPrinterEx response\n")
	require.Contains(t, text, "SPOOLSS ClosePrinter request, OpenPrinterEx(lp)\n")
	require.Equal(t, stats{PDUs: 4, Decoded: 4, Bytes: uint64(len(openClose(t)))}, d.stats)
	require.Equal(t, 0, d.calls.Len())
	require.Equal(t, 0, d.handles.Open())
}

func TestDumpReportsOpenHandles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interface = "spoolss"
	var out bytes.Buffer
	d, err := newDumper(cfg, &out)
	require.NoError(t, err)

	d.Process("test", openPrinter(t))
	require.Equal(t, 1, d.handles.Open())
	require.Contains(t, d.Summary(), "2 PDUs, 2 decoded, 0 malformed, 0 skipped, 1 handles left open")
}

func TestDumpSkipsUnboundContexts(t *testing.T) {
	var out bytes.Buffer
	d, err := newDumper(DefaultConfig(), &out)
	require.NoError(t, err)

	d.Process("test", openClose(t))
	require.Equal(t, 4, d.stats.Skipped)
	require.Equal(t, 0, d.stats.Decoded)
	require.NotContains(t, out.String(), "OpenPrinterEx")
}

func TestDumpContinuesAfterMalformed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interface = msrprn.MSRPCUuidSpoolss
	var out bytes.Buffer
	d, err := newDumper(cfg, &out)
	require.NoError(t, err)

	stream := concat(
		request(1, msrprn.OpClosePrinter, stub(t, "00000000")),
		request(2, msrprn.OpClosePrinter, stub(t, testHandle, "01020304")),
	)
	d.Process("test", stream)
	text := out.String()
	require.Contains(t, text, "[Malformed Packet]")
	require.Contains(t, text, "[Long frame (4 bytes): SPOOLSS]")
	require.Equal(t, 1, d.stats.Malformed)
	require.Equal(t, 1, d.stats.Decoded)
}

func TestDumpTruncatedStream(t *testing.T) {
	var out bytes.Buffer
	d, err := newDumper(DefaultConfig(), &out)
	require.NoError(t, err)

	stream := openClose(t)
	d.Process("capture", stream[:len(stream)-2])
	require.Equal(t, 3, d.stats.PDUs)
	require.Equal(t, 1, d.stats.Malformed)
	require.Contains(t, out.String(), "capture: ")
}

func TestReadInputHex(t *testing.T) {
	in := "# bind\n0500 0b03  # header\n\t10000000\n\n"
	data, err := readInput(strings.NewReader(in), FormatHex)
	require.NoError(t, err)
	require.Equal(t, []byte{0x05, 0x00, 0x0b, 0x03, 0x10, 0x00, 0x00, 0x00}, data)

	_, err = readInput(strings.NewReader("0g"), FormatHex)
	require.Error(t, err)

	data, err = readInput(strings.NewReader("# raw"), FormatRaw)
	require.NoError(t, err)
	require.Equal(t, []byte("# raw"), data)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "capture.hex")
	require.NoError(t, os.WriteFile(name, []byte(hex.EncodeToString(openClose(t))), 0o600))

	cfg := DefaultConfig()
	cfg.Interface = "spoolss"
	var out bytes.Buffer
	require.NoError(t, run(cfg, []string{name}, nil, &out))
	require.Contains(t, out.String(), "4 PDUs, 4 decoded, 0 malformed, 0 skipped, 0 handles left open")

	out.Reset()
	require.Error(t, run(cfg, []string{filepath.Join(dir, "missing")}, nil, &out))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "spoolssdump.yml")
	require.NoError(t, os.WriteFile(name, []byte("format: raw\nshow_hidden: true\nmax_pdu_size: 1024\n"), 0o600))

	cfg, err := ReadConfig(name)
	require.NoError(t, err)
	want := DefaultConfig()
	want.Format = FormatRaw
	want.ShowHidden = true
	want.MaxPDUSize = 1024
	require.Equal(t, want, cfg)

	require.NoError(t, os.WriteFile(name, []byte("formt: raw\n"), 0o600))
	_, err = ReadConfig(name)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(name, nil, 0o600))
	cfg, err = ReadConfig(name)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Format = "pcap"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Interface = "not-a-uuid"
	require.Error(t, cfg.Validate())
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowOffsets = true
	opts := flags{format: FormatRaw, hidden: true}
	opts.apply(&cfg)
	require.Equal(t, FormatRaw, cfg.Format)
	require.True(t, cfg.ShowHidden)
	require.True(t, cfg.ShowOffsets)
	require.Equal(t, DefaultConfig().MaxPDUSize, cfg.MaxPDUSize)
}
