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

// Package msrprn decodes the stubs of the Print System Remote Protocol
// (MS-RPRN), also known as SPOOLSS, into display trees.
//
// Only the calls seen in day to day printing and in printer notification
// traffic have dedicated decoders. Every other response is reduced to its
// status code.

package msrprn

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jfjallid/go-spoolss/dcerpc"
	"github.com/jfjallid/golog"
	"github.com/pkg/errors"
)

var log = golog.Get("github.com/jfjallid/go-spoolss/dcerpc/msrprn")

const (
	MSRPCUuidSpoolss                = "12345678-1234-ABCD-EF00-0123456789AB"
	MSRPCSpoolssPipe                = "spoolss"
	MSRPCSpoolssMajorVersion uint16 = 1
	MSRPCSpoolssMinorVersion uint16 = 0
)

// Syntax is the abstract syntax a spoolss presentation context binds.
var Syntax = dcerpc.SyntaxId{
	UUID:    uuid.MustParse(MSRPCUuidSpoolss),
	Version: uint32(MSRPCSpoolssMinorVersion)<<16 | uint32(MSRPCSpoolssMajorVersion),
}

// IsSpoolss reports whether s is the spoolss interface, any minor version.
func IsSpoolss(s dcerpc.SyntaxId) bool {
	return s.UUID == Syntax.UUID && s.Major() == MSRPCSpoolssMajorVersion
}

// Operation ties an opnum to its name and stub decoders. A nil Request
// means the request stub is not decoded.
type Operation struct {
	Opnum    uint16
	Name     string
	Request  dcerpc.StubDecoder
	Response dcerpc.StubDecoder
}

func generic(op uint16, name string) Operation {
	return Operation{Opnum: op, Name: name, Response: genericResponse}
}

// Operations lists every known opnum in ascending order.
var Operations = []Operation{
	{OpEnumPrinters, "EnumPrinters", enumPrintersRequest, enumPrintersResponse},
	generic(OpOpenPrinter, "OpenPrinter"),
	{OpSetJob, "SetJob", setJobRequest, decodeStatus},
	{OpGetJob, "GetJob", getJobRequest, getJobResponse},
	{OpEnumJobs, "EnumJobs", enumJobsRequest, enumJobsResponse},
	generic(OpAddPrinter, "AddPrinter"),
	{OpDeletePrinter, "DeletePrinter", deletePrinterRequest, handleStatusResponse},
	{OpSetPrinter, "SetPrinter", setPrinterRequest, decodeStatus},
	{OpGetPrinter, "GetPrinter", getPrinterRequest, getPrinterResponse},
	{OpAddPrinterDriver, "AddPrinterDriver", nil, decodeStatus},
	{OpEnumPrinterDrivers, "EnumPrinterDrivers", enumPrinterDriversRequest, enumPrinterDriversResponse},
	generic(OpGetPrinterDriver, "GetPrinterDriver"),
	generic(OpGetPrinterDriverDirectory, "GetPrinterDriverDirectory"),
	generic(OpDeletePrinterDriver, "DeletePrinterDriver"),
	generic(OpAddPrintProcessor, "AddPrintProcessor"),
	generic(OpEnumPrintProcessors, "EnumPrintProcessor"),
	generic(OpGetPrintProcessorDirectory, "GetPrintProcessorDirectory"),
	{OpStartDocPrinter, "StartDocPrinter", startDocPrinterRequest, startDocPrinterResponse},
	{OpStartPagePrinter, "StartPagePrinter", namedHandleRequest, decodeStatus},
	{OpWritePrinter, "WritePrinter", writePrinterRequest, writePrinterResponse},
	{OpEndPagePrinter, "EndPagePrinter", namedHandleRequest, decodeStatus},
	generic(OpAbortPrinter, "AbortPrinter"),
	generic(OpReadPrinter, "ReadPrinter"),
	{OpEndDocPrinter, "EndDocPrinter", namedHandleRequest, decodeStatus},
	generic(OpAddJob, "AddJob"),
	generic(OpScheduleJob, "ScheduleJob"),
	{OpGetPrinterData, "GetPrinterData", getPrinterDataRequest, getPrinterDataResponse},
	{OpSetPrinterData, "SetPrinterData", setPrinterDataRequest, printerDataStatus},
	generic(OpWaitForPrinterChange, "WaitForPrinterChange"),
	{OpClosePrinter, "ClosePrinter", closePrinterRequest, handleStatusResponse},
	{OpAddForm, "AddForm", addFormRequest, formStatus},
	{OpDeleteForm, "DeleteForm", deleteFormRequest, formStatus},
	{OpGetForm, "GetForm", getFormRequest, getFormResponse},
	{OpSetForm, "SetForm", setFormRequest, formStatus},
	{OpEnumForms, "EnumForms", enumFormsRequest, enumFormsResponse},
	generic(OpEnumPorts, "EnumPorts"),
	generic(OpEnumMonitors, "EnumMonitors"),
	generic(OpAddPort, "AddPort"),
	generic(OpConfigurePort, "ConfigurePort"),
	generic(OpDeletePort, "DeletePort"),
	generic(OpCreatePrinterIC, "CreatePrinterIC"),
	generic(OpPlayGDIScriptOnPrinterIC, "PlayDiscriptOnPrinterIC"),
	generic(OpDeletePrinterIC, "DeletePrinterIC"),
	generic(OpAddPrinterConnection, "AddPrinterConnection"),
	generic(OpDeletePrinterConnection, "DeletePrinterConnection"),
	generic(OpPrinterMessageBox, "PrinterMessageBox"),
	generic(OpAddMonitor, "AddMonitor"),
	generic(OpDeleteMonitor, "DeleteMonitor"),
	generic(OpDeletePrintProcessor, "DeletePrintProcessor"),
	generic(OpAddPrintProvider, "AddPrintProvider"),
	generic(OpDeletePrintProvider, "DeletePrintProvider"),
	generic(OpEnumPrintProcDataTypes, "EnumPrintProcDataTypes"),
	generic(OpResetPrinter, "ResetPrinter"),
	{OpGetPrinterDriver2, "GetPrinterDriver2", getPrinterDriver2Request, getPrinterDriver2Response},
	generic(OpFindFirstPrinterChangeNotification, "FindFirstPrinterChangeNotification"),
	generic(OpFindNextPrinterChangeNotification, "FindNextPrinterChangeNotification"),
	{OpFindClosePrinterChangeNotification, "FCPN", fcpnRequest, decodeStatus},
	generic(OpRouterFindFirstPrinterNotificationOld, "RouterFindFirstPrinterNotificationOld"),
	{OpReplyOpenPrinter, "ReplyOpenPrinter", replyOpenPrinterRequest, replyOpenPrinterResponse},
	{OpRouterReplyPrinter, "RouterReplyPrinter", routerReplyPrinterRequest, decodeStatus},
	{OpReplyClosePrinter, "ReplyClosePrinter", replyClosePrinterRequest, handleStatusResponse},
	generic(OpAddPortEx, "AddPortEx"),
	generic(OpRemoteFindFirstPrinterChangeNotification, "RemoteFindFirstPrinterChangeNotification"),
	generic(OpSpoolerInit, "SpoolerInit"),
	generic(OpResetPrinterEx, "ResetPrinterEx"),
	{OpRemoteFindFirstPrinterChangeNotifyEx, "RFFPCNEX", rffpcnexRequest, decodeStatus},
	{OpRouterReplyPrinterEx, "RRPCN", rrpcnRequest, rrpcnResponse},
	{OpRemoteFindNextPrinterChangeNotifyEx, "RFNPCNEX", rfnpcnexRequest, rfnpcnexResponse},
	{OpOpenPrinterEx, "OpenPrinterEx", openPrinterExRequest, openPrinterExResponse},
	{OpAddPrinterEx, "AddPrinterEx", nil, addPrinterExResponse},
	{OpEnumPrinterData, "EnumPrinterData", enumPrinterDataRequest, enumPrinterDataResponse},
	{OpDeletePrinterData, "DeletePrinterData", deletePrinterDataRequest, printerDataStatus},
	{OpSetPrinterDataEx, "SetPrinterDataEx", setPrinterDataExRequest, printerDataStatus},
	{OpGetPrinterDataEx, "GetPrinterDataEx", getPrinterDataExRequest, getPrinterDataExResponse},
	{OpEnumPrinterDataEx, "EnumPrinterDataEx", enumPrinterDataExRequest, enumPrinterDataExResponse},
	{OpEnumPrinterKey, "EnumPrinterKey", enumPrinterKeyRequest, enumPrinterKeyResponse},
	generic(OpDeletePrinterDataEx, "DeletePrinterDataEx"),
	generic(OpDeletePrinterDriverEx, "DeletePrinterDriverEx"),
	generic(OpAddPrinterDriverEx, "AddPrinterDriverEx"),
}

// LookupOperation returns the table entry for opnum.
func LookupOperation(opnum uint16) (Operation, bool) {
	i := sort.Search(len(Operations), func(i int) bool {
		return Operations[i].Opnum >= opnum
	})
	if i < len(Operations) && Operations[i].Opnum == opnum {
		return Operations[i], true
	}
	return Operation{}, false
}

// OperationName returns the name of opnum or "Unknown operation N".
func OperationName(opnum uint16) string {
	if op, ok := LookupOperation(opnum); ok {
		return op.Name
	}
	return fmt.Sprintf("Unknown operation %d", opnum)
}

func skipStub(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return off, nil
}

func decodeStub(stub []byte, opnum uint16, drep dcerpc.DataRepresentation, call *dcerpc.Call, handles dcerpc.HandleNamer, request bool) (*dcerpc.Result, error) {
	op, ok := LookupOperation(opnum)
	if !ok {
		return nil, errors.Errorf("unknown SPOOLSS opnum %d", opnum)
	}
	fn, kind := op.Response, "response"
	if request {
		fn, kind = op.Request, "request"
	}
	if fn == nil {
		log.Debugf("No %s decoder for %s\n", kind, op.Name)
		fn = skipStub
	}
	res, err := dcerpc.Decode(fmt.Sprintf("SPOOLSS %s %s", op.Name, kind), stub, drep, call, handles, fn)
	if err != nil {
		return res, errors.Wrapf(err, "opnum %d", opnum)
	}
	return res, nil
}

// DecodeRequest decodes the stub of a request. call carries the state that
// the matching response needs and handles resolves policy handle names;
// either may be nil.
func DecodeRequest(stub []byte, opnum uint16, drep dcerpc.DataRepresentation, call *dcerpc.Call, handles dcerpc.HandleNamer) (*dcerpc.Result, error) {
	return decodeStub(stub, opnum, drep, call, handles, true)
}

// DecodeResponse decodes the stub of a response using the state the request
// left in call.
func DecodeResponse(stub []byte, opnum uint16, drep dcerpc.DataRepresentation, call *dcerpc.Call, handles dcerpc.HandleNamer) (*dcerpc.Result, error) {
	return decodeStub(stub, opnum, drep, call, handles, false)
}
