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

import "fmt"

// MS-ERREF Section 2.2 Win32 error codes as returned by the print spooler
const (
	WerrOK                    uint32 = 0x00000000
	WerrBadFunc               uint32 = 0x00000001
	WerrBadFile               uint32 = 0x00000002
	WerrAccessDenied          uint32 = 0x00000005
	WerrBadFid                uint32 = 0x00000006
	WerrNoMem                 uint32 = 0x00000008
	WerrInvalidData           uint32 = 0x0000000d
	WerrNotReady              uint32 = 0x00000015
	WerrNotSupported          uint32 = 0x00000032
	WerrInvalidParam          uint32 = 0x00000057
	WerrInsufficientBuffer    uint32 = 0x0000007a
	WerrInvalidName           uint32 = 0x0000007b
	WerrUnknownLevel          uint32 = 0x0000007c
	WerrMoreData              uint32 = 0x000000ea
	WerrNoMoreItems           uint32 = 0x00000103
	WerrNotFound              uint32 = 0x00000490
	WerrServerUnavailable     uint32 = 0x000006ba
	WerrProcNumOutOfRange     uint32 = 0x000006d1
	WerrUnknownPrinterDriver  uint32 = 0x00000704
	WerrUnknownPrintProcessor uint32 = 0x00000705
	WerrInvalidPrinterName    uint32 = 0x00000709
	WerrPrinterAlreadyExists  uint32 = 0x0000070a
	WerrInvalidPrinterCommand uint32 = 0x0000070b
	WerrInvalidDatatype       uint32 = 0x0000070c
	WerrInvalidEnvironment    uint32 = 0x0000070d
	WerrInvalidFormName       uint32 = 0x0000076e
	WerrInvalidFormSize       uint32 = 0x0000076f
	WerrUnknownPrintMonitor   uint32 = 0x00000bb8
	WerrPrinterNotFound       uint32 = 0x00000bc4
)

var werrorNames = map[uint32]string{
	WerrOK:                    "WERR_OK",
	WerrBadFunc:               "WERR_BADFUNC",
	WerrBadFile:               "WERR_BADFILE",
	WerrAccessDenied:          "WERR_ACCESS_DENIED",
	WerrBadFid:                "WERR_BADFID",
	WerrNoMem:                 "WERR_NOMEM",
	WerrInvalidData:           "WERR_INVALID_DATA",
	WerrNotReady:              "WERR_NOT_READY",
	WerrNotSupported:          "WERR_NOT_SUPPORTED",
	WerrInvalidParam:          "WERR_INVALID_PARAM",
	WerrInsufficientBuffer:    "WERR_INSUFFICIENT_BUFFER",
	WerrInvalidName:           "WERR_INVALID_NAME",
	WerrUnknownLevel:          "WERR_UNKNOWN_LEVEL",
	WerrMoreData:              "WERR_MORE_DATA",
	WerrNoMoreItems:           "WERR_NO_MORE_ITEMS",
	WerrNotFound:              "WERR_NOT_FOUND",
	WerrServerUnavailable:     "WERR_RPC_S_SERVER_UNAVAILABLE",
	WerrProcNumOutOfRange:     "WERR_PROCNUM_OUT_OF_RANGE",
	WerrUnknownPrinterDriver:  "WERR_UNKNOWN_PRINTER_DRIVER",
	WerrUnknownPrintProcessor: "WERR_UNKNOWN_PRINTPROCESSOR",
	WerrInvalidPrinterName:    "WERR_INVALID_PRINTER_NAME",
	WerrPrinterAlreadyExists:  "WERR_PRINTER_ALREADY_EXISTS",
	WerrInvalidPrinterCommand: "WERR_INVALID_PRINTER_COMMAND",
	WerrInvalidDatatype:       "WERR_INVALID_DATATYPE",
	WerrInvalidEnvironment:    "WERR_INVALID_ENVIRONMENT",
	WerrInvalidFormName:       "WERR_INVALID_FORM_NAME",
	WerrInvalidFormSize:       "WERR_INVALID_FORM_SIZE",
	WerrUnknownPrintMonitor:   "WERR_UNKNOWN_PRINT_MONITOR",
	WerrPrinterNotFound:       "WERR_PRINTER_NOT_FOUND",
}

// WerrorName returns the symbolic name of a Win32 status code.
func WerrorName(code uint32) string {
	if s, ok := werrorNames[code]; ok {
		return s
	}
	return fmt.Sprintf("Unknown error 0x%08x", code)
}
