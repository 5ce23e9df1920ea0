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
	"fmt"

	"github.com/jfjallid/go-spoolss/msdtyp"
)

// MS-RPRN Section 3.1.4 opnums
const (
	OpEnumPrinters                             uint16 = 0
	OpOpenPrinter                              uint16 = 1
	OpSetJob                                   uint16 = 2
	OpGetJob                                   uint16 = 3
	OpEnumJobs                                 uint16 = 4
	OpAddPrinter                               uint16 = 5
	OpDeletePrinter                            uint16 = 6
	OpSetPrinter                               uint16 = 7
	OpGetPrinter                               uint16 = 8
	OpAddPrinterDriver                         uint16 = 9
	OpEnumPrinterDrivers                       uint16 = 10
	OpGetPrinterDriver                         uint16 = 11
	OpGetPrinterDriverDirectory                uint16 = 12
	OpDeletePrinterDriver                      uint16 = 13
	OpAddPrintProcessor                        uint16 = 14
	OpEnumPrintProcessors                      uint16 = 15
	OpGetPrintProcessorDirectory               uint16 = 16
	OpStartDocPrinter                          uint16 = 17
	OpStartPagePrinter                         uint16 = 18
	OpWritePrinter                             uint16 = 19
	OpEndPagePrinter                           uint16 = 20
	OpAbortPrinter                             uint16 = 21
	OpReadPrinter                              uint16 = 22
	OpEndDocPrinter                            uint16 = 23
	OpAddJob                                   uint16 = 24
	OpScheduleJob                              uint16 = 25
	OpGetPrinterData                           uint16 = 26
	OpSetPrinterData                           uint16 = 27
	OpWaitForPrinterChange                     uint16 = 28
	OpClosePrinter                             uint16 = 29
	OpAddForm                                  uint16 = 30
	OpDeleteForm                               uint16 = 31
	OpGetForm                                  uint16 = 32
	OpSetForm                                  uint16 = 33
	OpEnumForms                                uint16 = 34
	OpEnumPorts                                uint16 = 35
	OpEnumMonitors                             uint16 = 36
	OpAddPort                                  uint16 = 37
	OpConfigurePort                            uint16 = 38
	OpDeletePort                               uint16 = 39
	OpCreatePrinterIC                          uint16 = 40
	OpPlayGDIScriptOnPrinterIC                 uint16 = 41
	OpDeletePrinterIC                          uint16 = 42
	OpAddPrinterConnection                     uint16 = 43
	OpDeletePrinterConnection                  uint16 = 44
	OpPrinterMessageBox                        uint16 = 45
	OpAddMonitor                               uint16 = 46
	OpDeleteMonitor                            uint16 = 47
	OpDeletePrintProcessor                     uint16 = 48
	OpAddPrintProvider                         uint16 = 49
	OpDeletePrintProvider                      uint16 = 50
	OpEnumPrintProcDataTypes                   uint16 = 51
	OpResetPrinter                             uint16 = 52
	OpGetPrinterDriver2                        uint16 = 53
	OpFindFirstPrinterChangeNotification       uint16 = 54
	OpFindNextPrinterChangeNotification        uint16 = 55
	OpFindClosePrinterChangeNotification       uint16 = 56
	OpRouterFindFirstPrinterNotificationOld    uint16 = 57
	OpReplyOpenPrinter                         uint16 = 58
	OpRouterReplyPrinter                       uint16 = 59
	OpReplyClosePrinter                        uint16 = 60
	OpAddPortEx                                uint16 = 61
	OpRemoteFindFirstPrinterChangeNotification uint16 = 62
	OpSpoolerInit                              uint16 = 63
	OpResetPrinterEx                           uint16 = 64
	OpRemoteFindFirstPrinterChangeNotifyEx     uint16 = 65
	OpRouterReplyPrinterEx                     uint16 = 66
	OpRemoteFindNextPrinterChangeNotifyEx      uint16 = 67
	OpOpenPrinterEx                            uint16 = 69
	OpAddPrinterEx                             uint16 = 70
	OpEnumPrinterData                          uint16 = 72
	OpDeletePrinterData                        uint16 = 73
	OpSetPrinterDataEx                         uint16 = 77
	OpGetPrinterDataEx                         uint16 = 78
	OpEnumPrinterDataEx                        uint16 = 79
	OpEnumPrinterKey                           uint16 = 80
	OpDeletePrinterDataEx                      uint16 = 81
	OpDeletePrinterDriverEx                    uint16 = 84
	OpAddPrinterDriverEx                       uint16 = 89
)

// MS-RPRN Section 2.2.3.1 access values
const (
	ServerAccessAdminister  uint32 = 0x00000001
	ServerAccessEnumerate   uint32 = 0x00000002
	PrinterAccessAdminister uint32 = 0x00000004
	PrinterAccessUse        uint32 = 0x00000008
	JobAccessAdminister     uint32 = 0x00000010
)

// AccessRights names the object specific bits of a SPOOLSS access mask.
var AccessRights = []msdtyp.AccessRight{
	{Mask: ServerAccessAdminister, Name: "SERVER_ACCESS_ADMINISTER"},
	{Mask: ServerAccessEnumerate, Name: "SERVER_ACCESS_ENUMERATE"},
	{Mask: PrinterAccessAdminister, Name: "PRINTER_ACCESS_ADMINISTER"},
	{Mask: PrinterAccessUse, Name: "PRINTER_ACCESS_USE"},
	{Mask: JobAccessAdminister, Name: "JOB_ACCESS_ADMINISTER"},
}

// MS-RPRN Section 2.2.3.12 printer attributes
const (
	PrinterAttributeQueued          uint32 = 0x00000001
	PrinterAttributeDirect          uint32 = 0x00000002
	PrinterAttributeDefault         uint32 = 0x00000004
	PrinterAttributeShared          uint32 = 0x00000008
	PrinterAttributeNetwork         uint32 = 0x00000010
	PrinterAttributeHidden          uint32 = 0x00000020
	PrinterAttributeLocal           uint32 = 0x00000040
	PrinterAttributeEnableDevq      uint32 = 0x00000080
	PrinterAttributeKeepPrintedJobs uint32 = 0x00000100
	PrinterAttributeDoCompleteFirst uint32 = 0x00000200
	PrinterAttributeWorkOffline     uint32 = 0x00000400
	PrinterAttributeEnableBidi      uint32 = 0x00000800
	PrinterAttributeRawOnly         uint32 = 0x00001000
	PrinterAttributePublished       uint32 = 0x00002000
)

// MS-RPRN Section 2.2.3.7 EnumPrinters flags
const (
	PrinterEnumDefault     uint32 = 0x00000001
	PrinterEnumLocal       uint32 = 0x00000002
	PrinterEnumConnections uint32 = 0x00000004
	PrinterEnumName        uint32 = 0x00000008
	PrinterEnumRemote      uint32 = 0x00000010
	PrinterEnumShared      uint32 = 0x00000020
	PrinterEnumNetwork     uint32 = 0x00000040
)

// MS-RPRN Section 2.2.2.1 _DEVMODE dmFields
const (
	DMOrientation      uint32 = 0x00000001
	DMPaperSize        uint32 = 0x00000002
	DMPaperLength      uint32 = 0x00000004
	DMPaperWidth       uint32 = 0x00000008
	DMScale            uint32 = 0x00000010
	DMPosition         uint32 = 0x00000020
	DMNup              uint32 = 0x00000040
	DMCopies           uint32 = 0x00000100
	DMDefaultSource    uint32 = 0x00000200
	DMPrintQuality     uint32 = 0x00000400
	DMColor            uint32 = 0x00000800
	DMDuplex           uint32 = 0x00001000
	DMYResolution      uint32 = 0x00002000
	DMTTOption         uint32 = 0x00004000
	DMCollate          uint32 = 0x00008000
	DMFormName         uint32 = 0x00010000
	DMLogPixels        uint32 = 0x00020000
	DMBitsPerPel       uint32 = 0x00040000
	DMPelsWidth        uint32 = 0x00080000
	DMPelsHeight       uint32 = 0x00100000
	DMDisplayFlags     uint32 = 0x00200000
	DMDisplayFrequency uint32 = 0x00400000
	DMICMMethod        uint32 = 0x00800000
	DMICMIntent        uint32 = 0x01000000
	DMMediaType        uint32 = 0x02000000
	DMDitherType       uint32 = 0x04000000
	DMPanningWidth     uint32 = 0x08000000
	DMPanningHeight    uint32 = 0x10000000
)

// MS-RPRN Section 2.2.1.7.1 job status
const (
	JobStatusPaused           uint32 = 0x00000001
	JobStatusError            uint32 = 0x00000002
	JobStatusDeleting         uint32 = 0x00000004
	JobStatusSpooling         uint32 = 0x00000008
	JobStatusPrinting         uint32 = 0x00000010
	JobStatusOffline          uint32 = 0x00000020
	JobStatusPaperout         uint32 = 0x00000040
	JobStatusPrinted          uint32 = 0x00000080
	JobStatusDeleted          uint32 = 0x00000100
	JobStatusBlocked          uint32 = 0x00000200
	JobStatusUserIntervention uint32 = 0x00000400
)

// MS-RPRN Section 2.2.3.6 change notification flags
const (
	PrinterChangeAddPrinter              uint32 = 0x00000001
	PrinterChangeSetPrinter              uint32 = 0x00000002
	PrinterChangeDeletePrinter           uint32 = 0x00000004
	PrinterChangeFailedConnectionPrinter uint32 = 0x00000008
	PrinterChangeAddJob                  uint32 = 0x00000100
	PrinterChangeSetJob                  uint32 = 0x00000200
	PrinterChangeDeleteJob               uint32 = 0x00000400
	PrinterChangeWriteJob                uint32 = 0x00000800
	PrinterChangeAddForm                 uint32 = 0x00010000
	PrinterChangeSetForm                 uint32 = 0x00020000
	PrinterChangeDeleteForm              uint32 = 0x00040000
	PrinterChangeAddPort                 uint32 = 0x00100000
	PrinterChangeConfigurePort           uint32 = 0x00200000
	PrinterChangeDeletePort              uint32 = 0x00400000
	PrinterChangeAddPrintProcessor       uint32 = 0x01000000
	PrinterChangeDeletePrintProcessor    uint32 = 0x04000000
	PrinterChangeAddPrinterDriver        uint32 = 0x10000000
	PrinterChangeSetPrinterDriver        uint32 = 0x20000000
	PrinterChangeDeletePrinterDriver     uint32 = 0x40000000
	PrinterChangeTimeout                 uint32 = 0x80000000

	PrinterChangePrinter       uint32 = 0x000000ff
	PrinterChangeJob           uint32 = 0x0000ff00
	PrinterChangeForm          uint32 = 0x00070000
	PrinterChangePort          uint32 = 0x00700000
	PrinterChangePrinterDriver uint32 = 0x70000000
)

// Summary texts for the change classes of an RFFPCNEX request
var changeClasses = []struct {
	Mask uint32
	Name string
}{
	{PrinterChangePrinter, "printer"},
	{PrinterChangeJob, "job"},
	{PrinterChangeForm, "form"},
	{PrinterChangePort, "port"},
	{PrinterChangePrinterDriver, "printer driver"},
}

const PrinterNotifyOptionsRefresh uint32 = 0x00000001

// MS-RPRN Section 2.2.1.13.3 notify types
const (
	PrinterNotifyType uint16 = 0
	JobNotifyType     uint16 = 1
)

// MS-RPRN Section 2.2.3.1 printer notification fields
const (
	PrinterNotifyServerName         uint16 = 0x00
	PrinterNotifyPrinterName        uint16 = 0x01
	PrinterNotifyShareName          uint16 = 0x02
	PrinterNotifyPortName           uint16 = 0x03
	PrinterNotifyDriverName         uint16 = 0x04
	PrinterNotifyComment            uint16 = 0x05
	PrinterNotifyLocation           uint16 = 0x06
	PrinterNotifyDevmode            uint16 = 0x07
	PrinterNotifySepFile            uint16 = 0x08
	PrinterNotifyPrintProcessor     uint16 = 0x09
	PrinterNotifyParameters         uint16 = 0x0a
	PrinterNotifyDatatype           uint16 = 0x0b
	PrinterNotifySecurityDescriptor uint16 = 0x0c
	PrinterNotifyAttributes         uint16 = 0x0d
	PrinterNotifyPriority           uint16 = 0x0e
	PrinterNotifyDefaultPriority    uint16 = 0x0f
	PrinterNotifyStartTime          uint16 = 0x10
	PrinterNotifyUntilTime          uint16 = 0x11
	PrinterNotifyStatus             uint16 = 0x12
	PrinterNotifyStatusString       uint16 = 0x13
	PrinterNotifyCJobs              uint16 = 0x14
	PrinterNotifyAveragePPM         uint16 = 0x15
	PrinterNotifyTotalPages         uint16 = 0x16
	PrinterNotifyPagesPrinted       uint16 = 0x17
	PrinterNotifyTotalBytes         uint16 = 0x18
	PrinterNotifyBytesPrinted       uint16 = 0x19
)

// MS-RPRN Section 2.2.3.3 job notification fields
const (
	JobNotifyPrinterName        uint16 = 0x00
	JobNotifyMachineName        uint16 = 0x01
	JobNotifyPortName           uint16 = 0x02
	JobNotifyUserName           uint16 = 0x03
	JobNotifyNotifyName         uint16 = 0x04
	JobNotifyDatatype           uint16 = 0x05
	JobNotifyPrintProcessor     uint16 = 0x06
	JobNotifyParameters         uint16 = 0x07
	JobNotifyDriverName         uint16 = 0x08
	JobNotifyDevmode            uint16 = 0x09
	JobNotifyStatus             uint16 = 0x0a
	JobNotifyStatusString       uint16 = 0x0b
	JobNotifySecurityDescriptor uint16 = 0x0c
	JobNotifyDocument           uint16 = 0x0d
	JobNotifyPriority           uint16 = 0x0e
	JobNotifyPosition           uint16 = 0x0f
	JobNotifySubmitted          uint16 = 0x10
	JobNotifyStartTime          uint16 = 0x11
	JobNotifyUntilTime          uint16 = 0x12
	JobNotifyTime               uint16 = 0x13
	JobNotifyTotalPages         uint16 = 0x14
	JobNotifyPagesPrinted       uint16 = 0x15
	JobNotifyTotalBytes         uint16 = 0x16
	JobNotifyBytesPrinted       uint16 = 0x17
)

// Registry value types used by printer data
const (
	RegNone                     uint32 = 0
	RegSz                       uint32 = 1
	RegExpandSz                 uint32 = 2
	RegBinary                   uint32 = 3
	RegDword                    uint32 = 4
	RegDwordBigEndian           uint32 = 5
	RegLink                     uint32 = 6
	RegMultiSz                  uint32 = 7
	RegResourceList             uint32 = 8
	RegFullResourceDescriptor   uint32 = 9
	RegResourceRequirementsList uint32 = 10
)

var regTypeNames = map[int64]string{
	0:  "REG_NONE",
	1:  "REG_SZ",
	2:  "REG_EXPAND_SZ",
	3:  "REG_BINARY",
	4:  "REG_DWORD",
	5:  "REG_DWORD_BIG_ENDIAN",
	6:  "REG_LINK",
	7:  "REG_MULTI_SZ",
	8:  "REG_RESOURCE_LIST",
	9:  "REG_FULL_RESOURCE_DESCRIPTOR",
	10: "REG_RESOURCE_REQUIREMENTS_LIST",
}

var printerStatusNames = map[int64]string{
	0x00000000: "OK",
	0x00000001: "Paused",
	0x00000002: "Error",
	0x00000004: "Pending deletion",
	0x00000008: "Paper jam",
	0x00000010: "Paper out",
	0x00000020: "Manual feed",
	0x00000040: "Paper problem",
	0x00000080: "Offline",
	0x00000100: "IO active",
	0x00000200: "Busy",
	0x00000400: "Printing",
	0x00000800: "Output bin full",
	0x00001000: "Not available",
	0x00002000: "Waiting",
	0x00004000: "Processing",
	0x00008000: "Initialising",
	0x00010000: "Warming up",
	0x00020000: "Toner low",
	0x00040000: "No toner",
	0x00080000: "Page punt",
	0x00100000: "User intervention",
	0x00200000: "Out of memory",
	0x00400000: "Door open",
	0x00800000: "Server unknown",
	0x01000000: "Power save",
}

var setPrinterCommandNames = map[int64]string{
	0: "Unpause",
	1: "Pause",
	2: "Resume",
	3: "Purge",
	4: "Set status",
}

var setJobCommandNames = map[int64]string{
	1: "Pause",
	2: "Resume",
	3: "Cancel",
	4: "Restart",
	5: "Delete",
}

var printerActionNames = map[int64]string{
	1: "Publish",
	2: "Update",
	4: "Unpublish",
}

var driverVersionNames = map[int64]string{
	0: "Windows 95/98/Me",
	2: "Windows NT 4.0",
	3: "Windows 2000/XP",
}

var formTypeNames = map[int64]string{
	0: "User",
	1: "Builtin",
	2: "Printer",
}

var notifyTypeNames = map[int64]string{
	int64(PrinterNotifyType): "Printer notify",
	int64(JobNotifyType):     "Job notify",
}

var printerNotifyFieldNames = map[uint16]string{
	PrinterNotifyServerName:         "Server name",
	PrinterNotifyPrinterName:        "Printer name",
	PrinterNotifyShareName:          "Share name",
	PrinterNotifyPortName:           "Port name",
	PrinterNotifyDriverName:         "Driver name",
	PrinterNotifyComment:            "Comment",
	PrinterNotifyLocation:           "Location",
	PrinterNotifyDevmode:            "Devmode",
	PrinterNotifySepFile:            "Sepfile",
	PrinterNotifyPrintProcessor:     "Print processor",
	PrinterNotifyParameters:         "Parameters",
	PrinterNotifyDatatype:           "Datatype",
	PrinterNotifySecurityDescriptor: "Security descriptor",
	PrinterNotifyAttributes:         "Attributes",
	PrinterNotifyPriority:           "Priority",
	PrinterNotifyDefaultPriority:    "Default priority",
	PrinterNotifyStartTime:          "Start time",
	PrinterNotifyUntilTime:          "Until time",
	PrinterNotifyStatus:             "Status",
	PrinterNotifyStatusString:       "Status string",
	PrinterNotifyCJobs:              "Cjobs",
	PrinterNotifyAveragePPM:         "Average PPM",
	PrinterNotifyTotalPages:         "Total pages",
	PrinterNotifyPagesPrinted:       "Pages printed",
	PrinterNotifyTotalBytes:         "Total bytes",
	PrinterNotifyBytesPrinted:       "Bytes printed",
}

var jobNotifyFieldNames = map[uint16]string{
	JobNotifyPrinterName:        "Printer name",
	JobNotifyMachineName:        "Machine name",
	JobNotifyPortName:           "Port name",
	JobNotifyUserName:           "User name",
	JobNotifyNotifyName:         "Notify name",
	JobNotifyDatatype:           "Data type",
	JobNotifyPrintProcessor:     "Print processor",
	JobNotifyParameters:         "Parameters",
	JobNotifyDriverName:         "Driver name",
	JobNotifyDevmode:            "Devmode",
	JobNotifyStatus:             "Status",
	JobNotifyStatusString:       "Status string",
	JobNotifySecurityDescriptor: "Security descriptor",
	JobNotifyDocument:           "Document",
	JobNotifyPriority:           "Priority",
	JobNotifyPosition:           "Position",
	JobNotifySubmitted:          "Submitted",
	JobNotifyStartTime:          "Start time",
	JobNotifyUntilTime:          "Until time",
	JobNotifyTime:               "Time",
	JobNotifyTotalPages:         "Total pages",
	JobNotifyPagesPrinted:       "Pages printed",
	JobNotifyTotalBytes:         "Total bytes",
	JobNotifyBytesPrinted:       "Bytes printed",
}

// notifyFieldName returns the display name of a notify field. ok is false
// for an unknown notify type.
func notifyFieldName(notifyType, field uint16) (name string, ok bool) {
	var names map[uint16]string
	switch notifyType {
	case PrinterNotifyType:
		names = printerNotifyFieldNames
	case JobNotifyType:
		names = jobNotifyFieldNames
	default:
		return "", false
	}
	if name, found := names[field]; found {
		return name, true
	}
	return fmt.Sprintf("Unknown (%d)", field), true
}

var devmodeSpecVersionNames = map[int64]string{
	0x0320: "Observed",
	0x0400: "Observed",
	0x0401: "Observed",
	0x040d: "Observed",
}

var orientationNames = map[int64]string{
	1: "Portrait",
	2: "Landscape",
}

var paperSourceNames = map[int64]string{
	1:  "Upper",
	2:  "Lower",
	3:  "Middle",
	4:  "Manual",
	5:  "Envelope",
	6:  "Envelope Manual",
	7:  "Auto",
	8:  "Tractor",
	9:  "Small Format",
	10: "Large Format",
	11: "Large Capacity",
	14: "Cassette",
	15: "Form Source",
}

var printQualityNames = map[int64]string{
	-4: "High",
	-3: "Medium",
	-2: "Low",
	-1: "Draft",
}

var colorNames = map[int64]string{
	1: "Monochrome",
	2: "Colour",
}

var duplexNames = map[int64]string{
	1: "Simplex",
	2: "Vertical",
	3: "Horizontal",
}

var ttOptionNames = map[int64]string{
	0: "Not set",
	1: "Bitmap",
	2: "Download",
	3: "Substitute device fonts",
	4: "Download outline",
}

var collateNames = map[int64]string{
	0: "False",
	1: "True",
}

var displayFlagNames = map[int64]string{
	0: "Colour",
	1: "Grayscale",
	2: "Interlaced",
}

var icmMethodNames = map[int64]string{
	1: "None",
	2: "System",
	3: "Driver",
	4: "Device",
}

var icmIntentNames = map[int64]string{
	0: "Not set",
	1: "Saturate",
	2: "Contrast",
	3: "Colorimetric",
	4: "Absolute colorimetric",
}

var mediaTypeNames = map[int64]string{
	0: "Not set",
	1: "Standard",
	2: "Transparency",
	3: "Glossy",
}

var ditherTypeNames = map[int64]string{
	0:  "Not set",
	1:  "None",
	2:  "Coarse",
	3:  "Line",
	4:  "Line art",
	5:  "Error diffusion",
	6:  "Reserved 6",
	7:  "Reserved 7",
	10: "Grayscale",
}

// DMPAPER_* values start at 1 and are contiguous
var paperSizeNames = func() map[int64]string {
	names := []string{
		"Letter",
		"Letter (small)",
		"Tabloid",
		"Ledger",
		"Legal",
		"Statement",
		"Executive",
		"A3",
		"A4",
		"A4 (small)",
		"A5",
		"B4",
		"B5",
		"Folio",
		"Quarto",
		"10x14",
		"11x17",
		"Note",
		"Envelope #9",
		"Envelope #10",
		"Envelope #11",
		"Envelope #12",
		"Envelope #14",
		"C sheet",
		"D sheet",
		"E sheet",
		"Envelope DL",
		"Envelope C5",
		"Envelope C3",
		"Envelope C4",
		"Envelope C6",
		"Envelope C65",
		"Envelope B4",
		"Envelope B5",
		"Envelope B6",
		"Envelope (Italy)",
		"Envelope (Monarch)",
		"Envelope (Personal)",
		"Fanfold (US)",
		"Fanfold (Std German)",
		"Fanfold (Legal German)",
		"B4 (ISO)",
		"Japanese postcard",
		"9x11",
		"10x11",
		"15x11",
		"Envelope (Invite)",
		"Reserved (48)",
		"Reserved (49)",
		"Letter (Extra)",
		"Legal (Extra)",
		"Tabloid (Extra)",
		"A4 (Extra)",
		"Letter (Transverse)",
		"A4 (Transverse)",
		"Letter (Extra, Transverse)",
		"A+",
		"B+",
		"Letter+",
		"A4+",
		"A5 (Transverse)",
		"B5 (Transverse)",
		"A3 (Extra)",
		"A5 (Extra)",
		"B5 (Extra)",
		"A2",
		"A3 (Transverse)",
		"A3 (Extra, Transverse",
		"Double Japanese Postcard",
		"A6",
		"Japanese Envelope (Kaku #2)",
		"Japanese Envelope (Kaku #3)",
		"Japanese Envelope (Chou #3)",
		"Japaneve Envelope (Chou #4)",
		"Letter (Rotated)",
		"A3 (Rotated)",
		"A4 (Rotated)",
		"A5 (Rotated)",
		"B4 (JIS, Rotated)",
		"B5 (JIS, Rotated)",
		"Japanese Postcard (Rotated)",
		"Double Japanese Postcard (Rotated)",
		"A6 (Rotated)",
		"Japanese Envelope (Kaku #2, Rotated)",
		"Japanese Envelope (Kaku #3, Rotated)",
		"Japanese Envelope (Chou #3, Rotated)",
		"Japanese Envelope (Chou #4, Rotated)",
		"B6 (JIS)",
		"B6 (JIS, Rotated)",
		"12x11",
		"Japanese Envelope (You #4)",
		"Japanese Envelope (You #4, Rotated",
		"PRC 16K",
		"PRC 32K",
		"P32K (Big)",
		"PRC Envelope #1",
		"PRC Envelope #2",
		"PRC Envelope #3",
		"PRC Envelope #4",
		"PRC Envelope #5",
		"PRC Envelope #6",
		"PRC Envelope #7",
		"PRC Envelope #8",
		"PRC Envelope #9",
		"PRC Envelope #10",
		"PRC 16K (Rotated)",
		"PRC 32K (Rotated)",
		"PRC 32K (Big, Rotated)",
		"PRC Envelope #1 (Rotated)",
		"PRC Envelope #2 (Rotated)",
		"PRC Envelope #3 (Rotated)",
		"PRC Envelope #4 (Rotated)",
		"PRC Envelope #5 (Rotated)",
		"PRC Envelope #6 (Rotated)",
		"PRC Envelope #7 (Rotated)",
		"PRC Envelope #8 (Rotated)",
		"PRC Envelope #9 (Rotated)",
		"PRC Envelope #10 (Rotated)",
	}
	m := make(map[int64]string, len(names))
	for i, n := range names {
		m[int64(i+1)] = n
	}
	return m
}()
