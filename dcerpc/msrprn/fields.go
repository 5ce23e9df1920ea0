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

import "github.com/jfjallid/go-spoolss/dcerpc"

// Common fields
var (
	fieldOpnum    = &dcerpc.Field{Name: "Operation", Abbrev: "spoolss.opnum", Type: dcerpc.FieldUint16}
	fieldHnd      = &dcerpc.Field{Name: "Context handle", Abbrev: "spoolss.hnd", Type: dcerpc.FieldHandle}
	fieldRC       = &dcerpc.Field{Name: "Return code", Abbrev: "spoolss.rc", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldOffered  = &dcerpc.Field{Name: "Offered", Abbrev: "spoolss.offered", Type: dcerpc.FieldUint32}
	fieldNeeded   = &dcerpc.Field{Name: "Needed", Abbrev: "spoolss.needed", Type: dcerpc.FieldUint32}
	fieldReturned = &dcerpc.Field{Name: "Returned", Abbrev: "spoolss.returned", Type: dcerpc.FieldUint32}
	fieldLevel    = &dcerpc.Field{Name: "Info level", Abbrev: "spoolss.enumjobs.level", Type: dcerpc.FieldUint32}
	fieldOffset   = &dcerpc.Field{Name: "Offset", Abbrev: "spoolss.offset", Type: dcerpc.FieldUint32}

	fieldBufferSize = &dcerpc.Field{Name: "Buffer size", Abbrev: "spoolss.buffer.size", Type: dcerpc.FieldUint32}
	fieldBufferData = &dcerpc.Field{Name: "Buffer data", Abbrev: "spoolss.buffer.data", Type: dcerpc.FieldBytes}

	fieldAccessRequired = &dcerpc.Field{Name: "Access required", Abbrev: "spoolss.access_required", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldPrinterLocal   = &dcerpc.Field{Name: "Printer local", Abbrev: "spoolss.printer_local", Type: dcerpc.FieldUint32}
	fieldString         = &dcerpc.Field{Name: "String", Abbrev: "spoolss.string", Type: dcerpc.FieldString}
)

// Strings
var (
	fieldPrinterName     = &dcerpc.Field{Name: "Printer name", Abbrev: "spoolss.printername", Type: dcerpc.FieldString}
	fieldMachineName     = &dcerpc.Field{Name: "Machine name", Abbrev: "spoolss.machinename", Type: dcerpc.FieldString}
	fieldNotifyName      = &dcerpc.Field{Name: "Notify name", Abbrev: "spoolss.notifyname", Type: dcerpc.FieldString}
	fieldPrinterDesc     = &dcerpc.Field{Name: "Printer description", Abbrev: "spoolss.printerdesc", Type: dcerpc.FieldString}
	fieldPrinterComment  = &dcerpc.Field{Name: "Printer comment", Abbrev: "spoolss.printercomment", Type: dcerpc.FieldString}
	fieldServerName      = &dcerpc.Field{Name: "Server name", Abbrev: "spoolss.servername", Type: dcerpc.FieldString}
	fieldShareName       = &dcerpc.Field{Name: "Share name", Abbrev: "spoolss.sharename", Type: dcerpc.FieldString}
	fieldPortName        = &dcerpc.Field{Name: "Port name", Abbrev: "spoolss.portname", Type: dcerpc.FieldString}
	fieldPrinterLocation = &dcerpc.Field{Name: "Printer location", Abbrev: "spoolss.printerlocation", Type: dcerpc.FieldString}
	fieldArchitecture    = &dcerpc.Field{Name: "Architecture name", Abbrev: "spoolss.architecture", Type: dcerpc.FieldString}
	fieldDriverName      = &dcerpc.Field{Name: "Driver name", Abbrev: "spoolss.drivername", Type: dcerpc.FieldString}
	fieldUserName        = &dcerpc.Field{Name: "User name", Abbrev: "spoolss.username", Type: dcerpc.FieldString}
	fieldDocumentName    = &dcerpc.Field{Name: "Document name", Abbrev: "spoolss.document", Type: dcerpc.FieldString}
	fieldOutputFile      = &dcerpc.Field{Name: "Output file", Abbrev: "spoolss.outputfile", Type: dcerpc.FieldString}
	fieldDatatype        = &dcerpc.Field{Name: "Datatype", Abbrev: "spoolss.datatype", Type: dcerpc.FieldString}
	fieldTextStatus      = &dcerpc.Field{Name: "Text status", Abbrev: "spoolss.textstatus", Type: dcerpc.FieldString}
	fieldSepFile         = &dcerpc.Field{Name: "Separator file", Abbrev: "spoolss.sepfile", Type: dcerpc.FieldString}
	fieldParameters      = &dcerpc.Field{Name: "Parameters", Abbrev: "spoolss.parameters", Type: dcerpc.FieldString}
	fieldPrintProcessor  = &dcerpc.Field{Name: "Print processor", Abbrev: "spoolss.printprocessor", Type: dcerpc.FieldString}
)

// Drivers
var (
	fieldClientMajorVersion = &dcerpc.Field{Name: "Client major version", Abbrev: "spoolss.clientmajorversion", Type: dcerpc.FieldUint32}
	fieldClientMinorVersion = &dcerpc.Field{Name: "Client minor version", Abbrev: "spoolss.clientminorversion", Type: dcerpc.FieldUint32}
	fieldServerMajorVersion = &dcerpc.Field{Name: "Server major version", Abbrev: "spoolss.servermajorversion", Type: dcerpc.FieldUint32}
	fieldServerMinorVersion = &dcerpc.Field{Name: "Server minor version", Abbrev: "spoolss.serverminorversion", Type: dcerpc.FieldUint32}
	fieldDriverPath         = &dcerpc.Field{Name: "Driver path", Abbrev: "spoolss.driverpath", Type: dcerpc.FieldString}
	fieldDataFile           = &dcerpc.Field{Name: "Data file", Abbrev: "spoolss.datafile", Type: dcerpc.FieldString}
	fieldConfigFile         = &dcerpc.Field{Name: "Config file", Abbrev: "spoolss.configfile", Type: dcerpc.FieldString}
	fieldHelpFile           = &dcerpc.Field{Name: "Help file", Abbrev: "spoolss.helpfile", Type: dcerpc.FieldString}
	fieldMonitorName        = &dcerpc.Field{Name: "Monitor name", Abbrev: "spoolss.monitorname", Type: dcerpc.FieldString}
	fieldDefaultDatatype    = &dcerpc.Field{Name: "Default data type", Abbrev: "spoolss.defaultdatatype", Type: dcerpc.FieldString}
	fieldDependentFiles     = &dcerpc.Field{Name: "Dependent files", Abbrev: "spoolss.dependentfiles", Type: dcerpc.FieldString}
	fieldDriverVersion      = &dcerpc.Field{Name: "Driver version", Abbrev: "spoolss.driverversion", Type: dcerpc.FieldUint32, Values: driverVersionNames}
)

// Printers
var (
	fieldPrinterStatus    = &dcerpc.Field{Name: "Status", Abbrev: "spoolss.printer_status", Type: dcerpc.FieldUint32, Values: printerStatusNames}
	fieldSetPrinterCmd    = &dcerpc.Field{Name: "Command", Abbrev: "spoolss.setprinter_cmd", Type: dcerpc.FieldUint32, Values: setPrinterCommandNames}
	fieldPrinterFlags     = &dcerpc.Field{Name: "Flags", Abbrev: "spoolss.printer.flags", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldPrinterGUID      = &dcerpc.Field{Name: "GUID", Abbrev: "spoolss.printer.guid", Type: dcerpc.FieldString}
	fieldPrinterAction    = &dcerpc.Field{Name: "Action", Abbrev: "spoolss.printer.action", Type: dcerpc.FieldUint32, Values: printerActionNames}
	fieldPriority         = &dcerpc.Field{Name: "Priority", Abbrev: "spoolss.printer.priority", Type: dcerpc.FieldUint32}
	fieldDefaultPriority  = &dcerpc.Field{Name: "Default Priority", Abbrev: "spoolss.printer.default_priority", Type: dcerpc.FieldUint32}
	fieldPrinterJobs      = &dcerpc.Field{Name: "Jobs", Abbrev: "spoolss.printer.jobs", Type: dcerpc.FieldUint32}
	fieldAveragePPM       = &dcerpc.Field{Name: "Average PPM", Abbrev: "spoolss.printer.averageppm", Type: dcerpc.FieldUint32}
	fieldStartTime        = &dcerpc.Field{Name: "Start time", Abbrev: "spoolss.start_time", Type: dcerpc.FieldUint32}
	fieldEndTime          = &dcerpc.Field{Name: "End time", Abbrev: "spoolss.end_time", Type: dcerpc.FieldUint32}
	fieldElapsedTime      = &dcerpc.Field{Name: "Elapsed time", Abbrev: "spoolss.elapsed_time", Type: dcerpc.FieldUint32}
	fieldCJobs            = &dcerpc.Field{Name: "CJobs", Abbrev: "spoolss.printer.cjobs", Type: dcerpc.FieldUint32}
	fieldTotalJobs        = &dcerpc.Field{Name: "Total jobs", Abbrev: "spoolss.printer.total_jobs", Type: dcerpc.FieldUint32}
	fieldTotalBytes       = &dcerpc.Field{Name: "Total bytes", Abbrev: "spoolss.printer.total_bytes", Type: dcerpc.FieldUint32}
	fieldGlobalCounter    = &dcerpc.Field{Name: "Global counter", Abbrev: "spoolss.printer.global_counter", Type: dcerpc.FieldUint32}
	fieldTotalPages       = &dcerpc.Field{Name: "Total pages", Abbrev: "spoolss.printer.total_pages", Type: dcerpc.FieldUint32}
	fieldMajorVersion     = &dcerpc.Field{Name: "Major version", Abbrev: "spoolss.printer.major_version", Type: dcerpc.FieldUint16}
	fieldBuildVersion     = &dcerpc.Field{Name: "Build version", Abbrev: "spoolss.printer.build_version", Type: dcerpc.FieldUint16}
	fieldSessionCounter   = &dcerpc.Field{Name: "Session counter", Abbrev: "spoolss.printer.session_ctr", Type: dcerpc.FieldUint32}
	fieldPrinterErrors    = &dcerpc.Field{Name: "Printer errors", Abbrev: "spoolss.printer.printer_errors", Type: dcerpc.FieldUint32}
	fieldChangeID         = &dcerpc.Field{Name: "Change id", Abbrev: "spoolss.printer.changeid", Type: dcerpc.FieldUint32}
	fieldCSetPrinter      = &dcerpc.Field{Name: "Csetprinter", Abbrev: "spoolss.printer.c_setprinter", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown7  = &dcerpc.Field{Name: "Unknown 7", Abbrev: "spoolss.printer.unknown7", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown8  = &dcerpc.Field{Name: "Unknown 8", Abbrev: "spoolss.printer.unknown8", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown9  = &dcerpc.Field{Name: "Unknown 9", Abbrev: "spoolss.printer.unknown9", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown11 = &dcerpc.Field{Name: "Unknown 11", Abbrev: "spoolss.printer.unknown11", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown13 = &dcerpc.Field{Name: "Unknown 13", Abbrev: "spoolss.printer.unknown13", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown14 = &dcerpc.Field{Name: "Unknown 14", Abbrev: "spoolss.printer.unknown14", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown15 = &dcerpc.Field{Name: "Unknown 15", Abbrev: "spoolss.printer.unknown15", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown16 = &dcerpc.Field{Name: "Unknown 16", Abbrev: "spoolss.printer.unknown16", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown18 = &dcerpc.Field{Name: "Unknown 18", Abbrev: "spoolss.printer.unknown18", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown20 = &dcerpc.Field{Name: "Unknown 20", Abbrev: "spoolss.printer.unknown20", Type: dcerpc.FieldUint32}
	fieldPrinterUnknown22 = &dcerpc.Field{Name: "Unknown 22", Abbrev: "spoolss.printer.unknown22", Type: dcerpc.FieldUint16}
	fieldPrinterUnknown23 = &dcerpc.Field{Name: "Unknown 23", Abbrev: "spoolss.printer.unknown23", Type: dcerpc.FieldUint16}
	fieldPrinterUnknown24 = &dcerpc.Field{Name: "Unknown 24", Abbrev: "spoolss.printer.unknown24", Type: dcerpc.FieldUint16}
	fieldPrinterUnknown25 = &dcerpc.Field{Name: "Unknown 25", Abbrev: "spoolss.printer.unknown25", Type: dcerpc.FieldUint16}
	fieldPrinterUnknown26 = &dcerpc.Field{Name: "Unknown 26", Abbrev: "spoolss.printer.unknown26", Type: dcerpc.FieldUint16}
	fieldPrinterUnknown27 = &dcerpc.Field{Name: "Unknown 27", Abbrev: "spoolss.printer.unknown27", Type: dcerpc.FieldUint16}
	fieldPrinterUnknown28 = &dcerpc.Field{Name: "Unknown 28", Abbrev: "spoolss.printer.unknown28", Type: dcerpc.FieldUint16}
	fieldPrinterUnknown29 = &dcerpc.Field{Name: "Unknown 29", Abbrev: "spoolss.printer.unknown29", Type: dcerpc.FieldUint16}
)

// PRINTER_INFO_2 attributes
var (
	fieldPrinterAttributes = &dcerpc.Field{Name: "Attributes", Abbrev: "spoolss.printer_attributes", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}

	printerAttributeFields = []*dcerpc.Field{
		{Name: "Queued", Abbrev: "spoolss.printer_attributes.queued", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeQueued,
			True: "Printer starts printing after last page spooled", False: "Printer starts printing while spooling"},
		{Name: "Direct", Abbrev: "spoolss.printer_attributes.direct", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeDirect,
			True: "Jobs sent directly to printer", False: "Jobs are spooled to printer before printing"},
		{Name: "Default (9x/ME only)", Abbrev: "spoolss.printer_attributes.default", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeDefault,
			True: "Printer is the default printer", False: "Printer is not the default printer"},
		{Name: "Shared", Abbrev: "spoolss.printer_attributes.shared", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeShared,
			True: "Printer is shared", False: "Printer is not shared"},
		{Name: "Network", Abbrev: "spoolss.printer_attributes.network", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeNetwork,
			True: "Printer is a network printer connection", False: "Printer is not a network printer connection"},
		{Name: "Hidden", Abbrev: "spoolss.printer_attributes.hidden", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeHidden,
			True: "Reserved", False: "Reserved"},
		{Name: "Local", Abbrev: "spoolss.printer_attributes.local", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeLocal,
			True: "Printer is a local printer", False: "Printer is not a local printer"},
		{Name: "Enable devq", Abbrev: "spoolss.printer_attributes.enable_devq", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeEnableDevq,
			True: "Call DevQueryPrint", False: "Do not call DevQueryPrint"},
		{Name: "Keep printed jobs", Abbrev: "spoolss.printer_attributes.keep_printed_jobs", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeKeepPrintedJobs,
			True: "Jobs are kept after they are printed", False: "Jobs are deleted after printing"},
		{Name: "Do complete first", Abbrev: "spoolss.printer_attributes.do_complete_first", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeDoCompleteFirst,
			True: "Jobs that have completed spooling are scheduled before still spooling jobs", False: "Jobs are scheduled in the order they start spooling"},
		{Name: "Work offline (9x/ME only)", Abbrev: "spoolss.printer_attributes.work_offline", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeWorkOffline,
			True: "The printer is currently connected", False: "The printer is currently not connected"},
		{Name: "Enable bidi (9x/ME only)", Abbrev: "spoolss.printer_attributes.enable_bidi", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeEnableBidi,
			True: "Bidirectional communications are supported", False: "Bidirectional communications are not supported"},
		{Name: "Raw only", Abbrev: "spoolss.printer_attributes.raw_only", Type: dcerpc.FieldBoolean, Mask: PrinterAttributeRawOnly,
			True: "Only raw data type print jobs can be spooled", False: "All data type print jobs can be spooled"},
		{Name: "Published", Abbrev: "spoolss.printer_attributes.published", Type: dcerpc.FieldBoolean, Mask: PrinterAttributePublished,
			True: "Printer is published in the directory", False: "Printer is not published in the directory"},
	}
)

// EnumPrinters flags, in the order they are displayed
var (
	fieldEnumPrintersFlags = &dcerpc.Field{Name: "Flags", Abbrev: "spoolss.enumprinters.flags", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}

	enumPrintersFlagFields = []*dcerpc.Field{
		{Name: "Enum network", Abbrev: "spoolss.enumprinters.flags.enum_network", Type: dcerpc.FieldBoolean, Mask: PrinterEnumNetwork},
		{Name: "Enum shared", Abbrev: "spoolss.enumprinters.flags.enum_shared", Type: dcerpc.FieldBoolean, Mask: PrinterEnumShared},
		{Name: "Enum remote", Abbrev: "spoolss.enumprinters.flags.enum_remote", Type: dcerpc.FieldBoolean, Mask: PrinterEnumRemote},
		{Name: "Enum name", Abbrev: "spoolss.enumprinters.flags.enum_name", Type: dcerpc.FieldBoolean, Mask: PrinterEnumName},
		{Name: "Enum connections", Abbrev: "spoolss.enumprinters.flags.enum_connections", Type: dcerpc.FieldBoolean, Mask: PrinterEnumConnections},
		{Name: "Enum local", Abbrev: "spoolss.enumprinters.flags.enum_local", Type: dcerpc.FieldBoolean, Mask: PrinterEnumLocal},
		{Name: "Enum default", Abbrev: "spoolss.enumprinters.flags.enum_default", Type: dcerpc.FieldBoolean, Mask: PrinterEnumDefault},
	}
)

// SPOOLSS specific access rights
var accessMaskFields = []*dcerpc.Field{
	{Name: "Server admin", Abbrev: "spoolss.access_mask.server_admin", Type: dcerpc.FieldBoolean, Mask: ServerAccessAdminister},
	{Name: "Server enum", Abbrev: "spoolss.access_mask.server_enum", Type: dcerpc.FieldBoolean, Mask: ServerAccessEnumerate},
	{Name: "Printer admin", Abbrev: "spoolss.access_mask.printer_admin", Type: dcerpc.FieldBoolean, Mask: PrinterAccessAdminister},
	{Name: "Printer use", Abbrev: "spoolss.access_mask.printer_use", Type: dcerpc.FieldBoolean, Mask: PrinterAccessUse},
	{Name: "Job admin", Abbrev: "spoolss.access_mask.job_admin", Type: dcerpc.FieldBoolean, Mask: JobAccessAdminister},
}

// Printer data
var (
	fieldPrinterData          = &dcerpc.Field{Name: "Data", Abbrev: "spoolss.printerdata", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldPrinterDataKey       = &dcerpc.Field{Name: "Key", Abbrev: "spoolss.printerdata.key", Type: dcerpc.FieldString}
	fieldPrinterDataValue     = &dcerpc.Field{Name: "Value", Abbrev: "spoolss.printerdata.value", Type: dcerpc.FieldString}
	fieldPrinterDataType      = &dcerpc.Field{Name: "Type", Abbrev: "spoolss.printerdata.type", Type: dcerpc.FieldUint32, Values: regTypeNames}
	fieldPrinterDataSize      = &dcerpc.Field{Name: "Size", Abbrev: "spoolss.printerdata.size", Type: dcerpc.FieldUint32}
	fieldPrinterDataData      = &dcerpc.Field{Name: "Data", Abbrev: "spoolss.printerdata.data", Type: dcerpc.FieldBytes}
	fieldPrinterDataDword     = &dcerpc.Field{Name: "DWORD data", Abbrev: "spoolss.printerdata.data.dword", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldPrinterDataSz        = &dcerpc.Field{Name: "String data", Abbrev: "spoolss.printerdata.data.sz", Type: dcerpc.FieldString}
	fieldSetPrinterDataMaxLen = &dcerpc.Field{Name: "Max len", Abbrev: "spoolss.setprinterdataex.max_len", Type: dcerpc.FieldUint32}
	fieldSetPrinterDataData   = &dcerpc.Field{Name: "Data", Abbrev: "spoolss.setprinterdataex.data", Type: dcerpc.FieldBytes}
	fieldSetPrinterDataRealLen = &dcerpc.Field{Name: "Real len", Abbrev: "spoolss.setprinterdataex.real_len", Type: dcerpc.FieldUint32}

	fieldEnumIndex         = &dcerpc.Field{Name: "Enum index", Abbrev: "spoolss.enumprinterdata.enumindex", Type: dcerpc.FieldUint32}
	fieldValueOffered      = &dcerpc.Field{Name: "Value size offered", Abbrev: "spoolss.enumprinterdata.value_offered", Type: dcerpc.FieldUint32}
	fieldDataOffered       = &dcerpc.Field{Name: "Data size offered", Abbrev: "spoolss.enumprinterdata.data_offered", Type: dcerpc.FieldUint32}
	fieldValueLen          = &dcerpc.Field{Name: "Value length", Abbrev: "spoolss.enumprinterdata.value_len", Type: dcerpc.FieldUint32}
	fieldValueNeeded       = &dcerpc.Field{Name: "Value size needed", Abbrev: "spoolss.enumprinterdata.value_needed", Type: dcerpc.FieldUint32}
	fieldDataNeeded        = &dcerpc.Field{Name: "Data size needed", Abbrev: "spoolss.enumprinterdata.data_needed", Type: dcerpc.FieldUint32}
	fieldValueNameOffset   = &dcerpc.Field{Name: "Name offset", Abbrev: "spoolss.enumprinterdataex.name_offset", Type: dcerpc.FieldUint32}
	fieldValueNameLen      = &dcerpc.Field{Name: "Name len", Abbrev: "spoolss.enumprinterdataex.name_len", Type: dcerpc.FieldUint32}
	fieldValueName         = &dcerpc.Field{Name: "Name", Abbrev: "spoolss.enumprinterdataex.name", Type: dcerpc.FieldString}
	fieldValueDataOffset   = &dcerpc.Field{Name: "Value offset", Abbrev: "spoolss.enumprinterdataex.value_offset", Type: dcerpc.FieldUint32}
	fieldValueDataLen      = &dcerpc.Field{Name: "Value len", Abbrev: "spoolss.enumprinterdataex.value_len", Type: dcerpc.FieldUint32}
	fieldValueDwordLow     = &dcerpc.Field{Name: "DWORD value (low)", Abbrev: "spoolss.enumprinterdataex.val_dword.low", Type: dcerpc.FieldUint16}
	fieldValueDwordHigh    = &dcerpc.Field{Name: "DWORD value (high)", Abbrev: "spoolss.enumprinterdataex.val_dword.high", Type: dcerpc.FieldUint16}
	fieldValueSz           = &dcerpc.Field{Name: "SZ value", Abbrev: "spoolss.printerdata.val_sz", Type: dcerpc.FieldString}
	fieldKeyBufferSize     = &dcerpc.Field{Name: "Key Buffer size", Abbrev: "spoolss.keybuffer.size", Type: dcerpc.FieldUint32}
	fieldKey               = &dcerpc.Field{Name: "Key", Abbrev: "spoolss.keybuffer.key", Type: dcerpc.FieldString}
)

// DEVMODE
var (
	fieldDevmodeCtrSize      = &dcerpc.Field{Name: "Devicemode ctr size", Abbrev: "spoolss.devicemodectr.size", Type: dcerpc.FieldUint32}
	fieldDevmode             = &dcerpc.Field{Name: "Devicemode", Abbrev: "spoolss.devmode", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldDevmodeSize         = &dcerpc.Field{Name: "Size", Abbrev: "spoolss.devmode.size", Type: dcerpc.FieldUint32}
	fieldDevmodeDeviceName   = &dcerpc.Field{Name: "Devicename", Abbrev: "spoolss.devmode.devicename", Type: dcerpc.FieldString}
	fieldDevmodeSpecVersion  = &dcerpc.Field{Name: "Spec version", Abbrev: "spoolss.devmode.spec_version", Type: dcerpc.FieldUint16, Values: devmodeSpecVersionNames}
	fieldDevmodeDriverVer    = &dcerpc.Field{Name: "Driver version", Abbrev: "spoolss.devmode.driver_version", Type: dcerpc.FieldUint16}
	fieldDevmodeSize2        = &dcerpc.Field{Name: "Size2", Abbrev: "spoolss.devmode.size2", Type: dcerpc.FieldUint16}
	fieldDevmodeExtraLen     = &dcerpc.Field{Name: "Driver extra length", Abbrev: "spoolss.devmode.driver_extra_len", Type: dcerpc.FieldUint16}
	fieldDevmodeFields       = &dcerpc.Field{Name: "Fields", Abbrev: "spoolss.devmode.fields", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldDevmodeOrientation  = &dcerpc.Field{Name: "Orientation", Abbrev: "spoolss.devmode.orientation", Type: dcerpc.FieldUint16, Values: orientationNames}
	fieldDevmodePaperSize    = &dcerpc.Field{Name: "Paper size", Abbrev: "spoolss.devmode.paper_size", Type: dcerpc.FieldUint16, Values: paperSizeNames}
	fieldDevmodePaperLength  = &dcerpc.Field{Name: "Paper length", Abbrev: "spoolss.devmode.paper_length", Type: dcerpc.FieldUint16}
	fieldDevmodePaperWidth   = &dcerpc.Field{Name: "Paper width", Abbrev: "spoolss.devmode.paper_width", Type: dcerpc.FieldUint16}
	fieldDevmodeScale        = &dcerpc.Field{Name: "Scale", Abbrev: "spoolss.devmode.scale", Type: dcerpc.FieldUint16}
	fieldDevmodeCopies       = &dcerpc.Field{Name: "Copies", Abbrev: "spoolss.devmode.copies", Type: dcerpc.FieldUint16}
	fieldDevmodeSource       = &dcerpc.Field{Name: "Default source", Abbrev: "spoolss.devmode.default_source", Type: dcerpc.FieldUint16, Values: paperSourceNames}
	fieldDevmodeQuality      = &dcerpc.Field{Name: "Print quality", Abbrev: "spoolss.devmode.print_quality", Type: dcerpc.FieldInt16, Values: printQualityNames}
	fieldDevmodeColor        = &dcerpc.Field{Name: "Color", Abbrev: "spoolss.devmode.color", Type: dcerpc.FieldUint16, Values: colorNames}
	fieldDevmodeDuplex       = &dcerpc.Field{Name: "Duplex", Abbrev: "spoolss.devmode.duplex", Type: dcerpc.FieldUint16, Values: duplexNames}
	fieldDevmodeYResolution  = &dcerpc.Field{Name: "Y resolution", Abbrev: "spoolss.devmode.y_resolution", Type: dcerpc.FieldUint16}
	fieldDevmodeTTOption     = &dcerpc.Field{Name: "TT option", Abbrev: "spoolss.devmode.tt_option", Type: dcerpc.FieldUint16, Values: ttOptionNames}
	fieldDevmodeCollate      = &dcerpc.Field{Name: "Collate", Abbrev: "spoolss.devmode.collate", Type: dcerpc.FieldUint16, Values: collateNames}
	fieldDevmodeFormName     = &dcerpc.Field{Name: "Form name", Abbrev: "spoolss.devmode.form_name", Type: dcerpc.FieldString}
	fieldDevmodeLogPixels    = &dcerpc.Field{Name: "Log pixels", Abbrev: "spoolss.devmode.log_pixels", Type: dcerpc.FieldUint16}
	fieldDevmodeBitsPerPel   = &dcerpc.Field{Name: "Bits per pel", Abbrev: "spoolss.devmode.bits_per_pel", Type: dcerpc.FieldUint32}
	fieldDevmodePelsWidth    = &dcerpc.Field{Name: "Pels width", Abbrev: "spoolss.devmode.pels_width", Type: dcerpc.FieldUint32}
	fieldDevmodePelsHeight   = &dcerpc.Field{Name: "Pels height", Abbrev: "spoolss.devmode.pels_height", Type: dcerpc.FieldUint32}
	fieldDevmodeDisplayFlags = &dcerpc.Field{Name: "Display flags", Abbrev: "spoolss.devmode.display_flags", Type: dcerpc.FieldUint32, Values: displayFlagNames}
	fieldDevmodeDisplayFreq  = &dcerpc.Field{Name: "Display frequency", Abbrev: "spoolss.devmode.display_freq", Type: dcerpc.FieldUint32}
	fieldDevmodeICMMethod    = &dcerpc.Field{Name: "ICM method", Abbrev: "spoolss.devmode.icm_method", Type: dcerpc.FieldUint32, Values: icmMethodNames}
	fieldDevmodeICMIntent    = &dcerpc.Field{Name: "ICM intent", Abbrev: "spoolss.devmode.icm_intent", Type: dcerpc.FieldUint32, Values: icmIntentNames}
	fieldDevmodeMediaType    = &dcerpc.Field{Name: "Media type", Abbrev: "spoolss.devmode.media_type", Type: dcerpc.FieldUint32, Values: mediaTypeNames}
	fieldDevmodeDitherType   = &dcerpc.Field{Name: "Dither type", Abbrev: "spoolss.devmode.dither_type", Type: dcerpc.FieldUint32, Values: ditherTypeNames}
	fieldDevmodeReserved1    = &dcerpc.Field{Name: "Reserved1", Abbrev: "spoolss.devmode.reserved1", Type: dcerpc.FieldUint32}
	fieldDevmodeReserved2    = &dcerpc.Field{Name: "Reserved2", Abbrev: "spoolss.devmode.reserved2", Type: dcerpc.FieldUint32}
	fieldDevmodePanWidth     = &dcerpc.Field{Name: "Panning width", Abbrev: "spoolss.devmode.panning_width", Type: dcerpc.FieldUint32}
	fieldDevmodePanHeight    = &dcerpc.Field{Name: "Panning height", Abbrev: "spoolss.devmode.panning_height", Type: dcerpc.FieldUint32}
	fieldDevmodeDriverExtra  = &dcerpc.Field{Name: "Driver extra", Abbrev: "spoolss.devmode.driver_extra", Type: dcerpc.FieldBytes}

	devmodeFieldBits = []*dcerpc.Field{
		{Name: "Orientation", Abbrev: "spoolss.devmode.fields.orientation", Type: dcerpc.FieldBoolean, Mask: DMOrientation},
		{Name: "Paper size", Abbrev: "spoolss.devmode.fields.paper_size", Type: dcerpc.FieldBoolean, Mask: DMPaperSize},
		{Name: "Paper length", Abbrev: "spoolss.devmode.fields.paper_length", Type: dcerpc.FieldBoolean, Mask: DMPaperLength},
		{Name: "Paper width", Abbrev: "spoolss.devmode.fields.paper_width", Type: dcerpc.FieldBoolean, Mask: DMPaperWidth},
		{Name: "Scale", Abbrev: "spoolss.devmode.fields.scale", Type: dcerpc.FieldBoolean, Mask: DMScale},
		{Name: "Position", Abbrev: "spoolss.devmode.fields.position", Type: dcerpc.FieldBoolean, Mask: DMPosition},
		{Name: "N-up", Abbrev: "spoolss.devmode.fields.nup", Type: dcerpc.FieldBoolean, Mask: DMNup},
		{Name: "Copies", Abbrev: "spoolss.devmode.fields.copies", Type: dcerpc.FieldBoolean, Mask: DMCopies},
		{Name: "Default source", Abbrev: "spoolss.devmode.fields.default_source", Type: dcerpc.FieldBoolean, Mask: DMDefaultSource},
		{Name: "Print quality", Abbrev: "spoolss.devmode.fields.print_quality", Type: dcerpc.FieldBoolean, Mask: DMPrintQuality},
		{Name: "Color", Abbrev: "spoolss.devmode.fields.color", Type: dcerpc.FieldBoolean, Mask: DMColor},
		{Name: "Duplex", Abbrev: "spoolss.devmode.fields.duplex", Type: dcerpc.FieldBoolean, Mask: DMDuplex},
		{Name: "Y resolution", Abbrev: "spoolss.devmode.fields.y_resolution", Type: dcerpc.FieldBoolean, Mask: DMYResolution},
		{Name: "TT option", Abbrev: "spoolss.devmode.fields.tt_option", Type: dcerpc.FieldBoolean, Mask: DMTTOption},
		{Name: "Collate", Abbrev: "spoolss.devmode.fields.collate", Type: dcerpc.FieldBoolean, Mask: DMCollate},
		{Name: "Form name", Abbrev: "spoolss.devmode.fields.form_name", Type: dcerpc.FieldBoolean, Mask: DMFormName},
		{Name: "Log pixels", Abbrev: "spoolss.devmode.fields.log_pixels", Type: dcerpc.FieldBoolean, Mask: DMLogPixels},
		{Name: "Bits per pel", Abbrev: "spoolss.devmode.fields.bits_per_pel", Type: dcerpc.FieldBoolean, Mask: DMBitsPerPel},
		{Name: "Pels width", Abbrev: "spoolss.devmode.fields.pels_width", Type: dcerpc.FieldBoolean, Mask: DMPelsWidth},
		{Name: "Pels height", Abbrev: "spoolss.devmode.fields.pels_height", Type: dcerpc.FieldBoolean, Mask: DMPelsHeight},
		{Name: "Display flags", Abbrev: "spoolss.devmode.fields.display_flags", Type: dcerpc.FieldBoolean, Mask: DMDisplayFlags},
		{Name: "Display frequency", Abbrev: "spoolss.devmode.fields.display_frequency", Type: dcerpc.FieldBoolean, Mask: DMDisplayFrequency},
		{Name: "ICM method", Abbrev: "spoolss.devmode.fields.icm_method", Type: dcerpc.FieldBoolean, Mask: DMICMMethod},
		{Name: "ICM intent", Abbrev: "spoolss.devmode.fields.icm_intent", Type: dcerpc.FieldBoolean, Mask: DMICMIntent},
		{Name: "Media type", Abbrev: "spoolss.devmode.fields.media_type", Type: dcerpc.FieldBoolean, Mask: DMMediaType},
		{Name: "Dither type", Abbrev: "spoolss.devmode.fields.dither_type", Type: dcerpc.FieldBoolean, Mask: DMDitherType},
		{Name: "Panning width", Abbrev: "spoolss.devmode.fields.panning_width", Type: dcerpc.FieldBoolean, Mask: DMPanningWidth},
		{Name: "Panning height", Abbrev: "spoolss.devmode.fields.panning_height", Type: dcerpc.FieldBoolean, Mask: DMPanningHeight},
	}
)

// Jobs
var (
	fieldJobID           = &dcerpc.Field{Name: "Job ID", Abbrev: "spoolss.job.id", Type: dcerpc.FieldUint32}
	fieldJobStatus       = &dcerpc.Field{Name: "Status", Abbrev: "spoolss.job.status", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldJobPriority     = &dcerpc.Field{Name: "Job priority", Abbrev: "spoolss.job.priority", Type: dcerpc.FieldUint32}
	fieldJobPosition     = &dcerpc.Field{Name: "Job position", Abbrev: "spoolss.job.position", Type: dcerpc.FieldUint32}
	fieldJobTotalPages   = &dcerpc.Field{Name: "Job total pages", Abbrev: "spoolss.job.totalpages", Type: dcerpc.FieldUint32}
	fieldJobTotalBytes   = &dcerpc.Field{Name: "Job total bytes", Abbrev: "spoolss.job.totalbytes", Type: dcerpc.FieldUint32}
	fieldJobBytesPrinted = &dcerpc.Field{Name: "Job bytes printed", Abbrev: "spoolss.job.bytesprinted", Type: dcerpc.FieldUint32}
	fieldJobPagesPrinted = &dcerpc.Field{Name: "Job pages printed", Abbrev: "spoolss.job.pagesprinted", Type: dcerpc.FieldUint32}
	fieldJobSize         = &dcerpc.Field{Name: "Job size", Abbrev: "spoolss.job.size", Type: dcerpc.FieldUint32}
	fieldSetJobCmd       = &dcerpc.Field{Name: "Set job command", Abbrev: "spoolss.setjob.cmd", Type: dcerpc.FieldUint32, Values: setJobCommandNames}
	fieldFirstJob        = &dcerpc.Field{Name: "First job", Abbrev: "spoolss.enumjobs.firstjob", Type: dcerpc.FieldUint32}
	fieldNumJobs         = &dcerpc.Field{Name: "Num jobs", Abbrev: "spoolss.enumjobs.numjobs", Type: dcerpc.FieldUint32}
	fieldNumWritten      = &dcerpc.Field{Name: "Num written", Abbrev: "spoolss.writeprinter.numwritten", Type: dcerpc.FieldUint32}

	jobStatusFields = []*dcerpc.Field{
		{Name: "Paused", Abbrev: "spoolss.job.status.paused", Type: dcerpc.FieldBoolean, Mask: JobStatusPaused,
			True: "Job is paused", False: "Job is not paused"},
		{Name: "Error", Abbrev: "spoolss.job.status.error", Type: dcerpc.FieldBoolean, Mask: JobStatusError,
			True: "Job has an error", False: "Job is OK"},
		{Name: "Deleting", Abbrev: "spoolss.job.status.deleting", Type: dcerpc.FieldBoolean, Mask: JobStatusDeleting,
			True: "Job is being deleted", False: "Job is not being deleted"},
		{Name: "Spooling", Abbrev: "spoolss.job.status.spooling", Type: dcerpc.FieldBoolean, Mask: JobStatusSpooling,
			True: "Job is being spooled", False: "Job is not being spooled"},
		{Name: "Printing", Abbrev: "spoolss.job.status.printing", Type: dcerpc.FieldBoolean, Mask: JobStatusPrinting,
			True: "Job is being printed", False: "Job is not being printed"},
		{Name: "Offline", Abbrev: "spoolss.job.status.offline", Type: dcerpc.FieldBoolean, Mask: JobStatusOffline,
			True: "Job is offline", False: "Job is not offline"},
		{Name: "Paperout", Abbrev: "spoolss.job.status.paperout", Type: dcerpc.FieldBoolean, Mask: JobStatusPaperout,
			True: "Job is out of paper", False: "Job is not out of paper"},
		{Name: "Printed", Abbrev: "spoolss.job.status.printed", Type: dcerpc.FieldBoolean, Mask: JobStatusPrinted,
			True: "Job has completed printing", False: "Job has not completed printing"},
		{Name: "Deleted", Abbrev: "spoolss.job.status.deleted", Type: dcerpc.FieldBoolean, Mask: JobStatusDeleted,
			True: "Job has been deleted", False: "Job has not been deleted"},
		{Name: "Blocked", Abbrev: "spoolss.job.status.blocked", Type: dcerpc.FieldBoolean, Mask: JobStatusBlocked,
			True: "Job has been blocked", False: "Job has not been blocked"},
		{Name: "User intervention", Abbrev: "spoolss.job.status.user_intervention", Type: dcerpc.FieldBoolean, Mask: JobStatusUserIntervention,
			True: "User intervention required", False: "User intervention not required"},
	}
)

// Forms
var (
	fieldForm       = &dcerpc.Field{Name: "Data", Abbrev: "spoolss.form", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldFormLevel  = &dcerpc.Field{Name: "Level", Abbrev: "spoolss.form.level", Type: dcerpc.FieldUint32}
	fieldFormName   = &dcerpc.Field{Name: "Name", Abbrev: "spoolss.form.name", Type: dcerpc.FieldString}
	fieldFormFlags  = &dcerpc.Field{Name: "Flags", Abbrev: "spoolss.form.flags", Type: dcerpc.FieldUint32, Values: formTypeNames}
	fieldFormUnknown = &dcerpc.Field{Name: "Unknown", Abbrev: "spoolss.form.unknown", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldFormWidth  = &dcerpc.Field{Name: "Width", Abbrev: "spoolss.form.width", Type: dcerpc.FieldUint32}
	fieldFormHeight = &dcerpc.Field{Name: "Height", Abbrev: "spoolss.form.height", Type: dcerpc.FieldUint32}
	fieldFormLeft   = &dcerpc.Field{Name: "Left margin", Abbrev: "spoolss.form.left", Type: dcerpc.FieldUint32}
	fieldFormTop    = &dcerpc.Field{Name: "Top", Abbrev: "spoolss.form.top", Type: dcerpc.FieldUint32}
	fieldFormHoriz  = &dcerpc.Field{Name: "Horizontal", Abbrev: "spoolss.form.horiz", Type: dcerpc.FieldUint32}
	fieldFormVert   = &dcerpc.Field{Name: "Vertical", Abbrev: "spoolss.form.vert", Type: dcerpc.FieldUint32}
	fieldNumForms   = &dcerpc.Field{Name: "Num", Abbrev: "spoolss.enumforms.num", Type: dcerpc.FieldUint32}
)

// Change notification
var (
	fieldNotifyOptionsVersion = &dcerpc.Field{Name: "Version", Abbrev: "spoolss.notify_options.version", Type: dcerpc.FieldUint32}
	fieldNotifyOptionsFlags   = &dcerpc.Field{Name: "Flags", Abbrev: "spoolss.notify_options.flags", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldNotifyOptionsCount   = &dcerpc.Field{Name: "Count", Abbrev: "spoolss.notify_options.count", Type: dcerpc.FieldUint32}
	fieldNotifyOptionType     = &dcerpc.Field{Name: "Type", Abbrev: "spoolss.notify_option.type", Type: dcerpc.FieldUint16, Values: notifyTypeNames}
	fieldNotifyOptionRes1     = &dcerpc.Field{Name: "Reserved1", Abbrev: "spoolss.notify_option.reserved1", Type: dcerpc.FieldUint16}
	fieldNotifyOptionRes2     = &dcerpc.Field{Name: "Reserved2", Abbrev: "spoolss.notify_option.reserved2", Type: dcerpc.FieldUint32}
	fieldNotifyOptionRes3     = &dcerpc.Field{Name: "Reserved3", Abbrev: "spoolss.notify_option.reserved3", Type: dcerpc.FieldUint32}
	fieldNotifyOptionCount    = &dcerpc.Field{Name: "Count", Abbrev: "spoolss.notify_option.count", Type: dcerpc.FieldUint32}
	fieldNotifyOptionDataCnt  = &dcerpc.Field{Name: "Count", Abbrev: "spoolss.notify_option_data.count", Type: dcerpc.FieldUint32}
	fieldNotifyField          = &dcerpc.Field{Name: "Field", Abbrev: "spoolss.notify_field", Type: dcerpc.FieldUint16}
	fieldNotifyInfoCount      = &dcerpc.Field{Name: "Count", Abbrev: "spoolss.notify_info.count", Type: dcerpc.FieldUint32}
	fieldNotifyInfoVersion    = &dcerpc.Field{Name: "Version", Abbrev: "spoolss.notify_info.version", Type: dcerpc.FieldUint32}
	fieldNotifyInfoFlags      = &dcerpc.Field{Name: "Flags", Abbrev: "spoolss.notify_info.flags", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldNotifyDataType       = &dcerpc.Field{Name: "Type", Abbrev: "spoolss.notify_info_data.type", Type: dcerpc.FieldUint16, Values: notifyTypeNames}
	fieldNotifyDataCount      = &dcerpc.Field{Name: "Count", Abbrev: "spoolss.notify_info_data.count", Type: dcerpc.FieldUint32}
	fieldNotifyDataJobID      = &dcerpc.Field{Name: "Job Id", Abbrev: "spoolss.notify_info_data.jobid", Type: dcerpc.FieldUint32}
	fieldNotifyDataValue1     = &dcerpc.Field{Name: "Value1", Abbrev: "spoolss.notify_info_data.value1", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldNotifyDataValue2     = &dcerpc.Field{Name: "Value2", Abbrev: "spoolss.notify_info_data.value2", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldNotifyDataBufSize    = &dcerpc.Field{Name: "Buffer size", Abbrev: "spoolss.notify_info_data.bufsize", Type: dcerpc.FieldUint32}
	fieldNotifyDataBufLen     = &dcerpc.Field{Name: "Buffer length", Abbrev: "spoolss.notify_info_data.buffer.len", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldNotifyDataBufData    = &dcerpc.Field{Name: "Buffer data", Abbrev: "spoolss.notify_info_data.buffer.data", Type: dcerpc.FieldBytes}

	notifyOptionsFlagFields = []*dcerpc.Field{
		{Name: "Refresh", Abbrev: "spoolss.notify_options.flags.refresh", Type: dcerpc.FieldBoolean, Mask: PrinterNotifyOptionsRefresh,
			True: "Data for all monitored fields is present", False: "Data for all monitored fields not present"},
	}

	fieldRFFPCNEXOptions = &dcerpc.Field{Name: "Options", Abbrev: "spoolss.rffpcnex.options", Type: dcerpc.FieldUint32}
	fieldRFFPCNEXFlags   = &dcerpc.Field{Name: "Flags", Abbrev: "spoolss.rffpcnex.flags", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}

	changeFlagFields = []*dcerpc.Field{
		changeFlag("Add printer", "add_printer", "add printer", PrinterChangeAddPrinter),
		changeFlag("Set printer", "set_printer", "set printer", PrinterChangeSetPrinter),
		changeFlag("Delete printer", "delete_printer", "delete printer", PrinterChangeDeletePrinter),
		changeFlag("Failed printer connection", "failed_connection_printer", "failed printer connection", PrinterChangeFailedConnectionPrinter),
		changeFlag("Add job", "add_job", "add job", PrinterChangeAddJob),
		changeFlag("Set job", "set_job", "set job", PrinterChangeSetJob),
		changeFlag("Delete job", "delete_job", "delete job", PrinterChangeDeleteJob),
		changeFlag("Write job", "write_job", "write job", PrinterChangeWriteJob),
		changeFlag("Add form", "add_form", "add form", PrinterChangeAddForm),
		changeFlag("Set form", "set_form", "set form", PrinterChangeSetForm),
		changeFlag("Delete form", "delete_form", "delete form", PrinterChangeDeleteForm),
		changeFlag("Add port", "add_port", "add port", PrinterChangeAddPort),
		changeFlag("Configure port", "configure_port", "configure port", PrinterChangeConfigurePort),
		changeFlag("Delete port", "delete_port", "delete port", PrinterChangeDeletePort),
		changeFlag("Add processor", "add_processor", "add print processor", PrinterChangeAddPrintProcessor),
		changeFlag("Delete processor", "delete_processor", "delete print processor", PrinterChangeDeletePrintProcessor),
		changeFlag("Add driver", "add_driver", "add driver", PrinterChangeAddPrinterDriver),
		changeFlag("Set driver", "set_driver", "set driver", PrinterChangeSetPrinterDriver),
		changeFlag("Delete driver", "delete_driver", "delete driver", PrinterChangeDeletePrinterDriver),
		changeFlag("Timeout", "timeout", "timeout", PrinterChangeTimeout),
	}

	fieldRRPCNChangeLow  = &dcerpc.Field{Name: "Change low", Abbrev: "spoolss.rrpcn.changelow", Type: dcerpc.FieldUint32}
	fieldRRPCNChangeHigh = &dcerpc.Field{Name: "Change high", Abbrev: "spoolss.rrpcn.changehigh", Type: dcerpc.FieldUint32}
	fieldRRPCNUnknown0   = &dcerpc.Field{Name: "Unknown 0", Abbrev: "spoolss.rrpcn.unk0", Type: dcerpc.FieldUint32}
	fieldRRPCNUnknown1   = &dcerpc.Field{Name: "Unknown 1", Abbrev: "spoolss.rrpcn.unk1", Type: dcerpc.FieldUint32}

	fieldReplyOpenUnknown0 = &dcerpc.Field{Name: "Unknown 0", Abbrev: "spoolss.replyopenprinter.unk0", Type: dcerpc.FieldUint32}
	fieldReplyOpenUnknown1 = &dcerpc.Field{Name: "Unknown 1", Abbrev: "spoolss.replyopenprinter.unk1", Type: dcerpc.FieldUint32}

	fieldRouterCondition = &dcerpc.Field{Name: "Condition", Abbrev: "spoolss.routerreplyprinter.condition", Type: dcerpc.FieldUint32}
	fieldRouterUnknown1  = &dcerpc.Field{Name: "Unknown1", Abbrev: "spoolss.routerreplyprinter.unknown1", Type: dcerpc.FieldUint32}
	fieldRouterChangeID  = &dcerpc.Field{Name: "Change id", Abbrev: "spoolss.routerreplyprinter.changeid", Type: dcerpc.FieldUint32}
)

func changeFlag(name, abbrev, event string, mask uint32) *dcerpc.Field {
	return &dcerpc.Field{
		Name:   name,
		Abbrev: "spoolss.rffpcnex.flags." + abbrev,
		Type:   dcerpc.FieldBoolean,
		Mask:   mask,
		True:   "Notify on " + event,
		False:  "Don't notify on " + event,
	}
}

// SYSTEM_TIME, user level and the remaining containers
var (
	fieldTimeYear   = &dcerpc.Field{Name: "Year", Abbrev: "spoolss.time.year", Type: dcerpc.FieldUint16}
	fieldTimeMonth  = &dcerpc.Field{Name: "Month", Abbrev: "spoolss.time.month", Type: dcerpc.FieldUint16}
	fieldTimeDow    = &dcerpc.Field{Name: "Day of week", Abbrev: "spoolss.time.dow", Type: dcerpc.FieldUint16}
	fieldTimeDay    = &dcerpc.Field{Name: "Day", Abbrev: "spoolss.time.day", Type: dcerpc.FieldUint16}
	fieldTimeHour   = &dcerpc.Field{Name: "Hour", Abbrev: "spoolss.time.hour", Type: dcerpc.FieldUint16}
	fieldTimeMinute = &dcerpc.Field{Name: "Minute", Abbrev: "spoolss.time.minute", Type: dcerpc.FieldUint16}
	fieldTimeSecond = &dcerpc.Field{Name: "Second", Abbrev: "spoolss.time.second", Type: dcerpc.FieldUint16}
	fieldTimeMsec   = &dcerpc.Field{Name: "Millisecond", Abbrev: "spoolss.time.msec", Type: dcerpc.FieldUint16}

	fieldUserLevelSize      = &dcerpc.Field{Name: "Size", Abbrev: "spoolss.userlevel.size", Type: dcerpc.FieldUint32}
	fieldUserLevelClient    = &dcerpc.Field{Name: "Client", Abbrev: "spoolss.userlevel.client", Type: dcerpc.FieldString}
	fieldUserLevelUser      = &dcerpc.Field{Name: "User", Abbrev: "spoolss.userlevel.user", Type: dcerpc.FieldString}
	fieldUserLevelBuild     = &dcerpc.Field{Name: "Build", Abbrev: "spoolss.userlevel.build", Type: dcerpc.FieldUint32}
	fieldUserLevelMajor     = &dcerpc.Field{Name: "Major", Abbrev: "spoolss.userlevel.major", Type: dcerpc.FieldUint32}
	fieldUserLevelMinor     = &dcerpc.Field{Name: "Minor", Abbrev: "spoolss.userlevel.minor", Type: dcerpc.FieldUint32}
	fieldUserLevelProcessor = &dcerpc.Field{Name: "Processor", Abbrev: "spoolss.userlevel.processor", Type: dcerpc.FieldUint32}

	fieldSecDescBufMaxLen = &dcerpc.Field{Name: "Max len", Abbrev: "spoolss.secdescbuf.max_len", Type: dcerpc.FieldUint32}
	fieldSecDescBufUndoc  = &dcerpc.Field{Name: "Undocumented", Abbrev: "spoolss.secdescbuf.undoc", Type: dcerpc.FieldUint32}
	fieldSecDescBufLen    = &dcerpc.Field{Name: "Length", Abbrev: "spoolss.secdescbuf.len", Type: dcerpc.FieldUint32}
	fieldDevmodePtr       = &dcerpc.Field{Name: "Devmode pointer", Abbrev: "spoolss.spoolprinterinfo.devmode_ptr", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
	fieldSecDescPtr       = &dcerpc.Field{Name: "Secdesc pointer", Abbrev: "spoolss.spoolprinterinfo.secdesc_ptr", Type: dcerpc.FieldUint32, Base: dcerpc.BaseHex}
)

// Fields indexes every field this package emits by its filter abbreviation.
var Fields = buildFieldIndex()

func buildFieldIndex() map[string]*dcerpc.Field {
	single := []*dcerpc.Field{
		fieldOpnum, fieldHnd, fieldRC, fieldOffered, fieldNeeded, fieldReturned, fieldLevel, fieldOffset,
		fieldBufferSize, fieldBufferData, fieldAccessRequired, fieldPrinterLocal, fieldString,

		fieldPrinterName, fieldMachineName, fieldNotifyName, fieldPrinterDesc, fieldPrinterComment,
		fieldServerName, fieldShareName, fieldPortName, fieldPrinterLocation, fieldArchitecture,
		fieldDriverName, fieldUserName, fieldDocumentName, fieldOutputFile, fieldDatatype,
		fieldTextStatus, fieldSepFile, fieldParameters, fieldPrintProcessor,

		fieldClientMajorVersion, fieldClientMinorVersion, fieldServerMajorVersion, fieldServerMinorVersion,
		fieldDriverPath, fieldDataFile, fieldConfigFile, fieldHelpFile, fieldMonitorName,
		fieldDefaultDatatype, fieldDependentFiles, fieldDriverVersion,

		fieldPrinterStatus, fieldSetPrinterCmd, fieldPrinterFlags, fieldPrinterGUID, fieldPrinterAction,
		fieldPriority, fieldDefaultPriority, fieldPrinterJobs, fieldAveragePPM, fieldStartTime,
		fieldEndTime, fieldElapsedTime, fieldCJobs, fieldTotalJobs, fieldTotalBytes, fieldGlobalCounter,
		fieldTotalPages, fieldMajorVersion, fieldBuildVersion, fieldSessionCounter, fieldPrinterErrors,
		fieldChangeID, fieldCSetPrinter, fieldPrinterUnknown7, fieldPrinterUnknown8, fieldPrinterUnknown9,
		fieldPrinterUnknown11, fieldPrinterUnknown13, fieldPrinterUnknown14, fieldPrinterUnknown15,
		fieldPrinterUnknown16, fieldPrinterUnknown18, fieldPrinterUnknown20, fieldPrinterUnknown22,
		fieldPrinterUnknown23, fieldPrinterUnknown24, fieldPrinterUnknown25, fieldPrinterUnknown26,
		fieldPrinterUnknown27, fieldPrinterUnknown28, fieldPrinterUnknown29,
		fieldPrinterAttributes, fieldEnumPrintersFlags,

		fieldPrinterData, fieldPrinterDataKey, fieldPrinterDataValue, fieldPrinterDataType,
		fieldPrinterDataSize, fieldPrinterDataData, fieldPrinterDataDword, fieldPrinterDataSz,
		fieldSetPrinterDataMaxLen, fieldSetPrinterDataData, fieldSetPrinterDataRealLen,
		fieldEnumIndex, fieldValueOffered, fieldDataOffered, fieldValueLen, fieldValueNeeded,
		fieldDataNeeded, fieldValueNameOffset, fieldValueNameLen, fieldValueName, fieldValueDataOffset,
		fieldValueDataLen, fieldValueDwordLow, fieldValueDwordHigh, fieldValueSz, fieldKeyBufferSize, fieldKey,

		fieldDevmodeCtrSize, fieldDevmode, fieldDevmodeSize, fieldDevmodeDeviceName, fieldDevmodeSpecVersion,
		fieldDevmodeDriverVer, fieldDevmodeSize2, fieldDevmodeExtraLen, fieldDevmodeFields,
		fieldDevmodeOrientation, fieldDevmodePaperSize, fieldDevmodePaperLength, fieldDevmodePaperWidth,
		fieldDevmodeScale, fieldDevmodeCopies, fieldDevmodeSource, fieldDevmodeQuality, fieldDevmodeColor,
		fieldDevmodeDuplex, fieldDevmodeYResolution, fieldDevmodeTTOption, fieldDevmodeCollate,
		fieldDevmodeFormName, fieldDevmodeLogPixels, fieldDevmodeBitsPerPel, fieldDevmodePelsWidth,
		fieldDevmodePelsHeight, fieldDevmodeDisplayFlags, fieldDevmodeDisplayFreq, fieldDevmodeICMMethod,
		fieldDevmodeICMIntent, fieldDevmodeMediaType, fieldDevmodeDitherType, fieldDevmodeReserved1,
		fieldDevmodeReserved2, fieldDevmodePanWidth, fieldDevmodePanHeight, fieldDevmodeDriverExtra,

		fieldJobID, fieldJobStatus, fieldJobPriority, fieldJobPosition, fieldJobTotalPages,
		fieldJobTotalBytes, fieldJobBytesPrinted, fieldJobPagesPrinted, fieldJobSize, fieldSetJobCmd,
		fieldFirstJob, fieldNumJobs, fieldNumWritten,

		fieldForm, fieldFormLevel, fieldFormName, fieldFormFlags, fieldFormUnknown, fieldFormWidth,
		fieldFormHeight, fieldFormLeft, fieldFormTop, fieldFormHoriz, fieldFormVert, fieldNumForms,

		fieldNotifyOptionsVersion, fieldNotifyOptionsFlags, fieldNotifyOptionsCount, fieldNotifyOptionType,
		fieldNotifyOptionRes1, fieldNotifyOptionRes2, fieldNotifyOptionRes3, fieldNotifyOptionCount,
		fieldNotifyOptionDataCnt, fieldNotifyField, fieldNotifyInfoCount, fieldNotifyInfoVersion,
		fieldNotifyInfoFlags, fieldNotifyDataType, fieldNotifyDataCount, fieldNotifyDataJobID,
		fieldNotifyDataValue1, fieldNotifyDataValue2, fieldNotifyDataBufSize, fieldNotifyDataBufLen,
		fieldNotifyDataBufData, fieldRFFPCNEXOptions, fieldRFFPCNEXFlags,
		fieldRRPCNChangeLow, fieldRRPCNChangeHigh, fieldRRPCNUnknown0, fieldRRPCNUnknown1,
		fieldReplyOpenUnknown0, fieldReplyOpenUnknown1, fieldRouterCondition, fieldRouterUnknown1,
		fieldRouterChangeID,

		fieldTimeYear, fieldTimeMonth, fieldTimeDow, fieldTimeDay, fieldTimeHour, fieldTimeMinute,
		fieldTimeSecond, fieldTimeMsec,
		fieldUserLevelSize, fieldUserLevelClient, fieldUserLevelUser, fieldUserLevelBuild,
		fieldUserLevelMajor, fieldUserLevelMinor, fieldUserLevelProcessor,
		fieldSecDescBufMaxLen, fieldSecDescBufUndoc, fieldSecDescBufLen, fieldDevmodePtr, fieldSecDescPtr,
	}
	groups := [][]*dcerpc.Field{
		single, printerAttributeFields, enumPrintersFlagFields, accessMaskFields, devmodeFieldBits,
		jobStatusFields, notifyOptionsFlagFields, changeFlagFields,
	}
	index := make(map[string]*dcerpc.Field)
	for _, g := range groups {
		for _, f := range g {
			if _, ok := index[f.Abbrev]; ok {
				log.Errorf("Duplicate field abbreviation %s\n", f.Abbrev)
				continue
			}
			index[f.Abbrev] = f
		}
	}
	return index
}
