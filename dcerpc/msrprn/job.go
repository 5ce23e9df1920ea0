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
	"github.com/jfjallid/go-spoolss/dcerpc"
)

func decodeJobStatus(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, uint32, error) {
	pos, status, _, err := d.Bitmask(buf, off, tree, fieldJobStatus, jobStatusFields)
	return pos, status, err
}

// decodeJobInfo1 decodes a JOB_INFO_1 stored in a buffer.
func decodeJobInfo1(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	structStart := off
	item := tree.AddText(buf, off, 0, "Job info level 1")

	pos, _, err := d.Uint32(buf, off, item, fieldJobID)
	if err != nil {
		return off, err
	}
	if pos, err = relStrFields(d, buf, pos, structStart, item, fieldPrinterName, fieldServerName, fieldUserName); err != nil {
		return off, err
	}
	var document string
	if pos, document, err = relStr(d, buf, pos, structStart, item, fieldDocumentName); err != nil {
		return off, err
	}
	item.AppendText(": %s", document)
	if pos, err = relStrFields(d, buf, pos, structStart, item, fieldDatatype, fieldTextStatus); err != nil {
		return off, err
	}
	if pos, _, err = decodeJobStatus(d, buf, pos, item); err != nil {
		return off, err
	}
	if pos, err = uint32Fields(d, buf, pos, item,
		fieldJobPriority, fieldJobPosition, fieldJobTotalPages, fieldJobPagesPrinted); err != nil {
		return off, err
	}
	if pos, _, err = decodeSystemTime(d, buf, pos, item, "Job Submission Time"); err != nil {
		return off, err
	}
	item.SetLength(pos - structStart)
	return pos, nil
}

// decodeJobInfo2 decodes a JOB_INFO_2 stored in a buffer. Unlike
// PRINTER_INFO_2 the DEVMODE offset counts from the start of the
// structure, while the security descriptor offset still counts from the
// start of the buffer.
func decodeJobInfo2(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	structStart := off
	item := tree.AddText(buf, off, 0, "Job info level 2")

	pos, _, err := d.Uint32(buf, off, item, fieldJobID)
	if err != nil {
		return off, err
	}
	if pos, err = relStrFields(d, buf, pos, structStart, item, fieldPrinterName, fieldMachineName, fieldUserName); err != nil {
		return off, err
	}
	var document string
	if pos, document, err = relStr(d, buf, pos, structStart, item, fieldDocumentName); err != nil {
		return off, err
	}
	item.AppendText(": %s", document)
	if pos, err = relStrFields(d, buf, pos, structStart, item,
		fieldNotifyName, fieldDatatype, fieldPrintProcessor, fieldParameters, fieldDriverName); err != nil {
		return off, err
	}

	var devmodeOffset, secdescOffset uint32
	if pos, devmodeOffset, err = d.ReadUint32(buf, pos); err != nil {
		return off, err
	}
	pos += 4
	if devmodeOffset != 0 {
		dm, err := resolveStructRelative(buf, structStart, devmodeOffset-4)
		if err != nil {
			return off, err
		}
		if _, err = decodeDevmode(d, buf, dm, item); err != nil {
			return off, err
		}
	}

	if pos, _, err = relStr(d, buf, pos, structStart, item, fieldTextStatus); err != nil {
		return off, err
	}

	if pos, secdescOffset, err = d.ReadUint32(buf, pos); err != nil {
		return off, err
	}
	pos += 4
	if secdescOffset != 0 {
		sd, err := resolveBufferAbsolute(buf, int64(secdescOffset))
		if err != nil {
			return off, err
		}
		if _, err = d.SecurityDescriptor(buf, sd, buf.Remaining(sd), item, AccessRights); err != nil {
			return off, err
		}
	}

	if pos, _, err = decodeJobStatus(d, buf, pos, item); err != nil {
		return off, err
	}
	if pos, err = uint32Fields(d, buf, pos, item,
		fieldJobPriority, fieldJobPosition, fieldStartTime, fieldEndTime,
		fieldJobTotalPages, fieldJobSize); err != nil {
		return off, err
	}
	if pos, _, err = decodeSystemTime(d, buf, pos, item, "Job Submission Time"); err != nil {
		return off, err
	}
	if pos, err = uint32Fields(d, buf, pos, item, fieldElapsedTime, fieldJobPagesPrinted); err != nil {
		return off, err
	}
	item.SetLength(pos - structStart)
	return pos, nil
}

func jobInfoDecoder(level uint32) (dcerpc.StubDecoder, bool) {
	switch level {
	case 1:
		return decodeJobInfo1, true
	case 2:
		return decodeJobInfo2, true
	}
	return nil, false
}
