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

	"github.com/jfjallid/go-spoolss/dcerpc"
)

func enumJobsRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if pos, err = uint32Fields(d, buf, pos, tree, fieldFirstJob, fieldNumJobs); err != nil {
		return off, err
	}
	var level uint32
	if pos, level, err = d.Uint32(buf, pos, tree, fieldLevel); err != nil {
		return off, err
	}
	d.Call().SetLevel(level)
	d.Infof(", level %d", level)
	if pos, _, err = decodeBuffer(d, buf, pos, tree); err != nil {
		return off, err
	}
	pos, _, err = d.Uint32(buf, pos, tree, fieldOffered)
	return pos, err
}

func enumJobsResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	level, ok := d.Call().Level()
	levelInfo(d, level, ok)
	pos, b, err := decodeBuffer(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded); err != nil {
		return off, err
	}
	var count uint32
	if pos, count, err = d.Uint32(buf, pos, tree, fieldNumJobs); err != nil {
		return off, err
	}
	if err = decodeLevelList(d, b, "job", level, ok, count, jobInfoDecoder); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func setJobRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var jobID, cmd uint32
	if pos, jobID, err = d.Uint32(buf, pos, tree, fieldJobID); err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldLevel); err != nil {
		return off, err
	}
	if pos, cmd, err = d.Uint32(buf, pos, tree, fieldSetJobCmd); err != nil {
		return off, err
	}
	name, ok := fieldSetJobCmd.ValueName(int64(cmd))
	if !ok {
		name = fmt.Sprintf("Unknown (%d)", cmd)
	}
	d.Infof(", %s jobid %d", name, jobID)
	return pos, nil
}

func getJobRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var jobID, level uint32
	if pos, jobID, err = d.Uint32(buf, pos, tree, fieldJobID); err != nil {
		return off, err
	}
	if pos, level, err = d.Uint32(buf, pos, tree, fieldLevel); err != nil {
		return off, err
	}
	d.Call().SetLevel(level)
	d.Infof(", level %d, jobid %d", level, jobID)
	if pos, _, err = decodeBuffer(d, buf, pos, tree); err != nil {
		return off, err
	}
	pos, _, err = d.Uint32(buf, pos, tree, fieldOffered)
	return pos, err
}

func getJobResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	level, ok := d.Call().Level()
	pos, b, err := decodeBuffer(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if err = decodeLevel(d, b, "job", level, ok, jobInfoDecoder); err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

// namedHandleRequest decodes requests that carry nothing but the handle.
func namedHandleRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return decodeNamedHandle(d, buf, off, tree, false)
}

func startDocPrinterRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeNamedHandle(d, buf, off, tree, false)
	if err != nil {
		return off, err
	}
	return decodeDocInfoCtr(d, buf, pos, tree)
}

func startDocPrinterResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, _, err := d.Uint32(buf, off, tree, fieldJobID)
	if err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func writePrinterRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := decodeNamedHandle(d, buf, off, tree, false)
	if err != nil {
		return off, err
	}
	var size uint32
	if pos, size, err = d.Uint32(buf, pos, tree, fieldBufferSize); err != nil {
		return off, err
	}
	d.Infof(", %d bytes", size)
	item := tree.AddText(buf, pos, int(size)+4, "Buffer")
	if pos, _, err = d.Uint8s(buf, pos, item, fieldBufferData, int(size)); err != nil {
		return off, err
	}
	pos, _, err = d.Uint32(buf, pos, item, fieldBufferSize)
	return pos, err
}

func writePrinterResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, written, err := d.Uint32(buf, off, tree, fieldNumWritten)
	if err != nil {
		return off, err
	}
	d.Infof(", %d bytes written", written)
	return decodeStatus(d, buf, pos, tree)
}
