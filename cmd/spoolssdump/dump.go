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
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/jfjallid/go-spoolss/dcerpc"
	"github.com/jfjallid/go-spoolss/dcerpc/msrprn"
)

type stats struct {
	PDUs      int
	Decoded   int
	Malformed int
	Skipped   int
	Bytes     uint64
}

// dumper decodes the SPOOLSS calls of one association. Handle names are
// shared by every input of a run.
type dumper struct {
	out     io.Writer
	opts    dcerpc.RenderOptions
	assume  *dcerpc.SyntaxId
	maxPDU  int
	conv    *dcerpc.Conversation
	calls   *dcerpc.CallTable
	handles *dcerpc.HandleTable
	stats   stats
}

func newDumper(cfg Config, out io.Writer) (*dumper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	assume, _ := cfg.syntax()
	return &dumper{
		out:     out,
		opts:    dcerpc.RenderOptions{ShowHidden: cfg.ShowHidden, ShowOffsets: cfg.ShowOffsets},
		assume:  assume,
		maxPDU:  cfg.MaxPDUSize,
		conv:    dcerpc.NewConversation(cfg.MaxPDUSize),
		calls:   dcerpc.NewCallTable(),
		handles: dcerpc.NewHandleTable(),
	}, nil
}

// reset starts a new association. Calls and contexts do not carry over
// between inputs but handle names do.
func (self *dumper) reset() {
	self.conv = dcerpc.NewConversation(self.maxPDU)
	self.calls = dcerpc.NewCallTable()
}

// Process decodes every PDU in stream. A malformed PDU is reported and
// decoding continues with the next one.
func (self *dumper) Process(name string, stream []byte) {
	self.stats.Bytes += uint64(len(stream))
	pdus, err := dcerpc.SplitPDUs(stream)
	for _, pdu := range pdus {
		self.stats.PDUs++
		self.feed(pdu)
	}
	if err != nil {
		self.stats.Malformed++
		fmt.Fprintf(self.out, "%s: %v\n", name, err)
	}
}

func (self *dumper) feed(pdu []byte) {
	msg, err := self.conv.Feed(pdu)
	if err != nil {
		self.stats.Malformed++
		fmt.Fprintf(self.out, "[Malformed PDU: %v]\n", err)
		return
	}
	if msg == nil {
		return
	}
	syntax, ok := self.conv.Interface(msg.ContextId)
	if !ok && self.assume != nil {
		syntax, ok = *self.assume, true
	}
	if !ok || !msrprn.IsSpoolss(syntax) {
		log.Debugf("Skipping call %d on context %d\n", msg.CallId, msg.ContextId)
		self.stats.Skipped++
		return
	}

	switch msg.Type {
	case dcerpc.PacketTypeRequest:
		call := self.calls.Begin(msg.ContextId, msg.CallId, msg.Opnum)
		res, err := msrprn.DecodeRequest(msg.Stub, msg.Opnum, msg.Representation, call, self.handles)
		self.print(res, err)
	case dcerpc.PacketTypeResponse:
		call, ok := self.calls.Lookup(msg.ContextId, msg.CallId)
		if !ok {
			fmt.Fprintf(self.out, "SPOOLSS response to unseen call %d, %d bytes not decoded\n", msg.CallId, len(msg.Stub))
			self.stats.Skipped++
			return
		}
		self.calls.End(msg.ContextId, msg.CallId)
		res, err := msrprn.DecodeResponse(msg.Stub, call.Opnum, msg.Representation, call, self.handles)
		self.print(res, err)
	case dcerpc.PacketTypeFault:
		name := "unknown operation"
		if call, ok := self.calls.Lookup(msg.ContextId, msg.CallId); ok {
			name = msrprn.OperationName(call.Opnum)
			self.calls.End(msg.ContextId, msg.CallId)
		}
		fmt.Fprintf(self.out, "SPOOLSS %s fault, status 0x%08x\n", name, msg.Status)
		self.stats.Decoded++
	}
}

func (self *dumper) print(res *dcerpc.Result, err error) {
	if res == nil {
		self.stats.Malformed++
		fmt.Fprintf(self.out, "[Undecoded: %v]\n", err)
		return
	}
	res.Tree.AppendText("%s", res.Info)
	if res.Trailing > 0 {
		res.Tree.AddText(nil, res.Offset, res.Trailing, "[Long frame (%d bytes): SPOOLSS]", res.Trailing)
	}
	if rerr := res.Tree.Render(self.out, self.opts); rerr != nil {
		log.Errorln(rerr)
	}
	if err != nil {
		self.stats.Malformed++
		fmt.Fprintf(self.out, "[%v]\n", err)
		return
	}
	self.stats.Decoded++
}

func (self *dumper) Summary() string {
	return fmt.Sprintf("%d PDUs, %d decoded, %d malformed, %d skipped, %d handles left open, %s processed",
		self.stats.PDUs, self.stats.Decoded, self.stats.Malformed, self.stats.Skipped,
		self.handles.Open(), humanize.Bytes(self.stats.Bytes))
}
