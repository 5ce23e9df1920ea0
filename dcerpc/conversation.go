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

import (
	"encoding/binary"
	"sync"

	"github.com/pkg/errors"
)

// Message is a complete request, response or fault after reassembly.
type Message struct {
	Type           uint8
	CallId         uint32
	ContextId      uint16
	Opnum          uint16
	Representation DataRepresentation
	Stub           []byte
	Status         uint32 // fault status
	Fragments      int
}

type fragKey struct {
	ptype  uint8
	callId uint32
}

type pending struct {
	msg  *Message
	data []byte
}

// Conversation follows one connection oriented association: it learns the
// interface bound to each presentation context and reassembles fragmented
// requests and responses.
type Conversation struct {
	mu          sync.Mutex
	maxStub     int
	contexts    map[uint16]SyntaxId
	pendingBind map[uint32][]ContextItem
	fragments   map[fragKey]*pending
}

// NewConversation creates a conversation. Reassembled stubs larger than
// maxStub bytes are rejected; 0 means no limit.
func NewConversation(maxStub int) *Conversation {
	return &Conversation{
		maxStub:     maxStub,
		contexts:    make(map[uint16]SyntaxId),
		pendingBind: make(map[uint32][]ContextItem),
		fragments:   make(map[fragKey]*pending),
	}
}

// Interface returns the abstract syntax negotiated for a context id.
func (self *Conversation) Interface(contextId uint16) (SyntaxId, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	s, ok := self.contexts[contextId]
	return s, ok
}

// SetInterface binds a context id without having seen the bind, which is
// needed for captures that start mid conversation.
func (self *Conversation) SetInterface(contextId uint16, syntax SyntaxId) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.contexts[contextId] = syntax
}

// Feed processes one PDU. It returns a Message once a request, response or
// fault is complete and nil for everything else.
func (self *Conversation) Feed(pdu []byte) (*Message, error) {
	var hdr Header
	if err := hdr.UnmarshalBinary(pdu); err != nil {
		return nil, err
	}
	self.mu.Lock()
	defer self.mu.Unlock()

	switch hdr.Type {
	case PacketTypeBind, PacketTypeAlterContext:
		var req BindReq
		if err := req.UnmarshalBinary(pdu); err != nil {
			log.Errorln(err)
			return nil, err
		}
		self.pendingBind[hdr.CallId] = req.Items
		return nil, nil
	case PacketTypeBindAck, PacketTypeAlterContextResp:
		var res BindRes
		if err := res.UnmarshalBinary(pdu); err != nil {
			log.Errorln(err)
			return nil, err
		}
		items := self.pendingBind[hdr.CallId]
		delete(self.pendingBind, hdr.CallId)
		for i, r := range res.Results {
			if i >= len(items) {
				break
			}
			if r.Result != ResultAcceptance {
				continue
			}
			if r.TransferSyntax.UUID != NDRTransferSyntax {
				log.Noticef("Context %d accepted with transfer syntax %s, its stubs cannot be decoded\n", items[i].Id, r.TransferSyntax)
				continue
			}
			self.contexts[items[i].Id] = items[i].AbstractSyntax
		}
		return nil, nil
	case PacketTypeRequest:
		var req RequestReq
		if err := req.UnmarshalBinary(pdu); err != nil {
			return nil, err
		}
		msg := &Message{
			Type:           hdr.Type,
			CallId:         hdr.CallId,
			ContextId:      req.ContextId,
			Opnum:          req.Opnum,
			Representation: hdr.Representation,
		}
		return self.reassemble(&hdr, msg, req.Buffer)
	case PacketTypeResponse:
		var res RequestRes
		if err := res.UnmarshalBinary(pdu); err != nil {
			return nil, err
		}
		msg := &Message{
			Type:           hdr.Type,
			CallId:         hdr.CallId,
			ContextId:      res.ContextId,
			Representation: hdr.Representation,
		}
		return self.reassemble(&hdr, msg, res.Buffer)
	case PacketTypeFault:
		var res FaultRes
		if err := res.UnmarshalBinary(pdu); err != nil {
			return nil, err
		}
		delete(self.fragments, fragKey{PacketTypeResponse, hdr.CallId})
		return &Message{
			Type:           hdr.Type,
			CallId:         hdr.CallId,
			ContextId:      res.ContextId,
			Representation: hdr.Representation,
			Status:         res.Status,
			Fragments:      1,
		}, nil
	}
	log.Debugf("Ignoring %s PDU\n", PacketTypeNames[hdr.Type])
	return nil, nil
}

func (self *Conversation) reassemble(hdr *Header, msg *Message, stub []byte) (*Message, error) {
	key := fragKey{hdr.Type, hdr.CallId}
	if hdr.IsFirstFrag() {
		if _, ok := self.fragments[key]; ok {
			log.Debugf("Dropping incomplete fragments of call %d\n", hdr.CallId)
		}
		self.fragments[key] = &pending{msg: msg}
	}
	p, ok := self.fragments[key]
	if !ok {
		return nil, errors.Errorf("fragment of call %d without a first fragment", hdr.CallId)
	}
	if self.maxStub > 0 && len(p.data)+len(stub) > self.maxStub {
		delete(self.fragments, key)
		return nil, errors.Errorf("reassembled stub of call %d exceeds %d bytes", hdr.CallId, self.maxStub)
	}
	p.data = append(p.data, stub...)
	p.msg.Fragments++
	if !hdr.IsLastFrag() {
		return nil, nil
	}
	delete(self.fragments, key)
	p.msg.Stub = p.data
	return p.msg, nil
}

// SplitPDUs splits a byte stream holding back to back PDUs using the
// fragment length of each header.
func SplitPDUs(stream []byte) (pdus [][]byte, err error) {
	for len(stream) > 0 {
		if len(stream) < HeaderLen {
			return pdus, errors.Wrapf(ErrShortHeader, "%d trailing bytes", len(stream))
		}
		var bo binary.ByteOrder = DataRepresentation{stream[4]}.ByteOrder()
		fragLen := int(bo.Uint16(stream[8:]))
		if fragLen < HeaderLen || fragLen > len(stream) {
			return pdus, errors.Wrapf(ErrFragmentTooShort, "frag length %d, have %d bytes", fragLen, len(stream))
		}
		pdus = append(pdus, stream[:fragLen])
		stream = stream[fragLen:]
	}
	return
}
