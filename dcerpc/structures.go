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
//
// The PDU structures only cover what is needed to follow a connection
// oriented conversation: the common header, bind and alter context so the
// interface of each presentation context is known, and request, response
// and fault PDUs carrying the stubs.

package dcerpc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// C706 Section 12.6.4 packet types
const (
	PacketTypeRequest          uint8 = 0
	PacketTypePing             uint8 = 1
	PacketTypeResponse         uint8 = 2
	PacketTypeFault            uint8 = 3
	PacketTypeBind             uint8 = 11
	PacketTypeBindAck          uint8 = 12
	PacketTypeBindNak          uint8 = 13
	PacketTypeAlterContext     uint8 = 14
	PacketTypeAlterContextResp uint8 = 15
	PacketTypeAuth3            uint8 = 16
	PacketTypeShutdown         uint8 = 17
	PacketTypeCancel           uint8 = 18
	PacketTypeOrphaned         uint8 = 19
)

var PacketTypeNames = map[uint8]string{
	PacketTypeRequest:          "Request",
	PacketTypePing:             "Ping",
	PacketTypeResponse:         "Response",
	PacketTypeFault:            "Fault",
	PacketTypeBind:             "Bind",
	PacketTypeBindAck:          "Bind_ack",
	PacketTypeBindNak:          "Bind_nak",
	PacketTypeAlterContext:     "Alter_context",
	PacketTypeAlterContextResp: "Alter_context_resp",
	PacketTypeAuth3:            "AUTH3",
	PacketTypeShutdown:         "Shutdown",
	PacketTypeCancel:           "Cancel",
	PacketTypeOrphaned:         "Orphaned",
}

// C706 Section 12.6.3.1 pfc_flags
const (
	PfcFirstFrag     uint8 = 0x01
	PfcLastFrag      uint8 = 0x02
	PfcPendingCancel uint8 = 0x04
	PfcConcMpx       uint8 = 0x10
	PfcDidNotExecute uint8 = 0x20
	PfcMaybe         uint8 = 0x40
	PfcObjectUUID    uint8 = 0x80
)

const (
	HeaderLen     = 16
	RequestHdrLen = 24
	SecTrailerLen = 8
)

// C706 Section 12.6.3.1 p_cont_def_result_t
const (
	ResultAcceptance        uint16 = 0
	ResultUserRejection     uint16 = 1
	ResultProviderRejection uint16 = 2
)

var NDRTransferSyntax = uuid.MustParse("8a885d04-1ceb-11c9-9fe8-08002b104860")

// Defined in C706 (DCE 1.1: Remote Procedure Call) section 12.6.3.1 as "common fields"
type Header struct {
	MajorVersion   byte // rpc_vers
	MinorVersion   byte // rpc_vers_minor
	Type           byte
	Flags          byte
	Representation DataRepresentation
	FragLength     uint16
	AuthLength     uint16
	CallId         uint32
}

type SyntaxId struct {
	UUID uuid.UUID
	// Major version is encoded in the 16 least significant bits
	// Minor version is encoded in the 16 most significant bits
	Version uint32
}

func (self SyntaxId) Major() uint16 {
	return uint16(self.Version)
}

func (self SyntaxId) Minor() uint16 {
	return uint16(self.Version >> 16)
}

func (self SyntaxId) String() string {
	return fmt.Sprintf("%s v%d.%d", self.UUID, self.Major(), self.Minor())
}

/*
C706 Section 12.6.3.1

	typedef struct {
	  p_context_id_t p_cont_id;
	  u_int8 n_transfer_syn;               // number of items
	  u_int8 reserved;                     // alignment pad, m.b.z.
	  p_syntax_id_t abstract_syntax;       // transfer syntax list
	  p_syntax_id_t [size_is(n_transfer_syn)] transfer_syntaxes[];
	} p_cont_elem_t;
*/
type ContextItem struct {
	Id             uint16
	Count          byte // Determined by number of items in TransferSyntax list
	Reserved       byte // Alignment
	AbstractSyntax SyntaxId
	TransferSyntax []SyntaxId
}

// C706 Section 12.6.4.3, also used for alter_context
type BindReq struct {
	Header          // 16 Bytes
	MaxSendFragSize uint16
	MaxRecvFragSize uint16
	Association     uint32 // A value of 0 means a request for a new Association group
	Items           []ContextItem
}

/*
C706 12.6.3.1

	typedef struct {
	  p_cont_def_result_t result;
	  p_provider_reason_t reason; // only relevant if result != acceptance
	  p_syntax_id_t transfer_syntax; // tr syntax selected 0 if result not accepted
	} p_result_t;
*/
type ContextResItem struct {
	Result         uint16
	Reason         uint16
	TransferSyntax SyntaxId
}

// C706 Section 12.6.4.4 (bind_ack), also used for alter_context_resp
type BindRes struct {
	Header          // 16 Bytes
	MaxSendFragSize uint16
	MaxRecvFragSize uint16
	Association     uint32
	SecAddr         []byte
	Results         []ContextResItem
}

// C706 Section 12.6.4.9
type RequestReq struct { // 24 + optional fields + len of Buffer
	Header // 16 bytes
	// AllocHint is an optional field useful for hinting required space when
	// sending fragmented requests
	AllocHint uint32
	ContextId uint16 // Data representation
	Opnum     uint16
	// Only present if PfcObjectUUID is set in the header flags
	Object *uuid.UUID
	Buffer []byte
}

// C706 Section 12.6.4.10
type RequestRes struct {
	Header // 16 bytes
	// This optional field AllocHint is used to hint about how much
	// contiguous space to allocate for fragmented requests.
	AllocHint   uint32
	ContextId   uint16
	CancelCount byte
	Reserved    byte
	Buffer      []byte
}

// C706 Section 12.6.4.7
type FaultRes struct {
	Header
	AllocHint   uint32
	ContextId   uint16
	CancelCount byte
	Status      uint32
}

// uuidFromWire converts an NDR encoded uuid_t, whose first three fields
// follow the data representation, to its canonical form.
func uuidFromWire(b []byte, bo binary.ByteOrder) (u uuid.UUID) {
	binary.BigEndian.PutUint32(u[0:], bo.Uint32(b[0:]))
	binary.BigEndian.PutUint16(u[4:], bo.Uint16(b[4:]))
	binary.BigEndian.PutUint16(u[6:], bo.Uint16(b[6:]))
	copy(u[8:], b[8:16])
	return
}

func (self *Header) ByteOrder() binary.ByteOrder {
	return self.Representation.ByteOrder()
}

func (self *Header) IsFirstFrag() bool {
	return self.Flags&PfcFirstFrag != 0
}

func (self *Header) IsLastFrag() bool {
	return self.Flags&PfcLastFrag != 0
}

func (self *Header) UnmarshalBinary(buf []byte) (err error) {
	if len(buf) < HeaderLen {
		return ErrShortHeader
	}
	self.MajorVersion = buf[0]
	self.MinorVersion = buf[1]
	self.Type = buf[2]
	self.Flags = buf[3]
	copy(self.Representation[:], buf[4:8])
	if self.MajorVersion != 5 {
		return errors.Wrapf(ErrUnsupportedVersion, "version %d.%d", self.MajorVersion, self.MinorVersion)
	}

	r := bytes.NewReader(buf[8:HeaderLen])
	bo := self.ByteOrder()
	err = binary.Read(r, bo, &self.FragLength)
	if err != nil {
		log.Errorln(err)
		return
	}
	err = binary.Read(r, bo, &self.AuthLength)
	if err != nil {
		log.Errorln(err)
		return
	}
	err = binary.Read(r, bo, &self.CallId)
	if err != nil {
		log.Errorln(err)
		return
	}
	if int(self.FragLength) < HeaderLen {
		return errors.Wrapf(ErrFragmentTooShort, "frag length %d", self.FragLength)
	}
	return
}

// body returns the bytes between the end of a fixed header of hdrLen bytes
// and the start of the authentication trailer, if any.
func (self *Header) body(buf []byte, hdrLen int) ([]byte, error) {
	end := int(self.FragLength)
	if end > len(buf) {
		return nil, errors.Wrapf(ErrFragmentTooShort, "frag length %d, have %d bytes", end, len(buf))
	}
	if self.AuthLength != 0 {
		trailer := end - int(self.AuthLength) - SecTrailerLen
		if trailer < hdrLen {
			return nil, Malformedf("auth length %d does not fit in fragment of %d bytes", self.AuthLength, end)
		}
		// sec_trailer: auth_type, auth_level, auth_pad_length, reserved, context id
		padLen := int(buf[trailer+2])
		end = trailer - padLen
	}
	if end < hdrLen {
		return nil, Malformedf("fragment of %d bytes shorter than its %d byte header", end, hdrLen)
	}
	return buf[hdrLen:end], nil
}

func readSyntaxId(r *bytes.Reader, bo binary.ByteOrder) (res SyntaxId, err error) {
	b := make([]byte, 16)
	_, err = io.ReadFull(r, b)
	if err != nil {
		return
	}
	res.UUID = uuidFromWire(b, bo)
	err = binary.Read(r, bo, &res.Version)
	return
}

func readContextItem(r *bytes.Reader, bo binary.ByteOrder) (res *ContextItem, err error) {
	res = &ContextItem{}
	err = binary.Read(r, bo, &res.Id)
	if err != nil {
		log.Errorln(err)
		return
	}
	res.Count, err = r.ReadByte()
	if err != nil {
		log.Errorln(err)
		return
	}
	res.Reserved, err = r.ReadByte()
	if err != nil {
		log.Errorln(err)
		return
	}
	res.AbstractSyntax, err = readSyntaxId(r, bo)
	if err != nil {
		log.Errorln(err)
		return
	}
	for i := 0; i < int(res.Count); i++ {
		var syntaxId SyntaxId
		syntaxId, err = readSyntaxId(r, bo)
		if err != nil {
			log.Errorln(err)
			return
		}
		res.TransferSyntax = append(res.TransferSyntax, syntaxId)
	}
	return
}

func (self *BindReq) UnmarshalBinary(buf []byte) (err error) {
	err = self.Header.UnmarshalBinary(buf)
	if err != nil {
		return
	}
	body, err := self.Header.body(buf, HeaderLen)
	if err != nil {
		return
	}
	bo := self.ByteOrder()
	r := bytes.NewReader(body)
	err = binary.Read(r, bo, &self.MaxSendFragSize)
	if err != nil {
		log.Errorln(err)
		return
	}
	err = binary.Read(r, bo, &self.MaxRecvFragSize)
	if err != nil {
		log.Errorln(err)
		return
	}
	err = binary.Read(r, bo, &self.Association)
	if err != nil {
		log.Errorln(err)
		return
	}
	count, err := r.ReadByte()
	if err != nil {
		log.Errorln(err)
		return
	}
	_, err = r.Seek(3, io.SeekCurrent) // Skip alignment bytes
	if err != nil {
		log.Errorln(err)
		return
	}
	for i := 0; i < int(count); i++ {
		var item *ContextItem
		item, err = readContextItem(r, bo)
		if err != nil {
			return Malformedf("bind context item %d: %v", i, err)
		}
		self.Items = append(self.Items, *item)
	}
	return nil
}

func readContextResItem(r *bytes.Reader, bo binary.ByteOrder) (res ContextResItem, err error) {
	err = binary.Read(r, bo, &res.Result)
	if err != nil {
		return
	}
	err = binary.Read(r, bo, &res.Reason)
	if err != nil {
		return
	}
	res.TransferSyntax, err = readSyntaxId(r, bo)
	return
}

func (self *BindRes) UnmarshalBinary(buf []byte) (err error) {
	err = self.Header.UnmarshalBinary(buf)
	if err != nil {
		return
	}
	body, err := self.Header.body(buf, HeaderLen)
	if err != nil {
		return
	}
	bo := self.ByteOrder()
	r := bytes.NewReader(body)
	err = binary.Read(r, bo, &self.MaxSendFragSize)
	if err != nil {
		log.Errorln(err)
		return
	}
	err = binary.Read(r, bo, &self.MaxRecvFragSize)
	if err != nil {
		log.Errorln(err)
		return
	}
	err = binary.Read(r, bo, &self.Association)
	if err != nil {
		log.Errorln(err)
		return
	}
	var secAddrLen uint16
	err = binary.Read(r, bo, &secAddrLen)
	if err != nil {
		log.Errorln(err)
		return
	}
	self.SecAddr = make([]byte, secAddrLen)
	_, err = io.ReadFull(r, self.SecAddr)
	if err != nil {
		log.Errorln(err)
		return
	}
	// The result list is aligned to 4 bytes from the start of the PDU
	pos := HeaderLen + 10 + int(secAddrLen)
	_, err = r.Seek(int64(Align(pos, 4)-pos), io.SeekCurrent)
	if err != nil {
		log.Errorln(err)
		return
	}
	count, err := r.ReadByte()
	if err != nil {
		log.Errorln(err)
		return
	}
	_, err = r.Seek(3, io.SeekCurrent)
	if err != nil {
		log.Errorln(err)
		return
	}
	for i := 0; i < int(count); i++ {
		var item ContextResItem
		item, err = readContextResItem(r, bo)
		if err != nil {
			return Malformedf("bind_ack result %d: %v", i, err)
		}
		self.Results = append(self.Results, item)
	}
	return
}

func (self *RequestReq) UnmarshalBinary(buf []byte) (err error) {
	err = self.Header.UnmarshalBinary(buf)
	if err != nil {
		return
	}
	hdrLen := RequestHdrLen
	if self.Flags&PfcObjectUUID != 0 {
		hdrLen += 16
	}
	if len(buf) < hdrLen {
		return errors.Wrap(ErrFragmentTooShort, "request header")
	}
	bo := self.ByteOrder()
	self.AllocHint = bo.Uint32(buf[16:])
	self.ContextId = bo.Uint16(buf[20:])
	self.Opnum = bo.Uint16(buf[22:])
	if self.Flags&PfcObjectUUID != 0 {
		u := uuidFromWire(buf[24:40], bo)
		self.Object = &u
	}
	self.Buffer, err = self.Header.body(buf, hdrLen)
	return
}

func (self *RequestRes) UnmarshalBinary(buf []byte) (err error) {
	err = self.Header.UnmarshalBinary(buf)
	if err != nil {
		return
	}
	if len(buf) < RequestHdrLen {
		return errors.Wrap(ErrFragmentTooShort, "response header")
	}
	bo := self.ByteOrder()
	self.AllocHint = bo.Uint32(buf[16:])
	self.ContextId = bo.Uint16(buf[20:])
	self.CancelCount = buf[22]
	self.Reserved = buf[23]
	self.Buffer, err = self.Header.body(buf, RequestHdrLen)
	return
}

func (self *FaultRes) UnmarshalBinary(buf []byte) (err error) {
	err = self.Header.UnmarshalBinary(buf)
	if err != nil {
		return
	}
	if len(buf) < RequestHdrLen+4 {
		return errors.Wrap(ErrFragmentTooShort, "fault header")
	}
	bo := self.ByteOrder()
	self.AllocHint = bo.Uint32(buf[16:])
	self.ContextId = bo.Uint16(buf[20:])
	self.CancelCount = buf[22]
	self.Status = bo.Uint32(buf[24:])
	return
}
