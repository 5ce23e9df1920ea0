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

	"github.com/google/uuid"
)

// Builders for little endian PDUs used as test input.

func appendHeader(b []byte, ptype, flags uint8, fragLen int, callId uint32) []byte {
	b = append(b, 5, 0, ptype, flags)
	b = append(b, LittleEndianASCII[:]...)
	b = le.AppendUint16(b, uint16(fragLen))
	b = le.AppendUint16(b, 0)
	return le.AppendUint32(b, callId)
}

func appendSyntax(b []byte, u uuid.UUID, version uint32) []byte {
	b = le.AppendUint32(b, binary.BigEndian.Uint32(u[0:]))
	b = le.AppendUint16(b, binary.BigEndian.Uint16(u[4:]))
	b = le.AppendUint16(b, binary.BigEndian.Uint16(u[6:]))
	b = append(b, u[8:]...)
	return le.AppendUint32(b, version)
}

func bindPDU(callId uint32, contextId uint16, iface uuid.UUID, major, minor uint16) []byte {
	var body []byte
	body = le.AppendUint16(body, 4280)
	body = le.AppendUint16(body, 4280)
	body = le.AppendUint32(body, 0)
	body = append(body, 1, 0, 0, 0)
	body = le.AppendUint16(body, contextId)
	body = append(body, 1, 0)
	body = appendSyntax(body, iface, uint32(minor)<<16|uint32(major))
	body = appendSyntax(body, NDRTransferSyntax, 2)
	return append(appendHeader(nil, PacketTypeBind, PfcFirstFrag|PfcLastFrag, HeaderLen+len(body), callId), body...)
}

// bindAckPDU answers a single context bind with the given result and
// transfer syntax.
func bindAckPDU(callId uint32, result uint16, transfer uuid.UUID) []byte {
	secAddr := []byte("\\PIPE\\spoolss\x00")
	var body []byte
	body = le.AppendUint16(body, 4280)
	body = le.AppendUint16(body, 4280)
	body = le.AppendUint32(body, 0x53f0)
	body = le.AppendUint16(body, uint16(len(secAddr)))
	body = append(body, secAddr...)
	for (HeaderLen+len(body))%4 != 0 {
		body = append(body, 0)
	}
	body = append(body, 1, 0, 0, 0)
	body = le.AppendUint16(body, result)
	body = le.AppendUint16(body, 0)
	body = appendSyntax(body, transfer, 2)
	return append(appendHeader(nil, PacketTypeBindAck, PfcFirstFrag|PfcLastFrag, HeaderLen+len(body), callId), body...)
}

func requestPDU(callId uint32, contextId, opnum uint16, flags uint8, stub []byte) []byte {
	b := appendHeader(nil, PacketTypeRequest, flags, RequestHdrLen+len(stub), callId)
	b = le.AppendUint32(b, uint32(len(stub)))
	b = le.AppendUint16(b, contextId)
	b = le.AppendUint16(b, opnum)
	return append(b, stub...)
}
