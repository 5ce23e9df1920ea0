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
	"encoding/hex"
	"fmt"
)

type FieldType byte

const (
	FieldNone FieldType = iota
	FieldUint8
	FieldUint16
	FieldUint32
	FieldInt16
	FieldString
	FieldBytes
	FieldBoolean
	FieldHandle
	FieldTime
)

const maxBytesShown = 32

type Base byte

const (
	BaseDec Base = iota
	BaseHex
)

// Field describes a named, filterable protocol field. Fields are declared
// once per package and never modified afterwards.
type Field struct {
	Name   string
	Abbrev string
	Type   FieldType
	Base   Base
	// Values maps integer values to names. Keys are the sign extended value
	// so the same table works for signed and unsigned fields.
	Values map[int64]string
	// Mask selects the bit tested by a FieldBoolean.
	Mask  uint32
	True  string
	False string
}

// ValueName returns the name registered for v and whether there was one.
func (self *Field) ValueName(v int64) (string, bool) {
	if self == nil || self.Values == nil {
		return "", false
	}
	s, ok := self.Values[v]
	return s, ok
}

// Format renders v the way it is shown in a decoded tree.
func (self *Field) Format(v any) string {
	if self == nil {
		return fmt.Sprint(v)
	}
	switch self.Type {
	case FieldBoolean:
		set := toInt64(v)&int64(self.Mask) != 0
		if set {
			if self.True != "" {
				return fmt.Sprintf("%s: %s", self.Name, self.True)
			}
			return fmt.Sprintf("%s: Set", self.Name)
		}
		if self.False != "" {
			return fmt.Sprintf("%s: %s", self.Name, self.False)
		}
		return fmt.Sprintf("%s: Not set", self.Name)
	case FieldUint8, FieldUint16, FieldUint32, FieldInt16:
		n := toInt64(v)
		if self.Values != nil {
			if s, ok := self.Values[n]; ok {
				return fmt.Sprintf("%s: %s (%d)", self.Name, s, n)
			}
			return fmt.Sprintf("%s: Unknown (%d)", self.Name, n)
		}
		if self.Base == BaseHex {
			switch self.Type {
			case FieldUint8:
				return fmt.Sprintf("%s: 0x%02x", self.Name, n)
			case FieldUint16:
				return fmt.Sprintf("%s: 0x%04x", self.Name, n)
			default:
				return fmt.Sprintf("%s: 0x%08x", self.Name, uint32(n))
			}
		}
		return fmt.Sprintf("%s: %d", self.Name, n)
	case FieldBytes, FieldHandle:
		if b, ok := v.([]byte); ok {
			if len(b) > maxBytesShown {
				return fmt.Sprintf("%s: %s...", self.Name, hex.EncodeToString(b[:maxBytesShown]))
			}
			return fmt.Sprintf("%s: %s", self.Name, hex.EncodeToString(b))
		}
	}
	return fmt.Sprintf("%s: %v", self.Name, v)
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case uint64:
		return int64(n)
	}
	return 0
}
