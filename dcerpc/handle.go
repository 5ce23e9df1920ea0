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
	"encoding/hex"
	"sync"

	"github.com/google/uuid"
)

// PolicyHandle is the 20 byte context handle from MS-RPCE 2.2.4.2: a 32-bit
// attribute word followed by a UUID.
type PolicyHandle [20]byte

func (self PolicyHandle) Attributes(order binary.ByteOrder) uint32 {
	return order.Uint32(self[:4])
}

func (self PolicyHandle) UUID() uuid.UUID {
	var u uuid.UUID
	copy(u[:], self[4:])
	return u
}

func (self PolicyHandle) IsZero() bool {
	return self == PolicyHandle{}
}

func (self PolicyHandle) String() string {
	return hex.EncodeToString(self[:])
}

// HandleNamer associates display names with policy handles across calls.
type HandleNamer interface {
	Name(h PolicyHandle) (string, bool)
	StoreName(h PolicyHandle, name string)
	Close(h PolicyHandle)
}

type handleEntry struct {
	name   string
	closed bool
}

// HandleTable is the HandleNamer used for a whole capture.
type HandleTable struct {
	mu      sync.RWMutex
	handles map[PolicyHandle]*handleEntry
}

func NewHandleTable() *HandleTable {
	return &HandleTable{handles: make(map[PolicyHandle]*handleEntry)}
}

func (self *HandleTable) Name(h PolicyHandle) (string, bool) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	e, ok := self.handles[h]
	if !ok || e.name == "" {
		return "", false
	}
	return e.name, true
}

func (self *HandleTable) StoreName(h PolicyHandle, name string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.handles[h] = &handleEntry{name: name}
}

// Close marks the handle as closed. The name is kept so that the response
// to the close call can still be labeled.
func (self *HandleTable) Close(h PolicyHandle) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if e, ok := self.handles[h]; ok {
		e.closed = true
	}
}

// Open returns the number of named handles that have not been closed.
func (self *HandleTable) Open() (n int) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	for _, e := range self.handles {
		if !e.closed {
			n++
		}
	}
	return
}

func (self *HandleTable) Len() int {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return len(self.handles)
}

type noHandles struct{}

func (noHandles) Name(PolicyHandle) (string, bool) { return "", false }
func (noHandles) StoreName(PolicyHandle, string)   {}
func (noHandles) Close(PolicyHandle)               {}
