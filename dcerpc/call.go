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

import "sync"

// CallData is the value a request decoder leaves behind for the decoder of
// the matching response. It is one of LevelData or NameData.
type CallData interface {
	callData()
}

// LevelData records the information level requested by the client.
type LevelData struct {
	Level uint32
}

// NameData records a display name that becomes a handle name once the
// response confirms success.
type NameData struct {
	Name string
}

func (LevelData) callData() {}
func (NameData) callData()  {}

// Call is the state shared between the request and response of one RPC.
type Call struct {
	ID        uint32
	ContextID uint16
	Opnum     uint16
	Data      CallData
}

func (self *Call) Level() (uint32, bool) {
	if self == nil {
		return 0, false
	}
	if l, ok := self.Data.(LevelData); ok {
		return l.Level, true
	}
	return 0, false
}

func (self *Call) SetLevel(level uint32) {
	if self == nil {
		return
	}
	self.Data = LevelData{Level: level}
}

func (self *Call) PendingName() (string, bool) {
	if self == nil {
		return "", false
	}
	if n, ok := self.Data.(NameData); ok {
		return n.Name, true
	}
	return "", false
}

func (self *Call) SetPendingName(name string) {
	if self == nil {
		return
	}
	self.Data = NameData{Name: name}
}

func (self *Call) Clear() {
	if self == nil {
		return
	}
	self.Data = nil
}

type callKey struct {
	contextID uint16
	callID    uint32
}

// CallTable matches responses to the requests they answer.
type CallTable struct {
	mu    sync.Mutex
	calls map[callKey]*Call
}

func NewCallTable() *CallTable {
	return &CallTable{calls: make(map[callKey]*Call)}
}

// Begin registers a new call, replacing any earlier call with the same id.
func (self *CallTable) Begin(contextID uint16, callID uint32, opnum uint16) *Call {
	self.mu.Lock()
	defer self.mu.Unlock()
	c := &Call{ID: callID, ContextID: contextID, Opnum: opnum}
	self.calls[callKey{contextID, callID}] = c
	return c
}

func (self *CallTable) Lookup(contextID uint16, callID uint32) (*Call, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	c, ok := self.calls[callKey{contextID, callID}]
	return c, ok
}

func (self *CallTable) End(contextID uint16, callID uint32) {
	self.mu.Lock()
	defer self.mu.Unlock()
	delete(self.calls, callKey{contextID, callID})
}

func (self *CallTable) Len() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return len(self.calls)
}
