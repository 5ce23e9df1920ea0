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
	"fmt"
	"io"
	"strings"
)

// Item is one node of a decoded tree. All methods accept a nil receiver and
// then do nothing, which is how decoding without output is expressed.
type Item struct {
	Field    *Field
	Text     string
	Value    any
	Source   string
	Offset   int
	Length   int
	Hidden   bool
	Unset    bool // decoded but flagged as not meaningful
	Children []*Item
	parent   *Item
}

func NewTree(text string, buf *Buffer) *Item {
	item := &Item{Text: text}
	if buf != nil {
		item.Source = buf.Name()
		item.Length = buf.Len()
	}
	return item
}

func (self *Item) add(child *Item) *Item {
	child.parent = self
	self.Children = append(self.Children, child)
	return child
}

func sourceName(buf *Buffer) string {
	if buf == nil {
		return ""
	}
	return buf.Name()
}

// AddText adds a child that only carries display text.
func (self *Item) AddText(buf *Buffer, off, length int, format string, args ...any) *Item {
	if self == nil {
		return nil
	}
	return self.add(&Item{
		Text:   fmt.Sprintf(format, args...),
		Source: sourceName(buf),
		Offset: off,
		Length: length,
	})
}

// AddField adds a child for f holding value v.
func (self *Item) AddField(f *Field, buf *Buffer, off, length int, v any) *Item {
	if self == nil {
		return nil
	}
	return self.add(&Item{
		Field:  f,
		Text:   f.Format(v),
		Value:  v,
		Source: sourceName(buf),
		Offset: off,
		Length: length,
	})
}

// AddString adds a string valued child rendered as "<name>: <s>".
func (self *Item) AddString(f *Field, buf *Buffer, off, length int, s string) *Item {
	if self == nil {
		return nil
	}
	return self.add(&Item{
		Field:  f,
		Text:   fmt.Sprintf("%s: %s", f.Name, s),
		Value:  s,
		Source: sourceName(buf),
		Offset: off,
		Length: length,
	})
}

func (self *Item) AppendText(format string, args ...any) {
	if self == nil {
		return
	}
	self.Text += fmt.Sprintf(format, args...)
}

func (self *Item) SetText(format string, args ...any) {
	if self == nil {
		return
	}
	self.Text = fmt.Sprintf(format, args...)
}

func (self *Item) SetLength(n int) {
	if self == nil {
		return
	}
	self.Length = n
}

func (self *Item) SetHidden() {
	if self == nil {
		return
	}
	self.Hidden = true
}

func (self *Item) SetUnset(unset bool) {
	if self == nil {
		return
	}
	self.Unset = unset
}

func (self *Item) Parent() *Item {
	if self == nil {
		return nil
	}
	return self.parent
}

// Ancestor returns the item n levels up, where 0 is the item itself.
func (self *Item) Ancestor(n int) *Item {
	item := self
	for ; n > 0 && item != nil; n-- {
		item = item.parent
	}
	return item
}

// Walk visits the tree depth first. Returning false from fn stops the walk.
func (self *Item) Walk(fn func(item *Item, depth int) bool) {
	self.walk(fn, 0)
}

func (self *Item) walk(fn func(item *Item, depth int) bool, depth int) bool {
	if self == nil {
		return true
	}
	if !fn(self, depth) {
		return false
	}
	for _, c := range self.Children {
		if !c.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Find returns the first item, in depth first order, for the field with
// the given filter abbreviation.
func (self *Item) Find(abbrev string) (found *Item) {
	self.Walk(func(item *Item, _ int) bool {
		if item.Field != nil && item.Field.Abbrev == abbrev {
			found = item
			return false
		}
		return true
	})
	return
}

func (self *Item) FindAll(abbrev string) (items []*Item) {
	self.Walk(func(item *Item, _ int) bool {
		if item.Field != nil && item.Field.Abbrev == abbrev {
			items = append(items, item)
		}
		return true
	})
	return
}

// FindText returns the first item whose text starts with prefix.
func (self *Item) FindText(prefix string) (found *Item) {
	self.Walk(func(item *Item, _ int) bool {
		if strings.HasPrefix(item.Text, prefix) {
			found = item
			return false
		}
		return true
	})
	return
}

type RenderOptions struct {
	ShowHidden  bool
	ShowOffsets bool
	Indent      string
}

// Render writes an indented text rendering of the tree to w.
func (self *Item) Render(w io.Writer, opts RenderOptions) (err error) {
	if opts.Indent == "" {
		opts.Indent = "    "
	}
	self.Walk(func(item *Item, depth int) bool {
		if item.Hidden && !opts.ShowHidden {
			return true
		}
		line := strings.Repeat(opts.Indent, depth) + item.Text
		if item.Unset {
			line += " [not set in fields mask]"
		}
		if opts.ShowOffsets {
			line = fmt.Sprintf("%-8s %6d %5d  %s", item.Source, item.Offset, item.Length, line)
		}
		_, err = fmt.Fprintln(w, line)
		return err == nil
	})
	return
}
