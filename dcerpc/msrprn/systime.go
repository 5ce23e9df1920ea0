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

// SystemTime is the MS-DTYP SYSTEMTIME structure.
type SystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

func (self SystemTime) String() string {
	return fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d.%03d",
		self.Year, self.Month, self.Day, self.Hour, self.Minute, self.Second, self.Milliseconds)
}

// decodeSystemTime decodes a SYSTEMTIME. With a non empty name the fields
// are grouped below an item of that name that also shows the time.
func decodeSystemTime(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item, name string) (int, SystemTime, error) {
	var t SystemTime
	if d.Conformance() {
		return off, t, nil
	}
	subtree := tree
	var item *dcerpc.Item
	if name != "" {
		item = tree.AddText(buf, dcerpc.Align(off, 2), 16, "%s", name)
		subtree = item
	}
	parts := []struct {
		f *dcerpc.Field
		v *uint16
	}{
		{fieldTimeYear, &t.Year},
		{fieldTimeMonth, &t.Month},
		{fieldTimeDow, &t.DayOfWeek},
		{fieldTimeDay, &t.Day},
		{fieldTimeHour, &t.Hour},
		{fieldTimeMinute, &t.Minute},
		{fieldTimeSecond, &t.Second},
		{fieldTimeMsec, &t.Milliseconds},
	}
	var err error
	pos := off
	for _, p := range parts {
		if pos, *p.v, err = d.Uint16(buf, pos, subtree, p.f); err != nil {
			return off, t, err
		}
	}
	item.AppendText(": %s", t)
	return pos, t, nil
}
