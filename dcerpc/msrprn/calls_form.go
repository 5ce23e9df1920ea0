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
	"github.com/jfjallid/go-spoolss/dcerpc"
)

func formInfoDecoder(level uint32) (dcerpc.StubDecoder, bool) {
	if level == 1 {
		return decodeFormRel, true
	}
	return nil, false
}

func enumFormsRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldForm, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
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

func enumFormsResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldForm, buf, off)
	pos, b, err := decodeBuffer(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded); err != nil {
		return off, err
	}
	level, ok := d.Call().Level()
	levelInfo(d, level, ok)
	var count uint32
	if pos, count, err = d.Uint32(buf, pos, tree, fieldNumForms); err != nil {
		return off, err
	}
	if err = decodeLevelList(d, b, "form", level, ok, count, formInfoDecoder); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}

func addFormRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldForm, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var level uint32
	if pos, level, err = d.Uint32(buf, pos, tree, fieldFormLevel); err != nil {
		return off, err
	}
	d.Call().SetLevel(level)
	d.Infof(", level %d", level)
	return decodeFormCtr(d, buf, pos, tree)
}

func formStatus(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldForm, buf, off)
	return decodeStatus(d, buf, off, tree)
}

// formName decodes the handle and form name that start every per form call.
func formName(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldForm, buf, off)
	pos, err := decodeHandle(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var name string
	if pos, name, err = d.CVString(buf, pos, tree, fieldFormName); err != nil {
		return off, err
	}
	d.Infof(", %s", name)
	return pos, nil
}

func deleteFormRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	return formName(d, buf, off, tree)
}

func setFormRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := formName(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var level uint32
	if pos, level, err = d.Uint32(buf, pos, tree, fieldFormLevel); err != nil {
		return off, err
	}
	d.Infof(", level %d", level)
	return decodeFormCtr(d, buf, pos, tree)
}

func getFormRequest(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	pos, err := formName(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	var level uint32
	if pos, level, err = d.Uint32(buf, pos, tree, fieldFormLevel); err != nil {
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

func getFormResponse(d *dcerpc.Decoder, buf *dcerpc.Buffer, off int, tree *dcerpc.Item) (int, error) {
	hiddenMarker(tree, fieldForm, buf, off)
	pos, b, err := decodeBuffer(d, buf, off, tree)
	if err != nil {
		return off, err
	}
	if pos, _, err = d.Uint32(buf, pos, tree, fieldNeeded); err != nil {
		return off, err
	}
	level, ok := d.Call().Level()
	levelInfo(d, level, ok)
	if err = decodeLevel(d, b, "form", level, ok, formInfoDecoder); err != nil {
		return off, err
	}
	return decodeStatus(d, buf, pos, tree)
}
