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

package msdtyp

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jfjallid/ndr"
)

// Owner BUILTIN\Administrators, one DACL entry granting Everyone GENERIC_ALL
const testSD = "01000480140000000000000000000000" + "24000000" +
	"01020000000000052000000020020000" +
	"02001c0001000000" +
	"0003140000000010010100000000000100000000"

func TestReadSecurityDescriptor(t *testing.T) {
	buf, err := hex.DecodeString(testSD)
	if err != nil {
		t.Fatal(err)
	}
	sd, err := ReadSecurityDescriptor(buf, binary.LittleEndian)
	if err != nil {
		t.Fatal(err)
	}
	if sd.Control != SecurityDescriptorFlagSR|SecurityDescriptorFlagDP {
		t.Errorf("control 0x%04x", sd.Control)
	}
	if sd.OwnerSid == nil || sd.OwnerSid.String() != "S-1-5-32-544" {
		t.Errorf("unexpected owner %v", sd.OwnerSid)
	}
	if sd.GroupSid != nil || sd.Sacl != nil {
		t.Error("Fail")
	}
	if sd.Dacl == nil || len(sd.Dacl.ACEs) != 1 {
		t.Fatal("missing DACL")
	}
	want := PaclPermissions{
		NumAce: 1,
		Entries: []AcePermissions{{
			AceType:        "AccessAllowed",
			AceFlags:       0x03,
			AceFlagStrings: "ObjectInheritAce|ContainerInheritAce",
			Permissions:    []string{AccessMaskGenericAll},
			Sid:            "S-1-1-0",
		}},
	}
	if diff := cmp.Diff(want, sd.Dacl.Permissions(nil)); diff != "" {
		t.Errorf("DACL mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSecurityDescriptorTruncated(t *testing.T) {
	buf, err := hex.DecodeString(testSD)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{10, 30, len(buf) - 4} {
		_, err = ReadSecurityDescriptor(buf[:n], binary.LittleEndian)
		var m ndr.Malformed
		if !errors.As(err, &m) {
			t.Errorf("%d bytes: expected malformed error, got %v", n, err)
		}
	}
}

func TestReadACEShortSize(t *testing.T) {
	buf, err := hex.DecodeString("02000c00010000000000040000000000")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = ReadACL(buf, 0, binary.LittleEndian); err == nil {
		t.Error("accepted an ACE smaller than its header")
	}
}

func TestReadSID(t *testing.T) {
	for _, str := range []string{"S-1-5-32-544", "S-1-1-0", "S-1-5-21-1004336348-1177238915-682003330-512"} {
		b := sidBytes(t, str)
		sid, n, err := ReadSID(b, 0, binary.LittleEndian)
		if err != nil {
			t.Fatal(err)
		}
		if n != len(b) || sid.String() != str {
			t.Errorf("read %s using %d of %d bytes, want %s", sid, n, len(b), str)
		}
	}

	want, _ := hex.DecodeString("01020000000000052000000020020000")
	if b := sidBytes(t, "S-1-5-32-544"); !bytes.Equal(b, want) {
		t.Errorf("got %x", b)
	}
	sid, _, err := ReadSID(want, 0, binary.LittleEndian)
	if err != nil {
		t.Fatal(err)
	}
	if sid.GetAuthority() != 5 || sid.NumAuth != 2 {
		t.Errorf("unexpected SID %+v", sid)
	}

	if _, _, err = ReadSID(want[:12], 0, binary.LittleEndian); err == nil {
		t.Error("accepted a SID missing a sub authority")
	}
}

func TestParseAccessMask(t *testing.T) {
	specific := []AccessRight{{0x0004, "PRINTER_ACCESS_ADMINISTER"}, {0x0008, "PRINTER_ACCESS_USE"}}
	got := ParseAccessMask(0x00020008, specific)
	if diff := cmp.Diff([]string{AccessMaskReadControl, "PRINTER_ACCESS_USE"}, got); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
	if ParseAccessMask(0, specific) != nil {
		t.Error("Fail")
	}
}
