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
	"strings"

	"github.com/jfjallid/go-spoolss/msdtyp"
)

var (
	FieldAccessMask  = &Field{Name: "Access required", Abbrev: "dcerpc.access_mask", Type: FieldUint32, Base: BaseHex}
	FieldSecDesc     = &Field{Name: "Security descriptor", Abbrev: "dcerpc.secdesc", Type: FieldBytes}
	FieldSecDescRev  = &Field{Name: "Revision", Abbrev: "dcerpc.secdesc.revision", Type: FieldUint8}
	FieldSecDescCtrl = &Field{Name: "Control", Abbrev: "dcerpc.secdesc.control", Type: FieldUint16, Base: BaseHex}
	FieldSID         = &Field{Name: "SID", Abbrev: "dcerpc.sid", Type: FieldString}
	FieldAceType     = &Field{Name: "Type", Abbrev: "dcerpc.ace.type", Type: FieldUint8}
	FieldAceFlags    = &Field{Name: "Flags", Abbrev: "dcerpc.ace.flags", Type: FieldUint8, Base: BaseHex}
	FieldAceMask     = &Field{Name: "Access mask", Abbrev: "dcerpc.ace.mask", Type: FieldUint32, Base: BaseHex}
)

func init() {
	FieldAceType.Values = make(map[int64]string, len(msdtyp.AceTypeMap))
	for k, v := range msdtyp.AceTypeMap {
		FieldAceType.Values[int64(k)] = v
	}
}

// AccessMask decodes an ACCESS_MASK. specific names the rights defined by
// the interface for the low 16 bits.
func (self *Decoder) AccessMask(buf *Buffer, off int, tree *Item, f *Field, specific []msdtyp.AccessRight) (int, uint32, error) {
	if self.Conformance() {
		return off, 0, nil
	}
	start, v, err := self.ReadUint32(buf, off)
	if err != nil {
		return off, 0, err
	}
	if f == nil {
		f = FieldAccessMask
	}
	item := tree.AddField(f, buf, start, 4, v)
	for _, name := range msdtyp.ParseAccessMask(v, specific) {
		item.AddText(buf, start, 4, "%s", name)
	}
	return start + 4, v, nil
}

func sidText(s *msdtyp.SID) string {
	str := s.String()
	if name, ok := msdtyp.WellKnownSids[str]; ok {
		return str + " (" + name + ")"
	}
	return str
}

// SecurityDescriptor decodes length bytes at off as a self-relative
// security descriptor.
func (self *Decoder) SecurityDescriptor(buf *Buffer, off, length int, tree *Item, specific []msdtyp.AccessRight) (int, error) {
	if self.Conformance() {
		return off, nil
	}
	b, err := buf.Bytes(off, length)
	if err != nil {
		return off, err
	}
	sd, err := msdtyp.ReadSecurityDescriptor(b, self.order)
	if err != nil {
		return off, err
	}

	item := tree.AddText(buf, off, length, "%s", FieldSecDesc.Name)
	item.AddField(FieldSecDescRev, buf, off, 1, sd.Revision)
	ctrl := item.AddField(FieldSecDescCtrl, buf, off+2, 2, sd.Control)
	var flags []string
	for _, f := range msdtyp.ControlFlagNames {
		if sd.Control&f.Flag != 0 {
			flags = append(flags, f.Name)
		}
	}
	if len(flags) > 0 {
		ctrl.AppendText(" (%s)", strings.Join(flags, ", "))
	}
	if sd.OwnerSid != nil {
		item.AddString(FieldSID, buf, off+int(sd.OffsetOwner), 8+4*int(sd.OwnerSid.NumAuth), sidText(sd.OwnerSid)).
			SetText("Owner: %s", sidText(sd.OwnerSid))
	}
	if sd.GroupSid != nil {
		item.AddString(FieldSID, buf, off+int(sd.OffsetGroup), 8+4*int(sd.GroupSid.NumAuth), sidText(sd.GroupSid)).
			SetText("Group: %s", sidText(sd.GroupSid))
	}
	if sd.Sacl != nil {
		self.acl(buf, off+int(sd.OffsetSacl), item, "SACL", sd.Sacl, specific)
	}
	if sd.Dacl != nil {
		self.acl(buf, off+int(sd.OffsetDacl), item, "DACL", sd.Dacl, specific)
	}
	return off + length, nil
}

func (self *Decoder) acl(buf *Buffer, off int, tree *Item, name string, acl *msdtyp.ACL, specific []msdtyp.AccessRight) {
	item := tree.AddText(buf, off, int(acl.AclSize), "%s: revision %d, %d ACEs", name, acl.AclRevision, acl.AceCount)
	pos := off + 8
	for _, ace := range acl.ACEs {
		perms := ace.Permissions(specific)
		a := item.AddText(buf, pos, int(ace.Header.Size), "ACE: %s %s", perms.AceType, perms.Sid)
		a.AddField(FieldAceType, buf, pos, 1, ace.Header.Type)
		flags := a.AddField(FieldAceFlags, buf, pos+1, 1, ace.Header.Flags)
		if perms.AceFlagStrings != "" {
			flags.AppendText(" (%s)", perms.AceFlagStrings)
		}
		mask := a.AddField(FieldAceMask, buf, pos+4, 4, ace.Mask)
		if len(perms.Permissions) > 0 {
			mask.AppendText(" (%s)", strings.Join(perms.Permissions, "|"))
		}
		if ace.Sid != nil {
			a.AddString(FieldSID, buf, pos+int(ace.Header.Size)-8-4*int(ace.Sid.NumAuth), 8+4*int(ace.Sid.NumAuth), sidText(ace.Sid))
		}
		pos += int(ace.Header.Size)
	}
}
