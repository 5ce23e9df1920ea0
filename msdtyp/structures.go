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
	"encoding/binary"
	"fmt"

	"github.com/jfjallid/golog"
	"github.com/jfjallid/mstypes"
	"github.com/jfjallid/ndr"
)

var (
	le  = binary.LittleEndian
	log = golog.Get("github.com/jfjallid/go-spoolss/msdtyp")
)

// MS-DTYP Section 2.4.6 Security_Descriptor Control Flag
const (
	SecurityDescriptorFlagOD uint16 = 0x0001 // Owner Default
	SecurityDescriptorFlagGD uint16 = 0x0002 // Group Default
	SecurityDescriptorFlagDP uint16 = 0x0004 // DACL Present
	SecurityDescriptorFlagDD uint16 = 0x0008 // DACL Defaulted
	SecurityDescriptorFlagSP uint16 = 0x0010 // SACL Present
	SecurityDescriptorFlagSD uint16 = 0x0020 // SACL Defaulted
	SecurityDescriptorFlagDT uint16 = 0x0040 // DACL Trusted
	SecurityDescriptorFlagSS uint16 = 0x0080 // Server Security
	SecurityDescriptorFlagDC uint16 = 0x0100 // DACL Computed Inheritance Required
	SecurityDescriptorFlagSC uint16 = 0x0200 // SACL Computed Inheritance Required
	SecurityDescriptorFlagDI uint16 = 0x0400 // DACL Auto-Inherited
	SecurityDescriptorFlagSI uint16 = 0x0800 // SACL Auto-Inherited
	SecurityDescriptorFlagPD uint16 = 0x1000 // DACL Protected
	SecurityDescriptorFlagPS uint16 = 0x2000 // SACL Protected
	SecurityDescriptorFlagPM uint16 = 0x4000 // RM Control Valid
	SecurityDescriptorFlagSR uint16 = 0x8000 // Self-Relative
)

var ControlFlagNames = []struct {
	Flag uint16
	Name string
}{
	{SecurityDescriptorFlagOD, "Owner Defaulted"},
	{SecurityDescriptorFlagGD, "Group Defaulted"},
	{SecurityDescriptorFlagDP, "DACL Present"},
	{SecurityDescriptorFlagDD, "DACL Defaulted"},
	{SecurityDescriptorFlagSP, "SACL Present"},
	{SecurityDescriptorFlagSD, "SACL Defaulted"},
	{SecurityDescriptorFlagDT, "DACL Trusted"},
	{SecurityDescriptorFlagSS, "Server Security"},
	{SecurityDescriptorFlagDC, "DACL Computed Inheritance Required"},
	{SecurityDescriptorFlagSC, "SACL Computed Inheritance Required"},
	{SecurityDescriptorFlagDI, "DACL Auto-Inherited"},
	{SecurityDescriptorFlagSI, "SACL Auto-Inherited"},
	{SecurityDescriptorFlagPD, "DACL Protected"},
	{SecurityDescriptorFlagPS, "SACL Protected"},
	{SecurityDescriptorFlagPM, "RM Control Valid"},
	{SecurityDescriptorFlagSR, "Self-Relative"},
}

// MS-DTYP Section 2.4.4.1 ACE_HEADER
// AceType
const (
	AccessAllowedAceType               byte = 0x00
	AccessDeniedAceType                byte = 0x01
	SystemAuditAceType                 byte = 0x02
	SystemAlarmAceType                 byte = 0x03
	AccessAllowedCompoundAceType       byte = 0x04
	AccessAllowedObjectAceType         byte = 0x05
	AccessDeniedObjectAceType          byte = 0x06
	SystemAuditObjectAceType           byte = 0x07
	SystemAlarmObjectAceType           byte = 0x08
	AccessAllowedCallbackAceType       byte = 0x09
	AccessDeniedCallbackAceType        byte = 0x0a
	AccessAllowedCallbackObjectAceType byte = 0x0b
	AccessDeniedCallbackObjectAceType  byte = 0x0c
	SystemAuditCallbackAceType         byte = 0x0d
	SystemAlarmCallbackAceType         byte = 0x0e
	SystemAuditCallbackObjectAceType   byte = 0x0f
	SystemAlarmCallbackObjectAceType   byte = 0x10
	SystemMandatoryLabelAceType        byte = 0x11
	SystemResourceAttributeAceType     byte = 0x12
	SystemScopedPolicyIdAceType        byte = 0x13
)

var AceTypeMap = map[byte]string{
	AccessAllowedAceType:               "AccessAllowed",
	AccessDeniedAceType:                "AccessDenied",
	SystemAuditAceType:                 "SystemAudit",
	SystemAlarmAceType:                 "SystemAlarm",
	AccessAllowedCompoundAceType:       "AccessAllowedCompound",
	AccessAllowedObjectAceType:         "AccessAllowedObject",
	AccessDeniedObjectAceType:          "AccessDeniedObject",
	SystemAuditObjectAceType:           "SystemAuditObject",
	SystemAlarmObjectAceType:           "SystemAlarmObject",
	AccessAllowedCallbackAceType:       "AccessAllowedCallback",
	AccessDeniedCallbackAceType:        "AccessDeniedCallback",
	AccessAllowedCallbackObjectAceType: "AccessAllowedCallbackObject",
	AccessDeniedCallbackObjectAceType:  "AccessDeniedCallbackObject",
	SystemAuditCallbackAceType:         "SystemAuditCallback",
	SystemAlarmCallbackAceType:         "SystemAlarmCallback",
	SystemAuditCallbackObjectAceType:   "SystemAuditCallbackObject",
	SystemAlarmCallbackObjectAceType:   "SystemAlarmCallbackObject",
	SystemMandatoryLabelAceType:        "SystemMandatoryLabel",
	SystemResourceAttributeAceType:     "SystemResourceAttribute",
	SystemScopedPolicyIdAceType:        "SystemScopedPolicyId",
}

// AceFlags
const (
	ObjectInheritAce        byte = 0x01 // Noncontainer child objects inherit the ACE as an effective ACE
	ContainerInheritAce     byte = 0x02 // Child containers inherit the ACE as an effective ACE
	NoPropagateInheritAce   byte = 0x04 // Ace is only inherited to direct child objects
	InheritOnlyAce          byte = 0x08 // Ace does not control access to the object to which it is attached
	InheritedAce            byte = 0x10 // The ACE was inherited
	SuccessfulAccessAceFlag byte = 0x40 // Generate audit messages for successful access attempts in SACL
	FailedAccessAceFlag     byte = 0x80 // Generate audit messages for failed access attempts in SACL
)

var aceFlagsMap = []struct {
	Flag byte
	Name string
}{
	{ObjectInheritAce, "ObjectInheritAce"},
	{ContainerInheritAce, "ContainerInheritAce"},
	{NoPropagateInheritAce, "NoPropagateInheritAce"},
	{InheritOnlyAce, "InheritOnlyAce"},
	{InheritedAce, "InheritedAce"},
	{SuccessfulAccessAceFlag, "SuccessfulAccessAce"},
	{FailedAccessAceFlag, "FailedAccessAce"},
}

const (
	AccessMaskGenericRead          = "GENERIC_READ"
	AccessMaskGenericWrite         = "GENERIC_WRITE"
	AccessMaskGenericExecute       = "GENERIC_EXECUTE"
	AccessMaskGenericAll           = "GENERIC_ALL"
	AccessMaskMaximumAllowed       = "MAXIMUM_ALLOWED"
	AccessMaskAccessSystemSecurity = "ACCESS_SYSTEM_SECURITY"
	AccessMaskSynchronize          = "SYNCHRONIZE"
	AccessMaskWriteOwner           = "WRITE_OWNER"
	AccessMaskWriteDACL            = "WRITE_DACL"
	AccessMaskReadControl          = "READ_CONTROL"
	AccessMaskDelete               = "DELETE"
)

// AccessRight names one bit of an ACCESS_MASK.
type AccessRight struct {
	Mask uint32
	Name string
}

// MS-DTYP Section 2.4.3 generic and standard rights, most significant first
var StandardRights = []AccessRight{
	{0x80000000, AccessMaskGenericRead},
	{0x40000000, AccessMaskGenericWrite},
	{0x20000000, AccessMaskGenericExecute},
	{0x10000000, AccessMaskGenericAll},
	{0x02000000, AccessMaskMaximumAllowed},
	{0x01000000, AccessMaskAccessSystemSecurity},
	{0x00100000, AccessMaskSynchronize},
	{0x00080000, AccessMaskWriteOwner},
	{0x00040000, AccessMaskWriteDACL},
	{0x00020000, AccessMaskReadControl},
	{0x00010000, AccessMaskDelete},
}

// MS-DTYP Section 2.4.5 ACL
type ACL struct {
	AclRevision byte
	Sbz1        byte
	AclSize     uint16
	AceCount    uint16
	Sbz2        uint16
	ACEs        []ACE
}

// MS-DTYP Section 2.4.4.1 ACE_HEADER
type ACEHeader struct {
	Type  byte
	Flags byte
	Size  uint16 // Includes the header
}

// MS-DTYP Section 2.4.4.2 ACCESS_ALLOWED_ACE and relatives. Object ACEs
// carry the optional object type GUIDs in front of the SID.
type ACE struct {
	Header              ACEHeader
	Mask                uint32
	ObjectFlags         uint32
	ObjectType          []byte
	InheritedObjectType []byte
	Sid                 *SID
}

// MS-DTYP Section 2.4.2 SID
type SID struct {
	Revision       byte
	NumAuth        byte
	Authority      [6]byte
	SubAuthorities []uint32
}

// MS-DTYP Section 2.4.6 SECURITY_DESCRIPTOR in self-relative form
type SecurityDescriptor struct {
	Revision    byte
	Sbz1        byte
	Control     uint16
	OffsetOwner uint32
	OffsetGroup uint32
	OffsetSacl  uint32
	OffsetDacl  uint32
	OwnerSid    *SID
	GroupSid    *SID
	Sacl        *ACL
	Dacl        *ACL
}

type AcePermissions struct {
	AceType        string
	AceFlags       byte
	AceFlagStrings string
	Permissions    []string
	Sid            string
}

type PaclPermissions struct {
	NumAce  uint32
	Entries []AcePermissions
}

func malformed(format string, args ...any) error {
	return ndr.Malformed{EText: fmt.Sprintf(format, args...)}
}

func need(buf []byte, off, n int, what string) error {
	if off < 0 || n < 0 || off > len(buf) || n > len(buf)-off {
		return malformed("%s: %d bytes at offset %d exceed security descriptor of %d bytes", what, n, off, len(buf))
	}
	return nil
}

// ReadSecurityDescriptor decodes a self-relative security descriptor. All
// offsets are checked against buf.
func ReadSecurityDescriptor(buf []byte, bo binary.ByteOrder) (sd *SecurityDescriptor, err error) {
	if err = need(buf, 0, 20, "header"); err != nil {
		return
	}
	sd = &SecurityDescriptor{
		Revision:    buf[0],
		Sbz1:        buf[1],
		Control:     bo.Uint16(buf[2:]),
		OffsetOwner: bo.Uint32(buf[4:]),
		OffsetGroup: bo.Uint32(buf[8:]),
		OffsetSacl:  bo.Uint32(buf[12:]),
		OffsetDacl:  bo.Uint32(buf[16:]),
	}

	if sd.OffsetOwner != 0 {
		sd.OwnerSid, _, err = ReadSID(buf, int(sd.OffsetOwner), bo)
		if err != nil {
			log.Debugln(err)
			return
		}
	}
	if sd.OffsetGroup != 0 {
		sd.GroupSid, _, err = ReadSID(buf, int(sd.OffsetGroup), bo)
		if err != nil {
			log.Debugln(err)
			return
		}
	}
	if sd.Control&SecurityDescriptorFlagSP != 0 && sd.OffsetSacl != 0 {
		sd.Sacl, err = ReadACL(buf, int(sd.OffsetSacl), bo)
		if err != nil {
			log.Debugln(err)
			return
		}
	}
	if sd.Control&SecurityDescriptorFlagDP != 0 && sd.OffsetDacl != 0 {
		sd.Dacl, err = ReadACL(buf, int(sd.OffsetDacl), bo)
		if err != nil {
			log.Debugln(err)
			return
		}
	}
	return sd, nil
}

// ReadSID decodes a SID at off and returns it with the offset following it.
func ReadSID(buf []byte, off int, bo binary.ByteOrder) (s *SID, n int, err error) {
	if err = need(buf, off, 8, "SID"); err != nil {
		return
	}
	s = &SID{Revision: buf[off], NumAuth: buf[off+1]}
	copy(s.Authority[:], buf[off+2:off+8])
	off += 8
	if err = need(buf, off, int(s.NumAuth)*4, "SID sub authorities"); err != nil {
		return nil, off, err
	}
	s.SubAuthorities = make([]uint32, s.NumAuth)
	for i := range s.SubAuthorities {
		s.SubAuthorities[i] = bo.Uint32(buf[off:])
		off += 4
	}
	return s, off, nil
}

// ReadACL decodes an ACL at off.
func ReadACL(buf []byte, off int, bo binary.ByteOrder) (acl *ACL, err error) {
	if err = need(buf, off, 8, "ACL"); err != nil {
		return
	}
	acl = &ACL{
		AclRevision: buf[off],
		Sbz1:        buf[off+1],
		AclSize:     bo.Uint16(buf[off+2:]),
		AceCount:    bo.Uint16(buf[off+4:]),
		Sbz2:        bo.Uint16(buf[off+6:]),
	}
	pos := off + 8
	for i := 0; i < int(acl.AceCount); i++ {
		var ace *ACE
		ace, err = readACE(buf, pos, bo)
		if err != nil {
			return nil, err
		}
		acl.ACEs = append(acl.ACEs, *ace)
		pos += int(ace.Header.Size)
	}
	return acl, nil
}

func isObjectAce(t byte) bool {
	switch t {
	case AccessAllowedObjectAceType, AccessDeniedObjectAceType, SystemAuditObjectAceType,
		SystemAlarmObjectAceType, AccessAllowedCallbackObjectAceType,
		AccessDeniedCallbackObjectAceType, SystemAuditCallbackObjectAceType,
		SystemAlarmCallbackObjectAceType:
		return true
	}
	return false
}

func readACE(buf []byte, off int, bo binary.ByteOrder) (a *ACE, err error) {
	if err = need(buf, off, 8, "ACE"); err != nil {
		return
	}
	a = &ACE{
		Header: ACEHeader{
			Type:  buf[off],
			Flags: buf[off+1],
			Size:  bo.Uint16(buf[off+2:]),
		},
		Mask: bo.Uint32(buf[off+4:]),
	}
	if a.Header.Size < 8 {
		return nil, malformed("ACE size %d smaller than its header", a.Header.Size)
	}
	if err = need(buf, off, int(a.Header.Size), "ACE body"); err != nil {
		return nil, err
	}
	body := buf[:off+int(a.Header.Size)]
	pos := off + 8
	if isObjectAce(a.Header.Type) {
		if err = need(body, pos, 4, "object ACE flags"); err != nil {
			return nil, err
		}
		a.ObjectFlags = bo.Uint32(body[pos:])
		pos += 4
		if a.ObjectFlags&0x1 != 0 {
			if err = need(body, pos, 16, "object type"); err != nil {
				return nil, err
			}
			a.ObjectType = body[pos : pos+16]
			pos += 16
		}
		if a.ObjectFlags&0x2 != 0 {
			if err = need(body, pos, 16, "inherited object type"); err != nil {
				return nil, err
			}
			a.InheritedObjectType = body[pos : pos+16]
			pos += 16
		}
	}
	if pos < len(body) {
		a.Sid, _, err = ReadSID(body, pos, bo)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a ACE) Permissions(specific []AccessRight) AcePermissions {
	sidStr := ""
	if a.Sid != nil {
		sidStr = a.Sid.String()
	}
	return AcePermissions{
		Sid:            sidStr,
		Permissions:    ParseAccessMask(a.Mask, specific),
		AceType:        AceTypeMap[a.Header.Type],
		AceFlags:       a.Header.Flags,
		AceFlagStrings: ParseAceFlags(a.Header.Flags),
	}
}

func (self *ACL) Permissions(specific []AccessRight) PaclPermissions {
	var acePerms []AcePermissions
	for _, item := range self.ACEs {
		acePerms = append(acePerms, item.Permissions(specific))
	}
	return PaclPermissions{
		NumAce:  uint32(self.AceCount),
		Entries: acePerms,
	}
}

// String renders the SID in its S-R-I-S-S... form.
func (self *SID) String() string {
	sid := &mstypes.RPCSID{
		Revision:            self.Revision,
		SubAuthorityCount:   self.NumAuth,
		IdentifierAuthority: self.Authority,
		SubAuthority:        self.SubAuthorities,
	}
	return sid.String()
}

func (self *SID) GetAuthority() uint32 {
	return binary.BigEndian.Uint32(self.Authority[2:])
}
