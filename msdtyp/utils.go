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
	"strings"
)

var WellKnownSids = map[string]string{
	"S-1-1-0":      "Everyone",
	"S-1-3-0":      "Creator Owner",
	"S-1-5-18":     "Local System",
	"S-1-5-32-544": "BUILTIN\\Administrators",
	"S-1-5-32-545": "BUILTIN\\Users",
	"S-1-5-32-550": "BUILTIN\\Print Operators",
	"S-1-5-32-549": "BUILTIN\\Server Operators",
	"S-1-5-32-551": "BUILTIN\\Backup Operators",
}

// ParseAccessMask returns the names of the rights set in mask. specific
// names the object specific rights in the low 16 bits.
func ParseAccessMask(mask uint32, specific []AccessRight) (perms []string) {
	for _, r := range StandardRights {
		if mask&r.Mask == r.Mask {
			perms = append(perms, r.Name)
		}
	}
	for _, r := range specific {
		if mask&r.Mask == r.Mask {
			perms = append(perms, r.Name)
		}
	}
	return
}

func ParseAceFlags(flags byte) string {
	var names []string
	for _, f := range aceFlagsMap {
		if flags&f.Flag == f.Flag {
			names = append(names, f.Name)
		}
	}
	return strings.Join(names, "|")
}
