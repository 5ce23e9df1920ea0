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

package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jfjallid/go-spoolss/dcerpc"
	"github.com/jfjallid/go-spoolss/dcerpc/msrprn"
)

const (
	FormatHex = "hex"
	FormatRaw = "raw"
)

// Config holds the settings of a run. Flags given on the command line take
// precedence over the values read from the config file.
type Config struct {
	Format      string `yaml:"format"`
	ShowHidden  bool   `yaml:"show_hidden"`
	ShowOffsets bool   `yaml:"show_offsets"`
	Debug       bool   `yaml:"debug"`
	// Interface is assumed for presentation contexts whose bind is not part
	// of the input. Empty means such contexts are skipped.
	Interface  string `yaml:"interface"`
	MaxPDUSize int    `yaml:"max_pdu_size"`
}

func DefaultConfig() Config {
	return Config{
		Format:     FormatHex,
		MaxPDUSize: 4 << 20,
	}
}

// ReadConfig reads a YAML config file on top of the defaults. Unknown keys
// are an error.
func ReadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&cfg)
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		err = errors.Wrapf(err, "config %s", path)
	}
	return
}

func (self *Config) Validate() error {
	switch self.Format {
	case FormatHex, FormatRaw:
	default:
		return errors.Errorf("unknown input format %q", self.Format)
	}
	if self.MaxPDUSize < 0 {
		return errors.Errorf("invalid max_pdu_size %d", self.MaxPDUSize)
	}
	if _, err := self.syntax(); err != nil {
		return err
	}
	return nil
}

// syntax returns the interface assumed for unbound contexts, or nil.
func (self *Config) syntax() (*dcerpc.SyntaxId, error) {
	switch self.Interface {
	case "":
		return nil, nil
	case msrprn.MSRPCSpoolssPipe:
		s := msrprn.Syntax
		return &s, nil
	}
	u, err := uuid.Parse(self.Interface)
	if err != nil {
		return nil, errors.Wrapf(err, "interface %q", self.Interface)
	}
	// Only the uuid is given, so take the version spoolss binds with
	return &dcerpc.SyntaxId{UUID: u, Version: msrprn.Syntax.Version}, nil
}
