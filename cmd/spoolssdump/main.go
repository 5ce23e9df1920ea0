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

// Command spoolssdump decodes the SPOOLSS calls in captured DCE/RPC
// connection oriented PDU streams.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jfjallid/golog"
	"github.com/mjwhitta/cli"
)

var log = golog.Get("")

var packages = []struct{ path, prefix string }{
	{"github.com/jfjallid/go-spoolss/dcerpc", "dcerpc"},
	{"github.com/jfjallid/go-spoolss/dcerpc/msrprn", "msrprn"},
	{"github.com/jfjallid/go-spoolss/msdtyp", "msdtyp"},
}

func setupLogging(debug bool) {
	level, logFlags := golog.LevelNotice, golog.LstdFlags
	if debug {
		level, logFlags = golog.LevelDebug, golog.LstdFlags|golog.Lshortfile
	}
	for _, p := range packages {
		golog.Set(p.path, p.prefix, level, logFlags, golog.DefaultOutput, golog.DefaultErrOutput)
	}
	log.SetFlags(logFlags)
	log.SetLogLevel(level)
}

type flags struct {
	config     string
	format     string
	hidden     bool
	offsets    bool
	debug      bool
	iface      string
	maxPDUSize int
}

// apply overrides cfg with the flags that were given.
func (self *flags) apply(cfg *Config) {
	if self.format != "" {
		cfg.Format = self.format
	}
	if self.iface != "" {
		cfg.Interface = self.iface
	}
	if self.maxPDUSize != 0 {
		cfg.MaxPDUSize = self.maxPDUSize
	}
	cfg.ShowHidden = cfg.ShowHidden || self.hidden
	cfg.ShowOffsets = cfg.ShowOffsets || self.offsets
	cfg.Debug = cfg.Debug || self.debug
}

// run decodes every input in turn. An empty list of files reads stdin.
func run(cfg Config, files []string, stdin io.Reader, out io.Writer) error {
	d, err := newDumper(cfg, out)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		var data []byte
		if name == "-" {
			data, err = readInput(stdin, cfg.Format)
		} else {
			data, err = readFile(name, cfg.Format)
		}
		if err != nil {
			log.Errorln(err)
			return err
		}
		log.Debugf("Read %d bytes from %s\n", len(data), name)
		d.reset()
		d.Process(name, data)
	}
	fmt.Fprintln(out, d.Summary())
	return nil
}

func readFile(name, format string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readInput(f, format)
}

func main() {
	var opts flags

	cli.Align = true
	cli.Banner = fmt.Sprintf("%s [OPTIONS] [FILE]...", os.Args[0])
	cli.Info("Decode the MS-RPRN (SPOOLSS) calls in DCE/RPC PDU streams. Reads stdin when no file is given.")

	cli.Flag(&opts.config, "c", "config", "", "YAML config file")
	cli.Flag(&opts.format, "f", "format", "", "Input format, hex or raw (default hex)")
	cli.Flag(&opts.hidden, "H", "hidden", false, "Show hidden items")
	cli.Flag(&opts.offsets, "o", "offsets", false, "Show the source and byte offset of each item")
	cli.Flag(&opts.debug, "d", "debug", false, "Enable debug logging")
	cli.Flag(&opts.iface, "i", "interface", "", "Interface uuid, or \"spoolss\", for contexts bound before the capture")
	cli.Flag(&opts.maxPDUSize, "m", "max-pdu-size", 0, "Largest reassembled stub in bytes (default 4194304)")
	cli.Parse()

	cfg := DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = ReadConfig(opts.config); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	opts.apply(&cfg)
	setupLogging(cfg.Debug)

	if err := run(cfg, cli.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
