// Package main provides the esrdec command-line tool.
// It decodes aarch64 ESR, MIDR and SMCCC function-ID values into an
// indented breakdown of their bit fields.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"

	"github.com/sarchlab/esrdec/esr"
	"github.com/sarchlab/esrdec/field"
	"github.com/sarchlab/esrdec/midr"
	"github.com/sarchlab/esrdec/regval"
	"github.com/sarchlab/esrdec/render"
	"github.com/sarchlab/esrdec/smccc"
)

var (
	register  = flag.String("reg", "esr", "Register kind to decode: esr, midr or smccc")
	longNames = flag.Bool("v", false, "Show long field names")
	dump      = flag.Bool("dump", false, "Dump the raw field tree instead of the report")
	vizPath   = flag.String("viz", "", "Write a Graphviz dot graph of the field tree to this file")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: esrdec [options] <register value>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	name, width, decode := lookupRegister(*register)
	if decode == nil {
		fmt.Fprintf(os.Stderr, "Unknown register kind %q\n", *register)
		os.Exit(1)
	}

	text := flag.Arg(0)
	v, err := regval.Parse(text, width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s value: %v\n", name, err)
		os.Exit(1)
	}
	fields := decode(v)

	if *vizPath != "" {
		if err := writeViz(*vizPath, fields); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing graph: %v\n", err)
			os.Exit(1)
		}
	}

	if *dump {
		spew.Dump(fields)
		return
	}

	fmt.Print(render.Report(name, v, fields, *longNames))
}

// lookupRegister maps a register kind name to its display name, width and
// decoder.
func lookupRegister(kind string) (string, uint, func(regval.Value) []field.Info) {
	switch kind {
	case "esr":
		return "ESR", esr.Width, esr.DecodeValue
	case "midr":
		return "MIDR", midr.Width, midr.DecodeValue
	case "smccc":
		return "SMCCC", smccc.Width, smccc.DecodeValue
	default:
		return "", 0, nil
	}
}

// writeViz renders the field tree as a Graphviz dot graph for inspection.
func writeViz(path string, fields []field.Info) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, &fields)
	return nil
}
