// Package render turns a decoded field tree into an indented text report.
//
// Rendering is purely presentational: it walks the tree depth-first in the
// order the decoder attached the fields and carries no decoding logic.
package render

import (
	"fmt"
	"strings"

	"github.com/sarchlab/esrdec/field"
	"github.com/sarchlab/esrdec/regval"
)

// Lines renders the fields as one line per field:
//
//	<low>..<high> <NAME>: 0x<hex> 0b<binary>
//
// Single-bit fields show just the bit index, zero-padded to two digits.
// Each nesting level indents by two spaces; descriptions render as an
// additional line below their field, indented one further level and
// prefixed by "# ".
func Lines(fields []field.Info, longNames bool) []string {
	return renderLevel(fields, longNames, 0)
}

func renderLevel(fields []field.Info, longNames bool, depth int) []string {
	indent := strings.Repeat("  ", depth)

	var lines []string
	for _, f := range fields {
		lines = append(lines, indent+fieldLine(f, longNames))
		if f.Description != "" {
			lines = append(lines, fmt.Sprintf("%s  # %s", indent, f.Description))
		}
		lines = append(lines, renderLevel(f.Subfields, longNames, depth+1)...)
	}
	return lines
}

func fieldLine(f field.Info, longNames bool) string {
	name := f.Name
	if longNames && f.LongName != "" {
		name = f.LongName
	}

	value := f.ValueString()
	if f.Width() > 1 {
		value += " " + f.BinaryString()
	}

	if f.Width() == 1 {
		return fmt.Sprintf("%02d     %s: %s", f.Low, name, value)
	}
	return fmt.Sprintf("%02d..%02d %s: %s", f.Low, f.High, name, value)
}

// Report renders a full register report: a header naming the register and
// its value in hex, followed by the rendered field lines.
func Report(register string, v regval.Value, fields []field.Info, longNames bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %#0*x:\n", register, int(v.Width)/4+2, v.Bits)
	for _, line := range Lines(fields, longNames) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
