// Package field provides the decoded field tree model.
//
// Every register decoder produces an ordered list of Info nodes, each
// covering an inclusive bit range of the register value, optionally
// carrying a human-readable description and a decomposition into
// subfields. The tree is transient: it is built fresh per decode call and
// holds no reference back to the register it was extracted from.
package field

import (
	"fmt"

	"github.com/sarchlab/esrdec/regval"
)

// Info describes one decoded field of a register value.
type Info struct {
	// Name is the short field name, e.g. "ISS".
	Name string

	// LongName is the expanded field name, e.g. "Instruction Specific
	// Syndrome". Empty when no expanded form exists.
	LongName string

	// Low and High are the inclusive bit positions of the field within the
	// register. For single-bit fields Low == High.
	Low, High uint

	// Value is the field value, right-shifted to start at bit 0.
	Value uint64

	// Description explains the field value when the decoder recognizes it.
	// Empty for values that are not catalogued.
	Description string

	// Subfields is the ordered decomposition of the field's bits. Empty for
	// leaf fields.
	Subfields []Info
}

// New extracts the inclusive bit range [low, high] of reg as a field.
func New(reg uint64, name, longName string, low, high uint) Info {
	return Info{
		Name:     name,
		LongName: longName,
		Low:      low,
		High:     high,
		Value:    regval.Extract(reg, low, high),
	}
}

// Bit extracts a single bit of reg as a field.
func Bit(reg uint64, name, longName string, bit uint) Info {
	return New(reg, name, longName, bit, bit)
}

// Width returns the field width in bits.
func (f Info) Width() uint {
	return f.High - f.Low + 1
}

// AsBit returns the field value as a boolean. Panics if the field is wider
// than one bit; callers are static decode tables.
func (f Info) AsBit() bool {
	if f.Width() != 1 {
		panic(fmt.Sprintf("field: %s is %d bits wide, not a single bit", f.Name, f.Width()))
	}
	return f.Value == 1
}

// WithDescription returns a copy of the field with the given description.
func (f Info) WithDescription(description string) Info {
	f.Description = description
	return f
}

// DescribeBit describes a single-bit field with the given function.
func (f Info) DescribeBit(describe func(bool) string) Info {
	return f.WithDescription(describe(f.AsBit()))
}

// Describe describes the field value with the given function. An empty
// result leaves the field undescribed; unknown values are surfaced, never
// rejected.
func (f Info) Describe(describe func(uint64) string) Info {
	if d := describe(f.Value); d != "" {
		return f.WithDescription(d)
	}
	return f
}

// WithSubfields returns a copy of the field with the given subfields
// attached, in order. Every subfield must lie within the parent's range
// and siblings must not overlap; a violation is an authoring bug in a
// decoder table and panics.
func (f Info) WithSubfields(subfields ...Info) Info {
	for i, sub := range subfields {
		if sub.Low < f.Low || sub.High > f.High {
			panic(fmt.Sprintf("field: subfield %s [%d..%d] outside parent %s [%d..%d]",
				sub.Name, sub.Low, sub.High, f.Name, f.Low, f.High))
		}
		for _, prev := range subfields[:i] {
			if sub.Low <= prev.High && prev.Low <= sub.High {
				panic(fmt.Sprintf("field: subfields %s and %s overlap", prev.Name, sub.Name))
			}
		}
	}
	f.Subfields = subfields
	return f
}

// ValueString returns the field value as a zero-padded hexadecimal string,
// or "true"/"false" for single-bit fields.
func (f Info) ValueString() string {
	if f.Width() == 1 {
		if f.Value == 1 {
			return "true"
		}
		return "false"
	}
	return fmt.Sprintf("%#0*x", int(f.Width()+3)/4+2, f.Value)
}

// BinaryString returns the field value in binary, zero-padded to the field
// width.
func (f Info) BinaryString() string {
	return fmt.Sprintf("%#0*b", int(f.Width())+2, f.Value)
}

// String renders the field as "NAME: value", matching ValueString.
func (f Info) String() string {
	if f.Width() == 1 {
		return fmt.Sprintf("%s: %s", f.Name, f.ValueString())
	}
	return fmt.Sprintf("%s: %s %s", f.Name, f.ValueString(), f.BinaryString())
}
