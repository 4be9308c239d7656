// Package esr decodes aarch64 Exception Syndrome Register values.
//
// An ESR value breaks down into a fixed set of top-level fields; the
// 6-bit Exception Class field selects how the 25-bit Instruction Specific
// Syndrome field decomposes further. The decoder describes every value it
// recognizes and surfaces the rest undescribed: unknown exception classes
// and uncatalogued enumerants are never errors.
//
// Usage:
//
//	fields, err := esr.Decode("0x96000050")
//	fmt.Print(render.Report("ESR", v, fields, false))
package esr

import (
	"github.com/sarchlab/esrdec/field"
	"github.com/sarchlab/esrdec/regval"
)

// Width is the ESR register width in bits.
const Width = 64

// An issDecoder decomposes the 25-bit ISS value of one exception class.
// It returns the subfields in presentation order and an optional
// description for the ISS field as a whole.
type issDecoder func(iss uint64) ([]field.Info, string)

type ecEntry struct {
	// class describes the exception class. Empty entries are reserved
	// encodings.
	class string

	// decodeISS decomposes the ISS field, or nil when the class defines no
	// further decoding.
	decodeISS issDecoder
}

// ecTable maps every Exception Class code to its description and ISS
// decoder. The table is indexed by the full 6-bit EC value so dispatch is
// total; codes the architecture leaves unassigned keep the zero entry.
var ecTable = [64]ecEntry{
	0b000000: {"Unknown reason", decodeISSRes0},
	0b000001: {"Trapped WF* instruction execution", decodeISSWF},
	0b000011: {"Trapped MCR or MRC access with coproc=0b1111", decodeISSMCR},
	0b000100: {"Trapped MCRR or MRRC access with coproc=0b1111", decodeISSMCRR},
	0b000101: {"Trapped MCR or MRC access with coproc=0b1110", decodeISSMCR},
	0b000110: {"Trapped LDC or STC access", decodeISSLDC},
	0b000111: {"Trapped access to SVE, Advanced SIMD or floating point", decodeISSSVE},
	0b001010: {"Trapped execution of an LD64B, ST64B, ST64BV, or ST64BV0 instruction", decodeISSLD64B},
	0b001100: {"Trapped MRRC access with (coproc==0b1110)", decodeISSMCRR},
	0b001101: {"Branch Target Exception", decodeISSBTI},
	0b001110: {"Illegal Execution state", decodeISSRes0},
	0b010001: {"SVC instruction execution in AArch32 state", decodeISSHVC},
	0b010101: {"SVC instruction execution in AArch64 state", decodeISSHVC},
	0b010110: {"HVC instruction execution in AArch64 state", decodeISSHVC},
	0b010111: {"SMC instruction execution in AArch64 state", decodeISSHVC},
	0b011000: {"Trapped MSR, MRS or System instruction execution in AArch64 state", decodeISSMSR},
	0b011001: {"Access to SVE functionality trapped as a result of CPACR_EL1.ZEN, CPTR_EL2.ZEN, CPTR_EL2.TZ, or CPTR_EL3.EZ", decodeISSRes0},
	0b011100: {"Exception from a Pointer Authentication instruction authentication failure", decodeISSPauth},
	0b100000: {"Instruction Abort from a lower Exception level", decodeISSInstructionAbort},
	0b100001: {"Instruction Abort taken without a change in Exception level", decodeISSInstructionAbort},
	0b100010: {"PC alignment fault exception", decodeISSRes0},
	0b100100: {"Data Abort from a lower Exception level", decodeISSDataAbort},
	0b100101: {"Data Abort taken without a change in Exception level", decodeISSDataAbort},
	0b100110: {"SP alignment fault exception", decodeISSRes0},
	0b101000: {"Trapped floating-point exception taken from AArch32 state", decodeISSFP},
	0b101100: {"Trapped floating-point exception taken from AArch64 state", decodeISSFP},
	0b101111: {"SError interrupt", decodeISSSError},
	0b110000: {"Breakpoint exception from a lower Exception level", decodeISSBreakpointVectorCatch},
	0b110001: {"Breakpoint exception taken without a change in Exception level", decodeISSBreakpointVectorCatch},
	0b110010: {"Software Step exception from a lower Exception level", decodeISSSoftwareStep},
	0b110011: {"Software Step exception taken without a change in Exception level", decodeISSSoftwareStep},
	0b110100: {"Watchpoint exception from a lower Exception level", decodeISSWatchpoint},
	0b110101: {"Watchpoint exception taken without a change in Exception level", decodeISSWatchpoint},
	0b111000: {"BKPT instruction execution in AArch32 state", decodeISSBreakpoint},
	0b111100: {"BRK instruction execution in AArch64 state", decodeISSBreakpoint},
}

// reservedClass marks EC codes the table leaves unassigned.
const reservedClass = "Unknown or reserved Exception Class"

// Decode parses and decodes an ESR value.
//
// Only parsing can fail: once a valid 64-bit value is obtained, every
// encoding decodes to a field tree. Reserved exception classes and
// uncatalogued field values are surfaced undescribed.
func Decode(text string) ([]field.Info, error) {
	v, err := regval.Parse(text, Width)
	if err != nil {
		return nil, err
	}
	return DecodeValue(v), nil
}

// DecodeValue decodes an already-parsed ESR value.
func DecodeValue(v regval.Value) []field.Info {
	esr := v.Bits

	res0 := field.New(esr, "RES0", "Reserved", 37, 63)
	iss2 := field.New(esr, "ISS2", "", 32, 36)
	ec := field.New(esr, "EC", "Exception Class", 26, 31)
	il := field.Bit(esr, "IL", "Instruction Length", 25).DescribeBit(describeIL)
	iss := field.New(esr, "ISS", "Instruction Specific Syndrome", 0, 24)

	entry := ecTable[ec.Value]
	if entry.class == "" {
		entry.class = reservedClass
	}
	ec = ec.WithDescription(entry.class)

	if entry.decodeISS != nil {
		subfields, description := entry.decodeISS(iss.Value)
		iss = iss.WithSubfields(subfields...)
		if description != "" {
			iss = iss.WithDescription(description)
		}
	}

	return []field.Info{res0, iss2, ec, il, iss}
}

// decodeISSRes0 handles exception classes whose ISS carries no syndrome
// information at all.
func decodeISSRes0(iss uint64) ([]field.Info, string) {
	res0 := field.New(iss, "RES0", "Reserved", 0, 24).
		WithDescription("ISS is RES0")
	return []field.Info{res0}, ""
}

func describeIL(il bool) string {
	if il {
		return "32-bit instruction trapped"
	}
	return "16-bit instruction trapped"
}
