package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSBreakpointVectorCatch decomposes the ISS of a Breakpoint or
// Vector Catch debug exception.
func decodeISSBreakpointVectorCatch(iss uint64) ([]field.Info, string) {
	res0 := field.New(iss, "RES0", "Reserved", 6, 24)
	ifsc := field.New(iss, "IFSC", "Instruction Fault Status Code", 0, 5).
		Describe(describeDebugFSC)

	return []field.Info{res0, ifsc}, ""
}

// decodeISSSoftwareStep decomposes the ISS of a Software Step exception.
// The ISV bit gates whether EX is valid.
func decodeISSSoftwareStep(iss uint64) ([]field.Info, string) {
	isv := field.Bit(iss, "ISV", "Instruction Syndrome Valid", 24).
		DescribeBit(describeStepISV)
	res0 := field.New(iss, "RES0", "Reserved", 7, 23)

	var ex field.Info
	if isv.AsBit() {
		ex = field.Bit(iss, "EX", "Exclusive operation", 6).DescribeBit(describeEX)
	} else {
		ex = field.Bit(iss, "RES0", "Reserved because ISV is false", 6)
	}

	ifsc := field.New(iss, "IFSC", "Instruction Fault Status Code", 0, 5).
		Describe(describeDebugFSC)

	return []field.Info{isv, res0, ex, ifsc}, ""
}

// decodeISSWatchpoint decomposes the ISS of a Watchpoint exception.
func decodeISSWatchpoint(iss uint64) ([]field.Info, string) {
	res0a := field.New(iss, "RES0", "Reserved", 15, 24)
	res0b := field.Bit(iss, "RES0", "Reserved", 14)
	vncr := field.Bit(iss, "VNCR", "", 13)
	res0c := field.New(iss, "RES0", "Reserved", 9, 12)
	cm := field.Bit(iss, "CM", "Cache Maintenance", 8)
	res0d := field.Bit(iss, "RES0", "Reserved", 7)
	wnr := field.Bit(iss, "WnR", "Write not Read", 6).DescribeBit(describeWatchpointWnR)
	dfsc := field.New(iss, "DFSC", "Data Fault Status Code", 0, 5).
		Describe(describeDebugFSC)

	return []field.Info{res0a, res0b, vncr, res0c, cm, res0d, wnr, dfsc}, ""
}

// decodeISSBreakpoint decomposes the ISS of a BKPT or BRK instruction
// execution.
func decodeISSBreakpoint(iss uint64) ([]field.Info, string) {
	res0 := field.New(iss, "RES0", "Reserved", 16, 24)
	comment := field.New(iss, "Comment", "Instruction comment field or immediate field", 0, 15)

	return []field.Info{res0, comment}, ""
}

func describeDebugFSC(fsc uint64) string {
	if fsc == 0b100010 {
		return "Debug exception"
	}
	return ""
}

func describeStepISV(isv bool) string {
	if isv {
		return "EX bit is valid"
	}
	return "EX bit is RES0"
}

func describeEX(ex bool) string {
	if ex {
		return "A Load-Exclusive instruction was stepped"
	}
	return "Some instruction other than a Load-Exclusive was stepped"
}

func describeWatchpointWnR(wnr bool) string {
	if wnr {
		return "Watchpoint caused by writing to memory"
	}
	return "Watchpoint caused by reading from memory"
}
