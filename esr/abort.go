package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSInstructionAbort decomposes the ISS of an Instruction Abort.
func decodeISSInstructionAbort(iss uint64) ([]field.Info, string) {
	res0a := field.New(iss, "RES0", "Reserved", 13, 24)
	fnv := field.Bit(iss, "FnV", "FAR not Valid", 10).DescribeBit(describeFnV)
	ea := field.Bit(iss, "EA", "External abort type", 9)
	res0b := field.Bit(iss, "RES0", "Reserved", 8)
	s1ptw := field.Bit(iss, "S1PTW", "Stage-1 translation table walk", 7)
	res0c := field.Bit(iss, "RES0", "Reserved", 6)
	ifsc := field.New(iss, "IFSC", "Instruction Fault Status Code", 0, 5).
		Describe(describeFSC)

	// SET is only assigned for synchronous external aborts.
	var set field.Info
	if ifsc.Value == 0b010000 {
		set = field.New(iss, "SET", "Synchronous Error Type", 11, 12).
			Describe(describeSET)
	} else {
		set = field.New(iss, "RES0", "Reserved", 11, 12)
	}

	return []field.Info{res0a, set, fnv, ea, res0b, s1ptw, res0c, ifsc}, ""
}

// decodeISSDataAbort decomposes the ISS of a Data Abort. The ISV bit gates
// whether bits 23..14 carry a valid instruction syndrome.
func decodeISSDataAbort(iss uint64) ([]field.Info, string) {
	isv := field.Bit(iss, "ISV", "Instruction Syndrome Valid", 24).
		DescribeBit(describeISV)

	var syndrome []field.Info
	if isv.AsBit() {
		sas := field.New(iss, "SAS", "Syndrome Access Size", 22, 23).
			Describe(describeSAS)
		sse := field.Bit(iss, "SSE", "Syndrome Sign Extend", 21)
		srt := field.New(iss, "SRT", "Syndrome Register Transfer", 16, 20)
		sf := field.Bit(iss, "SF", "Sixty-Four", 15).DescribeBit(describeSF)
		ar := field.Bit(iss, "AR", "Acquire/Release", 14).DescribeBit(describeAR)
		syndrome = []field.Info{sas, sse, srt, sf, ar}
	} else {
		syndrome = []field.Info{field.New(iss, "RES0", "Reserved", 14, 23)}
	}

	vncr := field.Bit(iss, "VNCR", "", 13)
	fnv := field.Bit(iss, "FnV", "FAR not Valid", 10).DescribeBit(describeFnV)
	ea := field.Bit(iss, "EA", "External abort type", 9)
	cm := field.Bit(iss, "CM", "Cache Maintenance", 8)
	s1ptw := field.Bit(iss, "S1PTW", "Stage-1 translation table walk", 7)
	wnr := field.Bit(iss, "WnR", "Write not Read", 6).DescribeBit(describeWnR)
	dfsc := field.New(iss, "DFSC", "Data Fault Status Code", 0, 5).
		Describe(describeFSC)

	var set field.Info
	if dfsc.Value == 0b010000 {
		set = field.New(iss, "SET", "Synchronous Error Type", 11, 12).
			Describe(describeSET)
	} else {
		set = field.New(iss, "RES0", "Reserved", 11, 12)
	}

	fields := []field.Info{isv}
	fields = append(fields, syndrome...)
	fields = append(fields, vncr, set, fnv, ea, cm, s1ptw, wnr, dfsc)
	return fields, ""
}

func describeISV(isv bool) string {
	if isv {
		return "Valid instruction syndrome"
	}
	return "No valid instruction syndrome"
}

func describeSAS(sas uint64) string {
	switch sas {
	case 0b00:
		return "byte"
	case 0b01:
		return "halfword"
	case 0b10:
		return "word"
	default:
		return "doubleword"
	}
}

func describeSF(sf bool) string {
	if sf {
		return "64-bit wide register"
	}
	return "32-bit wide register"
}

func describeAR(ar bool) string {
	if ar {
		return "Acquire/release semantics"
	}
	return "No acquire/release semantics"
}

func describeFnV(fnv bool) string {
	if fnv {
		return "FAR is not valid, it holds an unknown value"
	}
	return "FAR is valid"
}

func describeWnR(wnr bool) string {
	if wnr {
		return "Abort caused by writing to memory"
	}
	return "Abort caused by reading from memory"
}

// describeFSC describes the 6-bit fault status codes shared by the DFSC
// and IFSC fields. Uncatalogued codes stay undescribed.
func describeFSC(fsc uint64) string {
	switch fsc {
	case 0b000000:
		return "Address size fault, level 0 of translation or translation table base register."
	case 0b000001:
		return "Address size fault, level 1."
	case 0b000010:
		return "Address size fault, level 2."
	case 0b000011:
		return "Address size fault, level 3."
	case 0b000100:
		return "Translation fault, level 0."
	case 0b000101:
		return "Translation fault, level 1."
	case 0b000110:
		return "Translation fault, level 2."
	case 0b000111:
		return "Translation fault, level 3."
	case 0b001000:
		return "Access flag fault, level 0."
	case 0b001001:
		return "Access flag fault, level 1."
	case 0b001010:
		return "Access flag fault, level 2."
	case 0b001011:
		return "Access flag fault, level 3."
	case 0b001100:
		return "Permission fault, level 0."
	case 0b001101:
		return "Permission fault, level 1."
	case 0b001110:
		return "Permission fault, level 2."
	case 0b001111:
		return "Permission fault, level 3."
	case 0b010000:
		return "Synchronous External abort, not on translation table walk or hardware update of translation table."
	case 0b010001:
		return "Synchronous Tag Check Fault."
	case 0b010011:
		return "Synchronous External abort on translation table walk or hardware update of translation table, level -1."
	case 0b010100:
		return "Synchronous External abort on translation table walk or hardware update of translation table, level 0."
	case 0b010101:
		return "Synchronous External abort on translation table walk or hardware update of translation table, level 1."
	case 0b010110:
		return "Synchronous External abort on translation table walk or hardware update of translation table, level 2."
	case 0b010111:
		return "Synchronous External abort on translation table walk or hardware update of translation table, level 3."
	case 0b011000:
		return "Synchronous parity or ECC error on memory access, not on translation table walk."
	case 0b011011:
		return "Synchronous parity or ECC error on memory access on translation table walk or hardware update of translation table, level -1."
	case 0b011100:
		return "Synchronous parity or ECC error on memory access on translation table walk or hardware update of translation table, level 0."
	case 0b011101:
		return "Synchronous parity or ECC error on memory access on translation table walk or hardware update of translation table, level 1."
	case 0b011110:
		return "Synchronous parity or ECC error on memory access on translation table walk or hardware update of translation table, level 2."
	case 0b011111:
		return "Synchronous parity or ECC error on memory access on translation table walk or hardware update of translation table, level 3."
	case 0b100001:
		return "Alignment fault."
	case 0b101001:
		return "Address size fault, level -1."
	case 0b101011:
		return "Translation fault, level -1."
	case 0b110000:
		return "TLB conflict abort."
	case 0b110001:
		return "Unsupported atomic hardware update fault."
	case 0b110100:
		return "IMPLEMENTATION DEFINED fault (Lockdown)."
	case 0b110101:
		return "IMPLEMENTATION DEFINED fault (Unsupported Exclusive or Atomic access)."
	default:
		return ""
	}
}

func describeSET(set uint64) string {
	switch set {
	case 0b00:
		return "Recoverable state (UER)"
	case 0b10:
		return "Uncontainable (UC)"
	case 0b11:
		return "Restartable state (UEO)"
	default:
		return ""
	}
}
