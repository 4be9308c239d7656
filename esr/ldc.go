package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSLDC decomposes the ISS of a trapped LDC or STC access.
func decodeISSLDC(iss uint64) ([]field.Info, string) {
	cv := field.Bit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCV)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 23)
	imm8 := field.New(iss, "imm8", "Immediate value of the trapped instruction", 12, 19)
	res0 := field.New(iss, "RES0", "Reserved", 10, 11)
	rn := field.New(iss, "Rn", "General-purpose register number of the trapped instruction", 5, 9)
	offset := field.Bit(iss, "Offset", "Whether the offset is added or subtracted", 4).
		DescribeBit(describeOffset)
	am := field.New(iss, "AM", "Addressing Mode", 1, 3).Describe(describeAM)
	direction := field.Bit(iss, "Direction", "Direction of the trapped instruction", 0).
		DescribeBit(describeLDCDirection)

	return []field.Info{cv, cond, imm8, res0, rn, offset, am, direction}, ""
}

func describeOffset(offset bool) string {
	if offset {
		return "Add offset"
	}
	return "Subtract offset"
}

func describeAM(am uint64) string {
	switch am {
	case 0b000:
		return "Immediate unindexed"
	case 0b001:
		return "Immediate post-indexed"
	case 0b010:
		return "Immediate offset"
	case 0b011:
		return "Immediate pre-indexed"
	case 0b100:
		return "Reserved for trapped STR or T32 LDC"
	case 0b110:
		return "Reserved for trapped STC"
	default:
		return ""
	}
}

func describeLDCDirection(direction bool) string {
	if direction {
		return "Read from memory (LDC)"
	}
	return "Write to memory (STC)"
}
