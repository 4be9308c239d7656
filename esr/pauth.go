package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSPauth decomposes the ISS of a Pointer Authentication
// authentication failure.
func decodeISSPauth(iss uint64) ([]field.Info, string) {
	res0 := field.New(iss, "RES0", "Reserved", 2, 24)
	iord := field.Bit(iss, "IorD", "Instruction key or Data key", 1).
		DescribeBit(describeIorD)
	aorb := field.Bit(iss, "AorB", "A key or B key", 0).
		DescribeBit(describeAorB)

	return []field.Info{res0, iord, aorb}, ""
}

func describeIorD(iord bool) string {
	if iord {
		return "Data Key"
	}
	return "Instruction Key"
}

func describeAorB(aorb bool) string {
	if aorb {
		return "B Key"
	}
	return "A Key"
}
