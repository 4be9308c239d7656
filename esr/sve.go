package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSSVE decomposes the ISS of a trapped SVE, Advanced SIMD or
// floating point access.
func decodeISSSVE(iss uint64) ([]field.Info, string) {
	cv := field.Bit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCV)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 23)
	res0 := field.New(iss, "RES0", "Reserved", 0, 19)

	return []field.Info{cv, cond, res0}, ""
}
