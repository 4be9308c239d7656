package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSBTI decomposes the ISS of a Branch Target Exception.
func decodeISSBTI(iss uint64) ([]field.Info, string) {
	res0 := field.New(iss, "RES0", "Reserved", 2, 24)
	btype := field.New(iss, "BTYPE", "PSTATE.BTYPE value", 0, 1)

	return []field.Info{res0, btype}, ""
}
