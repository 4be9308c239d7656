package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSLD64B decomposes the ISS of a trapped LD64B, ST64B, ST64BV or
// ST64BV0 instruction. The whole ISS is a single enumeration.
func decodeISSLD64B(iss uint64) ([]field.Info, string) {
	f := field.New(iss, "ISS", "", 0, 24).Describe(describeLD64BISS)
	return []field.Info{f}, ""
}

func describeLD64BISS(iss uint64) string {
	switch iss {
	case 0b00:
		return "ST64BV trapped"
	case 0b01:
		return "ST64BV0 trapped"
	case 0b10:
		return "LD64B or ST64B trapped"
	default:
		return ""
	}
}
