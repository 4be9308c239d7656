package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSHVC decomposes the ISS of an HVC, SVC or SMC instruction
// execution.
func decodeISSHVC(iss uint64) ([]field.Info, string) {
	res0 := field.New(iss, "RES0", "Reserved", 16, 24)
	imm16 := field.New(iss, "imm16", "Value of the immediate field", 0, 15)

	return []field.Info{res0, imm16}, ""
}
