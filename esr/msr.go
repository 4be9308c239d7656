package esr

import (
	"fmt"

	"github.com/sarchlab/esrdec/field"
)

// decodeISSMSR decomposes the ISS of a trapped MSR, MRS or System
// instruction. The (Op0, Op1, CRn, CRm, Op2) tuple is resolved against the
// architected system register names; unresolved tuples fall back to the
// architectural S<op0>_<op1>_C<crn>_C<crm>_<op2> encoding, never an error.
func decodeISSMSR(iss uint64) ([]field.Info, string) {
	res0 := field.New(iss, "RES0", "Reserved", 22, 24)
	op0 := field.New(iss, "Op0", "", 20, 21)
	op2 := field.New(iss, "Op2", "", 17, 19)
	op1 := field.New(iss, "Op1", "", 14, 16)
	crn := field.New(iss, "CRn", "", 10, 13)
	rt := field.New(iss, "Rt", "", 5, 9)
	crm := field.New(iss, "CRm", "", 1, 4)
	direction := field.Bit(iss, "Direction", "Direction of the trapped instruction", 0).
		DescribeBit(describeMSRDirection)

	name, known := sysregName(op0.Value, op1.Value, crn.Value, crm.Value, op2.Value)
	if !known {
		name = fmt.Sprintf("S%d_%d_C%d_C%d_%d",
			op0.Value, op1.Value, crn.Value, crm.Value, op2.Value)
	}

	var description string
	if direction.AsBit() {
		description = fmt.Sprintf("MRS x%d, %s", rt.Value, name)
	} else {
		description = fmt.Sprintf("MSR %s, x%d", name, rt.Value)
	}

	fields := []field.Info{res0, op0, op2, op1, crn, rt, crm, direction}
	return fields, description
}

func describeMSRDirection(direction bool) string {
	if direction {
		return "Read from system register (MRS)"
	}
	return "Write to system register (MSR)"
}
