package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSMCR decomposes the ISS of a trapped MCR or MRC access.
func decodeISSMCR(iss uint64) ([]field.Info, string) {
	cv := field.Bit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCV)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 23)
	opc2 := field.New(iss, "Opc2", "", 17, 19)
	opc1 := field.New(iss, "Opc1", "", 14, 16)
	crn := field.New(iss, "CRn", "", 10, 13)
	rt := field.New(iss, "Rt", "", 5, 9)
	crm := field.New(iss, "CRm", "", 1, 4)
	direction := field.Bit(iss, "Direction", "Direction of the trapped instruction", 0).
		DescribeBit(describeMCRDirection)

	return []field.Info{cv, cond, opc2, opc1, crn, rt, crm, direction}, ""
}

// decodeISSMCRR decomposes the ISS of a trapped MCRR or MRRC access.
func decodeISSMCRR(iss uint64) ([]field.Info, string) {
	cv := field.Bit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCV)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 23)
	opc1 := field.New(iss, "Opc1", "", 16, 19)
	res0 := field.Bit(iss, "RES0", "Reserved", 15)
	rt2 := field.New(iss, "Rt2", "", 10, 14)
	rt := field.New(iss, "Rt", "", 5, 9)
	crm := field.New(iss, "CRm", "", 1, 4)
	direction := field.Bit(iss, "Direction", "Direction of the trapped instruction", 0).
		DescribeBit(describeMCRDirection)

	return []field.Info{cv, cond, opc1, res0, rt2, rt, crm, direction}, ""
}

func describeMCRDirection(direction bool) string {
	if direction {
		return "Read from system register (MRC or VMRS)"
	}
	return "Write to system register (MCR)"
}
