package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSWF decomposes the ISS of a trapped WFI/WFE/WFIT/WFET.
func decodeISSWF(iss uint64) ([]field.Info, string) {
	cv := field.Bit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCV)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 23)
	res0a := field.New(iss, "RES0", "Reserved", 10, 19)
	rn := field.New(iss, "RN", "Register Number", 5, 9)
	res0b := field.New(iss, "RES0", "Reserved", 3, 4)
	rv := field.Bit(iss, "RV", "Register Valid", 2).DescribeBit(describeRV)
	ti := field.New(iss, "TI", "Trapped Instruction", 0, 1).Describe(describeTI)

	return []field.Info{cv, cond, res0a, rn, res0b, rv, ti}, ""
}

func describeRV(rv bool) string {
	if rv {
		return "RN is valid"
	}
	return "RN is not valid"
}

func describeTI(ti uint64) string {
	switch ti {
	case 0b00:
		return "WFI trapped"
	case 0b01:
		return "WFE trapped"
	case 0b10:
		return "WFIT trapped"
	default:
		return "WFET trapped"
	}
}
