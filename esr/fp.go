package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSFP decomposes the ISS of a trapped floating-point exception.
func decodeISSFP(iss uint64) ([]field.Info, string) {
	res0a := field.Bit(iss, "RES0", "Reserved", 24)
	tfv := field.Bit(iss, "TFV", "Trapped Fault Valid", 23).DescribeBit(describeTFV)
	res0b := field.New(iss, "RES0", "Reserved", 11, 22)
	vecitr := field.New(iss, "VECITR", "RES1 or UNKNOWN", 8, 10)
	idf := field.Bit(iss, "IDF", "Input Denormal", 7).DescribeBit(describeFPBit("Input denormal"))
	res0c := field.New(iss, "RES0", "Reserved", 5, 6)
	ixf := field.Bit(iss, "IXF", "Inexact", 4).DescribeBit(describeFPBit("Inexact"))
	uff := field.Bit(iss, "UFF", "Underflow", 3).DescribeBit(describeFPBit("Underflow"))
	off := field.Bit(iss, "OFF", "Overflow", 2).DescribeBit(describeFPBit("Overflow"))
	dzf := field.Bit(iss, "DZF", "Divide by Zero", 1).DescribeBit(describeFPBit("Divide by Zero"))
	iof := field.Bit(iss, "IOF", "Invalid Operation", 0).DescribeBit(describeFPBit("Invalid Operation"))

	return []field.Info{res0a, tfv, res0b, vecitr, idf, res0c, ixf, uff, off, dzf, iof}, ""
}

func describeTFV(tfv bool) string {
	if tfv {
		return "One or more floating-point exceptions occurred; IDF, IXF, UFF, OFF, DZF and IOF hold information about what."
	}
	return "IDF, IXF, UFF, OFF, DZF and IOF do not hold valid information."
}

// describeFPBit builds the describer for one of the cumulative
// floating-point exception bits.
func describeFPBit(kind string) func(bool) string {
	return func(set bool) string {
		if set {
			return kind + " floating-point exception occurred."
		}
		return kind + " floating-point exception did not occur."
	}
}
