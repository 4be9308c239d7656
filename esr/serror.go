package esr

import "github.com/sarchlab/esrdec/field"

// decodeISSSError decomposes the ISS of an SError interrupt. The IDS bit
// gates whether the remaining bits follow the architected layout or an
// implementation-defined one.
func decodeISSSError(iss uint64) ([]field.Info, string) {
	ids := field.Bit(iss, "IDS", "Implementation Defined Syndrome", 24).
		DescribeBit(describeIDS)

	if ids.AsBit() {
		impdef := field.New(iss, "IMPDEF", "Implementation defined", 0, 23)
		return []field.Info{ids, impdef}, ""
	}

	dfsc := field.New(iss, "DFSC", "Data Fault Status Code", 0, 5).
		Describe(describeSErrorDFSC)
	res0a := field.New(iss, "RES0", "Reserved", 14, 23)

	// IESB is only assigned for asynchronous SError interrupts.
	var iesb field.Info
	if dfsc.Value == 0b010001 {
		iesb = field.Bit(iss, "IESB", "Implicit Error Synchronisation event", 13).
			DescribeBit(describeIESB)
	} else {
		iesb = field.Bit(iss, "RES0", "Reserved for this DFSC value", 13)
	}

	aet := field.New(iss, "AET", "Asynchronous Error Type", 10, 12).Describe(describeAET)
	ea := field.Bit(iss, "EA", "External Abort type", 9)
	res0b := field.New(iss, "RES0", "Reserved", 6, 8)

	return []field.Info{ids, res0a, iesb, aet, ea, res0b, dfsc}, ""
}

func describeIDS(ids bool) string {
	if ids {
		return "The rest of the ISS is encoded in an implementation-defined format"
	}
	return "The rest of the ISS is encoded according to the platform"
}

func describeIESB(iesb bool) string {
	if iesb {
		return "The SError interrupt was synchronized by the implicit error synchronization event and taken immediately."
	}
	return "The SError interrupt was not synchronized by the implicit error synchronization event or not taken immediately."
}

func describeAET(aet uint64) string {
	switch aet {
	case 0b000:
		return "Uncontainable (UC)"
	case 0b001:
		return "Unrecoverable state (UEU)"
	case 0b010:
		return "Restartable state (UEO)"
	case 0b011:
		return "Recoverable state (UER)"
	case 0b110:
		return "Corrected (CE)"
	default:
		return ""
	}
}

func describeSErrorDFSC(dfsc uint64) string {
	switch dfsc {
	case 0b000000:
		return "Uncategorized error"
	case 0b010001:
		return "Asynchronous SError interrupt"
	default:
		return ""
	}
}
