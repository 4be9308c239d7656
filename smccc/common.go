package smccc

import "github.com/sarchlab/esrdec/field"

// functionNumber extracts the 16-bit function number of a fast call.
func functionNumber(fid uint64) field.Info {
	return field.New(fid, "Function Number", "", 0, 15)
}

// decodeCommonService handles service ranges with no dedicated
// function-number table; only the general queries are named.
func decodeCommonService(fid uint64, is64 bool) field.Info {
	if is64 {
		return functionNumber(fid).Describe(describeReservedFunctions)
	}
	return functionNumber(fid).Describe(describeGeneralQueries32)
}

// describeReservedFunctions names the function-number range every owning
// entity reserves for future expansion.
func describeReservedFunctions(function uint64) string {
	if function >= 0xFF00 && function <= 0xFFFF {
		return "Reserved for future expansion"
	}
	return ""
}

func describeGeneralQueries32(function uint64) string {
	switch function {
	case 0xFF00:
		return "Call Count Query, deprecated from SMCCCv1.2"
	case 0xFF01:
		return "Call UUID Query"
	case 0xFF03:
		return "Revision Query"
	default:
		return describeReservedFunctions(function)
	}
}
