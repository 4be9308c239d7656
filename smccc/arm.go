package smccc

import "github.com/sarchlab/esrdec/field"

// decodeArmService names the Arm Architecture Call function numbers.
func decodeArmService(fid uint64, is64 bool) field.Info {
	if is64 {
		return functionNumber(fid).Describe(describeReservedFunctions)
	}
	return functionNumber(fid).Describe(describeArmService32)
}

func describeArmService32(function uint64) string {
	switch function {
	case 0x0000:
		return "SMCCC_VERSION"
	case 0x0001:
		return "SMCCC_ARCH_FEATURES"
	case 0x0002:
		return "SMCCC_ARCH_SOC_ID"
	case 0x3FFF:
		return "SMCCC_ARCH_WORKAROUND_3"
	case 0x7FFF:
		return "SMCCC_ARCH_WORKAROUND_2"
	case 0x8000:
		return "SMCCC_ARCH_WORKAROUND_1"
	case 0xFF00:
		return "Call Count Query, deprecated from SMCCCv1.2"
	case 0xFF01:
		return "Call UUID Query, deprecated from SMCCCv1.2"
	case 0xFF03:
		return "Revision Query, deprecated from SMCCCv1.2"
	default:
		return describeReservedFunctions(function)
	}
}
