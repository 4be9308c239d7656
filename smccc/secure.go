package smccc

import "github.com/sarchlab/esrdec/field"

// decodeSecureService names the Standard Secure Service Call function
// numbers: FF-A function IDs first, then the documented sub-ranges
// (PSCI, SDEI, MM, TRNG, Errata, CCA).
func decodeSecureService(fid uint64, is64 bool) field.Info {
	if is64 {
		return functionNumber(fid).Describe(describeSecureService64)
	}
	return functionNumber(fid).Describe(describeSecureService32)
}

func describeSecureService32(function uint64) string {
	if name, ok := ffaFunction32(function); ok {
		return name
	}
	if function <= 0x1CF {
		return describeSecureRange(function)
	}
	return describeGeneralQueries32(function)
}

func describeSecureService64(function uint64) string {
	if name, ok := ffaFunction64(function); ok {
		return name
	}
	return describeSecureRange(function)
}

func describeSecureRange(function uint64) string {
	switch {
	case function <= 0x01F:
		return "PSCI Call (Power Secure Control Interface)"
	case function >= 0x020 && function <= 0x03F:
		return "SDEI Call (Software Delegated Exception Interface)"
	case function >= 0x040 && function <= 0x04F:
		return "MM Call (Management Mode)"
	case function >= 0x050 && function <= 0x05F:
		return "TRNG Call"
	case function >= 0x060 && function <= 0x0EF:
		return "Unknown FF-A Call"
	case function >= 0x0F0 && function <= 0x10F:
		return "Errata Call"
	case function >= 0x150 && function <= 0x1CF:
		return "CCA Call"
	default:
		return ""
	}
}
