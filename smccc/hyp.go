package smccc

import "github.com/sarchlab/esrdec/field"

// decodeHypService names the Standard Hypervisor Service Call function
// numbers.
func decodeHypService(fid uint64, is64 bool) field.Info {
	if is64 {
		return functionNumber(fid).Describe(describeHypService64)
	}
	return functionNumber(fid).Describe(describeGeneralQueries32)
}

func describeHypService64(function uint64) string {
	if function >= 0x20 && function <= 0x3F {
		return "PV Time 64-bit calls"
	}
	return ""
}
