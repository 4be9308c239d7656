// Package smccc decodes SMCCC function IDs.
//
// A function ID (ARM DEN 0028E) selects the called service through a set
// of fixed fields: the call type bit picks fast versus yielding calls,
// and for fast calls the service-call range identifies the owning entity
// whose function-number space is decoded further. Unknown ranges and
// function numbers are surfaced undescribed.
package smccc

import (
	"github.com/sarchlab/esrdec/field"
	"github.com/sarchlab/esrdec/regval"
)

// Width is the SMCCC function ID width in bits.
const Width = 32

// Decode parses and decodes an SMCCC function ID.
func Decode(text string) ([]field.Info, error) {
	v, err := regval.Parse(text, Width)
	if err != nil {
		return nil, err
	}
	return DecodeValue(v), nil
}

// DecodeValue decodes an already-parsed SMCCC function ID.
func DecodeValue(v regval.Value) []field.Info {
	fid := v.Bits

	callType := field.Bit(fid, "Call Type", "", 31).DescribeBit(describeCallType)

	var rest []field.Info
	if callType.AsBit() {
		rest = decodeFastCall(fid)
	} else {
		rest = decodeYieldingCall(fid)
	}

	return append([]field.Info{callType}, rest...)
}

// decodeFastCall decomposes the fields of an atomic (fast) call ID.
func decodeFastCall(fid uint64) []field.Info {
	convention := field.Bit(fid, "Call Convention", "", 30).
		DescribeBit(describeConvention)
	service := field.New(fid, "Service Call", "", 24, 29).
		Describe(describeService)
	mbz := field.New(fid, "MBZ", "Some legacy Armv7 set this to 1", 17, 23)
	sve := field.Bit(fid, "SVE live state", "No live state[1] From SMCCCv1.3, before SMCCCv1.3 MBZ", 16)

	var function field.Info
	switch {
	case service.Value == 0x00:
		function = decodeArmService(fid, convention.AsBit())
	case service.Value == 0x04:
		function = decodeSecureService(fid, convention.AsBit())
	case service.Value == 0x05:
		function = decodeHypService(fid, convention.AsBit())
	case service.Value == 0x30 || service.Value == 0x31:
		function = decodeTrustedAppService(fid)
	default:
		function = decodeCommonService(fid, convention.AsBit())
	}

	return []field.Info{convention, service, mbz, sve, function}
}

// decodeYieldingCall decomposes a yielding call ID, whose low 31 bits are
// partitioned into documented ranges rather than fields.
func decodeYieldingCall(fid uint64) []field.Info {
	serviceType := field.New(fid, "Service Type", "", 0, 30).
		Describe(describeYieldingService)
	return []field.Info{serviceType}
}

func describeCallType(fast bool) string {
	if fast {
		return "Fast Call"
	}
	return "Yielding Call"
}

func describeConvention(is64 bool) string {
	if is64 {
		return "SMC64/HVC64"
	}
	return "SMC32/HVC32"
}

// describeService names the owning entity of a service call range.
func describeService(service uint64) string {
	switch {
	case service == 0x00:
		return "Arm Architecture Call"
	case service == 0x01:
		return "CPU Service Call"
	case service == 0x02:
		return "SiP Service Call"
	case service == 0x03:
		return "OEM Service Call"
	case service == 0x04:
		return "Standard Secure Service Call"
	case service == 0x05:
		return "Standard Hypervisor Service Call"
	case service == 0x06:
		return "Vendor Specific Hypervisor Service Call"
	case service >= 0x07 && service <= 0x2F:
		return "Reserved for future use"
	case service == 0x30 || service == 0x31:
		return "Trusted Application Call"
	case service >= 0x32 && service <= 0x3F:
		return "Trusted OS Call"
	default:
		return ""
	}
}

func describeYieldingService(service uint64) string {
	switch {
	case service <= 0x0100FFFF:
		return "Reserved for existing APIs (in use by the existing Armv7 devices)"
	case service >= 0x02000000 && service <= 0x1FFFFFFF:
		return "Trusted OS Yielding Calls"
	case service >= 0x20000000 && service <= 0x7FFFFFFF:
		return "Reserved for future expansion of Trusted OS Yielding Calls"
	default:
		return ""
	}
}
