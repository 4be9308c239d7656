// Package midr decodes aarch64 Main ID Register values.
//
// MIDR_EL1 identifies the processor implementer, part number and revision.
// Known implementer and part codes are described; unknown codes are
// surfaced undescribed, never rejected.
package midr

import (
	"github.com/sarchlab/esrdec/field"
	"github.com/sarchlab/esrdec/regval"
)

// Width is the MIDR register width in bits. The architectural register is
// 64 bits with the top half reserved.
const Width = 64

// Decode parses and decodes a MIDR value.
func Decode(text string) ([]field.Info, error) {
	v, err := regval.Parse(text, Width)
	if err != nil {
		return nil, err
	}
	return DecodeValue(v), nil
}

// DecodeValue decodes an already-parsed MIDR value.
func DecodeValue(v regval.Value) []field.Info {
	midr := v.Bits

	res0 := field.New(midr, "RES0", "Reserved", 32, 63)
	implementer := field.New(midr, "Implementer", "", 24, 31).
		Describe(describeImplementer)
	variant := field.New(midr, "Variant", "", 20, 23)
	architecture := field.New(midr, "Architecture", "", 16, 19).
		Describe(describeArchitecture)
	partNum := field.New(midr, "PartNum", "Part number", 4, 15)
	if name, ok := partName(implementer.Value, partNum.Value); ok {
		partNum = partNum.WithDescription(name)
	}
	revision := field.New(midr, "Revision", "", 0, 3)

	return []field.Info{res0, implementer, variant, architecture, partNum, revision}
}

func describeImplementer(implementer uint64) string {
	switch implementer {
	case 0x00:
		return "Reserved for software use"
	case 0x41:
		return "Arm Limited"
	case 0x42:
		return "Broadcom Corporation"
	case 0x43:
		return "Cavium Inc."
	case 0x44:
		return "Digital Equipment Corporation"
	case 0x46:
		return "Fujitsu Ltd."
	case 0x49:
		return "Infineon Technologies AG"
	case 0x4D:
		return "Motorola or Freescale Semiconductor Inc."
	case 0x4E:
		return "NVIDIA Corporation"
	case 0x50:
		return "Applied Micro Circuits Corporation"
	case 0x51:
		return "Qualcomm Inc."
	case 0x56:
		return "Marvell International Ltd."
	case 0x61:
		return "Apple Inc."
	case 0x69:
		return "Intel Corporation"
	case 0xC0:
		return "Ampere Computing"
	default:
		return ""
	}
}

func describeArchitecture(architecture uint64) string {
	switch architecture {
	case 0b0001:
		return "Armv4"
	case 0b0010:
		return "Armv4T"
	case 0b0011:
		return "Armv5"
	case 0b0100:
		return "Armv5T"
	case 0b0101:
		return "Armv5TE"
	case 0b0110:
		return "Armv5TEJ"
	case 0b0111:
		return "Armv6"
	case 0b1111:
		return "Architectural features are individually identified"
	default:
		return "Reserved"
	}
}

// armImplementer is the Implementer code assigned to Arm Limited.
const armImplementer = 0x41

// partName resolves a part number against the known parts of the given
// implementer. Only Arm Limited parts are catalogued.
func partName(implementer, part uint64) (string, bool) {
	if implementer != armImplementer {
		return "", false
	}
	name, ok := armParts[part]
	return name, ok
}

var armParts = map[uint64]string{
	0xD01: "Cortex-A32",
	0xD02: "Cortex-A34",
	0xD03: "Cortex-A53",
	0xD04: "Cortex-A35",
	0xD05: "Cortex-A55",
	0xD06: "Cortex-A65",
	0xD07: "Cortex-A57",
	0xD08: "Cortex-A72",
	0xD09: "Cortex-A73",
	0xD0A: "Cortex-A75",
	0xD0B: "Cortex-A76",
	0xD0C: "Neoverse N1",
	0xD0D: "Cortex-A77",
	0xD13: "Cortex-R52",
	0xD20: "Cortex-M23",
	0xD21: "Cortex-M33",
	0xD40: "Neoverse V1",
	0xD41: "Cortex-A78",
	0xD42: "Cortex-A78AE",
	0xD44: "Cortex-X1",
	0xD46: "Cortex-A510",
	0xD47: "Cortex-A710",
	0xD48: "Cortex-X2",
	0xD49: "Neoverse N2",
	0xD4A: "Neoverse E1",
	0xD4B: "Cortex-A78C",
}
