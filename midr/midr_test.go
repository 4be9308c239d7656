package midr_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/esrdec/midr"
	"github.com/sarchlab/esrdec/regval"
)

func TestMIDR(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MIDR Suite")
}

var _ = Describe("Decode", func() {
	It("should decode a Cortex-A53 MIDR", func() {
		// Implementer=0x41 (Arm), Variant=0, Architecture=0xF,
		// PartNum=0xD03 (Cortex-A53), Revision=4
		fields, err := midr.Decode("0x410fd034")
		Expect(err).ToNot(HaveOccurred())
		Expect(fields).To(HaveLen(6))

		implementer := fields[1]
		Expect(implementer.Name).To(Equal("Implementer"))
		Expect(implementer.Low).To(Equal(uint(24)))
		Expect(implementer.High).To(Equal(uint(31)))
		Expect(implementer.Value).To(Equal(uint64(0x41)))
		Expect(implementer.Description).To(Equal("Arm Limited"))

		variant := fields[2]
		Expect(variant.Name).To(Equal("Variant"))
		Expect(variant.Value).To(BeZero())

		architecture := fields[3]
		Expect(architecture.Value).To(Equal(uint64(0xF)))
		Expect(architecture.Description).
			To(Equal("Architectural features are individually identified"))

		partNum := fields[4]
		Expect(partNum.Low).To(Equal(uint(4)))
		Expect(partNum.High).To(Equal(uint(15)))
		Expect(partNum.Value).To(Equal(uint64(0xD03)))
		Expect(partNum.Description).To(Equal("Cortex-A53"))

		revision := fields[5]
		Expect(revision.Value).To(Equal(uint64(4)))
	})

	It("should leave unknown implementers undescribed", func() {
		fields, err := midr.Decode("0xaa0fd034")
		Expect(err).ToNot(HaveOccurred())

		implementer := fields[1]
		Expect(implementer.Value).To(Equal(uint64(0xAA)))
		Expect(implementer.Description).To(BeEmpty())

		// The part table only covers Arm Limited parts.
		partNum := fields[4]
		Expect(partNum.Description).To(BeEmpty())
	})

	It("should decode a Neoverse N1 MIDR", func() {
		fields, err := midr.Decode("0x414fd0c1")
		Expect(err).ToNot(HaveOccurred())
		Expect(fields[4].Description).To(Equal("Neoverse N1"))
		Expect(fields[2].Value).To(Equal(uint64(4)))
	})

	It("should produce identical trees for repeated decodes", func() {
		first, err := midr.Decode("0x410fd034")
		Expect(err).ToNot(HaveOccurred())
		second, err := midr.Decode("0x410fd034")
		Expect(err).ToNot(HaveOccurred())
		Expect(first).To(Equal(second))
	})

	It("should reject values wider than the register", func() {
		_, err := midr.Decode("0x10000000000000000")
		Expect(err).To(MatchError(regval.ErrValueTooLarge))
	})
})
