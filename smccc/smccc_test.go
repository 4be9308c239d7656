package smccc_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/esrdec/field"
	"github.com/sarchlab/esrdec/regval"
	"github.com/sarchlab/esrdec/smccc"
)

func TestSMCCC(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SMCCC Suite")
}

func byName(fields []field.Info, name string) field.Info {
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	Fail("no field named " + name)
	return field.Info{}
}

var _ = Describe("Decode", func() {
	It("should decode a standard secure service fast call", func() {
		// PSCI_VERSION: fast call, SMC32, service 0x04, function 0
		fields, err := smccc.Decode("0x84000000")
		Expect(err).ToNot(HaveOccurred())

		callType := byName(fields, "Call Type")
		Expect(callType.Low).To(Equal(uint(31)))
		Expect(callType.Value).To(Equal(uint64(1)))
		Expect(callType.Description).To(Equal("Fast Call"))

		convention := byName(fields, "Call Convention")
		Expect(convention.Description).To(Equal("SMC32/HVC32"))

		service := byName(fields, "Service Call")
		Expect(service.Low).To(Equal(uint(24)))
		Expect(service.High).To(Equal(uint(29)))
		Expect(service.Value).To(Equal(uint64(0x04)))
		Expect(service.Description).To(Equal("Standard Secure Service Call"))

		function := byName(fields, "Function Number")
		Expect(function.Low).To(Equal(uint(0)))
		Expect(function.High).To(Equal(uint(15)))
		Expect(function.Value).To(BeZero())
		Expect(function.Description).
			To(Equal("PSCI Call (Power Secure Control Interface)"))
	})

	It("should name the Arm architecture queries", func() {
		fields, err := smccc.Decode("0x80000000")
		Expect(err).ToNot(HaveOccurred())
		Expect(byName(fields, "Service Call").Description).
			To(Equal("Arm Architecture Call"))
		Expect(byName(fields, "Function Number").Description).
			To(Equal("SMCCC_VERSION"))
	})

	It("should name the Spectre workaround call", func() {
		fields, err := smccc.Decode("0x80008000")
		Expect(err).ToNot(HaveOccurred())
		Expect(byName(fields, "Function Number").Description).
			To(Equal("SMCCC_ARCH_WORKAROUND_1"))
	})

	It("should name FF-A function IDs", func() {
		fields, err := smccc.Decode("0x84000063")
		Expect(err).ToNot(HaveOccurred())
		Expect(byName(fields, "Function Number").Description).
			To(Equal("FFA_VERSION_32"))
	})

	It("should distinguish SMC64 FF-A encodings", func() {
		fields, err := smccc.Decode("0xc4000066")
		Expect(err).ToNot(HaveOccurred())
		Expect(byName(fields, "Call Convention").Description).
			To(Equal("SMC64/HVC64"))
		Expect(byName(fields, "Function Number").Description).
			To(Equal("FFA_RXTX_MAP_64"))
	})

	It("should decode yielding calls as a single service range", func() {
		fields, err := smccc.Decode("0x02000001")
		Expect(err).ToNot(HaveOccurred())

		callType := byName(fields, "Call Type")
		Expect(callType.Value).To(BeZero())
		Expect(callType.Description).To(Equal("Yielding Call"))

		serviceType := byName(fields, "Service Type")
		Expect(serviceType.Description).To(Equal("Trusted OS Yielding Calls"))
	})

	It("should leave unknown function numbers undescribed", func() {
		// SiP service call with a vendor-defined function number
		fields, err := smccc.Decode("0x82001234")
		Expect(err).ToNot(HaveOccurred())
		Expect(byName(fields, "Service Call").Description).
			To(Equal("SiP Service Call"))
		Expect(byName(fields, "Function Number").Description).To(BeEmpty())
	})

	It("should reject values wider than 32 bits", func() {
		_, err := smccc.Decode("0x100000000")
		Expect(err).To(MatchError(regval.ErrValueTooLarge))
	})

	It("should produce identical trees for repeated decodes", func() {
		first, err := smccc.Decode("0x84000000")
		Expect(err).ToNot(HaveOccurred())
		second, err := smccc.Decode("0x84000000")
		Expect(err).ToNot(HaveOccurred())
		Expect(first).To(Equal(second))
	})
})
