package field_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/esrdec/field"
)

func TestField(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Field Suite")
}

var _ = Describe("Info", func() {
	It("should extract its value from the register", func() {
		// EC field of ESR 0x96000050
		f := field.New(0x96000050, "EC", "Exception Class", 26, 31)
		Expect(f.Value).To(Equal(uint64(0x25)))
		Expect(f.Width()).To(Equal(uint(6)))
	})

	It("should build single-bit fields with Low == High", func() {
		f := field.Bit(0x96000050, "IL", "Instruction Length", 25)
		Expect(f.Low).To(Equal(uint(25)))
		Expect(f.High).To(Equal(uint(25)))
		Expect(f.AsBit()).To(BeTrue())
	})

	It("should panic when AsBit is called on a wide field", func() {
		f := field.New(0, "EC", "", 26, 31)
		Expect(func() { f.AsBit() }).To(Panic())
	})

	Describe("value formatting", func() {
		It("should render single bits as true or false", func() {
			Expect(field.Bit(1, "B", "", 0).ValueString()).To(Equal("true"))
			Expect(field.Bit(0, "B", "", 0).ValueString()).To(Equal("false"))
		})

		It("should zero-pad hex to the field width", func() {
			f := field.New(0x50, "DFSC", "", 0, 5)
			Expect(f.ValueString()).To(Equal("0x10"))
			Expect(f.BinaryString()).To(Equal("0b010000"))
		})

		It("should pad wide fields to their full width", func() {
			f := field.New(0x50, "ISS", "", 0, 24)
			Expect(f.ValueString()).To(Equal("0x0000050"))
			Expect(f.BinaryString()).To(Equal("0b0000000000000000001010000"))
		})
	})

	Describe("descriptions", func() {
		It("should attach bit descriptions", func() {
			f := field.Bit(1<<25, "IL", "", 25).DescribeBit(func(b bool) string {
				if b {
					return "32-bit instruction trapped"
				}
				return "16-bit instruction trapped"
			})
			Expect(f.Description).To(Equal("32-bit instruction trapped"))
		})

		It("should leave unknown values undescribed", func() {
			f := field.New(0x3f, "DFSC", "", 0, 5).Describe(func(uint64) string {
				return ""
			})
			Expect(f.Description).To(BeEmpty())
		})
	})

	Describe("subfields", func() {
		It("should attach contained subfields in order", func() {
			parent := field.New(0x96000050, "ISS", "", 0, 24)
			a := field.Bit(0x50, "WnR", "", 6)
			b := field.New(0x50, "DFSC", "", 0, 5)
			parent = parent.WithSubfields(a, b)
			Expect(parent.Subfields).To(HaveLen(2))
			Expect(parent.Subfields[0].Name).To(Equal("WnR"))
		})

		It("should panic when a subfield escapes the parent range", func() {
			parent := field.New(0, "ISS", "", 0, 24)
			bad := field.New(0, "EC", "", 26, 31)
			Expect(func() { parent.WithSubfields(bad) }).To(Panic())
		})

		It("should panic when sibling subfields overlap", func() {
			parent := field.New(0, "ISS", "", 0, 24)
			a := field.New(0, "A", "", 0, 5)
			b := field.New(0, "B", "", 5, 9)
			Expect(func() { parent.WithSubfields(a, b) }).To(Panic())
		})
	})
})
