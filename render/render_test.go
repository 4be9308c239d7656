package render_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/esrdec/esr"
	"github.com/sarchlab/esrdec/field"
	"github.com/sarchlab/esrdec/regval"
	"github.com/sarchlab/esrdec/render"
	"github.com/sarchlab/esrdec/smccc"
)

func TestRender(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Render Suite")
}

var _ = Describe("Report", func() {
	It("should render a full data abort report", func() {
		v, err := regval.Parse("0x96000050", esr.Width)
		Expect(err).ToNot(HaveOccurred())
		fields := esr.DecodeValue(v)

		want := strings.Join([]string{
			"ESR 0x0000000096000050:",
			"37..63 RES0: 0x0000000 0b000000000000000000000000000",
			"32..36 ISS2: 0x00 0b00000",
			"26..31 EC: 0x25 0b100101",
			"  # Data Abort taken without a change in Exception level",
			"25     IL: true",
			"  # 32-bit instruction trapped",
			"00..24 ISS: 0x0000050 0b0000000000000000001010000",
			"  24     ISV: false",
			"    # No valid instruction syndrome",
			"  14..23 RES0: 0x000 0b0000000000",
			"  13     VNCR: false",
			"  11..12 SET: 0x0 0b00",
			"    # Recoverable state (UER)",
			"  10     FnV: false",
			"    # FAR is valid",
			"  09     EA: false",
			"  08     CM: false",
			"  07     S1PTW: false",
			"  06     WnR: true",
			"    # Abort caused by writing to memory",
			"  00..05 DFSC: 0x10 0b010000",
			"    # Synchronous External abort, not on translation table walk " +
				"or hardware update of translation table.",
			"",
		}, "\n")

		Expect(render.Report("ESR", v, fields, false)).To(Equal(want))
	})

	It("should pad the header to the register width", func() {
		v, err := regval.Parse("0x84000000", smccc.Width)
		Expect(err).ToNot(HaveOccurred())
		fields := smccc.DecodeValue(v)

		report := render.Report("SMCCC", v, fields, false)
		Expect(report).To(HavePrefix("SMCCC 0x84000000:\n"))
	})

	It("should substitute long names when requested", func() {
		v, err := regval.Parse("0x96000050", esr.Width)
		Expect(err).ToNot(HaveOccurred())
		fields := esr.DecodeValue(v)

		lines := render.Lines(fields, true)
		Expect(lines).To(ContainElement("26..31 Exception Class: 0x25 0b100101"))
		Expect(lines).To(ContainElement(
			"00..24 Instruction Specific Syndrome: 0x0000050 0b0000000000000000001010000"))
		// ISS2 has no long form and keeps its short name.
		Expect(lines).To(ContainElement("32..36 ISS2: 0x00 0b00000"))
	})

	It("should render values that parse back to the field value", func() {
		v, err := regval.Parse("0x97523050", esr.Width)
		Expect(err).ToNot(HaveOccurred())

		var check func(fields []field.Info)
		check = func(fields []field.Info) {
			for _, f := range fields {
				if f.Width() > 1 {
					parsed, err := regval.Parse(f.ValueString(), 64)
					Expect(err).ToNot(HaveOccurred())
					Expect(parsed.Bits).To(Equal(f.Value))
				}
				check(f.Subfields)
			}
		}
		check(esr.DecodeValue(v))
	})
})
