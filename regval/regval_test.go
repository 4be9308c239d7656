package regval_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/esrdec/regval"
)

func TestRegval(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Regval Suite")
}

var _ = Describe("Parse", func() {
	It("should parse decimal", func() {
		v, err := regval.Parse("12345", 64)
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Bits).To(Equal(uint64(12345)))
		Expect(v.Width).To(Equal(uint(64)))
	})

	It("should parse 0x-prefixed hexadecimal", func() {
		v, err := regval.Parse("0x123abc", 64)
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Bits).To(Equal(uint64(0x123abc)))
	})

	It("should trim surrounding whitespace", func() {
		v, err := regval.Parse("  0x41 \n", 64)
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Bits).To(Equal(uint64(0x41)))
	})

	It("should reject text that is not a number", func() {
		_, err := regval.Parse("123abc", 64)
		Expect(err).To(MatchError(regval.ErrInvalidFormat))
	})

	It("should reject empty input", func() {
		_, err := regval.Parse("", 64)
		Expect(err).To(MatchError(regval.ErrInvalidFormat))
	})

	It("should reject decimals beyond 64 bits as too large", func() {
		_, err := regval.Parse("99999999999999999999", 64)
		Expect(err).To(MatchError(regval.ErrValueTooLarge))
	})

	It("should reject values with bits above the declared width", func() {
		_, err := regval.Parse("0x100000000", 32)
		Expect(err).To(MatchError(regval.ErrValueTooLarge))
	})

	It("should accept the widest value that fits", func() {
		v, err := regval.Parse("0xffffffff", 32)
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Bits).To(Equal(uint64(0xffffffff)))
	})
})

var _ = Describe("Extract", func() {
	It("should extract and right-shift a bit range", func() {
		// EC field of ESR 0x96000050: bits [26..31] == 0b100101
		Expect(regval.Extract(0x96000050, 26, 31)).To(Equal(uint64(0x25)))
	})

	It("should extract a single bit", func() {
		Expect(regval.Extract(0x96000050, 25, 25)).To(Equal(uint64(1)))
		Expect(regval.Extract(0x96000050, 24, 24)).To(Equal(uint64(0)))
	})

	It("should extract the full 64-bit range", func() {
		Expect(regval.Extract(0xfedcba9876543210, 0, 63)).
			To(Equal(uint64(0xfedcba9876543210)))
	})

	It("should match the shift-and-mask identity", func() {
		values := []uint64{0, 1, 0x96000050, 0x410fd034, 0xfedcba9876543210}
		for _, v := range values {
			for lo := uint(0); lo < 64; lo += 7 {
				for hi := lo; hi < 64; hi += 5 {
					want := (v >> lo) & ((1 << (hi - lo + 1)) - 1)
					if hi-lo+1 == 64 {
						want = v
					}
					Expect(regval.Extract(v, lo, hi)).To(Equal(want))
				}
			}
		}
	})

	It("should panic on an inverted range", func() {
		Expect(func() { regval.Extract(0, 5, 4) }).To(Panic())
	})

	It("should panic on a range beyond 64 bits", func() {
		Expect(func() { regval.Extract(0, 60, 64) }).To(Panic())
	})
})
