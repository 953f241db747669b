package names_test

import (
	"fmt"

	. "github.com/dnskit/dnskit/src/dnskit/names"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Label", func() {
	It("compares byte-wise", func() {
		labels := MustParse("alpha.beta").Labels()

		Expect(labels[0].Compare(labels[1])).To(Equal(-1))
		Expect(labels[1].Compare(labels[0])).To(Equal(1))
		Expect(labels[0].Compare(labels[0])).To(Equal(0))
		Expect(labels[0]).NotTo(Equal(labels[1]))
	})

	Describe("String", func() {
		It("renders ASCII labels unchanged", func() {
			labels := MustParse("google.com").Labels()
			Expect(labels[0].String()).To(Equal("google"))
		})

		It("renders punycode labels in their Unicode form", func() {
			labels := MustParse("தமிழ்.wellsfargo.com").Labels()
			Expect(labels[0].String()).To(Equal("தமிழ்"))
		})
	})

	Describe("GoString", func() {
		It("wraps the decoded label in a debugging marker", func() {
			labels := MustParse("google.com").Labels()
			Expect(fmt.Sprintf("%#v", labels[0])).To(Equal("Label(google)"))
		})
	})
})
