package names_test

import (
	. "github.com/dnskit/dnskit/src/dnskit/names"
	"github.com/miekg/dns"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parse (miekg/dns parity)", func() {
	It("produces names accepted by the reference implementation", func() {
		for _, s := range []string{
			"google.com",
			"www.google.com.",
			"blog.bbc.co.uk",
			"தமிழ்.wellsfargo.com",
		} {
			n, err := Parse(s)
			Expect(err).ShouldNot(HaveOccurred())

			_, ok := dns.IsDomainName(n.ASCII())
			Expect(ok).To(BeTrue())
		}
	})

	It("agrees with the reference implementation about absolute names", func() {
		n := MustParse(dns.Fqdn("google.com"))

		Expect(n.ASCII()).To(Equal("google.com."))
		Expect(n.IsAbsolute()).To(BeTrue())
	})
})
