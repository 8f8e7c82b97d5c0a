package uri_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/PLeVasseur/up-go/uri"
)

var _ = Describe("Authority", Label("uri", "authority"), func() {
	Describe("micro form validation", Label("micro"), func() {
		DescribeTable("validating",
			// region
			func(auth *uri.Authority, reasons ...string) {
				err := auth.ValidateMicroForm()
				if len(reasons) == 0 {
					Expect(err).ToNot(HaveOccurred())
					return
				}
				Expect(err).To(HaveOccurred())
				var verr *uri.ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue(), "assert error is *uri.ValidationError")
				for _, reason := range reasons {
					Expect(err.Error()).To(ContainSubstring(reason))
				}
			},
			Entry("loopback IPv4", uri.NewAuthority().SetIP([]byte{127, 0, 0, 1})),
			Entry("IPv4", uri.NewAuthority().SetIP([]byte{192, 0, 2, 1})),
			Entry("zero IPv6", uri.NewAuthority().SetIP(make([]byte, 16))),
			Entry("empty IP", uri.NewAuthority().SetIP([]byte{}), "IPv4", "IPv6"),
			Entry("nil IP", uri.NewAuthority().SetIP(nil), "IPv4", "IPv6"),
			Entry("3 byte IP", uri.NewAuthority().SetIP([]byte{10, 0, 0}), "IPv4", "IPv6"),
			Entry("5 byte IP", uri.NewAuthority().SetIP([]byte{10, 0, 0, 1, 1}), "IPv4", "IPv6"),
			Entry("15 byte IP", uri.NewAuthority().SetIP(make([]byte, 15)), "IPv4", "IPv6"),
			Entry("17 byte IP", uri.NewAuthority().SetIP(make([]byte, 17)), "IPv4", "IPv6"),
			Entry("20 byte IP", uri.NewAuthority().SetIP(make([]byte, 20)), "IPv4", "IPv6"),
			Entry("1 byte ID", uri.NewAuthority().SetID([]byte{0x01})),
			Entry("2 byte ID", uri.NewAuthority().SetID([]byte{0xde, 0xad})),
			Entry("255 byte ID", uri.NewAuthority().SetID(bytes.Repeat([]byte{0xff}, 255))),
			Entry("empty ID", uri.NewAuthority().SetID([]byte{}), "bytes allocated"),
			Entry("nil ID", uri.NewAuthority().SetID(nil), "bytes allocated"),
			Entry("256 byte ID", uri.NewAuthority().SetID(make([]byte, 256)), "bytes allocated"),
			Entry("name", uri.NewAuthority().SetName("vehicle/engine"), "IP address or ID"),
			Entry("empty name", uri.NewAuthority().SetName(""), "IP address or ID"),
			Entry("no remote", uri.NewAuthority(), "no remote"),
			Entry("nil authority", (*uri.Authority)(nil), "no remote"),
			Entry("name replaced by IPv4", uri.NewAuthority().SetName("vcu").SetIP([]byte{192, 0, 2, 1})),
			// endregion
		)

		It("never mutates the authority", func() {
			auth := uri.NewAuthority().SetIP([]byte{10, 0, 0})
			before := auth.Clone()

			Expect(auth.ValidateMicroForm()).To(HaveOccurred())
			Expect(auth.Equal(before)).To(BeTrue())
		})
	})

	Describe("merging validation errors", func() {
		It("joins reasons comma separated in insertion order", func() {
			err := uri.MergeValidationErrors(
				uri.NewValidationError("first reason"),
				nil,
				uri.NewValidationError("second reason"),
			)
			Expect(err).To(MatchError("first reason, second reason"))
		})

		It("returns nil without reasons", func() {
			Expect(uri.MergeValidationErrors()).To(BeNil())
			Expect(uri.MergeValidationErrors(nil, nil)).To(BeNil())
		})

		It("keeps a single reason as is", func() {
			err := uri.MergeValidationErrors(uri.NewValidationError("only reason"))
			Expect(err).To(MatchError("only reason"))
		})
	})
})
