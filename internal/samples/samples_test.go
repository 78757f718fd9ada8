package samples_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/atomic-builder/internal/normalize"
	"github.com/frherrer/atomic-builder/internal/samples"
	"github.com/frherrer/atomic-builder/internal/validate"
)

var _ = Describe("Samples", func() {
	DescribeTable("every bundled sample loads, validates and renders",
		func(name string) {
			doc, err := samples.Load(name)
			Expect(err).ToNot(HaveOccurred())
			Expect(doc.Name).ToNot(BeNil())
			Expect(validate.Document(doc)).To(BeEmpty())

			out, err := normalize.Render(doc)
			Expect(err).ToNot(HaveOccurred())
			Expect(normalize.IsEmpty(out)).To(BeFalse())
		},
		Entry("basic", "basic"),
		Entry("moderate", "moderate"),
		Entry("complex", "complex"),
	)

	It("should load the complex sample with ordered arguments and dependencies", func() {
		doc, err := samples.Load("complex")
		Expect(err).ToNot(HaveOccurred())
		Expect(doc.InputArguments).To(HaveLen(5))
		Expect(doc.InputArguments[0].Name).To(Equal("username"))
		Expect(doc.Dependencies).ToNot(BeEmpty())
		Expect(*doc.DependencyExecutorName).To(Equal("powershell"))
	})

	It("should reject unknown samples", func() {
		_, err := samples.Raw("nope")
		Expect(err).To(MatchError(ContainSubstring("unknown sample")))
	})
})
