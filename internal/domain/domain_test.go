package domain_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/frherrer/atomic-builder/internal/domain"
)

var _ = Describe("Document", func() {
	It("should start from an empty template with non-nil lists", func() {
		t := domain.Template()
		Expect(t.Name).To(BeNil())
		Expect(t.SupportedPlatforms).ToNot(BeNil())
		Expect(t.SupportedPlatforms).To(BeEmpty())
		Expect(t.InputArguments).ToNot(BeNil())
		Expect(t.Dependencies).ToNot(BeNil())
		Expect(t.Executor.ElevationRequired).To(BeFalse())
	})

	It("should clone deeply", func() {
		doc := domain.Template()
		doc.Name = domain.StringPtr("original")
		doc.InputArguments = append(doc.InputArguments, domain.Argument{Name: "a", Default: domain.StringPtr("x")})
		doc.Executor.Command = domain.StringPtr("whoami")

		c := doc.Clone()
		*c.Name = "changed"
		*c.InputArguments[0].Default = "y"
		*c.Executor.Command = "id"
		c.SupportedPlatforms = append(c.SupportedPlatforms, "linux")

		Expect(*doc.Name).To(Equal("original"))
		Expect(*doc.InputArguments[0].Default).To(Equal("x"))
		Expect(*doc.Executor.Command).To(Equal("whoami"))
		Expect(doc.SupportedPlatforms).To(BeEmpty())
	})

	It("should keep nil lists nil when cloning", func() {
		c := domain.Document{}.Clone()
		Expect(c.InputArguments).To(BeNil())
		Expect(c.Dependencies).To(BeNil())
	})
})

var _ = Describe("Enumerations", func() {
	It("should normalize, dedupe and drop blank platforms", func() {
		Expect(domain.NormalizePlatforms([]string{"Windows", " linux", "WINDOWS", ""})).
			To(Equal([]string{"windows", "linux"}))
	})

	DescribeTable("IsPlatform",
		func(p string, expected bool) {
			Expect(domain.IsPlatform(p)).To(Equal(expected))
		},
		Entry("lower case", "linux", true),
		Entry("mixed case", "macOS", true),
		Entry("cloud", "iaas:aws", true),
		Entry("unknown", "plan9", false),
	)

	It("should recognise executors and argument types", func() {
		Expect(domain.IsExecutorName("command prompt")).To(BeTrue())
		Expect(domain.IsExecutorName("zsh")).To(BeFalse())
		Expect(domain.IsArgumentType("path")).To(BeTrue())
		Expect(domain.IsArgumentType("float")).To(BeFalse())
	})
})

var _ = Describe("ArgumentMap", func() {
	It("should keep key order through a decode/encode cycle", func() {
		src := "zeta:\n  type: string\nalpha:\n  type: path\n  default: /tmp\n"
		var m domain.ArgumentMap
		Expect(yaml.Unmarshal([]byte(src), &m)).To(Succeed())
		Expect(m).To(HaveLen(2))
		Expect(m[0].Name).To(Equal("zeta"))
		Expect(m[1].Name).To(Equal("alpha"))

		spec, ok := m.Lookup("alpha")
		Expect(ok).To(BeTrue())
		Expect(*spec.Default).To(Equal("/tmp"))

		out, err := yaml.Marshal(m)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(MatchRegexp(`(?s)^zeta:.*alpha:`))
	})

	It("should decode null as empty", func() {
		var m domain.ArgumentMap
		Expect(yaml.Unmarshal([]byte("null"), &m)).To(Succeed())
		Expect(m).To(BeEmpty())
	})

	It("should reject a sequence", func() {
		var m domain.ArgumentMap
		err := yaml.Unmarshal([]byte("- a\n- b\n"), &m)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("must be a mapping"))
	})
})

var _ = Describe("AtomicError", func() {
	It("should format phase, file, index and hint", func() {
		cause := errors.New("boom")
		err := domain.NewErrorWithSuggestion("load", "T1082.yaml", 2, "invalid test", "check it", cause)
		Expect(err.Error()).To(Equal("[load] T1082.yaml#2: invalid test: boom (hint: check it)"))
		Expect(errors.Is(err, cause)).To(BeTrue())
	})

	It("should omit empty parts", func() {
		err := domain.NewError("render", "", 0, "failed", nil)
		Expect(err.Error()).To(Equal("[render]: failed"))
	})
})
