package normalize_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"

	"github.com/frherrer/atomic-builder/internal/codec"
	"github.com/frherrer/atomic-builder/internal/domain"
	"github.com/frherrer/atomic-builder/internal/normalize"
)

const hostnameDiscovery = `- name: Hostname Discovery
  description: desc
  supported_platforms: [windows]
  input_arguments: {}
  dependency_executor_name: null
  dependencies: []
  executor:
    command: "hostname\n"
    cleanup_command: null
    name: command prompt
    elevation_required: false
`

func prune(src string) string {
	var n yaml.Node
	Expect(yaml.Unmarshal([]byte(src), &n)).To(Succeed())
	out := normalize.Prune(&n)
	if out == nil {
		return ""
	}
	b, err := yaml.Marshal(out)
	Expect(err).ToNot(HaveOccurred())
	return string(b)
}

var _ = Describe("Prune", func() {
	DescribeTable("removes empty values",
		func(src, expected string) {
			Expect(prune(src)).To(Equal(expected))
		},
		Entry("null and empty string keys", "a: null\nb: ''\nc: x\n", "c: x\n"),
		Entry("empty collections", "a: []\nb: {}\nc: 1\n", "c: 1\n"),
		Entry("collections emptied by pruning", "a: {b: null}\nc: [null, '']\nd: ok\n", "d: ok\n"),
		Entry("absent sequence items", "- null\n- x\n- ''\n", "- x\n"),
		Entry("empty nested sequences", "- []\n- [a]\n", "- - a\n"),
		Entry("false and zero stay", "a: false\nb: 0\n", "a: false\nb: 0\n"),
	)

	It("should keep empty mappings inside sequences", func() {
		Expect(prune("- {}\n- a: 1\n")).To(Equal("- {}\n- a: 1\n"))
	})

	It("should not modify its input", func() {
		var n yaml.Node
		Expect(yaml.Unmarshal([]byte("a: null\nb: x\n"), &n)).To(Succeed())
		normalize.Prune(&n)
		Expect(n.Content[0].Content).To(HaveLen(4))
	})

	It("should return nil for nil", func() {
		Expect(normalize.Prune(nil)).To(BeNil())
	})
})

var _ = Describe("Renderer", func() {
	It("should drop every empty key of a loaded test", func() {
		src, err := codec.Decode([]byte(hostnameDiscovery))
		Expect(err).ToNot(HaveOccurred())
		doc, err := src.Load(0)
		Expect(err).ToNot(HaveOccurred())
		Expect(doc.InputArguments).To(BeEmpty())

		out, err := normalize.Render(doc)
		Expect(err).ToNot(HaveOccurred())
		s := string(out)
		Expect(s).To(HavePrefix("- name: Hostname Discovery\n"))
		Expect(s).To(ContainSubstring("  description: desc\n"))
		Expect(s).To(ContainSubstring("- windows\n"))
		Expect(s).ToNot(ContainSubstring("input_arguments"))
		Expect(s).ToNot(ContainSubstring("dependency_executor_name"))
		Expect(s).ToNot(ContainSubstring("dependencies"))
		Expect(s).ToNot(ContainSubstring("cleanup_command"))
		Expect(s).ToNot(ContainSubstring("elevation_required"))
		Expect(s).To(HaveSuffix("  executor:\n    command: |\n      hostname\n    name: command prompt\n"))
	})

	It("should render the empty template as a single empty mapping", func() {
		out, err := normalize.Render(domain.Template())
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(Equal(normalize.EmptyOutput))
		Expect(normalize.IsEmpty(out)).To(BeTrue())
	})

	It("should emit input arguments as a mapping in list order", func() {
		doc := domain.Template()
		doc.Name = domain.StringPtr("Args")
		doc.InputArguments = []domain.Argument{
			{Name: "zeta", Type: "string", Default: domain.StringPtr("z"), Description: domain.StringPtr("")},
			{Name: "alpha", Type: "path"},
		}
		out, err := normalize.Render(doc)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(Equal("- name: Args\n" +
			"  input_arguments:\n" +
			"    zeta:\n" +
			"      type: string\n" +
			"      default: z\n" +
			"    alpha:\n" +
			"      type: path\n"))
	})

	It("should keep elevation when required", func() {
		doc := domain.Template()
		doc.Executor = domain.Executor{Name: "sh", ElevationRequired: true}
		out, err := normalize.Render(doc)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(ContainSubstring("elevation_required: true"))
	})

	It("should never wrap long lines", func() {
		long := "echo " + strings.Repeat("word ", 40)
		doc := domain.Template()
		doc.Executor = domain.Executor{Name: "sh", Command: domain.StringPtr(long + "end")}
		out, err := normalize.Render(doc)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(ContainSubstring(long + "end\n"))
	})

	It("should fail on duplicate argument names", func() {
		doc := domain.Template()
		doc.InputArguments = []domain.Argument{{Name: "a"}, {Name: "a"}}
		_, err := normalize.Render(doc)
		Expect(err).To(HaveOccurred())
	})

	It("should honour the configured indent", func() {
		doc := domain.Template()
		doc.Executor = domain.Executor{Name: "sh"}
		out, err := normalize.NewRenderer(4).Render(doc)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(ContainSubstring("        name: sh\n"))
	})

	It("should be idempotent", func() {
		src, err := codec.Decode([]byte(hostnameDiscovery))
		Expect(err).ToNot(HaveOccurred())
		doc, err := src.Load(0)
		Expect(err).ToNot(HaveOccurred())

		once, err := normalize.Render(doc)
		Expect(err).ToNot(HaveOccurred())
		twice, err := normalize.Normalize(once)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(twice)).To(Equal(string(once)))
	})

	It("should reject normalizing a non-list", func() {
		_, err := normalize.Normalize([]byte("name: x\n"))
		Expect(err).To(HaveOccurred())
	})
})

// fullDocument sets every field of a Document, with text in each string slot.
func fullDocument(text string) domain.Document {
	doc := domain.Template()
	doc.Name = domain.StringPtr("Every field")
	doc.Description = domain.StringPtr(text)
	doc.SupportedPlatforms = []string{"linux", "macos"}
	doc.InputArguments = []domain.Argument{
		{Name: "target", Type: "string", Default: domain.StringPtr(text), Description: domain.StringPtr("Host to query")},
		{Name: "port", Type: "integer", Default: domain.StringPtr("22"), Description: domain.StringPtr(text)},
	}
	doc.DependencyExecutorName = domain.StringPtr("sh")
	doc.Dependencies = []domain.Dependency{{
		Description:      text,
		PrereqCommand:    text,
		GetPrereqCommand: domain.StringPtr(text),
	}}
	doc.Executor = domain.Executor{
		Command:           domain.StringPtr(text),
		CleanupCommand:    domain.StringPtr(text),
		Name:              "bash",
		ElevationRequired: true,
	}
	return doc
}

func reload(out []byte) domain.Document {
	src, err := codec.Decode(out)
	Expect(err).ToNot(HaveOccurred())
	doc, err := src.Load(0)
	Expect(err).ToNot(HaveOccurred())
	return doc
}

var _ = Describe("Render round trip", func() {
	DescribeTable("loads back the document it rendered",
		func(text string) {
			doc := fullDocument(text)
			out, err := normalize.Render(doc)
			Expect(err).ToNot(HaveOccurred())

			back := reload(out)
			Expect(cmp.Diff(doc, back, cmpopts.EquateEmpty())).To(BeEmpty())

			again, err := normalize.Normalize(out)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(again)).To(Equal(string(out)))
		},
		Entry("plain word", "hostname"),
		Entry("multi-line script", "if true; then\n  echo hi\nfi\n"),
		Entry("no trailing newline", "first\nsecond"),
		Entry("indented first line", "  leading\nx\n"),
		Entry("single indented line", "  leading"),
		Entry("tab first", "\ttab first\n"),
		Entry("tab inside", "echo a\n\techo b\n"),
		Entry("comment marker", "a: b # not a comment"),
		Entry("null lookalike", "null"),
		Entry("number lookalike", "123"),
		Entry("trailing spaces", "echo hi   \n"),
		Entry("carriage return", "echo a\r\necho b\r\n"),
		Entry("unicode", "écho ✓\n"),
		Entry("placeholder", "ls #{target} > /dev/null\n"),
	)

	It("should double quote strings that start indented", func() {
		doc := domain.Template()
		doc.Executor = domain.Executor{Name: "sh", Command: domain.StringPtr("  indented\nx\n")}
		out, err := normalize.Render(doc)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(ContainSubstring(`command: "  indented\nx\n"`))
	})

	It("should keep integer defaults unquoted", func() {
		doc := fullDocument("x")
		out, err := normalize.Render(doc)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(ContainSubstring("default: 22\n"))
		Expect(*reload(out).InputArguments[1].Default).To(Equal("22"))
	})

	It("should quote non-numeric defaults of integer arguments", func() {
		doc := domain.Template()
		doc.InputArguments = []domain.Argument{{Name: "n", Type: "integer", Default: domain.StringPtr("0x1F")}}
		out, err := normalize.Render(doc)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(ContainSubstring(`default: "0x1F"`))
	})
})
