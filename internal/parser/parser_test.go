package parser_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/atomic-builder/internal/parser"
)

var _ = Describe("MarkdownParser", func() {
	var p *parser.MarkdownParser

	BeforeEach(func() {
		p = parser.NewMarkdownParser()
	})

	It("should support markdown extensions", func() {
		Expect(p.SupportedExtensions()).To(ConsistOf(".md", ".markdown"))
	})

	It("should extract tagged blocks with line and heading", func() {
		path := filepath.Join("..", "..", "testdata", "atomics", "README.md")
		content, err := os.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())

		blocks, err := p.Parse(path, content)
		Expect(err).ToNot(HaveOccurred())
		Expect(blocks).To(HaveLen(2))

		Expect(blocks[0].Context).To(Equal("Whoami"))
		Expect(blocks[0].LineNumber).To(Equal(8))
		Expect(string(blocks[0].Content)).To(HavePrefix("- name: Whoami\n"))

		Expect(blocks[1].Context).To(Equal("Id"))
		Expect(string(blocks[1].Content)).To(ContainSubstring("name: bash"))
	})

	It("should ignore untagged and empty blocks", func() {
		content := []byte("```yaml\na: 1\n```\n\n```atomic-yaml\n```\n\n    - name: indented\n")
		blocks, err := p.Parse("inline.md", content)
		Expect(err).ToNot(HaveOccurred())
		Expect(blocks).To(BeEmpty())
	})

	It("should match custom tags", func() {
		p = parser.NewMarkdownParser("redteam")
		content := []byte("# T\n\n```redteam\n- name: x\n```\n\n```atomic\n- name: y\n```\n")
		blocks, err := p.Parse("custom.md", content)
		Expect(err).ToNot(HaveOccurred())
		Expect(blocks).To(HaveLen(1))
		Expect(string(blocks[0].Content)).To(Equal("- name: x\n"))
		Expect(blocks[0].LineNumber).To(Equal(4))
	})
})

var _ = Describe("Registry", func() {
	It("should resolve parsers by extension in any case", func() {
		r := parser.NewDefaultRegistry()

		p, err := r.ParserFor(".MD")
		Expect(err).ToNot(HaveOccurred())
		Expect(p).To(BeAssignableToTypeOf(&parser.MarkdownParser{}))

		p, err = r.ParserFor("yml")
		Expect(err).ToNot(HaveOccurred())
		Expect(p).To(BeAssignableToTypeOf(&parser.YAMLParser{}))
	})

	It("should fail for unknown extensions", func() {
		_, err := parser.NewRegistry().ParserFor(".yaml")
		Expect(err).To(MatchError(ContainSubstring("no parser registered")))
	})

	It("should pass yaml through whole", func() {
		blocks, err := parser.NewYAMLParser().Parse("x.yaml", []byte("- name: x\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(blocks).To(Equal([]parser.Block{{Content: []byte("- name: x\n"), LineNumber: 1}}))
	})
})
