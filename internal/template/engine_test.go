package template_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/atomic-builder/internal/domain"
	"github.com/frherrer/atomic-builder/internal/samples"
	tmpl "github.com/frherrer/atomic-builder/internal/template"
)

var _ = Describe("TemplateEngine", func() {
	var engine *tmpl.DefaultEngine

	BeforeEach(func() {
		var err error
		engine, err = tmpl.NewEngine("", "")
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("ListTemplates", func() {
		It("should list the built-in templates", func() {
			Expect(engine.ListTemplates()).To(Equal([]string{"atomic_markdown", "atomic_summary"}))
		})
	})

	Describe("Render", func() {
		It("should render the complex sample as markdown", func() {
			doc, err := samples.Load("complex")
			Expect(err).ToNot(HaveOccurred())

			result, err := engine.Render(doc, "")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HavePrefix("## Atomic Test: Windows push file using scp.exe\n"))
			Expect(result).To(ContainSubstring("**Supported Platforms:** windows"))
			Expect(result).To(ContainSubstring("| username | User account to authenticate on remote host | string | adversary |"))
			Expect(result).To(ContainSubstring("Run with `powershell`! Elevation Required"))
			Expect(result).To(ContainSubstring("```powershell\n"))
			Expect(result).To(ContainSubstring("#### Cleanup Commands:"))
			Expect(result).To(ContainSubstring("#### Dependencies:  Run with `powershell`!"))
			Expect(result).To(ContainSubstring("##### Get Prereq Commands:"))
		})

		It("should omit empty sections", func() {
			doc, err := samples.Load("basic")
			Expect(err).ToNot(HaveOccurred())

			result, err := engine.Render(doc, tmpl.DefaultTemplate)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(ContainSubstring("```cmd\nhostname\n```"))
			Expect(result).ToNot(ContainSubstring("#### Inputs:"))
			Expect(result).ToNot(ContainSubstring("#### Cleanup Commands:"))
			Expect(result).ToNot(ContainSubstring("#### Dependencies:"))
			Expect(result).ToNot(ContainSubstring("Elevation Required"))
		})

		It("should let dependencies inherit the attack executor", func() {
			doc := domain.Template()
			doc.Name = domain.StringPtr("Deps")
			doc.Executor = domain.Executor{Name: "bash", Command: domain.StringPtr("true")}
			doc.Dependencies = []domain.Dependency{{Description: "git", PrereqCommand: "which git"}}

			result, err := engine.Render(doc, "")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(ContainSubstring("#### Dependencies:  Run with `bash`!"))
			Expect(result).To(ContainSubstring("```bash\nwhich git\n```"))
			Expect(result).ToNot(ContainSubstring("##### Get Prereq Commands:"))
		})

		It("should escape table cells", func() {
			doc := domain.Template()
			doc.InputArguments = []domain.Argument{{
				Name:        "pipe",
				Type:        "string",
				Description: domain.StringPtr("a|b\nc"),
			}}
			result, err := engine.Render(doc, "")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(ContainSubstring(`| pipe | a\|b<br>c | string |  |`))
		})

		It("should render the summary template", func() {
			doc, err := samples.Load("complex")
			Expect(err).ToNot(HaveOccurred())
			result, err := engine.Render(doc, "atomic_summary")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal("- Windows push file using scp.exe [windows] (powershell, elevated) inputs: 5 dependencies: 1\n"))
		})

		It("should fail for an unknown template", func() {
			_, err := engine.Render(domain.Template(), "nonexistent")
			Expect(err).To(MatchError(ContainSubstring(`template "nonexistent" not found`)))
		})
	})

	Describe("NewEngine", func() {
		templates := filepath.Join("..", "..", "testdata", "templates")

		It("should add and override templates from a directory", func() {
			engine, err := tmpl.NewEngine(templates, "atomic_oneline")
			Expect(err).ToNot(HaveOccurred())
			Expect(engine.ListTemplates()).To(ConsistOf("atomic_markdown", "atomic_oneline", "atomic_summary"))

			doc := domain.Template()
			doc.Name = domain.StringPtr("Custom")
			doc.Executor.Name = "sh"

			result, err := engine.Render(doc, "")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal("Custom|sh|0\n"))

			result, err = engine.Render(doc, "atomic_markdown")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal("# Custom (custom)\n"))
		})

		It("should fail when the default template is missing", func() {
			_, err := tmpl.NewEngine("", "missing")
			Expect(err).To(HaveOccurred())
		})

		It("should fail for a missing directory", func() {
			_, err := tmpl.NewEngine(filepath.Join(templates, "missing"), "")
			Expect(err).To(HaveOccurred())
		})
	})
})
