package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/frherrer/atomic-builder/internal/domain"
)

//go:embed templates/*.tmpl
var builtin embed.FS

// DefaultTemplate is the template used when none is selected.
const DefaultTemplate = "atomic_markdown"

// TemplateEngine renders Documents into text reports.
type TemplateEngine interface {
	Render(doc domain.Document, templateName string) (string, error)
	ListTemplates() []string
}

// templateData is the struct passed to templates.
type templateData struct {
	Name               string
	Description        string
	Platforms          []string
	Arguments          []argumentData
	Executor           string
	ElevationRequired  bool
	Command            string
	CleanupCommand     string
	DependencyExecutor string
	Dependencies       []dependencyData
}

type argumentData struct {
	Name        string
	Description string
	Type        string
	Default     string
}

type dependencyData struct {
	Description      string
	PrereqCommand    string
	GetPrereqCommand string
}

// DefaultEngine implements TemplateEngine.
type DefaultEngine struct {
	templates   map[string]*template.Template
	defaultName string
}

// NewEngine creates a template engine from the built-in templates, adding
// (or overriding) any .tmpl files found in templateDir when it is set.
func NewEngine(templateDir string, defaultTemplate string) (*DefaultEngine, error) {
	if defaultTemplate == "" {
		defaultTemplate = DefaultTemplate
	}
	engine := &DefaultEngine{
		templates:   make(map[string]*template.Template),
		defaultName: defaultTemplate,
	}

	sub, err := fs.Sub(builtin, "templates")
	if err != nil {
		return nil, domain.NewError("template", "templates", 0, "failed to open built-in templates", err)
	}
	if err := engine.loadTemplates(sub, "templates"); err != nil {
		return nil, err
	}
	if templateDir != "" {
		if err := engine.loadTemplates(os.DirFS(templateDir), templateDir); err != nil {
			return nil, err
		}
	}

	if _, ok := engine.templates[defaultTemplate]; !ok {
		return nil, domain.NewError("template", templateDir, 0,
			fmt.Sprintf("default template %q not found (available: %s)", defaultTemplate, strings.Join(engine.ListTemplates(), ", ")), nil)
	}
	return engine, nil
}

// loadTemplates reads all .tmpl files from fsys.
func (e *DefaultEngine) loadTemplates(fsys fs.FS, label string) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return domain.NewError("template", label, 0, "failed to read template directory", err)
	}

	funcMap := CustomFuncMap()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		p := path.Join(label, entry.Name())
		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return domain.NewError("template", p, 0, "failed to read template file", err)
		}

		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		tmpl, err := template.New(name).Funcs(funcMap).Parse(string(content))
		if err != nil {
			return domain.NewError("template", p, 0, "failed to parse template", err)
		}

		e.templates[name] = tmpl
	}

	return nil
}

// Render renders doc with the named template, or the default one when
// templateName is empty.
func (e *DefaultEngine) Render(doc domain.Document, templateName string) (string, error) {
	tmplName := e.defaultName
	if templateName != "" {
		tmplName = templateName
	}

	tmpl, ok := e.templates[tmplName]
	if !ok {
		return "", domain.NewError("template", "", 0,
			fmt.Sprintf("template %q not found (available: %s)", tmplName, strings.Join(e.ListTemplates(), ", ")), nil)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newTemplateData(doc)); err != nil {
		return "", domain.NewError("template", tmplName, 0, "failed to execute template", err)
	}
	return buf.String(), nil
}

// ListTemplates returns the sorted names of all loaded templates.
func (e *DefaultEngine) ListTemplates() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newTemplateData(doc domain.Document) templateData {
	data := templateData{
		Name:               domain.StringValue(doc.Name),
		Description:        domain.StringValue(doc.Description),
		Platforms:          doc.SupportedPlatforms,
		Executor:           doc.Executor.Name,
		ElevationRequired:  doc.Executor.ElevationRequired,
		Command:            domain.StringValue(doc.Executor.Command),
		CleanupCommand:     domain.StringValue(doc.Executor.CleanupCommand),
		DependencyExecutor: domain.StringValue(doc.DependencyExecutorName),
	}
	// Dependencies inherit the attack executor when none is selected.
	if data.DependencyExecutor == "" {
		data.DependencyExecutor = data.Executor
	}
	for _, a := range doc.InputArguments {
		data.Arguments = append(data.Arguments, argumentData{
			Name:        a.Name,
			Description: domain.StringValue(a.Description),
			Type:        a.Type,
			Default:     domain.StringValue(a.Default),
		})
	}
	for _, d := range doc.Dependencies {
		data.Dependencies = append(data.Dependencies, dependencyData{
			Description:      d.Description,
			PrereqCommand:    d.PrereqCommand,
			GetPrereqCommand: domain.StringValue(d.GetPrereqCommand),
		})
	}
	return data
}
