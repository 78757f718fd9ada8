package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/frherrer/atomic-builder/internal/domain"
	"github.com/frherrer/atomic-builder/internal/normalize"
	tmpl "github.com/frherrer/atomic-builder/internal/template"
)

// ErrNameRequired is returned when a file name cannot be derived.
var ErrNameRequired = errors.New("name is required to download the file")

// ErrUnsafeName is returned when a test name would leave the output directory.
var ErrUnsafeName = errors.New("name must not contain path separators or \"..\"")

// Format selects the export representation.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the supported formats.
var Formats = []Format{FormatYAML, FormatMarkdown, FormatHTML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (available: yaml, markdown, html)", s)
}

// Exporter renders Documents in every supported format.
type Exporter struct {
	renderer *normalize.Renderer
	engine   tmpl.TemplateEngine
	markdown goldmark.Markdown
}

// NewExporter creates an Exporter.
func NewExporter(r *normalize.Renderer, engine tmpl.TemplateEngine) *Exporter {
	return &Exporter{
		renderer: r,
		engine:   engine,
		markdown: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// Render renders doc in the given format. templateName selects the
// Markdown template and is ignored for YAML.
func (x *Exporter) Render(doc domain.Document, format Format, templateName string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return x.renderer.Render(doc)
	case FormatMarkdown:
		md, err := x.engine.Render(doc, templateName)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	case FormatHTML:
		md, err := x.engine.Render(doc, templateName)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := x.markdown.Convert([]byte(md), &buf); err != nil {
			return nil, domain.NewError("export", "", 0, "failed to convert markdown to HTML", err)
		}
		return buf.Bytes(), nil
	}
	return nil, domain.NewError("export", "", 0, fmt.Sprintf("unsupported format %q", format), nil)
}

// Filename derives the download name from the test name: spaces become
// underscores, the result is lower-cased and given the format's extension.
// Names that could resolve outside a directory are refused.
func Filename(doc domain.Document, format Format) (string, error) {
	name := domain.StringValue(doc.Name)
	if strings.TrimSpace(name) == "" {
		return "", ErrNameRequired
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", ErrUnsafeName
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_")) + fileExtension(format), nil
}

// WriteFile renders doc and writes it into dir under its derived name,
// returning the written path.
func (x *Exporter) WriteFile(doc domain.Document, format Format, templateName, dir string) (string, error) {
	name, err := Filename(doc, format)
	if err != nil {
		suggestion := "set the test name or pass an explicit output path"
		if errors.Is(err, ErrUnsafeName) {
			suggestion = "remove path separators and \"..\" from the test name"
		}
		return "", domain.NewErrorWithSuggestion("export", "", 0, "cannot name output file", suggestion, err)
	}
	out, err := x.Render(doc, format, templateName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", domain.NewErrorWithSuggestion("export", dir, 0,
			"failed to create output directory",
			"check that the parent directory exists and has write permissions",
			err)
	}
	p := filepath.Join(dir, name)
	if rel, err := filepath.Rel(dir, p); err != nil || rel != name {
		return "", domain.NewError("export", p, 0, "output file escapes the output directory", ErrUnsafeName)
	}
	if err := os.WriteFile(p, out, 0644); err != nil {
		return "", domain.NewErrorWithSuggestion("export", p, 0,
			"failed to write output file",
			"check disk space and write permissions for the output directory",
			err)
	}
	return p, nil
}

func fileExtension(f Format) string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	}
	return ".yaml"
}
