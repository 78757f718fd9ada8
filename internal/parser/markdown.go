package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/frherrer/atomic-builder/internal/domain"
)

// DefaultMarkdownTags are the fence info tags that mark an atomic payload.
var DefaultMarkdownTags = []string{"atomic-yaml", "atomic"}

// MarkdownParser extracts atomic YAML payloads from fenced code blocks of
// Markdown documents using goldmark.
type MarkdownParser struct {
	tags map[string]bool
}

// NewMarkdownParser creates a MarkdownParser matching the given fence tags,
// or DefaultMarkdownTags when none are given.
func NewMarkdownParser(tags ...string) *MarkdownParser {
	if len(tags) == 0 {
		tags = DefaultMarkdownTags
	}
	p := &MarkdownParser{tags: make(map[string]bool, len(tags))}
	for _, t := range tags {
		p.tags[t] = true
	}
	return p
}

// SupportedExtensions returns the file extensions this parser handles.
func (p *MarkdownParser) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// Parse walks the Markdown AST and returns the content of every fenced code
// block whose language tag is one of the parser's tags.
func (p *MarkdownParser) Parse(filePath string, content []byte) ([]Block, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	var blocks []Block
	var currentHeading string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			currentHeading = headingText(node, content)

		case *ast.FencedCodeBlock:
			if !p.tags[string(node.Language(content))] {
				return ast.WalkContinue, nil
			}
			lines := node.Lines()
			if lines.Len() == 0 {
				return ast.WalkContinue, nil
			}
			var buf bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(content))
			}
			blocks = append(blocks, Block{
				Content:    buf.Bytes(),
				LineNumber: lineNumber(content, lines.At(0).Start),
				Context:    currentHeading,
			})
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, domain.NewErrorWithSuggestion("load", filePath, 0,
			"failed to walk markdown AST",
			"check the markdown file for syntax issues and make sure fenced code blocks use triple backticks",
			err)
	}
	return blocks, nil
}

// headingText gets the text content of a heading node.
func headingText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}

// lineNumber calculates the 1-based line number for a byte offset.
func lineNumber(content []byte, offset int) int {
	return bytes.Count(content[:offset], []byte("\n")) + 1
}
