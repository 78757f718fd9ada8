package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frherrer/atomic-builder/internal/domain"
	"github.com/frherrer/atomic-builder/internal/parser"
)

// Reader loads sources from any file type its registry has a parser for.
// Markdown files contribute every atomic block they embed.
type Reader struct {
	registry parser.ParserRegistry
}

// NewReader creates a Reader over registry.
func NewReader(registry parser.ParserRegistry) *Reader {
	return &Reader{registry: registry}
}

// Read extracts every payload of path and merges their tests into one
// Source. Bundle metadata is taken from the first bundle payload.
func (r *Reader) Read(path string) (*Source, error) {
	p, err := r.registry.ParserFor(filepath.Ext(path))
	if err != nil {
		return nil, domain.NewError("load", path, 0, "unsupported file type", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("load", path, 0, "failed to read file", err)
	}

	blocks, err := p.Parse(path, data)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, domain.NewErrorWithSuggestion("load", path, 0,
			"no atomic blocks found",
			fmt.Sprintf("tag fenced code blocks with one of %v", parser.DefaultMarkdownTags), nil)
	}

	merged := &Source{File: path}
	for _, b := range blocks {
		src, err := Decode(b.Content)
		if err != nil {
			var ae *domain.AtomicError
			if errors.As(err, &ae) {
				ae.File = fmt.Sprintf("%s:%d", path, b.LineNumber)
			}
			return nil, err
		}
		if src.Bundle && !merged.Bundle {
			merged.Bundle = true
			merged.AttackTechnique = src.AttackTechnique
			merged.DisplayName = src.DisplayName
		}
		merged.tests = append(merged.tests, src.tests...)
	}
	return merged, nil
}
