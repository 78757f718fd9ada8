package normalize

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/frherrer/atomic-builder/internal/domain"
	"github.com/frherrer/atomic-builder/internal/transform"
)

// DefaultIndent is the indentation used by the canonical output.
const DefaultIndent = 2

// EmptyOutput is what an entirely empty Document renders to.
const EmptyOutput = "- {}\n"

// Renderer turns Documents into canonical atomic test YAML.
type Renderer struct {
	Indent int
}

// NewRenderer creates a Renderer. A non-positive indent selects DefaultIndent.
func NewRenderer(indent int) *Renderer {
	if indent <= 0 {
		indent = DefaultIndent
	}
	return &Renderer{Indent: indent}
}

// Render folds arguments into their keyed form, prunes empty values and
// emits the test as the single element of a YAML list. Long lines are never
// wrapped and multi-line strings use block scalars, except those starting
// with indentation, which are double quoted.
func (r *Renderer) Render(doc domain.Document) ([]byte, error) {
	ext, err := transform.ToExternal(doc)
	if err != nil {
		return nil, err
	}

	node := ext.Node()
	cleaned := Prune(node)
	if cleaned == nil {
		cleaned = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	return r.encode(&yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Content: []*yaml.Node{cleaned},
	})
}

// Normalize re-prunes already rendered output. Rendering is idempotent:
// Normalize(Render(d)) returns Render(d) unchanged.
func (r *Renderer) Normalize(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewError("render", "", 0, "failed to parse rendered output", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, domain.NewError("render", "", 0,
			fmt.Sprintf("expected a list of tests, got %s", kindOf(&doc)), nil)
	}

	list := doc.Content[0]
	out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range list.Content {
		cleaned := Prune(item)
		if cleaned == nil {
			cleaned = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		}
		out.Content = append(out.Content, cleaned)
	}
	return r.encode(out)
}

func (r *Renderer) encode(node *yaml.Node) ([]byte, error) {
	quoteIndented(node)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(r.Indent)
	if err := enc.Encode(node); err != nil {
		return nil, domain.NewError("render", "", 0, "failed to emit YAML", err)
	}
	if err := enc.Close(); err != nil {
		return nil, domain.NewError("render", "", 0, "failed to emit YAML", err)
	}
	return buf.Bytes(), nil
}

// Render renders doc with the default Renderer.
func Render(doc domain.Document) ([]byte, error) {
	return NewRenderer(DefaultIndent).Render(doc)
}

// Normalize normalizes data with the default Renderer.
func Normalize(data []byte) ([]byte, error) {
	return NewRenderer(DefaultIndent).Normalize(data)
}

// IsEmpty reports whether rendered output carries no content at all.
func IsEmpty(out []byte) bool {
	return string(out) == EmptyOutput
}

func kindOf(doc *yaml.Node) string {
	if len(doc.Content) == 0 {
		return "an empty document"
	}
	return "a " + domain.KindName(doc.Content[0].Kind)
}
