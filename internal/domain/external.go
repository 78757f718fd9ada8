package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExternalTest is one atomic test in the persisted schema. It differs from
// Document only in how input arguments are represented.
type ExternalTest struct {
	Name                   *string      `yaml:"name"`
	Description            *string      `yaml:"description"`
	SupportedPlatforms     []string     `yaml:"supported_platforms"`
	InputArguments         ArgumentMap  `yaml:"input_arguments"`
	DependencyExecutorName *string      `yaml:"dependency_executor_name"`
	Dependencies           []Dependency `yaml:"dependencies"`
	Executor               Executor     `yaml:"executor"`
}

// RawTest is a test as read from an uploaded or sample payload. Input
// arguments are kept as an undecoded node because the payload may carry
// either the keyed mapping or an already-ordered list.
type RawTest struct {
	Name                   *string      `yaml:"name"`
	Description            *string      `yaml:"description"`
	SupportedPlatforms     []string     `yaml:"supported_platforms"`
	InputArguments         yaml.Node    `yaml:"input_arguments"`
	DependencyExecutorName *string      `yaml:"dependency_executor_name"`
	Dependencies           []Dependency `yaml:"dependencies"`
	Executor               *Executor    `yaml:"executor"`
}

// TechniqueBundle is a technique file holding several atomic tests.
type TechniqueBundle struct {
	AttackTechnique string      `yaml:"attack_technique"`
	DisplayName     string      `yaml:"display_name"`
	AtomicTests     []yaml.Node `yaml:"atomic_tests"`
}

// ArgumentSpec is the value side of one entry in the keyed argument mapping.
type ArgumentSpec struct {
	Type        string  `yaml:"type"`
	Default     *string `yaml:"default"`
	Description *string `yaml:"description"`
}

// ArgumentEntry pairs an argument name with its specification.
type ArgumentEntry struct {
	Name string
	Spec ArgumentSpec
}

// ArgumentMap is the keyed argument representation. It is stored as an
// ordered slice so that key order survives a decode/encode cycle.
type ArgumentMap []ArgumentEntry

// Lookup returns the spec stored under name.
func (m ArgumentMap) Lookup(name string) (ArgumentSpec, bool) {
	for _, e := range m {
		if e.Name == name {
			return e.Spec, true
		}
	}
	return ArgumentSpec{}, false
}

// MarshalYAML renders the entries as a YAML mapping in slice order.
func (m ArgumentMap) MarshalYAML() (interface{}, error) {
	return m.Node(), nil
}

// UnmarshalYAML accepts a mapping (or null) and keeps the source key order.
func (m *ArgumentMap) UnmarshalYAML(value *yaml.Node) error {
	out, err := DecodeArgumentMap(value)
	if err != nil {
		return err
	}
	*m = out
	return nil
}

// DecodeArgumentMap decodes a mapping node into an ArgumentMap. A null or
// zero node yields an empty map; any other node kind is rejected.
func DecodeArgumentMap(node *yaml.Node) (ArgumentMap, error) {
	if IsNullNode(node) {
		return ArgumentMap{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: input_arguments must be a mapping, got %s", node.Line, KindName(node.Kind))
	}

	out := make(ArgumentMap, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var spec ArgumentSpec
		if !IsNullNode(value) {
			if err := value.Decode(&spec); err != nil {
				return nil, fmt.Errorf("line %d: argument %q: %w", value.Line, key.Value, err)
			}
		}
		out = append(out, ArgumentEntry{Name: key.Value, Spec: spec})
	}
	return out, nil
}

// IsNullNode reports whether node is absent or an explicit YAML null.
func IsNullNode(node *yaml.Node) bool {
	if node == nil || node.Kind == 0 {
		return true
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return IsNullNode(node.Content[0])
	}
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// KindName returns a readable name for a YAML node kind.
func KindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
