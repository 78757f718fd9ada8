package domain

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Node builds the YAML tree of t field by field in schema order. Absent
// values become explicit nulls; pruning them is left to the caller.
func (t ExternalTest) Node() *yaml.Node {
	n := mappingNode()
	addPair(n, "name", optionalNode(t.Name))
	addPair(n, "description", optionalNode(t.Description))
	addPair(n, "supported_platforms", stringsNode(t.SupportedPlatforms))
	addPair(n, "input_arguments", t.InputArguments.Node())
	addPair(n, "dependency_executor_name", optionalNode(t.DependencyExecutorName))

	deps := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, d := range t.Dependencies {
		deps.Content = append(deps.Content, d.Node())
	}
	addPair(n, "dependencies", deps)
	addPair(n, "executor", t.Executor.Node())
	return n
}

// Node builds the keyed argument mapping in slice order.
func (m ArgumentMap) Node() *yaml.Node {
	n := mappingNode()
	for _, e := range m {
		addPair(n, e.Name, e.Spec.Node())
	}
	return n
}

// Node builds one argument specification. Defaults of integer arguments
// that parse as integers are emitted unquoted.
func (s ArgumentSpec) Node() *yaml.Node {
	n := mappingNode()
	addPair(n, "type", stringNode(s.Type))

	def := optionalNode(s.Default)
	if s.Default != nil && s.Type == "integer" {
		if _, err := strconv.ParseInt(*s.Default, 10, 64); err == nil {
			def.Tag = "!!int"
		}
	}
	addPair(n, "default", def)
	addPair(n, "description", optionalNode(s.Description))
	return n
}

// Node builds one dependency.
func (d Dependency) Node() *yaml.Node {
	n := mappingNode()
	addPair(n, "description", stringNode(d.Description))
	addPair(n, "prereq_command", stringNode(d.PrereqCommand))
	addPair(n, "get_prereq_command", optionalNode(d.GetPrereqCommand))
	return n
}

// Node builds the executor. elevation_required is only written when set.
func (e Executor) Node() *yaml.Node {
	n := mappingNode()
	addPair(n, "command", optionalNode(e.Command))
	addPair(n, "cleanup_command", optionalNode(e.CleanupCommand))
	addPair(n, "name", stringNode(e.Name))
	if e.ElevationRequired {
		addPair(n, "elevation_required", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
	}
	return n
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, stringNode(key), value)
}

func stringNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func optionalNode(p *string) *yaml.Node {
	if p == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	return stringNode(*p)
}

func stringsNode(vs []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, v := range vs {
		n.Content = append(n.Content, stringNode(v))
	}
	return n
}
