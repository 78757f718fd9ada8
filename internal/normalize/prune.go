package normalize

import "gopkg.in/yaml.v3"

// Prune returns a cleaned copy of node with empty values removed, or nil
// when node itself is empty. The input tree is never modified.
//
//   - scalars: null and the empty string are absent
//   - sequences: absent elements and empty nested sequences are dropped
//   - mappings: keys whose cleaned value is absent, an empty sequence or an
//     empty mapping are dropped
func Prune(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		out := shallowCopy(node)
		out.Content = nil
		for _, child := range node.Content {
			if c := Prune(child); c != nil {
				out.Content = append(out.Content, c)
			}
		}
		return out

	case yaml.SequenceNode:
		out := shallowCopy(node)
		out.Content = nil
		for _, item := range node.Content {
			c := Prune(item)
			if c == nil || (c.Kind == yaml.SequenceNode && len(c.Content) == 0) {
				continue
			}
			out.Content = append(out.Content, c)
		}
		return out

	case yaml.MappingNode:
		out := shallowCopy(node)
		out.Content = nil
		for i := 0; i+1 < len(node.Content); i += 2 {
			c := Prune(node.Content[i+1])
			if isEmpty(c) {
				continue
			}
			out.Content = append(out.Content, shallowCopy(node.Content[i]), c)
		}
		return out

	case yaml.ScalarNode:
		if isAbsentScalar(node) {
			return nil
		}
		return shallowCopy(node)

	case yaml.AliasNode:
		return Prune(node.Alias)
	}
	return shallowCopy(node)
}

func isEmpty(n *yaml.Node) bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case yaml.SequenceNode, yaml.MappingNode:
		return len(n.Content) == 0
	}
	return false
}

func isAbsentScalar(n *yaml.Node) bool {
	switch n.ShortTag() {
	case "!!null":
		return true
	case "!!str":
		return n.Value == ""
	}
	return false
}

func shallowCopy(n *yaml.Node) *yaml.Node {
	c := *n
	return &c
}
