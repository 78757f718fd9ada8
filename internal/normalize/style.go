package normalize

import "gopkg.in/yaml.v3"

// quoteIndented switches strings that start with a space or a tab to double
// quotes. A block scalar cannot carry such a first line and still parse
// back, so these are the only strings whose presentation is forced.
func quoteIndented(n *yaml.Node) {
	if n == nil {
		return
	}
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str" && startsIndented(n.Value) {
		n.Style = yaml.DoubleQuotedStyle
	}
	for _, c := range n.Content {
		quoteIndented(c)
	}
}

func startsIndented(v string) bool {
	return len(v) > 0 && (v[0] == ' ' || v[0] == '\t')
}
