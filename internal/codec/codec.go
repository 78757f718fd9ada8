package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/frherrer/atomic-builder/internal/domain"
	"github.com/frherrer/atomic-builder/internal/transform"
)

// ErrUnsupportedExtension is returned for files that are not YAML.
var ErrUnsupportedExtension = errors.New("only yaml files can be uploaded")

// Source is a decoded payload: either a plain list of tests or a technique
// bundle carrying several tests.
type Source struct {
	File            string
	Bundle          bool
	AttackTechnique string
	DisplayName     string
	tests           []*yaml.Node
}

// ReadFile loads and decodes a .yaml or .yml file.
func ReadFile(path string) (*Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, domain.NewError("load", path, 0, "unsupported file type", ErrUnsupportedExtension)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("load", path, 0, "failed to read file", err)
	}

	src, err := Decode(data)
	if err != nil {
		var ae *domain.AtomicError
		if errors.As(err, &ae) {
			ae.File = path
		}
		return nil, err
	}
	src.File = path
	return src, nil
}

// Decode parses a YAML payload. A top-level list is taken as a list of
// tests; a mapping must carry atomic_tests and is taken as a technique
// bundle. Anything else is rejected.
func Decode(data []byte) (*Source, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewErrorWithSuggestion("load", "", 0,
			"Error while file processing the yaml file, check format.",
			"make sure the file is valid YAML", err)
	}
	if domain.IsNullNode(&doc) {
		return nil, domain.NewError("load", "", 0, "file is empty", nil)
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if len(root.Content) == 0 {
			return nil, domain.NewError("load", "", 0, "list holds no tests", nil)
		}
		return &Source{tests: root.Content}, nil

	case yaml.MappingNode:
		var bundle domain.TechniqueBundle
		if err := root.Decode(&bundle); err != nil {
			return nil, domain.NewError("load", "", 0, "invalid technique file", err)
		}
		if len(bundle.AtomicTests) == 0 {
			return nil, domain.NewErrorWithSuggestion("load", "", 0,
				"mapping has no atomic_tests",
				"provide a list of tests or a technique file with atomic_tests", nil)
		}
		src := &Source{
			Bundle:          true,
			AttackTechnique: bundle.AttackTechnique,
			DisplayName:     bundle.DisplayName,
		}
		for i := range bundle.AtomicTests {
			src.tests = append(src.tests, &bundle.AtomicTests[i])
		}
		return src, nil
	}

	return nil, domain.NewError("load", "", 0,
		fmt.Sprintf("expected a list of tests or a technique file, got a %s", domain.KindName(root.Kind)), nil)
}

// Len returns the number of tests in the source.
func (s *Source) Len() int {
	return len(s.tests)
}

// Title is the bundle heading, "<technique> - <display name>".
func (s *Source) Title() string {
	if !s.Bundle {
		return ""
	}
	return fmt.Sprintf("%s - %s", s.AttackTechnique, s.DisplayName)
}

// Names lists test names in source order. Tests without a readable name
// are listed as an empty string.
func (s *Source) Names() []string {
	names := make([]string, len(s.tests))
	for i, n := range s.tests {
		var t struct {
			Name string `yaml:"name"`
		}
		if n.Kind == yaml.MappingNode && n.Decode(&t) == nil {
			names[i] = t.Name
		}
	}
	return names
}

// Select decodes the test at index (0-based).
func (s *Source) Select(index int) (*domain.RawTest, error) {
	if index < 0 || index >= len(s.tests) {
		return nil, domain.NewError("load", s.File, 0,
			fmt.Sprintf("test index %d out of range (file holds %d)", index+1, len(s.tests)), nil)
	}

	node := s.tests[index]
	if node.Kind != yaml.MappingNode {
		return nil, domain.NewError("load", s.File, index+1,
			fmt.Sprintf("test is a %s, not a mapping", domain.KindName(node.Kind)), nil)
	}

	var raw domain.RawTest
	if err := node.Decode(&raw); err != nil {
		return nil, domain.NewError("load", s.File, index+1, "invalid test", err)
	}
	return &raw, nil
}

// Load selects the test at index and converts it into an editable Document.
// A malformed test yields an error and no partial Document.
func (s *Source) Load(index int) (domain.Document, error) {
	raw, err := s.Select(index)
	if err != nil {
		return domain.Document{}, err
	}
	doc, err := transform.ToInternal(raw)
	if err != nil {
		var ae *domain.AtomicError
		if errors.As(err, &ae) {
			ae.Phase = "load"
			ae.File = s.File
			ae.Index = index + 1
		}
		return domain.Document{}, err
	}
	return doc, nil
}
