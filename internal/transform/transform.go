package transform

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/frherrer/atomic-builder/internal/domain"
)

// ToInternal converts a raw test into an editable Document. Input arguments
// given as a keyed mapping become an ordered list in source key order; a
// list is taken as already internal; null or absent yields an empty list.
// Fields missing from raw keep their Template values. raw is not modified.
func ToInternal(raw *domain.RawTest) (domain.Document, error) {
	if raw == nil {
		return domain.Document{}, domain.NewError("transform", "", 0, "no test to load", nil)
	}

	args, err := decodeArguments(&raw.InputArguments)
	if err != nil {
		return domain.Document{}, err
	}

	src := domain.Document{
		Name:                   raw.Name,
		Description:            raw.Description,
		SupportedPlatforms:     raw.SupportedPlatforms,
		DependencyExecutorName: raw.DependencyExecutorName,
		Dependencies:           raw.Dependencies,
	}
	if raw.Executor != nil {
		src.Executor = *raw.Executor
	}
	return overlay(src.Clone(), args), nil
}

// FromExternal converts an already-decoded external test into a Document.
func FromExternal(ext domain.ExternalTest) domain.Document {
	src := domain.Document{
		Name:                   ext.Name,
		Description:            ext.Description,
		SupportedPlatforms:     ext.SupportedPlatforms,
		DependencyExecutorName: ext.DependencyExecutorName,
		Dependencies:           ext.Dependencies,
		Executor:               ext.Executor,
	}
	return overlay(src.Clone(), MapToArguments(ext.InputArguments))
}

// overlay lays src over a fresh Template. src must already be a private copy.
func overlay(src domain.Document, args []domain.Argument) domain.Document {
	doc := domain.Template()
	doc.Name = src.Name
	doc.Description = src.Description
	doc.DependencyExecutorName = src.DependencyExecutorName
	doc.Executor = src.Executor
	doc.InputArguments = args
	if src.SupportedPlatforms != nil {
		doc.SupportedPlatforms = domain.NormalizePlatforms(src.SupportedPlatforms)
	}
	if src.Dependencies != nil {
		doc.Dependencies = src.Dependencies
	}
	return doc
}

// ToExternal folds the ordered argument list back into the keyed mapping.
// Two arguments sharing a trimmed name, or an argument with a blank name,
// cannot be represented as mapping keys and are rejected rather than
// silently overwritten.
func ToExternal(doc domain.Document) (domain.ExternalTest, error) {
	args, err := ArgumentsToMap(doc.InputArguments)
	if err != nil {
		return domain.ExternalTest{}, err
	}

	c := doc.Clone()
	return domain.ExternalTest{
		Name:                   c.Name,
		Description:            c.Description,
		SupportedPlatforms:     c.SupportedPlatforms,
		InputArguments:         args,
		DependencyExecutorName: c.DependencyExecutorName,
		Dependencies:           c.Dependencies,
		Executor:               c.Executor,
	}, nil
}

// ArgumentsToMap converts the ordered list into the keyed form.
func ArgumentsToMap(args []domain.Argument) (domain.ArgumentMap, error) {
	out := make(domain.ArgumentMap, 0, len(args))
	seen := make(map[string]int, len(args))
	for i, a := range args {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return nil, domain.NewErrorWithSuggestion("transform", "", 0,
				fmt.Sprintf("input argument %d has a blank name", i+1),
				"give every input argument a name",
				nil)
		}
		if prev, dup := seen[name]; dup {
			return nil, domain.NewErrorWithSuggestion("transform", "", 0,
				fmt.Sprintf("input arguments %d and %d share the name %q", prev+1, i+1, name),
				"argument names must be unique",
				nil)
		}
		seen[name] = i
		out = append(out, domain.ArgumentEntry{
			Name: a.Name,
			Spec: domain.ArgumentSpec{
				Type:        a.Type,
				Default:     copyString(a.Default),
				Description: copyString(a.Description),
			},
		})
	}
	return out, nil
}

// MapToArguments converts the keyed form into the ordered list, copying each
// key into the argument's name.
func MapToArguments(m domain.ArgumentMap) []domain.Argument {
	out := make([]domain.Argument, 0, len(m))
	for _, e := range m {
		out = append(out, domain.Argument{
			Name:        e.Name,
			Type:        e.Spec.Type,
			Default:     copyString(e.Spec.Default),
			Description: copyString(e.Spec.Description),
		})
	}
	return out
}

func decodeArguments(node *yaml.Node) ([]domain.Argument, error) {
	if domain.IsNullNode(node) {
		return []domain.Argument{}, nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		m, err := domain.DecodeArgumentMap(node)
		if err != nil {
			return nil, domain.NewError("transform", "", 0, "invalid input_arguments", err)
		}
		return MapToArguments(m), nil
	case yaml.SequenceNode:
		args := []domain.Argument{}
		if err := node.Decode(&args); err != nil {
			return nil, domain.NewError("transform", "", 0, "invalid input_arguments list", err)
		}
		return args, nil
	default:
		return nil, domain.NewErrorWithSuggestion("transform", "", 0,
			fmt.Sprintf("line %d: input_arguments is a %s", node.Line, domain.KindName(node.Kind)),
			"input_arguments must map argument names to {type, default, description}",
			nil)
	}
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
