package session

import (
	"fmt"
	"strings"

	"github.com/frherrer/atomic-builder/internal/domain"
)

// Field names accepted by UpdateArgument.
const (
	ArgumentName        = "name"
	ArgumentType        = "type"
	ArgumentDefault     = "default"
	ArgumentDescription = "description"
)

// Field names accepted by UpdateDependency.
const (
	DependencyDescription      = "description"
	DependencyPrereqCommand    = "prereq_command"
	DependencyGetPrereqCommand = "get_prereq_command"
)

// SetName sets the test name; a blank value clears it.
func (s *Session) SetName(v string) {
	s.Update(func(d *domain.Document) { d.Name = blankToNil(v) })
}

// SetDescription sets the test description; a blank value clears it.
func (s *Session) SetDescription(v string) {
	s.Update(func(d *domain.Document) { d.Description = blankToNil(v) })
}

// SetPlatforms replaces the supported platforms, lower-cased.
func (s *Session) SetPlatforms(platforms ...string) {
	s.Update(func(d *domain.Document) { d.SupportedPlatforms = domain.NormalizePlatforms(platforms) })
}

// SetExecutorName selects the attack executor.
func (s *Session) SetExecutorName(name string) {
	s.Update(func(d *domain.Document) { d.Executor.Name = name })
}

// SetElevationRequired toggles the elevation flag.
func (s *Session) SetElevationRequired(v bool) {
	s.Update(func(d *domain.Document) { d.Executor.ElevationRequired = v })
}

// SetCommand sets the attack command with line endings normalized. An
// empty value clears it.
func (s *Session) SetCommand(v string) {
	s.Update(func(d *domain.Document) { d.Executor.Command = emptyToNil(normalizeNewlines(v)) })
}

// SetCleanupCommand sets the cleanup command with line endings normalized.
func (s *Session) SetCleanupCommand(v string) {
	s.Update(func(d *domain.Document) { d.Executor.CleanupCommand = emptyToNil(normalizeNewlines(v)) })
}

// SetDependencyExecutorName selects the dependency executor; blank clears it.
func (s *Session) SetDependencyExecutorName(name string) {
	s.Update(func(d *domain.Document) { d.DependencyExecutorName = blankToNil(name) })
}

// AddArgument prepends a new argument named input_N with default value_N,
// where N is the new argument count.
func (s *Session) AddArgument() {
	s.Update(func(d *domain.Document) {
		n := len(d.InputArguments) + 1
		arg := domain.Argument{
			Name:        fmt.Sprintf("input_%d", n),
			Default:     domain.StringPtr(fmt.Sprintf("value_%d", n)),
			Description: domain.StringPtr(""),
		}
		d.InputArguments = append([]domain.Argument{arg}, d.InputArguments...)
	})
}

// UpdateArgument sets one field of the argument at index.
func (s *Session) UpdateArgument(index int, field, value string) error {
	return s.apply(func(d *domain.Document) error {
		if index < 0 || index >= len(d.InputArguments) {
			return fmt.Errorf("argument index %d out of range", index)
		}
		a := &d.InputArguments[index]
		switch field {
		case ArgumentName:
			a.Name = value
		case ArgumentType:
			a.Type = value
		case ArgumentDefault:
			a.Default = domain.StringPtr(value)
		case ArgumentDescription:
			a.Description = domain.StringPtr(value)
		default:
			return fmt.Errorf("unknown argument field %q", field)
		}
		return nil
	})
}

// RemoveArgument deletes the argument at index.
func (s *Session) RemoveArgument(index int) error {
	return s.apply(func(d *domain.Document) error {
		if index < 0 || index >= len(d.InputArguments) {
			return fmt.Errorf("argument index %d out of range", index)
		}
		d.InputArguments = append(d.InputArguments[:index:index], d.InputArguments[index+1:]...)
		return nil
	})
}

// AddDependency prepends an empty dependency.
func (s *Session) AddDependency() {
	s.Update(func(d *domain.Document) {
		dep := domain.Dependency{GetPrereqCommand: domain.StringPtr("")}
		d.Dependencies = append([]domain.Dependency{dep}, d.Dependencies...)
	})
}

// UpdateDependency sets one field of the dependency at index, with line
// endings normalized.
func (s *Session) UpdateDependency(index int, field, value string) error {
	value = normalizeNewlines(value)
	return s.apply(func(d *domain.Document) error {
		if index < 0 || index >= len(d.Dependencies) {
			return fmt.Errorf("dependency index %d out of range", index)
		}
		dep := &d.Dependencies[index]
		switch field {
		case DependencyDescription:
			dep.Description = value
		case DependencyPrereqCommand:
			dep.PrereqCommand = value
		case DependencyGetPrereqCommand:
			dep.GetPrereqCommand = domain.StringPtr(value)
		default:
			return fmt.Errorf("unknown dependency field %q", field)
		}
		return nil
	})
}

// RemoveDependency deletes the dependency at index. Removing the last one
// also clears the dependency executor.
func (s *Session) RemoveDependency(index int) error {
	return s.apply(func(d *domain.Document) error {
		if index < 0 || index >= len(d.Dependencies) {
			return fmt.Errorf("dependency index %d out of range", index)
		}
		d.Dependencies = append(d.Dependencies[:index:index], d.Dependencies[index+1:]...)
		if len(d.Dependencies) == 0 {
			d.DependencyExecutorName = nil
		}
		return nil
	})
}

func blankToNil(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func emptyToNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func normalizeNewlines(v string) string {
	return strings.ReplaceAll(v, "\r\n", "\n")
}
