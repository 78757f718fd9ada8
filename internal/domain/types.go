package domain

// Document is one atomic test definition in its editable form.
// Arguments are held as an ordered list so the editing surface can insert,
// reorder and rename them freely.
type Document struct {
	Name                   *string      `yaml:"name"`
	Description            *string      `yaml:"description"`
	SupportedPlatforms     []string     `yaml:"supported_platforms"`
	InputArguments         []Argument   `yaml:"input_arguments"`
	DependencyExecutorName *string      `yaml:"dependency_executor_name"`
	Dependencies           []Dependency `yaml:"dependencies"`
	Executor               Executor     `yaml:"executor"`
}

// Argument is a single typed, named and defaulted input of a test.
type Argument struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Default     *string `yaml:"default"`
	Description *string `yaml:"description"`
}

// Dependency is a prerequisite check / install command pair.
type Dependency struct {
	Description      string  `yaml:"description"`
	PrereqCommand    string  `yaml:"prereq_command"`
	GetPrereqCommand *string `yaml:"get_prereq_command"`
}

// Executor is the interpreter and command pair that runs the test.
type Executor struct {
	Command           *string `yaml:"command"`
	CleanupCommand    *string `yaml:"cleanup_command"`
	Name              string  `yaml:"name"`
	ElevationRequired bool    `yaml:"elevation_required,omitempty"`
}

// Template returns the canonical empty Document used as the initial state,
// the reset target and the reference for change tracking.
func Template() Document {
	return Document{
		SupportedPlatforms: []string{},
		InputArguments:     []Argument{},
		Dependencies:       []Dependency{},
	}
}

// Clone returns a deep copy of d. Pointers are re-allocated so that edits
// on the copy never reach the original.
func (d Document) Clone() Document {
	out := Document{
		Name:                   cloneString(d.Name),
		Description:            cloneString(d.Description),
		DependencyExecutorName: cloneString(d.DependencyExecutorName),
		Executor: Executor{
			Command:           cloneString(d.Executor.Command),
			CleanupCommand:    cloneString(d.Executor.CleanupCommand),
			Name:              d.Executor.Name,
			ElevationRequired: d.Executor.ElevationRequired,
		},
	}

	if d.SupportedPlatforms != nil {
		out.SupportedPlatforms = append([]string{}, d.SupportedPlatforms...)
	}
	if d.InputArguments != nil {
		out.InputArguments = make([]Argument, len(d.InputArguments))
		for i, a := range d.InputArguments {
			out.InputArguments[i] = Argument{
				Name:        a.Name,
				Type:        a.Type,
				Default:     cloneString(a.Default),
				Description: cloneString(a.Description),
			}
		}
	}
	if d.Dependencies != nil {
		out.Dependencies = make([]Dependency, len(d.Dependencies))
		for i, dep := range d.Dependencies {
			out.Dependencies[i] = Dependency{
				Description:      dep.Description,
				PrereqCommand:    dep.PrereqCommand,
				GetPrereqCommand: cloneString(dep.GetPrereqCommand),
			}
		}
	}
	return out
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
