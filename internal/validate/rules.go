package validate

// Rule is one node of a declarative rule tree. A rule may demand that its
// field be present, may carry nested rules applied to the field's record
// (or to every record of a list), or both.
type Rule struct {
	Field    string
	Required bool
	Message  string
	Nested   []Rule
}

// Required demands that field be non-empty.
func Required(field, message string) Rule {
	return Rule{Field: field, Required: true, Message: message}
}

// Optional documents a field that carries no constraint.
func Optional(field string) Rule {
	return Rule{Field: field}
}

// Nested applies rules to the record(s) held by field, without requiring
// field itself to be present.
func Nested(field string, rules ...Rule) Rule {
	return Rule{Field: field, Nested: rules}
}

// RequiredNested demands that field be non-empty and applies rules to the
// record(s) it holds.
func RequiredNested(field, message string, rules ...Rule) Rule {
	return Rule{Field: field, Required: true, Message: message, Nested: rules}
}

// DefaultRules returns the rule set for an atomic test Document.
func DefaultRules() []Rule {
	return []Rule{
		Required("name", "Atomic name"),
		Required("description", "Atomic description"),
		Required("supported_platforms", "Supported platforms"),
		Nested("input_arguments",
			Required("type", "Input type"),
			Required("name", "Input name"),
			Optional("default"),
		),
		Optional("dependency_executor_name"),
		Nested("dependencies",
			Required("description", "Dependency description"),
			Required("prereq_command", "Dependency check command"),
			Optional("get_prereq_command"),
		),
		RequiredNested("executor", "Attack executor",
			Required("command", "Attack command"),
			Optional("cleanup_command"),
			Required("name", "Attack executor name"),
			Optional("elevation_required"),
		),
	}
}
