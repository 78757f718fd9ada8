package validate

import "github.com/frherrer/atomic-builder/internal/domain"

// Validate evaluates rules against rec and returns every failing message in
// rule declaration order, depth first. Nothing short-circuits: a field can
// fail its required check and its nested rules in the same pass, and the
// same message repeats once per offending list element.
func Validate(rec Record, rules []Rule) []string {
	var errs []string
	for _, rule := range rules {
		value := rec.Field(rule.Field)

		if rule.Required && value.Empty() {
			errs = append(errs, rule.Message)
		}

		if len(rule.Nested) == 0 {
			continue
		}
		switch value.kind {
		case kindMany:
			for _, item := range value.records {
				errs = append(errs, Validate(item, rule.Nested)...)
			}
		case kindOne:
			if value.record != nil {
				errs = append(errs, Validate(value.record, rule.Nested)...)
			}
		}
	}
	return errs
}

// Document validates doc against DefaultRules.
func Document(doc domain.Document) []string {
	return Validate(DocumentRecord{Doc: &doc}, DefaultRules())
}
