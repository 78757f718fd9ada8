package constraint

import (
	"fmt"

	"github.com/frherrer/atomic-builder/internal/domain"
)

// CheckEnumerations reports values that fall outside the fixed platform,
// executor and argument type lists. Empty values are left to the
// validation rules.
func CheckEnumerations(doc domain.Document) []string {
	var errs []string
	for _, p := range doc.SupportedPlatforms {
		if !domain.IsPlatform(p) {
			errs = append(errs, fmt.Sprintf("Unsupported platform %q", p))
		}
	}
	if name := doc.Executor.Name; name != "" && !domain.IsExecutorName(name) {
		errs = append(errs, fmt.Sprintf("Unknown attack executor %q", name))
	}
	if name := domain.StringValue(doc.DependencyExecutorName); name != "" && !domain.IsExecutorName(name) {
		errs = append(errs, fmt.Sprintf("Unknown dependency executor %q", name))
	}
	for _, a := range doc.InputArguments {
		if a.Type != "" && !domain.IsArgumentType(a.Type) {
			errs = append(errs, fmt.Sprintf("Unknown input type %q for argument %q", a.Type, a.Name))
		}
	}
	return errs
}
