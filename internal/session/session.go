package session

import (
	"errors"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/frherrer/atomic-builder/internal/constraint"
	"github.com/frherrer/atomic-builder/internal/domain"
	"github.com/frherrer/atomic-builder/internal/validate"
)

// ErrUnsavedChanges is returned when a load would overwrite unsaved edits.
var ErrUnsavedChanges = errors.New("current inputs have unsaved changes and would be overwritten")

// Options selects the optional checkers a Session runs on every update.
type Options struct {
	CheckEnumerations bool
	CheckShellSyntax  bool
}

// Session owns the Document of one editing session. Every edit is applied
// to a private copy that replaces the current snapshot in one step, so
// readers never observe a partially edited Document.
type Session struct {
	mu       sync.RWMutex
	opts     Options
	doc      domain.Document
	template domain.Document
	changed  bool
	report   *validate.Report
}

// New starts a session on a fresh Template.
func New(opts Options) *Session {
	s := &Session{
		opts:     opts,
		template: domain.Template(),
		report:   validate.NewReport(),
	}
	s.doc = s.template.Clone()
	s.refresh(false)
	return s
}

// Document returns a copy of the current snapshot.
func (s *Session) Document() domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Update applies fn to a copy of the current Document and installs the
// result as the new snapshot.
func (s *Session) Update(fn func(doc *domain.Document)) {
	_ = s.apply(func(doc *domain.Document) error {
		fn(doc)
		return nil
	})
}

// apply is Update for edits that can fail. A failed edit leaves the
// snapshot untouched.
func (s *Session) apply(fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.doc.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.doc = next
	s.refresh(true)
	return nil
}

// Updated reports whether the Document differs from the Template.
func (s *Session) Updated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated()
}

// Changed reports whether the Document holds edits not yet exported.
func (s *Session) Changed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changed
}

// MarkSaved records that the current content was exported.
func (s *Session) MarkSaved() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changed = false
}

// Reset replaces the Document with a fresh Template.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = s.template.Clone()
	s.refresh(false)
}

// Load replaces the Document wholesale. Unless force is set, it refuses to
// overwrite unsaved changes. A freshly loaded Document counts as saved.
func (s *Session) Load(doc domain.Document, force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.changed && !force {
		return ErrUnsavedChanges
	}
	s.doc = doc.Clone()
	s.refresh(false)
	return nil
}

// Report returns the findings of the latest edit. Later edits replace the
// session's report and leave the returned one as it was.
func (s *Session) Report() *validate.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// Errors returns the merged findings of all checkers.
func (s *Session) Errors() []string {
	return s.Report().Messages()
}

// ValidationErrors returns the findings of the rule engine only.
func (s *Session) ValidationErrors() []string {
	return s.Report().Get(validate.ChannelValidation)
}

func (s *Session) updated() bool {
	return !Equal(s.doc, s.template)
}

// refresh recomputes change state and findings. Callers hold s.mu.
func (s *Session) refresh(edited bool) {
	updated := s.updated()
	switch {
	case !updated:
		s.changed = false
	case edited:
		s.changed = true
	}

	report := validate.NewReport()

	// Rules only run once the author has started filling the Document in.
	if updated {
		report.Set(validate.ChannelValidation, validate.Document(s.doc))
	}

	report.Set(validate.ChannelArguments, constraint.CheckArguments(s.doc.InputArguments))

	if s.opts.CheckEnumerations {
		report.Set(validate.ChannelEnumerations, constraint.CheckEnumerations(s.doc))
	}
	if s.opts.CheckShellSyntax {
		report.Set(validate.ChannelCommands, constraint.CheckCommands(s.doc))
	}
	s.report = report
}

// Equal compares two Documents structurally. Nil and empty lists are equal.
func Equal(a, b domain.Document) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}
