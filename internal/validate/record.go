package validate

import (
	"strings"

	"github.com/frherrer/atomic-builder/internal/domain"
)

type kind int

const (
	kindAbsent kind = iota
	kindString
	kindStrings
	kindFlag
	kindOne
	kindMany
)

// Value is the closed set of shapes a record field can take.
type Value struct {
	kind    kind
	str     *string
	strs    []string
	record  Record
	records []Record
}

// Absent is a field that does not exist on the record.
func Absent() Value { return Value{kind: kindAbsent} }

// String wraps an optional scalar; nil is treated as null.
func String(s *string) Value { return Value{kind: kindString, str: s} }

// Text wraps a plain scalar.
func Text(s string) Value { return Value{kind: kindString, str: &s} }

// Strings wraps a list of scalars.
func Strings(ss []string) Value { return Value{kind: kindStrings, strs: ss} }

// Flag wraps a boolean. Booleans are never empty.
func Flag(bool) Value { return Value{kind: kindFlag} }

// One wraps a single nested record; nil is treated as null.
func One(r Record) Value { return Value{kind: kindOne, record: r} }

// Many wraps a list of nested records.
func Many(rs []Record) Value { return Value{kind: kindMany, records: rs} }

// Empty reports whether the value fails a required check: null, absent,
// an empty list, or a string that is blank after trimming.
func (v Value) Empty() bool {
	switch v.kind {
	case kindString:
		return v.str == nil || strings.TrimSpace(*v.str) == ""
	case kindStrings:
		return len(v.strs) == 0
	case kindFlag:
		return false
	case kindOne:
		return v.record == nil
	case kindMany:
		return len(v.records) == 0
	default:
		return true
	}
}

// Record is a tree-shaped value the engine can walk.
type Record interface {
	Field(name string) Value
}

// DocumentRecord exposes a Document to the engine.
type DocumentRecord struct{ Doc *domain.Document }

func (r DocumentRecord) Field(name string) Value {
	d := r.Doc
	switch name {
	case "name":
		return String(d.Name)
	case "description":
		return String(d.Description)
	case "supported_platforms":
		return Strings(d.SupportedPlatforms)
	case "input_arguments":
		rs := make([]Record, len(d.InputArguments))
		for i := range d.InputArguments {
			rs[i] = ArgumentRecord{Arg: &d.InputArguments[i]}
		}
		return Many(rs)
	case "dependency_executor_name":
		return String(d.DependencyExecutorName)
	case "dependencies":
		rs := make([]Record, len(d.Dependencies))
		for i := range d.Dependencies {
			rs[i] = DependencyRecord{Dep: &d.Dependencies[i]}
		}
		return Many(rs)
	case "executor":
		return One(ExecutorRecord{Exec: &d.Executor})
	}
	return Absent()
}

// ArgumentRecord exposes an Argument to the engine.
type ArgumentRecord struct{ Arg *domain.Argument }

func (r ArgumentRecord) Field(name string) Value {
	switch name {
	case "name":
		return Text(r.Arg.Name)
	case "type":
		return Text(r.Arg.Type)
	case "default":
		return String(r.Arg.Default)
	case "description":
		return String(r.Arg.Description)
	}
	return Absent()
}

// DependencyRecord exposes a Dependency to the engine.
type DependencyRecord struct{ Dep *domain.Dependency }

func (r DependencyRecord) Field(name string) Value {
	switch name {
	case "description":
		return Text(r.Dep.Description)
	case "prereq_command":
		return Text(r.Dep.PrereqCommand)
	case "get_prereq_command":
		return String(r.Dep.GetPrereqCommand)
	}
	return Absent()
}

// ExecutorRecord exposes an Executor to the engine.
type ExecutorRecord struct{ Exec *domain.Executor }

func (r ExecutorRecord) Field(name string) Value {
	switch name {
	case "command":
		return String(r.Exec.Command)
	case "cleanup_command":
		return String(r.Exec.CleanupCommand)
	case "name":
		return Text(r.Exec.Name)
	case "elevation_required":
		return Flag(r.Exec.ElevationRequired)
	}
	return Absent()
}
