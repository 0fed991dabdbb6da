// Package trace records step-by-step execution traces of gate-level
// operations for external rendering.
//
// A nil *Trace disables recording: every operation in the module accepts a
// trace sink and appends through nil-safe methods, so untraced calls never
// allocate. Traces are values owned by a single call chain; they are never
// shared between operations.
package trace

import (
	"fmt"
	"strings"
)

// Field is one named value captured at a step.
type Field struct {
	Name  string
	Value string
}

// F formats a value as a trace field. Values that implement fmt.Stringer
// (such as bit vectors) render through their String method.
func F(name string, value any) Field {
	return Field{Name: name, Value: fmt.Sprintf("%v", value)}
}

// Step is a single record in an execution trace.
type Step struct {
	Description string
	Fields      []Field
}

// Get returns the value of the named field.
func (s Step) Get(name string) (value string, ok bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return
}

// Trace is an ordered, append-only sequence of steps.
type Trace struct {
	Steps []Step
}

// New creates an empty trace.
func New() *Trace {
	return &Trace{}
}

// Add appends a step. Safe to call on a nil trace, which records nothing.
func (tr *Trace) Add(description string, fields ...Field) {
	if tr == nil {
		return
	}
	tr.Steps = append(tr.Steps, Step{Description: description, Fields: fields})
}

// Reset clears the trace for reuse at the start of a traced call.
func (tr *Trace) Reset() {
	if tr == nil {
		return
	}
	tr.Steps = tr.Steps[:0]
}

// String renders the trace, one step per line.
func (tr *Trace) String() string {
	if tr == nil {
		return ""
	}

	var sb strings.Builder
	for n, step := range tr.Steps {
		fmt.Fprintf(&sb, "%3d. %v", n+1, step.Description)
		for _, field := range step.Fields {
			fmt.Fprintf(&sb, " %v=%v", field.Name, field.Value)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
