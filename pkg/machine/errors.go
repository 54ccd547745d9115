package machine

import "fmt"

// DefinitionError reports a structural problem in a machine definition,
// found during Validate.
type DefinitionError struct {
	State  string // state the problem was found in ("" for machine-level problems)
	Event  string // event whose transition is broken, if any
	Reason string
}

func (e *DefinitionError) Error() string {
	switch {
	case e.State == "":
		return fmt.Sprintf("machine definition: %s", e.Reason)
	case e.Event == "":
		return fmt.Sprintf("state %q: %s", e.State, e.Reason)
	default:
		return fmt.Sprintf("state %q, event %q: %s", e.State, e.Event, e.Reason)
	}
}

// AggregateError collects every definition problem found in one pass.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d definition errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}
