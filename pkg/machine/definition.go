package machine

import "github.com/stateboard/stateboard/pkg/domain"

// Action is a pure reducer bound to a transition. It receives the current
// context and the triggering event and returns the next context value; it must
// not mutate its input or perform I/O.
type Action func(ctx domain.Context, ev domain.Event) domain.Context

// TransitionSpec describes one rule in a state's event table. An empty Target
// is an internal transition: actions run but the state does not change.
type TransitionSpec struct {
	Target  string
	Actions []Action
}

// StateNode is a single state and the events it handles. Nested, when set,
// is a child region entered automatically at its own Initial state; the
// children hold no externally reachable transitions of their own.
type StateNode struct {
	On     map[string][]TransitionSpec
	Nested *Definition
}

// Definition is the declarative description of a machine: its states, the
// starting state, and the transition tables. It is shared verbatim by every
// interpreter instance built from it.
type Definition struct {
	ID      string
	Initial string
	States  map[string]StateNode
}

// Target returns the first transition spec registered for eventType in the
// named state, or false when the event is not handled there.
func (d *Definition) Target(state, eventType string) (TransitionSpec, bool) {
	node, ok := d.States[state]
	if !ok {
		return TransitionSpec{}, false
	}
	specs, ok := node.On[eventType]
	if !ok || len(specs) == 0 {
		return TransitionSpec{}, false
	}
	return specs[0], true
}

// EntryState resolves the state value for entering name, descending into the
// nested region's initial state when one exists.
func (d *Definition) EntryState(name string) domain.StateValue {
	v := domain.StateValue{Name: name}
	if node, ok := d.States[name]; ok && node.Nested != nil {
		v.Child = node.Nested.Initial
	}
	return v
}

// EventTypes returns the event names handled in the named state.
func (d *Definition) EventTypes(state string) []string {
	node, ok := d.States[state]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(node.On))
	for ev := range node.On {
		out = append(out, ev)
	}
	return out
}
