package domain

import (
	"encoding/json"
	"fmt"
)

// StateValue identifies the machine's current state. Child is set only while
// a state with a nested region is active (e.g. dashboard.idle).
type StateValue struct {
	Name  string
	Child string
}

// String renders the value as a dotted path.
func (v StateValue) String() string {
	if v.Child == "" {
		return v.Name
	}
	return v.Name + "." + v.Child
}

// MarshalJSON renders a flat state as a plain string and a nested state as a
// single-key object, matching the wire format clients expect:
// "login" or {"dashboard":"idle"}.
func (v StateValue) MarshalJSON() ([]byte, error) {
	if v.Child == "" {
		return json.Marshal(v.Name)
	}
	return json.Marshal(map[string]string{v.Name: v.Child})
}

// UnmarshalJSON accepts both forms produced by MarshalJSON.
func (v *StateValue) UnmarshalJSON(data []byte) error {
	var flat string
	if err := json.Unmarshal(data, &flat); err == nil {
		v.Name = flat
		v.Child = ""
		return nil
	}

	var nested map[string]string
	if err := json.Unmarshal(data, &nested); err != nil {
		return fmt.Errorf("invalid state value %s: %w", data, err)
	}
	for name, child := range nested {
		v.Name = name
		v.Child = child
	}
	return nil
}

// Snapshot is the read-only (state, context) view returned after every send.
// Changed reports whether the triggering event was handled.
type Snapshot struct {
	State   StateValue `json:"state"`
	Context Context    `json:"context"`
	Changed bool       `json:"changed"`
}

// Observer is a callback invoked synchronously after every completed send with
// the previous state, the new snapshot, and the triggering event. Observers
// are for logging and diagnostics only; they never alter the transition
// outcome.
type Observer func(prev StateValue, snap Snapshot, ev Event)
