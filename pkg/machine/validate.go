package machine

// Validate checks the structural invariants of the definition: the initial
// state must exist, every transition target must name an existing state, and
// nested regions must themselves be valid. All problems are collected and
// returned together.
func (d *Definition) Validate() error {
	var errs []error

	if d.Initial == "" {
		errs = append(errs, &DefinitionError{Reason: "missing initial state"})
	} else if _, ok := d.States[d.Initial]; !ok {
		errs = append(errs, &DefinitionError{
			Reason: "initial state " + d.Initial + " is not defined",
		})
	}

	for name, node := range d.States {
		for event, specs := range node.On {
			if len(specs) == 0 {
				errs = append(errs, &DefinitionError{
					State: name, Event: event,
					Reason: "empty transition list",
				})
				continue
			}
			for _, spec := range specs {
				if spec.Target == "" {
					continue // internal transition
				}
				if _, ok := d.States[spec.Target]; !ok {
					errs = append(errs, &DefinitionError{
						State: name, Event: event,
						Reason: "target " + spec.Target + " is not defined",
					})
				}
			}
		}

		if node.Nested != nil {
			if err := node.Nested.Validate(); err != nil {
				errs = append(errs, &DefinitionError{
					State:  name,
					Reason: "nested machine: " + err.Error(),
				})
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
