package runtime_test

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stateboard/stateboard/internal/runtime"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInterpreter(t *testing.T, opts ...runtime.Option) *runtime.Interpreter {
	t.Helper()
	opts = append(opts, runtime.WithLogger(slogt.New(t)))
	in, err := runtime.New(machine.App(), opts...)
	require.NoError(t, err)
	return in
}

func TestNew_RejectsInvalidDefinition(t *testing.T) {
	_, err := runtime.New(&machine.Definition{ID: "broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid machine definition")
}

func TestStart_EntersInitialState(t *testing.T) {
	in := newInterpreter(t)

	snap := in.Start()
	assert.Equal(t, machine.StateSignup, snap.State.Name)
	assert.True(t, snap.Changed)
	assert.NotNil(t, snap.Context.Tasks)
}

func TestStart_SecondCallIsNoOp(t *testing.T) {
	in := newInterpreter(t)
	in.Start()
	in.Send(domain.Event{Type: domain.EventGoToLogin})

	snap := in.Start()
	assert.Equal(t, machine.StateLogin, snap.State.Name, "restart must not rewind the machine")
	assert.False(t, snap.Changed)
}

func TestSend_BeforeStartIsNoOp(t *testing.T) {
	in := newInterpreter(t)

	snap := in.Send(domain.Event{Type: domain.EventGoToLogin})
	assert.False(t, snap.Changed)
	assert.Empty(t, snap.State.Name)
}

func TestSend_UnhandledEventLeavesEverythingUnchanged(t *testing.T) {
	in := newInterpreter(t)
	in.Start()

	before := in.Snapshot()
	for _, ev := range []string{
		domain.EventLogout,        // only handled on dashboard
		domain.EventSubmitTask,    // only handled on assignTask
		domain.EventViewAllTasks,  // bare navigation event, handled nowhere
		"SOMETHING_COMPLETELY_UNKNOWN",
	} {
		snap := in.Send(domain.Event{Type: ev})
		assert.False(t, snap.Changed, ev)
		assert.Equal(t, before.State, snap.State, ev)
		assert.Equal(t, before.Context, snap.Context, ev)
	}
}

func TestSend_FullUserJourney(t *testing.T) {
	in := newInterpreter(t)

	snap := in.Start()
	require.Equal(t, machine.StateSignup, snap.State.Name)

	snap = in.Send(domain.Event{
		Type: domain.EventSignupSuccess,
		User: &domain.User{Email: "a@b.com"},
	})
	require.Equal(t, machine.StateLogin, snap.State.Name)
	require.NotNil(t, snap.Context.User)
	assert.Equal(t, "a@b.com", snap.Context.User.Email)
	assert.Empty(t, snap.Context.Error)

	snap = in.Send(domain.Event{
		Type: domain.EventLoginSuccess,
		User: &domain.User{Email: "a@b.com"},
	})
	require.Equal(t, machine.StateDashboard, snap.State.Name)
	assert.Equal(t, machine.StateDashboardIdle, snap.State.Child)

	snap = in.Send(domain.Event{Type: domain.EventGoToAssignTask})
	require.Equal(t, machine.StateAssignTask, snap.State.Name)

	snap = in.Send(domain.Event{
		Type: domain.EventSubmitTask,
		Task: &domain.Task{ID: 1, Title: "X"},
	})
	assert.Equal(t, machine.StateAssignTask, snap.State.Name, "SUBMIT_TASK is internal")
	require.Len(t, snap.Context.Tasks, 1)
	assert.Equal(t, "X", snap.Context.Tasks[0].Title)
}

func TestSend_LogoutResetsContext(t *testing.T) {
	in := newInterpreter(t)
	in.Start()
	in.Send(domain.Event{Type: domain.EventLoginSuccess, User: &domain.User{Email: "a@b.com"}})
	in.Send(domain.Event{Type: domain.EventLoadTasks, Tasks: []domain.Task{{ID: 1}, {ID: 2}}})

	snap := in.Send(domain.Event{Type: domain.EventLogout})
	assert.Equal(t, machine.StateLogin, snap.State.Name)
	assert.Nil(t, snap.Context.User)
	assert.Empty(t, snap.Context.Tasks)
	assert.Empty(t, snap.Context.Users)
	assert.Nil(t, snap.Context.CurrentTask)
	assert.Empty(t, snap.Context.Error)
}

func TestSend_ErrorEventsStayPut(t *testing.T) {
	in := newInterpreter(t)
	in.Start()

	snap := in.Send(domain.Event{Type: domain.EventSignupError, Error: "User already exists"})
	assert.Equal(t, machine.StateSignup, snap.State.Name)
	assert.Equal(t, "User already exists", snap.Context.Error)
	assert.True(t, snap.Changed)
}

func TestObservers_SeeInitAndEverySend(t *testing.T) {
	type seen struct {
		prev  string
		state string
		event string
	}
	var log []seen

	in := newInterpreter(t, runtime.WithObserver(func(prev domain.StateValue, snap domain.Snapshot, ev domain.Event) {
		log = append(log, seen{prev: prev.String(), state: snap.State.String(), event: ev.Type})
	}))

	in.Start()
	in.Send(domain.Event{Type: domain.EventGoToLogin})
	in.Send(domain.Event{Type: "NOT_HANDLED"})

	require.Len(t, log, 3)
	assert.Equal(t, domain.EventInit, log[0].event)
	assert.Equal(t, "signup", log[0].state)
	assert.Equal(t, seen{prev: "signup", state: "login", event: domain.EventGoToLogin}, log[1])
	assert.Equal(t, "NOT_HANDLED", log[2].event, "observers hear no-ops too")
}

func TestSnapshot_IsIsolatedFromInterpreterState(t *testing.T) {
	in := newInterpreter(t)
	in.Start()
	in.Send(domain.Event{Type: domain.EventLoginSuccess, User: &domain.User{Email: "a@b.com"}})

	snap := in.Snapshot()
	snap.Context.User.Email = "tampered@example.com"
	snap.Context.Tasks = append(snap.Context.Tasks, domain.Task{ID: 99})

	fresh := in.Snapshot()
	assert.Equal(t, "a@b.com", fresh.Context.User.Email)
	assert.Empty(t, fresh.Context.Tasks)
}

func TestRestore_ReplacesStateWholesale(t *testing.T) {
	in := newInterpreter(t)

	ctx := domain.NewContext()
	ctx.User = &domain.User{Email: "a@b.com"}
	in.Restore(domain.Snapshot{
		State:   domain.StateValue{Name: machine.StateDashboard, Child: machine.StateDashboardIdle},
		Context: ctx,
	})

	snap := in.Snapshot()
	assert.Equal(t, machine.StateDashboard, snap.State.Name)
	require.NotNil(t, snap.Context.User)

	// Restored instance accepts events immediately, no Start required.
	snap = in.Send(domain.Event{Type: domain.EventGoToPendingTasks})
	assert.Equal(t, machine.StatePendingTasks, snap.State.Name)
}
