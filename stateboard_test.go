package stateboard_test

import (
	"testing"

	"github.com/neilotoole/slogt"
	stateboard "github.com/stateboard/stateboard"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_DispatchKeepsMirrorInStep(t *testing.T) {
	for name, mode := range map[string]stateboard.MirrorMode{
		"replay": stateboard.MirrorReplay,
		"resync": stateboard.MirrorResync,
	} {
		t.Run(name, func(t *testing.T) {
			svc, err := stateboard.New(
				stateboard.WithLogger(slogt.New(t)),
				stateboard.WithMirror(mode),
			)
			require.NoError(t, err)
			svc.Start()

			svc.Dispatch(domain.Event{Type: domain.EventSignupSuccess, User: &domain.User{Email: "a@b.com"}})
			snap := svc.Dispatch(domain.Event{Type: domain.EventLoginSuccess, User: &domain.User{Email: "a@b.com"}})
			require.Equal(t, machine.StateDashboard, snap.State.Name)

			mirrored, ok := svc.MirrorSnapshot()
			require.True(t, ok)
			assert.Equal(t, snap.State, mirrored.State)
			assert.Equal(t, snap.Context, mirrored.Context)
		})
	}
}

func TestService_NoMirrorByDefault(t *testing.T) {
	svc, err := stateboard.New(stateboard.WithLogger(slogt.New(t)))
	require.NoError(t, err)
	svc.Start()

	_, ok := svc.MirrorSnapshot()
	assert.False(t, ok)
}

func TestService_ObserversAreDiagnosticOnly(t *testing.T) {
	svc, err := stateboard.New(stateboard.WithLogger(slogt.New(t)))
	require.NoError(t, err)

	var events []string
	svc.Subscribe(func(prev domain.StateValue, snap domain.Snapshot, ev domain.Event) {
		events = append(events, ev.Type)
	})

	svc.Start()
	svc.Dispatch(domain.Event{Type: domain.EventGoToLogin})

	assert.Equal(t, []string{domain.EventInit, domain.EventGoToLogin}, events)
}
