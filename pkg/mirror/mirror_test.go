package mirror_test

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stateboard/stateboard/internal/runtime"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/machine"
	"github.com/stateboard/stateboard/pkg/mirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror_ConvergesOnSameEventStream(t *testing.T) {
	def := machine.App()

	auth, err := runtime.New(def, runtime.WithLogger(slogt.New(t)))
	require.NoError(t, err)
	auth.Start()

	m, err := mirror.New(def, slogt.New(t))
	require.NoError(t, err)

	stream := []domain.Event{
		{Type: domain.EventSignupSuccess, User: &domain.User{Email: "a@b.com"}},
		{Type: domain.EventLoginSuccess, User: &domain.User{Email: "a@b.com"}},
		{Type: domain.EventLoadTasks, Tasks: []domain.Task{{ID: 1, Title: "X", Status: domain.StatusPending}}},
		{Type: domain.EventGoToPendingTasks},
		{Type: domain.EventUpdateTaskStatusSuccess, TaskTitle: "X", NewStatus: "inProgress"},
	}

	var authSnap, mirrorSnap domain.Snapshot
	for _, ev := range stream {
		authSnap = auth.Send(ev)
		mirrorSnap = m.Replay(ev)
	}

	assert.Equal(t, authSnap.State, mirrorSnap.State)
	assert.Equal(t, authSnap.Context, mirrorSnap.Context)
	assert.Equal(t, domain.StatusInProgress, mirrorSnap.Context.Tasks[0].Status)
}

func TestMirror_DivergesSilentlyUntilLoad(t *testing.T) {
	def := machine.App()

	auth, err := runtime.New(def, runtime.WithLogger(slogt.New(t)))
	require.NoError(t, err)
	auth.Start()

	m, err := mirror.New(def, slogt.New(t))
	require.NoError(t, err)

	login := domain.Event{Type: domain.EventLoginSuccess, User: &domain.User{Email: "a@b.com"}}
	auth.Send(login)
	m.Replay(login)

	// Drop one event on the mirror side: collections diverge.
	auth.Send(domain.Event{Type: domain.EventLoadTasks, Tasks: []domain.Task{{ID: 1}}})
	assert.NotEqual(t, auth.Snapshot().Context.Tasks, m.Snapshot().Context.Tasks)

	// The next full-collection load resynchronizes.
	reload := domain.Event{Type: domain.EventLoadTasks, Tasks: []domain.Task{{ID: 1}}}
	auth.Send(reload)
	m.Replay(reload)
	assert.Equal(t, auth.Snapshot().Context.Tasks, m.Snapshot().Context.Tasks)
}

func TestMirror_Resync(t *testing.T) {
	def := machine.App()

	auth, err := runtime.New(def, runtime.WithLogger(slogt.New(t)))
	require.NoError(t, err)
	auth.Start()
	auth.Send(domain.Event{Type: domain.EventLoginSuccess, User: &domain.User{Email: "a@b.com"}})

	m, err := mirror.New(def, slogt.New(t))
	require.NoError(t, err)

	// Mirror saw nothing, then receives the authoritative snapshot wholesale.
	m.Resync(auth.Snapshot())

	assert.Equal(t, auth.Snapshot().State, m.Snapshot().State)
	assert.Equal(t, auth.Snapshot().Context, m.Snapshot().Context)
}
