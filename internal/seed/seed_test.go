package seed_test

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stateboard/stateboard/internal/seed"
	"github.com/stateboard/stateboard/pkg/adapters/memory"
	"github.com/stateboard/stateboard/pkg/domain"
)

func TestRun(t *testing.T) {
	store := memory.NewStore()
	ctx := t.Context()

	require.NoError(t, seed.Run(ctx, store, store, slogt.New(t)))

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, users)

	leads := 0
	for _, u := range users {
		if u.Role == domain.RoleTeamLead {
			leads++
		}
	}
	assert.Equal(t, 1, leads)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, tasks)

	// Demo accounts log in with the published password.
	stored, err := store.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(seed.Password)))
}

func TestRun_Idempotent(t *testing.T) {
	store := memory.NewStore()
	ctx := t.Context()

	require.NoError(t, seed.Run(ctx, store, store, slogt.New(t)))
	require.NoError(t, seed.Run(ctx, store, store, slogt.New(t)))

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)

	assert.Len(t, users, 5)
	assert.Len(t, tasks, 8)
}
