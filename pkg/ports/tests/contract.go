// Package tests holds reusable contract suites that verify a store adapter
// complies with the ports interfaces. Every adapter runs the same suite.
package tests

import (
	"context"
	"testing"

	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UserStoreContract verifies an implementation of ports.UserStore.
// The store must be empty when the suite starts.
func UserStoreContract(t *testing.T, store ports.UserStore) {
	t.Helper()
	ctx := context.Background()

	lead := domain.User{
		Email:     "lead@example.com",
		FirstName: "Dana",
		LastName:  "Reis",
		Role:      domain.RoleTeamLead,
	}

	t.Run("CreateAndGet", func(t *testing.T) {
		id, err := store.CreateUser(ctx, lead, "hash-1")
		require.NoError(t, err)
		assert.Positive(t, id)

		got, err := store.GetUserByEmail(ctx, lead.Email)
		require.NoError(t, err)
		assert.Equal(t, lead, got.User)
		assert.Equal(t, "hash-1", got.PasswordHash)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := store.CreateUser(ctx, lead, "hash-2")
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("GetUnknown", func(t *testing.T) {
		_, err := store.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("ListUsers", func(t *testing.T) {
		member := domain.User{Email: "member@example.com", FirstName: "Ivo", Role: domain.RoleTeamMember}
		_, err := store.CreateUser(ctx, member, "hash-3")
		require.NoError(t, err)

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)

		emails := []string{users[0].Email, users[1].Email}
		assert.Contains(t, emails, lead.Email)
		assert.Contains(t, emails, member.Email)
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		first := "Dani"
		pic := "data:image/png;base64,abc"
		got, err := store.UpdateProfile(ctx, lead.Email, domain.ProfileUpdate{
			FirstName:  &first,
			ProfilePic: &pic,
		})
		require.NoError(t, err)
		assert.Equal(t, "Dani", got.FirstName)
		assert.Equal(t, "Reis", got.LastName, "untouched field survives")
		assert.Equal(t, pic, got.ProfilePic)

		_, err = store.UpdateProfile(ctx, "nobody@example.com", domain.ProfileUpdate{})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

// TaskStoreContract verifies an implementation of ports.TaskStore.
// The store must be empty when the suite starts.
func TaskStoreContract(t *testing.T, store ports.TaskStore) {
	t.Helper()
	ctx := context.Background()

	mk := func(title, assignee string) domain.Task {
		return domain.Task{
			Title:       title,
			Description: "desc of " + title,
			Priority:    domain.PriorityMedium,
			Status:      domain.StatusPending,
			AssignedTo:  assignee,
			DueDate:     "2026-09-15",
			CreatedAt:   "2026-09-01T10:00:00Z",
		}
	}

	var first, second int64

	t.Run("CreateAndList", func(t *testing.T) {
		var err error
		first, err = store.CreateTask(ctx, mk("Ship release", "a@example.com"))
		require.NoError(t, err)
		second, err = store.CreateTask(ctx, mk("Write docs", "b@example.com"))
		require.NoError(t, err)
		_, err = store.CreateTask(ctx, mk("Ship release", "b@example.com"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)

		tasks, err := store.ListTasks(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, 3)
	})

	t.Run("ListByAssignee", func(t *testing.T) {
		tasks, err := store.ListTasksByAssignee(ctx, "b@example.com")
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("ListByTitle", func(t *testing.T) {
		tasks, err := store.ListTasksByTitle(ctx, "Ship release")
		require.NoError(t, err)
		assert.Len(t, tasks, 2)

		tasks, err = store.ListTasksByTitle(ctx, "No such title")
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("UpdateTask", func(t *testing.T) {
		status := domain.StatusInProgress
		edited := true
		require.NoError(t, store.UpdateTask(ctx, first, ports.TaskPatch{Status: &status, Edited: &edited}))

		tasks, err := store.ListTasks(ctx)
		require.NoError(t, err)
		for _, task := range tasks {
			if task.ID == first {
				assert.Equal(t, domain.StatusInProgress, task.Status)
				assert.True(t, task.Edited)
			} else {
				assert.Equal(t, domain.StatusPending, task.Status)
			}
		}

		err = store.UpdateTask(ctx, 9999, ports.TaskPatch{Status: &status})
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("DeleteTask", func(t *testing.T) {
		require.NoError(t, store.DeleteTask(ctx, second))

		tasks, err := store.ListTasks(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, 2)

		// Deleting an unknown ID is a no-op.
		assert.NoError(t, store.DeleteTask(ctx, 9999))
	})
}
