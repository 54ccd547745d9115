package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateValue_JSON(t *testing.T) {
	t.Run("flat state marshals as string", func(t *testing.T) {
		data, err := json.Marshal(domain.StateValue{Name: "login"})
		require.NoError(t, err)
		assert.JSONEq(t, `"login"`, string(data))
	})

	t.Run("nested state marshals as object", func(t *testing.T) {
		data, err := json.Marshal(domain.StateValue{Name: "dashboard", Child: "idle"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"dashboard":"idle"}`, string(data))
	})

	t.Run("round trip", func(t *testing.T) {
		for _, v := range []domain.StateValue{
			{Name: "signup"},
			{Name: "dashboard", Child: "loading"},
		} {
			data, err := json.Marshal(v)
			require.NoError(t, err)

			var got domain.StateValue
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, v, got)
		}
	})
}

func TestStateValue_String(t *testing.T) {
	assert.Equal(t, "login", domain.StateValue{Name: "login"}.String())
	assert.Equal(t, "dashboard.idle", domain.StateValue{Name: "dashboard", Child: "idle"}.String())
}

func TestContext_Clone_Isolation(t *testing.T) {
	orig := domain.NewContext()
	orig.User = &domain.User{Email: "lead@example.com", Role: domain.RoleTeamLead}
	orig.Tasks = []domain.Task{{ID: 1, Title: "Ship it", Status: domain.StatusPending}}

	clone := orig.Clone()
	clone.User.Email = "changed@example.com"
	clone.Tasks[0].Status = domain.StatusCompleted

	assert.Equal(t, "lead@example.com", orig.User.Email)
	assert.Equal(t, domain.StatusPending, orig.Tasks[0].Status)
}

func TestContext_JSON_EmptyDefaults(t *testing.T) {
	data, err := json.Marshal(domain.NewContext())
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":null,"tasks":[],"users":[],"currentTask":null,"error":""}`, string(data))
}

func TestProfileUpdate_Apply(t *testing.T) {
	first := "Ana"
	pic := "data:image/png;base64,xyz"
	u := domain.User{Email: "a@b.com", FirstName: "Anna", LastName: "Lima", Role: domain.RoleTeamMember}

	got := domain.ProfileUpdate{FirstName: &first, ProfilePic: &pic}.Apply(u)

	assert.Equal(t, "Ana", got.FirstName)
	assert.Equal(t, "Lima", got.LastName, "nil fields stay untouched")
	assert.Equal(t, pic, got.ProfilePic)
	assert.Equal(t, "Anna", u.FirstName, "Apply works on a copy")
}
