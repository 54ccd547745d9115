package ports

import (
	"context"

	"github.com/stateboard/stateboard/pkg/domain"
)

// StoredUser is an account record together with its password hash. The hash
// never leaves the transport layer.
type StoredUser struct {
	domain.User
	PasswordHash string
}

// UserStore persists application accounts.
type UserStore interface {
	// CreateUser inserts a new account. Returns domain.ErrUserExists when the
	// email is already registered.
	CreateUser(ctx context.Context, user domain.User, passwordHash string) (int64, error)

	// GetUserByEmail returns the stored record, including the password hash.
	// Returns domain.ErrUserNotFound when the email is unknown.
	GetUserByEmail(ctx context.Context, email string) (*StoredUser, error)

	// ListUsers returns every account, for assignment pickers.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateProfile applies a partial profile patch and returns the updated
	// record. Returns domain.ErrUserNotFound when the email is unknown.
	UpdateProfile(ctx context.Context, email string, patch domain.ProfileUpdate) (*domain.User, error)
}

// TaskPatch is a partial task update; nil fields are left untouched.
type TaskPatch struct {
	Status *string
	Edited *bool
}

// TaskStore persists task records.
type TaskStore interface {
	// CreateTask inserts a task and returns its assigned ID.
	CreateTask(ctx context.Context, task domain.Task) (int64, error)

	// UpdateTask applies a partial patch. Returns domain.ErrTaskNotFound when
	// the ID is unknown.
	UpdateTask(ctx context.Context, id int64, patch TaskPatch) error

	// DeleteTask removes a task by ID. Deleting an unknown ID is not an error.
	DeleteTask(ctx context.Context, id int64) error

	// ListTasks returns every task.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// ListTasksByAssignee returns the tasks assigned to one email.
	ListTasksByAssignee(ctx context.Context, email string) ([]domain.Task, error)

	// ListTasksByTitle returns every task with an exact title match.
	ListTasksByTitle(ctx context.Context, title string) ([]domain.Task, error)
}
