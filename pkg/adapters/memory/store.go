// Package memory provides in-memory implementations of the store ports.
// Safe for concurrent use. Used by tests and demo mode; records do not
// survive a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/ports"
)

// Store implements ports.UserStore and ports.TaskStore over mutex-guarded
// maps.
type Store struct {
	mu     sync.RWMutex
	users  map[string]ports.StoredUser // keyed by email
	tasks  map[int64]domain.Task
	nextID int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users: make(map[string]ports.StoredUser),
		tasks: make(map[int64]domain.Task),
	}
}

var (
	_ ports.UserStore = (*Store)(nil)
	_ ports.TaskStore = (*Store)(nil)
)

// CreateUser inserts an account keyed by email.
func (s *Store) CreateUser(ctx context.Context, user domain.User, passwordHash string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return 0, domain.ErrUserExists
	}
	s.nextID++
	s.users[user.Email] = ports.StoredUser{User: user, PasswordHash: passwordHash}
	return s.nextID, nil
}

// GetUserByEmail returns the stored record including the password hash.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*ports.StoredUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// ListUsers returns every account.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.User)
	}
	return out, nil
}

// UpdateProfile applies a partial patch to an account.
func (s *Store) UpdateProfile(ctx context.Context, email string, patch domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	stored.User = patch.Apply(stored.User)
	s.users[email] = stored

	u := stored.User
	return &u, nil
}

// CreateTask inserts a task and assigns the next ID.
func (s *Store) CreateTask(ctx context.Context, task domain.Task) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	task.ID = s.nextID
	s.tasks[task.ID] = task
	return task.ID, nil
}

// UpdateTask applies a partial patch to a task.
func (s *Store) UpdateTask(ctx context.Context, id int64, patch ports.TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Edited != nil {
		task.Edited = *patch.Edited
	}
	s.tasks[id] = task
	return nil
}

// DeleteTask removes a task; unknown IDs are a no-op.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, id)
	return nil
}

// ListTasks returns every task ordered by ID.
func (s *Store) ListTasks(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(domain.Task) bool { return true }), nil
}

// ListTasksByAssignee returns the tasks assigned to one email.
func (s *Store) ListTasksByAssignee(ctx context.Context, email string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(t domain.Task) bool { return t.AssignedTo == email }), nil
}

// ListTasksByTitle returns every exact title match.
func (s *Store) ListTasksByTitle(ctx context.Context, title string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(t domain.Task) bool { return t.Title == title }), nil
}

// collect gathers matching tasks in ascending ID order. Callers hold the lock.
func (s *Store) collect(keep func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
