// Package redis implements the store ports on Redis. Records are JSON blobs
// under prefixed keys with set/zset indexes; IDs come from an INCR counter.
// It suits demo and single-writer deployments where the relational backend is
// not available.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	backend "github.com/redis/go-redis/v9"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/ports"
)

// Store implements ports.UserStore and ports.TaskStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
}

var (
	_ ports.UserStore = (*Store)(nil)
	_ ports.TaskStore = (*Store)(nil)
)

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the key prefix for all records.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "stateboard:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) userKey(email string) string { return s.prefix + "user:" + email }
func (s *Store) userIndexKey() string        { return s.prefix + "users" }
func (s *Store) taskKey(id int64) string     { return fmt.Sprintf("%stask:%d", s.prefix, id) }
func (s *Store) taskIndexKey() string        { return s.prefix + "tasks" }
func (s *Store) taskSeqKey() string          { return s.prefix + "task:seq" }
func (s *Store) userSeqKey() string          { return s.prefix + "user:seq" }

// CreateUser stores the account under its email key. SetNX enforces
// uniqueness.
func (s *Store) CreateUser(ctx context.Context, user domain.User, passwordHash string) (int64, error) {
	data, err := json.Marshal(ports.StoredUser{User: user, PasswordHash: passwordHash})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal user: %w", err)
	}

	created, err := s.client.SetNX(ctx, s.userKey(user.Email), data, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to store user: %w", err)
	}
	if !created {
		return 0, domain.ErrUserExists
	}

	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, s.userIndexKey(), user.Email)
	id := pipe.Incr(ctx, s.userSeqKey())
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to index user: %w", err)
	}
	return id.Val(), nil
}

// GetUserByEmail loads one account record.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*ports.StoredUser, error) {
	val, err := s.client.Get(ctx, s.userKey(email)).Result()
	if errors.Is(err, backend.Nil) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var u ports.StoredUser
	if err := json.Unmarshal([]byte(val), &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &u, nil
}

// ListUsers returns every indexed account.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	emails, err := s.client.SMembers(ctx, s.userIndexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	sort.Strings(emails)

	users := make([]domain.User, 0, len(emails))
	for _, email := range emails {
		stored, err := s.GetUserByEmail(ctx, email)
		if errors.Is(err, domain.ErrUserNotFound) {
			continue // index lag, skip
		}
		if err != nil {
			return nil, err
		}
		users = append(users, stored.User)
	}
	return users, nil
}

// UpdateProfile rewrites the account record with the patch applied.
func (s *Store) UpdateProfile(ctx context.Context, email string, patch domain.ProfileUpdate) (*domain.User, error) {
	stored, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	stored.User = patch.Apply(stored.User)

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.client.Set(ctx, s.userKey(email), data, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to store user: %w", err)
	}

	u := stored.User
	return &u, nil
}

// CreateTask allocates an ID and stores the task record.
func (s *Store) CreateTask(ctx context.Context, task domain.Task) (int64, error) {
	id, err := s.client.Incr(ctx, s.taskSeqKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate task id: %w", err)
	}
	task.ID = id

	data, err := json.Marshal(task)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal task: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.taskKey(id), data, 0)
	pipe.ZAdd(ctx, s.taskIndexKey(), backend.Z{Score: float64(id), Member: id})
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to store task: %w", err)
	}
	return id, nil
}

// UpdateTask loads, patches and rewrites one task record.
func (s *Store) UpdateTask(ctx context.Context, id int64, patch ports.TaskPatch) error {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return err
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Edited != nil {
		task.Edited = *patch.Edited
	}

	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}
	if err := s.client.Set(ctx, s.taskKey(id), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store task: %w", err)
	}
	return nil
}

// DeleteTask removes the record and its index entry.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.taskKey(id))
	pipe.ZRem(ctx, s.taskIndexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ListTasks returns every task in ID order.
func (s *Store) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.filterTasks(ctx, func(domain.Task) bool { return true })
}

// ListTasksByAssignee returns the tasks assigned to one email.
func (s *Store) ListTasksByAssignee(ctx context.Context, email string) ([]domain.Task, error) {
	return s.filterTasks(ctx, func(t domain.Task) bool { return t.AssignedTo == email })
}

// ListTasksByTitle returns every exact title match.
func (s *Store) ListTasksByTitle(ctx context.Context, title string) ([]domain.Task, error) {
	return s.filterTasks(ctx, func(t domain.Task) bool { return t.Title == title })
}

func (s *Store) getTask(ctx context.Context, id int64) (*domain.Task, error) {
	val, err := s.client.Get(ctx, s.taskKey(id)).Result()
	if errors.Is(err, backend.Nil) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	var t domain.Task
	if err := json.Unmarshal([]byte(val), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	return &t, nil
}

func (s *Store) filterTasks(ctx context.Context, keep func(domain.Task) bool) ([]domain.Task, error) {
	ids, err := s.client.ZRange(ctx, s.taskIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := []domain.Task{}
	for _, raw := range ids {
		val, err := s.client.Get(ctx, s.prefix+"task:"+raw).Result()
		if errors.Is(err, backend.Nil) {
			continue // index lag, skip
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get task: %w", err)
		}
		var t domain.Task
		if err := json.Unmarshal([]byte(val), &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task: %w", err)
		}
		if keep(t) {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}
