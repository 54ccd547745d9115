// Package sqlite implements the store ports on SQLite. It is the default
// durable backend: a single file, WAL mode for concurrent reads, schema
// applied on open.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/ports"
)

//go:embed schema.sql
var schemaSQL string

// Store provides user and task persistence over a SQLite database.
type Store struct {
	db *sql.DB
}

var (
	_ ports.UserStore = (*Store)(nil)
	_ ports.TaskStore = (*Store)(nil)
)

// Open creates or opens a SQLite database at the given path and applies the
// schema. Idempotent: safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateUser inserts an account row.
func (s *Store) CreateUser(ctx context.Context, user domain.User, passwordHash string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, password, firstName, lastName, role, profilePic)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Email, passwordHash, user.FirstName, user.LastName, user.Role, user.ProfilePic,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, domain.ErrUserExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

// GetUserByEmail returns one account row including the password hash.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*ports.StoredUser, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT email, password, firstName, lastName, role, profilePic
		 FROM users WHERE email = ?`, email,
	)

	var u ports.StoredUser
	err := row.Scan(&u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.ProfilePic)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// ListUsers returns every account, without password material.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT email, firstName, lastName, role, profilePic FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Email, &u.FirstName, &u.LastName, &u.Role, &u.ProfilePic); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateProfile applies a partial patch and returns the updated row.
func (s *Store) UpdateProfile(ctx context.Context, email string, patch domain.ProfileUpdate) (*domain.User, error) {
	sets := []string{}
	args := []any{}
	if patch.FirstName != nil {
		sets = append(sets, "firstName = ?")
		args = append(args, *patch.FirstName)
	}
	if patch.LastName != nil {
		sets = append(sets, "lastName = ?")
		args = append(args, *patch.LastName)
	}
	if patch.ProfilePic != nil {
		sets = append(sets, "profilePic = ?")
		args = append(args, *patch.ProfilePic)
	}

	if len(sets) > 0 {
		args = append(args, email)
		res, err := s.db.ExecContext(ctx,
			"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE email = ?", args...,
		)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, domain.ErrUserNotFound
		}
	}

	stored, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	u := stored.User
	return &u, nil
}

// CreateTask inserts a task row and returns its ID.
func (s *Store) CreateTask(ctx context.Context, task domain.Task) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, priority, status, assignedTo, dueDate, createdAt, edited)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.Title, task.Description, task.Priority, task.Status,
		task.AssignedTo, task.DueDate, task.CreatedAt, task.Edited,
	)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return res.LastInsertId()
}

// UpdateTask applies a partial patch to one task row.
func (s *Store) UpdateTask(ctx context.Context, id int64, patch ports.TaskPatch) error {
	sets := []string{}
	args := []any{}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Edited != nil {
		sets = append(sets, "edited = ?")
		args = append(args, *patch.Edited)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes one task row; unknown IDs are a no-op.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// ListTasks returns every task row.
func (s *Store) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.queryTasks(ctx, taskColumns+" FROM tasks ORDER BY id")
}

// ListTasksByAssignee returns the tasks assigned to one email.
func (s *Store) ListTasksByAssignee(ctx context.Context, email string) ([]domain.Task, error) {
	return s.queryTasks(ctx, taskColumns+" FROM tasks WHERE assignedTo = ? ORDER BY id", email)
}

// ListTasksByTitle returns every exact title match.
func (s *Store) ListTasksByTitle(ctx context.Context, title string) ([]domain.Task, error) {
	return s.queryTasks(ctx, taskColumns+" FROM tasks WHERE title = ? ORDER BY id", title)
}

const taskColumns = `SELECT id, title, description, priority, status, assignedTo, dueDate, createdAt, edited`

func (s *Store) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status,
			&t.AssignedTo, &t.DueDate, &t.CreatedAt, &t.Edited); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
