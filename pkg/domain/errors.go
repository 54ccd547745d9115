package domain

import "errors"

// ErrUserExists is returned when a signup collides with an existing account.
var ErrUserExists = errors.New("user already exists")

// ErrUserNotFound is returned when an email does not match any account.
var ErrUserNotFound = errors.New("user not found")

// ErrTaskNotFound is returned when a task ID or title matches no record.
var ErrTaskNotFound = errors.New("task not found")

// ErrInvalidCredentials is returned when a password check fails.
var ErrInvalidCredentials = errors.New("invalid credentials")
