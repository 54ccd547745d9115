// Package seed populates the stores with a small demo team and task board.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/ports"
)

// Password is the plain-text password every demo account gets.
const Password = "password123"

const profilePic = "/src/assets/user-icon.png"

var demoUsers = []domain.User{
	{Email: "admin@example.com", FirstName: "Admin", LastName: "User", Role: domain.RoleTeamLead, ProfilePic: profilePic},
	{Email: "jane.smith@example.com", FirstName: "Jane", LastName: "Smith", Role: domain.RoleTeamMember, ProfilePic: profilePic},
	{Email: "michael.brown@example.com", FirstName: "Michael", LastName: "Brown", Role: domain.RoleTeamMember, ProfilePic: profilePic},
	{Email: "sarah.davis@example.com", FirstName: "Sarah", LastName: "Davis", Role: domain.RoleTeamMember, ProfilePic: profilePic},
	{Email: "david.miller@example.com", FirstName: "David", LastName: "Miller", Role: domain.RoleTeamMember, ProfilePic: profilePic},
}

var demoTasks = []domain.Task{
	{Title: "Design user dashboard", Description: "Create a clean dashboard layout for the task overview.", Priority: domain.PriorityHigh, Status: domain.StatusPending, AssignedTo: "jane.smith@example.com", DueDate: "2026-10-01", CreatedAt: "2026-09-01"},
	{Title: "Implement search functionality", Description: "Implement robust search with filters and advanced queries.", Priority: domain.PriorityMedium, Status: domain.StatusInProgress, AssignedTo: "michael.brown@example.com", DueDate: "2026-10-15", CreatedAt: "2026-09-01"},
	{Title: "Fix login page styling", Description: "Align the login form with the design system spacing.", Priority: domain.PriorityLow, Status: domain.StatusCompleted, AssignedTo: "sarah.davis@example.com", DueDate: "2026-09-20", CreatedAt: "2026-08-15"},
	{Title: "Write API documentation", Description: "Document the event and auth endpoints with examples.", Priority: domain.PriorityMedium, Status: domain.StatusPending, AssignedTo: "david.miller@example.com", DueDate: "2026-11-01", CreatedAt: "2026-09-01"},
	{Title: "Develop chat functionality", Description: "Develop real-time chat for team communication.", Priority: domain.PriorityHigh, Status: domain.StatusInProgress, AssignedTo: "jane.smith@example.com", DueDate: "2026-11-15", CreatedAt: "2026-09-01"},
	{Title: "Implement role-based permissions", Description: "Implement granular role-based permissions.", Priority: domain.PriorityHigh, Status: domain.StatusPending, AssignedTo: "michael.brown@example.com", DueDate: "2026-12-01", CreatedAt: "2026-09-01"},
	{Title: "Create data export", Description: "Create data export in CSV and PDF formats.", Priority: domain.PriorityLow, Status: domain.StatusPending, AssignedTo: "sarah.davis@example.com", DueDate: "2026-12-15", CreatedAt: "2026-09-01"},
	{Title: "Set up monitoring alerts", Description: "Wire alerting for error rates and latency.", Priority: domain.PriorityMedium, Status: domain.StatusCompleted, AssignedTo: "david.miller@example.com", DueDate: "2026-09-10", CreatedAt: "2026-08-01"},
}

// Run inserts the demo users and tasks. Accounts that already exist are
// skipped, so running it twice is safe; tasks are only inserted on the first
// run detected via an existing demo account.
func Run(ctx context.Context, users ports.UserStore, tasks ports.TaskStore, logger *slog.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	inserted := 0
	for _, u := range demoUsers {
		_, err := users.CreateUser(ctx, u, string(hash))
		switch {
		case errors.Is(err, domain.ErrUserExists):
			continue
		case err != nil:
			return fmt.Errorf("seeding user %s: %w", u.Email, err)
		}
		inserted++
	}

	if inserted == 0 {
		logger.Info("seed skipped, demo accounts already present")
		return nil
	}

	for _, task := range demoTasks {
		if _, err := tasks.CreateTask(ctx, task); err != nil {
			return fmt.Errorf("seeding task %q: %w", task.Title, err)
		}
	}

	logger.Info("seed complete", "users", inserted, "tasks", len(demoTasks))
	return nil
}
