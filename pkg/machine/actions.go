package machine

import "github.com/stateboard/stateboard/pkg/domain"

// The reducers below are the full transition action set. Each returns a new
// context value built from copies of the slices it touches, so a completed
// send never shares memory with the event payload or a previous snapshot.

func setUser(ctx domain.Context, ev domain.Event) domain.Context {
	if ev.User != nil {
		u := *ev.User
		ctx.User = &u
	} else {
		ctx.User = nil
	}
	ctx.Error = ""
	return ctx
}

func recordError(ctx domain.Context, ev domain.Event) domain.Context {
	ctx.Error = ev.Error
	return ctx
}

// loadTasks replaces the whole collection; sending the same payload twice
// yields the same context both times.
func loadTasks(ctx domain.Context, ev domain.Event) domain.Context {
	ctx.Tasks = domain.CloneTasks(ev.Tasks)
	return ctx
}

func loadUsers(ctx domain.Context, ev domain.Event) domain.Context {
	ctx.Users = domain.CloneUsers(ev.Users)
	return ctx
}

// resetSession returns every field to its empty default on logout.
func resetSession(domain.Context, domain.Event) domain.Context {
	return domain.NewContext()
}

func appendTask(ctx domain.Context, ev domain.Event) domain.Context {
	tasks := domain.CloneTasks(ctx.Tasks)
	if ev.Task != nil {
		tasks = append(tasks, *ev.Task)
	}
	ctx.Tasks = tasks
	ctx.CurrentTask = nil
	return ctx
}

func setCurrentTask(ctx domain.Context, ev domain.Event) domain.Context {
	if ev.Task != nil {
		t := *ev.Task
		ctx.CurrentTask = &t
	} else {
		ctx.CurrentTask = nil
	}
	return ctx
}

func deleteTask(ctx domain.Context, ev domain.Event) domain.Context {
	tasks := make([]domain.Task, 0, len(ctx.Tasks))
	for _, t := range ctx.Tasks {
		if t.ID != ev.TaskID {
			tasks = append(tasks, t)
		}
	}
	ctx.Tasks = tasks
	return ctx
}

// updateStatusByTitle patches every task whose title matches exactly. Matching
// by title rather than ID means duplicate titles update together; that is the
// application's historical behavior and callers rely on it.
func updateStatusByTitle(ctx domain.Context, ev domain.Event) domain.Context {
	tasks := domain.CloneTasks(ctx.Tasks)
	for i := range tasks {
		if tasks[i].Title == ev.TaskTitle {
			tasks[i].Status = normalizeStatus(ev.NewStatus)
			tasks[i].Edited = true
		}
	}
	ctx.Tasks = tasks
	return ctx
}

func completeTask(ctx domain.Context, ev domain.Event) domain.Context {
	tasks := domain.CloneTasks(ctx.Tasks)
	for i := range tasks {
		if tasks[i].ID == ev.TaskID {
			tasks[i].Status = domain.StatusCompleted
		}
	}
	ctx.Tasks = tasks
	return ctx
}

func saveProfile(ctx domain.Context, ev domain.Event) domain.Context {
	if ctx.User == nil || ev.Profile == nil {
		return ctx
	}
	u := ev.Profile.Apply(*ctx.User)
	ctx.User = &u
	return ctx
}

// normalizeStatus maps the client literal "inProgress" to the stored status
// value. Any other literal passes through unchanged.
func normalizeStatus(s string) string {
	if s == "inProgress" {
		return domain.StatusInProgress
	}
	return s
}
