package domain

// Context is the single piece of mutable application data carried across all
// machine states. Every field always holds its last-known value or an explicit
// empty default: the slices are never nil, so JSON renders them as [].
type Context struct {
	User        *User  `json:"user"`
	Tasks       []Task `json:"tasks"`
	Users       []User `json:"users"`
	CurrentTask *Task  `json:"currentTask"`
	Error       string `json:"error"`
}

// NewContext returns an empty context with the slice fields initialized.
func NewContext() Context {
	return Context{
		Tasks: []Task{},
		Users: []User{},
	}
}

// Clone returns a deep copy of the context. User and CurrentTask are copied by
// value so the caller cannot mutate interpreter-owned records through the
// returned pointers.
func (c Context) Clone() Context {
	out := c
	out.Tasks = CloneTasks(c.Tasks)
	out.Users = CloneUsers(c.Users)
	if c.User != nil {
		u := *c.User
		out.User = &u
	}
	if c.CurrentTask != nil {
		t := *c.CurrentTask
		out.CurrentTask = &t
	}
	return out
}
