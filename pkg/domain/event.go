package domain

// Event types handled by the machine's transition tables.
const (
	EventSignupSuccess           = "SIGNUP_SUCCESS"
	EventSignupError             = "SIGNUP_ERROR"
	EventLoginSuccess            = "LOGIN_SUCCESS"
	EventLoginError              = "LOGIN_ERROR"
	EventGoToLogin               = "GO_TO_LOGIN"
	EventGoToSignup              = "GO_TO_SIGNUP"
	EventGoToDashboard           = "GO_TO_DASHBOARD"
	EventGoToAssignTask          = "GO_TO_ASSIGN_TASK"
	EventGoToPendingTasks        = "GO_TO_PENDING_TASKS"
	EventGoToCompletedTasks      = "GO_TO_COMPLETED_TASKS"
	EventGoToProfileSettings     = "GO_TO_PROFILE_SETTINGS"
	EventLoadTasks               = "LOAD_TASKS"
	EventLoadUsers               = "LOAD_USERS"
	EventLogout                  = "LOGOUT"
	EventSubmitTask              = "SUBMIT_TASK"
	EventTaskError               = "TASK_ERROR"
	EventEditTask                = "EDIT_TASK"
	EventDeleteTask              = "DELETE_TASK"
	EventUpdateTaskStatusSuccess = "UPDATE_TASK_STATUS_SUCCESS"
	EventUpdateTaskStatusError   = "UPDATE_TASK_STATUS_ERROR"
	EventMarkAsCompleted         = "MARK_AS_COMPLETED"
	EventSaveProfile             = "SAVE_PROFILE"
)

// Bare navigation events accepted on the wire. No state handles them, so the
// interpreter absorbs them silently; they stay in the vocabulary because
// clients send them.
const (
	EventAssignTask    = "ASSIGN_TASK"
	EventViewAllTasks  = "VIEW_ALL_TASKS"
	EventViewPending   = "VIEW_PENDING"
	EventViewCompleted = "VIEW_COMPLETED"
	EventProfile       = "PROFILE"
	EventGoBack        = "GO_BACK"
	EventCancel        = "CANCEL"
)

// EventInit is the synthetic event delivered to observers when an interpreter
// starts. It is never part of a transition table.
const EventInit = "machine.init"

// Event is a named message sent to the interpreter to request a transition.
// The payload fields mirror the wire format; only the ones relevant to the
// event type are populated.
type Event struct {
	Type string `json:"type"`

	User      *User          `json:"user,omitempty"`
	Tasks     []Task         `json:"tasks,omitempty"`
	Users     []User         `json:"users,omitempty"`
	Task      *Task          `json:"task,omitempty"`
	TaskID    int64          `json:"taskId,omitempty"`
	TaskTitle string         `json:"taskTitle,omitempty"`
	NewStatus string         `json:"newStatus,omitempty"`
	Profile   *ProfileUpdate `json:"profileData,omitempty"`
	Error     string         `json:"error,omitempty"`
}
