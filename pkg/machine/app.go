package machine

import "github.com/stateboard/stateboard/pkg/domain"

// State names of the application machine.
const (
	StateSignup          = "signup"
	StateLogin           = "login"
	StateDashboard       = "dashboard"
	StateAssignTask      = "assignTask"
	StatePendingTasks    = "pendingTasks"
	StateCompletedTasks  = "completedTasks"
	StateProfileSettings = "profileSettings"

	// Dashboard's nested region. The sub-states are bookkeeping only; no
	// external event transitions between them.
	StateDashboardIdle    = "idle"
	StateDashboardLoading = "loading"
)

// App returns the task-management application machine. An event not listed
// for the current state is a no-op: the interpreter returns the unchanged
// (state, context) pair instead of raising an error, so unrecognized or
// out-of-state events never halt the caller.
func App() *Definition {
	return &Definition{
		ID:      "taskManagement",
		Initial: StateSignup,
		States: map[string]StateNode{
			StateSignup: {
				On: map[string][]TransitionSpec{
					domain.EventSignupSuccess: {{Target: StateLogin, Actions: []Action{setUser}}},
					domain.EventSignupError:   {{Actions: []Action{recordError}}},
					domain.EventLoginSuccess:  {{Target: StateDashboard, Actions: []Action{setUser}}},
					domain.EventLoginError:    {{Actions: []Action{recordError}}},
					domain.EventGoToLogin:     {{Target: StateLogin}},
				},
			},
			StateLogin: {
				On: map[string][]TransitionSpec{
					domain.EventLoginSuccess: {{Target: StateDashboard, Actions: []Action{setUser}}},
					domain.EventLoginError:   {{Actions: []Action{recordError}}},
					domain.EventGoToSignup:   {{Target: StateSignup}},
				},
			},
			StateDashboard: {
				Nested: &Definition{
					ID:      "dashboardView",
					Initial: StateDashboardIdle,
					States: map[string]StateNode{
						StateDashboardIdle:    {},
						StateDashboardLoading: {},
					},
				},
				On: map[string][]TransitionSpec{
					domain.EventGoToAssignTask:      {{Target: StateAssignTask}},
					domain.EventGoToPendingTasks:    {{Target: StatePendingTasks}},
					domain.EventGoToCompletedTasks:  {{Target: StateCompletedTasks}},
					domain.EventGoToProfileSettings: {{Target: StateProfileSettings}},
					domain.EventLoadTasks:           {{Actions: []Action{loadTasks}}},
					domain.EventLoadUsers:           {{Actions: []Action{loadUsers}}},
					domain.EventLogout:              {{Target: StateLogin, Actions: []Action{resetSession}}},
				},
			},
			StateAssignTask: {
				On: map[string][]TransitionSpec{
					domain.EventSubmitTask:          {{Actions: []Action{appendTask}}},
					domain.EventTaskError:           {{Actions: []Action{recordError}}},
					domain.EventGoToDashboard:       {{Target: StateDashboard}},
					domain.EventGoToPendingTasks:    {{Target: StatePendingTasks}},
					domain.EventGoToCompletedTasks:  {{Target: StateCompletedTasks}},
					domain.EventGoToProfileSettings: {{Target: StateProfileSettings}},
				},
			},
			StatePendingTasks: {
				On: map[string][]TransitionSpec{
					domain.EventEditTask:                {{Actions: []Action{setCurrentTask}}},
					domain.EventDeleteTask:              {{Actions: []Action{deleteTask}}},
					domain.EventUpdateTaskStatusSuccess: {{Actions: []Action{updateStatusByTitle}}},
					domain.EventUpdateTaskStatusError:   {{Actions: []Action{recordError}}},
					domain.EventMarkAsCompleted:         {{Actions: []Action{completeTask}}},
					domain.EventGoToDashboard:           {{Target: StateDashboard}},
					domain.EventGoToAssignTask:          {{Target: StateAssignTask}},
					domain.EventGoToCompletedTasks:      {{Target: StateCompletedTasks}},
					domain.EventGoToProfileSettings:     {{Target: StateProfileSettings}},
				},
			},
			StateCompletedTasks: {
				On: map[string][]TransitionSpec{
					domain.EventDeleteTask:              {{Actions: []Action{deleteTask}}},
					domain.EventUpdateTaskStatusSuccess: {{Actions: []Action{updateStatusByTitle}}},
					domain.EventUpdateTaskStatusError:   {{Actions: []Action{recordError}}},
					domain.EventGoToDashboard:           {{Target: StateDashboard}},
					domain.EventGoToAssignTask:          {{Target: StateAssignTask}},
					domain.EventGoToPendingTasks:        {{Target: StatePendingTasks}},
					domain.EventGoToProfileSettings:     {{Target: StateProfileSettings}},
				},
			},
			StateProfileSettings: {
				On: map[string][]TransitionSpec{
					domain.EventSaveProfile:        {{Actions: []Action{saveProfile}}},
					domain.EventGoToDashboard:      {{Target: StateDashboard}},
					domain.EventGoToAssignTask:     {{Target: StateAssignTask}},
					domain.EventGoToPendingTasks:   {{Target: StatePendingTasks}},
					domain.EventGoToCompletedTasks: {{Target: StateCompletedTasks}},
				},
			},
		},
	}
}
