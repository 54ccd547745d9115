package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/ports"
)

// eventRequest is the wire form of POST /fsm/event: a type plus a payload
// whose shape depends on the type.
type eventRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type signupData struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type loginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type taskData struct {
	Task domain.Task `json:"task"`
}

type taskIDData struct {
	TaskID int64 `json:"taskId"`
}

type statusData struct {
	TaskTitle string `json:"taskTitle"`
	NewStatus string `json:"newStatus"`
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.logger.Warn("event: invalid request body", "err", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	s.logger.Info("event received", "type", req.Type)

	switch req.Type {
	case "SIGNUP":
		var data signupData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			return
		}
		s.doSignup(w, r, data)

	case "LOGIN":
		var data loginData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			return
		}
		s.doLogin(w, r, data, true)

	case "SUBMIT_TASK":
		var data taskData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			return
		}
		s.submitTask(w, r, data.Task)

	case "MARK_AS_COMPLETED":
		var data taskIDData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			return
		}
		s.markCompleted(w, r, data.TaskID)

	case "UPDATE_TASK_STATUS":
		var data statusData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			return
		}
		s.updateTaskStatus(w, r, data.TaskTitle, data.NewStatus)

	case "DELETE_TASK":
		var data taskIDData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			return
		}
		s.deleteTask(w, r, data.TaskID)

	case domain.EventAssignTask, domain.EventViewAllTasks, domain.EventViewPending,
		domain.EventViewCompleted, domain.EventProfile, domain.EventLogout,
		domain.EventGoBack, domain.EventCancel, domain.EventGoToLogin, domain.EventGoToSignup,
		domain.EventGoToDashboard, domain.EventGoToAssignTask, domain.EventGoToPendingTasks,
		domain.EventGoToCompletedTasks, domain.EventGoToProfileSettings:
		snap := s.service.Dispatch(domain.Event{Type: req.Type})
		s.respondState(w, http.StatusOK, snap, nil)

	default:
		s.respondState(w, http.StatusBadRequest, s.service.Snapshot(), func(resp *stateResponse) {
			resp.Error = "Unknown event type"
		})
	}
}

func (s *Server) submitTask(w http.ResponseWriter, r *http.Request, task domain.Task) {
	id, err := s.tasks.CreateTask(r.Context(), task)
	if err != nil {
		s.logger.Error("task create failed", "err", err)
		snap := s.service.Dispatch(domain.Event{Type: domain.EventTaskError, Error: err.Error()})
		s.respondState(w, http.StatusInternalServerError, snap, func(resp *stateResponse) {
			resp.Error = err.Error()
		})
		return
	}

	task.ID = id
	snap := s.service.Dispatch(domain.Event{Type: domain.EventSubmitTask, Task: &task})
	s.respondState(w, http.StatusOK, snap, func(resp *stateResponse) {
		resp.Success = true
		resp.Task = &task
	})
}

func (s *Server) markCompleted(w http.ResponseWriter, r *http.Request, taskID int64) {
	status := domain.StatusCompleted
	if err := s.tasks.UpdateTask(r.Context(), taskID, ports.TaskPatch{Status: &status}); err != nil {
		s.logger.Error("task completion failed", "taskId", taskID, "err", err)
		s.respondState(w, http.StatusInternalServerError, s.service.Snapshot(), func(resp *stateResponse) {
			resp.Error = err.Error()
		})
		return
	}

	snap := s.service.Dispatch(domain.Event{Type: domain.EventMarkAsCompleted, TaskID: taskID})
	s.respondState(w, http.StatusOK, snap, func(resp *stateResponse) {
		resp.Success = true
	})
}

func (s *Server) updateTaskStatus(w http.ResponseWriter, r *http.Request, title, newStatus string) {
	fail := func(err error) {
		snap := s.service.Dispatch(domain.Event{Type: domain.EventUpdateTaskStatusError, Error: err.Error()})
		s.respondState(w, http.StatusInternalServerError, snap, func(resp *stateResponse) {
			resp.Error = err.Error()
		})
	}

	matches, err := s.tasks.ListTasksByTitle(r.Context(), title)
	if err != nil {
		s.logger.Error("task lookup failed", "title", title, "err", err)
		fail(err)
		return
	}
	if len(matches) == 0 {
		fail(domain.ErrTaskNotFound)
		return
	}

	stored := normalizeStatus(newStatus)
	edited := true
	if err := s.tasks.UpdateTask(r.Context(), matches[0].ID, ports.TaskPatch{Status: &stored, Edited: &edited}); err != nil {
		s.logger.Error("task status update failed", "title", title, "err", err)
		fail(err)
		return
	}

	snap := s.service.Dispatch(domain.Event{
		Type:      domain.EventUpdateTaskStatusSuccess,
		TaskTitle: title,
		NewStatus: newStatus,
	})
	s.respondState(w, http.StatusOK, snap, func(resp *stateResponse) {
		resp.Success = true
		resp.Message = "Task status updated successfully"
	})
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request, taskID int64) {
	if err := s.tasks.DeleteTask(r.Context(), taskID); err != nil {
		s.logger.Error("task delete failed", "taskId", taskID, "err", err)
		s.respondState(w, http.StatusInternalServerError, s.service.Snapshot(), func(resp *stateResponse) {
			resp.Error = err.Error()
		})
		return
	}

	snap := s.service.Dispatch(domain.Event{Type: domain.EventDeleteTask, TaskID: taskID})
	s.respondState(w, http.StatusOK, snap, func(resp *stateResponse) {
		resp.Success = true
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("entity") == "users" {
		users, err := s.users.ListUsers(r.Context())
		if err != nil {
			s.logger.Error("user list failed", "err", err)
			s.respondState(w, http.StatusInternalServerError, s.service.Snapshot(), func(resp *stateResponse) {
				resp.Error = "FSM state error"
			})
			return
		}
		snap := s.service.Dispatch(domain.Event{Type: domain.EventLoadUsers, Users: users})
		s.respondState(w, http.StatusOK, snap, func(resp *stateResponse) {
			resp.Users = users
		})
		return
	}

	tasks, err := s.tasks.ListTasks(r.Context())
	if err != nil {
		s.logger.Error("task list failed", "err", err)
		s.respondState(w, http.StatusInternalServerError, s.service.Snapshot(), func(resp *stateResponse) {
			resp.Error = "FSM state error"
		})
		return
	}
	snap := s.service.Dispatch(domain.Event{Type: domain.EventLoadTasks, Tasks: tasks})
	s.respondState(w, http.StatusOK, snap, nil)
}

// normalizeStatus maps the wire spelling of the in-progress status to its
// display form; everything else passes through.
func normalizeStatus(status string) string {
	if status == "inProgress" {
		return domain.StatusInProgress
	}
	return status
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrTaskNotFound)
}
