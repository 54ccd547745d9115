package http

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/stateboard/stateboard/pkg/domain"
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var data signupData
	if err := decodeBody(w, r, &data); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if data.Email == "" || data.Password == "" || data.Role == "" {
		s.logger.Warn("signup rejected, missing fields", "email", data.Email)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing fields"})
		return
	}
	s.doSignup(w, r, data)
}

func (s *Server) doSignup(w http.ResponseWriter, r *http.Request, data signupData) {
	signupError := func(status int, msg string) {
		snap := s.service.Dispatch(domain.Event{Type: domain.EventSignupError, Error: msg})
		s.respondState(w, status, snap, func(resp *stateResponse) {
			resp.Error = msg
		})
	}

	_, err := s.users.GetUserByEmail(r.Context(), data.Email)
	switch {
	case err == nil:
		signupError(http.StatusBadRequest, "User already exists")
		return
	case !isNotFound(err):
		s.logger.Error("signup lookup failed", "err", err)
		signupError(http.StatusInternalServerError, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		signupError(http.StatusInternalServerError, err.Error())
		return
	}

	user := domain.User{
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Role:      data.Role,
	}
	if _, err := s.users.CreateUser(r.Context(), user, string(hash)); err != nil {
		s.logger.Error("signup create failed", "err", err)
		signupError(http.StatusInternalServerError, err.Error())
		return
	}

	snap := s.service.Dispatch(domain.Event{Type: domain.EventSignupSuccess, User: &user})
	s.respondState(w, http.StatusOK, snap, func(resp *stateResponse) {
		resp.Success = true
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var data loginData
	if err := decodeBody(w, r, &data); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	s.doLogin(w, r, data, false)
}

// doLogin verifies credentials and advances the machine. Only the /fsm/event
// route loads the task list as part of login; /auth/login leaves that to the
// client's follow-up state fetch.
func (s *Server) doLogin(w http.ResponseWriter, r *http.Request, data loginData, loadTasks bool) {
	loginError := func(status int, msg string) {
		snap := s.service.Dispatch(domain.Event{Type: domain.EventLoginError, Error: msg})
		s.respondState(w, status, snap, func(resp *stateResponse) {
			resp.Error = msg
		})
	}

	stored, err := s.users.GetUserByEmail(r.Context(), data.Email)
	if err != nil {
		if isNotFound(err) {
			loginError(http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.logger.Error("login lookup failed", "err", err)
		loginError(http.StatusInternalServerError, err.Error())
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(data.Password)) != nil {
		loginError(http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user := stored.User
	snap := s.service.Dispatch(domain.Event{Type: domain.EventLoginSuccess, User: &user})

	if loadTasks {
		tasks, err := s.tasks.ListTasks(r.Context())
		if err != nil {
			s.logger.Error("login task load failed", "err", err)
			loginError(http.StatusInternalServerError, err.Error())
			return
		}
		snap = s.service.Dispatch(domain.Event{Type: domain.EventLoadTasks, Tasks: tasks})
	}

	s.logger.Info("login successful", "email", user.Email, "state", snap.State.String())
	s.respondState(w, http.StatusOK, snap, func(resp *stateResponse) {
		resp.Success = true
		if !loadTasks {
			resp.User = &user
		}
	})
}

type profileRequest struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	ProfilePic string `json:"profilePic"`
	Password   string `json:"password"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing email"})
		return
	}
	if req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Password is required to confirm changes"})
		return
	}
	if msg := validateProfilePic(req.ProfilePic); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg, "message": msg})
		return
	}

	stored, err := s.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if isNotFound(err) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found", "message": "User not found"})
			return
		}
		s.logger.Error("profile lookup failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Profile update failed"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(req.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "Invalid password",
			"message": "Invalid password. Please enter your correct password to confirm changes.",
		})
		return
	}

	patch := domain.ProfileUpdate{}
	if first := firstNonEmpty(req.Username, req.FirstName); first != "" {
		patch.FirstName = &first
	}
	if req.LastName != "" {
		patch.LastName = &req.LastName
	}
	if req.ProfilePic != "" {
		patch.ProfilePic = &req.ProfilePic
	}

	user, err := s.users.UpdateProfile(r.Context(), req.Email, patch)
	if err != nil {
		s.logger.Error("profile update failed", "email", req.Email, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Profile update failed",
			"message": "An error occurred while updating your profile. Please try again.",
		})
		return
	}

	snap := s.service.Dispatch(domain.Event{
		Type: domain.EventSaveProfile,
		Profile: &domain.ProfileUpdate{
			FirstName:  &user.FirstName,
			LastName:   &user.LastName,
			ProfilePic: &user.ProfilePic,
		},
	})
	s.respondState(w, http.StatusOK, snap, func(resp *stateResponse) {
		resp.User = user
		resp.Message = "Profile updated successfully!"
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing email"})
		return
	}

	stored, err := s.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		if isNotFound(err) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
			return
		}
		s.logger.Error("profile fetch failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Profile fetch failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]domain.User{"user": stored.User})
}

// validateProfilePic rejects oversized or malformed base64 images. Returns an
// empty string when the picture is acceptable.
func validateProfilePic(pic string) string {
	if pic == "" {
		return ""
	}
	if len(pic) > maxBodyBytes {
		return "Profile picture is too large. Maximum size is 5MB."
	}
	if strings.HasPrefix(pic, "data:image/") {
		_, data, ok := strings.Cut(pic, ",")
		if !ok || data == "" {
			return "Invalid image format. Please upload a valid image file."
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
