package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/models"
)

// SessionHandler implements the simulated login and the satisfaction
// feedback endpoints. Nothing is stored; sessions exist only for the
// lifetime of one interaction.
type SessionHandler struct {
	validate *validator.Validate
	logger   arbor.ILogger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(logger arbor.ILogger) *SessionHandler {
	return &SessionHandler{
		validate: validator.New(),
		logger:   logger,
	}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginHandler handles POST /api/login. The login is simulated: it mints a
// session id and echoes the email back, no credential check.
func (h *SessionHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	session := models.NewSession(req.Email)

	h.logger.Info().
		Str("session", session.ID).
		Str("email", session.Email).
		Msg("Simulated login")

	WriteJSON(w, http.StatusOK, map[string]string{
		"session_id": session.ID,
		"email":      session.Email,
		"message":    "Logged in as " + session.Email,
	})
}

type feedbackRequest struct {
	SessionID string `json:"session_id"`
	Rating    string `json:"rating" validate:"required,oneof=Excellent Good Average Poor"`
}

// FeedbackHandler handles POST /api/feedback.
func (h *SessionHandler) FeedbackHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	h.logger.Info().
		Str("session", req.SessionID).
		Str("rating", req.Rating).
		Msg("Feedback received")

	WriteSuccess(w, "Thank you for your feedback!")
}
