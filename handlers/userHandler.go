package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"safetypath/db"
	"safetypath/models"
	"safetypath/services"
	"safetypath/services/auth"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	service  *services.UserService
	sessions *auth.SessionManager
}

func NewUserHandler(service *services.UserService, sessions *auth.SessionManager) *UserHandler {
	return &UserHandler{service: service, sessions: sessions}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/register", h.Register).Methods("POST")
	router.HandleFunc("/api/login", h.Login).Methods("POST")
	router.HandleFunc("/api/logout", h.Logout).Methods("POST")
	router.HandleFunc("/api/user", h.GetUser).Methods("GET")
	router.HandleFunc("/api/user/persona", h.SetPersona).Methods("POST")
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	user, err := h.service.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			h.writeErrorResponse(w, http.StatusConflict, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	token := h.sessions.CreateSession(user.ID)
	h.writeJSONResponse(w, http.StatusCreated, models.AuthResponse{User: user, Token: token})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	user, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredential) {
			h.writeErrorResponse(w, http.StatusUnauthorized, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	token := h.sessions.CreateSession(user.ID)
	h.writeJSONResponse(w, http.StatusOK, models.AuthResponse{User: user, Token: token})
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := auth.TokenFromRequest(r); ok {
		h.sessions.DeleteSession(token)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.sessions.UserIDFromRequest(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.service.GetUser(userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.writeErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve user")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, user)
}

func (h *UserHandler) SetPersona(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.sessions.UserIDFromRequest(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.SetPersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	user, err := h.service.SetPersona(userID, req.Persona)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownPersona):
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, db.ErrNotFound):
			h.writeErrorResponse(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("[ERROR] Persona update failed: %v", err)
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to update persona")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, user)
}

func (h *UserHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *UserHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
