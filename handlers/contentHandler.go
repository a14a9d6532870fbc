package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"safetypath/db"
	"safetypath/models"
	"safetypath/services"

	"github.com/gorilla/mux"
)

type ContentHandler struct {
	service *services.ContentService
}

func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/personas", h.GetPersonas).Methods("GET")
	router.HandleFunc("/api/pathways", h.GetPathways).Methods("GET")
	router.HandleFunc("/api/pathways/{id:[0-9]+}", h.GetPathwayByID).Methods("GET")
	router.HandleFunc("/api/tools", h.GetTools).Methods("GET")
	router.HandleFunc("/api/resources", h.GetResources).Methods("GET")
	router.HandleFunc("/api/resources/search", h.SearchResources).Methods("GET")
}

func (h *ContentHandler) GetPersonas(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, models.PersonaCatalogResponse{
		Personas: services.PersonaCatalog(),
		Stats:    services.SafetyStats(),
	})
}

func (h *ContentHandler) GetPathways(w http.ResponseWriter, r *http.Request) {
	personaFilter := r.URL.Query().Get("persona")

	pathways, err := h.service.GetPathways(personaFilter)
	if err != nil {
		if personaFilter != "" && !services.IsValidPersona(personaFilter) {
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve pathways")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, pathways)
}

func (h *ContentHandler) GetPathwayByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid pathway ID")
		return
	}

	pathway, err := h.service.GetPathwayByID(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, "Pathway not found")
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve pathway")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, pathway)
}

func (h *ContentHandler) GetTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.service.GetTools()
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve tools")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, tools)
}

func (h *ContentHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	pathwayID := 0
	if raw := r.URL.Query().Get("pathway"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeErrorResponse(w, http.StatusBadRequest, "Invalid pathway filter")
			return
		}
		pathwayID = parsed
	}

	resources, err := h.service.GetResources(pathwayID)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve resources")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, resources)
}

func (h *ContentHandler) SearchResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.service.SearchResources(r.URL.Query().Get("q"))
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to search resources")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, resources)
}

func (h *ContentHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *ContentHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
