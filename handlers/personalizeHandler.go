package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"safetypath/models"
	"safetypath/services/personalize"

	"github.com/gorilla/mux"
)

type PersonalizeHandler struct {
	service *personalize.Service
}

func NewPersonalizeHandler(service *personalize.Service) *PersonalizeHandler {
	return &PersonalizeHandler{service: service}
}

func (h *PersonalizeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/analyze-background", h.AnalyzeBackground).Methods("POST")
	router.HandleFunc("/api/customize-course", h.CustomizeCourse).Methods("POST")
	router.HandleFunc("/api/customize-unit", h.CustomizeUnit).Methods("POST")
	router.HandleFunc("/api/localize", h.Localize).Methods("POST")
	router.HandleFunc("/api/career-suggestions", h.CareerSuggestions).Methods("POST")
	router.HandleFunc("/api/writing-feedback", h.WritingFeedback).Methods("POST")
}

func (h *PersonalizeHandler) AnalyzeBackground(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeBackgroundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.service.AnalyzeBackground(r.Context(), &req)
	if err != nil {
		h.writePersonalizationError(w, err)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *PersonalizeHandler) CustomizeCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CustomizeCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.service.CustomizeCourse(r.Context(), &req)
	if err != nil {
		h.writePersonalizationError(w, err)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *PersonalizeHandler) CustomizeUnit(w http.ResponseWriter, r *http.Request) {
	var req models.CustomizeUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.service.CustomizeUnit(r.Context(), &req)
	if err != nil {
		h.writePersonalizationError(w, err)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *PersonalizeHandler) Localize(w http.ResponseWriter, r *http.Request) {
	var req models.LocalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.service.Localize(r.Context(), &req)
	if err != nil {
		h.writePersonalizationError(w, err)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *PersonalizeHandler) CareerSuggestions(w http.ResponseWriter, r *http.Request) {
	var req models.CareerSuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.service.CareerSuggestions(r.Context(), &req)
	if err != nil {
		h.writePersonalizationError(w, err)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *PersonalizeHandler) WritingFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.WritingFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.service.WritingFeedback(r.Context(), &req)
	if err != nil {
		h.writePersonalizationError(w, err)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, result)
}

// writePersonalizationError maps the personalization error taxonomy onto
// HTTP statuses: caller mistakes are 400, provider and extraction failures
// are 502. Raw replies are logged upstream, never returned.
func (h *PersonalizeHandler) writePersonalizationError(w http.ResponseWriter, err error) {
	var validationErr *personalize.ValidationError
	var providerErr *personalize.ProviderError
	var extractionErr *personalize.ExtractionError

	switch {
	case errors.As(err, &validationErr):
		h.writeErrorResponse(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &providerErr):
		log.Printf("[ERROR] Personalization provider failure: %v", providerErr)
		h.writeErrorResponse(w, http.StatusBadGateway, providerErr.Error())
	case errors.As(err, &extractionErr):
		log.Printf("[ERROR] Personalization extraction failure: %v", extractionErr)
		h.writeErrorResponse(w, http.StatusBadGateway, "Provider returned an unusable response")
	default:
		log.Printf("[ERROR] Personalization failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Personalization failed")
	}
}

func (h *PersonalizeHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *PersonalizeHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
