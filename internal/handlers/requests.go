package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Stefanlynn/zinraicreativesuite/internal/models"
	"github.com/Stefanlynn/zinraicreativesuite/internal/store"
	"github.com/Stefanlynn/zinraicreativesuite/internal/validate"
)

type RequestsHandler struct {
	store *store.Store
}

func NewRequestsHandler(store *store.Store) *RequestsHandler {
	return &RequestsHandler{store: store}
}

type createRequestResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// Create accepts a public project submission. The due date must leave
// enough lead time; every failing field is reported at once.
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.ProjectRequest(in, time.Now()); len(errs) > 0 {
		respondValidationErrors(w, "Invalid project request data", errs)
		return
	}
	request := h.store.CreateProjectRequest(in)
	respondJSON(w, http.StatusCreated, createRequestResponse{
		Message: "Project request submitted successfully",
		ID:      request.ID,
	})
}

func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ProjectRequests())
}

func (h *RequestsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Project request not found")
		return
	}
	request, ok := h.store.ProjectRequest(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Project request not found")
		return
	}
	respondJSON(w, http.StatusOK, request)
}

// Update applies a partial update, typically moving status through
// pending -> in-progress -> completed/cancelled.
func (h *RequestsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Project request not found")
		return
	}
	var updates models.ProjectRequestUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.ProjectRequestUpdate(updates); len(errs) > 0 {
		respondValidationErrors(w, "Invalid project request data", errs)
		return
	}
	request, ok := h.store.UpdateProjectRequest(id, updates)
	if !ok {
		respondError(w, http.StatusNotFound, "Project request not found")
		return
	}
	respondJSON(w, http.StatusOK, request)
}
