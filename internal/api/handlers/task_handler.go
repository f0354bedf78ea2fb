package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/viremo/viremo-be/internal/auth"
	"github.com/viremo/viremo-be/internal/models"
	"github.com/viremo/viremo-be/internal/services"
)

// TaskHandler handles HTTP requests for the user's task collection.
type TaskHandler struct {
	service services.TaskServiceProvider
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service services.TaskServiceProvider) *TaskHandler {
	return &TaskHandler{service: service}
}

// TaskPayload defines the structure for create and update requests.
type TaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// userID extracts the authenticated user's id from the request context.
func userID(r *http.Request) (string, bool) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

// List returns all of the caller's tasks, newest first.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	tasks, err := h.service.ListTasks(uid)
	if err != nil {
		log.Error().Err(err).Str("user_id", uid).Msg("Failed to list tasks")
		http.Error(w, "Failed to list tasks", http.StatusInternalServerError)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

// Create adds a new task for the caller.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	task, err := h.service.CreateTask(uid, payload.Title, payload.Description)
	if err != nil {
		if errors.Is(err, services.ErrEmptyField) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("user_id", uid).Msg("Failed to create task")
		http.Error(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task)
}

// Update rewrites the title and description of one of the caller's tasks.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}
	id := chi.URLParam(r, "id")

	var payload TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateTask(uid, id, payload.Title, payload.Description); err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyField):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, services.ErrTaskNotFound):
			http.Error(w, "Task not found", http.StatusNotFound)
		default:
			log.Error().Err(err).Str("user_id", uid).Str("task_id", id).Msg("Failed to update task")
			http.Error(w, "Failed to update task", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes one of the caller's tasks.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteTask(uid, id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("user_id", uid).Str("task_id", id).Msg("Failed to delete task")
		http.Error(w, "Failed to delete task", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
