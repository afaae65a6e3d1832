package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"marina/internal/database"
	"marina/internal/events"
	"marina/internal/metrics"
)

// TodoRequest is the request body for POST /api/todos.
type TodoRequest struct {
	Task string `json:"task"`
}

// TodoUpdateRequest is the request body for PATCH /api/todos/{id}.
type TodoUpdateRequest struct {
	IsCompleted bool `json:"is_completed"`
}

// handleTodos routes GET (list) and POST (create) for /api/todos.
func (s *HTTPServer) handleTodos(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("todos")

	switch r.Method {
	case http.MethodGet:
		todos, err := s.db.ListTodos(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("list todos failed")
			writeError(w, http.StatusInternalServerError, "failed to load todos")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"todos": todos})

	case http.MethodPost:
		var req TodoRequest
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if strings.TrimSpace(req.Task) == "" {
			writeError(w, http.StatusBadRequest, "task is required")
			return
		}

		created, err := s.db.CreateTodo(r.Context(), strings.TrimSpace(req.Task))
		if err != nil {
			s.logger.Error().Err(err).Msg("create todo failed")
			writeError(w, http.StatusInternalServerError, "failed to create todo")
			return
		}
		s.publish(events.TodosChanged)
		writeJSON(w, http.StatusCreated, created)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET or POST")
	}
}

// handleTodoByID routes PATCH (toggle) and DELETE for /api/todos/{id}.
func (s *HTTPServer) handleTodoByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("todo_by_id")

	id, err := pathID(r.URL.Path, "/api/todos/")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var req TodoUpdateRequest
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		err := s.db.SetTodoCompleted(r.Context(), id, req.IsCompleted)
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "todo not found")
			return
		}
		if err != nil {
			s.logger.Error().Err(err).Int64("id", id).Msg("update todo failed")
			writeError(w, http.StatusInternalServerError, "failed to update todo")
			return
		}
		s.publish(events.TodosChanged)
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "is_completed": req.IsCompleted})

	case http.MethodDelete:
		err := s.db.DeleteTodo(r.Context(), id)
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "todo not found")
			return
		}
		if err != nil {
			s.logger.Error().Err(err).Int64("id", id).Msg("delete todo failed")
			writeError(w, http.StatusInternalServerError, "failed to delete todo")
			return
		}
		s.publish(events.TodosChanged)
		writeJSON(w, http.StatusOK, map[string]any{"deleted": id})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use PATCH or DELETE")
	}
}
