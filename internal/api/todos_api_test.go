package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marina/internal/events"
	"marina/internal/models"
)

func TestTodosLifecycle(t *testing.T) {
	ts := setupTestServer(t)

	var changes int
	ts.bus.Subscribe(events.TodosChanged, func(events.Event) { changes++ })

	w := ts.do(t, http.MethodPost, "/api/todos", map[string]string{"task": "Pressure wash dock 300"})
	require.Equal(t, http.StatusCreated, w.Code)
	first := decodeBody[models.TodoItem](t, w)
	assert.False(t, first.IsCompleted)

	w = ts.do(t, http.MethodPost, "/api/todos", map[string]string{"task": "Order fuel filters"})
	require.Equal(t, http.StatusCreated, w.Code)
	second := decodeBody[models.TodoItem](t, w)

	// Newest first.
	w = ts.do(t, http.MethodGet, "/api/todos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[map[string][]models.TodoItem](t, w)["todos"]
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	w = ts.do(t, http.MethodPatch, fmt.Sprintf("/api/todos/%d", first.ID), map[string]bool{"is_completed": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/todos/%d", second.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 4, changes)
}

func TestCreateTodo_EmptyTask(t *testing.T) {
	ts := setupTestServer(t)

	for _, task := range []string{"", "   "} {
		w := ts.do(t, http.MethodPost, "/api/todos", map[string]string{"task": task})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestTodoByID_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(t, http.MethodPatch, "/api/todos/999", map[string]bool{"is_completed": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/todos/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
