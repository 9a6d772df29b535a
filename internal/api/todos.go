// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package api implements a local stand-in for the todo webhook. It accepts the
// same requests as the production route, answers with the same status codes
// and bodies, and keeps what it receives in memory so it can be listed.
package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"quick-todo/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// TodosPath is the route the clients post to.
const TodosPath = "/api/webhook/todos"

const inboxFolder = "inbox"

// Todo is a stored todo as returned in the "todo" field of a 201 reply.
type Todo struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Folder    string    `json:"folder"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type createRequest struct {
	Content *string `json:"content"`
	Source  string  `json:"source"`
}

type createResponse struct {
	Success bool   `json:"success"`
	Todo    Todo   `json:"todo"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Store keeps received todos in arrival order.
type Store struct {
	mu    sync.RWMutex
	todos []Todo
}

func (s *Store) add(t Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = append(s.todos, t)
}

// List returns a copy of the stored todos.
func (s *Store) List() []Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Handler serves the webhook routes.
type Handler struct {
	store  *Store
	secret string
	now    func() time.Time
}

// NewHandler returns a handler backed by store. When secret is non-empty every
// request must carry "Authorization: Bearer <secret>".
func NewHandler(store *Store, secret string) *Handler {
	return &Handler{store: store, secret: secret, now: time.Now}
}

// RegisterTodoRoutes adds the webhook routes to router.
func RegisterTodoRoutes(router *mux.Router, h *Handler) {
	router.HandleFunc(TodosPath, h.createTodo).Methods(http.MethodPost)
	router.HandleFunc(TodosPath, h.listTodos).Methods(http.MethodGet)
}

// NewRouter returns a router with the webhook routes registered.
func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	RegisterTodoRoutes(router, h)
	return router
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		logger.Warn("webhook request rejected", "reason", "unauthorized", "remote", r.RemoteAddr)
		writeJSONResponse(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("webhook request rejected", "reason", "invalid json", "error", err)
		writeJSONResponse(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	if req.Content == nil || strings.TrimSpace(*req.Content) == "" {
		writeJSONResponse(w, http.StatusBadRequest, errorResponse{Error: "Content is required"})
		return
	}

	content := strings.TrimSpace(*req.Content)
	if req.Source != "" {
		content = "[" + req.Source + "] " + content
	}

	todo := Todo{
		ID:        uuid.NewString(),
		Content:   content,
		Folder:    inboxFolder,
		CreatedAt: h.now().UTC(),
	}
	h.store.add(todo)
	logger.Info("todo received", "id", todo.ID, "source", req.Source)

	writeJSONResponse(w, http.StatusCreated, createResponse{
		Success: true,
		Todo:    todo,
		Message: "Todo added successfully via webhook",
	})
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeJSONResponse(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}
	writeJSONResponse(w, http.StatusOK, h.store.List())
}

func (h *Handler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return true
	}
	want := "Bearer " + h.secret
	got := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// writeJSONResponse writes data as a JSON body with the given status.
func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
