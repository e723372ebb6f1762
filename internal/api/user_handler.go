package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vastberg/user-api/internal/api/shared"
	"github.com/vastberg/user-api/internal/store"
)

// UserHandler handles the user collection API requests. It is the terminal
// pipeline stage: by the time a handler runs, the access gate, rate limiter
// and validation stages have already passed.
type UserHandler struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		logger:    logger,
	}
}

// Welcome handles GET /.
func (h *UserHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Welcome to the user API!",
	})
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.userStore.List(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// GetUser handles GET /users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// SearchUsers handles GET /search. The name query parameter is required;
// matching is a case-insensitive substring test on the user's name.
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("name")

	users, err := h.userStore.Search(r.Context(), term)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// CreateUser handles POST /users. The validation middleware has already
// decoded, normalized and validated the payload.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, ok := shared.ValidatedBody(r.Context()).(*CreateUserRequest)
	if !ok {
		h.logger.Error("create route reached without a validated payload")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.userStore.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.logger.Info("user created", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// ReplaceUser handles PUT /users/{id}. The whole record is overwritten; the
// ID and the record's position are kept.
func (h *UserHandler) ReplaceUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	req, ok := shared.ValidatedBody(r.Context()).(*ReplaceUserRequest)
	if !ok {
		h.logger.Error("replace route reached without a validated payload")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.userStore.Replace(r.Context(), id, req.Name, req.Email)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.logger.Info("user replaced", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// PatchUser handles PATCH /users/{id}. Only the supplied fields change.
func (h *UserHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	req, ok := shared.ValidatedBody(r.Context()).(*PatchUserRequest)
	if !ok {
		h.logger.Error("patch route reached without a validated payload")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.userStore.Patch(r.Context(), id, store.UserPatch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.logger.Info("user patched", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.Delete(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.logger.Info("user deleted", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteUserResponse{
		Message: "User deleted",
		User:    *user,
	})
}

// DeleteAllUsers handles DELETE /users. The confirm=yes query parameter is
// required; without it the store is left untouched.
func (h *UserHandler) DeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	confirm := r.URL.Query().Get("confirm")

	count, err := h.userStore.DeleteAll(r.Context(), confirm)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.logger.Info("all users deleted", "count", count)
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteAllUsersResponse{
		Message: fmt.Sprintf("%d users deleted", count),
		Count:   count,
	})
}

// userID parses the {id} route parameter. On failure it answers 400 and
// returns ok=false.
func (h *UserHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "ID must be a positive integer")
		return 0, false
	}
	return id, true
}

// respondStoreError translates a store error into the matching status code
// and a safe client message. Unexpected errors are logged in full and
// reported generically.
func (h *UserHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("unexpected store error",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path)
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
