package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/averyhale/socialnet/internal/api/middleware"
	"github.com/averyhale/socialnet/internal/domain"
	"github.com/averyhale/socialnet/internal/service"
)

type FollowHandler struct {
	graph *service.GraphService
}

func NewFollowHandler(graph *service.GraphService) *FollowHandler {
	return &FollowHandler{graph: graph}
}

// FollowResponse reports the actor's following count after the operation, so
// callers never need a second read.
type FollowResponse struct {
	FollowingCount int `json:"followingCount"`
}

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentAccount(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}

	count, err := h.graph.Follow(r.Context(), actor.ID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfFollow):
			http.Error(w, "Cannot follow yourself", http.StatusBadRequest)
		case errors.Is(err, domain.ErrAccountNotFound):
			http.Error(w, "Account not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FollowResponse{FollowingCount: count})
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentAccount(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}

	count, err := h.graph.Unfollow(r.Context(), actor.ID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfUnfollow):
			http.Error(w, "Cannot unfollow yourself", http.StatusBadRequest)
		case errors.Is(err, domain.ErrAccountNotFound):
			http.Error(w, "Account not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FollowResponse{FollowingCount: count})
}
