package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tigerbridge/tigerbridge/internal/domain"
	"github.com/tigerbridge/tigerbridge/internal/dto"
	"github.com/tigerbridge/tigerbridge/internal/service/authservice"
	"github.com/tigerbridge/tigerbridge/pkg/response"
)

const (
	defaultListLimit = 100
)

type Service interface {
	ListUsers(ctx context.Context, skip, limit int) ([]domain.User, error)
	SetUserActive(ctx context.Context, id int, active bool) (*domain.User, error)
}

type AdminHandler struct {
	authService Service
}

func New(authService Service) *AdminHandler {
	return &AdminHandler{
		authService: authService,
	}
}

func toUserResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

// ListUsers godoc
//
//	@Summary		List all users
//	@Description	Page through registered users with skip/limit
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			skip	query		int	false	"Offset"	default(0)
//	@Param			limit	query		int	false	"Page size"	default(100)
//	@Success		200		{object}	response.Response{data=[]dto.UserResponse}
//	@Failure		401		{object}	response.Response	"Not authenticated"
//	@Failure		403		{object}	response.Response	"Superuser privileges required"
//	@Router			/v1/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", defaultListLimit)

	users, err := h.authService.ListUsers(r.Context(), skip, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	response.Success(w, "Users retrieved successfully", out)
}

// Activate godoc
//
//	@Summary		Activate a user
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	response.Response{data=dto.UserResponse}
//	@Failure		404	{object}	response.Response	"User not found"
//	@Router			/v1/admin/users/{id}/activate [post]
func (h *AdminHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// Deactivate godoc
//
//	@Summary		Deactivate a user
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	response.Response{data=dto.UserResponse}
//	@Failure		404	{object}	response.Response	"User not found"
//	@Router			/v1/admin/users/{id}/deactivate [post]
func (h *AdminHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *AdminHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.authService.SetUserActive(r.Context(), id, active)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	message := "User activated successfully"
	if !active {
		message = "User deactivated successfully"
	}
	response.Success(w, message, toUserResponse(user))
}
