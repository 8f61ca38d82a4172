package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tigerbridge/tigerbridge/internal/domain"
	"github.com/tigerbridge/tigerbridge/internal/dto"
	"github.com/tigerbridge/tigerbridge/internal/service/authservice"
	"github.com/tigerbridge/tigerbridge/pkg/response"
)

type Service interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(email string) (string, error)
}

type AuthHandler struct {
	authService Service
	validate    *validator.Validate
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

func fieldErrors(err error) []response.FieldError {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	out := make([]response.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		out = append(out, response.FieldError{
			Field:   fe.Field(),
			Message: "failed validation on '" + fe.Tag() + "'",
		})
	}
	return out
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new account with email and password; it stays inactive until a superuser activates it
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequest	true	"Register request body"
//	@Success		200		{object}	response.Response{data=dto.UserResponse}
//	@Failure		400		{object}	response.Response	"Invalid request body or email already registered"
//	@Failure		422		{object}	response.Response	"Validation failure"
//	@Router			/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.ErrorWith(w, http.StatusUnprocessableEntity, "Validation failed", fieldErrors(err))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			response.ErrorWith(w, http.StatusBadRequest, "Email already registered", []response.FieldError{
				{Field: "email", Message: "Email already exists"},
			})
			return
		}
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(w, "User registered successfully. Please contact admin for activation.", dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
	})
}

// Token godoc
//
//	@Summary		Login for access token
//	@Description	Exchange email and password for a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequest	true	"Login request body"
//	@Success		200		{object}	response.Response{data=dto.TokenResponse}
//	@Failure		401		{object}	response.Response	"Incorrect email or password"
//	@Failure		403		{object}	response.Response	"User account is inactive"
//	@Router			/v1/auth/token [post]
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.ErrorWith(w, http.StatusUnprocessableEntity, "Validation failed", fieldErrors(err))
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrUserInactive) {
			response.Error(w, http.StatusForbidden, "User account is inactive. Please contact an admin.")
			return
		}
		response.Error(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	token, err := h.authService.GenerateToken(user.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	response.Success(w, "Token issued successfully", dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
