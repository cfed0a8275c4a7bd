package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fitpet/internal/service"
	"fitpet/internal/validate"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,nospaces,email"`
	Password string `json:"password" validate:"required,min=8,hasdigit,hassymbol"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,nospaces,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

// Registro creates a credential with the default role.
// POST {base}/auth/registro -> 201 {id, username, createdAt} | 400 | 409.
func Registro(svc *service.AuthService, v *validate.Validator, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "malformed request body")
			return
		}
		if violations := v.Struct(req); violations != nil {
			badRequest(w, validate.First(violations))
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			translateError(w, lg, err)
			return
		}
		respondJSON(w, http.StatusCreated, user)
	}
}

// Login verifies credentials and issues a bearer token. Validation runs
// before any store lookup, so a malformed email never touches the store.
// POST {base}/auth/login -> 201 {tokenType, expiresIn, accessToken} | 400 | 401.
// Also mounted at /auth/token for legacy clients.
func Login(svc *service.AuthService, v *validate.Validator, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "malformed request body")
			return
		}
		if violations := v.Struct(req); violations != nil {
			badRequest(w, validate.First(violations))
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			translateError(w, lg, err)
			return
		}
		respondJSON(w, http.StatusCreated, tokenResponse{
			TokenType:   "Bearer",
			ExpiresIn:   int64(svc.TokenTTL() / time.Second),
			AccessToken: token,
		})
	}
}
