package handler

import (
	"net/http"

	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/internal/usecases/authenticating"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
	"github.com/vfg2006/verity-api/pkg/middleware"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func Signup(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[domain.SignupRequest](w, r)
		if !ok {
			return
		}

		token, err := service.Signup(r.Context(), &req)
		if err != nil {
			handleServiceError(w, err, "failed to register business")
			return
		}

		writeJSON(w, http.StatusCreated, token)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[LoginRequest](w, r)
		if !ok {
			return
		}

		token, err := service.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			handleServiceError(w, err, "failed to log in")
			return
		}

		writeJSON(w, http.StatusOK, token)
	}
}

// GetMe returns the business behind the token.
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		business, err := service.GetBusiness(r.Context(), claims.BusinessID)
		if err != nil {
			handleServiceError(w, err, "failed to load business")
			return
		}

		writeJSON(w, http.StatusOK, business)
	}
}

func UpdateMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		req, ok := decodeAndValidate[domain.UpdateBusinessRequest](w, r)
		if !ok {
			return
		}
		req.ID = claims.BusinessID

		business, err := service.UpdateBusiness(r.Context(), &req)
		if err != nil {
			handleServiceError(w, err, "failed to update business")
			return
		}

		writeJSON(w, http.StatusOK, business)
	}
}
