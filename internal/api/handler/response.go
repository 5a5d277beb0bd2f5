package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/internal/usecases/aggregating"
	"github.com/vfg2006/verity-api/internal/usecases/authenticating"
	"github.com/vfg2006/verity-api/internal/usecases/insighting"
	"github.com/vfg2006/verity-api/internal/usecases/reminding"
	"github.com/vfg2006/verity-api/internal/usecases/resolving"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
	"github.com/vfg2006/verity-api/pkg/middleware"
	"github.com/vfg2006/verity-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// decodeAndValidate reads a JSON body into T and runs its validate tags. It writes the
// error response itself and reports whether the handler may continue.
func decodeAndValidate[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
		return req, false
	}

	req, err := utils.Validate(req)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return req, false
	}

	return req, true
}

// authorizeBusiness checks that businessID belongs to the caller's token.
func authorizeBusiness(w http.ResponseWriter, r *http.Request, businessID int64) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
		return false
	}

	if claims.BusinessID != businessID {
		logrus.WithFields(logrus.Fields{
			"business_id":        claims.BusinessID,
			"requested_business": businessID,
		}).Warn("cross-business access denied")
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "business does not belong to the token", nil)
		return false
	}

	return true
}

// handleServiceError maps use case errors to the API error body.
func handleServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		authErr     *authenticating.AuthError
		resolveErr  *resolving.ResolveError
		metricsErr  *aggregating.MetricsError
		insightErr  *insighting.InsightError
		reminderErr *reminding.ReminderError
	)

	switch {
	case errors.As(err, &authErr):
		writeCoded(w, authErr.Code, authErr.Error(), authErr.BusinessID)
	case errors.As(err, &resolveErr):
		writeCoded(w, resolveErr.Code, resolveErr.Error(), resolveErr.BusinessID)
	case errors.As(err, &metricsErr):
		writeCoded(w, metricsErr.Code, metricsErr.Error(), metricsErr.BusinessID)
	case errors.As(err, &insightErr):
		writeCoded(w, insightErr.Code, insightErr.Error(), insightErr.BusinessID)
	case errors.As(err, &reminderErr):
		writeCoded(w, reminderErr.Code, reminderErr.Error(), reminderErr.BusinessID)
	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func writeCoded(w http.ResponseWriter, code, message string, businessID int64) {
	if code == "" {
		code = apiErrors.ErrInternalServer
	}

	var details any
	if businessID != 0 {
		details = map[string]any{"business_id": businessID}
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logrus.WithField("business_id", businessID).Error(message)
	}

	apiErrors.WriteError(w, code, message, details)
}
