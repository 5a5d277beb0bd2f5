package middleware

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
)

// BusinessScope restricts a route to the caller's own business. When the route declares
// param, its value must equal the business in the token.
func BusinessScope(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warn("scoped route reached without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
				return
			}

			if param == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw := httprouter.ParamsFromContext(r.Context()).ByName(param)
			businessID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, param+" must be an integer", nil)
				return
			}

			if businessID != claims.BusinessID {
				logrus.WithFields(logrus.Fields{
					"business_id":        claims.BusinessID,
					"requested_business": businessID,
				}).Warn("cross-business access denied")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "business does not belong to the token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Authenticated only requires a valid token.
func Authenticated() func(http.Handler) http.Handler {
	return BusinessScope("")
}
