package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/verity-api/internal/config"
	"github.com/vfg2006/verity-api/internal/domain"
	authMocks "github.com/vfg2006/verity-api/internal/usecases/authenticating/mocks"
	insightMocks "github.com/vfg2006/verity-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		setup    func(auth *authMocks.MockAuthenticator, insights *insightMocks.MockInsighter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "healthcheck is public",
			method: http.MethodGet,
			path:   "/healthcheck",
			setup:  func(*authMocks.MockAuthenticator, *insightMocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "prometheus registry is public",
			method: http.MethodGet,
			path:   "/metrics",
			setup:  func(*authMocks.MockAuthenticator, *insightMocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "go_goroutines")
			},
		},
		{
			name:   "business routes need a token",
			method: http.MethodGet,
			path:   "/v1/business/me",
			setup:  func(*authMocks.MockAuthenticator, *insightMocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name:   "metrics of the token business",
			method: http.MethodGet,
			path:   "/v1/metrics/7",
			token:  "good",
			setup: func(auth *authMocks.MockAuthenticator, insights *insightMocks.MockInsighter) {
				auth.EXPECT().ValidateToken(gomock.Any(), "good").Return(&domain.Claims{BusinessID: 7}, nil)
				insights.EXPECT().Metrics(gomock.Any(), int64(7)).Return(&domain.MetricsSnapshot{
					BusinessID:     7,
					MonthlyRevenue: map[string]float64{"2024-05": 100},
					MonthlyOutflow: map[string]float64{},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"2024-05":100`)
				assert.Contains(t, rec.Body.String(), `"revenue_growth_percent":null`)
			},
		},
		{
			name:   "metrics of another business",
			method: http.MethodGet,
			path:   "/v1/metrics/8",
			token:  "good",
			setup: func(auth *authMocks.MockAuthenticator, insights *insightMocks.MockInsighter) {
				auth.EXPECT().ValidateToken(gomock.Any(), "good").Return(&domain.Claims{BusinessID: 7}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authMocks.NewMockAuthenticator(ctrl)
			insights := insightMocks.NewMockInsighter(ctrl)
			tt.setup(auth, insights)

			h := NewHandler(&config.Config{}, Services{Authenticator: auth, Insighter: insights})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}
