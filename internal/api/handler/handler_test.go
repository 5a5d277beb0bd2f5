package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/verity-api/internal/api/handler/router"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/verity-api/internal/usecases/authenticating/mocks"
	extractMocks "github.com/vfg2006/verity-api/internal/usecases/extracting/mocks"
	"github.com/vfg2006/verity-api/internal/usecases/insighting"
	insightMocks "github.com/vfg2006/verity-api/internal/usecases/insighting/mocks"
	reminderMocks "github.com/vfg2006/verity-api/internal/usecases/reminding/mocks"
	"github.com/vfg2006/verity-api/internal/usecases/resolving"
	resolveMocks "github.com/vfg2006/verity-api/internal/usecases/resolving/mocks"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
	"github.com/vfg2006/verity-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

const testBusinessID int64 = 7

func newRequest(t *testing.T, method, target string, body any, businessID int64) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if businessID != 0 {
		req = req.WithContext(middleware.WithClaims(req.Context(), &domain.Claims{BusinessID: businessID}))
	}
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		setup    func(m *authMocks.MockAuthenticator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "returns the bearer token",
			body: LoginRequest{Username: "acme", Password: "secret-pass"},
			setup: func(m *authMocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "acme", "secret-pass").
					Return(&domain.Token{AccessToken: "jwt", TokenType: "bearer"}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var token domain.Token
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
				assert.Equal(t, "jwt", token.AccessToken)
				assert.Equal(t, "bearer", token.TokenType)
			},
		},
		{
			name:  "malformed body",
			body:  "{",
			setup: func(m *authMocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
			},
		},
		{
			name:  "missing password",
			body:  LoginRequest{Username: "acme"},
			setup: func(m *authMocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
			},
		},
		{
			name: "invalid credentials",
			body: LoginRequest{Username: "acme", Password: "wrong-pass"},
			setup: func(m *authMocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "acme", "wrong-pass").
					Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authMocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			Login(service).ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/auth/login", tt.body, 0))

			tt.validate(t, rec)
		})
	}
}

func TestUpdateMe_UsesTokenBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authMocks.NewMockAuthenticator(ctrl)

	industry := "retail"
	service.EXPECT().UpdateBusiness(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.UpdateBusinessRequest) (*domain.Business, error) {
			assert.Equal(t, testBusinessID, req.ID)
			return &domain.Business{ID: req.ID, Name: "Acme", Industry: req.Industry}, nil
		})

	rec := httptest.NewRecorder()
	body := map[string]any{"id": 99, "industry": industry}
	UpdateMe(service).ServeHTTP(rec, newRequest(t, http.MethodPut, "/v1/business/me", body, testBusinessID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"industry":"retail"`)
}

func TestIngestText(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		claims   int64
		setup    func(m *resolveMocks.MockResolver)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "defaults the source to manual",
			body:   IngestTextRequest{BusinessID: testBusinessID, RawText: "Received 500 from Ravi"},
			claims: testBusinessID,
			setup: func(m *resolveMocks.MockResolver) {
				m.EXPECT().IngestText(gomock.Any(), testBusinessID, "Received 500 from Ravi", domain.SourceManual).
					Return(&domain.Transaction{ID: 11, BusinessID: testBusinessID, Source: domain.SourceManual}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
				var resp IngestResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, int64(11), resp.TransactionID)
				assert.Equal(t, "Ingested", resp.Message)
			},
		},
		{
			name:   "keeps an explicit source",
			body:   IngestTextRequest{BusinessID: testBusinessID, RawText: "paid 200", Source: domain.SourceSMS},
			claims: testBusinessID,
			setup: func(m *resolveMocks.MockResolver) {
				m.EXPECT().IngestText(gomock.Any(), testBusinessID, "paid 200", domain.SourceSMS).
					Return(&domain.Transaction{ID: 12}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
			},
		},
		{
			name:   "rejects an unknown source",
			body:   IngestTextRequest{BusinessID: testBusinessID, RawText: "paid 200", Source: "fax"},
			claims: testBusinessID,
			setup:  func(m *resolveMocks.MockResolver) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:   "another business is forbidden",
			body:   IngestTextRequest{BusinessID: 8, RawText: "paid 200"},
			claims: testBusinessID,
			setup:  func(m *resolveMocks.MockResolver) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
				assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
			},
		},
		{
			name:   "unknown business maps to not found",
			body:   IngestTextRequest{BusinessID: testBusinessID, RawText: "paid 200"},
			claims: testBusinessID,
			setup: func(m *resolveMocks.MockResolver) {
				m.EXPECT().IngestText(gomock.Any(), testBusinessID, "paid 200", domain.SourceManual).
					Return(nil, resolving.NewResolveError(resolving.ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, testBusinessID, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				apiErr := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrBusinessNotFound, apiErr.Code)
				assert.Equal(t, map[string]any{"business_id": float64(testBusinessID)}, apiErr.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := resolveMocks.NewMockResolver(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			IngestText(service).ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/ingest/text", tt.body, tt.claims))

			tt.validate(t, rec)
		})
	}
}

func TestIngestWhatsApp_UsesWhatsAppSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := resolveMocks.NewMockResolver(ctrl)
	service.EXPECT().IngestText(gomock.Any(), testBusinessID, "got 300 via upi", domain.SourceWhatsApp).
		Return(&domain.Transaction{ID: 3}, nil)

	rec := httptest.NewRecorder()
	body := IngestWhatsAppRequest{BusinessID: testBusinessID, RawText: "got 300 via upi"}
	IngestWhatsApp(service).ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/ingest/whatsapp", body, testBusinessID))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestIngestCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := resolveMocks.NewMockResolver(ctrl)

	headers := []string{"Date", "Amt"}
	rows := []map[string]string{{"Date": "2024-05-01", "Amt": "100"}, {"Date": "", "Amt": ""}}
	service.EXPECT().IngestRows(gomock.Any(), testBusinessID, headers, rows).
		Return(&resolving.IngestReport{
			Transactions: []*domain.Transaction{{ID: 1}},
			Errors:       []resolving.RowError{{Row: 2, Error: "empty row"}},
		}, nil)

	rec := httptest.NewRecorder()
	body := IngestCSVRequest{BusinessID: testBusinessID, Headers: headers, Rows: rows}
	IngestCSV(service).ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/ingest/csv", body, testBusinessID))

	assert.Equal(t, http.StatusOK, rec.Code)
	var report resolving.IngestReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Len(t, report.Transactions, 1)
	assert.Equal(t, []resolving.RowError{{Row: 2, Error: "empty row"}}, report.Errors)
}

func TestIngestInvoice_ReportsDegradation(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := extractMocks.NewMockExtractor(ctrl)
	extractor.EXPECT().ParseInvoice(gomock.Any(), "garbled").
		Return(domain.ParsedInvoice{Degradation: domain.Degradation{Err: assert.AnError}, Items: []domain.InvoiceItem{}})

	rec := httptest.NewRecorder()
	body := IngestInvoiceRequest{BusinessID: testBusinessID, OCRText: "garbled"}
	IngestInvoice(extractor).ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/ingest/invoice", body, testBusinessID))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ParsedInvoiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Degraded)
	assert.Zero(t, resp.ParsedInvoice.TotalAmount)
}

func TestExplainForecast_DefaultHorizon(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := insightMocks.NewMockInsighter(ctrl)
	service.EXPECT().Forecast(gomock.Any(), testBusinessID, insighting.DefaultHorizonDays).
		Return(&insighting.ForecastResult{Explanation: domain.ForecastExplanation{Summary: "steady"}}, nil)

	rec := httptest.NewRecorder()
	ExplainForecast(service).ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/forecast/explain", BusinessRequest{BusinessID: testBusinessID}, testBusinessID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"summary":"steady"`)
}

func TestCategorize_RequiresDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := insightMocks.NewMockInsighter(ctrl)

	rec := httptest.NewRecorder()
	body := CategorizeRequest{BusinessID: testBusinessID}
	CategorizeTransaction(service).ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/enrichment/categorize", body, testBusinessID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScopedRoutes(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(m *insightMocks.MockInsighter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "cashflow of the token business",
			target: "/v1/cashflow/summary/7",
			setup: func(m *insightMocks.MockInsighter) {
				m.EXPECT().Cashflow(gomock.Any(), testBusinessID).
					Return(&domain.CashflowSummary{BusinessID: testBusinessID, TotalInflow: 300, TotalOutflow: 100, NetBalance: 200}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var summary domain.CashflowSummary
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
				assert.Equal(t, 200.0, summary.NetBalance)
			},
		},
		{
			name:   "metrics of another business",
			target: "/v1/metrics/8",
			setup:  func(m *insightMocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
				assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
			},
		},
		{
			name:   "non numeric business id",
			target: "/v1/metrics/acme",
			setup:  func(m *insightMocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := insightMocks.NewMockInsighter(ctrl)
			tt.setup(service)

			rt := router.New(router.WithRoutes(Insights(service)...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, newRequest(t, http.MethodGet, tt.target, nil, testBusinessID))

			tt.validate(t, rec)
		})
	}
}

func TestSendWhatsAppReminder(t *testing.T) {
	validRequest := domain.SendReminderRequest{
		BusinessID:    testBusinessID,
		CustomerName:  "Ravi",
		CustomerPhone: "+919812345678",
		InvoiceNumber: "INV-1",
		AmountDue:     1500,
		DueDate:       "2024-05-01",
	}

	tests := []struct {
		name     string
		body     func() domain.SendReminderRequest
		setup    func(m *reminderMocks.MockReminder)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "fills tone and language defaults",
			body: func() domain.SendReminderRequest { return validRequest },
			setup: func(m *reminderMocks.MockReminder) {
				m.EXPECT().SendReminder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.SendReminderRequest) (*domain.SendReminderResponse, error) {
						assert.Equal(t, "friendly", req.PreferredTone)
						assert.Equal(t, "English/Hinglish", req.PreferredLanguage)
						return &domain.SendReminderResponse{
							Message:  "Hi Ravi, 1500 is due",
							Delivery: domain.Delivery{Status: domain.DeliveryMock, To: "whatsapp:+919812345678"},
						}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var resp domain.SendReminderResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, domain.DeliveryMock, resp.Delivery.Status)
			},
		},
		{
			name: "rejects a phone outside E.164",
			body: func() domain.SendReminderRequest {
				req := validRequest
				req.CustomerPhone = "98123"
				return req
			},
			setup: func(m *reminderMocks.MockReminder) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := reminderMocks.NewMockReminder(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			SendWhatsAppReminder(service).ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/actions/send_whatsapp_reminder", tt.body(), testBusinessID))

			tt.validate(t, rec)
		})
	}
}

func TestWhatsAppWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reminderMocks.NewMockReminder(ctrl)
	service.EXPECT().ReceiveMessage(gomock.Any(), domain.IncomingMessage{From: "whatsapp:+919812345678", Body: "paid"})

	form := url.Values{"From": {"whatsapp:+919812345678"}, "Body": {"paid"}}
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	WhatsAppWebhook(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

type stubCronJob struct {
	triggered int
}

func (s *stubCronJob) TriggerManualSync() { s.triggered++ }

func (s *stubCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

func TestCronJobs(t *testing.T) {
	job := &stubCronJob{}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{OverdueSweep: job})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/cron/overdue/run", nil, testBusinessID))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, job.triggered)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, newRequest(t, http.MethodPost, "/v1/cron/meta/run", nil, testBusinessID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, job.triggered)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, newRequest(t, http.MethodGet, "/v1/cron/status", nil, testBusinessID))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"overdue"`)
}
