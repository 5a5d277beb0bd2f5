package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/internal/usecases/insighting"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
)

type BusinessRequest struct {
	BusinessID int64 `json:"business_id" validate:"required,gt=0"`
}

type ForecastRequest struct {
	BusinessID  int64 `json:"business_id" validate:"required,gt=0"`
	HorizonDays int   `json:"horizon_days" validate:"omitempty,gt=0,lte=365"`
}

type RiskRequest struct {
	BusinessID int64          `json:"business_id" validate:"required,gt=0"`
	Context    map[string]any `json:"context"`
}

type MatchRequest struct {
	BusinessID  int64                    `json:"business_id" validate:"required,gt=0"`
	Transaction domain.ParsedTransaction `json:"transaction"`
}

type CategorizeRequest struct {
	BusinessID  int64                      `json:"business_id" validate:"required,gt=0"`
	Transaction domain.CategorizationInput `json:"transaction"`
}

func GenerateInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[BusinessRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		insights, err := service.Insights(r.Context(), req.BusinessID)
		if err != nil {
			handleServiceError(w, err, "failed to generate insights")
			return
		}

		writeJSON(w, http.StatusOK, insights)
	}
}

func ExplainForecast(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[ForecastRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		horizon := req.HorizonDays
		if horizon == 0 {
			horizon = insighting.DefaultHorizonDays
		}

		forecast, err := service.Forecast(r.Context(), req.BusinessID, horizon)
		if err != nil {
			handleServiceError(w, err, "failed to explain forecast")
			return
		}

		writeJSON(w, http.StatusOK, forecast)
	}
}

func GenerateReport(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[BusinessRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		report, err := service.Report(r.Context(), req.BusinessID)
		if err != nil {
			handleServiceError(w, err, "failed to generate report")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GeneratePitchDeck(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[BusinessRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		outline, err := service.PitchDeck(r.Context(), req.BusinessID)
		if err != nil {
			handleServiceError(w, err, "failed to generate pitch deck")
			return
		}

		writeJSON(w, http.StatusOK, outline)
	}
}

func AnalyzeRisk(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[RiskRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		signals, err := service.Risk(r.Context(), req.BusinessID, req.Context)
		if err != nil {
			handleServiceError(w, err, "failed to analyze risk")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"risk_analysis": signals})
	}
}

func MatchTransaction(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[MatchRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		match, err := service.MatchTransaction(r.Context(), req.BusinessID, req.Transaction)
		if err != nil {
			handleServiceError(w, err, "failed to match transaction")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"match_result": match})
	}
}

func CategorizeTransaction(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[CategorizeRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}
		if req.Transaction.Description == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "transaction.description is required", nil)
			return
		}

		writeJSON(w, http.StatusOK, service.Categorize(r.Context(), req.Transaction))
	}
}

// CashflowSummary and GetMetrics sit behind BusinessScope, which has already matched
// the path business against the token.
func CashflowSummary(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, ok := businessIDParam(w, r)
		if !ok {
			return
		}

		summary, err := service.Cashflow(r.Context(), businessID)
		if err != nil {
			handleServiceError(w, err, "failed to summarize cashflow")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func GetMetrics(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, ok := businessIDParam(w, r)
		if !ok {
			return
		}

		snapshot, err := service.Metrics(r.Context(), businessID)
		if err != nil {
			handleServiceError(w, err, "failed to compute metrics")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

func businessIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("business_id")
	businessID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || businessID <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "business_id must be a positive integer", nil)
		return 0, false
	}
	return businessID, true
}
