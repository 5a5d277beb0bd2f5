package handler

import (
	"net/http"

	"github.com/vfg2006/verity-api/internal/api/handler/router"
	"github.com/vfg2006/verity-api/internal/usecases/authenticating"
	"github.com/vfg2006/verity-api/internal/usecases/extracting"
	"github.com/vfg2006/verity-api/internal/usecases/insighting"
	"github.com/vfg2006/verity-api/internal/usecases/reminding"
	"github.com/vfg2006/verity-api/internal/usecases/resolving"
	"github.com/vfg2006/verity-api/pkg/metrics"
	"github.com/vfg2006/verity-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/signup",
			Method:  http.MethodPost,
			Handler: Signup(service),
		},
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Business(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/business/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/business/me",
			Method:      http.MethodPut,
			Handler:     UpdateMe(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
	}
}

func Ingest(service resolving.Resolver, extractor extracting.Extractor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ingest/whatsapp",
			Method:      http.MethodPost,
			Handler:     IngestWhatsApp(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/ingest/text",
			Method:      http.MethodPost,
			Handler:     IngestText(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/ingest/invoice",
			Method:      http.MethodPost,
			Handler:     IngestInvoice(extractor),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/ingest/csv",
			Method:      http.MethodPost,
			Handler:     IngestCSV(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/enrichment/match",
			Method:      http.MethodPost,
			Handler:     MatchTransaction(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/enrichment/categorize",
			Method:      http.MethodPost,
			Handler:     CategorizeTransaction(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/risk/analyze",
			Method:      http.MethodPost,
			Handler:     AnalyzeRisk(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/insights/generate",
			Method:      http.MethodPost,
			Handler:     GenerateInsights(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/forecast/explain",
			Method:      http.MethodPost,
			Handler:     ExplainForecast(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/reports/generate",
			Method:      http.MethodPost,
			Handler:     GenerateReport(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/pitchdeck/generate",
			Method:      http.MethodPost,
			Handler:     GeneratePitchDeck(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/cashflow/summary/:business_id",
			Method:      http.MethodGet,
			Handler:     CashflowSummary(service),
			Middlewares: middlewares{middleware.BusinessScope("business_id")},
		},
		{
			Path:        "/v1/metrics/:business_id",
			Method:      http.MethodGet,
			Handler:     GetMetrics(service),
			Middlewares: middlewares{middleware.BusinessScope("business_id")},
		},
	}
}

func Actions(service reminding.Reminder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/actions/send_whatsapp_reminder",
			Method:      http.MethodPost,
			Handler:     SendWhatsAppReminder(service),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:    "/v1/webhooks/whatsapp",
			Method:  http.MethodPost,
			Handler: WhatsAppWebhook(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.Authenticated()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.Authenticated()},
		},
	}
}
