package extracting

import (
	"context"
	"strings"

	"github.com/vfg2006/verity-api/internal/domain"
)

const forecastUnavailable = "Forecast unavailable."

// AnalyzeRisk flags late payers and demand spikes. Empty lists on failure.
func (s *Service) AnalyzeRisk(ctx context.Context, input domain.RiskInput) domain.RiskSignals {
	signals := domain.RiskSignals{
		LatePaymentRisk:   []domain.LatePaymentRisk{},
		HighDemandSignals: []domain.DemandSignal{},
	}

	result := s.generate(ctx, taskAnalyzeRisk, input)
	if !result.OK() {
		fallback(taskAnalyzeRisk, result.Err)
		signals.Err = result.Err
		return signals
	}

	for _, item := range objects(result.Value["late_payment_risk"]) {
		reason := str(item["reason"])
		if reason == "" {
			continue
		}
		signals.LatePaymentRisk = append(signals.LatePaymentRisk, domain.LatePaymentRisk{
			InvoiceID: optID(item["invoice_id"]),
			Reason:    reason,
			Score:     clamp01(item["score"]),
		})
	}

	for _, item := range objects(result.Value["high_demand_signals"]) {
		name := str(item["item"])
		if name == "" {
			continue
		}
		signals.HighDemandSignals = append(signals.HighDemandSignals, domain.DemandSignal{
			Item:   name,
			Reason: str(item["reason"]),
			Score:  clamp01(item["score"]),
		})
	}

	return signals
}

// GenerateInsights turns a metrics snapshot into prioritised insights.
func (s *Service) GenerateInsights(ctx context.Context, snapshot *domain.MetricsSnapshot) domain.InsightSet {
	set := domain.InsightSet{Insights: []domain.Insight{}}

	result := s.generate(ctx, taskGenerateInsights, snapshot)
	if !result.OK() {
		fallback(taskGenerateInsights, result.Err)
		set.Err = result.Err
		return set
	}

	for _, item := range objects(result.Value["insights"]) {
		title := str(item["title"])
		if title == "" {
			continue
		}

		kind := strings.ToUpper(str(item["type"]))
		if kind == "" {
			kind = "OTHER"
		}

		set.Insights = append(set.Insights, domain.Insight{
			Type:             kind,
			Severity:         enum(item["severity"], domain.SeverityLow, domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow),
			Title:            title,
			Description:      str(item["description"]),
			ActionableAdvice: str(first(item, "actionable_advice", "advice")),
		})
	}

	return set
}

// ExplainForecast summarises the cashflow outlook built from the metrics.
func (s *Service) ExplainForecast(ctx context.Context, input domain.ForecastInput) domain.ForecastExplanation {
	explanation := domain.ForecastExplanation{
		Summary:         forecastUnavailable,
		KeyDrivers:      []string{},
		Recommendations: []string{},
	}

	result := s.generate(ctx, taskExplainForecast, input)
	if !result.OK() {
		fallback(taskExplainForecast, result.Err)
		explanation.Err = result.Err
		return explanation
	}

	if summary := str(result.Value["summary"]); summary != "" {
		explanation.Summary = summary
	}
	explanation.KeyDrivers = stringsList(result.Value["key_drivers"])
	explanation.Recommendations = stringsList(result.Value["recommendations"])

	return explanation
}

// GenerateReport writes the lender facing health report.
func (s *Service) GenerateReport(ctx context.Context, snapshot *domain.MetricsSnapshot) domain.Report {
	report := domain.Report{Sections: []domain.ReportSection{}}

	result := s.generate(ctx, taskGenerateReport, snapshot)
	if !result.OK() {
		fallback(taskGenerateReport, result.Err)
		report.Err = result.Err
		return report
	}

	for _, item := range objects(result.Value["sections"]) {
		title := str(item["title"])
		body := str(item["body"])
		if title == "" && body == "" {
			continue
		}
		report.Sections = append(report.Sections, domain.ReportSection{Title: title, Body: body})
	}

	return report
}
