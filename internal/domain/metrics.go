package domain

import "encoding/json"

// MetricsSnapshot is recomputed on every request and never cached.
type MetricsSnapshot struct {
	BusinessID           int64              `json:"business_id"`
	BusinessName         string             `json:"business_name"`
	Industry             *string            `json:"industry"`
	Location             *string            `json:"location"`
	MonthlyRevenue       map[string]float64 `json:"monthly_revenue"`
	MonthlyOutflow       map[string]float64 `json:"monthly_outflow"`
	WindowMonths         []string           `json:"window_months"`
	TotalInflowWindow    float64            `json:"total_inflow_window"`
	TotalOutflowWindow   float64            `json:"total_outflow_window"`
	RevenueGrowthPercent *float64           `json:"revenue_growth_percent"`
	OverdueAmount        float64            `json:"overdue_amount"`
}

type CashflowSummary struct {
	BusinessID   int64   `json:"business_id"`
	TotalInflow  float64 `json:"total_inflow"`
	TotalOutflow float64 `json:"total_outflow"`
	NetBalance   float64 `json:"net_balance"`
}

// MarshalJSON also emits the window totals under the *_last_3m names older clients read.
func (m MetricsSnapshot) MarshalJSON() ([]byte, error) {
	type alias MetricsSnapshot
	return json.Marshal(struct {
		alias
		TotalInflowLast3m  float64 `json:"total_inflow_last_3m"`
		TotalOutflowLast3m float64 `json:"total_outflow_last_3m"`
	}{
		alias:              alias(m),
		TotalInflowLast3m:  m.TotalInflowWindow,
		TotalOutflowLast3m: m.TotalOutflowWindow,
	})
}
