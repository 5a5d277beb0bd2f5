package domain

// Degradation marks an extraction result that was replaced by its declared default.
type Degradation struct {
	Err error `json:"-"`
}

func (d Degradation) Degraded() bool {
	return d.Err != nil
}

type TransactionMethod string

const (
	MethodUPI   TransactionMethod = "upi"
	MethodPOS   TransactionMethod = "pos"
	MethodCash  TransactionMethod = "cash"
	MethodBank  TransactionMethod = "bank"
	MethodOther TransactionMethod = "other"
)

const (
	DefaultCategory = "other"
	DefaultCurrency = "INR"
)

type InvoiceReference struct {
	HasInvoice    bool    `json:"has_invoice"`
	InvoiceNumber *string `json:"invoice_number"`
	DueDate       *string `json:"due_date"`
}

type ParsedTransaction struct {
	Degradation
	Direction        Direction         `json:"direction"`
	Amount           float64           `json:"amount"`
	Currency         string            `json:"currency"`
	Method           TransactionMethod `json:"method"`
	CounterpartyName *string           `json:"counterparty_name"`
	Category         string            `json:"category"`
	Invoice          InvoiceReference  `json:"invoice"`
	Notes            *string           `json:"notes"`
	Date             *string           `json:"date"`
}

type InvoiceItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type ParsedInvoice struct {
	Degradation
	InvoiceNumber *string       `json:"invoice_number"`
	Seller        *string       `json:"seller"`
	Buyer         *string       `json:"buyer"`
	TotalAmount   float64       `json:"total_amount"`
	DueDate       *string       `json:"due_date"`
	IssueDate     *string       `json:"issue_date"`
	Items         []InvoiceItem `json:"items"`
}

// Canonical column names used when re-keying tabular rows.
const (
	ColumnDate         = "date"
	ColumnAmount       = "amount"
	ColumnDescription  = "description"
	ColumnDirection    = "direction"
	ColumnCounterparty = "counterparty"
)

type ColumnMapping struct {
	Degradation
	DateColumn         *string `json:"date_column"`
	AmountColumn       *string `json:"amount_column"`
	DescriptionColumn  *string `json:"description_column"`
	TypeColumn         *string `json:"type_column"`
	CounterpartyColumn *string `json:"counterparty_column"`
}

// Fields returns canonical name -> source column for the mapped columns only.
func (m ColumnMapping) Fields() map[string]string {
	fields := make(map[string]string, 5)
	set := func(canonical string, source *string) {
		if source != nil && *source != "" {
			fields[canonical] = *source
		}
	}
	set(ColumnDate, m.DateColumn)
	set(ColumnAmount, m.AmountColumn)
	set(ColumnDescription, m.DescriptionColumn)
	set(ColumnDirection, m.TypeColumn)
	set(ColumnCounterparty, m.CounterpartyColumn)
	return fields
}

type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
	MatchNew   MatchType = "new"
	MatchNone  MatchType = "none"
)

type ContactMatch struct {
	ContactID   *int64    `json:"contact_id"`
	ContactName *string   `json:"contact_name,omitempty"`
	MatchType   MatchType `json:"match_type"`
	Confidence  float64   `json:"confidence"`
}

type InvoiceMatch struct {
	InvoiceID *int64    `json:"invoice_id"`
	MatchType MatchType `json:"match_type"`
}

type LedgerMatch struct {
	Degradation
	ContactMatch ContactMatch `json:"contact_match"`
	InvoiceMatch InvoiceMatch `json:"invoice_match"`
}

// LedgerSnapshot is the view of existing entities a match is computed against.
type LedgerSnapshot struct {
	Contacts []*Contact `json:"contacts"`
	Invoices []*Invoice `json:"invoices"`
}

type Categorization struct {
	Degradation
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	TaxCode     *string `json:"tax_code"`
	IsRecurring bool    `json:"is_recurring"`
	Confidence  float64 `json:"confidence"`
}

type LatePaymentRisk struct {
	InvoiceID *int64  `json:"invoice_id"`
	Reason    string  `json:"reason"`
	Score     float64 `json:"score"`
}

type DemandSignal struct {
	Item   string  `json:"item"`
	Reason string  `json:"reason"`
	Score  float64 `json:"score"`
}

type RiskSignals struct {
	Degradation
	LatePaymentRisk   []LatePaymentRisk `json:"late_payment_risk"`
	HighDemandSignals []DemandSignal    `json:"high_demand_signals"`
}

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

type Insight struct {
	Type             string   `json:"type"`
	Severity         Severity `json:"severity"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ActionableAdvice string   `json:"actionable_advice"`
}

type InsightSet struct {
	Degradation
	Insights []Insight `json:"insights"`
}

type ForecastExplanation struct {
	Degradation
	Summary         string   `json:"summary"`
	KeyDrivers      []string `json:"key_drivers"`
	Recommendations []string `json:"recommendations"`
}

type ReminderContext struct {
	BusinessName      string  `json:"business_name"`
	CustomerName      string  `json:"customer_name"`
	InvoiceNumber     string  `json:"invoice_number"`
	DueDate           string  `json:"due_date"`
	AmountDue         float64 `json:"amount_due"`
	DaysOverdue       *int    `json:"days_overdue"`
	PreferredTone     string  `json:"preferred_tone"`
	PreferredLanguage string  `json:"preferred_language"`
}

type ReminderText struct {
	Degradation
	Message   string `json:"message"`
	Templated bool   `json:"templated"`
}

type Slide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type PitchDeckOutline struct {
	Degradation
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
	Slides   []Slide `json:"slides"`
}

type ReportSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Report struct {
	Degradation
	Sections []ReportSection `json:"sections"`
}

// CategorizationInput is the transaction description plus whatever metadata the caller has.
type CategorizationInput struct {
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

type RiskInput struct {
	RecentTransactions []*Transaction   `json:"recent_transactions"`
	Metrics            *MetricsSnapshot `json:"metrics"`
	Context            map[string]any   `json:"context,omitempty"`
}

type ForecastInput struct {
	BusinessName         string             `json:"business_name"`
	HorizonDays          int                `json:"horizon_days"`
	MonthlyRevenue       map[string]float64 `json:"monthly_revenue"`
	MonthlyOutflow       map[string]float64 `json:"monthly_outflow"`
	TotalInflowWindow    float64            `json:"total_inflow_window"`
	TotalOutflowWindow   float64            `json:"total_outflow_window"`
	RevenueGrowthPercent *float64           `json:"revenue_growth_percent"`
	OverdueAmount        float64            `json:"overdue_amount"`
	RiskFlags            []string           `json:"risk_flags"`
	Assumptions          []string           `json:"assumptions"`
}
