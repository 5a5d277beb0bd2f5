package resolving

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/database/postgres"
	"github.com/vfg2006/verity-api/infrastructure/repository"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/internal/usecases/extracting"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
	"github.com/vfg2006/verity-api/pkg/metrics"
	"github.com/vfg2006/verity-api/pkg/utils"
)

const csvSampleRows = 5

//go:generate mockgen -source=service.go -destination=mocks/resolver_mock.go -package=mocks
type Resolver interface {
	IngestText(ctx context.Context, businessID int64, rawText string, source domain.Source) (*domain.Transaction, error)
	IngestRows(ctx context.Context, businessID int64, headers []string, rows []map[string]string) (*IngestReport, error)
}

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type IngestReport struct {
	Mapping      domain.ColumnMapping  `json:"mapping"`
	Transactions []*domain.Transaction `json:"transactions"`
	Errors       []RowError            `json:"errors"`
}

type Service struct {
	extractor       extracting.Extractor
	transactor      postgres.Transactor
	businessRepo    repository.BusinessRepository
	contactRepo     repository.ContactRepository
	invoiceRepo     repository.InvoiceRepository
	transactionRepo repository.TransactionRepository
	rawEventRepo    repository.RawEventRepository
	now             func() time.Time
}

func NewService(
	extractor extracting.Extractor,
	transactor postgres.Transactor,
	businessRepo repository.BusinessRepository,
	contactRepo repository.ContactRepository,
	invoiceRepo repository.InvoiceRepository,
	transactionRepo repository.TransactionRepository,
	rawEventRepo repository.RawEventRepository,
) *Service {
	return &Service{
		extractor:       extractor,
		transactor:      transactor,
		businessRepo:    businessRepo,
		contactRepo:     contactRepo,
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		rawEventRepo:    rawEventRepo,
		now:             time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// IngestText extracts a transaction from raw text and stores it with its contact and invoice.
func (s *Service) IngestText(ctx context.Context, businessID int64, rawText string, source domain.Source) (*domain.Transaction, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, NewResolveError(ErrEmptyText, apiErrors.ErrMissingRequiredData, businessID, "")
	}

	if err := s.ensureBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	return s.ingest(ctx, businessID, rawText, source)
}

// IngestRows maps the columns once, then ingests every row as text. Rows that fail are
// reported and do not stop the upload.
func (s *Service) IngestRows(ctx context.Context, businessID int64, headers []string, rows []map[string]string) (*IngestReport, error) {
	if len(rows) == 0 {
		return nil, NewResolveError(ErrNoRows, apiErrors.ErrMissingRequiredData, businessID, "")
	}

	if err := s.ensureBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	sample := rows
	if len(sample) > csvSampleRows {
		sample = sample[:csvSampleRows]
	}

	report := &IngestReport{
		Mapping:      s.extractor.MapColumns(ctx, headers, sample),
		Transactions: make([]*domain.Transaction, 0, len(rows)),
		Errors:       make([]RowError, 0),
	}

	for i, row := range rows {
		text := RenderRow(extracting.RemapRow(report.Mapping, row))
		if text == "" {
			report.Errors = append(report.Errors, RowError{Row: i + 1, Error: ErrEmptyText.Error()})
			continue
		}

		tx, err := s.ingest(ctx, businessID, text, domain.SourceCSV)
		if err != nil {
			report.Errors = append(report.Errors, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		report.Transactions = append(report.Transactions, tx)
	}

	logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"rows":        len(rows),
		"ingested":    len(report.Transactions),
		"failed":      len(report.Errors),
	}).Info("csv ingestion finished")

	return report, nil
}

func (s *Service) ensureBusiness(ctx context.Context, businessID int64) error {
	business, err := s.businessRepo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return NewResolveError(ErrPersistence, apiErrors.ErrDatabaseOperation, businessID, err.Error())
	}
	if business == nil {
		return NewResolveError(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, businessID, "")
	}
	return nil
}

func (s *Service) ingest(ctx context.Context, businessID int64, rawText string, source domain.Source) (*domain.Transaction, error) {
	logger := logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"source":      source,
	})

	if _, err := s.rawEventRepo.CreateRawEvent(ctx, &domain.RawEvent{
		BusinessID: businessID,
		Source:     source,
		RawText:    rawText,
	}); err != nil {
		logger.WithError(err).Warn("failed to archive raw event")
	}

	parsed := s.extractor.ParseTransaction(ctx, rawText)
	if parsed.Degraded() {
		logger.WithError(parsed.Err).Warn("transaction extraction degraded, storing safe default")
	}

	var created *domain.Transaction
	err := s.transactor.RunInTransaction(ctx, func(sqlTx *sql.Tx) error {
		contact, err := s.resolveContact(ctx, s.contactRepo.WithTx(sqlTx), businessID, parsed.CounterpartyName)
		if err != nil {
			return err
		}

		invoice, err := s.resolveInvoice(ctx, s.invoiceRepo.WithTx(sqlTx), businessID, contact, parsed)
		if err != nil {
			return err
		}

		created, err = s.transactionRepo.WithTx(sqlTx).CreateTransaction(ctx, s.buildTransaction(businessID, invoice, parsed, rawText, source))
		return err
	})
	if err != nil {
		metrics.IngestionsTotal.WithLabelValues(string(source), "error").Inc()
		logger.WithError(err).Error("failed to persist ingestion")
		return nil, NewResolveError(ErrPersistence, apiErrors.ErrDatabaseOperation, businessID, err.Error())
	}

	outcome := "ok"
	if parsed.Degraded() {
		outcome = "degraded"
	}
	metrics.IngestionsTotal.WithLabelValues(string(source), outcome).Inc()

	logger.WithFields(logrus.Fields{
		"transaction_id": created.ID,
		"direction":      created.Direction,
		"amount":         created.Amount,
	}).Info("transaction ingested")

	return created, nil
}

// resolveContact reuses the oldest contact with exactly this name or creates a customer.
// The advisory lock serializes concurrent ingestions of the same new name.
func (s *Service) resolveContact(ctx context.Context, contacts repository.ContactRepository, businessID int64, counterparty *string) (*domain.Contact, error) {
	if counterparty == nil || strings.TrimSpace(*counterparty) == "" {
		return nil, nil
	}
	name := strings.TrimSpace(*counterparty)

	if err := contacts.LockContactName(ctx, businessID, name); err != nil {
		return nil, err
	}

	contact, err := contacts.GetContactByName(ctx, businessID, name)
	if err != nil {
		return nil, err
	}
	if contact != nil {
		return contact, nil
	}

	return contacts.CreateContact(ctx, &domain.Contact{
		BusinessID: businessID,
		Name:       name,
		Kind:       domain.ContactKindCustomer,
	})
}

func (s *Service) resolveInvoice(ctx context.Context, invoices repository.InvoiceRepository, businessID int64, contact *domain.Contact, parsed domain.ParsedTransaction) (*domain.Invoice, error) {
	if !parsed.Invoice.HasInvoice {
		return nil, nil
	}

	invoice := &domain.Invoice{
		BusinessID:  businessID,
		Amount:      parsed.Amount,
		Kind:        domain.InvoiceKindFor(parsed.Direction),
		Status:      domain.InvoiceStatusPending,
		Description: parsed.Notes,
	}
	if contact != nil {
		invoice.ContactID = &contact.ID
	}

	if parsed.Invoice.DueDate != nil {
		due, err := utils.ParseDate(*parsed.Invoice.DueDate)
		if err == nil && due != nil {
			invoice.DueDate = due
		}
	}

	number := parsed.Invoice.InvoiceNumber
	if number == nil {
		generated, err := utils.GenerateInvoiceNumber()
		if err != nil {
			return nil, fmt.Errorf("generate invoice number: %w", err)
		}
		number = &generated
	}
	invoice.Number = number

	RecomputeInvoiceStatus(invoice, s.now())

	return invoices.CreateInvoice(ctx, invoice)
}

func (s *Service) buildTransaction(businessID int64, invoice *domain.Invoice, parsed domain.ParsedTransaction, rawText string, source domain.Source) *domain.Transaction {
	tx := &domain.Transaction{
		BusinessID: businessID,
		Direction:  parsed.Direction,
		Amount:     parsed.Amount,
		Currency:   parsed.Currency,
		Method:     string(parsed.Method),
		Category:   parsed.Category,
		Date:       s.now().UTC(),
		RawText:    &rawText,
		Source:     source,
	}

	if invoice != nil {
		tx.InvoiceID = &invoice.ID
	}
	if tx.Direction == "" {
		tx.Direction = domain.DirectionInflow
	}
	if tx.Currency == "" {
		tx.Currency = domain.DefaultCurrency
	}
	if tx.Method == "" {
		tx.Method = string(domain.MethodOther)
	}
	if tx.Category == "" {
		tx.Category = domain.DefaultCategory
	}
	if parsed.Date != nil {
		if date, err := utils.ParseDate(*parsed.Date); err == nil && date != nil {
			tx.Date = *date
		}
	}

	return tx
}

// RecomputeInvoiceStatus derives the status from the due date. Paid is terminal and is
// never produced here.
func RecomputeInvoiceStatus(invoice *domain.Invoice, now time.Time) domain.InvoiceStatus {
	if invoice.Status == domain.InvoiceStatusPaid {
		return invoice.Status
	}

	if invoice.DueDate != nil && utils.StartOfDay(*invoice.DueDate).Before(utils.StartOfDay(now)) {
		invoice.Status = domain.InvoiceStatusOverdue
	} else {
		invoice.Status = domain.InvoiceStatusPending
	}

	return invoice.Status
}

var canonicalOrder = []string{
	domain.ColumnDate,
	domain.ColumnDescription,
	domain.ColumnCounterparty,
	domain.ColumnAmount,
	domain.ColumnDirection,
}

// RenderRow turns a canonical row back into one line of text for the transaction parser.
func RenderRow(row map[string]string) string {
	parts := make([]string, 0, len(row))
	seen := make(map[string]bool, len(canonicalOrder))

	for _, key := range canonicalOrder {
		seen[key] = true
		if value := strings.TrimSpace(row[key]); value != "" {
			parts = append(parts, key+": "+value)
		}
	}

	extra := make([]string, 0, len(row))
	for key := range row {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)

	for _, key := range extra {
		if value := strings.TrimSpace(row[key]); value != "" {
			parts = append(parts, key+": "+value)
		}
	}

	return strings.Join(parts, "; ")
}
