package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/internal/usecases/extracting"
	"github.com/vfg2006/verity-api/internal/usecases/resolving"
)

type IngestWhatsAppRequest struct {
	BusinessID int64  `json:"business_id" validate:"required,gt=0"`
	RawText    string `json:"raw_text" validate:"required"`
}

type IngestTextRequest struct {
	BusinessID int64         `json:"business_id" validate:"required,gt=0"`
	RawText    string        `json:"raw_text" validate:"required"`
	Source     domain.Source `json:"source" validate:"omitempty,oneof=manual whatsapp sms email"`
}

type IngestInvoiceRequest struct {
	BusinessID int64  `json:"business_id" validate:"required,gt=0"`
	OCRText    string `json:"ocr_text" validate:"required"`
}

type IngestCSVRequest struct {
	BusinessID int64               `json:"business_id" validate:"required,gt=0"`
	Headers    []string            `json:"headers" validate:"required,min=1"`
	Rows       []map[string]string `json:"rows" validate:"required,min=1"`
}

type IngestResponse struct {
	Message       string              `json:"message"`
	TransactionID int64               `json:"transaction_id"`
	Transaction   *domain.Transaction `json:"transaction"`
}

type ParsedInvoiceResponse struct {
	ParsedInvoice domain.ParsedInvoice `json:"parsed_invoice"`
	Degraded      bool                 `json:"degraded"`
}

func IngestWhatsApp(service resolving.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[IngestWhatsAppRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		ingestText(w, r, service, req.BusinessID, req.RawText, domain.SourceWhatsApp)
	}
}

// IngestText ingests free text from any channel, manual when the source is omitted.
func IngestText(service resolving.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[IngestTextRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		source := req.Source
		if source == "" {
			source = domain.SourceManual
		}

		ingestText(w, r, service, req.BusinessID, req.RawText, source)
	}
}

func ingestText(w http.ResponseWriter, r *http.Request, service resolving.Resolver, businessID int64, rawText string, source domain.Source) {
	tx, err := service.IngestText(r.Context(), businessID, rawText, source)
	if err != nil {
		handleServiceError(w, err, "failed to ingest text")
		return
	}

	writeJSON(w, http.StatusCreated, IngestResponse{
		Message:       "Ingested",
		TransactionID: tx.ID,
		Transaction:   tx,
	})
}

// IngestInvoice parses OCR text into an invoice without persisting it.
func IngestInvoice(extractor extracting.Extractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[IngestInvoiceRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		parsed := extractor.ParseInvoice(r.Context(), req.OCRText)
		if parsed.Degraded() {
			logrus.WithError(parsed.Err).WithField("business_id", req.BusinessID).Warn("invoice parse degraded")
		}

		writeJSON(w, http.StatusOK, ParsedInvoiceResponse{
			ParsedInvoice: parsed,
			Degraded:      parsed.Degraded(),
		})
	}
}

func IngestCSV(service resolving.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[IngestCSVRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		report, err := service.IngestRows(r.Context(), req.BusinessID, req.Headers, req.Rows)
		if err != nil {
			handleServiceError(w, err, "failed to ingest rows")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
