package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/internal/usecases/reminding"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
)

const (
	defaultReminderTone     = "friendly"
	defaultReminderLanguage = "English/Hinglish"
)

func SendWhatsAppReminder(service reminding.Reminder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAndValidate[domain.SendReminderRequest](w, r)
		if !ok || !authorizeBusiness(w, r, req.BusinessID) {
			return
		}

		if req.PreferredTone == "" {
			req.PreferredTone = defaultReminderTone
		}
		if req.PreferredLanguage == "" {
			req.PreferredLanguage = defaultReminderLanguage
		}

		resp, err := service.SendReminder(r.Context(), &req)
		if err != nil {
			handleServiceError(w, err, "failed to send reminder")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// WhatsAppWebhook acknowledges Twilio's form-encoded callbacks.
func WhatsAppWebhook(service reminding.Reminder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid form body", nil)
			return
		}

		from := r.PostForm.Get("From")
		body := r.PostForm.Get("Body")
		if from == "" || body == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "From and Body are required", nil)
			return
		}

		service.ReceiveMessage(r.Context(), domain.IncomingMessage{From: from, Body: body})

		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte("OK")); err != nil {
			logrus.WithError(err).Warn("failed to acknowledge webhook")
		}
	}
}
