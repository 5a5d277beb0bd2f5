package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
)

const (
	CronJobTypeOverdue = "overdue"
)

// CronJob is a scheduled job that can also be started by hand.
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

type CronJobServices struct {
	OverdueSweep CronJob
}

// RunCronJob starts a job in the background and returns immediately.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeOverdue:
			if services.OverdueSweep == nil {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "overdue sweep not available", nil)
				return
			}
			services.OverdueSweep.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: overdue", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron job triggered manually")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.OverdueSweep != nil {
			status[CronJobTypeOverdue] = services.OverdueSweep.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
