package handler

//go:generate mockgen -source=sync.go -destination=mocks/sync.go -package=mocks

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/restaurant-analytics-api/internal/scheduler"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/middleware"
)

// SyncTrigger é a parte do serviço de sincronização usada pela API.
type SyncTrigger interface {
	TriggerManualSync(ctx context.Context) (int64, error)
	GetStatus() map[string]any
}

// TriggerSync inicia uma sincronização em segundo plano. Responde 202 com o id da execução,
// ou 409 com o id da execução que já está a correr.
func TriggerSync(service SyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerSync")

		id, err := service.TriggerManualSync(r.Context())
		if err != nil {
			var busy *scheduler.SyncInProgressError
			if errors.As(err, &busy) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Já existe uma sincronização em andamento", map[string]any{
					"running_sync_id": busy.RunningID,
				})
				return
			}

			logrus.Error("Erro ao iniciar sincronização:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao iniciar sincronização", nil)
			return
		}

		middleware.Annotate(r.Context(), "sync_id", id)
		writeJSON(w, http.StatusAccepted, map[string]any{
			"sync_id": id,
			"status":  "running",
		})
	}
}

func GetSyncStatus(service SyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	}
}

func ListSyncRuns(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryLimit(w, r)
		if !ok {
			return
		}

		runs, err := service.ListSyncRuns(r.Context(), limit)
		if err != nil {
			logrus.Error("Erro ao listar sincronizações:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar sincronizações", nil)
			return
		}

		writeJSON(w, http.StatusOK, runs)
	}
}

func GetSyncRun(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da sincronização inválido", nil)
			return
		}

		run, err := service.GetSyncRun(r.Context(), id)
		if err != nil {
			if errors.Is(err, analytics.ErrSyncRunNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrSyncNotFound, "Sincronização não encontrada", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao obter sincronização", nil)
			return
		}

		writeJSON(w, http.StatusOK, run)
	}
}
