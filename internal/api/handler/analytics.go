package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

// parseFilter lê from, to, stores e zone da query string. Sem datas, o período é o mês corrente.
func parseFilter(w http.ResponseWriter, r *http.Request) (domain.AnalyticsFilter, bool) {
	query := r.URL.Query()
	today := now()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	from, err := utils.ParseDate(query.Get("from"), monthStart)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Data inicial inválida, use yyyy-mm-dd", map[string]any{"from": query.Get("from")})
		return domain.AnalyticsFilter{}, false
	}

	to, err := utils.ParseDate(query.Get("to"), today)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Data final inválida, use yyyy-mm-dd", map[string]any{"to": query.Get("to")})
		return domain.AnalyticsFilter{}, false
	}

	filter := domain.AnalyticsFilter{From: from, To: to}

	for _, store := range strings.Split(query.Get("stores"), ",") {
		if store = strings.TrimSpace(store); store != "" {
			filter.Stores = append(filter.Stores, store)
		}
	}

	if zone := query.Get("zone"); zone != "" {
		filter.Zone = spreadsheet.NormalizeZone(zone)
	}

	return filter, true
}

// analyticsHandler trata o filtro e os erros comuns a todas as consultas.
func analyticsHandler[T any](name string, fetch func(ctx context.Context, r *http.Request, filter domain.AnalyticsFilter) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(w, r)
		if !ok {
			return
		}

		result, err := fetch(r.Context(), r, filter)
		if err != nil {
			switch {
			case errors.Is(err, analytics.ErrInvalidPeriod):
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			case errors.Is(err, analytics.ErrInvalidOrderBy):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			default:
				logrus.WithField("query", name).Error("Erro ao consultar análise:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetKPIs(service analytics.Analyzer) http.HandlerFunc {
	return analyticsHandler("kpis", func(ctx context.Context, _ *http.Request, f domain.AnalyticsFilter) (*domain.KPISummary, error) {
		return service.GetKPIs(ctx, f)
	})
}

func GetDailyTrend(service analytics.Analyzer) http.HandlerFunc {
	return analyticsHandler("daily", func(ctx context.Context, _ *http.Request, f domain.AnalyticsFilter) ([]*domain.TrendPoint, error) {
		return service.GetDailyTrend(ctx, f)
	})
}

func GetMonthlyTrend(service analytics.Analyzer) http.HandlerFunc {
	return analyticsHandler("monthly", func(ctx context.Context, _ *http.Request, f domain.AnalyticsFilter) ([]*domain.TrendPoint, error) {
		return service.GetMonthlyTrend(ctx, f)
	})
}

func GetChannelSplit(service analytics.Analyzer) http.HandlerFunc {
	return analyticsHandler("channels", func(ctx context.Context, _ *http.Request, f domain.AnalyticsFilter) ([]*domain.ChannelShare, error) {
		return service.GetChannelSplit(ctx, f)
	})
}

func GetTopArticles(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryLimit(w, r)
		if !ok {
			return
		}

		analyticsHandler("articles", func(ctx context.Context, r *http.Request, f domain.AnalyticsFilter) ([]*domain.ArticleRanking, error) {
			return service.GetTopArticles(ctx, f, limit, r.URL.Query().Get("order_by"))
		})(w, r)
	}
}

func GetFamilySplit(service analytics.Analyzer) http.HandlerFunc {
	return analyticsHandler("families", func(ctx context.Context, _ *http.Request, f domain.AnalyticsFilter) ([]*domain.FamilyShare, error) {
		return service.GetFamilySplit(ctx, f)
	})
}

func GetABCRanking(service analytics.Analyzer) http.HandlerFunc {
	return analyticsHandler("abc", func(ctx context.Context, _ *http.Request, f domain.AnalyticsFilter) (*domain.ABCRanking, error) {
		return service.GetABCRanking(ctx, f)
	})
}

func GetHourlyProfile(service analytics.Analyzer) http.HandlerFunc {
	return analyticsHandler("hourly", func(ctx context.Context, _ *http.Request, f domain.AnalyticsFilter) ([]*domain.HourlySlot, error) {
		return service.GetHourlyProfile(ctx, f)
	})
}

func GetStoreRanking(service analytics.Analyzer) http.HandlerFunc {
	return analyticsHandler("stores", func(ctx context.Context, _ *http.Request, f domain.AnalyticsFilter) ([]*domain.StoreRanking, error) {
		return service.GetStoreRanking(ctx, f)
	})
}

func ListStores(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stores, err := service.ListStores(r.Context())
		if err != nil {
			logrus.Error("Erro ao listar lojas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lojas", nil)
			return
		}

		writeJSON(w, http.StatusOK, stores)
	}
}
