package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/importing"
	"github.com/vfg2006/restaurant-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Imports(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/imports",
			Method:      http.MethodPost,
			Handler:     UploadImport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/imports",
			Method:      http.MethodGet,
			Handler:     ListImports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(trigger SyncTrigger, service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync",
			Method:      http.MethodPost,
			Handler:     TriggerSync(trigger),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(trigger),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sync/runs",
			Method:      http.MethodGet,
			Handler:     ListSyncRuns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sync/runs/:id",
			Method:      http.MethodGet,
			Handler:     GetSyncRun(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service analytics.Analyzer) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{Path: "/v1/stores", Method: http.MethodGet, Handler: ListStores(service), Middlewares: allRoles},
		{Path: "/v1/analytics/kpis", Method: http.MethodGet, Handler: GetKPIs(service), Middlewares: allRoles},
		{Path: "/v1/analytics/daily", Method: http.MethodGet, Handler: GetDailyTrend(service), Middlewares: allRoles},
		{Path: "/v1/analytics/monthly", Method: http.MethodGet, Handler: GetMonthlyTrend(service), Middlewares: allRoles},
		{Path: "/v1/analytics/channels", Method: http.MethodGet, Handler: GetChannelSplit(service), Middlewares: allRoles},
		{Path: "/v1/analytics/articles", Method: http.MethodGet, Handler: GetTopArticles(service), Middlewares: allRoles},
		{Path: "/v1/analytics/families", Method: http.MethodGet, Handler: GetFamilySplit(service), Middlewares: allRoles},
		{Path: "/v1/analytics/abc", Method: http.MethodGet, Handler: GetABCRanking(service), Middlewares: allRoles},
		{Path: "/v1/analytics/hourly", Method: http.MethodGet, Handler: GetHourlyProfile(service), Middlewares: allRoles},
		{Path: "/v1/analytics/stores", Method: http.MethodGet, Handler: GetStoreRanking(service), Middlewares: allRoles},
	}
}
