package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/restaurant-analytics-api/internal/api/handler/mocks"
	"github.com/vfg2006/restaurant-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/scheduler"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/analytics"
	analyticsmocks "github.com/vfg2006/restaurant-analytics-api/internal/usecases/analytics/mocks"
	authmocks "github.com/vfg2006/restaurant-analytics-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/importing"
	importingmocks "github.com/vfg2006/restaurant-analytics-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/middleware"
)

const (
	adminToken  = "token-admin"
	viewerToken = "token-leitor"
)

type apiFixture struct {
	handler  http.Handler
	auth     *authmocks.MockAuthenticator
	importer *importingmocks.MockImporter
	analyzer *analyticsmocks.MockAnalyzer
	sync     *mocks.MockSyncTrigger
}

func newAPIFixture(t *testing.T) *apiFixture {
	ctrl := gomock.NewController(t)
	f := &apiFixture{
		auth:     authmocks.NewMockAuthenticator(ctrl),
		importer: importingmocks.NewMockImporter(ctrl),
		analyzer: analyticsmocks.NewMockAnalyzer(ctrl),
		sync:     mocks.NewMockSyncTrigger(ctrl),
	}

	f.auth.EXPECT().ValidateToken(adminToken).
		Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil).AnyTimes()
	f.auth.EXPECT().ValidateToken(viewerToken).
		Return(&domain.Claims{UserID: 2, UserRoleID: domain.RoleViewer}, nil).AnyTimes()

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Authentication(f.auth)...),
		router.WithRoutes(Imports(f.importer)...),
		router.WithRoutes(Sync(f.sync, f.analyzer)...),
		router.WithRoutes(Analytics(f.analyzer)...),
	)
	f.handler = middleware.AuthMiddleware(f.auth)(rt)

	return f
}

func (f *apiFixture) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestLogin(t *testing.T) {
	f := newAPIFixture(t)

	f.auth.EXPECT().LoginUser(gomock.Any(), "ana@lupita.pt", "Segura123").Return("jwt", nil)
	rec := f.do(httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"ana@lupita.pt","password":"Segura123"}`)), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decode(t, rec, &resp)
	assert.Equal(t, "jwt", resp["token"])

	rec = f.do(httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{`)), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadImport(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		filename string
		token    string
		setup    func(f *apiFixture)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:     "Deteta o formato e mantém o nome original",
			url:      "/v1/imports",
			filename: "vendas_zona_marco.csv",
			token:    adminToken,
			setup: func(f *apiFixture) {
				f.importer.EXPECT().ImportFile(gomock.Any(), gomock.Any(), domain.ImportSourceUpload).
					DoAndReturn(func(_ context.Context, path, _ string) (*domain.ImportResult, error) {
						assert.Equal(t, "vendas_zona_marco.csv", filepath.Base(path))
						data, err := os.ReadFile(path)
						require.NoError(t, err)
						assert.Equal(t, "Zona;Total", string(data))
						return &domain.ImportResult{FileName: "vendas_zona_marco.csv", FileType: domain.FileTypeZone, RecordsInserted: 4}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var result domain.ImportResult
				decode(t, rec, &result)
				assert.Equal(t, 4, result.RecordsInserted)
				assert.Equal(t, domain.FileTypeZone, result.FileType)
			},
		},
		{
			name:     "Tipo explícito usa ImportFileAs",
			url:      "/v1/imports?type=hourly",
			filename: "relatorio.xlsx",
			token:    adminToken,
			setup: func(f *apiFixture) {
				f.importer.EXPECT().ImportFileAs(gomock.Any(), gomock.Any(), domain.FileTypeHourly, domain.ImportSourceUpload).
					Return(&domain.ImportResult{FileType: domain.FileTypeHourly}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:     "Tipo desconhecido é rejeitado antes de ler o ficheiro",
			url:      "/v1/imports?type=stock",
			filename: "relatorio.xlsx",
			token:    adminToken,
			setup:    func(f *apiFixture) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrUnsupportedFileType)
			},
		},
		{
			name:     "Extensão não suportada",
			url:      "/v1/imports",
			filename: "relatorio.pdf",
			token:    adminToken,
			setup:    func(f *apiFixture) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:     "Falha da importação devolve 422 com o resultado",
			url:      "/v1/imports",
			filename: "vendas.xls",
			token:    adminToken,
			setup: func(f *apiFixture) {
				f.importer.EXPECT().ImportFile(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.ImportResult{Errors: []string{"ficheiro corrompido"}}, errors.New("erro ao ler o ficheiro"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
				assert.Contains(t, rec.Body.String(), "ficheiro corrompido")
			},
		},
		{
			name:     "Formato não suportado pelo importador",
			url:      "/v1/imports",
			filename: "vendas.xls",
			token:    adminToken,
			setup: func(f *apiFixture) {
				f.importer.EXPECT().ImportFile(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.ImportResult{}, importing.ErrUnsupportedFileType)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:     "Perfil de leitura não importa",
			url:      "/v1/imports",
			filename: "vendas.xls",
			token:    viewerToken,
			setup:    func(f *apiFixture) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			tt.setup(f)

			body, contentType := multipartBody(t, tt.filename, []byte("Zona;Total"))
			req := httptest.NewRequest(http.MethodPost, tt.url, body)
			req.Header.Set("Content-Type", contentType)

			tt.validate(t, f.do(req, tt.token))
		})
	}
}

func TestUploadImport_MissingFile(t *testing.T) {
	f := newAPIFixture(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("outro", "x"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/imports", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := f.do(req, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingRequiredData)
}

func TestTriggerSync(t *testing.T) {
	t.Run("Aceita e devolve o id da execução", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sync.EXPECT().TriggerManualSync(gomock.Any()).Return(int64(12), nil)

		rec := f.do(httptest.NewRequest(http.MethodPost, "/v1/sync", nil), adminToken)
		assert.Equal(t, http.StatusAccepted, rec.Code)

		var resp map[string]any
		decode(t, rec, &resp)
		assert.Equal(t, float64(12), resp["sync_id"])
	})

	t.Run("Sincronização em andamento devolve 409 com o id atual", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sync.EXPECT().TriggerManualSync(gomock.Any()).Return(int64(0), &scheduler.SyncInProgressError{RunningID: 7})

		rec := f.do(httptest.NewRequest(http.MethodPost, "/v1/sync", nil), adminToken)
		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp apiErrors.APIError
		decode(t, rec, &resp)
		assert.Equal(t, apiErrors.ErrSyncInProgress, resp.Code)
		assert.Equal(t, map[string]any{"running_sync_id": float64(7)}, resp.Details)
	})

	t.Run("Estado e execuções são visíveis para leitura", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sync.EXPECT().GetStatus().Return(map[string]any{"running": false})
		f.analyzer.EXPECT().ListSyncRuns(gomock.Any(), 5).Return([]*domain.SyncRun{{ID: 3}}, nil)
		f.analyzer.EXPECT().GetSyncRun(gomock.Any(), int64(99)).Return(nil, analytics.ErrSyncRunNotFound)

		assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil), viewerToken).Code)
		assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodGet, "/v1/sync/runs?limit=5", nil), viewerToken).Code)
		assert.Equal(t, http.StatusNotFound, f.do(httptest.NewRequest(http.MethodGet, "/v1/sync/runs/99", nil), viewerToken).Code)
		assert.Equal(t, http.StatusBadRequest, f.do(httptest.NewRequest(http.MethodGet, "/v1/sync/runs/abc", nil), viewerToken).Code)
		assert.Equal(t, http.StatusForbidden, f.do(httptest.NewRequest(http.MethodPost, "/v1/sync", nil), viewerToken).Code)
	})
}

func TestAnalyticsFilters(t *testing.T) {
	previous := now
	now = func() time.Time { return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = previous })

	tests := []struct {
		name     string
		url      string
		setup    func(f *apiFixture)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Sem datas usa o mês corrente",
			url:  "/v1/analytics/kpis",
			setup: func(f *apiFixture) {
				f.analyzer.EXPECT().GetKPIs(gomock.Any(), domain.AnalyticsFilter{From: "2025-03-01", To: "2025-03-15"}).
					Return(&domain.KPISummary{From: "2025-03-01", To: "2025-03-15"}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "Lojas e zona são passadas ao serviço",
			url:  "/v1/analytics/daily?from=2025-01-01&to=2025-01-31&stores=porto,%20alvalade&zone=take%20away",
			setup: func(f *apiFixture) {
				f.analyzer.EXPECT().GetDailyTrend(gomock.Any(), domain.AnalyticsFilter{
					From: "2025-01-01", To: "2025-01-31", Stores: []string{"porto", "alvalade"}, Zone: "Takeaway",
				}).Return([]*domain.TrendPoint{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:  "Data mal formatada",
			url:   "/v1/analytics/channels?from=01-03-2025",
			setup: func(f *apiFixture) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidPeriod)
			},
		},
		{
			name: "Período invertido vindo do serviço",
			url:  "/v1/analytics/hourly?from=2025-03-10&to=2025-03-01",
			setup: func(f *apiFixture) {
				f.analyzer.EXPECT().GetHourlyProfile(gomock.Any(), gomock.Any()).Return(nil, analytics.ErrInvalidPeriod)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name: "Artigos com limite e ordenação",
			url:  "/v1/analytics/articles?limit=5&order_by=quantity",
			setup: func(f *apiFixture) {
				f.analyzer.EXPECT().GetTopArticles(gomock.Any(), gomock.Any(), 5, "quantity").Return([]*domain.ArticleRanking{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "Ordenação desconhecida",
			url:  "/v1/analytics/articles?order_by=price",
			setup: func(f *apiFixture) {
				f.analyzer.EXPECT().GetTopArticles(gomock.Any(), gomock.Any(), 0, "price").Return(nil, analytics.ErrInvalidOrderBy)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:  "Limite inválido",
			url:   "/v1/analytics/articles?limit=muitos",
			setup: func(f *apiFixture) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name: "Erro do repositório vira 500",
			url:  "/v1/analytics/stores",
			setup: func(f *apiFixture) {
				f.analyzer.EXPECT().GetStoreRanking(gomock.Any(), gomock.Any()).Return(nil, errors.New("database is locked"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.NotContains(t, rec.Body.String(), "locked")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			tt.setup(f)

			tt.validate(t, f.do(httptest.NewRequest(http.MethodGet, tt.url, nil), viewerToken))
		})
	}
}
