package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	zsbmsdomain "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/domain"
	zsbmsmocks "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/mocks"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	importingmocks "github.com/vfg2006/restaurant-analytics-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
)

var fixedNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type syncFixture struct {
	service    *ZSBMSSyncService
	syncRuns   *mocks.MockSyncRunRepository
	integrator *zsbmsmocks.MockZSBMSIntegrator
	importer   *importingmocks.MockImporter
}

func newSyncFixture(t *testing.T) *syncFixture {
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		syncRuns:   mocks.NewMockSyncRunRepository(ctrl),
		integrator: zsbmsmocks.NewMockZSBMSIntegrator(ctrl),
		importer:   importingmocks.NewMockImporter(ctrl),
	}
	f.service = &ZSBMSSyncService{
		config:     config.ZSBMSSync{DownloadDir: t.TempDir(), Enabled: false},
		syncRuns:   f.syncRuns,
		integrator: f.integrator,
		importer:   f.importer,
		now:        func() time.Time { return fixedNow },
	}
	return f
}

func emit(downloads ...zsbmsdomain.ReportDownload) func(context.Context, time.Time, time.Time, func(zsbmsdomain.ReportDownload)) ([]zsbmsdomain.ReportDownload, error) {
	return func(_ context.Context, _, _ time.Time, onResult func(zsbmsdomain.ReportDownload)) ([]zsbmsdomain.ReportDownload, error) {
		for _, d := range downloads {
			onResult(d)
		}
		return downloads, nil
	}
}

func TestZSBMSSyncService_RunSync(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *syncFixture) *string
		validate func(t *testing.T, run *domain.SyncRun, importedPath *string)
	}{
		{
			name: "Relatório com falha de exportação resulta em execução parcial",
			setup: func(f *syncFixture) *string {
				var importedPath string
				f.syncRuns.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, run *domain.SyncRun) (int64, error) {
						assert.Equal(t, domain.SyncTriggerCLI, run.Trigger)
						assert.Equal(t, "2025-01-01", run.DateFrom)
						assert.Equal(t, "2025-03-15", run.DateTo)
						return 42, nil
					})
				f.integrator.EXPECT().DownloadAll(gomock.Any(),
					time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
					gomock.Any(),
				).DoAndReturn(emit(
					zsbmsdomain.ReportDownload{Key: zsbmsdomain.ReportDailySales, FileType: domain.FileTypeDaily, Data: []byte("xls")},
					zsbmsdomain.ReportDownload{Key: zsbmsdomain.ReportZoneSales, FileType: domain.FileTypeZone, Err: errors.New("resposta HTML")},
				))
				f.importer.EXPECT().ImportReport(gomock.Any(), zsbmsdomain.ReportDailySales, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, path string) (*domain.ImportResult, error) {
						importedPath = path
						data, err := os.ReadFile(path)
						require.NoError(t, err)
						assert.Equal(t, "xls", string(data))
						return &domain.ImportResult{RecordsInserted: 3, RecordsUpdated: 2, Errors: []string{"linha 9: loja não identificada"}}, nil
					})
				f.syncRuns.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
				return &importedPath
			},
			validate: func(t *testing.T, run *domain.SyncRun, importedPath *string) {
				assert.Equal(t, int64(42), run.ID)
				assert.Equal(t, domain.SyncStatusPartial, run.Status)
				assert.Equal(t, 1, run.ReportsOK)
				assert.Equal(t, 1, run.ReportsFailed)
				assert.Equal(t, 3, run.RecordsInserted)
				assert.Equal(t, 2, run.RecordsUpdated)
				require.Len(t, run.Details, 2)
				assert.True(t, run.Details[0].Success)
				assert.Len(t, run.Details[0].Errors, 1)
				assert.Equal(t, "resposta HTML", run.Details[1].Error)

				_, err := os.Stat(filepath.Dir(*importedPath))
				assert.True(t, os.IsNotExist(err), "diretório temporário deve ser removido")
			},
		},
		{
			name: "Exportação vazia sem erro falha só esse relatório e a sincronização continua",
			setup: func(f *syncFixture) *string {
				f.syncRuns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(12), nil)
				f.integrator.EXPECT().DownloadAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(emit(
						zsbmsdomain.ReportDownload{Key: zsbmsdomain.ReportDailySales, FileType: domain.FileTypeDaily, Data: []byte("a")},
						zsbmsdomain.ReportDownload{Key: zsbmsdomain.ReportZoneSales, FileType: domain.FileTypeZone, Data: []byte{}},
						zsbmsdomain.ReportDownload{Key: zsbmsdomain.ReportArticleSales, FileType: domain.FileTypeArticle, Data: []byte("c")},
					))
				f.importer.EXPECT().ImportReport(gomock.Any(), zsbmsdomain.ReportDailySales, gomock.Any()).
					Return(&domain.ImportResult{RecordsInserted: 1}, nil)
				f.importer.EXPECT().ImportReport(gomock.Any(), zsbmsdomain.ReportArticleSales, gomock.Any()).
					Return(&domain.ImportResult{RecordsInserted: 4}, nil)
				f.syncRuns.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
				return nil
			},
			validate: func(t *testing.T, run *domain.SyncRun, _ *string) {
				assert.Equal(t, domain.SyncStatusPartial, run.Status)
				assert.Empty(t, run.Error)
				assert.Equal(t, 2, run.ReportsOK)
				assert.Equal(t, 1, run.ReportsFailed)
				assert.Equal(t, 5, run.RecordsInserted)
				require.Len(t, run.Details, 3)
				assert.False(t, run.Details[1].Success)
				assert.Equal(t, "exportação vazia", run.Details[1].Error)
				assert.True(t, run.Details[2].Success)
			},
		},
		{
			name: "Falha de login marca a execução como falhada",
			setup: func(f *syncFixture) *string {
				f.syncRuns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(7), nil)
				f.integrator.EXPECT().DownloadAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("erro ao autenticar no ZSBMS: credenciais inválidas"))
				f.syncRuns.EXPECT().Finish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, run *domain.SyncRun) error {
						assert.Equal(t, domain.SyncStatusFailed, run.Status)
						return nil
					})
				return nil
			},
			validate: func(t *testing.T, run *domain.SyncRun, _ *string) {
				assert.Equal(t, domain.SyncStatusFailed, run.Status)
				assert.Contains(t, run.Error, "credenciais inválidas")
				assert.Empty(t, run.Details)
			},
		},
		{
			name: "Todos os relatórios importados resultam em sucesso",
			setup: func(f *syncFixture) *string {
				f.syncRuns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(8), nil)
				f.integrator.EXPECT().DownloadAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(emit(
						zsbmsdomain.ReportDownload{Key: zsbmsdomain.ReportABCDaily, FileType: domain.FileTypeABC, Data: []byte("a")},
						zsbmsdomain.ReportDownload{Key: zsbmsdomain.ReportHourlySales, FileType: domain.FileTypeHourly, Data: []byte("b")},
					))
				f.importer.EXPECT().ImportReport(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.ImportResult{RecordsUpdated: 1}, nil).Times(2)
				f.syncRuns.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
				return nil
			},
			validate: func(t *testing.T, run *domain.SyncRun, _ *string) {
				assert.Equal(t, domain.SyncStatusSuccess, run.Status)
				assert.Equal(t, 2, run.RecordsUpdated)
			},
		},
		{
			name: "Pânico durante a importação é recuperado e libera o guard",
			setup: func(f *syncFixture) *string {
				f.syncRuns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(9), nil)
				f.integrator.EXPECT().DownloadAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(emit(zsbmsdomain.ReportDownload{Key: zsbmsdomain.ReportDailySales, Data: []byte("x")}))
				f.importer.EXPECT().ImportReport(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, string, string) (*domain.ImportResult, error) {
						panic("nil map")
					})
				f.syncRuns.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
				return nil
			},
			validate: func(t *testing.T, run *domain.SyncRun, _ *string) {
				assert.Equal(t, domain.SyncStatusFailed, run.Status)
				assert.Contains(t, run.Error, "nil map")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t)
			importedPath := tt.setup(f)

			run, err := f.service.RunSync(context.Background(), domain.SyncTriggerCLI)
			require.NoError(t, err)
			tt.validate(t, run, importedPath)
			assert.Equal(t, int64(0), f.service.guard.Current())
		})
	}
}

func TestZSBMSSyncService_TriggerManualSync_SingleFlight(t *testing.T) {
	f := newSyncFixture(t)

	release := make(chan struct{})
	finished := make(chan struct{})

	f.syncRuns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil).Times(1)
	f.integrator.EXPECT().DownloadAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time, time.Time, func(zsbmsdomain.ReportDownload)) ([]zsbmsdomain.ReportDownload, error) {
			<-release
			return nil, nil
		})
	f.syncRuns.EXPECT().Finish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *domain.SyncRun) error {
			close(finished)
			return nil
		})

	id, err := f.service.TriggerManualSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	_, err = f.service.TriggerManualSync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncInProgress)

	var busy *SyncInProgressError
	require.True(t, errors.As(err, &busy))
	assert.Equal(t, int64(11), busy.RunningID)

	status := f.service.GetStatus()
	assert.Equal(t, true, status["running"])
	assert.Equal(t, int64(11), status["running_sync_id"])

	close(release)
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("sincronização não terminou")
	}

	assert.Eventually(t, func() bool { return f.service.guard.Current() == 0 }, time.Second, 10*time.Millisecond)
}

func TestSyncGuard_CreateFailureReleasesGuard(t *testing.T) {
	var guard syncGuard

	_, err := guard.Begin(func() (int64, error) { return 0, errors.New("database is locked") })
	require.Error(t, err)
	assert.Equal(t, int64(0), guard.Current())

	id, err := guard.Begin(func() (int64, error) { return 5, nil })
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	guard.End(4)
	assert.Equal(t, int64(5), guard.Current())
	guard.End(5)
	assert.Equal(t, int64(0), guard.Current())
}

func TestZSBMSSyncService_StartSweepsStaleRuns(t *testing.T) {
	f := newSyncFixture(t)

	f.syncRuns.EXPECT().MarkStaleRunning(gomock.Any(), staleRunReason).Return(int64(2), nil)
	require.NoError(t, f.service.Start(context.Background()))

	f.syncRuns.EXPECT().MarkStaleRunning(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("no such table"))
	assert.Error(t, f.service.Start(context.Background()))
}

func TestYearToDate(t *testing.T) {
	from, to := yearToDate(time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-01-01", from.Format(time.DateOnly))
	assert.Equal(t, "2025-12-31", to.Format(time.DateOnly))
}
