package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms"
	zsbmsdomain "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/domain"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/importing"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

const staleRunReason = "execução interrompida antes de terminar (reinício do serviço)"

// ErrSyncInProgress indica que já existe uma sincronização a correr.
var ErrSyncInProgress = errors.New("sincronização já em andamento")

var errEmptyExport = errors.New("exportação vazia")

// SyncInProgressError traz o id da execução que está a correr.
type SyncInProgressError struct {
	RunningID int64
}

func (e *SyncInProgressError) Error() string {
	return fmt.Sprintf("sincronização %d já em andamento", e.RunningID)
}

func (e *SyncInProgressError) Unwrap() error {
	return ErrSyncInProgress
}

// syncGuard garante uma única sincronização por processo. O registro da execução é criado
// com o lock adquirido, então dois pedidos simultâneos nunca criam duas linhas "running".
type syncGuard struct {
	mu        sync.Mutex
	runningID int64
}

func (g *syncGuard) Begin(create func() (int64, error)) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.runningID != 0 {
		return 0, &SyncInProgressError{RunningID: g.runningID}
	}

	id, err := create()
	if err != nil {
		return 0, err
	}

	g.runningID = id
	return id, nil
}

func (g *syncGuard) End(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.runningID == id {
		g.runningID = 0
	}
}

func (g *syncGuard) Current() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.runningID
}

// ZSBMSSyncService descarrega os relatórios do ZSBMS e importa-os, por cron ou a pedido.
type ZSBMSSyncService struct {
	scheduler  *gocron.Scheduler
	config     config.ZSBMSSync
	syncRuns   repository.SyncRunRepository
	integrator zsbms.ZSBMSIntegrator
	importer   importing.Importer
	guard      syncGuard
	now        func() time.Time

	statusMutex         sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncStatus      string
}

func NewZSBMSSyncService(
	syncRuns repository.SyncRunRepository,
	integrator zsbms.ZSBMSIntegrator,
	importer importing.Importer,
	appConfig *config.Config,
) *ZSBMSSyncService {
	syncConfig := appConfig.ZSBMSSync

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.Enabled,
	}).Info("Configuração do agendador do ZSBMS carregada")

	return &ZSBMSSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		syncRuns:   syncRuns,
		integrator: integrator,
		importer:   importer,
		now:        time.Now,
	}
}

// Start marca como falhadas as execuções que ficaram "running" e inicia o agendador.
func (s *ZSBMSSyncService) Start(ctx context.Context) error {
	swept, err := s.syncRuns.MarkStaleRunning(ctx, staleRunReason)
	if err != nil {
		return fmt.Errorf("erro ao encerrar sincronizações pendentes: %w", err)
	}
	if swept > 0 {
		logrus.WithField("runs", swept).Warn("Sincronizações interrompidas marcadas como falhadas")
	}

	if !s.config.Enabled {
		logrus.Info("Sincronização do ZSBMS desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do ZSBMS")

	_, err = s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunSync(context.Background(), domain.SyncTriggerCron); err != nil {
			logrus.WithError(err).Warn("Sincronização agendada do ZSBMS não executada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do ZSBMS: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do ZSBMS")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync cria a execução e corre-a em segundo plano. Devolve o id da execução ou
// *SyncInProgressError.
func (s *ZSBMSSyncService) TriggerManualSync(ctx context.Context) (int64, error) {
	run, from, to, err := s.begin(ctx, domain.SyncTriggerManual)
	if err != nil {
		return 0, err
	}

	log.ForContext(ctx).WithField("sync_id", run.ID).Info("Iniciando sincronização manual do ZSBMS")
	go s.execute(context.WithoutCancel(ctx), run, from, to)

	return run.ID, nil
}

// RunSync corre a sincronização até ao fim e devolve a execução gravada.
func (s *ZSBMSSyncService) RunSync(ctx context.Context, trigger string) (*domain.SyncRun, error) {
	run, from, to, err := s.begin(ctx, trigger)
	if err != nil {
		return nil, err
	}

	s.execute(ctx, run, from, to)
	return run, nil
}

// GetStatus retorna o estado atual do agendador.
func (s *ZSBMSSyncService) GetStatus() map[string]any {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	runningID := s.guard.Current()
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"running":                runningID != 0,
		"running_sync_id":        runningID,
		"last_sync_status":       s.lastSyncStatus,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// begin cria a execução dentro do guard. A janela é sempre do início do ano até hoje.
func (s *ZSBMSSyncService) begin(ctx context.Context, trigger string) (*domain.SyncRun, time.Time, time.Time, error) {
	from, to := yearToDate(s.now())
	run := &domain.SyncRun{
		Trigger:  trigger,
		Status:   domain.SyncStatusRunning,
		DateFrom: from.Format(time.DateOnly),
		DateTo:   to.Format(time.DateOnly),
		Details:  []domain.SyncReportDetail{},
	}

	id, err := s.guard.Begin(func() (int64, error) {
		return s.syncRuns.Create(ctx, run)
	})
	if err != nil {
		return nil, from, to, err
	}
	run.ID = id

	s.statusMutex.Lock()
	s.lastSyncStartedAt = run.StartedAt
	s.statusMutex.Unlock()

	return run, from, to, nil
}

func (s *ZSBMSSyncService) execute(ctx context.Context, run *domain.SyncRun, from, to time.Time) {
	defer s.guard.End(run.ID)

	logger := log.ForContext(ctx).WithField("sync_id", run.ID)

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Pânico durante a sincronização: %v", r)
			run.Status = domain.SyncStatusFailed
			run.Error = fmt.Sprintf("pânico: %v", r)
			s.finish(ctx, logger, run)
		}
	}()

	logger.WithFields(log.Fields{"date_from": run.DateFrom, "date_to": run.DateTo}).
		Info("Sincronização do ZSBMS iniciada")

	dir, err := os.MkdirTemp(s.config.DownloadDir, "zsbms-sync-*")
	if err != nil {
		run.Error = fmt.Sprintf("erro ao criar diretório temporário: %v", err)
		s.finish(ctx, logger, run)
		return
	}
	defer os.RemoveAll(dir)

	_, err = s.integrator.DownloadAll(ctx, from, to, func(download zsbmsdomain.ReportDownload) {
		detail := s.importDownload(ctx, dir, download)
		run.Details = append(run.Details, detail)

		reportLogger := logger.WithField("report", detail.ReportKey)
		if !detail.Success {
			reportLogger.WithField("error", detail.Error).Warn("Relatório não importado")
			return
		}
		reportLogger.Infof("Relatório importado: %d inseridos, %d atualizados", detail.Inserted, detail.Updated)
	})
	if err != nil {
		run.Error = err.Error()
	}

	s.finish(ctx, logger, run)
}

// importDownload grava o ficheiro descarregado no diretório da execução e importa-o.
func (s *ZSBMSSyncService) importDownload(ctx context.Context, dir string, download zsbmsdomain.ReportDownload) domain.SyncReportDetail {
	detail := domain.SyncReportDetail{ReportKey: download.Key}
	if !download.OK() {
		detail.Error = errEmptyExport.Error()
		if download.Err != nil {
			detail.Error = download.Err.Error()
		}
		return detail
	}

	name, err := utils.UniqueFileName(download.Key, ".xls")
	if err != nil {
		detail.Error = fmt.Sprintf("erro ao gerar nome do ficheiro: %v", err)
		return detail
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, download.Data, 0o600); err != nil {
		detail.Error = fmt.Sprintf("erro ao gravar ficheiro: %v", err)
		return detail
	}
	detail.FileName = filepath.Base(path)

	result, err := s.importer.ImportReport(ctx, download.Key, path)
	if err != nil {
		detail.Error = err.Error()
		return detail
	}

	detail.Success = true
	detail.Inserted = result.RecordsInserted
	detail.Updated = result.RecordsUpdated
	detail.Errors = result.Errors
	return detail
}

// finish contabiliza os relatórios, classifica a execução e grava o resultado.
func (s *ZSBMSSyncService) finish(ctx context.Context, logger log.Logger, run *domain.SyncRun) {
	run.ReportsOK, run.ReportsFailed = 0, 0
	run.RecordsInserted, run.RecordsUpdated = 0, 0
	for _, detail := range run.Details {
		if detail.Success {
			run.ReportsOK++
		} else {
			run.ReportsFailed++
		}
		run.RecordsInserted += detail.Inserted
		run.RecordsUpdated += detail.Updated
	}
	if run.Status == domain.SyncStatusRunning || run.Status == "" {
		run.Status = domain.ClassifySyncStatus(run.ReportsOK, run.ReportsFailed)
	}

	if err := s.syncRuns.Finish(context.WithoutCancel(ctx), run); err != nil {
		logger.WithError(err).Error("Erro ao gravar o resultado da sincronização")
	}

	s.statusMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncStatus = run.Status
	s.statusMutex.Unlock()

	logger.WithFields(log.Fields{
		"status":         run.Status,
		"reports_ok":     run.ReportsOK,
		"reports_failed": run.ReportsFailed,
	}).Info("Sincronização do ZSBMS concluída")
}

func yearToDate(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, to
}
