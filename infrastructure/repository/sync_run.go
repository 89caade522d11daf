package repository

//go:generate mockgen -source=sync_run.go -destination=mocks/sync_run.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const syncRunsTable = "sync_runs"

var syncRunColumns = []string{
	"id", "trigger_type", "status", "date_from", "date_to", "reports_ok", "reports_failed",
	"records_inserted", "records_updated", "details", "error", "started_at", "finished_at",
}

type SyncRunRepository interface {
	Create(ctx context.Context, run *domain.SyncRun) (int64, error)
	Finish(ctx context.Context, run *domain.SyncRun) error
	MarkStaleRunning(ctx context.Context, reason string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.SyncRun, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.SyncRun, error)
}

type syncRunRepository struct {
	conn *sqldb.Connection
}

func NewSyncRunRepository(conn *sqldb.Connection) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
	}
}

// Create insere a execução com status running e devolve o id gerado.
func (r *syncRunRepository) Create(ctx context.Context, run *domain.SyncRun) (int64, error) {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if run.Status == "" {
		run.Status = domain.SyncStatusRunning
	}

	query, args, err := r.conn.Builder().
		Insert(syncRunsTable).
		Columns("trigger_type", "status", "date_from", "date_to", "started_at").
		Values(run.Trigger, run.Status, run.DateFrom, run.DateTo, run.StartedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&run.ID); err != nil {
		return 0, dbError(syncRunsTable, err)
	}

	return run.ID, nil
}

// Finish grava o estado final, as contagens e o detalhe por relatório.
func (r *syncRunRepository) Finish(ctx context.Context, run *domain.SyncRun) error {
	details := run.Details
	if details == nil {
		details = []domain.SyncReportDetail{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("erro ao serializar detalhes da sincronização: %w", err)
	}

	finishedAt := time.Now().UTC()
	if run.FinishedAt != nil {
		finishedAt = *run.FinishedAt
	}
	run.FinishedAt = &finishedAt

	query, args, err := r.conn.Builder().
		Update(syncRunsTable).
		Set("status", run.Status).
		Set("date_from", run.DateFrom).
		Set("date_to", run.DateTo).
		Set("reports_ok", run.ReportsOK).
		Set("reports_failed", run.ReportsFailed).
		Set("records_inserted", run.RecordsInserted).
		Set("records_updated", run.RecordsUpdated).
		Set("details", string(detailsJSON)).
		Set("error", run.Error).
		Set("finished_at", finishedAt).
		Where(squirrel.Eq{"id": run.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return dbError(syncRunsTable, err)
	}

	return nil
}

// MarkStaleRunning fecha como failed as execuções que ficaram em running (ex.: processo reiniciado).
func (r *syncRunRepository) MarkStaleRunning(ctx context.Context, reason string) (int64, error) {
	query, args, err := r.conn.Builder().
		Update(syncRunsTable).
		Set("status", domain.SyncStatusFailed).
		Set("error", reason).
		Set("finished_at", time.Now().UTC()).
		Where(squirrel.Eq{"status": domain.SyncStatusRunning}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dbError(syncRunsTable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *syncRunRepository) GetByID(ctx context.Context, id int64) (*domain.SyncRun, error) {
	query, args, err := r.conn.Builder().
		Select(syncRunColumns...).
		From(syncRunsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	run, err := scanSyncRun(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear sync run: %w", err)
	}

	return run, nil
}

func (r *syncRunRepository) ListRecent(ctx context.Context, limit int) ([]*domain.SyncRun, error) {
	query, args, err := r.conn.Builder().
		Select(syncRunColumns...).
		From(syncRunsTable).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.SyncRun, 0)
	for rows.Next() {
		run, err := scanSyncRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sync run: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSyncRun(row rowScanner) (*domain.SyncRun, error) {
	run := &domain.SyncRun{}
	var detailsJSON string
	var finishedAt sql.NullTime

	err := row.Scan(
		&run.ID,
		&run.Trigger,
		&run.Status,
		&run.DateFrom,
		&run.DateTo,
		&run.ReportsOK,
		&run.ReportsFailed,
		&run.RecordsInserted,
		&run.RecordsUpdated,
		&detailsJSON,
		&run.Error,
		&run.StartedAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	if finishedAt.Valid {
		t := finishedAt.Time
		run.FinishedAt = &t
	}

	if detailsJSON != "" {
		if err := json.Unmarshal([]byte(detailsJSON), &run.Details); err != nil {
			return nil, fmt.Errorf("erro ao deserializar detalhes: %w", err)
		}
	}

	return run, nil
}
