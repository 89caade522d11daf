package repository

//go:generate mockgen -source=import_log.go -destination=mocks/import_log.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const importLogsTable = "import_logs"

type ImportLogRepository interface {
	Create(ctx context.Context, entry *domain.ImportLog) error
	ListRecent(ctx context.Context, limit int) ([]*domain.ImportLog, error)
}

type importLogRepository struct {
	conn *sqldb.Connection
}

func NewImportLogRepository(conn *sqldb.Connection) ImportLogRepository {
	return &importLogRepository{
		conn: conn,
	}
}

func (r *importLogRepository) Create(ctx context.Context, entry *domain.ImportLog) error {
	errorsJSON, err := json.Marshal(nonNil(entry.Errors))
	if err != nil {
		return fmt.Errorf("erro ao serializar erros da importação: %w", err)
	}

	storesJSON, err := json.Marshal(nonNil(entry.Stores))
	if err != nil {
		return fmt.Errorf("erro ao serializar lojas da importação: %w", err)
	}

	query, args, err := r.conn.Builder().
		Insert(importLogsTable).
		Columns("file_name", "import_type", "source", "date_from", "date_to",
			"records_inserted", "records_updated", "errors", "stores").
		Values(entry.FileName, string(entry.ImportType), entry.Source, entry.DateFrom, entry.DateTo,
			entry.RecordsInserted, entry.RecordsUpdated, string(errorsJSON), string(storesJSON)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return dbError(importLogsTable, err)
	}

	return nil
}

func (r *importLogRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ImportLog, error) {
	query, args, err := r.conn.Builder().
		Select("id", "file_name", "import_type", "source", "date_from", "date_to",
			"records_inserted", "records_updated", "errors", "stores", "created_at").
		From(importLogsTable).
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

	entries := make([]*domain.ImportLog, 0)
	for rows.Next() {
		entry, err := scanImportLog(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear import log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func scanImportLog(rows *sql.Rows) (*domain.ImportLog, error) {
	entry := &domain.ImportLog{}
	var importType, errorsJSON, storesJSON string

	err := rows.Scan(
		&entry.ID,
		&entry.FileName,
		&importType,
		&entry.Source,
		&entry.DateFrom,
		&entry.DateTo,
		&entry.RecordsInserted,
		&entry.RecordsUpdated,
		&errorsJSON,
		&storesJSON,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.ImportType = domain.FileType(importType)
	if err := json.Unmarshal([]byte(errorsJSON), &entry.Errors); err != nil {
		return nil, fmt.Errorf("erro ao deserializar erros: %w", err)
	}
	if err := json.Unmarshal([]byte(storesJSON), &entry.Stores); err != nil {
		return nil, fmt.Errorf("erro ao deserializar lojas: %w", err)
	}

	return entry, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
