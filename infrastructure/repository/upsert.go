package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

// json serializa as colunas de texto com listas (erros, lojas, detalhes por relatório).
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// upsertRow grava a linha identificada pela chave natural: atualiza quando já existe, senão insere.
// São dois comandos independentes, sem transação.
func upsertRow(ctx context.Context, conn *sqldb.Connection, table string, key squirrel.Eq, values map[string]interface{}) (domain.UpsertOutcome, error) {
	query, args, err := conn.Builder().
		Select("id").
		From(table).
		Where(key).
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	err = conn.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("erro ao consultar %s: %w", table, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		insert := make(map[string]interface{}, len(key)+len(values))
		for k, v := range key {
			insert[k] = v
		}
		for k, v := range values {
			insert[k] = v
		}

		query, args, err = conn.Builder().Insert(table).SetMap(insert).ToSql()
		if err != nil {
			return "", fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := conn.ExecContext(ctx, query, args...); err != nil {
			return "", dbError(table, err)
		}

		return domain.UpsertInserted, nil
	}

	query, args, err = conn.Builder().
		Update(table).
		SetMap(values).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return "", dbError(table, err)
	}

	return domain.UpsertUpdated, nil
}

func dbError(table string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados ao gravar %s: %w (código: %s)", table, pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao gravar %s: %w", table, err)
}
