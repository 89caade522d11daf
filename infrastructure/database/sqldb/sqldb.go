package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/migrations"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Connection é o handle único do banco, criado no arranque e injetado nos repositórios.
type Connection struct {
	*sqlx.DB
	dialect string
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = cfg.BuildDSN()
	}
	return Open(ctx, cfg.Driver, dsn)
}

// Open abre a conexão para o driver indicado. No SQLite há uma única conexão aberta, em modo
// WAL (definido no DSN), partilhada por todas as operações.
func Open(ctx context.Context, driver, dsn string) (*Connection, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch driver {
	case DriverSQLite, "":
		db, err = sqlx.Open(DriverSQLite, dsn)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir o banco sqlite: %w", err)
		}
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		driver = DriverSQLite
	case DriverPostgres:
		db, err = sqlx.Open(DriverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir o banco postgres: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetConnMaxIdleTime(5 * time.Minute)
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %s", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("erro ao conectar ao banco: %w", err)
	}

	return &Connection{DB: db, dialect: driver}, nil
}

func (c *Connection) Dialect() string {
	return c.dialect
}

// Builder devolve o construtor de queries com o placeholder do dialeto ($1 ou ?).
func (c *Connection) Builder() squirrel.StatementBuilderType {
	if c.dialect == DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Migrate aplica as migrações pendentes do dialeto.
func (c *Connection) Migrate(ctx context.Context) error {
	return migrations.Up(ctx, c.DB.DB, c.dialect)
}
