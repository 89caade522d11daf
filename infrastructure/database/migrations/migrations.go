package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// goose guarda dialeto e FS em estado global.
var gooseMu sync.Mutex

// Up aplica as migrações embutidas do dialeto ("sqlite" ou "postgres").
func Up(ctx context.Context, db *sql.DB, dialect string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	gooseDialect := "sqlite3"
	if dialect == "postgres" {
		gooseDialect = "postgres"
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(logrus.StandardLogger())
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("erro ao configurar dialeto das migrações: %w", err)
	}

	if err := goose.UpContext(ctx, db, dialect); err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	return nil
}
