package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/zsbmsclient"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/api"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/parser"
	"github.com/vfg2006/restaurant-analytics-api/internal/scheduler"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/importing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	userRepo := repository.NewUserRepository(conn)
	syncRunRepo := repository.NewSyncRunRepository(conn)
	analyticsRepo := repository.NewAnalyticsRepository(conn)

	authenticator := authenticating.NewService(userRepo, cfg)

	importer := importing.NewService(
		parser.New(spreadsheet.NewStoreResolver(cfg.Stores.Overrides)),
		importing.Repositories{
			Daily:     repository.NewDailySaleRepository(conn),
			Zone:      repository.NewZoneSaleRepository(conn),
			Article:   repository.NewArticleSaleRepository(conn),
			ABC:       repository.NewABCDailyRepository(conn),
			Hourly:    repository.NewHourlySaleRepository(conn),
			ImportLog: repository.NewImportLogRepository(conn),
		},
	)

	zsbmsClient, err := zsbmsclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente do ZSBMS")
	}
	zsbmsIntegrator := zsbms.New(cfg, zsbmsClient)

	syncService := scheduler.NewZSBMSSyncService(syncRunRepo, zsbmsIntegrator, importer, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do ZSBMS")
	} else {
		logrus.Info("Agendador de sincronização do ZSBMS iniciado com sucesso")
	}

	analyzer := analytics.NewService(analyticsRepo, syncRunRepo, spreadsheet.NewArticleAliases(cfg.Articles.Aliases))

	server, err := api.New(cfg, authenticator, importer, analyzer, syncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn abre o banco e aplica as migrações pendentes
func dbconn(ctx context.Context, dbConfig config.Database) *sqldb.Connection {
	conn, err := sqldb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	logrus.WithField("driver", conn.Dialect()).Info("Conexão com o banco estabelecida com sucesso")
	return conn
}
