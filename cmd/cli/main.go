package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/zsbmsclient"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/parser"
	"github.com/vfg2006/restaurant-analytics-api/internal/scheduler"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/importing"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

// env guarda a configuração e a conexão abertas no Before de cada comando.
type env struct {
	cfg  *config.Config
	conn *sqldb.Connection
}

func (e *env) open(c *cli.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	conn, err := sqldb.NewConnection(c.Context, cfg.Database)
	if err != nil {
		return err
	}

	if err := conn.Migrate(c.Context); err != nil {
		conn.Close()
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	e.cfg = cfg
	e.conn = conn
	return nil
}

func (e *env) close(*cli.Context) error {
	if e.conn != nil {
		return e.conn.Close()
	}
	return nil
}

func (e *env) importer() importing.Importer {
	return importing.NewService(
		parser.New(spreadsheet.NewStoreResolver(e.cfg.Stores.Overrides)),
		importing.Repositories{
			Daily:     repository.NewDailySaleRepository(e.conn),
			Zone:      repository.NewZoneSaleRepository(e.conn),
			Article:   repository.NewArticleSaleRepository(e.conn),
			ABC:       repository.NewABCDailyRepository(e.conn),
			Hourly:    repository.NewHourlySaleRepository(e.conn),
			ImportLog: repository.NewImportLogRepository(e.conn),
		},
	)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	e := &env{}

	app := &cli.App{
		Name:  "analytics-cli",
		Usage: "Operações de manutenção da base de análise",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Aplica as migrações pendentes",
				Before: e.open,
				After:  e.close,
				Action: func(c *cli.Context) error {
					logrus.WithField("driver", e.conn.Dialect()).Info("Migrações aplicadas")
					return nil
				},
			},
			{
				Name:      "import",
				Usage:     "Importa ficheiros exportados do ZSBMS",
				ArgsUsage: "<ficheiros...>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "type",
						Usage: "Força o formato (daily, zone, article, abc, hourly)",
					},
				},
				Before: e.open,
				After:  e.close,
				Action: func(c *cli.Context) error { return runImport(c, e) },
			},
			{
				Name:   "sync",
				Usage:  "Descarrega e importa os relatórios do ZSBMS do início do ano até hoje",
				Before: e.open,
				After:  e.close,
				Action: func(c *cli.Context) error { return runSync(c, e) },
			},
			{
				Name:      "detect",
				Usage:     "Mostra o formato detetado de um ficheiro",
				ArgsUsage: "<ficheiro>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("indique um ficheiro", 2)
					}
					fmt.Println(parser.Detect(c.Args().First()))
					return nil
				},
			},
			{
				Name:  "user",
				Usage: "Gestão de usuários da API",
				Subcommands: []*cli.Command{
					{
						Name:  "create",
						Usage: "Cria um usuário",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Required: true},
							&cli.StringFlag{Name: "email", Required: true},
							&cli.StringFlag{Name: "password", Required: true},
							&cli.StringFlag{Name: "role", Value: "viewer", Usage: "admin ou viewer"},
						},
						Before: e.open,
						After:  e.close,
						Action: func(c *cli.Context) error { return createUser(c, e) },
					},
					{
						Name:   "list",
						Usage:  "Lista os usuários",
						Before: e.open,
						After:  e.close,
						Action: func(c *cli.Context) error {
							users, err := authenticating.NewService(repository.NewUserRepository(e.conn), e.cfg).ListUsers(c.Context)
							if err != nil {
								return err
							}
							fmt.Println(utils.PrettyJSON(users))
							return nil
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func runImport(c *cli.Context, e *env) error {
	if c.NArg() == 0 {
		return cli.Exit("indique pelo menos um ficheiro", 2)
	}

	fileType := domain.FileTypeUnknown
	if raw := c.String("type"); raw != "" {
		ft, ok := domain.ParseFileType(raw)
		if !ok {
			return cli.Exit(fmt.Sprintf("formato desconhecido: %s", raw), 2)
		}
		fileType = ft
	}

	importer := e.importer()
	failed := 0

	for _, path := range c.Args().Slice() {
		var (
			result *domain.ImportResult
			err    error
		)
		if fileType == domain.FileTypeUnknown {
			result, err = importer.ImportFile(c.Context, path, domain.ImportSourceCLI)
		} else {
			result, err = importer.ImportFileAs(c.Context, path, fileType, domain.ImportSourceCLI)
		}
		if err != nil {
			failed++
			logrus.WithError(err).WithField("file", path).Error("Importação falhou")
		}
		if result != nil {
			fmt.Println(utils.PrettyJSON(result))
		}
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d ficheiro(s) falharam", failed), 1)
	}
	return nil
}

func runSync(c *cli.Context, e *env) error {
	client, err := zsbmsclient.NewClient(e.cfg)
	if err != nil {
		return err
	}

	service := scheduler.NewZSBMSSyncService(
		repository.NewSyncRunRepository(e.conn),
		zsbms.New(e.cfg, client),
		e.importer(),
		e.cfg,
	)

	run, err := service.RunSync(c.Context, domain.SyncTriggerCLI)
	if err != nil {
		return err
	}

	fmt.Println(utils.PrettyJSON(run))
	if run.Status == domain.SyncStatusFailed {
		return cli.Exit("sincronização falhou", 1)
	}
	return nil
}

func createUser(c *cli.Context, e *env) error {
	role := domain.RoleViewer
	switch c.String("role") {
	case "admin":
		role = domain.RoleAdmin
	case "viewer":
	default:
		return cli.Exit(fmt.Sprintf("perfil desconhecido: %s", c.String("role")), 2)
	}

	service := authenticating.NewService(repository.NewUserRepository(e.conn), e.cfg)
	user, err := service.CreateUser(c.Context, &domain.User{
		Name:         c.String("name"),
		Email:        c.String("email"),
		PasswordHash: c.String("password"),
		RoleID:       role,
	})
	if err != nil {
		return err
	}

	fmt.Println(utils.PrettyJSON(user))
	return nil
}
