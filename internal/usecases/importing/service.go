package importing

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"path/filepath"

	zsbmsdomain "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/domain"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/parser"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
)

type Importer interface {
	ImportFile(ctx context.Context, path, source string) (*domain.ImportResult, error)
	ImportFileAs(ctx context.Context, path string, fileType domain.FileType, source string) (*domain.ImportResult, error)
	ImportReport(ctx context.Context, reportKey, path string) (*domain.ImportResult, error)
	ListImportLogs(ctx context.Context, limit int) ([]*domain.ImportLog, error)
}

// Repositories agrupa os repositórios usados na importação.
type Repositories struct {
	Daily     repository.DailySaleRepository
	Zone      repository.ZoneSaleRepository
	Article   repository.ArticleSaleRepository
	ABC       repository.ABCDailyRepository
	Hourly    repository.HourlySaleRepository
	ImportLog repository.ImportLogRepository
}

// importFunc lê o ficheiro, grava as linhas e acumula contagens e erros em result. Só devolve
// erro quando o ficheiro inteiro não pôde ser processado.
type importFunc func(ctx context.Context, path string, result *domain.ImportResult) error

type Service struct {
	parser    *parser.Parser
	repos     Repositories
	importers map[domain.FileType]importFunc
}

func NewService(p *parser.Parser, repos Repositories) Importer {
	s := &Service{
		parser: p,
		repos:  repos,
	}

	s.importers = map[domain.FileType]importFunc{
		domain.FileTypeDaily:   s.importDaily,
		domain.FileTypeZone:    s.importZone,
		domain.FileTypeArticle: s.importArticle,
		domain.FileTypeABC:     s.importABC,
		domain.FileTypeHourly:  s.importHourly,
	}

	return s
}

// ImportFile detecta o formato e importa o ficheiro.
func (s *Service) ImportFile(ctx context.Context, path, source string) (*domain.ImportResult, error) {
	return s.ImportFileAs(ctx, path, parser.Detect(path), source)
}

// ImportReport importa um ficheiro descarregado do portal, usando o formato da definição do relatório.
func (s *Service) ImportReport(ctx context.Context, reportKey, path string) (*domain.ImportResult, error) {
	def, ok := zsbmsdomain.FindReport(reportKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, reportKey)
	}
	return s.ImportFileAs(ctx, path, def.FileType, domain.ImportSourceSync)
}

// ImportFileAs importa o ficheiro com o formato indicado. O import_log é sempre gravado,
// inclusive quando o ficheiro não pôde ser lido.
func (s *Service) ImportFileAs(ctx context.Context, path string, fileType domain.FileType, source string) (*domain.ImportResult, error) {
	result := &domain.ImportResult{
		FileName: filepath.Base(path),
		FileType: fileType,
		Errors:   []string{},
		Stores:   []string{},
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{"file": result.FileName, "file_type": string(fileType)})

	var err error
	importer, ok := s.importers[fileType]
	if !ok {
		err = fmt.Errorf("%w: %s", ErrUnsupportedFileType, fileType)
	} else {
		err = importer(ctx, path, result)
	}

	if err != nil {
		result.Errors = append(result.Errors, err.Error())
	}

	entry := &domain.ImportLog{
		FileName:        result.FileName,
		ImportType:      fileType,
		Source:          source,
		DateFrom:        result.DateFrom,
		DateTo:          result.DateTo,
		RecordsInserted: result.RecordsInserted,
		RecordsUpdated:  result.RecordsUpdated,
		Errors:          result.Errors,
		Stores:          result.Stores,
	}
	if logErr := s.repos.ImportLog.Create(ctx, entry); logErr != nil {
		logger.WithError(logErr).Error("Erro ao gravar import_log")
	}

	if err != nil {
		logger.WithError(err).Error("Falha ao importar ficheiro")
		return result, err
	}

	logger.Infof("Importação concluída: %d inseridos, %d atualizados, %d erros",
		result.RecordsInserted, result.RecordsUpdated, len(result.Errors))

	return result, nil
}

func (s *Service) ListImportLogs(ctx context.Context, limit int) ([]*domain.ImportLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repos.ImportLog.ListRecent(ctx, limit)
}

func (s *Service) importDaily(ctx context.Context, path string, result *domain.ImportResult) error {
	parsed, err := s.parser.DailyFile(path)
	if err != nil {
		return fmt.Errorf("erro ao ler o ficheiro: %w", err)
	}
	collect(result, parsed)

	upsertAll(ctx, result, parsed.Rows, s.repos.Daily.Upsert, func(r *domain.DailySale) string {
		return r.StoreID + " " + r.Date
	})
	return nil
}

func (s *Service) importZone(ctx context.Context, path string, result *domain.ImportResult) error {
	parsed, err := s.parser.ZoneFile(path)
	if err != nil {
		return fmt.Errorf("erro ao ler o ficheiro: %w", err)
	}
	collect(result, parsed)

	upsertAll(ctx, result, aggregateZones(parsed.Rows), s.repos.Zone.Upsert, func(r *domain.ZoneSale) string {
		return r.StoreID + " " + r.Date + " " + r.Zone
	})
	return nil
}

func (s *Service) importArticle(ctx context.Context, path string, result *domain.ImportResult) error {
	parsed, err := s.parser.ArticleFile(path)
	if err != nil {
		return fmt.Errorf("erro ao ler o ficheiro: %w", err)
	}
	collect(result, parsed)

	upsertAll(ctx, result, aggregateArticles(parsed.Rows), s.repos.Article.Upsert, func(r *domain.ArticleSale) string {
		return r.StoreID + " " + r.ArticleCode
	})
	return nil
}

func (s *Service) importABC(ctx context.Context, path string, result *domain.ImportResult) error {
	parsed, err := s.parser.ABCFile(path)
	if err != nil {
		return fmt.Errorf("erro ao ler o ficheiro: %w", err)
	}
	collect(result, parsed)

	rows, duplicates := dedupeABC(parsed.Rows)
	result.Errors = append(result.Errors, duplicates...)

	upsertAll(ctx, result, rows, s.repos.ABC.Upsert, func(r *domain.ABCDaily) string {
		return r.StoreID + " " + r.Date + " " + r.ArticleCode
	})
	return nil
}

func (s *Service) importHourly(ctx context.Context, path string, result *domain.ImportResult) error {
	parsed, err := s.parser.HourlyFile(path)
	if err != nil {
		return fmt.Errorf("erro ao ler o ficheiro: %w", err)
	}
	collect(result, parsed)

	upsertAll(ctx, result, aggregateHourly(parsed.Rows), s.repos.Hourly.Upsert, func(r *domain.HourlySale) string {
		return r.StoreID + " " + r.Date + " " + r.TimeSlot
	})
	return nil
}

func collect[T any](result *domain.ImportResult, parsed *parser.Result[T]) {
	result.DateFrom = parsed.PeriodFrom
	result.DateTo = parsed.PeriodTo
	result.Stores = append(result.Stores, parsed.Stores...)
	result.Errors = append(result.Errors, parsed.Errors...)
}

// upsertAll grava as linhas uma a uma. Uma falha é registrada e não interrompe as restantes.
func upsertAll[T any](
	ctx context.Context,
	result *domain.ImportResult,
	rows []T,
	upsert func(context.Context, *T) (domain.UpsertOutcome, error),
	label func(*T) string,
) {
	for i := range rows {
		outcome, err := upsert(ctx, &rows[i])
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", label(&rows[i]), err))
			continue
		}
		result.Tally(outcome)
	}
}
