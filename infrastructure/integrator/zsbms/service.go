package zsbms

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	zsbmsdomain "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/domain"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/zsbmsclient"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
)

type ZSBMSIntegrator interface {
	DownloadAll(ctx context.Context, from, to time.Time, onResult func(zsbmsdomain.ReportDownload)) ([]zsbmsdomain.ReportDownload, error)
}

type ZSBMSService struct {
	Client       zsbmsclient.Client
	RequestDelay time.Duration
	Reports      []zsbmsdomain.ReportDefinition
}

func New(cfg *config.Config, client zsbmsclient.Client) ZSBMSIntegrator {
	delay := time.Duration(cfg.ZSBMSSync.RequestDelaySeconds) * time.Second
	if delay < 0 {
		delay = time.Second
	}

	return &ZSBMSService{
		Client:       client,
		RequestDelay: delay,
		Reports:      zsbmsdomain.ReportDefinitions(),
	}
}

// DownloadAll faz login uma vez e exporta os relatórios em sequência, com pausa entre eles.
// Falha no login é fatal. Falha num relatório fica registrada no resultado e o laço continua.
func (s *ZSBMSService) DownloadAll(
	ctx context.Context,
	from, to time.Time,
	onResult func(zsbmsdomain.ReportDownload),
) ([]zsbmsdomain.ReportDownload, error) {
	session, err := s.Client.Login(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao autenticar no ZSBMS: %w", err)
	}

	downloads := make([]zsbmsdomain.ReportDownload, 0, len(s.Reports))
	for i, def := range s.Reports {
		if i > 0 && s.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return downloads, ctx.Err()
			case <-time.After(s.RequestDelay):
			}
		}

		logger := logrus.WithFields(logrus.Fields{"report": def.Key, "report_id": def.ReportID})
		logger.Info("Exportando relatório do ZSBMS")

		data, err := s.Client.ExportReport(ctx, session, def, from, to)
		download := zsbmsdomain.ReportDownload{
			Key:      def.Key,
			FileType: def.FileType,
			Data:     data,
			Err:      err,
		}
		if err != nil {
			logger.WithError(err).Warn("Falha ao exportar relatório, seguindo para o próximo")
		} else {
			logger.Infof("Relatório exportado (%d bytes)", len(data))
		}

		downloads = append(downloads, download)
		if onResult != nil {
			onResult(download)
		}
	}

	return downloads, nil
}
