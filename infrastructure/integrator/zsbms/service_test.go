package zsbms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	zsbmsdomain "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/domain"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/mocks"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/zsbmsclient"
)

func TestZSBMSService_DownloadAll(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	session := &zsbmsdomain.Session{SessionID: "s", CSRFToken: "t"}

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, downloads []zsbmsdomain.ReportDownload, notified int, err error)
	}{
		{
			name: "relatório 3 com HTML não interrompe os demais",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Login(gomock.Any()).Return(session, nil)
				client.EXPECT().
					ExportReport(gomock.Any(), session, gomock.Any(), from, to).
					DoAndReturn(func(_ context.Context, _ *zsbmsdomain.Session, def zsbmsdomain.ReportDefinition, _, _ time.Time) ([]byte, error) {
						if def.Key == zsbmsdomain.ReportArticleSales {
							return nil, zsbmsclient.ErrHTMLResponse
						}
						return []byte("xls"), nil
					}).
					Times(5)
			},
			validate: func(t *testing.T, downloads []zsbmsdomain.ReportDownload, notified int, err error) {
				require.NoError(t, err)
				require.Len(t, downloads, 5)
				assert.Equal(t, 5, notified)

				ok := 0
				for _, d := range downloads {
					if d.OK() {
						ok++
					}
				}
				assert.Equal(t, 4, ok)
				assert.Equal(t, zsbmsdomain.ReportArticleSales, downloads[2].Key)
				assert.ErrorIs(t, downloads[2].Err, zsbmsclient.ErrHTMLResponse)
			},
		},
		{
			name: "falha no login é fatal",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Login(gomock.Any()).Return(nil, zsbmsclient.ErrLoginFailed)
			},
			validate: func(t *testing.T, downloads []zsbmsdomain.ReportDownload, notified int, err error) {
				assert.ErrorIs(t, err, zsbmsclient.ErrLoginFailed)
				assert.Empty(t, downloads)
				assert.Zero(t, notified)
			},
		},
		{
			name: "erro de rede num relatório fica no resultado",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Login(gomock.Any()).Return(session, nil)
				client.EXPECT().ExportReport(gomock.Any(), session, gomock.Any(), from, to).Return(nil, errors.New("timeout")).Times(5)
			},
			validate: func(t *testing.T, downloads []zsbmsdomain.ReportDownload, _ int, err error) {
				require.NoError(t, err)
				for _, d := range downloads {
					assert.False(t, d.OK())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			service := &ZSBMSService{Client: client, Reports: zsbmsdomain.ReportDefinitions()}

			notified := 0
			downloads, err := service.DownloadAll(context.Background(), from, to, func(zsbmsdomain.ReportDownload) { notified++ })
			tt.validate(t, downloads, notified, err)
		})
	}
}

func TestZSBMSService_DownloadAllRespectsCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	client.EXPECT().Login(gomock.Any()).Return(&zsbmsdomain.Session{}, nil)
	client.EXPECT().ExportReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *zsbmsdomain.Session, zsbmsdomain.ReportDefinition, time.Time, time.Time) ([]byte, error) {
			cancel()
			return []byte("xls"), nil
		})

	service := &ZSBMSService{Client: client, RequestDelay: time.Hour, Reports: zsbmsdomain.ReportDefinitions()}
	downloads, err := service.DownloadAll(ctx, time.Now(), time.Now(), nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, downloads, 1)
}
