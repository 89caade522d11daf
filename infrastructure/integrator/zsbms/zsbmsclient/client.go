package zsbmsclient

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	zsbmsdomain "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
)

const (
	csrfCookieName    = "csrftoken"
	sessionCookieName = "sessionid"
	csrfFormField     = "csrfmiddlewaretoken"
	defaultTimeout    = 120 * time.Second
	maxExportSize     = 64 << 20
)

type Client interface {
	Login(ctx context.Context) (*zsbmsdomain.Session, error)
	ExportReport(ctx context.Context, session *zsbmsdomain.Session, def zsbmsdomain.ReportDefinition, from, to time.Time) ([]byte, error)
}

type ZSBMSClient struct {
	httpClient *http.Client
	baseURL    *url.URL
	config     config.ZSBMS
}

// NewClient cria o cliente com cookie jar próprio. Redirecionamentos não são seguidos: o
// login responde 302 e uma exportação redirecionada para o login é tratada como falha.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(cfg.ZSBMS.URL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL do ZSBMS")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cookie jar")
	}

	timeout := defaultTimeout
	if cfg.ZSBMS.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.ZSBMS.TimeoutSeconds) * time.Second
	}

	return &ZSBMSClient{
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: baseURL,
		config:  cfg.ZSBMS,
	}, nil
}

func (c *ZSBMSClient) endpoint(path string) *url.URL {
	return c.baseURL.ResolveReference(&url.URL{Path: c.baseURL.Path + path})
}

func (c *ZSBMSClient) cookie(u *url.URL, name string) string {
	for _, ck := range c.httpClient.Jar.Cookies(u) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}
