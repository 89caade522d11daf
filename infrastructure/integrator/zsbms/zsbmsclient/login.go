package zsbmsclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	zsbmsdomain "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

var (
	csrfInputPattern = regexp.MustCompile(`(?i)<input[^>]*name=["']` + csrfFormField + `["'][^>]*>`)
	valueAttrPattern = regexp.MustCompile(`(?i)value=["']([^"']+)["']`)
)

// Login obtém o token CSRF na página de login e envia as credenciais. A sessão só é
// considerada válida quando o portal devolve o cookie sessionid.
func (c *ZSBMSClient) Login(ctx context.Context) (*zsbmsdomain.Session, error) {
	loginURL := c.endpoint("/login/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loginURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de login")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir a página de login")
	}
	page, err := utils.ReadResponseBody(resp, 1<<20)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a página de login")
	}

	csrfToken := c.cookie(loginURL, csrfCookieName)
	if csrfToken == "" {
		csrfToken = extractCSRFInput(string(page))
	}
	if csrfToken == "" {
		return nil, errors.Wrap(ErrLoginFailed, "token CSRF não encontrado")
	}

	form := url.Values{}
	form.Set("username", c.config.Username)
	form.Set("password", c.config.Password)
	form.Set(csrfFormField, csrfToken)
	form.Set("next", "/")

	req, err = http.NewRequestWithContext(ctx, http.MethodPost, loginURL.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de credenciais")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", loginURL.String())
	req.Header.Set("X-CSRFToken", csrfToken)

	resp, err = c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao enviar as credenciais")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	sessionID := c.cookie(loginURL, sessionCookieName)
	if sessionID == "" {
		return nil, errors.Wrapf(ErrLoginFailed, "cookie de sessão ausente (status %d)", resp.StatusCode)
	}

	// O Django pode rodar o token após o login.
	if rotated := c.cookie(loginURL, csrfCookieName); rotated != "" {
		csrfToken = rotated
	}

	return &zsbmsdomain.Session{SessionID: sessionID, CSRFToken: csrfToken}, nil
}

func extractCSRFInput(page string) string {
	input := csrfInputPattern.FindString(page)
	if input == "" {
		return ""
	}
	m := valueAttrPattern.FindStringSubmatch(input)
	if m == nil {
		return ""
	}
	return m[1]
}
