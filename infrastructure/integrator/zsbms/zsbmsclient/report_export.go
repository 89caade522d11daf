package zsbmsclient

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	zsbmsdomain "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

const portalDateLayout = "02-01-2006"

// ExportReport pede a exportação xls de um relatório para o intervalo [from, to].
func (c *ZSBMSClient) ExportReport(
	ctx context.Context,
	session *zsbmsdomain.Session,
	def zsbmsdomain.ReportDefinition,
	from, to time.Time,
) ([]byte, error) {
	if session == nil {
		return nil, errors.Wrap(ErrLoginFailed, "sessão ausente")
	}

	exportURL := c.endpoint(fmt.Sprintf("/reports/%d/print/", def.ReportID))

	form := url.Values{}
	for key, values := range def.Params {
		for _, v := range values {
			form.Add(key, v)
		}
	}
	form.Set("export_type", "xls")
	form.Set(csrfFormField, session.CSRFToken)
	form.Set("date_range", fmt.Sprintf("%s a %s", from.Format(portalDateLayout), to.Format(portalDateLayout)))
	for _, store := range c.config.StoreIDs {
		form.Add("stores", store)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, exportURL.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de exportação")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", exportURL.String())
	req.Header.Set("X-CSRFToken", session.CSRFToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao exportar o relatório %s", def.Key)
	}

	body, err := utils.ReadResponseBody(resp, maxExportSize)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a exportação do relatório %s", def.Key)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "relatório %s: status %d", def.Key, resp.StatusCode)
	}

	if isHTML(resp.Header.Get("Content-Type"), body) {
		return nil, errors.Wrapf(ErrHTMLResponse, "relatório %s", def.Key)
	}

	return body, nil
}

func isHTML(contentType string, body []byte) bool {
	if len(body) == 0 {
		return true
	}

	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "text/html" {
		return true
	}

	head := bytes.ToLower(bytes.TrimSpace(body[:min(len(body), 64)]))
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}
