package zsbmsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zsbmsdomain "github.com/vfg2006/restaurant-analytics-api/infrastructure/integrator/zsbms/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
)

var xlsMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

type fakePortal struct {
	csrfCookie  bool
	acceptLogin bool
	lastForm    map[string][]string
}

func (p *fakePortal) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if p.csrfCookie {
				http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "cookie-token", Path: "/"})
			}
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<form><input type="hidden" name="csrfmiddlewaretoken" value="form-token"></form>`))
		case http.MethodPost:
			_ = r.ParseForm()
			p.lastForm = r.PostForm
			if p.acceptLogin && r.PostForm.Get("username") == "gestor" && r.PostForm.Get("password") == "segredo" {
				http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "sess-1", Path: "/"})
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		}
	})
	mux.HandleFunc("/reports/104/print/", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		p.lastForm = r.PostForm
		if c, err := r.Cookie("sessionid"); err != nil || c.Value != "sess-1" {
			http.Redirect(w, r, "/login/", http.StatusFound)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.ms-excel")
		_, _ = w.Write(xlsMagic)
	})
	mux.HandleFunc("/reports/112/print/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>Erro</body></html>"))
	})
	mux.HandleFunc("/reports/87/print/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	return mux
}

func newTestClient(t *testing.T, portal *fakePortal) Client {
	t.Helper()
	server := httptest.NewServer(portal.handler())
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{ZSBMS: config.ZSBMS{
		URL:            server.URL,
		Username:       "gestor",
		Password:       "segredo",
		StoreIDs:       []string{"3", "7"},
		TimeoutSeconds: 5,
	}})
	require.NoError(t, err)
	return client
}

func TestZSBMSClient_Login(t *testing.T) {
	tests := []struct {
		name     string
		portal   *fakePortal
		validate func(t *testing.T, portal *fakePortal, session *zsbmsdomain.Session, err error)
	}{
		{
			name:   "deve usar o token do cookie csrftoken",
			portal: &fakePortal{csrfCookie: true, acceptLogin: true},
			validate: func(t *testing.T, portal *fakePortal, session *zsbmsdomain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, "sess-1", session.SessionID)
				assert.Equal(t, "cookie-token", session.CSRFToken)
				assert.Equal(t, "cookie-token", portal.lastForm["csrfmiddlewaretoken"][0])
				assert.Equal(t, "/", portal.lastForm["next"][0])
			},
		},
		{
			name:   "deve usar o campo oculto quando não há cookie",
			portal: &fakePortal{acceptLogin: true},
			validate: func(t *testing.T, portal *fakePortal, session *zsbmsdomain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, "form-token", session.CSRFToken)
			},
		},
		{
			name:   "deve falhar sem cookie de sessão",
			portal: &fakePortal{csrfCookie: true},
			validate: func(t *testing.T, _ *fakePortal, session *zsbmsdomain.Session, err error) {
				assert.ErrorIs(t, err, ErrLoginFailed)
				assert.Nil(t, session)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.portal)
			session, err := client.Login(context.Background())
			tt.validate(t, tt.portal, session, err)
		})
	}
}

func TestZSBMSClient_ExportReport(t *testing.T) {
	portal := &fakePortal{csrfCookie: true, acceptLogin: true}
	client := newTestClient(t, portal)
	ctx := context.Background()

	session, err := client.Login(ctx)
	require.NoError(t, err)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	daily, _ := zsbmsdomain.FindReport(zsbmsdomain.ReportDailySales)
	zone, _ := zsbmsdomain.FindReport(zsbmsdomain.ReportZoneSales)
	article, _ := zsbmsdomain.FindReport(zsbmsdomain.ReportArticleSales)

	t.Run("deve devolver a planilha e enviar o formulário", func(t *testing.T) {
		data, err := client.ExportReport(ctx, session, daily, from, to)
		require.NoError(t, err)
		assert.Equal(t, xlsMagic, data)
		assert.Equal(t, "xls", portal.lastForm["export_type"][0])
		assert.Equal(t, "01-01-2025 a 15-03-2025", portal.lastForm["date_range"][0])
		assert.Equal(t, []string{"3", "7"}, portal.lastForm["stores"])
		assert.Equal(t, "1", portal.lastForm["group_by_day"][0])
	})

	t.Run("deve rejeitar resposta HTML", func(t *testing.T) {
		_, err := client.ExportReport(ctx, session, zone, from, to)
		assert.ErrorIs(t, err, ErrHTMLResponse)
	})

	t.Run("deve rejeitar status fora de 2xx", func(t *testing.T) {
		_, err := client.ExportReport(ctx, session, article, from, to)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}

func TestIsHTML(t *testing.T) {
	assert.True(t, isHTML("application/octet-stream", nil))
	assert.True(t, isHTML("application/vnd.ms-excel", []byte("  <!DOCTYPE html><html>")))
	assert.True(t, isHTML("text/html", xlsMagic))
	assert.False(t, isHTML("application/vnd.ms-excel", xlsMagic))
}
