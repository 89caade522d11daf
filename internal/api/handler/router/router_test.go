package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/stores",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			order = append(order, "handler")
			w.WriteHeader(http.StatusOK)
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
	}))

	tests := []struct {
		name     string
		method   string
		path     string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Middlewares da rota correm na ordem declarada",
			method: http.MethodGet,
			path:   "/v1/stores",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
			},
		},
		{
			name:   "Rota inexistente responde JSON 404",
			method: http.MethodGet,
			path:   "/v1/nada",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrRouteNotFound)
			},
		},
		{
			name:   "Método errado responde JSON 405 com Allow",
			method: http.MethodDelete,
			path:   "/v1/stores",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrMethodNotAllowed)
				assert.Contains(t, rec.Header().Get("Allow"), http.MethodGet)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			tt.validate(t, rec)
		})
	}
}
