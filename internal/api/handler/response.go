package handler

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
	}
}

// queryLimit lê o parâmetro limit. Ausente devolve 0 e o serviço aplica o padrão.
func queryLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", map[string]any{"limit": raw})
		return 0, false
	}
	return limit, true
}

var now = time.Now
