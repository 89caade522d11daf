package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferLogger() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &logger{entry: logrus.NewEntry(base)}, buf
}

func TestLogger_DevelopmentFieldFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	l, buf := newBufferLogger()
	l.WithFields(Fields{"sync_id": 7, "file": "vendas.xls", "ruido": "x"}).WithField("report", "daily_sales").Info("importando")

	out := buf.String()
	assert.Contains(t, out, "sync_id=7")
	assert.Contains(t, out, "file=vendas.xls")
	assert.Contains(t, out, "report=daily_sales")
	assert.NotContains(t, out, "ruido")
}

func TestLogger_ProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	l, buf := newBufferLogger()
	l.WithField("ruido", "x").Info("mensagem")

	assert.Contains(t, buf.String(), "ruido=x")
}

func TestForContext_CorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	ctx, id := WithCorrelationID(context.Background())
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
