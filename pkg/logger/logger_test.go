package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ablemeditech-dev/able-inventory-sub001/pkg/logger"
)

func TestNew_JSONConCamposFijos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Service: "able-inventory", Out: &buf})

	log.Info().Msg("no debe salir")
	comp := log.Component("lookup")
	comp.Warn().Int("skipped_movements", 2).Msg("descartados")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "able-inventory", entry["service"])
	assert.Equal(t, "lookup", entry["component"])
	assert.Equal(t, float64(2), entry["skipped_movements"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "verboso", Out: &buf})

	log.Debug().Msg("oculto")
	log.Info().Msg("visible")

	assert.NotContains(t, buf.String(), "oculto")
	assert.Contains(t, buf.String(), "visible")
}
