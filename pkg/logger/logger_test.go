package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modus-trade/modus-api/pkg/logger"
)

// Un nivel no reconocido no rompe la construcción: cae a info.
func TestNew_NivelDesconocido(t *testing.T) {
	log := logger.New("production", "verboso")
	assert.NotNil(t, log)
	log.Info().Msg("nivel por defecto")
}

// El logger nulo descarta sin panics; es el que usan los tests.
func TestNop(t *testing.T) {
	log := logger.Nop()
	log.Error().Str("k", "v").Msg("descartado")
	log.With().Str("campo", "fijo").Logger()
}
