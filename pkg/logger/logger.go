package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env     string    // development -> consola legible; production -> JSON
	Level   string    // trace, debug, info, warn, error
	Service string    // se agrega como campo "service" en cada línea
	Out     io.Writer // destino; nil = stdout
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado. En development usa salida legible; en production JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Out != nil {
		w = cfg.Out
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	ctx := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

// parseLevel nivel desconocido o vacío = info.
func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Debug, Info, Warn, Error, Fatal delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Component sublogger con el campo "component" fijo, para inyectar en servicios.
func (l *Logger) Component(name string) zerolog.Logger {
	return l.zl.With().Str("component", name).Logger()
}

// Zerolog devuelve el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
