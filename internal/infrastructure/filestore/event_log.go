package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/control-stock/internal/domain/repository"
)

// EventTimeLayout formato del sello de tiempo de cada línea: [DD/MM/AAAA HH:MM:SS].
const EventTimeLayout = "02/01/2006 15:04:05"

var _ repository.EventLog = (*EventLog)(nil)

// EventLog historial append-only en texto plano, una línea por evento.
type EventLog struct {
	path string
	now  func() time.Time
	log  zerolog.Logger
}

// NewEventLog construye el historial. now puede ser nil (usa time.Now).
func NewEventLog(path string, now func() time.Time, log zerolog.Logger) *EventLog {
	if now == nil {
		now = time.Now
	}
	return &EventLog{path: path, now: now, log: log}
}

// Record agrega "[fecha hora] mensaje" al final del archivo, creando el directorio si hace falta.
func (l *EventLog) Record(message string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("crear directorio del historial: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("abrir historial: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", l.now().Format(EventTimeLayout), message)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("escribir historial: %w", err)
	}
	l.log.Debug().Str("evento", message).Msg("historial")
	return nil
}
