package fluentlogger

import (
	"fmt"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config guarda la configuración de conexión a Fluent Bit.
type Config struct {
	Host      string // por ejemplo "127.0.0.1" o "fluent-bit" en Docker
	Port      int    // por ejemplo 24224
	TagPrefix string // prefijo común para los tags de este servicio
}

// NewClient crea y devuelve un cliente de Fluent Bit.
// Crear el cliente no garantiza la conexión: los errores aparecen
// recién al intentar enviar el primer log.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	logger, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}

	return logger, nil
}
