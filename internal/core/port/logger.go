package port

// Fields son los atributos estructurados que acompañan a cada log.
type Fields map[string]interface{}

// LoggerPort abstrae el logger para que el núcleo no dependa de una
// implementación concreta (slog, Fluent Bit, etc.).
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)
	WithFields(fields Fields) LoggerPort
}
