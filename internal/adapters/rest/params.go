package rest

import (
	"net/url"
	"strconv"
)

// Helpers de parseo de query params. Devuelven punteros: nil cuando el
// parámetro no vino o no se pudo interpretar (política de tolerancia:
// un filtro numérico inválido se trata como ausente, nunca como error).
// Un "0" explícito sí produce un puntero, porque 0 es un valor provisto.

func parseString(q url.Values, key string) string {
	return q.Get(key)
}

func parseInt(q url.Values, key string) *int {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloat(q url.Values, key string) *float64 {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseIntOrDefault es para page/pageSize, que siempre tienen un valor
// efectivo aunque el cliente no mande nada.
func parseIntOrDefault(q url.Values, key string, def int) int {
	raw := q.Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
