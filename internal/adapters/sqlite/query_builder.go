package sqlite

import (
	"strings"

	"listings-service/internal/core/domain"
	"listings-service/pkg/textnorm"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		conditions: make([]string, 0, 8),
		args:       make([]interface{}, 0, 8),
	}
}

func (qb *queryBuilder) addCondition(condition string, args ...interface{}) {
	qb.conditions = append(qb.conditions, condition)
	qb.args = append(qb.args, args...)
}

// AddFloatRange recibe punteros: nil significa que el filtro no vino,
// mientras que un puntero a 0 sí agrega la condición.
func (qb *queryBuilder) AddFloatRange(column string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition(column+" >= ?", *min)
	}
	if max != nil {
		qb.addCondition(column+" <= ?", *max)
	}
}

func (qb *queryBuilder) AddIntRange(column string, min *int, max *int) {
	if min != nil {
		qb.addCondition(column+" >= ?", *min)
	}
	if max != nil {
		qb.addCondition(column+" <= ?", *max)
	}
}

// build arma la cláusula WHERE final. Sin condiciones devuelve cadena
// vacía: el predicado coincide con todas las filas.
func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", qb.args
	}
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

// applyFilters traduce los filtros de búsqueda a un predicado
// parametrizado. Es una función pura: el mismo filtro produce siempre
// el mismo SQL y los mismos argumentos, y la entrada del cliente jamás
// se interpola en el texto de la consulta.
func applyFilters(filters domain.SearchFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	// Filtro por comuna, ignorando tildes y mayúsculas: el valor se
	// normaliza y se compara como subcadena contra comuna_norm.
	if filters.Comuna != "" {
		comunaNorm := textnorm.Normalize(filters.Comuna)
		if comunaNorm != "" {
			qb.addCondition("comuna_norm LIKE '%' || ? || '%'", comunaNorm)
		}
	}

	if filters.Currency != "" {
		qb.addCondition("currency = ?", strings.ToUpper(filters.Currency))
	}

	qb.AddIntRange("rooms", filters.RoomsMin, filters.RoomsMax)
	qb.AddIntRange("baths", filters.BathsMin, filters.BathsMax)
	qb.AddIntRange("area_m2", filters.AreaMin, filters.AreaMax)
	qb.AddFloatRange("price", filters.PriceMin, filters.PriceMax)

	return qb.build()
}

// resolveOrder mapea la clave de ordenamiento a una cláusula ORDER BY
// de una lista cerrada. Valores desconocidos caen en el orden por defecto.
func resolveOrder(sort string) string {
	switch sort {
	case domain.SortPriceDesc:
		return "ORDER BY price DESC"
	case domain.SortAreaDesc:
		return "ORDER BY area_m2 DESC"
	case domain.SortAreaAsc:
		return "ORDER BY area_m2 ASC"
	case domain.SortRecent:
		// id como desempate para que el orden sea determinista.
		return "ORDER BY created_at DESC, id DESC"
	default:
		return "ORDER BY price ASC"
	}
}
