package domain

// Claves de ordenamiento aceptadas por la búsqueda. Cualquier otro valor
// cae silenciosamente en SortPriceAsc.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortAreaDesc  = "area_desc"
	SortAreaAsc   = "area_asc"
	SortRecent    = "recent"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// SearchFilters agrupa los filtros opcionales de una búsqueda.
// Los rangos numéricos son punteros: nil significa "filtro no enviado",
// mientras que un puntero a 0 es un límite real provisto por el cliente.
type SearchFilters struct {
	Comuna   string
	Currency string

	RoomsMin *int
	RoomsMax *int
	BathsMin *int
	BathsMax *int
	AreaMin  *int
	AreaMax  *int
	PriceMin *float64
	PriceMax *float64

	Sort     string
	Page     int
	PageSize int
}

// Limit devuelve el tamaño de página saneado, siempre dentro de [1, MaxPageSize].
func (f SearchFilters) Limit() int {
	size := f.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return size
}

// PageNumber devuelve la página saneada (mínimo 1).
func (f SearchFilters) PageNumber() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

// Offset se deriva siempre de los valores ya saneados.
func (f SearchFilters) Offset() int {
	return (f.PageNumber() - 1) * f.Limit()
}
