package domain

import "time"

// Monedas en las que puede estar expresado el precio de un aviso.
const (
	CurrencyUF  = "UF"
	CurrencyCLP = "CLP"
)

// Listing representa una propiedad publicada. Las filas son de solo
// lectura para este servicio: se insertan una única vez durante la
// carga inicial y nunca se modifican ni se borran por HTTP.
//
// Los campos opcionales son punteros: un valor ausente no es lo mismo
// que un cero (un aviso sin dormitorios informados no tiene 0 dormitorios).
type Listing struct {
	ID        int64
	Title     string
	Comuna    *string
	Address   *string
	Price     float64
	Currency  string
	Rooms     *int
	Baths     *int
	AreaM2    *int
	Parking   int
	Source    *string
	URL       *string
	CreatedAt time.Time
}

// SearchResult es una página de resultados junto con el total de filas
// que coinciden con el mismo filtro, independiente de la paginación.
type SearchResult struct {
	Items    []Listing
	Total    int
	Page     int
	PageSize int
}
