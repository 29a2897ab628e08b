package rest

// ListingResponse - DTO de un aviso en las respuestas JSON. Los campos
// opcionales son punteros con omitempty: un campo ausente significa
// "desconocido", no cero, y el cliente debe tratarlo así.
type ListingResponse struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Comuna   *string  `json:"comuna,omitempty"`
	Rooms    *int     `json:"rooms,omitempty"`
	Baths    *int     `json:"baths,omitempty"`
	AreaM2   *int     `json:"m2,omitempty"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency,omitempty"`
	Address  *string  `json:"address,omitempty"`
	Parking  int      `json:"parking"`
	Source   *string  `json:"source,omitempty"`
	URL      *string  `json:"url,omitempty"`
}

// PaginatedListingsResponse - DTO de la respuesta de búsqueda.
type PaginatedListingsResponse struct {
	Items    []ListingResponse `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// SimilarListingsResponse - DTO de /api/properties/{id}/similar.
type SimilarListingsResponse struct {
	Items []ListingResponse `json:"items"`
}

// HealthResponse - DTO de /api/health.
type HealthResponse struct {
	OK bool `json:"ok"`
}
