package port

import (
	"context"

	"listings-service/internal/core/domain"
)

// ListingRepositoryPort expone las consultas de solo lectura sobre
// el conjunto de avisos almacenados.
type ListingRepositoryPort interface {
	// Search ejecuta la consulta paginada y el COUNT con el mismo
	// predicado. Una página más allá de la última devuelve una lista
	// vacía con el total correcto, no un error.
	Search(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResult, error)

	// GetByID devuelve domain.ErrListingNotFound si el id no existe.
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)

	// FindSimilar devuelve hasta 6 avisos de la misma comuna con
	// dormitorios en el rango [base-1, base+1], excluyendo el aviso
	// base y ordenados por precio ascendente. Un id desconocido
	// devuelve una lista vacía.
	FindSimilar(ctx context.Context, id int64) ([]domain.Listing, error)
}

// ListingImportPort cubre la carga inicial de datos, el único camino
// de escritura del sistema.
type ListingImportPort interface {
	CountListings(ctx context.Context) (int, error)
	InsertListings(ctx context.Context, listings []domain.Listing) (int, error)
}
