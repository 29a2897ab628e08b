package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

const similarListingsLimit = 6

const listingColumns = `id, title, comuna, address, price, currency, rooms, baths, area_m2, parking, source, url, created_at`

// ListingRepository implementa las consultas de solo lectura sobre la
// tabla de avisos.
type ListingRepository struct {
	store *Store
}

func NewListingRepository(store *Store) (*ListingRepository, error) {
	if store == nil {
		return nil, fmt.Errorf("sqlite store cannot be nil")
	}
	return &ListingRepository{store: store}, nil
}

// Search ejecuta dos consultas con el mismo predicado: el COUNT total
// y el SELECT acotado por LIMIT/OFFSET.
func (r *ListingRepository) Search(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "Search",
	})

	whereClause, args := applyFilters(filters)
	limit := filters.Limit()
	offset := filters.Offset()
	page := filters.PageNumber()

	countQuery := "SELECT COUNT(*) FROM listings " + whereClause
	var total int
	if err := r.store.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count listings", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("count listings: %w", err)
	}

	// Sin coincidencias no tiene sentido la segunda consulta.
	if total == 0 {
		return &domain.SearchResult{
			Items:    []domain.Listing{},
			Total:    0,
			Page:     page,
			PageSize: limit,
		}, nil
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM listings %s %s LIMIT ? OFFSET ?",
		listingColumns, whereClause, resolveOrder(filters.Sort),
	)
	dataArgs := append(append([]interface{}{}, args...), limit, offset)

	rows, err := r.store.db.QueryContext(ctx, dataQuery, dataArgs...)
	if err != nil {
		repoLogger.Error("Failed to query listings", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Listing, 0, limit)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		items = append(items, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}

	repoLogger.Debug("Search finished", port.Fields{"total": total, "items": len(items)})

	return &domain.SearchResult{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: limit,
	}, nil
}

// GetByID busca un aviso por su clave primaria.
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := fmt.Sprintf("SELECT %s FROM listings WHERE id = ?", listingColumns)
	row := r.store.db.QueryRowContext(ctx, query, id)

	listing, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get listing %d: %w", id, err)
	}
	return &listing, nil
}

// FindSimilar busca avisos de la misma comuna con dormitorios en el
// rango [base-1, base+1], excluyendo el aviso base, ordenados por
// precio ascendente y limitados a 6. Si el aviso base no tiene
// dormitorios informados, el rango se calcula desde 0.
func (r *ListingRepository) FindSimilar(ctx context.Context, id int64) ([]domain.Listing, error) {
	base, err := r.GetByID(ctx, id)
	if err == domain.ErrListingNotFound {
		// Un id desconocido devuelve lista vacía, no un error.
		return []domain.Listing{}, nil
	}
	if err != nil {
		return nil, err
	}

	baseRooms := 0
	if base.Rooms != nil {
		baseRooms = *base.Rooms
	}

	query := fmt.Sprintf(`
SELECT %s FROM listings
WHERE id != ?
  AND comuna = ?
  AND rooms BETWEEN ? AND ?
ORDER BY price ASC
LIMIT ?`, listingColumns)

	rows, err := r.store.db.QueryContext(ctx, query,
		base.ID, base.Comuna, baseRooms-1, baseRooms+1, similarListingsLimit)
	if err != nil {
		return nil, fmt.Errorf("query similar listings: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Listing, 0, similarListingsLimit)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan similar listing: %w", err)
		}
		items = append(items, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similar listings: %w", err)
	}
	return items, nil
}

// scanner cubre tanto *sql.Row como *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(s scanner) (domain.Listing, error) {
	var l domain.Listing
	var comuna, address, source, url sql.NullString
	var rooms, baths, areaM2 sql.NullInt64

	err := s.Scan(
		&l.ID, &l.Title, &comuna, &address, &l.Price, &l.Currency,
		&rooms, &baths, &areaM2, &l.Parking, &source, &url, &l.CreatedAt,
	)
	if err != nil {
		return domain.Listing{}, err
	}

	if comuna.Valid {
		l.Comuna = &comuna.String
	}
	if address.Valid {
		l.Address = &address.String
	}
	if source.Valid {
		l.Source = &source.String
	}
	if url.Valid {
		l.URL = &url.String
	}
	if rooms.Valid {
		v := int(rooms.Int64)
		l.Rooms = &v
	}
	if baths.Valid {
		v := int(baths.Int64)
		l.Baths = &v
	}
	if areaM2.Valid {
		v := int(areaM2.Int64)
		l.AreaM2 = &v
	}
	return l, nil
}
