package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/port/usecases_port"
)

type ListingHandler struct {
	searchUC      usecases_port.SearchListingsUseCase
	getByIDUC     usecases_port.GetListingByIDUseCase
	findSimilarUC usecases_port.FindSimilarListingsUseCase
}

func NewListingHandler(searchUC usecases_port.SearchListingsUseCase,
	getByIDUC usecases_port.GetListingByIDUseCase,
	findSimilarUC usecases_port.FindSimilarListingsUseCase) *ListingHandler {
	return &ListingHandler{
		searchUC:      searchUC,
		getByIDUC:     getByIDUC,
		findSimilarUC: findSimilarUC,
	}
}

// SearchListings maneja GET /api/properties
func (h *ListingHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	// --- Paso 1: armamos los filtros con los helpers de parseo.
	// Un valor numérico que no parsea se trata como ausente.
	filters := domain.SearchFilters{
		Comuna:   parseString(query, "comuna"),
		Currency: strings.ToUpper(parseString(query, "currency")),
		RoomsMin: parseInt(query, "roomsMin"),
		RoomsMax: parseInt(query, "roomsMax"),
		BathsMin: parseInt(query, "bathsMin"),
		BathsMax: parseInt(query, "bathsMax"),
		AreaMin:  parseInt(query, "minM2"),
		AreaMax:  parseInt(query, "maxM2"),
		PriceMin: parseFloat(query, "minPrice"),
		PriceMax: parseFloat(query, "maxPrice"),
		Sort:     parseString(query, "sort"),
		Page:     parseIntOrDefault(query, "page", 1),
		PageSize: parseIntOrDefault(query, "pageSize", domain.DefaultPageSize),
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "SearchListings",
		"page":    filters.PageNumber(),
	})
	handlerLogger.Debug("Processing search request", nil)

	// --- Paso 2: ejecutamos el use case.
	result, err := h.searchUC.Execute(r.Context(), filters)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search listings")
		return
	}

	// --- Paso 3: mapeamos al DTO de respuesta.
	response := PaginatedListingsResponse{
		Items:    make([]ListingResponse, len(result.Items)),
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	}
	for i, listing := range result.Items {
		response.Items[i] = toListingResponse(listing)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetListingByID maneja GET /api/properties/{listingID}
func (h *ListingHandler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "listingID"), 10, 64)
	if err != nil {
		// Un id no numérico no puede existir: mismo 404 que un id desconocido.
		WriteJSONError(w, http.StatusNotFound, "Not found")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "GetListingByID",
		"listing_id": id,
	})

	listing, err := h.getByIDUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}

// GetSimilarListings maneja GET /api/properties/{listingID}/similar
func (h *ListingHandler) GetSimilarListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "listingID"), 10, 64)
	if err != nil {
		// Id inválido: lista vacía, igual que un id desconocido.
		RespondWithJSON(w, http.StatusOK, SimilarListingsResponse{Items: []ListingResponse{}})
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "GetSimilarListings",
		"listing_id": id,
	})

	items, err := h.findSimilarUC.Execute(r.Context(), id)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch similar listings")
		return
	}

	response := SimilarListingsResponse{Items: make([]ListingResponse, len(items))}
	for i, listing := range items {
		response.Items[i] = toListingResponse(listing)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// Health maneja GET /api/health
func (h *ListingHandler) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, HealthResponse{OK: true})
}

func toListingResponse(l domain.Listing) ListingResponse {
	return ListingResponse{
		ID:       l.ID,
		Title:    l.Title,
		Comuna:   l.Comuna,
		Rooms:    l.Rooms,
		Baths:    l.Baths,
		AreaM2:   l.AreaM2,
		Price:    l.Price,
		Currency: l.Currency,
		Address:  l.Address,
		Parking:  l.Parking,
		Source:   l.Source,
		URL:      l.URL,
	}
}
