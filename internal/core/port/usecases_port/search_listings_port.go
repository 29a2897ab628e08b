package usecases_port

import (
	"context"

	"listings-service/internal/core/domain"
)

type SearchListingsUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResult, error)
}
