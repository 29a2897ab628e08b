package usecase

import (
	"context"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type SearchListingsUseCase struct {
	repo port.ListingRepositoryPort
}

func NewSearchListingsUseCase(repo port.ListingRepositoryPort) *SearchListingsUseCase {
	return &SearchListingsUseCase{repo: repo}
}

func (uc *SearchListingsUseCase) Execute(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SearchListings",
		"page":      filters.PageNumber(),
		"page_size": filters.Limit(),
	})

	ucLogger.Debug("Use case started", nil)

	result, err := uc.repo.Search(ctx, filters)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.Total,
		"items_on_page": len(result.Items),
	})

	return result, nil
}
