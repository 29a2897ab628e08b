package usecase

import (
	"context"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type FindSimilarListingsUseCase struct {
	repo port.ListingRepositoryPort
}

func NewFindSimilarListingsUseCase(repo port.ListingRepositoryPort) *FindSimilarListingsUseCase {
	return &FindSimilarListingsUseCase{repo: repo}
}

func (uc *FindSimilarListingsUseCase) Execute(ctx context.Context, id int64) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "FindSimilarListings",
		"listing_id": id,
	})

	items, err := uc.repo.FindSimilar(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Similar listings found", port.Fields{"count": len(items)})
	return items, nil
}
