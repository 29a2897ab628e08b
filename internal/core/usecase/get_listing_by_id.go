package usecase

import (
	"context"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type GetListingByIDUseCase struct {
	repo port.ListingRepositoryPort
}

func NewGetListingByIDUseCase(repo port.ListingRepositoryPort) *GetListingByIDUseCase {
	return &GetListingByIDUseCase{repo: repo}
}

func (uc *GetListingByIDUseCase) Execute(ctx context.Context, id int64) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingByID",
		"listing_id": id,
	})

	listing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		// ErrListingNotFound no es una falla del sistema: lo decide la capa REST.
		if err != domain.ErrListingNotFound {
			ucLogger.Error("Repository returned an error", err, nil)
		}
		return nil, err
	}

	ucLogger.Debug("Listing found", nil)
	return listing, nil
}
