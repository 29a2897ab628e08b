package usecases_port

import (
	"context"

	"listings-service/internal/core/domain"
)

type GetListingByIDUseCase interface {
	Execute(ctx context.Context, id int64) (*domain.Listing, error)
}
