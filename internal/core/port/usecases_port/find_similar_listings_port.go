package usecases_port

import (
	"context"

	"listings-service/internal/core/domain"
)

type FindSimilarListingsUseCase interface {
	Execute(ctx context.Context, id int64) ([]domain.Listing, error)
}
