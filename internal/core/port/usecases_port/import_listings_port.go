package usecases_port

import (
	"context"

	"listings-service/internal/core/domain"
)

type ImportListingsUseCase interface {
	Execute(ctx context.Context, listings []domain.Listing) (int, error)
}
