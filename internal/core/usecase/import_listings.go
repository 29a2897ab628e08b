package usecase

import (
	"context"
	"fmt"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

// ImportListingsUseCase es el único camino de escritura: carga el
// dataset inicial cuando la tabla está vacía, antes de aceptar tráfico.
type ImportListingsUseCase struct {
	store port.ListingImportPort
}

func NewImportListingsUseCase(store port.ListingImportPort) *ImportListingsUseCase {
	return &ImportListingsUseCase{store: store}
}

// Execute inserta los avisos solo si la tabla está vacía. Devuelve la
// cantidad de filas insertadas (0 si ya había datos).
func (uc *ImportListingsUseCase) Execute(ctx context.Context, listings []domain.Listing) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ImportListings",
		"candidates": len(listings),
	})

	existing, err := uc.store.CountListings(ctx)
	if err != nil {
		ucLogger.Error("Failed to count existing listings", err, nil)
		return 0, fmt.Errorf("count existing listings: %w", err)
	}
	if existing > 0 {
		ucLogger.Info("Listings table already populated, skipping import", port.Fields{"existing": existing})
		return 0, nil
	}

	inserted, err := uc.store.InsertListings(ctx, listings)
	if err != nil {
		ucLogger.Error("Failed to insert listings", err, nil)
		return 0, fmt.Errorf("insert listings: %w", err)
	}

	ucLogger.Info("Initial listings imported", port.Fields{"inserted": inserted})
	return inserted, nil
}
