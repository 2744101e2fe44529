package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// GetFeaturedListingsUseCase - подборка для слайдера на главной странице.
type GetFeaturedListingsUseCase struct {
	store port.ListingStorePort
}

func NewGetFeaturedListingsUseCase(store port.ListingStorePort) *GetFeaturedListingsUseCase {
	return &GetFeaturedListingsUseCase{store: store}
}

func (uc *GetFeaturedListingsUseCase) Execute(ctx context.Context) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFeaturedListings",
	})

	ucLogger.Info("Use case started", nil)

	listings, err := uc.store.FindListings(ctx, domain.BuildFeaturedQuery())
	if err != nil {
		ucLogger.Error("Content store returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(listings)})
	return listings, nil
}
