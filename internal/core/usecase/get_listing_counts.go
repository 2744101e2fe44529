package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// GetListingCountsUseCase - счетчики "всего / продается / сдается".
type GetListingCountsUseCase struct {
	store port.ListingStorePort
}

func NewGetListingCountsUseCase(store port.ListingStorePort) *GetListingCountsUseCase {
	return &GetListingCountsUseCase{store: store}
}

func (uc *GetListingCountsUseCase) Execute(ctx context.Context) (domain.ListingCounts, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetListingCounts",
	})

	counts, err := uc.store.CountListingsByStatus(ctx)
	if err != nil {
		ucLogger.Error("Content store returned an error", err, nil)
		return domain.ListingCounts{}, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total":    counts.Total,
		"for_sale": counts.ForSale,
		"for_rent": counts.ForRent,
	})
	return counts, nil
}
