package usecase

import (
	"context"
	"fmt"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// GetListingDetailsUseCase - детальная страница объявления: сам документ
// по slug плюс похожие предложения.
type GetListingDetailsUseCase struct {
	store port.ListingStorePort
}

func NewGetListingDetailsUseCase(store port.ListingStorePort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{store: store}
}

func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, slug string) (*domain.ListingDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetListingDetails",
		"slug":     slug,
	})

	ucLogger.Info("Use case started", nil)

	listings, err := uc.store.FindListings(ctx, domain.BuildSlugQuery(slug))
	if err != nil {
		ucLogger.Error("Content store returned an error", err, nil)
		return nil, err
	}
	if len(listings) == 0 {
		ucLogger.Warn("Slug did not resolve to any document", nil)
		return nil, fmt.Errorf("slug %q: %w", slug, domain.ErrListingNotFound)
	}

	listing := listings[0]

	// Похожие объявления - некритичная часть страницы: при сбое запроса
	// показываем деталку без блока похожих.
	similarQuery := domain.BuildSimilarListingsQuery(listing.Category, listing.Price, listing.ID)
	similar, err := uc.store.FindListings(ctx, similarQuery)
	if err != nil {
		ucLogger.Error("Failed to fetch similar listings, degrading to empty list", err, nil)
		similar = []domain.Listing{}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"similar_count": len(similar),
	})

	return &domain.ListingDetails{
		Listing: listing,
		Similar: similar,
	}, nil
}
