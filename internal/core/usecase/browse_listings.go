package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// BrowseListingsUseCase - выборка объявлений по фильтру с пагинацией.
type BrowseListingsUseCase struct {
	store port.ListingStorePort
}

func NewBrowseListingsUseCase(store port.ListingStorePort) *BrowseListingsUseCase {
	return &BrowseListingsUseCase{store: store}
}

func (uc *BrowseListingsUseCase) Execute(ctx context.Context, filter domain.ListingFilter, limit, offset int) (*domain.PaginatedListings, error) {
	// Получаем и обогащаем логгер
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "BrowseListings",
		"filter":   filter,
		"limit":    limit,
		"offset":   offset,
	})

	ucLogger.Info("Use case started", nil)

	// limit == 0 означает выборку без среза, страница тогда одна.
	currentPage := 1
	if limit > 0 {
		currentPage = offset/limit + 1
	}

	query := domain.BuildBrowseQuery(filter, limit, offset)

	totalCount, err := uc.store.CountListings(ctx, query)
	if err != nil {
		ucLogger.Error("Content store returned an error on count", err, nil)
		return nil, err // Просто пробрасываем ошибку дальше, поглощает ее граница страницы
	}

	// Если ничего не найдено, нет смысла делать второй запрос
	if totalCount == 0 {
		return &domain.PaginatedListings{
			Listings:     []domain.Listing{},
			TotalCount:   0,
			CurrentPage:  currentPage,
			ItemsPerPage: limit,
		}, nil
	}

	listings, err := uc.store.FindListings(ctx, query)
	if err != nil {
		ucLogger.Error("Content store returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   totalCount,
		"items_on_page": len(listings),
	})

	return &domain.PaginatedListings{
		Listings:     listings,
		TotalCount:   totalCount,
		CurrentPage:  currentPage,
		ItemsPerPage: limit,
	}, nil
}
