package sanity

import (
	"context"
	"fmt"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// ListingStoreAdapter реализует порт чтения объявлений поверх
// Content Lake API.
type ListingStoreAdapter struct {
	client *Client
}

func NewListingStoreAdapter(client *Client) *ListingStoreAdapter {
	return &ListingStoreAdapter{client: client}
}

// FindListings выполняет запрос и переводит документы в доменную модель.
// Некорректный документ (без обязательных полей) не роняет всю выдачу -
// он пропускается с предупреждением в логе.
func (a *ListingStoreAdapter) FindListings(ctx context.Context, query domain.ListingQuery) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storeLogger := logger.WithFields(port.Fields{
		"component": "ListingStoreAdapter",
		"method":    "FindListings",
	})

	groq, params, err := buildListingQuery(query)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing query: %w", err)
	}

	var docs []listingDocument
	if err := a.client.Query(ctx, groq, params, &docs); err != nil {
		storeLogger.Error("Failed to query listings", err, nil)
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}

	listings := make([]domain.Listing, 0, len(docs))
	for _, doc := range docs {
		listing, err := toDomainListing(doc)
		if err != nil {
			storeLogger.Warn("Skipping invalid listing document", port.Fields{"error": err.Error()})
			continue
		}
		listings = append(listings, *listing)
	}

	storeLogger.Info("Listings fetched", port.Fields{"count": len(listings)})
	return listings, nil
}

// CountListings считает документы под теми же предикатами, что и выдача.
func (a *ListingStoreAdapter) CountListings(ctx context.Context, query domain.ListingQuery) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storeLogger := logger.WithFields(port.Fields{
		"component": "ListingStoreAdapter",
		"method":    "CountListings",
	})

	groq, params, err := buildCountQuery(query)
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := a.client.Query(ctx, groq, params, &count); err != nil {
		storeLogger.Error("Failed to count listings", err, nil)
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}

	return count, nil
}

// CountListingsByStatus возвращает агрегированные счетчики для главной.
func (a *ListingStoreAdapter) CountListingsByStatus(ctx context.Context) (domain.ListingCounts, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storeLogger := logger.WithFields(port.Fields{
		"component": "ListingStoreAdapter",
		"method":    "CountListingsByStatus",
	})

	var counts struct {
		Total   int `json:"total"`
		ForSale int `json:"forSale"`
		ForRent int `json:"forRent"`
	}
	if err := a.client.Query(ctx, countsByStatusQuery, nil, &counts); err != nil {
		storeLogger.Error("Failed to count listings by status", err, nil)
		return domain.ListingCounts{}, fmt.Errorf("failed to count listings by status: %w", err)
	}

	return domain.ListingCounts{
		Total:   counts.Total,
		ForSale: counts.ForSale,
		ForRent: counts.ForRent,
	}, nil
}
