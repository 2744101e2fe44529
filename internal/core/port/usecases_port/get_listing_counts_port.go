package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type GetListingCountsUseCase interface {
	Execute(ctx context.Context) (domain.ListingCounts, error)
}
