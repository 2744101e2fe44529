package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type GetFeaturedListingsUseCase interface {
	Execute(ctx context.Context) ([]domain.Listing, error)
}
