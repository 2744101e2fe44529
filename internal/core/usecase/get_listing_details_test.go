package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-service/internal/core/domain"
)

func testListing(id, slug string) domain.Listing {
	return domain.Listing{
		ID:       id,
		Title:    "Victorian terrace",
		Slug:     slug,
		Category: domain.CategoryHouse,
		Status:   domain.StatusForSale,
		Price:    350000,
	}
}

func TestGetListingDetails_Found(t *testing.T) {
	listing := testListing("listing-1", "victorian-terrace")
	similar := []domain.Listing{testListing("listing-2", "red-brick-semi")}
	store := &fakeListingStore{
		findResults: [][]domain.Listing{{listing}, similar},
	}
	uc := NewGetListingDetailsUseCase(store)

	details, err := uc.Execute(context.Background(), "victorian-terrace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Listing.ID != "listing-1" {
		t.Errorf("listing id = %q", details.Listing.ID)
	}
	if len(details.Similar) != 1 || details.Similar[0].ID != "listing-2" {
		t.Errorf("similar = %+v", details.Similar)
	}

	// Второй запрос - похожие: та же категория, референс исключен.
	if len(store.findCalls) != 2 {
		t.Fatalf("expected 2 store calls, got %d", len(store.findCalls))
	}
	similarQuery := store.findCalls[1]
	if similarQuery.Limit != domain.SimilarListingsLimit {
		t.Errorf("similar query limit = %d", similarQuery.Limit)
	}
}

func TestGetListingDetails_NotFound(t *testing.T) {
	store := &fakeListingStore{
		findResults: [][]domain.Listing{{}},
	}
	uc := NewGetListingDetailsUseCase(store)

	_, err := uc.Execute(context.Background(), "no-such-slug")
	if !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestGetListingDetails_StoreFailureSurfaces(t *testing.T) {
	store := &fakeListingStore{
		findErrs: []error{domain.ErrStoreUnavailable},
	}
	uc := NewGetListingDetailsUseCase(store)

	_, err := uc.Execute(context.Background(), "victorian-terrace")
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// Блок похожих некритичен: его сбой не роняет детальную страницу.
func TestGetListingDetails_SimilarFailureDegrades(t *testing.T) {
	listing := testListing("listing-1", "victorian-terrace")
	store := &fakeListingStore{
		findResults: [][]domain.Listing{{listing}, nil},
		findErrs:    []error{nil, domain.ErrStoreUnavailable},
	}
	uc := NewGetListingDetailsUseCase(store)

	details, err := uc.Execute(context.Background(), "victorian-terrace")
	if err != nil {
		t.Fatalf("similar failure must degrade, not fail: %v", err)
	}
	if len(details.Similar) != 0 {
		t.Errorf("expected empty similar list, got %+v", details.Similar)
	}
}
