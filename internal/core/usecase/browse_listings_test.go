package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-service/internal/core/domain"
)

func TestBrowseListings_ReturnsPage(t *testing.T) {
	listings := []domain.Listing{
		testListing("listing-1", "a"),
		testListing("listing-2", "b"),
	}
	store := &fakeListingStore{
		countResult: 42,
		findResults: [][]domain.Listing{listings},
	}
	uc := NewBrowseListingsUseCase(store)

	result, err := uc.Execute(context.Background(), domain.ListingFilter{}, 20, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalCount != 42 {
		t.Errorf("total = %d, want 42", result.TotalCount)
	}
	if result.CurrentPage != 3 {
		t.Errorf("page = %d, want 3 (offset 40 / perPage 20)", result.CurrentPage)
	}
	if result.ItemsPerPage != 20 {
		t.Errorf("perPage = %d", result.ItemsPerPage)
	}
	if len(result.Listings) != 2 {
		t.Errorf("items = %d", len(result.Listings))
	}
}

// При нулевом количестве второй запрос к хранилищу не выполняется.
func TestBrowseListings_ZeroCountShortCircuits(t *testing.T) {
	store := &fakeListingStore{countResult: 0}
	uc := NewBrowseListingsUseCase(store)

	result, err := uc.Execute(context.Background(), domain.ListingFilter{}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalCount != 0 || len(result.Listings) != 0 {
		t.Errorf("expected empty page, got %+v", result)
	}
	if len(store.findCalls) != 0 {
		t.Errorf("FindListings must not be called when count is zero, got %d calls", len(store.findCalls))
	}
}

// Нулевой limit - выборка без среза: страница всегда первая,
// деления на ноль при вычислении номера страницы нет.
func TestBrowseListings_ZeroLimitReturnsFirstPage(t *testing.T) {
	store := &fakeListingStore{
		countResult: 3,
		findResults: [][]domain.Listing{{
			testListing("listing-1", "a"),
			testListing("listing-2", "b"),
			testListing("listing-3", "c"),
		}},
	}
	uc := NewBrowseListingsUseCase(store)

	result, err := uc.Execute(context.Background(), domain.ListingFilter{}, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentPage != 1 {
		t.Errorf("page = %d, want 1", result.CurrentPage)
	}
	if len(result.Listings) != 3 {
		t.Errorf("items = %d, want 3", len(result.Listings))
	}
}

func TestBrowseListings_CountFailureSurfaces(t *testing.T) {
	store := &fakeListingStore{countErr: domain.ErrStoreUnavailable}
	uc := NewBrowseListingsUseCase(store)

	_, err := uc.Execute(context.Background(), domain.ListingFilter{}, 20, 0)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestBrowseListings_PassesFilterToQuery(t *testing.T) {
	store := &fakeListingStore{
		countResult: 1,
		findResults: [][]domain.Listing{{testListing("listing-1", "a")}},
	}
	uc := NewBrowseListingsUseCase(store)

	minPrice := 100000
	filter := domain.ListingFilter{Status: domain.StatusForSale, MinPrice: &minPrice}
	if _, err := uc.Execute(context.Background(), filter, 20, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.findCalls) != 1 {
		t.Fatalf("expected 1 find call, got %d", len(store.findCalls))
	}
	query := store.findCalls[0]
	if len(query.Predicates) != 2 {
		t.Errorf("expected 2 predicates from filter, got %+v", query.Predicates)
	}
	if query.Limit != 20 || query.Offset != 0 {
		t.Errorf("slice not propagated: limit=%d offset=%d", query.Limit, query.Offset)
	}
}
