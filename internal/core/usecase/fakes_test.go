package usecase

import (
	"context"

	"listing-service/internal/core/domain"
)

// fakeListingStore отдает заранее подготовленные ответы по очереди вызовов.
type fakeListingStore struct {
	findResults [][]domain.Listing
	findErrs    []error
	findCalls   []domain.ListingQuery

	countResult int
	countErr    error
	countCalls  int

	counts    domain.ListingCounts
	countsErr error
}

func (f *fakeListingStore) FindListings(ctx context.Context, query domain.ListingQuery) ([]domain.Listing, error) {
	call := len(f.findCalls)
	f.findCalls = append(f.findCalls, query)

	var result []domain.Listing
	if call < len(f.findResults) {
		result = f.findResults[call]
	}
	var err error
	if call < len(f.findErrs) {
		err = f.findErrs[call]
	}
	return result, err
}

func (f *fakeListingStore) CountListings(ctx context.Context, query domain.ListingQuery) (int, error) {
	f.countCalls++
	return f.countResult, f.countErr
}

func (f *fakeListingStore) CountListingsByStatus(ctx context.Context) (domain.ListingCounts, error) {
	return f.counts, f.countsErr
}

type fakeInquiryStore struct {
	createdID string
	createErr error
	received  *domain.Inquiry
}

func (f *fakeInquiryStore) CreateInquiry(ctx context.Context, inquiry domain.Inquiry) (string, error) {
	f.received = &inquiry
	return f.createdID, f.createErr
}

type fakeNotifier struct {
	err    error
	called bool
	lastID string
}

func (f *fakeNotifier) NotifyInquiryCreated(ctx context.Context, inquiryID string, inquiry domain.Inquiry) error {
	f.called = true
	f.lastID = inquiryID
	return f.err
}
