package sanity

import (
	"testing"
	"time"

	"listing-service/internal/core/domain"
)

func validListingDocument() listingDocument {
	doc := listingDocument{
		ID:           "listing-1",
		Title:        "Victorian terrace",
		PropertyType: "house",
		Status:       "for-sale",
		Price:        350000,
		Currency:     "GBP",
		Bedrooms:     3,
		Bathrooms:    1,
		Area:         1250,
		PublishedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	doc.Slug.Current = "victorian-terrace"
	img := imageDocument{Alt: "front"}
	img.Asset.Ref = "image-abc123-1200x800-jpg"
	doc.Images = []imageDocument{img}
	return doc
}

func TestToDomainListing_Valid(t *testing.T) {
	listing, err := toDomainListing(validListingDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if listing.Slug != "victorian-terrace" {
		t.Errorf("slug = %q", listing.Slug)
	}
	if listing.Category != "house" {
		t.Errorf("category = %q", listing.Category)
	}
	if len(listing.Images) != 1 || listing.Images[0].AssetRef != "image-abc123-1200x800-jpg" {
		t.Errorf("images not mapped: %+v", listing.Images)
	}
}

func TestToDomainListing_DefaultsCurrencyToGBP(t *testing.T) {
	doc := validListingDocument()
	doc.Currency = ""

	listing, err := toDomainListing(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listing.Currency != domain.CurrencyGBP {
		t.Errorf("currency = %q, want %q", listing.Currency, domain.CurrencyGBP)
	}
}

func TestToDomainListing_InvalidDocuments(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *listingDocument)
	}{
		{"missing id", func(doc *listingDocument) { doc.ID = "" }},
		{"missing title", func(doc *listingDocument) { doc.Title = "" }},
		{"missing slug", func(doc *listingDocument) { doc.Slug.Current = "" }},
		{"zero price", func(doc *listingDocument) { doc.Price = 0 }},
		{"negative price", func(doc *listingDocument) { doc.Price = -100 }},
		{"no images", func(doc *listingDocument) { doc.Images = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validListingDocument()
			tt.mutate(&doc)
			if _, err := toDomainListing(doc); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestToInquiryDocument(t *testing.T) {
	submittedAt := time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC)
	doc := toInquiryDocument(domain.Inquiry{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Message:     "Is this still available?",
		ListingID:   "listing-1",
		Type:        domain.InquiryTypeInfo,
		Status:      domain.InquiryStatusNew,
		SubmittedAt: submittedAt,
	})

	if doc.Type != "inquiry" {
		t.Errorf("_type = %q", doc.Type)
	}
	if doc.PropertyID != "listing-1" {
		t.Errorf("propertyId = %q", doc.PropertyID)
	}
	if doc.SubmittedAt != "2025-07-15T09:30:00Z" {
		t.Errorf("submittedAt = %q", doc.SubmittedAt)
	}
}
