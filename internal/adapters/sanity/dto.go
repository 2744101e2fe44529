package sanity

import (
	"fmt"
	"time"

	"listing-service/internal/core/domain"
)

// DTO документов контент-хранилища. Присутствие обязательных полей
// проверяется здесь, на границе с хранилищем, а не в слое представления.

type slugField struct {
	Current string `json:"current"`
}

type locationDocument struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type imageDocument struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

type listingDocument struct {
	ID           string           `json:"_id"`
	Title        string           `json:"title"`
	Slug         slugField        `json:"slug"`
	PropertyType string           `json:"propertyType"`
	Status       string           `json:"status"`
	Price        float64          `json:"price"`
	Currency     string           `json:"currency"`
	Description  string           `json:"description"`
	Location     locationDocument `json:"location"`
	Bedrooms     int              `json:"bedrooms"`
	Bathrooms    int              `json:"bathrooms"`
	Area         float64          `json:"area"`
	Images       []imageDocument  `json:"images"`
	Features     []string         `json:"features"`
	YearBuilt    *int             `json:"yearBuilt"`
	Parking      int              `json:"parking"`
	VirtualTour  string           `json:"virtualTourUrl"`
	Featured     bool             `json:"featured"`
	PublishedAt  time.Time        `json:"publishedAt"`
}

// toDomainListing валидирует документ и переводит его в доменную модель.
// Документ без обязательных полей (инварианты: уникальный slug, минимум
// одно изображение, положительная цена) считается некорректным.
func toDomainListing(doc listingDocument) (*domain.Listing, error) {
	if doc.ID == "" {
		return nil, fmt.Errorf("listing document: missing _id")
	}
	if doc.Title == "" {
		return nil, fmt.Errorf("listing document %s: missing title", doc.ID)
	}
	if doc.Slug.Current == "" {
		return nil, fmt.Errorf("listing document %s: missing slug", doc.ID)
	}
	if doc.Price <= 0 {
		return nil, fmt.Errorf("listing document %s: price must be positive", doc.ID)
	}
	if len(doc.Images) == 0 {
		return nil, fmt.Errorf("listing document %s: at least one image is required", doc.ID)
	}

	currency := doc.Currency
	if currency == "" {
		currency = domain.CurrencyGBP
	}

	images := make([]domain.ListingImage, len(doc.Images))
	for i, img := range doc.Images {
		images[i] = domain.ListingImage{
			AssetRef: img.Asset.Ref,
			Alt:      img.Alt,
			Caption:  img.Caption,
		}
	}

	return &domain.Listing{
		ID:          doc.ID,
		Title:       doc.Title,
		Slug:        doc.Slug.Current,
		Category:    doc.PropertyType,
		Status:      doc.Status,
		Price:       doc.Price,
		Currency:    currency,
		Description: doc.Description,
		Location: domain.Location{
			Address:  doc.Location.Address,
			City:     doc.Location.City,
			County:   doc.Location.County,
			Postcode: doc.Location.Postcode,
			Country:  doc.Location.Country,
		},
		Bedrooms:       doc.Bedrooms,
		Bathrooms:      doc.Bathrooms,
		Area:           doc.Area,
		Images:         images,
		Features:       doc.Features,
		YearBuilt:      doc.YearBuilt,
		ParkingSpaces:  doc.Parking,
		VirtualTourURL: doc.VirtualTour,
		Featured:       doc.Featured,
		PublishedAt:    doc.PublishedAt,
	}, nil
}

// inquiryDocument - документ заявки для мутации create.
type inquiryDocument struct {
	Type          string `json:"_type"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Subject       string `json:"subject,omitempty"`
	Message       string `json:"message"`
	PropertyID    string `json:"propertyId,omitempty"`
	PropertyTitle string `json:"propertyTitle,omitempty"`
	InquiryType   string `json:"inquiryType"`
	Status        string `json:"status"`
	SubmittedAt   string `json:"submittedAt"`
}

func toInquiryDocument(inq domain.Inquiry) inquiryDocument {
	return inquiryDocument{
		Type:          "inquiry",
		Name:          inq.Name,
		Email:         inq.Email,
		Phone:         inq.Phone,
		Subject:       inq.Subject,
		Message:       inq.Message,
		PropertyID:    inq.ListingID,
		PropertyTitle: inq.ListingTitle,
		InquiryType:   inq.Type,
		Status:        inq.Status,
		SubmittedAt:   inq.SubmittedAt.Format(time.RFC3339),
	}
}
