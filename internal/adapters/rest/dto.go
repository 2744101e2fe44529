package rest

import "time"

// LocationResponse - адрес в ответе API.
type LocationResponse struct {
	Address  string `json:"address,omitempty"`
	City     string `json:"city"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Country  string `json:"country,omitempty"`
}

// ListingCardResponse - DTO для карточки объявления в каталоге.
// PriceDisplay и AreaDisplay - готовые к показу строки, фронт их не
// форматирует сам.
type ListingCardResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Slug         string           `json:"slug"`
	PropertyType string           `json:"propertyType"`
	Status       string           `json:"status"`
	Price        float64          `json:"price"`
	Currency     string           `json:"currency"`
	PriceDisplay string           `json:"priceDisplay"`
	Location     LocationResponse `json:"location"`
	Bedrooms     int              `json:"bedrooms"`
	Bathrooms    int              `json:"bathrooms"`
	Area         float64          `json:"area"`
	AreaDisplay  string           `json:"areaDisplay"`
	ImageURL     string           `json:"imageUrl"`
	Featured     bool             `json:"featured"`
	PublishedAt  time.Time        `json:"publishedAt"`
}

// ImageResponse - изображение детальной страницы.
type ImageResponse struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// ListingDetailsResponse - DTO детальной страницы: полное объявление
// плюс похожие предложения.
type ListingDetailsResponse struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Slug           string                `json:"slug"`
	PropertyType   string                `json:"propertyType"`
	Status         string                `json:"status"`
	Price          float64               `json:"price"`
	Currency       string                `json:"currency"`
	PriceDisplay   string                `json:"priceDisplay"`
	Description    string                `json:"description"`
	Location       LocationResponse      `json:"location"`
	Bedrooms       int                   `json:"bedrooms"`
	Bathrooms      int                   `json:"bathrooms"`
	Area           float64               `json:"area"`
	AreaDisplay    string                `json:"areaDisplay"`
	Images         []ImageResponse       `json:"images"`
	Features       []string              `json:"features,omitempty"`
	YearBuilt      *int                  `json:"yearBuilt,omitempty"`
	Parking        int                   `json:"parking"`
	VirtualTourURL string                `json:"virtualTourUrl,omitempty"`
	Featured       bool                  `json:"featured"`
	PublishedAt    time.Time             `json:"publishedAt"`
	Similar        []ListingCardResponse `json:"similar"`
}

// PaginatedListingsResponse - страница каталога.
type PaginatedListingsResponse struct {
	Total   int                   `json:"total"`
	Page    int                   `json:"page"`
	PerPage int                   `json:"perPage"`
	Data    []ListingCardResponse `json:"data"`
}

// FeaturedListingsResponse - подборка для главной.
type FeaturedListingsResponse struct {
	Data []ListingCardResponse `json:"data"`
}

// ListingCountsResponse - счетчики для главной.
type ListingCountsResponse struct {
	Total   int `json:"total"`
	ForSale int `json:"forSale"`
	ForRent int `json:"forRent"`
}

// InquiryRequest - тело POST /inquiries.
type InquiryRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	PropertyID    string `json:"propertyId"`
	PropertyTitle string `json:"propertyTitle"`
}

// InquiryResponse - подтверждение успешной отправки.
type InquiryResponse struct {
	InquiryID string `json:"inquiryId"`
	Message   string `json:"message"`
}
