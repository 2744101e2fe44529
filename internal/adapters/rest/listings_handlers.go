package rest

import (
	"net/http"
	"strconv"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"listing-service/internal/presenter"

	"github.com/go-chi/chi/v5"
)

// Размеры, которые запрашиваем у CDN изображений.
const (
	cardImageWidth   = 800
	cardImageHeight  = 600
	detailImageWidth = 1600
)

// ImageURLResolver строит публичные ссылки на изображения по ссылке
// на ассет. Реализуется адаптером контент-хранилища.
type ImageURLResolver interface {
	ImageURL(assetRef string, width, height int) string
}

type ListingsHandler struct {
	browseListingsUC      usecases_port.BrowseListingsUseCase
	getListingDetailsUC   usecases_port.GetListingDetailsUseCase
	getFeaturedListingsUC usecases_port.GetFeaturedListingsUseCase
	getListingCountsUC    usecases_port.GetListingCountsUseCase
	images                ImageURLResolver
}

func NewListingsHandler(
	browseListingsUC usecases_port.BrowseListingsUseCase,
	getListingDetailsUC usecases_port.GetListingDetailsUseCase,
	getFeaturedListingsUC usecases_port.GetFeaturedListingsUseCase,
	getListingCountsUC usecases_port.GetListingCountsUseCase,
	images ImageURLResolver) *ListingsHandler {
	return &ListingsHandler{
		browseListingsUC:      browseListingsUC,
		getListingDetailsUC:   getListingDetailsUC,
		getFeaturedListingsUC: getFeaturedListingsUC,
		getListingCountsUC:    getListingCountsUC,
		images:                images,
	}
}

// BrowseListings обрабатывает GET /api/v1/listings.
// Сбой чтения не показывается пользователю каталога: отдаем пустую
// страницу со статусом 200, подробности остаются в логах.
func (h *ListingsHandler) BrowseListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(query.Get("perPage"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	limit := perPage
	offset := (page - 1) * perPage

	filter := parseListingFilter(query)

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "BrowseListings",
		"page":     page,
		"per_page": perPage,
	})
	handlerLogger.Debug("Processing request to browse listings", nil)

	result, err := h.browseListingsUC.Execute(r.Context(), filter, limit, offset)
	if err != nil {
		handlerLogger.Error("Use case failed, returning empty page", err, nil)
		RespondWithJSON(w, http.StatusOK, PaginatedListingsResponse{
			Total:   0,
			Page:    page,
			PerPage: perPage,
			Data:    []ListingCardResponse{},
		})
		return
	}

	handlerLogger.Info("Successfully found listings", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Listings),
	})

	response := PaginatedListingsResponse{
		Total:   result.TotalCount,
		Page:    result.CurrentPage,
		PerPage: result.ItemsPerPage,
		Data:    make([]ListingCardResponse, len(result.Listings)),
	}
	for i, listing := range result.Listings {
		response.Data[i] = h.toCardResponse(listing)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetListingDetails обрабатывает GET /api/v1/listings/{slug}.
func (h *ListingsHandler) GetListingDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	slug := chi.URLParam(r, "slug")

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetListingDetails",
		"slug":    slug,
	})
	handlerLogger.Debug("Processing request to get listing details", nil)

	details, err := h.getListingDetailsUC.Execute(r.Context(), slug)
	if err != nil {
		// Для пользователя нет разницы между "не найдено" и сбоем
		// хранилища - и то и другое показывается как отсутствующая страница.
		handlerLogger.Warn("Listing details unavailable", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusNotFound, "Listing not found")
		return
	}

	handlerLogger.Info("Successfully found listing details", port.Fields{
		"similar_count": len(details.Similar),
	})

	RespondWithJSON(w, http.StatusOK, h.toDetailsResponse(*details))
}

// GetFeaturedListings обрабатывает GET /api/v1/listings/featured.
func (h *ListingsHandler) GetFeaturedListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetFeaturedListings",
	})
	handlerLogger.Debug("Processing request to get featured listings", nil)

	listings, err := h.getFeaturedListingsUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed, returning empty set", err, nil)
		RespondWithJSON(w, http.StatusOK, FeaturedListingsResponse{Data: []ListingCardResponse{}})
		return
	}

	response := FeaturedListingsResponse{
		Data: make([]ListingCardResponse, len(listings)),
	}
	for i, listing := range listings {
		response.Data[i] = h.toCardResponse(listing)
	}

	handlerLogger.Info("Successfully found featured listings", port.Fields{"count": len(listings)})
	RespondWithJSON(w, http.StatusOK, response)
}

// GetListingCounts обрабатывает GET /api/v1/listings/counts.
func (h *ListingsHandler) GetListingCounts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetListingCounts",
	})

	counts, err := h.getListingCountsUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed, returning zero counts", err, nil)
		RespondWithJSON(w, http.StatusOK, ListingCountsResponse{})
		return
	}

	RespondWithJSON(w, http.StatusOK, ListingCountsResponse{
		Total:   counts.Total,
		ForSale: counts.ForSale,
		ForRent: counts.ForRent,
	})
}

func (h *ListingsHandler) toCardResponse(listing domain.Listing) ListingCardResponse {
	imageURL := ""
	if len(listing.Images) > 0 {
		imageURL = h.images.ImageURL(listing.Images[0].AssetRef, cardImageWidth, cardImageHeight)
	}

	return ListingCardResponse{
		ID:           listing.ID,
		Title:        listing.Title,
		Slug:         listing.Slug,
		PropertyType: listing.Category,
		Status:       listing.Status,
		Price:        listing.Price,
		Currency:     listing.Currency,
		PriceDisplay: presenter.FormatPrice(listing.Price, listing.Currency),
		Location: LocationResponse{
			City:   listing.Location.City,
			County: listing.Location.County,
		},
		Bedrooms:    listing.Bedrooms,
		Bathrooms:   listing.Bathrooms,
		Area:        listing.Area,
		AreaDisplay: presenter.FormatArea(listing.Area) + " sq ft",
		ImageURL:    imageURL,
		Featured:    listing.Featured,
		PublishedAt: listing.PublishedAt,
	}
}

func (h *ListingsHandler) toDetailsResponse(details domain.ListingDetails) ListingDetailsResponse {
	listing := details.Listing

	images := make([]ImageResponse, len(listing.Images))
	for i, img := range listing.Images {
		images[i] = ImageResponse{
			URL:     h.images.ImageURL(img.AssetRef, detailImageWidth, 0),
			Alt:     img.Alt,
			Caption: img.Caption,
		}
	}

	similar := make([]ListingCardResponse, len(details.Similar))
	for i, s := range details.Similar {
		similar[i] = h.toCardResponse(s)
	}

	return ListingDetailsResponse{
		ID:           listing.ID,
		Title:        listing.Title,
		Slug:         listing.Slug,
		PropertyType: listing.Category,
		Status:       listing.Status,
		Price:        listing.Price,
		Currency:     listing.Currency,
		PriceDisplay: presenter.FormatPrice(listing.Price, listing.Currency),
		Description:  listing.Description,
		Location: LocationResponse{
			Address:  listing.Location.Address,
			City:     listing.Location.City,
			County:   listing.Location.County,
			Postcode: listing.Location.Postcode,
			Country:  listing.Location.Country,
		},
		Bedrooms:       listing.Bedrooms,
		Bathrooms:      listing.Bathrooms,
		Area:           listing.Area,
		AreaDisplay:    presenter.FormatArea(listing.Area) + " sq ft",
		Images:         images,
		Features:       listing.Features,
		YearBuilt:      listing.YearBuilt,
		Parking:        listing.ParkingSpaces,
		VirtualTourURL: listing.VirtualTourURL,
		Featured:       listing.Featured,
		PublishedAt:    listing.PublishedAt,
		Similar:        similar,
	}
}
