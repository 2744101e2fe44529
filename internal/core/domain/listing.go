package domain

import "time"

// Статусы объявления. Значения совпадают со значениями поля status
// в документах контент-хранилища.
const (
	StatusForSale = "for-sale"
	StatusForRent = "for-rent"
	StatusSold    = "sold"
	StatusRented  = "rented"
)

// Категории недвижимости.
const (
	CategoryHouse      = "house"
	CategoryApartment  = "apartment"
	CategoryCondo      = "condo"
	CategoryTownhouse  = "townhouse"
	CategoryLand       = "land"
	CategoryCommercial = "commercial"
)

// Валюты. GBP — валюта по умолчанию.
const (
	CurrencyUSD = "USD"
	CurrencyGBP = "GBP"
	CurrencyEUR = "EUR"
)

// ValidStatuses и ValidCategories используются нормализатором фильтров:
// неизвестные значения отбрасываются, а не приводят к ошибке.
var (
	ValidStatuses   = []string{StatusForSale, StatusForRent, StatusSold, StatusRented}
	ValidCategories = []string{CategoryHouse, CategoryApartment, CategoryCondo, CategoryTownhouse, CategoryLand, CategoryCommercial}
)

// Location - структурированный адрес объявления.
type Location struct {
	Address  string
	City     string
	County   string // область/графство, опционально
	Postcode string
	Country  string
}

// ListingImage - ссылка на изображение в CDN контент-хранилища.
type ListingImage struct {
	AssetRef string // например "image-abc123def-1200x800-jpg"
	Alt      string
	Caption  string
}

// Listing - объявление о продаже/аренде. Сервис никогда не изменяет
// объявления: они создаются и редактируются через админку контент-хранилища.
// Инвариант: slug уникален, изображений как минимум одно.
type Listing struct {
	ID          string
	Title       string
	Slug        string
	Category    string
	Status      string
	Price       float64
	Currency    string
	Description string

	Location Location

	Bedrooms  int
	Bathrooms int
	Area      float64 // кв. футы

	Images   []ListingImage
	Features []string

	YearBuilt      *int
	ParkingSpaces  int
	VirtualTourURL string

	Featured    bool
	PublishedAt time.Time
}

// ListingDetails - результат запроса детальной страницы: само объявление
// плюс похожие предложения (та же категория, цена в пределах ±30%).
type ListingDetails struct {
	Listing Listing
	Similar []Listing
}

// ListingCounts - счетчики для главной страницы.
type ListingCounts struct {
	Total   int
	ForSale int
	ForRent int
}

// PaginatedListings - стандартная структура для ответа с пагинацией.
type PaginatedListings struct {
	Listings     []Listing
	TotalCount   int
	CurrentPage  int
	ItemsPerPage int
}

// IsValidStatus проверяет, что значение входит в перечисление статусов.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidCategory проверяет, что значение входит в перечисление категорий.
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
