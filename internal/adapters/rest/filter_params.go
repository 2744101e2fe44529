package rest

import (
	"net/url"
	"strconv"
	"strings"

	"listing-service/internal/core/domain"
)

// Нормализатор параметров фильтра. Невалидное значение - это отсутствие
// значения, а не ошибка: битый query-параметр не должен ронять страницу
// каталога. Поэтому здесь нет возврата error.

// parseListingFilter переводит сырые query-параметры в типизированный
// фильтр. Неизвестные enum-значения, нечисловые и отрицательные числа,
// пустой текст локации молча отбрасываются.
func parseListingFilter(query url.Values) domain.ListingFilter {
	return domain.ListingFilter{
		Status:       parseEnum(query, "status", domain.IsValidStatus),
		Category:     parseEnum(query, "propertyType", domain.IsValidCategory),
		MinPrice:     parseNonNegativeInt(query, "minPrice"),
		MaxPrice:     parseNonNegativeInt(query, "maxPrice"),
		MinBedrooms:  parsePositiveInt(query, "bedrooms"),
		LocationText: strings.TrimSpace(query.Get("location")),
	}
}

func parseEnum(query url.Values, key string, isValid func(string) bool) string {
	value := strings.TrimSpace(query.Get(key))
	if value == "" || !isValid(value) {
		return ""
	}
	return value
}

func parseNonNegativeInt(query url.Values, key string) *int {
	value := strings.TrimSpace(query.Get(key))
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func parsePositiveInt(query url.Values, key string) *int {
	n := parseNonNegativeInt(query, key)
	if n == nil || *n == 0 {
		return nil
	}
	return n
}
