package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// ListingStorePort - исходящий порт чтения объявлений из контент-хранилища.
// Хранилище внешнее и для нас read-only; запрос передается дескриптором,
// сериализацию в синтаксис хранилища выполняет адаптер.
type ListingStorePort interface {
	// FindListings возвращает объявления, удовлетворяющие запросу,
	// в заданном порядке. Пустой результат - не ошибка.
	FindListings(ctx context.Context, query domain.ListingQuery) ([]domain.Listing, error)

	// CountListings возвращает общее число объявлений, удовлетворяющих
	// предикатам запроса (срез выдачи игнорируется).
	CountListings(ctx context.Context, query domain.ListingQuery) (int, error)

	// CountListingsByStatus возвращает счетчики для главной страницы.
	CountListingsByStatus(ctx context.Context) (domain.ListingCounts, error)
}
