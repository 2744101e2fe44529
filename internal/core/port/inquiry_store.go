package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// InquiryStorePort - исходящий порт записи заявок. Единственная операция
// записи во всем сервисе; созданные заявки обратно не читаются.
type InquiryStorePort interface {
	// CreateInquiry создает документ заявки и возвращает идентификатор,
	// сгенерированный хранилищем.
	CreateInquiry(ctx context.Context, inquiry domain.Inquiry) (string, error)
}
