package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// InquiryNotifierPort - исходящий порт уведомлений о новых заявках.
// За портом стоит внешний пайплайн рассылки (email и т.п.); сбой публикации
// не должен проваливать уже успешно сохраненную заявку.
type InquiryNotifierPort interface {
	NotifyInquiryCreated(ctx context.Context, inquiryID string, inquiry domain.Inquiry) error
}
