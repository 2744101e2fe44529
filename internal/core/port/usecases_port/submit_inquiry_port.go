package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type SubmitInquiryUseCase interface {
	Execute(ctx context.Context, submission domain.InquirySubmission) (string, error)
}
