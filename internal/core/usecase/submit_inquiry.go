package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// Базовая проверка вида local@domain.tld - ровно такая же, как на фронте,
// чтобы серверная валидация не была строже клиентской.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmitInquiryUseCase инкапсулирует путь записи заявки: валидация,
// создание документа в контент-хранилище, публикация события для
// пайплайна уведомлений.
type SubmitInquiryUseCase struct {
	store    port.InquiryStorePort
	notifier port.InquiryNotifierPort
}

func NewSubmitInquiryUseCase(store port.InquiryStorePort, notifier port.InquiryNotifierPort) *SubmitInquiryUseCase {
	return &SubmitInquiryUseCase{
		store:    store,
		notifier: notifier,
	}
}

// Execute валидирует заявку и создает ее в хранилище. Невалидный ввод
// никогда не доходит до записи. Возвращает идентификатор созданной заявки.
func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, submission domain.InquirySubmission) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "SubmitInquiry",
		"listing_id": submission.ListingID,
	})

	ucLogger.Info("Use case started", nil)

	if err := validateSubmission(submission); err != nil {
		ucLogger.Warn("Submission rejected by validation", port.Fields{"error": err.Error()})
		return "", err
	}

	inquiry := toInquiry(submission)

	inquiryID, err := uc.store.CreateInquiry(ctx, inquiry)
	if err != nil {
		ucLogger.Error("Content store returned an error during create", err, nil)
		return "", fmt.Errorf("failed to create inquiry: %w", err)
	}

	// Публикуем событие, но не проваливаем запрос при сбое: заявка уже
	// сохранена, и повторная отправка формы создала бы дубликат.
	if err := uc.notifier.NotifyInquiryCreated(ctx, inquiryID, inquiry); err != nil {
		ucLogger.Error("Failed to publish inquiry-created event after successful save", err, nil)
	}

	ucLogger.Info("Use case finished: inquiry created", port.Fields{"inquiry_id": inquiryID})
	return inquiryID, nil
}

func validateSubmission(s domain.InquirySubmission) error {
	if strings.TrimSpace(s.Name) == "" {
		return &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(s.Email) == "" {
		return &domain.ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(s.Email) {
		return &domain.ValidationError{Field: "email", Message: "please provide a valid email address"}
	}
	if strings.TrimSpace(s.Message) == "" {
		return &domain.ValidationError{Field: "message", Message: "message is required"}
	}
	return nil
}

func toInquiry(s domain.InquirySubmission) domain.Inquiry {
	inquiryType := domain.InquiryTypeGeneral
	if s.ListingID != "" {
		inquiryType = domain.InquiryTypeInfo
	}

	subject := s.Subject
	if subject == "" {
		if s.ListingTitle != "" {
			subject = "Inquiry about " + s.ListingTitle
		} else {
			subject = "General Inquiry"
		}
	}

	return domain.Inquiry{
		Name:         strings.TrimSpace(s.Name),
		Email:        strings.TrimSpace(s.Email),
		Phone:        strings.TrimSpace(s.Phone),
		Subject:      subject,
		Message:      strings.TrimSpace(s.Message),
		ListingID:    s.ListingID,
		ListingTitle: s.ListingTitle,
		Type:         inquiryType,
		Status:       domain.InquiryStatusNew,
		SubmittedAt:  time.Now().UTC(),
	}
}
