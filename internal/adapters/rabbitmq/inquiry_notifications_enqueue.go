package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// InquiryCreatedDTO - событие для пайплайна уведомлений (email менеджерам).
type InquiryCreatedDTO struct {
	InquiryID     string `json:"inquiry_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Subject       string `json:"subject,omitempty"`
	Message       string `json:"message"`
	PropertyID    string `json:"property_id,omitempty"`
	PropertyTitle string `json:"property_title,omitempty"`
	InquiryType   string `json:"inquiry_type"`
	SubmittedAt   string `json:"submitted_at"`
}

// InquiryNotifierAdapter публикует событие о созданной заявке.
type InquiryNotifierAdapter struct {
	producer   *rabbitmq_producer.Publisher
	routingKey string
}

func NewInquiryNotifierAdapter(producer *rabbitmq_producer.Publisher, routingKey string) (*InquiryNotifierAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &InquiryNotifierAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

func (a *InquiryNotifierAdapter) NotifyInquiryCreated(ctx context.Context, inquiryID string, inquiry domain.Inquiry) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "InquiryNotifierAdapter",
		"routing_key": a.routingKey,
		"inquiry_id":  inquiryID,
	})

	dto := InquiryCreatedDTO{
		InquiryID:     inquiryID,
		Name:          inquiry.Name,
		Email:         inquiry.Email,
		Phone:         inquiry.Phone,
		Subject:       inquiry.Subject,
		Message:       inquiry.Message,
		PropertyID:    inquiry.ListingID,
		PropertyTitle: inquiry.ListingTitle,
		InquiryType:   inquiry.Type,
		SubmittedAt:   inquiry.SubmittedAt.Format(time.RFC3339),
	}

	body, _ := json.Marshal(dto)

	// Проверяем контракт до публикации: битое событие не должно уйти
	// в обменник, где его уже некому чинить.
	if err := contracts.ValidateEvent(constants.InquiryCreatedEventType, constants.InquiryCreatedEventVersion, body); err != nil {
		adapterLogger.Error("Event payload failed contract validation", err, nil)
		return fmt.Errorf("rabbitmq adapter: event contract validation failed: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Таймаут на операцию публикации, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	adapterLogger.Info("Publishing inquiry-created event", nil)
	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish inquiry-created event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish inquiry %s: %w", inquiryID, err)
	}

	adapterLogger.Info("Successfully published inquiry-created event", nil)
	return nil
}
