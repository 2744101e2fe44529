package sanity

import (
	"context"
	"fmt"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// InquiryStoreAdapter - путь записи: заявки создаются мутацией create
// в том же датасете, что и объявления.
type InquiryStoreAdapter struct {
	client *Client
}

func NewInquiryStoreAdapter(client *Client) *InquiryStoreAdapter {
	return &InquiryStoreAdapter{client: client}
}

// CreateInquiry создает документ заявки и возвращает его идентификатор.
func (a *InquiryStoreAdapter) CreateInquiry(ctx context.Context, inquiry domain.Inquiry) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storeLogger := logger.WithFields(port.Fields{
		"component": "InquiryStoreAdapter",
		"method":    "CreateInquiry",
	})

	mutations := []interface{}{
		map[string]interface{}{"create": toInquiryDocument(inquiry)},
	}

	result, err := a.client.Mutate(ctx, mutations)
	if err != nil {
		storeLogger.Error("Failed to create inquiry document", err, nil)
		return "", fmt.Errorf("failed to create inquiry document: %w", err)
	}
	if len(result.Results) == 0 {
		return "", fmt.Errorf("inquiry mutation returned no document ids (transaction %s)", result.TransactionID)
	}

	inquiryID := result.Results[0].ID
	storeLogger.Info("Inquiry document created", port.Fields{"inquiry_id": inquiryID})
	return inquiryID, nil
}
