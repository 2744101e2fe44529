package rest

import (
	"encoding/json"
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

type InquiryHandler struct {
	submitInquiryUC usecases_port.SubmitInquiryUseCase
}

func NewInquiryHandler(submitInquiryUC usecases_port.SubmitInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{submitInquiryUC: submitInquiryUC}
}

// SubmitInquiry обрабатывает POST /api/v1/inquiries.
// В отличие от путей чтения, сбой здесь не прячется: пользователь должен
// знать, что его заявка не сохранилась.
func (h *InquiryHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "SubmitInquiry",
		"listing_id": req.PropertyID,
	})
	handlerLogger.Debug("Processing inquiry submission", nil)

	submission := domain.InquirySubmission{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Subject:      req.Subject,
		Message:      req.Message,
		ListingID:    req.PropertyID,
		ListingTitle: req.PropertyTitle,
	}

	inquiryID, err := h.submitInquiryUC.Execute(r.Context(), submission)
	if err != nil {
		if validationErr, ok := domain.AsValidationError(err); ok {
			WriteJSONError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError,
			"Failed to submit inquiry. Please try again or contact us directly.")
		return
	}

	handlerLogger.Info("Inquiry submitted", port.Fields{"inquiry_id": inquiryID})
	RespondWithJSON(w, http.StatusOK, InquiryResponse{
		InquiryID: inquiryID,
		Message:   "Thank you for your inquiry. We will get back to you shortly.",
	})
}
