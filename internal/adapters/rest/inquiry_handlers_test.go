package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"listing-service/internal/core/domain"
)

type fakeSubmitInquiryUC struct {
	id       string
	err      error
	received *domain.InquirySubmission
}

func (f *fakeSubmitInquiryUC) Execute(ctx context.Context, submission domain.InquirySubmission) (string, error) {
	f.received = &submission
	return f.id, f.err
}

func postInquiry(t *testing.T, handler *InquiryHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitInquiry(rec, req)
	return rec
}

func TestSubmitInquiryHandler_Success(t *testing.T) {
	uc := &fakeSubmitInquiryUC{id: "inq-1"}
	handler := NewInquiryHandler(uc)

	rec := postInquiry(t, handler, `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"message": "Is this still available?",
		"propertyId": "listing-1",
		"propertyTitle": "Victorian terrace"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp InquiryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.InquiryID != "inq-1" {
		t.Errorf("inquiryId = %q", resp.InquiryID)
	}
	if resp.Message == "" {
		t.Error("confirmation message is empty")
	}

	if uc.received == nil || uc.received.ListingID != "listing-1" {
		t.Errorf("submission not mapped: %+v", uc.received)
	}
}

func TestSubmitInquiryHandler_ValidationError(t *testing.T) {
	uc := &fakeSubmitInquiryUC{
		err: &domain.ValidationError{Field: "email", Message: "please provide a valid email address"},
	}
	handler := NewInquiryHandler(uc)

	rec := postInquiry(t, handler, `{"name": "Jane", "email": "bad", "message": "hi"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "valid email address") {
		t.Errorf("error body must name the problem: %s", rec.Body.String())
	}
}

func TestSubmitInquiryHandler_StoreFailure(t *testing.T) {
	uc := &fakeSubmitInquiryUC{err: errors.New("mutate returned status 503")}
	handler := NewInquiryHandler(uc)

	rec := postInquiry(t, handler, `{"name": "Jane", "email": "jane@example.com", "message": "hi"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	// Пользователь получает общее сообщение с советом, а не детали сбоя.
	body := rec.Body.String()
	if strings.Contains(body, "503") {
		t.Errorf("internal details leaked to the client: %s", body)
	}
	if !strings.Contains(body, "try again") {
		t.Errorf("expected retry advice in the body: %s", body)
	}
}

func TestSubmitInquiryHandler_MalformedBody(t *testing.T) {
	uc := &fakeSubmitInquiryUC{id: "inq-1"}
	handler := NewInquiryHandler(uc)

	rec := postInquiry(t, handler, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if uc.received != nil {
		t.Error("malformed body must not reach the use case")
	}
}
