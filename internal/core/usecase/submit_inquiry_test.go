package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-service/internal/core/domain"
)

func validSubmission() domain.InquirySubmission {
	return domain.InquirySubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Is this property still available?",
	}
}

func TestSubmitInquiry_Success(t *testing.T) {
	store := &fakeInquiryStore{createdID: "inq-1"}
	notifier := &fakeNotifier{}
	uc := NewSubmitInquiryUseCase(store, notifier)

	id, err := uc.Execute(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "inq-1" {
		t.Errorf("inquiry id = %q, want inq-1", id)
	}
	if !notifier.called || notifier.lastID != "inq-1" {
		t.Errorf("notifier not invoked with created id: called=%v id=%q", notifier.called, notifier.lastID)
	}
}

func TestSubmitInquiry_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *domain.InquirySubmission)
		wantField string
	}{
		{"missing name", func(s *domain.InquirySubmission) { s.Name = "  " }, "name"},
		{"missing email", func(s *domain.InquirySubmission) { s.Email = "" }, "email"},
		{"malformed email", func(s *domain.InquirySubmission) { s.Email = "not-an-email" }, "email"},
		{"email without tld", func(s *domain.InquirySubmission) { s.Email = "jane@host" }, "email"},
		{"missing message", func(s *domain.InquirySubmission) { s.Message = "" }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeInquiryStore{createdID: "inq-1"}
			uc := NewSubmitInquiryUseCase(store, &fakeNotifier{})

			s := validSubmission()
			tt.mutate(&s)

			_, err := uc.Execute(context.Background(), s)
			validationErr, ok := domain.AsValidationError(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", validationErr.Field, tt.wantField)
			}
			// Невалидный ввод не должен доходить до записи.
			if store.received != nil {
				t.Error("invalid submission reached the store")
			}
		})
	}
}

func TestSubmitInquiry_StoreFailureSurfaces(t *testing.T) {
	store := &fakeInquiryStore{createErr: domain.ErrStoreUnavailable}
	notifier := &fakeNotifier{}
	uc := NewSubmitInquiryUseCase(store, notifier)

	_, err := uc.Execute(context.Background(), validSubmission())
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected store error to surface, got %v", err)
	}
	if notifier.called {
		t.Error("notifier must not fire when the save failed")
	}
}

// Сбой публикации события не проваливает запрос: заявка уже сохранена,
// повторная отправка формы создала бы дубликат.
func TestSubmitInquiry_NotifierFailureIsAbsorbed(t *testing.T) {
	store := &fakeInquiryStore{createdID: "inq-2"}
	notifier := &fakeNotifier{err: errors.New("broker down")}
	uc := NewSubmitInquiryUseCase(store, notifier)

	id, err := uc.Execute(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("publish failure must not fail the request: %v", err)
	}
	if id != "inq-2" {
		t.Errorf("inquiry id = %q", id)
	}
}

func TestSubmitInquiry_DerivesTypeAndSubject(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(s *domain.InquirySubmission)
		wantType    string
		wantSubject string
	}{
		{
			name:        "general inquiry without listing",
			mutate:      func(s *domain.InquirySubmission) {},
			wantType:    domain.InquiryTypeGeneral,
			wantSubject: "General Inquiry",
		},
		{
			name: "listing page inquiry",
			mutate: func(s *domain.InquirySubmission) {
				s.ListingID = "listing-1"
				s.ListingTitle = "Victorian terrace"
			},
			wantType:    domain.InquiryTypeInfo,
			wantSubject: "Inquiry about Victorian terrace",
		},
		{
			name: "explicit subject wins",
			mutate: func(s *domain.InquirySubmission) {
				s.Subject = "Viewing request"
				s.ListingID = "listing-1"
				s.ListingTitle = "Victorian terrace"
			},
			wantType:    domain.InquiryTypeInfo,
			wantSubject: "Viewing request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeInquiryStore{createdID: "inq-1"}
			uc := NewSubmitInquiryUseCase(store, &fakeNotifier{})

			s := validSubmission()
			tt.mutate(&s)

			if _, err := uc.Execute(context.Background(), s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if store.received == nil {
				t.Fatal("inquiry did not reach the store")
			}
			if store.received.Type != tt.wantType {
				t.Errorf("type = %q, want %q", store.received.Type, tt.wantType)
			}
			if store.received.Subject != tt.wantSubject {
				t.Errorf("subject = %q, want %q", store.received.Subject, tt.wantSubject)
			}
			if store.received.Status != domain.InquiryStatusNew {
				t.Errorf("status = %q, want %q", store.received.Status, domain.InquiryStatusNew)
			}
		})
	}
}
