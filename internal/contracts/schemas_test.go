package contracts

import (
	"testing"
)

func TestValidateEvent_InquiryCreated(t *testing.T) {
	valid := []byte(`{
		"inquiry_id": "inq-1",
		"name": "Jane Doe",
		"email": "jane@example.com",
		"message": "Is this still available?",
		"inquiry_type": "info",
		"submitted_at": "2025-07-15T09:30:00Z"
	}`)

	if err := ValidateEvent("InquiryCreatedEvent", "1.0.0", valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestValidateEvent_RejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing required field", `{"inquiry_id": "inq-1", "name": "Jane"}`},
		{"unknown inquiry type", `{
			"inquiry_id": "inq-1",
			"name": "Jane Doe",
			"email": "jane@example.com",
			"message": "hi",
			"inquiry_type": "spam",
			"submitted_at": "2025-07-15T09:30:00Z"
		}`},
		{"unexpected extra field", `{
			"inquiry_id": "inq-1",
			"name": "Jane Doe",
			"email": "jane@example.com",
			"message": "hi",
			"inquiry_type": "general",
			"submitted_at": "2025-07-15T09:30:00Z",
			"admin": true
		}`},
		{"not json at all", `{broken`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateEvent("InquiryCreatedEvent", "1.0.0", []byte(tt.body)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateEvent_UnknownSchema(t *testing.T) {
	if err := ValidateEvent("NoSuchEvent", "1.0.0", []byte(`{}`)); err == nil {
		t.Error("expected error for unregistered schema")
	}
}
