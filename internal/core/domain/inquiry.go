package domain

import "time"

// Типы и статусы заявок. Заявка создается этим сервисом и больше
// никогда им не читается - обрабатывают ее менеджеры через админку.
const (
	InquiryTypeGeneral = "general"
	InquiryTypeViewing = "viewing"
	InquiryTypeInfo    = "info"

	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

// InquirySubmission - данные формы обратной связи до валидации.
type InquirySubmission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string

	// Заполняются, только если форма отправлена со страницы объявления.
	ListingID    string
	ListingTitle string
}

// Inquiry - заявка, готовая к записи в контент-хранилище.
type Inquiry struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string

	ListingID    string
	ListingTitle string

	Type        string
	Status      string
	SubmittedAt time.Time
}
