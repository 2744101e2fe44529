package constants

// Обменник для событий заявок
const (
	InquiryExchange     = "inquiry_events"
	InquiryExchangeType = "direct"
)

// Ключи маршрутизации
const (
	RoutingKeyInquiryCreated = "notify.inquiry.created"
)

// Метаданные контракта события
const (
	InquiryCreatedEventType    = "InquiryCreatedEvent"
	InquiryCreatedEventVersion = "1.0.0"
)
