package mercadopago

import (
	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase/interfaces"
)

type (
	Config        = entities.Config
	ProductConfig = entities.ProductConfig
	PlanConfig    = entities.PlanConfig
	FrequencyType = entities.FrequencyType
	EventHandler  = entities.EventHandler

	CheckoutRequest   = entities.CheckoutRequest
	CheckoutItem      = entities.CheckoutItem
	CheckoutResponse  = entities.CheckoutResponse
	SubscribeRequest  = entities.SubscribeRequest
	SubscribeResponse = entities.SubscribeResponse

	EventType           = entities.EventType
	Event               = entities.Event
	EventData           = entities.EventData
	AutoRecurring       = entities.AutoRecurring
	WebhookBody         = entities.WebhookBody
	WebhookNotification = entities.WebhookNotification

	Payment     = entities.Payment
	PreApproval = entities.PreApproval
)

// Extension points. Any implementation can be passed through the With* options.
type (
	Gateway        = interfaces.IPaymentGateway
	EventJournal   = interfaces.IEventRepository
	EventPublisher = interfaces.IEventPublisher
	WebhookDeduper = interfaces.IWebhookDeduper
)

const (
	FrequencyDays   = entities.FrequencyDays
	FrequencyMonths = entities.FrequencyMonths

	EventPaymentCreated     = entities.EventPaymentCreated
	EventPaymentApproved    = entities.EventPaymentApproved
	EventPaymentPending     = entities.EventPaymentPending
	EventPaymentInProcess   = entities.EventPaymentInProcess
	EventPaymentRejected    = entities.EventPaymentRejected
	EventPaymentCancelled   = entities.EventPaymentCancelled
	EventPaymentRefunded    = entities.EventPaymentRefunded
	EventPaymentChargedBack = entities.EventPaymentChargedBack

	EventSubscriptionAuthorized = entities.EventSubscriptionAuthorized
	EventSubscriptionPending    = entities.EventSubscriptionPending
	EventSubscriptionPaused     = entities.EventSubscriptionPaused
	EventSubscriptionCancelled  = entities.EventSubscriptionCancelled
)

// WebhookDataID builds the data object of a notification.
func WebhookDataID(id string) entities.WebhookData {
	return entities.WebhookData{ID: entities.ResourceID(id)}
}
