package usecase

import "errors"

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")

	ErrNoItems          = errors.New("no items provided")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidItem      = errors.New("invalid item")
	ErrPreferenceFailed = errors.New("failed to create preference")

	ErrPayerEmailRequired   = errors.New("payerEmail is required")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrIncompletePlan       = errors.New("missing subscription details: reason, transactionAmount, frequency and frequencyType are required")
	ErrInvalidFrequencyType = errors.New("frequencyType must be days or months")
	ErrSubscriptionFailed   = errors.New("failed to create subscription")

	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrJournalDisabled  = errors.New("event journal not configured")
)

// IsValidationError reports whether err was caused by the caller's input
// rather than by the provider or a callback.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrNoItems, ErrProductNotFound, ErrInvalidItem,
		ErrPayerEmailRequired, ErrPlanNotFound, ErrIncompletePlan, ErrInvalidFrequencyType,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
