package services

import (
	"projectmart_backend/internal/email"
	"projectmart_backend/internal/payments"
)

// ServiceContainer bundles the services the handlers depend on.
type ServiceContainer struct {
	SubmissionService SubmissionService
	ListingService    ListingQueryService
	AuthService       AuthService
	PaymentGateway    payments.Gateway
	EmailService      email.Provider
}
