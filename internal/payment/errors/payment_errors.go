package paymenterrors

import (
	"net/http"

	"github.com/nitinco/nexsphere/internal/shared/apperror"
)

var (
	ErrInvalidSignature = apperror.New(
		apperror.CodeInvalidState,
		"Payment signature verification failed",
		http.StatusBadRequest,
	)
	ErrPaymentNotFound = apperror.New(
		apperror.CodeInvalidState,
		"No payment order found for the given order id",
		http.StatusBadRequest,
	)
	ErrPaymentAlreadyUsed = apperror.New(
		apperror.CodeConflict,
		"This payment has already funded an employer registration",
		http.StatusConflict,
	)
	ErrInvalidWebhookSignature = apperror.New(
		apperror.CodeInvalidState,
		"Webhook signature verification failed",
		http.StatusBadRequest,
	)
	ErrGatewayUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Payment gateway is unavailable, please retry",
		http.StatusInternalServerError,
	)
	ErrGatewayNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"Online payments are not enabled",
		http.StatusInternalServerError,
	)
)
