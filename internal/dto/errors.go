package dto

import "errors"

var (
	ErrInternalFailure = errors.New("internal failure")
	ErrNotFound        = errors.New("not found")

	// Business-rule failures. Controllers map all of these to a rejected
	// request with the sentinel's message as the body.
	ErrRequestInvalid      = errors.New("request not valid")
	ErrEventNotFound       = errors.New("rs event not existed")
	ErrUserNotFound        = errors.New("user not existed")
	ErrBudgetExceeded      = errors.New("vote number exceeds user budget")
	ErrPaymentInsufficient = errors.New("Payment not enough")
	ErrInvalidIndex        = errors.New("invalid index")
)
