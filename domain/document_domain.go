package domain

import "errors"

var (
	MessageSuccessGetReceipt  = "receipt generated successfully"
	MessageSuccessSendReceipt = "receipt sent successfully"
	MessageSuccessGetChart    = "chart generated successfully"

	MessageFailedGetReceipt  = "failed to generate receipt"
	MessageFailedSendReceipt = "failed to send receipt"
	MessageFailedGetChart    = "failed to generate chart"

	ErrMailNotConfigured = errors.New("smtp is not configured")
	ErrNothingToChart    = errors.New("no data to chart")
)

// VAT rate applied on receipts, as on the original boleta.
const ReceiptIVARate = 0.19

type (
	SendReceiptRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
