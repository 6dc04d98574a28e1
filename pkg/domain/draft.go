package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidDraft  = errors.New("invalid transaction draft")
	ErrInvalidAmount = errors.New("invalid amount")
)

var validate = validator.New()

// Draft is everything a caller supplies for a new transaction. ID,
// reference, status and the date/time stamps are assigned by the ledger.
type Draft struct {
	Type     Type    `json:"type" validate:"required,oneof=sent received"`
	Business string  `json:"business" validate:"required"`
	Amount   string  `json:"amount" validate:"required"`
	Currency string  `json:"currency" validate:"required,max=8"`
	Gateway  Gateway `json:"gateway,omitempty" validate:"omitempty,oneof=paystack stripe flutterwave paypal"`

	InvoiceID   string `json:"invoiceId,omitempty"`
	PaymentLink string `json:"paymentLink,omitempty"`

	IsRecurring        bool      `json:"isRecurring,omitempty"`
	RecurringFrequency Frequency `json:"recurringFrequency,omitempty" validate:"omitempty,oneof=daily weekly monthly yearly"`

	Refundable     bool   `json:"refundable,omitempty"`
	RefundedAmount string `json:"refundedAmount,omitempty"`
}

// Validate checks field values and rejects combinations that make no sense,
// eg. a refund recorded against something that was never refundable.
func (d *Draft) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidDraft)
	}

	if d.IsRecurring && d.RecurringFrequency == "" {
		return fmt.Errorf("%w: recurring payment needs a frequency", ErrInvalidDraft)
	}
	if !d.IsRecurring && d.RecurringFrequency != "" {
		return fmt.Errorf("%w: frequency set on a one-off payment", ErrInvalidDraft)
	}

	if d.RefundedAmount != "" {
		if !d.Refundable {
			return fmt.Errorf("%w: refunded amount set on a non refundable transaction", ErrInvalidDraft)
		}
		refunded, err := ParseAmount(d.RefundedAmount)
		if err != nil {
			return fmt.Errorf("%w: refunded %v", ErrInvalidDraft, err)
		}
		if refunded.GreaterThan(amount) {
			return fmt.Errorf("%w: refund exceeds amount", ErrInvalidDraft)
		}
	}

	return nil
}

// Build validates d and returns a transaction with the caller fields filled
// in and amounts normalised. The derived fields are left empty.
func (d *Draft) Build() (*Transaction, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	amount, _ := NormalizeAmount(d.Amount)
	refunded := ""
	if d.RefundedAmount != "" {
		refunded, _ = NormalizeAmount(d.RefundedAmount)
	}

	return &Transaction{
		Type:               d.Type,
		Business:           d.Business,
		Amount:             amount,
		Currency:           d.Currency,
		Gateway:            d.Gateway,
		InvoiceID:          d.InvoiceID,
		PaymentLink:        d.PaymentLink,
		IsRecurring:        d.IsRecurring,
		RecurringFrequency: d.RecurringFrequency,
		Refundable:         d.Refundable,
		RefundedAmount:     refunded,
	}, nil
}
