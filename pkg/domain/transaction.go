package domain

import (
	"encoding/json"
)

// Type is the direction of a payment, from the dashboard owner's view.
type Type string

const (
	Sent     Type = "sent"
	Received Type = "received"
)

// Status is the lifecycle state of a transaction.
type Status string

const (
	Pending   Status = "pending"
	Completed Status = "completed"
	Failed    Status = "failed"
)

// Valid reports if s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case Pending, Completed, Failed:
		return true
	}
	return false
}

// Gateway is a display tag only, no gateway is ever contacted.
type Gateway string

const (
	Paystack    Gateway = "paystack"
	Stripe      Gateway = "stripe"
	Flutterwave Gateway = "flutterwave"
	PayPal      Gateway = "paypal"
)

type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

type Transaction struct {
	ID   string `json:"id"`
	Type Type   `json:"type"`

	Business string `json:"business"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Status   Status `json:"status"`

	// display stamps, set once at creation
	Date string `json:"date"`
	Time string `json:"time"`

	Reference string  `json:"reference"`
	Gateway   Gateway `json:"gateway,omitempty"`

	InvoiceID   string `json:"invoiceId,omitempty"`
	PaymentLink string `json:"paymentLink,omitempty"`

	IsRecurring        bool      `json:"isRecurring,omitempty"`
	RecurringFrequency Frequency `json:"recurringFrequency,omitempty"`

	Refundable     bool   `json:"refundable,omitempty"`
	RefundedAmount string `json:"refundedAmount,omitempty"`
}

// IsRefundable returns if a refund may still be issued against t.
func (t *Transaction) IsRefundable() bool {
	return t.Refundable && t.Status == Completed && t.RefundedAmount == ""
}

// IsRefunded returns if a refund has already been recorded.
func (t *Transaction) IsRefunded() bool {
	return t.RefundedAmount != ""
}

func (t *Transaction) JSON() ([]byte, error) {
	return json.Marshal(t)
}
