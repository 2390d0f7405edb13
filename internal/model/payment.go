package model

import "strings"

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentAwaitingCheck PaymentStatus = "pending_confirmation"
	PaymentCompleted     PaymentStatus = "completed"
	PaymentRejected      PaymentStatus = "rejected"
)

type Payment struct {
	ID              int           `json:"id"`
	EventTitle      string        `json:"event_title"`
	UserName        string        `json:"user_name,omitempty"`
	UserEmail       string        `json:"user_email,omitempty"`
	AmountPaid      Rupiah        `json:"amount_paid"`
	Status          PaymentStatus `json:"payment_status"`
	ProofURL        string        `json:"payment_proof_url,omitempty"`
	Notes           string        `json:"payment_notes,omitempty"`
	ConfirmedByName string        `json:"confirmed_by_name,omitempty"`
	PaymentDate     string        `json:"payment_date,omitempty"`
}

// Confirmation is the admin verdict on a submitted proof. Status is
// "approve" or "reject".
type Confirmation struct {
	Status string `json:"status" validate:"required,oneof=approve reject"`
	Notes  string `json:"notes" validate:"max=500"`
}

// Label renders the status the way the dashboard shows it.
func (s PaymentStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}
