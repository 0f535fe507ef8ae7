package model

import "time"

// PaymentType classifies what a payment covers.
type PaymentType string

const (
	PaymentHostelFee       PaymentType = "Hostel Fee"
	PaymentSecurityDeposit PaymentType = "Security Deposit"
)

// Payment is a recorded fee transaction for a student.
type Payment struct {
	ID            string      `json:"id"`
	StudentID     string      `json:"studentId"`
	Amount        int         `json:"amount"`
	Type          PaymentType `json:"type"`
	TransactionID string      `json:"transactionId"`
	Status        string      `json:"status"` // "Paid" or "Pending"
	Date          time.Time   `json:"date"`
	Method        string      `json:"method,omitempty"`
	Timestamps
}
