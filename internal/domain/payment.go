package domain

import (
	"context"
	"fmt"
	"time"

	"hostel-warden-backend/internal/model"
)

// PaymentInput describes a fee payment being recorded.
type PaymentInput struct {
	StudentID     string            `json:"studentId"`
	Amount        int               `json:"amount"`
	Type          model.PaymentType `json:"type"`
	TransactionID string            `json:"transactionId"`
	Method        string            `json:"method"`
}

// RecordPayment marks the student as paid and appends a payment record.
// Both writes happen on every call so the student's paymentDetails and the
// payment ledger cannot drift apart.
func (s *Service) RecordPayment(ctx context.Context, in PaymentInput) (model.Payment, error) {
	var verr ValidationError
	if in.StudentID == "" {
		verr.add("studentId", "student is required")
	}
	if in.Amount <= 0 {
		verr.add("amount", "amount must be positive")
	}
	if in.TransactionID == "" {
		verr.add("transactionId", "transaction id is required")
	}
	if err := verr.orNil(); err != nil {
		return model.Payment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if err := s.store.UpdateStudent(ctx, in.StudentID, func(st *model.Student) {
		st.PaymentStatus = model.PaymentPaid
		st.PaymentDetails = model.PaymentDetails{
			TransactionID: in.TransactionID,
			PaidAmount:    in.Amount,
			PaidDate:      &now,
		}
	}); err != nil {
		return model.Payment{}, fmt.Errorf("student %s: %w", in.StudentID, err)
	}

	paymentType := in.Type
	if paymentType == "" {
		paymentType = model.PaymentHostelFee
	}
	payment := model.Payment{
		ID:            newID(),
		StudentID:     in.StudentID,
		Amount:        in.Amount,
		Type:          paymentType,
		TransactionID: in.TransactionID,
		Status:        "Paid",
		Date:          now,
		Method:        in.Method,
		Timestamps:    stamp(now),
	}
	if err := s.store.AddPayment(ctx, payment); err != nil {
		return model.Payment{}, err
	}

	s.logActivity(ctx, model.ActivityPaymentReceived,
		fmt.Sprintf("payment of %d received (txn %s)", in.Amount, in.TransactionID),
		in.StudentID)
	return payment, nil
}
