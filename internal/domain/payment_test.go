package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-warden-backend/internal/model"
)

func TestRecordPayment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	room := seedRoom(t, svc, model.Room{ID: "r1", Number: "A-101"})

	student, err := svc.AllocateStudent(ctx, validAllocation(room.ID))
	require.NoError(t, err)
	require.Equal(t, model.PaymentUnpaid, student.PaymentStatus)

	payment, err := svc.RecordPayment(ctx, PaymentInput{
		StudentID:     student.ID,
		Amount:        30000,
		TransactionID: "TXN-2025-001",
		Method:        "UPI",
	})
	require.NoError(t, err)

	assert.Equal(t, 30000, payment.Amount)
	assert.Equal(t, model.PaymentHostelFee, payment.Type, "type defaults to hostel fee")
	assert.Equal(t, "Paid", payment.Status)

	got, err := svc.Store().StudentByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, "TXN-2025-001", got.PaymentDetails.TransactionID)
	assert.Equal(t, 30000, got.PaymentDetails.PaidAmount)
	require.NotNil(t, got.PaymentDetails.PaidDate)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	// The ledger and the student record move together.
	payments := svc.Store().Payments(ctx)
	require.Len(t, payments, 1)
	assert.Equal(t, student.ID, payments[0].StudentID)

	recentActivity(t, svc, model.ActivityPaymentReceived)
}

func TestRecordPayment_Validation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RecordPayment(context.Background(), PaymentInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "studentId")
	assert.Contains(t, verr.Fields, "amount")
	assert.Contains(t, verr.Fields, "transactionId")
}

func TestRecordPayment_UnknownStudent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RecordPayment(context.Background(), PaymentInput{
		StudentID:     "missing",
		Amount:        1000,
		TransactionID: "TXN-1",
	})
	assert.Error(t, err)

	// A failed payment must not reach the ledger.
	assert.Empty(t, svc.Store().Payments(context.Background()))
}
