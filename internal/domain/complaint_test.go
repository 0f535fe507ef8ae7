package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

func TestFileAndResolveComplaint(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	room := seedRoom(t, svc, model.Room{ID: "r1", Number: "A-101"})
	student, err := svc.AllocateStudent(ctx, validAllocation(room.ID))
	require.NoError(t, err)

	complaint, err := svc.FileComplaint(ctx, ComplaintInput{
		StudentID:   student.ID,
		Type:        "Noise",
		Description: "Loud music after midnight",
		Urgency:     model.PriorityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintPending, complaint.Status)
	assert.False(t, complaint.ReportedDate.IsZero())
	recentActivity(t, svc, model.ActivityComplaintFiled)

	require.NoError(t, svc.ResolveComplaint(ctx, complaint.ID, "Spoke to the occupants"))

	complaints := svc.Store().Complaints(ctx)
	require.Len(t, complaints, 1)
	assert.Equal(t, model.ComplaintResolved, complaints[0].Status)
	assert.Equal(t, "Spoke to the occupants", complaints[0].ResolutionNotes)
	require.NotNil(t, complaints[0].ResolvedDate)
	recentActivity(t, svc, model.ActivityComplaintResolved)

	// Resolved is terminal.
	assert.ErrorIs(t, svc.ResolveComplaint(ctx, complaint.ID, "again"), ErrInvalidTransition)
}

func TestFileComplaint_Validation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.FileComplaint(context.Background(), ComplaintInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "studentId")
	assert.Contains(t, verr.Fields, "type")
}

func TestFileComplaint_UnknownStudent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.FileComplaint(context.Background(), ComplaintInput{
		StudentID: "missing",
		Type:      "Safety",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
