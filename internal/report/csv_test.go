package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-warden-backend/internal/model"
)

func TestMarshalCSV_NoData(t *testing.T) {
	_, err := MarshalCSV([]model.Activity{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestMarshalCSV_HeaderFromJSONTags(t *testing.T) {
	data, err := MarshalCSV([]model.Activity{{ID: "a1", Type: model.ActivityPaymentReceived}})
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,type,description,timestamp,relatedId", lines[0])
}

func TestMarshalCSV_MinimalQuoting(t *testing.T) {
	when := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	activities := []model.Activity{
		{
			ID:          "a1",
			Type:        model.ActivityComplaintFiled,
			Description: `noise, loud music and a "party"`,
			Timestamp:   when,
			RelatedID:   "c1",
		},
		{
			ID:          "a2",
			Type:        model.ActivityMenuUpdated,
			Description: "plain text stays unquoted",
			Timestamp:   when,
		},
	}

	data, err := MarshalCSV(activities)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `a1,Complaint Filed,"noise, loud music and a ""party""",2025-03-15T10:30:00Z,c1`, lines[1])
	assert.Equal(t, `a2,Menu Updated,plain text stays unquoted,2025-03-15T10:30:00Z,`, lines[2])
}

func TestMarshalCSV_FlattensEmbeddedTimestamps(t *testing.T) {
	when := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	payments := []model.Payment{
		{
			ID:            "p1",
			StudentID:     "s1",
			Amount:        30000,
			Type:          model.PaymentHostelFee,
			TransactionID: "TXN-1",
			Status:        "Paid",
			Date:          when,
			Method:        "UPI",
			Timestamps:    model.Timestamps{CreatedAt: when, UpdatedAt: when},
		},
	}

	data, err := MarshalCSV(payments)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "createdAt")
	assert.Contains(t, lines[0], "updatedAt")
	assert.Contains(t, lines[1], "30000")
	assert.Contains(t, lines[1], "2025-03-15T10:30:00Z")
}

func TestMarshalCSV_NilPointerAndZeroTime(t *testing.T) {
	complaints := []model.Complaint{
		{ID: "c1", Type: "Noise", Status: model.ComplaintPending},
	}

	data, err := MarshalCSV(complaints)
	require.NoError(t, err)

	row := strings.Split(string(data), "\n")[1]
	// Unset resolvedDate and zero reportedDate render as empty fields.
	assert.Contains(t, row, ",,")
	assert.NotContains(t, row, "0001-01-01")
}

func TestMarshalCSV_StructFieldsAsJSON(t *testing.T) {
	rooms := []model.Room{
		{
			ID:        "r1",
			Number:    "A-101",
			Capacity:  model.CapacityDouble,
			Amenities: model.Amenities{Fans: 1, Lights: 2, Beds: 2},
		},
	}

	data, err := MarshalCSV(rooms)
	require.NoError(t, err)

	row := strings.Split(string(data), "\n")[1]
	// Nested structs are embedded as JSON, which forces quoting.
	assert.Contains(t, row, `"{""fans"":1,`)
}
