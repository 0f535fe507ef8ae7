package domain

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

// A helper function to create a service over a throwaway sqlite store.
func newTestService(t *testing.T) *Service {
	dsn := filepath.Join(t.TempDir(), "test.db")
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.Collection{}))
	return NewService(store.New(gormDB), nil)
}

func seedRoom(t *testing.T, svc *Service, room model.Room) model.Room {
	if room.Status == "" {
		room.Status = model.RoomEmpty
	}
	if room.Capacity == "" {
		room.Capacity = model.CapacityDouble
	}
	require.NoError(t, svc.Store().AddRoom(context.Background(), room))
	return room
}

func validAllocation(roomID string) AllocationInput {
	return AllocationInput{
		FullName:     "Rajesh Kumar",
		RollNumber:   "CSE1001",
		Class:        "CSE",
		Semester:     4,
		Session:      "2024-25",
		Email:        "rajesh.kumar@example.edu",
		MobileNumber: "9876543210",
		RoomID:       roomID,
		BedNumber:    1,
	}
}

// recentActivity asserts the newest log entry has the given type.
func recentActivity(t *testing.T, svc *Service, typ model.ActivityType) model.Activity {
	activities := svc.Store().Activities(context.Background())
	require.NotEmpty(t, activities, "expected an activity log entry")
	last := activities[len(activities)-1]
	require.Equal(t, typ, last.Type)
	require.False(t, last.Timestamp.IsZero())
	require.WithinDuration(t, time.Now().UTC(), last.Timestamp, time.Minute)
	return last
}
