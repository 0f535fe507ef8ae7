package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-warden-backend/internal/model"
)

// A helper function to create a store backed by a throwaway sqlite file.
func newTestStore(t *testing.T) *Store {
	dsn := filepath.Join(t.TempDir(), "test.db")
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.Collection{}))
	return New(gormDB)
}

func TestStore_AddAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	assert.Empty(t, st.Rooms(ctx))

	require.NoError(t, st.AddRoom(ctx, model.Room{ID: "r1", Number: "A-101", Status: model.RoomEmpty}))
	require.NoError(t, st.AddRoom(ctx, model.Room{ID: "r2", Number: "A-102", Status: model.RoomEmpty}))

	rooms := st.Rooms(ctx)
	require.Len(t, rooms, 2)
	assert.Equal(t, "r2", rooms[1].ID)
	assert.Equal(t, "A-102", rooms[1].Number)
}

func TestStore_UpdateStampsUpdatedAt(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, st.AddRoom(ctx, model.Room{
		ID:         "r1",
		Number:     "A-101",
		Status:     model.RoomEmpty,
		Timestamps: model.Timestamps{CreatedAt: created, UpdatedAt: created},
	}))

	require.NoError(t, st.UpdateRoom(ctx, "r1", func(r *model.Room) {
		r.Status = model.RoomOccupied
		r.Occupancy = 1
	}))

	room, err := st.RoomByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, model.RoomOccupied, room.Status)
	assert.Equal(t, 1, room.Occupancy)
	assert.Equal(t, created, room.CreatedAt)
	assert.True(t, room.UpdatedAt.After(created), "updatedAt should be stamped on update")
}

func TestStore_UpdateNotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.AddStudent(ctx, model.Student{ID: "s1", FullName: "Priya Patel"}))

	err := st.UpdateStudent(ctx, "missing", func(s *model.Student) {
		s.FullName = "changed"
	})
	assert.ErrorIs(t, err, ErrNotFound)

	students := st.Students(ctx)
	require.Len(t, students, 1)
	assert.Equal(t, "Priya Patel", students[0].FullName)
}

func TestStore_FindNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.RoomByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_InitializedFlag(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	assert.False(t, st.IsInitialized(ctx))
	require.NoError(t, st.MarkInitialized(ctx))
	assert.True(t, st.IsInitialized(ctx))
}

func TestStore_ClearAll(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.AddRoom(ctx, model.Room{ID: "r1"}))
	require.NoError(t, st.AddStudent(ctx, model.Student{ID: "s1"}))
	require.NoError(t, st.MarkInitialized(ctx))

	require.NoError(t, st.ClearAll(ctx))

	assert.Empty(t, st.Rooms(ctx))
	assert.Empty(t, st.Students(ctx))
	assert.False(t, st.IsInitialized(ctx), "reset must clear the initialization flag")
}

func TestStore_CorruptCollectionDegradesToEmpty(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rec := model.Collection{Key: KeyStudents, Value: []byte("{not json"), UpdatedAt: time.Now().UTC()}
	require.NoError(t, st.db.Create(&rec).Error)

	assert.Empty(t, st.Students(ctx))
}

func TestStore_SaveSubscriptionUpsertsByEndpoint(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sub := model.PushSubscription{Endpoint: "https://example.com/push", P256DH: "k1", Auth: "a1"}
	require.NoError(t, st.SaveSubscription(ctx, sub))

	sub.P256DH = "k2"
	require.NoError(t, st.SaveSubscription(ctx, sub))

	subs := st.Subscriptions(ctx)
	require.Len(t, subs, 1)
	assert.Equal(t, "k2", subs[0].P256DH)

	require.NoError(t, st.DeleteSubscription(ctx, sub.Endpoint))
	assert.Empty(t, st.Subscriptions(ctx))

	// Deleting again is a no-op.
	require.NoError(t, st.DeleteSubscription(ctx, sub.Endpoint))
}

func TestStore_StudentsByRoom(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.AddStudent(ctx, model.Student{ID: "s1", RoomID: "r1", BedNumber: 1}))
	require.NoError(t, st.AddStudent(ctx, model.Student{ID: "s2", RoomID: "r2", BedNumber: 1}))
	require.NoError(t, st.AddStudent(ctx, model.Student{ID: "s3", RoomID: "r1", BedNumber: 2}))

	occupants := st.StudentsByRoom(ctx, "r1")
	require.Len(t, occupants, 2)
	assert.Equal(t, "s1", occupants[0].ID)
	assert.Equal(t, "s3", occupants[1].ID)
}
