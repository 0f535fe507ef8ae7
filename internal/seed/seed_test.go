package seed

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

// A helper function to create a store backed by a throwaway sqlite file.
func newTestStore(t *testing.T) *store.Store {
	dsn := filepath.Join(t.TempDir(), "test.db")
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.Collection{}))
	return store.New(gormDB)
}

func TestRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := Run(ctx, st, Options{Students: 200, Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)

	assert.True(t, st.IsInitialized(ctx))

	rooms := st.Rooms(ctx)
	assert.Len(t, rooms, 120, "4 floors x 3 blocks x 10 rooms")
	assert.Len(t, st.Students(ctx), 200)
	assert.Len(t, st.MaintenanceRequests(ctx), 15)
	assert.Len(t, st.Complaints(ctx), 8)
	assert.Len(t, st.Menus(ctx), 3)
	assert.Len(t, st.FoodRequests(ctx), 10)
	assert.Len(t, st.Announcements(ctx), 5)
	assert.Len(t, st.Activities(ctx), 10)
}

func TestRun_OccupancyNeverExceedsCapacity(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, Options{Rand: rand.New(rand.NewSource(7))}))

	for _, room := range st.Rooms(ctx) {
		assert.LessOrEqual(t, room.Occupancy, room.Capacity.Beds(),
			"room %s overflows its capacity", room.Number)
		if room.Status == model.RoomEmpty {
			assert.Zero(t, room.Occupancy, "empty room %s has occupants", room.Number)
		}
	}
}

// Every allocated student must land on a distinct bed of an occupied
// room, and the number of students in a room must match its recorded
// occupancy.
func TestRun_StudentPlacementMatchesOccupancy(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, Options{Students: 200, Rand: rand.New(rand.NewSource(99))}))

	roomsByID := make(map[string]model.Room)
	for _, room := range st.Rooms(ctx) {
		roomsByID[room.ID] = room
	}

	occupants := make(map[string]int)
	seenBeds := make(map[string]map[int]bool)
	for _, student := range st.Students(ctx) {
		if student.RoomID == "" {
			continue
		}
		room, ok := roomsByID[student.RoomID]
		require.True(t, ok, "student %s references unknown room", student.RollNumber)
		require.Equal(t, model.RoomOccupied, room.Status)

		require.GreaterOrEqual(t, student.BedNumber, 1)
		require.LessOrEqual(t, student.BedNumber, room.Capacity.Beds())

		if seenBeds[room.ID] == nil {
			seenBeds[room.ID] = make(map[int]bool)
		}
		require.False(t, seenBeds[room.ID][student.BedNumber],
			"bed %d of room %s is double-booked", student.BedNumber, room.Number)
		seenBeds[room.ID][student.BedNumber] = true
		occupants[room.ID]++
	}

	totalBeds := 0
	for _, room := range roomsByID {
		if room.Status != model.RoomOccupied {
			continue
		}
		totalBeds += room.Occupancy
	}
	placed := 0
	for roomID, n := range occupants {
		assert.LessOrEqual(t, n, roomsByID[roomID].Occupancy)
		placed += n
	}
	// 200 students against ~120 rooms: every bed of every occupied room
	// is filled.
	assert.Equal(t, totalBeds, placed)
}

// Seeded students only live in Occupied rooms, so a Maintenance room's
// recorded occupancy must be zero or it would claim residents that do
// not exist.
func TestRun_MaintenanceRoomsSeedVacant(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, Options{Students: 200, Rand: rand.New(rand.NewSource(11))}))

	occupants := make(map[string]int)
	for _, student := range st.Students(ctx) {
		if student.RoomID != "" {
			occupants[student.RoomID]++
		}
	}

	maintenanceRooms := 0
	for _, room := range st.Rooms(ctx) {
		if room.Status != model.RoomMaintenance {
			continue
		}
		maintenanceRooms++
		assert.Zero(t, room.Occupancy, "maintenance room %s has phantom occupancy", room.Number)
		assert.Zero(t, occupants[room.ID], "maintenance room %s houses students", room.Number)
	}
	require.NotZero(t, maintenanceRooms, "fixture produced no maintenance rooms")
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, Options{Rand: rand.New(rand.NewSource(1))}))
	first := st.Rooms(ctx)

	require.NoError(t, Run(ctx, st, Options{Rand: rand.New(rand.NewSource(2))}))
	second := st.Rooms(ctx)

	require.Len(t, second, len(first))
	assert.Equal(t, first[0].ID, second[0].ID, "reseeding must not replace existing data")
}

func TestRun_MenuWindow(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, Options{Rand: rand.New(rand.NewSource(3))}))

	now := time.Now().UTC()
	for offset := -1; offset <= 1; offset++ {
		year, week := now.AddDate(0, 0, 7*offset).ISOWeek()
		weekly, err := st.MenuByWeek(ctx, week, year)
		require.NoError(t, err, "missing menu for week %d/%d", week, year)
		for day := 0; day < model.DaysPerWeek; day++ {
			for slot := 0; slot < model.MealsPerDay; slot++ {
				assert.NotEmpty(t, weekly.Days[day][slot])
			}
		}
	}
}
