package menu

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

	"hostel-warden-backend/config"
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

func TestDefaultWeek(t *testing.T) {
	week := DefaultWeek(12, 2025)

	assert.NotEmpty(t, week.ID)
	assert.Equal(t, 12, week.Week)
	assert.Equal(t, 2025, week.Year)

	for day := 0; day < model.DaysPerWeek; day++ {
		for slot := 0; slot < model.MealsPerDay; slot++ {
			require.NotEmpty(t, week.Days[day][slot], "empty cell %s/%s",
				model.Weekday(day), model.MealSlot(slot))
		}
	}

	// Cells are deep copies of the template, not shared slices.
	week.Days[0][0][0].Name = "changed"
	other := DefaultWeek(13, 2025)
	assert.NotEqual(t, "changed", other.Days[0][0][0].Name)
}

func TestRollOnce(t *testing.T) {
	st := newTestStore(t)
	cfg := &config.Config{Menu: config.MenuConfig{Enabled: true, RollInterval: time.Hour}}
	roller := NewRoller(cfg, st)
	ctx := context.Background()

	roller.RollOnce(ctx)

	menus := st.Menus(ctx)
	require.Len(t, menus, 3, "last, current and next week")

	now := time.Now().UTC()
	for offset := -1; offset <= 1; offset++ {
		year, week := now.AddDate(0, 0, 7*offset).ISOWeek()
		_, err := st.MenuByWeek(ctx, week, year)
		assert.NoError(t, err, "missing week %d/%d", week, year)
	}
}

func TestRollOnce_Idempotent(t *testing.T) {
	st := newTestStore(t)
	cfg := &config.Config{Menu: config.MenuConfig{Enabled: true, RollInterval: time.Hour}}
	roller := NewRoller(cfg, st)
	ctx := context.Background()

	roller.RollOnce(ctx)
	first := st.Menus(ctx)

	roller.RollOnce(ctx)
	second := st.Menus(ctx)

	require.Len(t, second, len(first))
	assert.Equal(t, first[0].ID, second[0].ID, "existing weeks are kept")
}

func TestRollOnce_PreservesEditedWeeks(t *testing.T) {
	st := newTestStore(t)
	cfg := &config.Config{Menu: config.MenuConfig{Enabled: true, RollInterval: time.Hour}}
	roller := NewRoller(cfg, st)
	ctx := context.Background()

	roller.RollOnce(ctx)

	year, week := time.Now().UTC().ISOWeek()
	current, err := st.MenuByWeek(ctx, week, year)
	require.NoError(t, err)

	require.NoError(t, st.UpdateMenu(ctx, current.ID, func(m *model.WeeklyMenu) {
		m.Days[0][0] = append(m.Days[0][0], model.MenuItem{Name: "Idli Sambar"})
	}))

	roller.RollOnce(ctx)

	edited, err := st.MenuByWeek(ctx, week, year)
	require.NoError(t, err)
	last := edited.Days[0][0][len(edited.Days[0][0])-1]
	assert.Equal(t, "Idli Sambar", last.Name, "a roll must not overwrite warden edits")
}

func TestRun_DisabledDoesNothing(t *testing.T) {
	st := newTestStore(t)
	cfg := &config.Config{Menu: config.MenuConfig{Enabled: false, RollInterval: time.Hour}}
	roller := NewRoller(cfg, st)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		roller.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled roller should return immediately")
	}
	assert.Empty(t, st.Menus(context.Background()))
}
