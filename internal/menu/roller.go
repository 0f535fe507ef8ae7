package menu

import (
	"context"
	"log"
	"time"

	"hostel-warden-backend/config"
	"hostel-warden-backend/internal/store"
)

// Roller keeps the previous, current and next week's menus present so
// the menu screens always have a full window to show.
type Roller struct {
	cfg   *config.Config
	store *store.Store
}

// NewRoller creates a menu roller service.
func NewRoller(cfg *config.Config, st *store.Store) *Roller {
	return &Roller{cfg: cfg, store: st}
}

// Run starts the roll loop. It fills the window immediately, then on
// every interval, until the context is cancelled.
func (r *Roller) Run(ctx context.Context) {
	if !r.cfg.Menu.Enabled {
		log.Println("Menu roller is disabled. Not starting.")
		return
	}
	log.Println("Starting menu roller service...")

	r.RollOnce(ctx)

	timer := time.NewTimer(r.cfg.Menu.RollInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Menu roller shutting down.")
			return
		case <-timer.C:
			r.RollOnce(ctx)
			timer.Reset(r.cfg.Menu.RollInterval)
		}
	}
}

// RollOnce creates any missing week in the last/current/next window.
func (r *Roller) RollOnce(ctx context.Context) {
	now := time.Now().UTC()
	for offset := -1; offset <= 1; offset++ {
		year, week := now.AddDate(0, 0, 7*offset).ISOWeek()
		if _, err := r.store.MenuByWeek(ctx, week, year); err == nil {
			continue
		}
		menu := DefaultWeek(week, year)
		if err := r.store.AddMenu(ctx, menu); err != nil {
			log.Printf("failed to create menu for week %d/%d: %v", week, year, err)
			continue
		}
		log.Printf("Created default menu for week %d/%d", week, year)
	}
}
