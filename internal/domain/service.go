// Package domain owns the compound operations that touch more than one
// collection. Handlers never do raw read-modify-write against the store;
// every cross-entity effect goes through a single method here so the
// occupancy/capacity and state-machine invariants hold by construction.
package domain

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

// Notifier dispatches push notifications for published announcements.
type Notifier interface {
	AnnouncementPublished(id string)
}

// Service implements the domain operations on top of the store.
type Service struct {
	store    *store.Store
	notifier Notifier // may be nil when push is not configured

	// mu serializes the compound operations. Each one checks invariants
	// against state it then mutates, often across collections, so the
	// store's per-collection locks alone cannot keep the check and the
	// write together.
	mu sync.Mutex
}

// NewService creates a domain service. notifier may be nil.
func NewService(st *store.Store, notifier Notifier) *Service {
	return &Service{store: st, notifier: notifier}
}

// Store exposes the underlying store for read-side callers.
func (s *Service) Store() *store.Store {
	return s.store
}

func newID() string {
	return uuid.NewString()
}

// logActivity appends an audit log entry. Failures are logged and do not
// fail the operation that produced them.
func (s *Service) logActivity(ctx context.Context, typ model.ActivityType, description, relatedID string) {
	activity := model.Activity{
		ID:          newID(),
		Type:        typ,
		Description: description,
		Timestamp:   time.Now().UTC(),
		RelatedID:   relatedID,
	}
	if err := s.store.AddActivity(ctx, activity); err != nil {
		log.Printf("failed to record activity %q: %v", typ, err)
	}
}

func stamp(now time.Time) model.Timestamps {
	return model.Timestamps{CreatedAt: now, UpdatedAt: now}
}
