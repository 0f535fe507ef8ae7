package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-warden-backend/internal/model"
)

// Storage keys. One serialized collection per entity, plus the
// initialization flag.
const (
	KeyRooms         = "hostelWarden_rooms"
	KeyStudents      = "hostelWarden_students"
	KeyMaintenance   = "hostelWarden_maintenance"
	KeyComplaints    = "hostelWarden_complaints"
	KeyMenus         = "hostelWarden_menus"
	KeyFoodRequests  = "hostelWarden_foodRequests"
	KeyAnnouncements = "hostelWarden_announcements"
	KeyActivities    = "hostelWarden_activities"
	KeyPayments      = "hostelWarden_payments"
	KeySubscriptions = "hostelWarden_subscriptions"
	KeyInitialized   = "hostelWarden_initialized"
)

var allKeys = []string{
	KeyRooms, KeyStudents, KeyMaintenance, KeyComplaints, KeyMenus,
	KeyFoodRequests, KeyAnnouncements, KeyActivities, KeyPayments,
	KeySubscriptions, KeyInitialized,
}

// ErrNotFound is returned by update operations when no record with the
// requested id exists in the collection.
var ErrNotFound = errors.New("record not found")

// Store persists one whole JSON collection per entity under a fixed key.
// Every mutation is a read-modify-write of the full collection; a
// per-collection mutex serializes those cycles so concurrent callers
// cannot lose updates.
type Store struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a store backed by the given database.
func New(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		locks: make(map[string]*sync.Mutex),
	}
}

// lock acquires the mutex for one collection key and returns its unlock.
func (s *Store) lock(key string) func() {
	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// getList reads and decodes a whole collection. Absent keys and decode
// failures degrade to an empty collection; only the latter is logged.
func getList[T any](ctx context.Context, s *Store, key string) []T {
	var rec model.Collection
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []T{}
	}
	if err != nil {
		log.Printf("error reading collection %s: %v", key, err)
		return []T{}
	}

	var list []T
	if err := json.Unmarshal(rec.Value, &list); err != nil {
		log.Printf("error decoding collection %s: %v", key, err)
		return []T{}
	}
	return list
}

// setList serializes a collection and overwrites the stored value.
func setList[T any](ctx context.Context, s *Store, key string, list []T) error {
	value, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}

	rec := model.Collection{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}

// addRecord appends one record to a collection.
func addRecord[T any](ctx context.Context, s *Store, key string, rec T) error {
	unlock := s.lock(key)
	defer unlock()

	list := getList[T](ctx, s, key)
	list = append(list, rec)
	return setList(ctx, s, key, list)
}

// touchable lets updateRecord stamp updatedAt without knowing the
// concrete record type. Every entity embeds model.Timestamps.
type touchable interface {
	Touch(now time.Time)
}

// updateRecord locates a record by id, applies mutate, stamps updatedAt
// and writes the collection back. Returns ErrNotFound when the id is
// absent, leaving the stored collection untouched.
func updateRecord[T any](ctx context.Context, s *Store, key, id string, idOf func(*T) string, mutate func(*T)) error {
	unlock := s.lock(key)
	defer unlock()

	list := getList[T](ctx, s, key)
	for i := range list {
		if idOf(&list[i]) != id {
			continue
		}
		mutate(&list[i])
		if t, ok := any(&list[i]).(touchable); ok {
			t.Touch(time.Now().UTC())
		}
		return setList(ctx, s, key, list)
	}
	return ErrNotFound
}

// findRecord locates a single record by predicate.
func findRecord[T any](ctx context.Context, s *Store, key string, match func(*T) bool) (T, error) {
	list := getList[T](ctx, s, key)
	for i := range list {
		if match(&list[i]) {
			return list[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// IsInitialized reports whether the seed dataset has been written.
// It distinguishes "empty because never seeded" from "intentionally empty".
func (s *Store) IsInitialized(ctx context.Context) bool {
	var rec model.Collection
	err := s.db.WithContext(ctx).First(&rec, "key = ?", KeyInitialized).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("error reading initialization flag: %v", err)
		}
		return false
	}
	return string(rec.Value) == "true"
}

// MarkInitialized sets the initialization flag.
func (s *Store) MarkInitialized(ctx context.Context) error {
	rec := model.Collection{Key: KeyInitialized, Value: []byte("true"), UpdatedAt: time.Now().UTC()}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to mark initialized: %w", err)
	}
	return nil
}

// ClearAll removes every namespaced key, including the initialization
// flag. This is the de facto reset path; there is no migration concept.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("key IN ?", allKeys).Delete(&model.Collection{}).Error; err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}
