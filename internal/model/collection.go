package model

import "time"

// Collection is a single persisted entity collection: one row per storage
// key, the whole collection serialized as JSON in Value.
type Collection struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Timestamps is embedded by every record kept inside a collection.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Touch stamps the record as modified.
func (t *Timestamps) Touch(now time.Time) {
	t.UpdatedAt = now
}
