package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// Subscribers receive a notification whenever an announcement is published.
type PushSubscription struct {
	Endpoint  string    `json:"endpoint"`
	P256DH    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"createdAt"`
}
