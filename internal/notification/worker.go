package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real implementation of Sender using the webpush
// library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool manages a pool of workers that push announcement
// notifications to every stored subscription.
type WorkerPool struct {
	size    int
	jobs    chan string
	store   *store.Store
	webpush *webpush.Options
	sender  Sender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, st *store.Store, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan string, size),
		store:   st,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Worker %d started", id)
	for {
		select {
		case announcementID := <-wp.jobs:
			log.Printf("Worker %d processing announcement %s", id, announcementID)
			wp.notifySubscribers(ctx, announcementID)
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		}
	}
}

// AnnouncementPublished queues a published announcement for delivery.
// Implements domain.Notifier.
func (wp *WorkerPool) AnnouncementPublished(announcementID string) {
	wp.jobs <- announcementID
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan string {
	return wp.jobs
}

// notifySubscribers fetches the subscriptions and sends one notification
// each for the given announcement.
func (wp *WorkerPool) notifySubscribers(ctx context.Context, announcementID string) {
	subscriptions := wp.store.Subscriptions(ctx)
	if len(subscriptions) == 0 {
		return
	}

	title := announcementID
	if announcement, err := wp.store.AnnouncementByID(ctx, announcementID); err != nil {
		log.Printf("Error fetching announcement %s: %v", announcementID, err)
	} else {
		title = announcement.Title
	}

	log.Printf("Sending %d notifications for announcement %s", len(subscriptions), announcementID)
	message := fmt.Sprintf("New hostel announcement: %s", title)
	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, []byte(message))
	}
}

// sendNotification sends a single web push notification. Expired
// subscriptions (410 responses) are pruned from the store.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		if err := wp.store.DeleteSubscription(ctx, sub.Endpoint); err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
