package notification

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

// mockSender is a mock implementation of the Sender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// Send calls the mock SendFunc.
func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

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

func TestWorkerPool_AnnouncementPublished(t *testing.T) {
	wp := NewWorkerPool(1, newTestStore(t), &webpush.Options{})

	wp.AnnouncementPublished("a1")

	select {
	case job := <-wp.Jobs():
		assert.Equal(t, "a1", job)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be queued")
	}
}

func TestWorkerPool_WorkerLogic(t *testing.T) {
	st := newTestStore(t)
	wp := NewWorkerPool(1, st, &webpush.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	announcement := model.Announcement{
		ID:      "a1",
		Title:   "Water supply interruption",
		Content: "No water on Saturday morning.",
		Status:  model.AnnouncementActive,
	}
	require.NoError(t, st.AddAnnouncement(ctx, announcement))

	t.Run("sends one notification per subscription", func(t *testing.T) {
		require.NoError(t, st.SaveSubscription(ctx, model.PushSubscription{
			Endpoint: "https://example.com/push", P256DH: "k", Auth: "a",
		}))

		var wg sync.WaitGroup
		wg.Add(1)
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				assert.Equal(t, "https://example.com/push", sub.Endpoint)
				assert.Equal(t, "New hostel announcement: Water supply interruption", string(payload))
				wg.Done()
				return &http.Response{
					StatusCode: http.StatusCreated,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		wp.Start(ctx)
		wp.AnnouncementPublished(announcement.ID)
		wg.Wait()
	})

	t.Run("deletes expired subscription", func(t *testing.T) {
		require.NoError(t, st.SaveSubscription(ctx, model.PushSubscription{
			Endpoint: "https://example.com/expired", P256DH: "k", Auth: "a",
		}))

		var wg sync.WaitGroup
		wg.Add(2) // one live, one expired
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				defer wg.Done()
				status := http.StatusCreated
				if sub.Endpoint == "https://example.com/expired" {
					status = http.StatusGone
				}
				return &http.Response{
					StatusCode: status,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		wp.AnnouncementPublished(announcement.ID)
		wg.Wait()

		// The prune happens after the response is read; give the worker
		// a moment to finish the job.
		require.Eventually(t, func() bool {
			return len(st.Subscriptions(ctx)) == 1
		}, time.Second, 10*time.Millisecond)
		assert.Equal(t, "https://example.com/push", st.Subscriptions(ctx)[0].Endpoint)
	})

	t.Run("falls back to the id when the announcement is missing", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				assert.Equal(t, "New hostel announcement: missing-id", string(payload))
				wg.Done()
				return &http.Response{
					StatusCode: http.StatusCreated,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		wp.AnnouncementPublished("missing-id")
		wg.Wait()
	})
}
