package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-warden-backend/internal/model"
)

// recordingNotifier captures published announcement ids.
type recordingNotifier struct {
	published []string
}

func (n *recordingNotifier) AnnouncementPublished(id string) {
	n.published = append(n.published, id)
}

func TestAnnouncementLifecycle(t *testing.T) {
	svc := newTestService(t)
	notifier := &recordingNotifier{}
	svc.notifier = notifier
	ctx := context.Background()

	announcement, err := svc.CreateAnnouncement(ctx, AnnouncementInput{
		Title:    "Water supply interruption",
		Content:  "No water in Block B on Saturday morning.",
		Type:     model.AnnouncementNotice,
		Priority: model.PriorityHigh,
		PostedBy: "Warden",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AnnouncementDraft, announcement.Status, "status defaults to Draft")

	require.NoError(t, svc.PublishAnnouncement(ctx, announcement.ID))
	assert.Equal(t, []string{announcement.ID}, notifier.published)
	recentActivity(t, svc, model.ActivityAnnouncementPosted)

	require.NoError(t, svc.RecordAnnouncementView(ctx, announcement.ID))
	require.NoError(t, svc.RecordAnnouncementView(ctx, announcement.ID))

	active, err := svc.Store().AnnouncementByID(ctx, announcement.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AnnouncementActive, active.Status)
	assert.Equal(t, 2, active.Views)

	require.NoError(t, svc.ArchiveAnnouncement(ctx, announcement.ID))

	archived, err := svc.Store().AnnouncementByID(ctx, announcement.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AnnouncementArchived, archived.Status)

	// Forward only.
	assert.ErrorIs(t, svc.PublishAnnouncement(ctx, announcement.ID), ErrInvalidTransition)
	assert.ErrorIs(t, svc.ArchiveAnnouncement(ctx, announcement.ID), ErrInvalidTransition)
}

func TestCreateAnnouncement_Scheduled(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// A schedule needs a date.
	_, err := svc.CreateAnnouncement(ctx, AnnouncementInput{
		Title:   "Diwali dinner",
		Content: "Special dinner on the festival evening.",
		Status:  model.AnnouncementScheduled,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "scheduledDate")

	when := time.Now().UTC().Add(72 * time.Hour)
	scheduled, err := svc.CreateAnnouncement(ctx, AnnouncementInput{
		Title:         "Diwali dinner",
		Content:       "Special dinner on the festival evening.",
		Status:        model.AnnouncementScheduled,
		ScheduledDate: &when,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AnnouncementScheduled, scheduled.Status)

	// Scheduled announcements publish the same way drafts do.
	require.NoError(t, svc.PublishAnnouncement(ctx, scheduled.ID))
}

func TestCreateAnnouncement_RejectsNonDraftStatus(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateAnnouncement(context.Background(), AnnouncementInput{
		Title:   "x",
		Content: "y",
		Status:  model.AnnouncementActive,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
}

func TestPublishAnnouncement_NoNotifierConfigured(t *testing.T) {
	svc := newTestService(t) // nil notifier
	ctx := context.Background()

	announcement, err := svc.CreateAnnouncement(ctx, AnnouncementInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	// Publishing without push configured must still work.
	require.NoError(t, svc.PublishAnnouncement(ctx, announcement.ID))
}
