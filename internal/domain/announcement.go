package domain

import (
	"context"
	"fmt"
	"time"

	"hostel-warden-backend/internal/model"
)

// AnnouncementInput is the compose-an-announcement form.
type AnnouncementInput struct {
	Title          string                   `json:"title"`
	Content        string                   `json:"content"`
	Type           model.AnnouncementType   `json:"type"`
	Priority       model.Priority           `json:"priority"`
	TargetAudience model.TargetAudience     `json:"targetAudience"`
	PostedBy       string                   `json:"postedBy"`
	Status         model.AnnouncementStatus `json:"status"` // Draft or Scheduled; empty means Draft
	ScheduledDate  *time.Time               `json:"scheduledDate"`
}

// CreateAnnouncement stores a new announcement in Draft or Scheduled
// state. Publishing is a separate step.
func (s *Service) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (model.Announcement, error) {
	var verr ValidationError
	if in.Title == "" {
		verr.add("title", "title is required")
	}
	if in.Content == "" {
		verr.add("content", "content is required")
	}
	status := in.Status
	switch status {
	case "":
		status = model.AnnouncementDraft
	case model.AnnouncementDraft:
	case model.AnnouncementScheduled:
		if in.ScheduledDate == nil {
			verr.add("scheduledDate", "scheduled announcements need a date")
		}
	default:
		verr.add("status", "new announcements must be Draft or Scheduled")
	}
	if err := verr.orNil(); err != nil {
		return model.Announcement{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	announcement := model.Announcement{
		ID:             newID(),
		Title:          in.Title,
		Content:        in.Content,
		Type:           in.Type,
		Priority:       in.Priority,
		TargetAudience: in.TargetAudience,
		Visibility: model.Visibility{
			StartDate:           now,
			DisplayUntilRemoved: true,
		},
		Status:        status,
		PostedBy:      in.PostedBy,
		ScheduledDate: in.ScheduledDate,
		Timestamps:    stamp(now),
	}
	if err := s.store.AddAnnouncement(ctx, announcement); err != nil {
		return model.Announcement{}, err
	}
	return announcement, nil
}

// PublishAnnouncement moves a Draft or Scheduled announcement to Active
// and dispatches push notifications to subscribers.
func (s *Service) PublishAnnouncement(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	announcement, err := s.store.AnnouncementByID(ctx, id)
	if err != nil {
		return fmt.Errorf("announcement %s: %w", id, err)
	}
	if announcement.Status != model.AnnouncementDraft && announcement.Status != model.AnnouncementScheduled {
		return ErrInvalidTransition
	}

	now := time.Now().UTC()
	if err := s.store.UpdateAnnouncement(ctx, id, func(a *model.Announcement) {
		a.Status = model.AnnouncementActive
		a.Visibility.StartDate = now
	}); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.AnnouncementPublished(id)
	}

	s.logActivity(ctx, model.ActivityAnnouncementPosted, announcement.Title, id)
	return nil
}

// RecordAnnouncementView bumps the view counter of an announcement.
func (s *Service) RecordAnnouncementView(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.UpdateAnnouncement(ctx, id, func(a *model.Announcement) {
		a.Views++
	})
}

// ArchiveAnnouncement moves an Active announcement to its terminal
// Archived state.
func (s *Service) ArchiveAnnouncement(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	announcement, err := s.store.AnnouncementByID(ctx, id)
	if err != nil {
		return fmt.Errorf("announcement %s: %w", id, err)
	}
	if announcement.Status != model.AnnouncementActive {
		return ErrInvalidTransition
	}

	return s.store.UpdateAnnouncement(ctx, id, func(a *model.Announcement) {
		a.Status = model.AnnouncementArchived
	})
}
