package domain

import (
	"context"
	"fmt"
	"time"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

// ComplaintInput is the file-a-complaint form.
type ComplaintInput struct {
	StudentID   string         `json:"studentId"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Urgency     model.Priority `json:"urgency"`
}

// FileComplaint records a new complaint in Pending state.
func (s *Service) FileComplaint(ctx context.Context, in ComplaintInput) (model.Complaint, error) {
	var verr ValidationError
	if in.StudentID == "" {
		verr.add("studentId", "student is required")
	}
	if in.Type == "" {
		verr.add("type", "complaint type is required")
	}
	if err := verr.orNil(); err != nil {
		return model.Complaint{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.store.StudentByID(ctx, in.StudentID)
	if err != nil {
		return model.Complaint{}, fmt.Errorf("student %s: %w", in.StudentID, err)
	}

	now := time.Now().UTC()
	complaint := model.Complaint{
		ID:           newID(),
		StudentID:    student.ID,
		Type:         in.Type,
		Description:  in.Description,
		Urgency:      in.Urgency,
		Status:       model.ComplaintPending,
		ReportedDate: now,
		Timestamps:   stamp(now),
	}
	if err := s.store.AddComplaint(ctx, complaint); err != nil {
		return model.Complaint{}, err
	}

	s.logActivity(ctx, model.ActivityComplaintFiled,
		fmt.Sprintf("%s complaint filed by %s", in.Type, student.FullName), complaint.ID)
	return complaint, nil
}

// ResolveComplaint transitions a complaint to its terminal Resolved state
// and stamps the resolution notes and date.
func (s *Service) ResolveComplaint(ctx context.Context, id, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	complaint, err := findComplaint(ctx, s, id)
	if err != nil {
		return err
	}
	if complaint.Status == model.ComplaintResolved {
		return ErrInvalidTransition
	}

	now := time.Now().UTC()
	if err := s.store.UpdateComplaint(ctx, id, func(c *model.Complaint) {
		c.Status = model.ComplaintResolved
		c.ResolvedDate = &now
		c.ResolutionNotes = notes
	}); err != nil {
		return err
	}

	s.logActivity(ctx, model.ActivityComplaintResolved,
		fmt.Sprintf("%s complaint resolved", complaint.Type), id)
	return nil
}

func findComplaint(ctx context.Context, s *Service, id string) (model.Complaint, error) {
	for _, c := range s.store.Complaints(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Complaint{}, fmt.Errorf("complaint %s: %w", id, store.ErrNotFound)
}
