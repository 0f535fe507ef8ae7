package domain

import (
	"context"
	"fmt"
	"time"

	"hostel-warden-backend/internal/model"
)

// AllocationInput is the allocation form.
type AllocationInput struct {
	FullName             string `json:"fullName"`
	RollNumber           string `json:"rollNumber"`
	UniversityRollNumber string `json:"universityRollNumber"`
	Class                string `json:"class"`
	Semester             int    `json:"semester"`
	Session              string `json:"session"`
	Email                string `json:"email"`
	MobileNumber         string `json:"mobileNumber"`
	EmergencyContact     string `json:"emergencyContact"`
	FathersName          string `json:"fathersName"`
	RoomID               string `json:"roomId"`
	BedNumber            int    `json:"bedNumber"`
}

// AllocateStudent creates a student and places them in a room, keeping
// the room's occupancy count and status consistent. The target room must
// not be under maintenance, must have a free bed, and the chosen bed must
// not already be taken.
func (s *Service) AllocateStudent(ctx context.Context, in AllocationInput) (model.Student, error) {
	if err := validateAllocation(in); err != nil {
		return model.Student{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.store.RoomByID(ctx, in.RoomID)
	if err != nil {
		return model.Student{}, fmt.Errorf("room %s: %w", in.RoomID, err)
	}

	beds := room.Capacity.Beds()
	if room.Status == model.RoomMaintenance {
		return model.Student{}, ErrRoomUnderMaintenance
	}
	if room.Occupancy >= beds {
		return model.Student{}, ErrRoomFull
	}
	if in.BedNumber > beds {
		return model.Student{}, fmt.Errorf("bed %d: %w", in.BedNumber, ErrBedTaken)
	}
	for _, occupant := range s.store.StudentsByRoom(ctx, room.ID) {
		if occupant.BedNumber == in.BedNumber {
			return model.Student{}, ErrBedTaken
		}
	}

	now := time.Now().UTC()
	student := model.Student{
		ID:                   newID(),
		FullName:             in.FullName,
		RollNumber:           in.RollNumber,
		UniversityRollNumber: in.UniversityRollNumber,
		Class:                in.Class,
		Semester:             in.Semester,
		Session:              in.Session,
		Email:                in.Email,
		MobileNumber:         in.MobileNumber,
		EmergencyContact:     in.EmergencyContact,
		FathersName:          in.FathersName,
		RoomID:               room.ID,
		BedNumber:            in.BedNumber,
		PaymentStatus:        model.PaymentUnpaid,
		Timestamps:           stamp(now),
	}
	if err := s.store.AddStudent(ctx, student); err != nil {
		return model.Student{}, err
	}

	if err := s.store.UpdateRoom(ctx, room.ID, func(r *model.Room) {
		r.Occupancy++
		r.Status = model.RoomOccupied
	}); err != nil {
		return model.Student{}, fmt.Errorf("failed to update room occupancy: %w", err)
	}

	s.logActivity(ctx, model.ActivityStudentAllocated,
		fmt.Sprintf("%s allocated to room %s, bed %d", student.FullName, room.Number, in.BedNumber),
		student.ID)
	return student, nil
}

// DeallocateStudent removes a student from their room, decrementing the
// room's occupancy and marking it Empty when the last occupant leaves.
// The student record is kept; only the room assignment is cleared.
func (s *Service) DeallocateStudent(ctx context.Context, studentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.store.StudentByID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("student %s: %w", studentID, err)
	}
	if student.RoomID == "" {
		return ErrStudentNotAllocated
	}
	roomID := student.RoomID

	if err := s.store.UpdateStudent(ctx, studentID, func(st *model.Student) {
		st.RoomID = ""
		st.BedNumber = 0
	}); err != nil {
		return err
	}

	if err := s.store.UpdateRoom(ctx, roomID, func(r *model.Room) {
		if r.Occupancy > 0 {
			r.Occupancy--
		}
		if r.Occupancy == 0 && r.Status == model.RoomOccupied {
			r.Status = model.RoomEmpty
		}
	}); err != nil {
		return fmt.Errorf("failed to update room occupancy: %w", err)
	}

	s.logActivity(ctx, model.ActivityStudentDeallocated,
		fmt.Sprintf("%s removed from their room", student.FullName), studentID)
	return nil
}
