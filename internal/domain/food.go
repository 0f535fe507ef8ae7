package domain

import (
	"context"
	"fmt"
	"time"

	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

// FoodRequestInput is the suggest-a-dish form.
type FoodRequestInput struct {
	DishName    string         `json:"dishName"`
	Description string         `json:"description"`
	MealType    model.MealSlot `json:"mealType"`
	Dietary     model.Dietary  `json:"dietary"`
	Reason      string         `json:"reason"`
}

// votingWindow is how long a food request stays open for votes.
const votingWindow = 7 * 24 * time.Hour

// SubmitFoodRequest opens a new dish suggestion for voting.
func (s *Service) SubmitFoodRequest(ctx context.Context, in FoodRequestInput) (model.FoodRequest, error) {
	var verr ValidationError
	if in.DishName == "" {
		verr.add("dishName", "dish name is required")
	}
	if err := verr.orNil(); err != nil {
		return model.FoodRequest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	request := model.FoodRequest{
		ID:          newID(),
		DishName:    in.DishName,
		Description: in.Description,
		MealType:    in.MealType,
		Dietary:     in.Dietary,
		Reason:      in.Reason,
		Votes:       0,
		VotedBy:     []string{},
		Status:      model.FoodRequestActive,
		CreatedDate: now,
		ClosingDate: now.Add(votingWindow),
		Timestamps:  stamp(now),
	}
	if err := s.store.AddFoodRequest(ctx, request); err != nil {
		return model.FoodRequest{}, err
	}
	return request, nil
}

// VoteFoodRequest adds one vote from the given voter. At most one vote
// per voter per request; a repeat vote returns ErrAlreadyVoted and leaves
// the record untouched.
func (s *Service) VoteFoodRequest(ctx context.Context, id, voterID string) error {
	if voterID == "" {
		var verr ValidationError
		verr.add("voterId", "voter is required")
		return &verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	request, err := findFoodRequest(ctx, s, id)
	if err != nil {
		return err
	}
	if request.Status != model.FoodRequestActive {
		return ErrInvalidTransition
	}
	if request.HasVoted(voterID) {
		return ErrAlreadyVoted
	}

	return s.store.UpdateFoodRequest(ctx, id, func(r *model.FoodRequest) {
		r.Votes++
		r.VotedBy = append(r.VotedBy, voterID)
	})
}

// CloseFoodRequest moves an Active request to its terminal Accepted or
// Rejected state.
func (s *Service) CloseFoodRequest(ctx context.Context, id string, accepted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, err := findFoodRequest(ctx, s, id)
	if err != nil {
		return err
	}
	if request.Status != model.FoodRequestActive {
		return ErrInvalidTransition
	}

	status := model.FoodRequestRejected
	if accepted {
		status = model.FoodRequestAccepted
	}
	if err := s.store.UpdateFoodRequest(ctx, id, func(r *model.FoodRequest) {
		r.Status = status
	}); err != nil {
		return err
	}

	s.logActivity(ctx, model.ActivityFoodRequestClosed,
		fmt.Sprintf("%s %s with %d votes", request.DishName, status, request.Votes), id)
	return nil
}

func findFoodRequest(ctx context.Context, s *Service, id string) (model.FoodRequest, error) {
	for _, r := range s.store.FoodRequests(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return model.FoodRequest{}, fmt.Errorf("food request %s: %w", id, store.ErrNotFound)
}
