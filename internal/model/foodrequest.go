package model

import "time"

// FoodRequestStatus is the voting lifecycle of a dish request.
// Accepted and Rejected are both terminal.
type FoodRequestStatus string

const (
	FoodRequestActive   FoodRequestStatus = "Active"
	FoodRequestAccepted FoodRequestStatus = "Accepted"
	FoodRequestRejected FoodRequestStatus = "Rejected"
)

// FoodRequest is a student-submitted dish suggestion that collects votes.
type FoodRequest struct {
	ID          string            `json:"id"`
	DishName    string            `json:"dishName"`
	Description string            `json:"description"`
	MealType    MealSlot          `json:"mealType"`
	Dietary     Dietary           `json:"dietary"`
	Reason      string            `json:"reason,omitempty"`
	Votes       int               `json:"votes"`
	VotedBy     []string          `json:"votedBy"`
	Status      FoodRequestStatus `json:"status"`
	CreatedDate time.Time         `json:"createdDate"`
	ClosingDate time.Time         `json:"closingDate"`
	Timestamps
}

// HasVoted reports whether the given voter already voted on this request.
func (r *FoodRequest) HasVoted(voterID string) bool {
	for _, v := range r.VotedBy {
		if v == voterID {
			return true
		}
	}
	return false
}
