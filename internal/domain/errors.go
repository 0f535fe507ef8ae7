package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrRoomFull rejects an allocation that would push occupancy past
	// the room's capacity.
	ErrRoomFull = errors.New("room is at full capacity")

	// ErrRoomUnderMaintenance rejects allocation into a room flagged for
	// maintenance.
	ErrRoomUnderMaintenance = errors.New("room is under maintenance")

	// ErrBedTaken rejects allocation onto an occupied bed.
	ErrBedTaken = errors.New("bed is already allocated")

	// ErrAlreadyVoted enforces the one-vote-per-voter rule on food
	// requests.
	ErrAlreadyVoted = errors.New("voter has already voted on this request")

	// ErrInvalidTransition rejects a status change the entity's state
	// machine does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStudentNotAllocated rejects deallocation of a student who has
	// no room.
	ErrStudentNotAllocated = errors.New("student is not allocated to a room")
)

// ValidationError carries field-level messages for a rejected input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
