package model

import "time"

// RoomStatus is the occupancy state of a room.
type RoomStatus string

const (
	RoomOccupied    RoomStatus = "Occupied"
	RoomEmpty       RoomStatus = "Empty"
	RoomMaintenance RoomStatus = "Maintenance"
)

// RoomCapacity is the bed-count class of a room.
type RoomCapacity string

const (
	CapacitySingle RoomCapacity = "Single"
	CapacityDouble RoomCapacity = "Double"
	CapacityTriple RoomCapacity = "Triple"
)

// Beds maps the capacity label to its bed count.
func (c RoomCapacity) Beds() int {
	switch c {
	case CapacitySingle:
		return 1
	case CapacityDouble:
		return 2
	default:
		return 3
	}
}

// AmenityState reports whether an amenity group is usable.
type AmenityState string

const (
	AmenityWorking AmenityState = "Working"
	AmenityFaulty  AmenityState = "Faulty"
)

// Amenities holds per-room fixture counts.
type Amenities struct {
	Fans      int `json:"fans"`
	Lights    int `json:"lights"`
	Tables    int `json:"tables"`
	Chairs    int `json:"chairs"`
	Beds      int `json:"beds"`
	Cupboards int `json:"cupboards"`
}

// Room is a single hostel room.
type Room struct {
	ID               string                  `json:"id"`
	Number           string                  `json:"number"`
	Floor            string                  `json:"floor"` // "Ground", "1st", "2nd", "3rd"
	Block            string                  `json:"block"` // "A", "B", "C"
	Capacity         RoomCapacity            `json:"capacity"`
	Occupancy        int                     `json:"occupancy"`
	Status           RoomStatus              `json:"status"`
	Amenities        Amenities               `json:"amenities"`
	AmenityStatus    map[string]AmenityState `json:"amenityStatus"`
	LastInspection   time.Time               `json:"lastInspection"`
	MaintenanceIssue string                  `json:"maintenanceIssue,omitempty"`
	Timestamps
}
