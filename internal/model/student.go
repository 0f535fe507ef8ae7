package model

import "time"

// PaymentStatus tracks a student's hostel fee state.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
)

// PaymentDetails is attached to a student when a fee payment is recorded.
type PaymentDetails struct {
	TransactionID string     `json:"transactionId,omitempty"`
	PaidAmount    int        `json:"paidAmount"`
	PaidDate      *time.Time `json:"paidDate,omitempty"`
}

// Student is a hostel resident. RoomID and BedNumber are set on allocation
// and cleared on deallocation; students are never hard-deleted.
type Student struct {
	ID                   string         `json:"id"`
	FullName             string         `json:"fullName"`
	RollNumber           string         `json:"rollNumber"`
	UniversityRollNumber string         `json:"universityRollNumber"`
	Class                string         `json:"class"` // "CSE", "ECE", "ME", "CE"
	Semester             int            `json:"semester"`
	Session              string         `json:"session"`
	Email                string         `json:"email"`
	MobileNumber         string         `json:"mobileNumber"`
	EmergencyContact     string         `json:"emergencyContact"`
	FathersName          string         `json:"fathersName,omitempty"`
	DOB                  *time.Time     `json:"dob,omitempty"`
	BloodGroup           string         `json:"bloodGroup,omitempty"`
	Address              string         `json:"address,omitempty"`
	MedicalConditions    string         `json:"medicalConditions,omitempty"`
	RoomID               string         `json:"roomId,omitempty"`
	BedNumber            int            `json:"bedNumber,omitempty"`
	PaymentStatus        PaymentStatus  `json:"paymentStatus"`
	PaymentDetails       PaymentDetails `json:"paymentDetails"`
	Timestamps
}
