package domain

import "regexp"

var (
	rollNumberRe = regexp.MustCompile(`^[A-Z]{2,3}\d{1,7}$`)
	phoneRe      = regexp.MustCompile(`^\d{10}$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validateAllocation checks the allocation form fields and collects one
// message per failing field.
func validateAllocation(in AllocationInput) error {
	var verr ValidationError

	if in.FullName == "" {
		verr.add("fullName", "name is required")
	}
	if !rollNumberRe.MatchString(in.RollNumber) {
		verr.add("rollNumber", "roll number must look like CSE1001")
	}
	if !emailRe.MatchString(in.Email) {
		verr.add("email", "invalid email address")
	}
	if !phoneRe.MatchString(in.MobileNumber) {
		verr.add("mobileNumber", "mobile number must be 10 digits")
	}
	if in.EmergencyContact != "" && !phoneRe.MatchString(in.EmergencyContact) {
		verr.add("emergencyContact", "emergency contact must be 10 digits")
	}
	if in.RoomID == "" {
		verr.add("roomId", "a room must be selected")
	}
	if in.BedNumber <= 0 {
		verr.add("bedNumber", "a bed must be selected")
	}

	return verr.orNil()
}
