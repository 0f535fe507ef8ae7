// Package seed produces the one-time synthetic dataset used to populate
// an empty store, gated by the store's initialization flag.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"hostel-warden-backend/internal/menu"
	"hostel-warden-backend/internal/model"
	"hostel-warden-backend/internal/store"
)

var firstNames = []string{
	"Rajesh", "Priya", "Amit", "Sneha", "Vikram", "Ananya", "Arjun", "Neha",
	"Rohan", "Divya", "Aditya", "Pooja", "Nikhil", "Sara", "Varun", "Isha",
}

var lastNames = []string{
	"Kumar", "Singh", "Patel", "Gupta", "Sharma", "Verma", "Rao", "Nair",
	"Chatterjee", "Mishra", "Joshi", "Iyer", "Menon", "Desai", "Bhat", "Saxena",
}

var (
	departments = []string{"CSE", "ECE", "ME", "CE"}
	blocks      = []string{"A", "B", "C"}
	floors      = []string{"Ground", "1st", "2nd", "3rd"}
	capacities  = []model.RoomCapacity{model.CapacitySingle, model.CapacityDouble, model.CapacityTriple}
	sessions    = []string{"2024-25", "2023-24", "2022-23"}
	bloodGroups = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}
)

// Options controls the generated dataset.
type Options struct {
	Students int
	Rand     *rand.Rand
}

// Run seeds the store once. A store that has already been initialized is
// left untouched.
func Run(ctx context.Context, st *store.Store, opts Options) error {
	if st.IsInitialized(ctx) {
		return nil
	}
	if opts.Students <= 0 {
		opts.Students = 200
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	log.Println("Seeding initial dataset...")

	rooms := generateRooms(r)
	students := generateStudents(r, rooms, opts.Students)
	maintenance := generateMaintenanceRequests(r, rooms)
	complaints := generateComplaints(r, students)
	menus := generateMenus(time.Now().UTC())
	foodRequests := generateFoodRequests(r)
	announcements := generateAnnouncements(r)
	activities := generateActivities(r)

	if err := st.SetRooms(ctx, rooms); err != nil {
		return err
	}
	if err := st.SetStudents(ctx, students); err != nil {
		return err
	}
	if err := st.SetMaintenanceRequests(ctx, maintenance); err != nil {
		return err
	}
	if err := st.SetComplaints(ctx, complaints); err != nil {
		return err
	}
	if err := st.SetMenus(ctx, menus); err != nil {
		return err
	}
	if err := st.SetFoodRequests(ctx, foodRequests); err != nil {
		return err
	}
	if err := st.SetAnnouncements(ctx, announcements); err != nil {
		return err
	}
	if err := st.SetActivities(ctx, activities); err != nil {
		return err
	}
	if err := st.MarkInitialized(ctx); err != nil {
		return err
	}

	log.Printf("Seeded %d rooms, %d students", len(rooms), len(students))
	return nil
}

func newID() string {
	return uuid.NewString()
}

func stamp(now time.Time) model.Timestamps {
	return model.Timestamps{CreatedAt: now, UpdatedAt: now}
}

func pick[T any](r *rand.Rand, list []T) T {
	return list[r.Intn(len(list))]
}

// generateRooms builds 4 floors x 3 blocks x 10 rooms. Occupancy never
// exceeds the room's capacity.
func generateRooms(r *rand.Rand) []model.Room {
	now := time.Now().UTC()
	var rooms []model.Room

	roomNumber := 100
	for _, floor := range floors {
		for _, block := range blocks {
			for i := 0; i < 10; i++ {
				capacity := pick(r, capacities)
				beds := capacity.Beds()

				status := model.RoomOccupied
				if r.Float64() <= 0.3 {
					if r.Float64() > 0.5 {
						status = model.RoomEmpty
					} else {
						status = model.RoomMaintenance
					}
				}
				// Only occupied rooms get occupants; a maintenance room
				// seeds vacant so resolving its ticket leaves it Empty.
				occupancy := 0
				if status == model.RoomOccupied {
					occupancy = r.Intn(beds) + 1
				}

				amenityStatus := make(map[string]model.AmenityState)
				for _, name := range []string{"fans", "lights", "tables", "chairs", "beds", "cupboards"} {
					state := model.AmenityWorking
					if r.Float64() <= 0.1 {
						state = model.AmenityFaulty
					}
					amenityStatus[name] = state
				}

				room := model.Room{
					ID:        newID(),
					Number:    fmt.Sprintf("%s-%d", block, roomNumber),
					Floor:     floor,
					Block:     block,
					Capacity:  capacity,
					Occupancy: occupancy,
					Status:    status,
					Amenities: model.Amenities{
						Fans: beds, Lights: beds, Tables: beds,
						Chairs: beds, Beds: beds, Cupboards: beds,
					},
					AmenityStatus:  amenityStatus,
					LastInspection: now.Add(-time.Duration(r.Intn(30*24)) * time.Hour),
					Timestamps:     stamp(now),
				}
				if status == model.RoomMaintenance {
					room.MaintenanceIssue = "Plumbing issue in bathroom"
				}
				rooms = append(rooms, room)
				roomNumber++
			}
		}
	}
	return rooms
}

// bedSlot is one free bed in an occupied room, used to place students
// without overflowing any room's recorded occupancy.
type bedSlot struct {
	roomID string
	bed    int
}

// generateStudents fills the occupied rooms' beds first; students beyond
// the available beds stay unallocated.
func generateStudents(r *rand.Rand, rooms []model.Room, count int) []model.Student {
	now := time.Now().UTC()

	var slots []bedSlot
	for _, room := range rooms {
		if room.Status != model.RoomOccupied {
			continue
		}
		for bed := 1; bed <= room.Occupancy; bed++ {
			slots = append(slots, bedSlot{roomID: room.ID, bed: bed})
		}
	}
	r.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	var students []model.Student
	for i := 0; i < count; i++ {
		firstName := pick(r, firstNames)
		lastName := pick(r, lastNames)
		dept := pick(r, departments)
		semester := r.Intn(8) + 1
		session := pick(r, sessions)
		rollNumber := fmt.Sprintf("%s%d%03d", dept, semester, i+1)

		paymentStatus := model.PaymentPaid
		if r.Float64() <= 0.2 {
			paymentStatus = model.PaymentUnpaid
		}

		dob := time.Date(1998+r.Intn(6), time.Month(r.Intn(12)+1), r.Intn(28)+1, 0, 0, 0, 0, time.UTC)
		student := model.Student{
			ID:                   newID(),
			FullName:             firstName + " " + lastName,
			RollNumber:           rollNumber,
			UniversityRollNumber: fmt.Sprintf("PEC%s%s", session[:4], rollNumber),
			Class:                dept,
			Semester:             semester,
			Session:              session,
			Email:                fmt.Sprintf("%s.%s@college.edu", lower(firstName), lower(lastName)),
			MobileNumber:         randomPhone(r),
			EmergencyContact:     randomPhone(r),
			FathersName:          pick(r, firstNames) + " " + lastName,
			DOB:                  &dob,
			BloodGroup:           pick(r, bloodGroups),
			Address:              fmt.Sprintf("%d Main Street, City", r.Intn(1000)),
			PaymentStatus:        paymentStatus,
			Timestamps:           stamp(now),
		}
		if paymentStatus == model.PaymentPaid {
			paidDate := now.Add(-time.Duration(r.Intn(90*24)) * time.Hour)
			student.PaymentDetails = model.PaymentDetails{
				TransactionID: "TXN" + newID()[:8],
				PaidAmount:    30000,
				PaidDate:      &paidDate,
			}
		}
		if len(slots) > 0 {
			slot := slots[len(slots)-1]
			slots = slots[:len(slots)-1]
			student.RoomID = slot.roomID
			student.BedNumber = slot.bed
		}
		students = append(students, student)
	}
	return students
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func randomPhone(r *rand.Rand) string {
	return fmt.Sprintf("%d", r.Intn(9000000000)+1000000000)
}

var issueTitles = []string{
	"Broken window", "Leaking tap", "Faulty light", "Door hinge broken", "Water damage",
}

func generateMaintenanceRequests(r *rand.Rand, rooms []model.Room) []model.MaintenanceRequest {
	now := time.Now().UTC()
	statuses := []model.MaintenanceStatus{
		model.MaintenancePending, model.MaintenanceInProgress, model.MaintenanceResolved,
	}
	categories := []model.MaintenanceCategory{
		model.CategoryElectrical, model.CategoryPlumbing, model.CategoryFurniture,
		model.CategoryCleaning, model.CategoryOther,
	}
	priorities := []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

	var requests []model.MaintenanceRequest
	for i := 0; i < 15; i++ {
		status := pick(r, statuses)
		reported := now.Add(-time.Duration(r.Intn(30*24)) * time.Hour)

		request := model.MaintenanceRequest{
			ID:           newID(),
			Title:        pick(r, issueTitles),
			Description:  "Issue reported by student - needs immediate attention",
			RoomID:       pick(r, rooms).ID,
			Category:     pick(r, categories),
			Priority:     pick(r, priorities),
			Status:       status,
			ReportedBy:   fmt.Sprintf("Student %d", r.Intn(100)),
			ReportedDate: reported,
			PhotosCount:  r.Intn(4),
			Timestamps:   stamp(now),
		}
		if status != model.MaintenancePending {
			started := reported.Add(24 * time.Hour)
			estimated := reported.Add(5 * 24 * time.Hour)
			request.AssignedTechnician = fmt.Sprintf("Technician %d", r.Intn(10))
			request.StartedDate = &started
			request.EstimatedCompletion = &estimated
			request.ProgressPercentage = r.Intn(100)
		}
		if status == model.MaintenanceResolved {
			resolved := reported.Add(4 * 24 * time.Hour)
			request.ResolvedDate = &resolved
			request.ResolutionNotes = "Issue fixed successfully"
			request.ProgressPercentage = 100
		}
		requests = append(requests, request)
	}
	return requests
}

var complaintTypes = []string{"Noise", "Cleanliness", "Safety", "Food Quality", "Others"}

func generateComplaints(r *rand.Rand, students []model.Student) []model.Complaint {
	now := time.Now().UTC()
	priorities := []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

	var complaints []model.Complaint
	for i := 0; i < 8; i++ {
		status := model.ComplaintPending
		if r.Float64() > 0.5 {
			status = model.ComplaintResolved
		}
		reported := now.Add(-time.Duration(r.Intn(30*24)) * time.Hour)

		complaint := model.Complaint{
			ID:           newID(),
			StudentID:    pick(r, students).ID,
			Type:         pick(r, complaintTypes),
			Description:  "Student complaint about hostel conditions",
			Urgency:      pick(r, priorities),
			Status:       status,
			ReportedDate: reported,
			Timestamps:   stamp(now),
		}
		if status == model.ComplaintResolved {
			resolved := reported.Add(7 * 24 * time.Hour)
			complaint.ResolvedDate = &resolved
			complaint.ResolutionNotes = "Issue resolved"
		}
		complaints = append(complaints, complaint)
	}
	return complaints
}

// generateMenus seeds the rolling window: last week, this week, next week.
func generateMenus(now time.Time) []model.WeeklyMenu {
	var menus []model.WeeklyMenu
	for offset := -1; offset <= 1; offset++ {
		year, week := now.AddDate(0, 0, 7*offset).ISOWeek()
		menus = append(menus, menu.DefaultWeek(week, year))
	}
	return menus
}

var dishes = []string{
	"Samosa", "Biryani", "Momos", "Pasta", "Pizza", "Ice Cream", "Chocolate Cake", "Sushi",
}

func generateFoodRequests(r *rand.Rand) []model.FoodRequest {
	now := time.Now().UTC()
	dietaries := []model.Dietary{model.DietaryVeg, model.DietaryNonVeg, model.DietaryBoth}

	var requests []model.FoodRequest
	for i := 0; i < 10; i++ {
		created := now.Add(-time.Duration(r.Intn(30*24)) * time.Hour)
		status := model.FoodRequestActive
		if r.Float64() <= 0.3 {
			status = model.FoodRequestAccepted
		}

		requests = append(requests, model.FoodRequest{
			ID:          newID(),
			DishName:    pick(r, dishes),
			Description: "A delicious and popular dish that students love",
			MealType:    model.MealSlot(r.Intn(model.MealsPerDay)),
			Dietary:     pick(r, dietaries),
			Reason:      "Students would love to have this dish more often",
			Votes:       r.Intn(100),
			VotedBy:     []string{},
			Status:      status,
			CreatedDate: created,
			ClosingDate: created.Add(7 * 24 * time.Hour),
			Timestamps:  stamp(now),
		})
	}
	return requests
}

func generateAnnouncements(r *rand.Rand) []model.Announcement {
	types := []model.AnnouncementType{
		model.AnnouncementGeneral, model.AnnouncementUrgent, model.AnnouncementEvent,
		model.AnnouncementMaintenance, model.AnnouncementNotice,
	}
	priorities := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}

	var announcements []model.Announcement
	for i := 0; i < 5; i++ {
		created := time.Now().UTC().Add(-time.Duration(r.Intn(30*24)) * time.Hour)
		announcements = append(announcements, model.Announcement{
			ID:             newID(),
			Title:          fmt.Sprintf("Announcement %d", i+1),
			Content:        "This is an important announcement for all hostel students",
			Type:           pick(r, types),
			Priority:       pick(r, priorities),
			TargetAudience: model.TargetAudience{AllStudents: true},
			Visibility: model.Visibility{
				StartDate:           created,
				DisplayUntilRemoved: true,
			},
			Status:     model.AnnouncementActive,
			Views:      r.Intn(100),
			PostedBy:   "Warden",
			Timestamps: model.Timestamps{CreatedAt: created, UpdatedAt: created},
		})
	}
	return announcements
}

func generateActivities(r *rand.Rand) []model.Activity {
	types := []model.ActivityType{
		model.ActivityStudentAllocated, model.ActivityPaymentReceived,
		model.ActivityMaintenanceReported, model.ActivityComplaintFiled,
		model.ActivityAnnouncementPosted,
	}

	var activities []model.Activity
	for i := 0; i < 10; i++ {
		activities = append(activities, model.Activity{
			ID:          newID(),
			Type:        pick(r, types),
			Description: fmt.Sprintf("Activity %d", i+1),
			Timestamp:   time.Now().UTC().Add(-time.Duration(r.Intn(7*24)) * time.Hour),
		})
	}
	return activities
}
