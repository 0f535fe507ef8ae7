package store

import (
	"context"

	"hostel-warden-backend/internal/model"
)

// Rooms returns the full room collection.
func (s *Store) Rooms(ctx context.Context) []model.Room {
	return getList[model.Room](ctx, s, KeyRooms)
}

// SetRooms overwrites the room collection.
func (s *Store) SetRooms(ctx context.Context, rooms []model.Room) error {
	unlock := s.lock(KeyRooms)
	defer unlock()
	return setList(ctx, s, KeyRooms, rooms)
}

// AddRoom appends a room.
func (s *Store) AddRoom(ctx context.Context, room model.Room) error {
	return addRecord(ctx, s, KeyRooms, room)
}

// UpdateRoom mutates the room with the given id.
func (s *Store) UpdateRoom(ctx context.Context, id string, mutate func(*model.Room)) error {
	return updateRecord(ctx, s, KeyRooms, id, func(r *model.Room) string { return r.ID }, mutate)
}

// RoomByID looks a room up by id.
func (s *Store) RoomByID(ctx context.Context, id string) (model.Room, error) {
	return findRecord(ctx, s, KeyRooms, func(r *model.Room) bool { return r.ID == id })
}

// Students returns the full student collection.
func (s *Store) Students(ctx context.Context) []model.Student {
	return getList[model.Student](ctx, s, KeyStudents)
}

// SetStudents overwrites the student collection.
func (s *Store) SetStudents(ctx context.Context, students []model.Student) error {
	unlock := s.lock(KeyStudents)
	defer unlock()
	return setList(ctx, s, KeyStudents, students)
}

// AddStudent appends a student.
func (s *Store) AddStudent(ctx context.Context, student model.Student) error {
	return addRecord(ctx, s, KeyStudents, student)
}

// UpdateStudent mutates the student with the given id.
func (s *Store) UpdateStudent(ctx context.Context, id string, mutate func(*model.Student)) error {
	return updateRecord(ctx, s, KeyStudents, id, func(st *model.Student) string { return st.ID }, mutate)
}

// StudentByID looks a student up by id.
func (s *Store) StudentByID(ctx context.Context, id string) (model.Student, error) {
	return findRecord(ctx, s, KeyStudents, func(st *model.Student) bool { return st.ID == id })
}

// StudentsByRoom returns the students allocated to a room.
func (s *Store) StudentsByRoom(ctx context.Context, roomID string) []model.Student {
	var out []model.Student
	for _, st := range s.Students(ctx) {
		if st.RoomID == roomID {
			out = append(out, st)
		}
	}
	return out
}

// MaintenanceRequests returns the full maintenance collection.
func (s *Store) MaintenanceRequests(ctx context.Context) []model.MaintenanceRequest {
	return getList[model.MaintenanceRequest](ctx, s, KeyMaintenance)
}

// SetMaintenanceRequests overwrites the maintenance collection.
func (s *Store) SetMaintenanceRequests(ctx context.Context, requests []model.MaintenanceRequest) error {
	unlock := s.lock(KeyMaintenance)
	defer unlock()
	return setList(ctx, s, KeyMaintenance, requests)
}

// AddMaintenanceRequest appends a maintenance request.
func (s *Store) AddMaintenanceRequest(ctx context.Context, request model.MaintenanceRequest) error {
	return addRecord(ctx, s, KeyMaintenance, request)
}

// UpdateMaintenanceRequest mutates the request with the given id.
func (s *Store) UpdateMaintenanceRequest(ctx context.Context, id string, mutate func(*model.MaintenanceRequest)) error {
	return updateRecord(ctx, s, KeyMaintenance, id, func(r *model.MaintenanceRequest) string { return r.ID }, mutate)
}

// MaintenanceRequestByID looks a request up by id.
func (s *Store) MaintenanceRequestByID(ctx context.Context, id string) (model.MaintenanceRequest, error) {
	return findRecord(ctx, s, KeyMaintenance, func(r *model.MaintenanceRequest) bool { return r.ID == id })
}

// Complaints returns the full complaint collection.
func (s *Store) Complaints(ctx context.Context) []model.Complaint {
	return getList[model.Complaint](ctx, s, KeyComplaints)
}

// SetComplaints overwrites the complaint collection.
func (s *Store) SetComplaints(ctx context.Context, complaints []model.Complaint) error {
	unlock := s.lock(KeyComplaints)
	defer unlock()
	return setList(ctx, s, KeyComplaints, complaints)
}

// AddComplaint appends a complaint.
func (s *Store) AddComplaint(ctx context.Context, complaint model.Complaint) error {
	return addRecord(ctx, s, KeyComplaints, complaint)
}

// UpdateComplaint mutates the complaint with the given id.
func (s *Store) UpdateComplaint(ctx context.Context, id string, mutate func(*model.Complaint)) error {
	return updateRecord(ctx, s, KeyComplaints, id, func(c *model.Complaint) string { return c.ID }, mutate)
}

// Menus returns the full weekly menu collection.
func (s *Store) Menus(ctx context.Context) []model.WeeklyMenu {
	return getList[model.WeeklyMenu](ctx, s, KeyMenus)
}

// SetMenus overwrites the menu collection.
func (s *Store) SetMenus(ctx context.Context, menus []model.WeeklyMenu) error {
	unlock := s.lock(KeyMenus)
	defer unlock()
	return setList(ctx, s, KeyMenus, menus)
}

// AddMenu appends a weekly menu.
func (s *Store) AddMenu(ctx context.Context, menu model.WeeklyMenu) error {
	return addRecord(ctx, s, KeyMenus, menu)
}

// UpdateMenu mutates the menu with the given id.
func (s *Store) UpdateMenu(ctx context.Context, id string, mutate func(*model.WeeklyMenu)) error {
	return updateRecord(ctx, s, KeyMenus, id, func(m *model.WeeklyMenu) string { return m.ID }, mutate)
}

// MenuByWeek looks a menu up by week and year.
func (s *Store) MenuByWeek(ctx context.Context, week, year int) (model.WeeklyMenu, error) {
	return findRecord(ctx, s, KeyMenus, func(m *model.WeeklyMenu) bool {
		return m.Week == week && m.Year == year
	})
}

// FoodRequests returns the full food request collection.
func (s *Store) FoodRequests(ctx context.Context) []model.FoodRequest {
	return getList[model.FoodRequest](ctx, s, KeyFoodRequests)
}

// SetFoodRequests overwrites the food request collection.
func (s *Store) SetFoodRequests(ctx context.Context, requests []model.FoodRequest) error {
	unlock := s.lock(KeyFoodRequests)
	defer unlock()
	return setList(ctx, s, KeyFoodRequests, requests)
}

// AddFoodRequest appends a food request.
func (s *Store) AddFoodRequest(ctx context.Context, request model.FoodRequest) error {
	return addRecord(ctx, s, KeyFoodRequests, request)
}

// UpdateFoodRequest mutates the food request with the given id.
func (s *Store) UpdateFoodRequest(ctx context.Context, id string, mutate func(*model.FoodRequest)) error {
	return updateRecord(ctx, s, KeyFoodRequests, id, func(r *model.FoodRequest) string { return r.ID }, mutate)
}

// Announcements returns the full announcement collection.
func (s *Store) Announcements(ctx context.Context) []model.Announcement {
	return getList[model.Announcement](ctx, s, KeyAnnouncements)
}

// SetAnnouncements overwrites the announcement collection.
func (s *Store) SetAnnouncements(ctx context.Context, announcements []model.Announcement) error {
	unlock := s.lock(KeyAnnouncements)
	defer unlock()
	return setList(ctx, s, KeyAnnouncements, announcements)
}

// AddAnnouncement appends an announcement.
func (s *Store) AddAnnouncement(ctx context.Context, announcement model.Announcement) error {
	return addRecord(ctx, s, KeyAnnouncements, announcement)
}

// UpdateAnnouncement mutates the announcement with the given id.
func (s *Store) UpdateAnnouncement(ctx context.Context, id string, mutate func(*model.Announcement)) error {
	return updateRecord(ctx, s, KeyAnnouncements, id, func(a *model.Announcement) string { return a.ID }, mutate)
}

// AnnouncementByID looks an announcement up by id.
func (s *Store) AnnouncementByID(ctx context.Context, id string) (model.Announcement, error) {
	return findRecord(ctx, s, KeyAnnouncements, func(a *model.Announcement) bool { return a.ID == id })
}

// Activities returns the full activity log.
func (s *Store) Activities(ctx context.Context) []model.Activity {
	return getList[model.Activity](ctx, s, KeyActivities)
}

// SetActivities overwrites the activity log.
func (s *Store) SetActivities(ctx context.Context, activities []model.Activity) error {
	unlock := s.lock(KeyActivities)
	defer unlock()
	return setList(ctx, s, KeyActivities, activities)
}

// AddActivity appends a log entry.
func (s *Store) AddActivity(ctx context.Context, activity model.Activity) error {
	return addRecord(ctx, s, KeyActivities, activity)
}

// Payments returns the full payment collection.
func (s *Store) Payments(ctx context.Context) []model.Payment {
	return getList[model.Payment](ctx, s, KeyPayments)
}

// SetPayments overwrites the payment collection.
func (s *Store) SetPayments(ctx context.Context, payments []model.Payment) error {
	unlock := s.lock(KeyPayments)
	defer unlock()
	return setList(ctx, s, KeyPayments, payments)
}

// AddPayment appends a payment record.
func (s *Store) AddPayment(ctx context.Context, payment model.Payment) error {
	return addRecord(ctx, s, KeyPayments, payment)
}

// Subscriptions returns the full push subscription collection.
func (s *Store) Subscriptions(ctx context.Context) []model.PushSubscription {
	return getList[model.PushSubscription](ctx, s, KeySubscriptions)
}

// SaveSubscription creates or replaces a subscription, keyed by endpoint.
func (s *Store) SaveSubscription(ctx context.Context, sub model.PushSubscription) error {
	unlock := s.lock(KeySubscriptions)
	defer unlock()

	subs := getList[model.PushSubscription](ctx, s, KeySubscriptions)
	for i := range subs {
		if subs[i].Endpoint == sub.Endpoint {
			subs[i] = sub
			return setList(ctx, s, KeySubscriptions, subs)
		}
	}
	subs = append(subs, sub)
	return setList(ctx, s, KeySubscriptions, subs)
}

// DeleteSubscription removes the subscription with the given endpoint.
// Deleting an unknown endpoint is a no-op.
func (s *Store) DeleteSubscription(ctx context.Context, endpoint string) error {
	unlock := s.lock(KeySubscriptions)
	defer unlock()

	subs := getList[model.PushSubscription](ctx, s, KeySubscriptions)
	kept := subs[:0]
	for _, sub := range subs {
		if sub.Endpoint != endpoint {
			kept = append(kept, sub)
		}
	}
	return setList(ctx, s, KeySubscriptions, kept)
}

// SubscriptionByEndpoint looks a subscription up by endpoint.
func (s *Store) SubscriptionByEndpoint(ctx context.Context, endpoint string) (model.PushSubscription, error) {
	return findRecord(ctx, s, KeySubscriptions, func(sub *model.PushSubscription) bool {
		return sub.Endpoint == endpoint
	})
}
