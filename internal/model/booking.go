package model

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingParty is the side of a booking a caller acts for
type BookingParty string

const (
	PartyCustomer BookingParty = "customer"
	PartyWorker   BookingParty = "worker"
)

// Booking is a reservation of a worker by a customer
type Booking struct {
	ID          int64         `json:"id"`
	CustomerID  int64         `json:"customerId"`
	WorkerID    int64         `json:"workerId"`
	ServiceType string        `json:"serviceType"`
	Date        time.Time     `json:"date"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// InsertBooking is the reservation payload. The customer comes from the session.
type InsertBooking struct {
	WorkerID    int64         `json:"workerId" validate:"required,gt=0"`
	ServiceType string        `json:"serviceType" validate:"required"`
	Date        time.Time     `json:"date" validate:"required"`
	Status      BookingStatus `json:"status" validate:"omitempty,eq=pending"`
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// transitions lists, per current status, which party may move the booking to which status
var transitions = map[BookingStatus]map[BookingStatus][]BookingParty{
	BookingStatusPending: {
		BookingStatusConfirmed: {PartyWorker},
		BookingStatusCancelled: {PartyWorker, PartyCustomer},
	},
	BookingStatusConfirmed: {
		BookingStatusCompleted: {PartyWorker},
	},
}

// CanTransition reports whether party may move a booking from s to next.
// Re-applying the current status is always allowed so status updates stay idempotent.
func (s BookingStatus) CanTransition(next BookingStatus, party BookingParty) bool {
	if s == next {
		return true
	}
	for _, p := range transitions[s][next] {
		if p == party {
			return true
		}
	}
	return false
}
