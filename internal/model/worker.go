package model

import (
	"strings"
	"time"
)

type WorkingStatus string

const (
	WorkingStatusEmployed   WorkingStatus = "employed"
	WorkingStatusUnemployed WorkingStatus = "unemployed"
	WorkingStatusStudent    WorkingStatus = "student"
)

// TimeSlot is a bookable window within a day
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether the "HH:MM" clock time falls in [Start, End).
// Zero-padded 24h strings order lexically.
func (ts TimeSlot) Contains(clock string) bool {
	return clock >= ts.Start && clock < ts.End
}

// Availability is stored as a JSON document on the workers table
type Availability struct {
	Days      []string   `json:"days" validate:"required,dive,weekday"`
	TimeSlots []TimeSlot `json:"timeSlots" validate:"required,dive"`
}

// Covers reports whether t (taken in UTC) lands on one of the available days
// and inside one of the available slots.
func (a Availability) Covers(t time.Time) bool {
	t = t.UTC()
	dayOK := false
	for _, d := range a.Days {
		if strings.EqualFold(d, t.Weekday().String()) {
			dayOK = true
			break
		}
	}
	if !dayOK {
		return false
	}

	clock := t.Format("15:04")
	for _, slot := range a.TimeSlots {
		if slot.Contains(clock) {
			return true
		}
	}
	return false
}

// Worker is a service-provider profile owned by a worker-type user
type Worker struct {
	ID             int64         `json:"id"`
	UserID         int64         `json:"userId"`
	WorkingStatus  WorkingStatus `json:"workingStatus"`
	Location       string        `json:"location"`
	Services       []string      `json:"services"`
	Experience     int           `json:"experience"`
	Availability   Availability  `json:"availability"`
	About          *string       `json:"about"`
	Certifications []string      `json:"certifications"`
	Rating         *int          `json:"rating"` // Set by reviews, never by the API
}

// InsertWorker is the profile creation payload. The owning user comes from the session.
type InsertWorker struct {
	WorkingStatus  WorkingStatus `json:"workingStatus" validate:"required,oneof=employed unemployed student"`
	Location       string        `json:"location" validate:"required"`
	Services       []string      `json:"services" validate:"required,min=1,dive,service_category"`
	Experience     *int          `json:"experience" validate:"required,min=0"`
	Availability   *Availability `json:"availability" validate:"required"`
	About          *string       `json:"about"`
	Certifications []string      `json:"certifications" validate:"required"`
}

// WorkerPatch carries a merge-patch: nil fields keep their stored value
type WorkerPatch struct {
	WorkingStatus  *WorkingStatus `json:"workingStatus,omitempty" validate:"omitempty,oneof=employed unemployed student"`
	Location       *string        `json:"location,omitempty" validate:"omitempty,min=1"`
	Services       *[]string      `json:"services,omitempty" validate:"omitempty,min=1,dive,service_category"`
	Experience     *int           `json:"experience,omitempty" validate:"omitempty,min=0"`
	Availability   *Availability  `json:"availability,omitempty"`
	About          *string        `json:"about,omitempty"`
	Certifications *[]string      `json:"certifications,omitempty"`
}

// IsEmpty reports whether the patch sets no field at all
func (p WorkerPatch) IsEmpty() bool {
	return p.WorkingStatus == nil && p.Location == nil && p.Services == nil &&
		p.Experience == nil && p.Availability == nil && p.About == nil && p.Certifications == nil
}

// ToWorker builds the row to insert for the given owner
func (in InsertWorker) ToWorker(userID int64) *Worker {
	w := &Worker{
		UserID:         userID,
		WorkingStatus:  in.WorkingStatus,
		Location:       in.Location,
		Services:       in.Services,
		About:          in.About,
		Certifications: in.Certifications,
	}
	if in.Experience != nil {
		w.Experience = *in.Experience
	}
	if in.Availability != nil {
		w.Availability = *in.Availability
	}
	return w
}
