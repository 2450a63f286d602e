package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailability_Covers(t *testing.T) {
	a := Availability{
		Days:      []string{"Monday", "Wednesday"},
		TimeSlots: []TimeSlot{{Start: "09:00", End: "12:00"}},
	}

	// 2024-06-03 is a Monday
	assert.True(t, a.Covers(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)))
	assert.True(t, a.Covers(time.Date(2024, 6, 3, 11, 59, 0, 0, time.UTC)))
	assert.False(t, a.Covers(time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)), "slot end is exclusive")
	assert.False(t, a.Covers(time.Date(2024, 6, 3, 8, 59, 0, 0, time.UTC)))
	assert.False(t, a.Covers(time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC)), "tuesday is not available")

	// 13:30 at UTC+4 is 09:30 UTC on the same Monday
	loc := time.FixedZone("UTC+4", 4*3600)
	assert.True(t, a.Covers(time.Date(2024, 6, 3, 13, 30, 0, 0, loc)))
}

func TestAvailability_CoversEmpty(t *testing.T) {
	assert.False(t, Availability{}.Covers(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)))
}

func TestWorkerPatch_IsEmpty(t *testing.T) {
	assert.True(t, WorkerPatch{}.IsEmpty())
	loc := "Berlin"
	assert.False(t, WorkerPatch{Location: &loc}.IsEmpty())
}

func TestInsertWorker_ToWorker(t *testing.T) {
	exp := 4
	about := "tidy and punctual"
	in := InsertWorker{
		WorkingStatus:  WorkingStatusEmployed,
		Location:       "Lisbon",
		Services:       []string{"Cleaning"},
		Experience:     &exp,
		Availability:   &Availability{Days: []string{"Friday"}, TimeSlots: []TimeSlot{TimeSlots[2]}},
		About:          &about,
		Certifications: []string{},
	}

	w := in.ToWorker(7)
	assert.Equal(t, int64(7), w.UserID)
	assert.Equal(t, 4, w.Experience)
	assert.Equal(t, []string{"Friday"}, w.Availability.Days)
	assert.Nil(t, w.Rating)
	assert.Zero(t, w.ID)
}

func TestCatalogHelpers(t *testing.T) {
	assert.True(t, IsServiceCategory("Electrical Work"))
	assert.False(t, IsServiceCategory("electrical work"))
	assert.True(t, IsAvailableDay("Sunday"))
	assert.False(t, IsAvailableDay("Funday"))
	assert.True(t, IsCatalogTimeSlot(TimeSlot{Start: "18:00", End: "21:00"}))
	assert.False(t, IsCatalogTimeSlot(TimeSlot{Start: "09:00", End: "10:00"}))
}
