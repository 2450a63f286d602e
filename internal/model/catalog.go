package model

// ServiceCategories lists the services a worker may offer
var ServiceCategories = []string{
	"Cooking",
	"Cleaning",
	"Plumbing",
	"Electrical Work",
	"Repairs",
	"Gardening",
	"Painting",
	"Moving Help",
}

var AvailableDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// TimeSlots is the fixed set of bookable slots. Times are "HH:MM" in 24h.
var TimeSlots = []TimeSlot{
	{Start: "09:00", End: "12:00"},
	{Start: "12:00", End: "15:00"},
	{Start: "15:00", End: "18:00"},
	{Start: "18:00", End: "21:00"},
}

func IsServiceCategory(s string) bool {
	for _, c := range ServiceCategories {
		if c == s {
			return true
		}
	}
	return false
}

func IsAvailableDay(s string) bool {
	for _, d := range AvailableDays {
		if d == s {
			return true
		}
	}
	return false
}

func IsCatalogTimeSlot(slot TimeSlot) bool {
	for _, ts := range TimeSlots {
		if ts == slot {
			return true
		}
	}
	return false
}
