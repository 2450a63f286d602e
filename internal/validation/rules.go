package validation

import (
	"log"

	"service_marketplace/internal/model"

	"github.com/go-playground/validator/v10"
)

func registerRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("service_category", func(fl validator.FieldLevel) bool {
		return model.IsServiceCategory(fl.Field().String())
	})
	mustRegister("weekday", func(fl validator.FieldLevel) bool {
		return model.IsAvailableDay(fl.Field().String())
	})

	v.RegisterStructValidation(validateTimeSlot, model.TimeSlot{})
}

// validateTimeSlot only accepts the slots offered in the catalog
func validateTimeSlot(sl validator.StructLevel) {
	slot := sl.Current().Interface().(model.TimeSlot)
	if !model.IsCatalogTimeSlot(slot) {
		sl.ReportError(slot.Start, "start", "Start", "time_slot", "")
	}
}
