package load

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is matched by every error Validate returns.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Violation is one rule a normalized input breaks.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InvalidConfigurationError lists every violation found in an input.
type InvalidConfigurationError struct {
	Violations []Violation
}

func (e *InvalidConfigurationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return fmt.Sprintf("%s: %s", ErrInvalidConfiguration, strings.Join(parts, "; "))
}

func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

/*
Check a normalized input for physically meaningless combinations.

	Args:
		in: normalized input
	Returns:
		nil, or an *InvalidConfigurationError
	Notes:
		Compute does not call this. It belongs to the boundary that accepts
		user input and decides whether to reject or only warn.
*/
func Validate(in NormalizedInput) error {
	var vs []Violation
	add := func(field, format string, args ...interface{}) {
		vs = append(vs, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
	}
	positive := func(field string, v float64) {
		if v <= 0 {
			add(field, "must be greater than 0, got %g", v)
		}
	}
	nonNegative := func(field string, v float64) {
		if v < 0 {
			add(field, "must not be negative, got %g", v)
		}
	}
	hoursOfDay := func(field string, v float64) {
		if v < 0 || v > hoursPerDay {
			add(field, "must be between 0 and 24, got %g", v)
		}
	}

	positive("length", in.Length)
	positive("width", in.Width)
	positive("height", in.Height)
	nonNegative("doorWidth", in.DoorWidth)
	nonNegative("doorHeight", in.DoorHeight)
	nonNegative("doorOpenings", in.DoorOpenings)
	positive("insulationThickness", in.InsulationThickness)

	if d := getTemperatureDifference(in.ExternalTemp, in.InternalTemp); d <= 0 {
		add("internalTemp", "must be below externalTemp (%g), got %g", in.ExternalTemp, in.InternalTemp)
	}
	hoursOfDay("operatingHours", in.OperatingHours)
	positive("pullDownTime", in.PullDownTime)

	nonNegative("dailyLoad", in.DailyLoad)
	if in.IncomingTemp < in.OutgoingTemp {
		add("incomingTemp", "must not be below outgoingTemp (%g), got %g", in.OutgoingTemp, in.IncomingTemp)
	}
	nonNegative("numberOfPeople", in.NumberOfPeople)
	hoursOfDay("workingHours", in.WorkingHours)
	nonNegative("lightingWattage", in.LightingWattage)
	nonNegative("equipmentLoad", in.EquipmentLoad)

	if len(vs) == 0 {
		return nil
	}
	return &InvalidConfigurationError{Violations: vs}
}

// Violations returns the violations carried by err, if any.
func Violations(err error) []Violation {
	var ice *InvalidConfigurationError
	if errors.As(err, &ice) {
		return ice.Violations
	}
	return nil
}
