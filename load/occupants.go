package load

import "gonum.org/v1/gonum/floats"

// InternalLoad is the heat released inside the room, kW.
type InternalLoad struct {
	People    float64 `json:"people"`
	Lighting  float64 `json:"lighting"`
	Equipment float64 `json:"equipment"`
	Total     float64 `json:"total"`
}

// Fraction of the day a source is active, -
func dutyFraction(hours float64) float64 {
	return hours / hoursPerDay
}

/*
Calculate the heat released by people, lighting and equipment.

	Args:
		numberOfPeople: persons working in the room
		personHeatLoad: heat released per person, kW
		workingHours: hours per day people are in the room, h
		lightingWattage: installed lighting, W
		operatingHours: hours per day the room operates, h
		equipmentLoad: equipment heat, W
	Returns:
		internal load, kW
	Notes:
		People and lighting are averaged over the day by their duty cycle
		rather than taken at peak; equipment is taken as continuous.
*/
func getInternalLoad(
	numberOfPeople float64,
	personHeatLoad float64,
	workingHours float64,
	lightingWattage float64,
	operatingHours float64,
	equipmentLoad float64,
) InternalLoad {
	people := numberOfPeople * personHeatLoad * dutyFraction(workingHours)
	lighting := lightingWattage * dutyFraction(operatingHours) / wattsPerKilowatt
	equipment := equipmentLoad / wattsPerKilowatt

	return InternalLoad{
		People:    people,
		Lighting:  lighting,
		Equipment: equipment,
		Total:     floats.Sum([]float64{people, lighting, equipment}),
	}
}
