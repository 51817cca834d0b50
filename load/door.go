package load

import "math"

// DoorLoad is the heat brought in through door openings, kW.
type DoorLoad struct {
	Openings float64 `json:"openings"` // per day
	Total    float64 `json:"total"`
}

// Door-opening load, kW. Mixing at the door grows with the square root of the
// temperature difference; a negative difference yields NaN.
func getDoorLoad(doorOpenings, doorArea, deltaTheta float64) DoorLoad {
	q := doorOpenings * doorArea * doorMixingCoefficient * math.Sqrt(deltaTheta) / hoursPerDay / wattsPerKilowatt
	return DoorLoad{
		Openings: doorOpenings,
		Total:    q,
	}
}
