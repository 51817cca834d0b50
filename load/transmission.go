package load

import "gonum.org/v1/gonum/floats"

// TransmissionLoad is the heat conducted through the envelope, kW.
type TransmissionLoad struct {
	Walls   float64 `json:"walls"`
	Ceiling float64 `json:"ceiling"`
	Floor   float64 `json:"floor"`
	Total   float64 `json:"total"`
}

/*
Calculate the transmission load through walls, ceiling and floor.

	Args:
		uFactor: U-factor of the envelope, W/m2 K
		a: surface areas, m2
		deltaTheta: external minus internal temperature, K
	Returns:
		transmission load per surface and in total, kW
	Notes:
		Linear in the temperature difference. A negative difference gives a
		negative load; rejecting that is up to the caller.
*/
func getTransmissionLoad(uFactor float64, a Areas, deltaTheta float64) TransmissionLoad {
	surfaces := []float64{a.Wall, a.Ceiling, a.Floor}

	q := make([]float64, len(surfaces))
	for i, area := range surfaces {
		q[i] = uFactor * area * deltaTheta / wattsPerKilowatt
	}

	return TransmissionLoad{
		Walls:   q[0],
		Ceiling: q[1],
		Floor:   q[2],
		Total:   floats.Sum(q),
	}
}
