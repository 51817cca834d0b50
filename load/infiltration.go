package load

// InfiltrationLoad is the heat carried in by outside air, kW.
type InfiltrationLoad struct {
	AirChangeRate float64 `json:"airChangeRate"` // 1/h
	Total         float64 `json:"total"`
}

/*
Calculate the air infiltration load.

	Args:
		volume: room volume, m3
		t: thermal constants (air density, air specific heat)
		deltaTheta: external minus internal temperature, K
		airChangeRate: air changes per hour, 1/h
	Returns:
		infiltration load, kW
	Notes:
		The air change rate is always the cold room category of the table,
		never a per-call value.
*/
func getInfiltrationLoad(volume float64, t ThermalConstants, deltaTheta float64, airChangeRate float64) InfiltrationLoad {
	q := volume * t.AirDensity * t.AirSpecificHeat * deltaTheta * airChangeRate / hourScale
	return InfiltrationLoad{
		AirChangeRate: airChangeRate,
		Total:         q,
	}
}
