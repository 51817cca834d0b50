package load

// ProductLoad is the heat removed from incoming product, kW.
type ProductLoad struct {
	SensibleHeat float64 `json:"sensibleHeat"`
	LatentHeat   float64 `json:"latentHeat"`
	Total        float64 `json:"total"`
}

/*
Calculate the load of pulling incoming product down to its outgoing temperature.

	Args:
		dailyLoad: product brought in per day, kg/day
		p: stored product
		incomingTemp: product temperature on arrival, degree C
		outgoingTemp: product temperature to reach, degree C
		pullDownTime: hours allowed for the pull-down, h
	Returns:
		product load, kW
	Notes:
		The room operates above freezing, so the product never changes phase
		and the latent part is always zero.
*/
func getProductLoad(dailyLoad float64, p Product, incomingTemp, outgoingTemp, pullDownTime float64) ProductLoad {
	sensible := dailyLoad * p.SpecificHeatAbove * (incomingTemp - outgoingTemp) / (pullDownTime * hourScale)
	return ProductLoad{
		SensibleHeat: sensible,
		LatentHeat:   0,
		Total:        sensible,
	}
}
