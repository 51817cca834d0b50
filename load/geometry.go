package load

// Dimensions of the room and its door, m.
type Dimensions struct {
	Length     float64 `json:"length"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	DoorWidth  float64 `json:"doorWidth"`
	DoorHeight float64 `json:"doorHeight"`
}

// Areas of the room surfaces, m2.
type Areas struct {
	Wall    float64 `json:"wall"`
	Ceiling float64 `json:"ceiling"`
	Floor   float64 `json:"floor"`
	Door    float64 `json:"door"`
}

type geometry struct {
	dimensions Dimensions
	areas      Areas
	volume     float64 // m3
}

/*
Derive surface areas and volume from the normalized dimensions.

	Args:
		d: room and door dimensions, m
	Returns:
		areas, m2 and volume, m3
	Notes:
		The wall area is the full perimeter times the height; the door area is
		not subtracted from it.
*/
func getGeometry(d Dimensions) geometry {
	floorArea := d.Length * d.Width
	return geometry{
		dimensions: d,
		areas: Areas{
			Wall:    2 * (d.Length + d.Width) * d.Height,
			Ceiling: floorArea,
			Floor:   floorArea,
			Door:    d.DoorWidth * d.DoorHeight,
		},
		volume: d.Length * d.Width * d.Height,
	}
}

// External minus internal temperature, K
func getTemperatureDifference(externalTemp, internalTemp float64) float64 {
	return externalTemp - internalTemp
}
