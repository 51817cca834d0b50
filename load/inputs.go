package load

// RoomInput is the room geometry and envelope as entered by the user.
type RoomInput struct {
	Length              RawValue `json:"length"`              // m
	Width               RawValue `json:"width"`               // m
	Height              RawValue `json:"height"`              // m
	DoorWidth           RawValue `json:"doorWidth"`           // m
	DoorHeight          RawValue `json:"doorHeight"`          // m
	DoorOpenings        RawValue `json:"doorOpenings"`        // openings per day
	InsulationType      RawValue `json:"insulationType"`      // key into the U-factor table
	InsulationThickness RawValue `json:"insulationThickness"` // mm
}

// ConditionsInput is the ambient and operating conditions as entered by the user.
type ConditionsInput struct {
	ExternalTemp   RawValue `json:"externalTemp"`   // degree C
	InternalTemp   RawValue `json:"internalTemp"`   // degree C
	OperatingHours RawValue `json:"operatingHours"` // h/day
	PullDownTime   RawValue `json:"pullDownTime"`   // h
}

// ProductInput is the stored product and the internal gains as entered by the user.
type ProductInput struct {
	ProductType     RawValue `json:"productType"`     // key into the product table
	DailyLoad       RawValue `json:"dailyLoad"`       // kg/day
	IncomingTemp    RawValue `json:"incomingTemp"`    // degree C
	OutgoingTemp    RawValue `json:"outgoingTemp"`    // degree C
	StorageType     RawValue `json:"storageType"`     // key into the storage factor table
	NumberOfPeople  RawValue `json:"numberOfPeople"`  // persons
	WorkingHours    RawValue `json:"workingHours"`    // h/day
	LightingWattage RawValue `json:"lightingWattage"` // W
	EquipmentLoad   RawValue `json:"equipmentLoad"`   // W
}

// Fields returns the input fields keyed by their JSON name.
func (r *RoomInput) Fields() map[string]*RawValue {
	return map[string]*RawValue{
		"length":              &r.Length,
		"width":               &r.Width,
		"height":              &r.Height,
		"doorWidth":           &r.DoorWidth,
		"doorHeight":          &r.DoorHeight,
		"doorOpenings":        &r.DoorOpenings,
		"insulationType":      &r.InsulationType,
		"insulationThickness": &r.InsulationThickness,
	}
}

// Fields returns the input fields keyed by their JSON name.
func (c *ConditionsInput) Fields() map[string]*RawValue {
	return map[string]*RawValue{
		"externalTemp":   &c.ExternalTemp,
		"internalTemp":   &c.InternalTemp,
		"operatingHours": &c.OperatingHours,
		"pullDownTime":   &c.PullDownTime,
	}
}

// Fields returns the input fields keyed by their JSON name.
func (p *ProductInput) Fields() map[string]*RawValue {
	return map[string]*RawValue{
		"productType":     &p.ProductType,
		"dailyLoad":       &p.DailyLoad,
		"incomingTemp":    &p.IncomingTemp,
		"outgoingTemp":    &p.OutgoingTemp,
		"storageType":     &p.StorageType,
		"numberOfPeople":  &p.NumberOfPeople,
		"workingHours":    &p.WorkingHours,
		"lightingWattage": &p.LightingWattage,
		"equipmentLoad":   &p.EquipmentLoad,
	}
}
