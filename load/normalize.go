package load

import (
	"math"
	"strconv"
	"strings"
)

// Defaults substituted for missing or unparseable fields.
const (
	DefaultLength              = 5.0
	DefaultWidth               = 4.0
	DefaultHeight              = 3.0
	DefaultDoorWidth           = 1.2
	DefaultDoorHeight          = 2.1
	DefaultDoorOpenings        = 20.0
	DefaultInsulationType      = "PUF"
	DefaultInsulationThickness = 100.0
	DefaultExternalTemp        = 35.0
	DefaultInternalTemp        = 4.0
	DefaultOperatingHours      = 24.0
	DefaultPullDownTime        = 6.0
	DefaultProductType         = "General Food Items"
	DefaultDailyLoad           = 2000.0
	DefaultIncomingTemp        = 25.0
	DefaultOutgoingTemp        = 4.0
	DefaultStorageType         = "Palletized"
	DefaultNumberOfPeople      = 2.0
	DefaultWorkingHours        = 6.0
	DefaultLightingWattage     = 200.0
	DefaultEquipmentLoad       = 500.0
)

// NormalizedInput is the fully populated input of one calculation.
type NormalizedInput struct {
	Length              float64 `json:"length"`
	Width               float64 `json:"width"`
	Height              float64 `json:"height"`
	DoorWidth           float64 `json:"doorWidth"`
	DoorHeight          float64 `json:"doorHeight"`
	DoorOpenings        float64 `json:"doorOpenings"`
	InsulationType      string  `json:"insulationType"`
	InsulationThickness float64 `json:"insulationThickness"`

	ExternalTemp   float64 `json:"externalTemp"`
	InternalTemp   float64 `json:"internalTemp"`
	OperatingHours float64 `json:"operatingHours"`
	PullDownTime   float64 `json:"pullDownTime"`

	ProductType     string  `json:"productType"`
	DailyLoad       float64 `json:"dailyLoad"`
	IncomingTemp    float64 `json:"incomingTemp"`
	OutgoingTemp    float64 `json:"outgoingTemp"`
	StorageType     string  `json:"storageType"`
	NumberOfPeople  float64 `json:"numberOfPeople"`
	WorkingHours    float64 `json:"workingHours"`
	LightingWattage float64 `json:"lightingWattage"`
	EquipmentLoad   float64 `json:"equipmentLoad"`
}

type normalizer struct {
	// a parsed 0 is treated like a missing field
	zeroIsMissing bool
}

/*
Fill every field of the three raw inputs.

	Notes:
		Never fails. Empty, non-numeric and non-finite fields take their default.
*/
func (n normalizer) normalize(room RoomInput, conditions ConditionsInput, product ProductInput) NormalizedInput {
	return NormalizedInput{
		Length:              n.number(room.Length, DefaultLength),
		Width:               n.number(room.Width, DefaultWidth),
		Height:              n.number(room.Height, DefaultHeight),
		DoorWidth:           n.number(room.DoorWidth, DefaultDoorWidth),
		DoorHeight:          n.number(room.DoorHeight, DefaultDoorHeight),
		DoorOpenings:        n.number(room.DoorOpenings, DefaultDoorOpenings),
		InsulationType:      key(room.InsulationType, DefaultInsulationType),
		InsulationThickness: n.number(room.InsulationThickness, DefaultInsulationThickness),

		ExternalTemp:   n.number(conditions.ExternalTemp, DefaultExternalTemp),
		InternalTemp:   n.number(conditions.InternalTemp, DefaultInternalTemp),
		OperatingHours: n.number(conditions.OperatingHours, DefaultOperatingHours),
		PullDownTime:   n.number(conditions.PullDownTime, DefaultPullDownTime),

		ProductType:     key(product.ProductType, DefaultProductType),
		DailyLoad:       n.number(product.DailyLoad, DefaultDailyLoad),
		IncomingTemp:    n.number(product.IncomingTemp, DefaultIncomingTemp),
		OutgoingTemp:    n.number(product.OutgoingTemp, DefaultOutgoingTemp),
		StorageType:     key(product.StorageType, DefaultStorageType),
		NumberOfPeople:  n.number(product.NumberOfPeople, DefaultNumberOfPeople),
		WorkingHours:    n.number(product.WorkingHours, DefaultWorkingHours),
		LightingWattage: n.number(product.LightingWattage, DefaultLightingWattage),
		EquipmentLoad:   n.number(product.EquipmentLoad, DefaultEquipmentLoad),
	}
}

func (n normalizer) number(v RawValue, fallback float64) float64 {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	if n.zeroIsMissing && f == 0 {
		return fallback
	}
	return f
}

func key(v RawValue, fallback string) string {
	if strings.TrimSpace(string(v)) == "" {
		return fallback
	}
	return string(v)
}
