package load

import (
	"encoding/json"
	"strconv"
)

// Insulation types in the built-in U-factor table.
const (
	InsulationPUF      = "PUF"
	InsulationPIR      = "PIR"
	InsulationEPS      = "EPS"
	InsulationXPS      = "XPS"
	InsulationRockwool = "Rockwool"
)

// UFactors maps insulation type, then thickness in mm, to a U-factor in W/m2 K.
type UFactors map[string]map[float64]float64

// MarshalJSON writes thickness keys as decimal text.
func (u UFactors) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]float64, len(u))
	for typ, byThickness := range u {
		m := make(map[string]float64, len(byThickness))
		for thickness, v := range byThickness {
			m[strconv.FormatFloat(thickness, 'g', -1, 64)] = v
		}
		out[typ] = m
	}
	return json.Marshal(out)
}

// ThermalConstants are the envelope, air and occupancy constants.
type ThermalConstants struct {
	UFactors        UFactors           `json:"uFactors"`
	AirChangeRates  map[string]float64 `json:"airChangeRates"`  // 1/h
	AirDensity      float64            `json:"airDensity"`      // kg/m3
	AirSpecificHeat float64            `json:"airSpecificHeat"` // kJ/kg K
	PersonHeatLoad  float64            `json:"personHeatLoad"`  // kW/person
	SafetyFactor    float64            `json:"safetyFactor"`    // -, > 1
}

// Product holds the physical properties of a stored product.
type Product struct {
	Density           float64 `json:"density"`           // kg/m3
	StorageEfficiency float64 `json:"storageEfficiency"` // -
	SpecificHeatAbove float64 `json:"specificHeatAbove"` // kJ/kg K, above freezing
}

// Tables are the read-only lookup tables a Calculator resolves against.
type Tables struct {
	Thermal        ThermalConstants   `json:"thermal"`
	Products       map[string]Product `json:"products"`
	StorageFactors map[string]float64 `json:"storageFactors"`
}

var defaultProduct = Product{Density: 400, StorageEfficiency: 0.60, SpecificHeatAbove: 3.50}

const (
	defaultStorageFactor = 0.85
	defaultColdRoomACR   = 0.5
)

// DefaultTables returns a fresh copy of the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Thermal: ThermalConstants{
			UFactors: UFactors{
				InsulationPUF: {
					50: 0.48, 60: 0.40, 75: 0.33, 80: 0.31,
					100: 0.25, 125: 0.20, 150: 0.17, 200: 0.13,
				},
				InsulationPIR: {
					50: 0.42, 60: 0.35, 80: 0.27, 100: 0.21,
					125: 0.17, 150: 0.14, 200: 0.10,
				},
				InsulationEPS: {
					50: 0.70, 75: 0.47, 100: 0.36, 125: 0.29,
					150: 0.24, 200: 0.18,
				},
				InsulationXPS: {
					50: 0.60, 75: 0.40, 100: 0.30, 125: 0.24, 150: 0.20,
				},
				InsulationRockwool: {
					50: 0.78, 75: 0.52, 100: 0.40, 150: 0.27, 200: 0.20,
				},
			},
			AirChangeRates: map[string]float64{
				coldRoomCategory: defaultColdRoomACR,
				"freezerRoom":    0.3,
				"antiRoom":       1.0,
				"processArea":    2.0,
			},
			AirDensity:      1.2,
			AirSpecificHeat: 1.005,
			PersonHeatLoad:  0.27,
			SafetyFactor:    1.1,
		},
		Products: map[string]Product{
			DefaultProductType: defaultProduct,
			"Fruits":           {Density: 350, StorageEfficiency: 0.65, SpecificHeatAbove: 3.60},
			"Vegetables":       {Density: 320, StorageEfficiency: 0.65, SpecificHeatAbove: 3.90},
			"Dairy Products":   {Density: 500, StorageEfficiency: 0.70, SpecificHeatAbove: 3.30},
			"Meat":             {Density: 550, StorageEfficiency: 0.60, SpecificHeatAbove: 3.10},
			"Fish & Seafood":   {Density: 500, StorageEfficiency: 0.60, SpecificHeatAbove: 3.60},
			"Beverages":        {Density: 700, StorageEfficiency: 0.75, SpecificHeatAbove: 3.80},
			"Pharmaceuticals":  {Density: 250, StorageEfficiency: 0.55, SpecificHeatAbove: 2.10},
			"Flowers":          {Density: 150, StorageEfficiency: 0.50, SpecificHeatAbove: 3.70},
			"Eggs":             {Density: 350, StorageEfficiency: 0.65, SpecificHeatAbove: 3.20},
		},
		StorageFactors: map[string]float64{
			DefaultStorageType: defaultStorageFactor,
			"Racked":           0.75,
			"Bulk":             0.95,
			"Shelved":          0.65,
			"Crated":           0.80,
		},
	}
}

// Resolve looks up table[primary][secondary] and returns fallback if either
// key is absent.
func Resolve[K1, K2 comparable, V any](table map[K1]map[K2]V, primary K1, secondary K2, fallback V) V {
	inner, ok := table[primary]
	if !ok {
		return fallback
	}
	v, ok := inner[secondary]
	if !ok {
		return fallback
	}
	return v
}

// ResolveUFactor returns the U-factor for the insulation, W/m2 K.
func (t Tables) ResolveUFactor(insulationType string, thickness float64) float64 {
	return Resolve(map[string]map[float64]float64(t.Thermal.UFactors), insulationType, thickness, defaultUFactor)
}

// ResolveProduct returns the product record and the key it was found under.
// An unknown key resolves to the default product.
func (t Tables) ResolveProduct(productType string) (Product, string) {
	if p, ok := t.Products[productType]; ok {
		return p, productType
	}
	if p, ok := t.Products[DefaultProductType]; ok {
		return p, DefaultProductType
	}
	return defaultProduct, DefaultProductType
}

// ResolveStorageFactor returns the storage factor and the key it was found under.
// An unknown key resolves to the default storage method.
func (t Tables) ResolveStorageFactor(storageType string) (float64, string) {
	if f, ok := t.StorageFactors[storageType]; ok {
		return f, storageType
	}
	if f, ok := t.StorageFactors[DefaultStorageType]; ok {
		return f, DefaultStorageType
	}
	return defaultStorageFactor, DefaultStorageType
}

// ColdRoomAirChangeRate returns the cold room air change rate, 1/h.
func (t Tables) ColdRoomAirChangeRate() float64 {
	if r, ok := t.Thermal.AirChangeRates[coldRoomCategory]; ok {
		return r
	}
	return defaultColdRoomACR
}
