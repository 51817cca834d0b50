// Package load computes the refrigeration load of a cold storage room.
//
// The calculation is a single synchronous pass over the normalized inputs
// and a set of read-only lookup tables. It never fails: missing or invalid
// input falls back to documented defaults, and unknown table keys fall back
// to default entries. Physically invalid combinations (for example an
// internal temperature above the external one) are not corrected here; see
// Validate.
package load

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LoadResult is a snapshot of one calculation with every intermediate figure.
type LoadResult struct {
	Dimensions            Dimensions `json:"dimensions"`
	Areas                 Areas      `json:"areas"`
	Volume                float64    `json:"volume"`                // m3
	TemperatureDifference float64    `json:"temperatureDifference"` // K

	InsulationType      string  `json:"insulationType"`
	InsulationThickness float64 `json:"insulationThickness"` // mm
	UFactor             float64 `json:"uFactor"`             // W/m2 K
	ProductType         string  `json:"productType"`         // resolved key
	StorageType         string  `json:"storageType"`         // resolved key
	StorageFactor       float64 `json:"storageFactor"`

	Storage      StorageCapacity  `json:"storage"`
	Transmission TransmissionLoad `json:"transmission"`
	Product      ProductLoad      `json:"product"`
	Infiltration InfiltrationLoad `json:"infiltration"`
	Internal     InternalLoad     `json:"internal"`
	Door         DoorLoad         `json:"door"`

	TotalLoad           float64 `json:"totalLoad"`           // kW
	SafetyFactor        float64 `json:"safetyFactor"`        // -
	TotalLoadWithSafety float64 `json:"totalLoadWithSafety"` // kW
	RefrigerationTons   float64 `json:"refrigerationTons"`   // TR
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLegacyZeroDefaults makes a parsed zero fall back to the field default,
// the way a missing field does.
func WithLegacyZeroDefaults() Option {
	return func(c *Calculator) {
		c.normalizer.zeroIsMissing = true
	}
}

// Calculator computes loads against a fixed set of tables. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	tables     Tables
	normalizer normalizer
}

// NewCalculator returns a Calculator resolving against tables.
func NewCalculator(tables Tables, opts ...Option) *Calculator {
	c := &Calculator{tables: tables}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCalculator = NewCalculator(DefaultTables())

// Compute runs the calculation against the built-in tables.
func Compute(room RoomInput, conditions ConditionsInput, product ProductInput) LoadResult {
	return defaultCalculator.Compute(room, conditions, product)
}

// Tables returns the tables the calculator resolves against.
func (c *Calculator) Tables() Tables {
	return c.tables
}

// Normalize fills every field of the raw inputs with a usable value.
func (c *Calculator) Normalize(room RoomInput, conditions ConditionsInput, product ProductInput) NormalizedInput {
	return c.normalizer.normalize(room, conditions, product)
}

// Compute normalizes the raw inputs and evaluates them.
func (c *Calculator) Compute(room RoomInput, conditions ConditionsInput, product ProductInput) LoadResult {
	return c.Evaluate(c.Normalize(room, conditions, product))
}

/*
Evaluate the load of a normalized input.

	Args:
		in: normalized input
	Returns:
		the full load snapshot
	Notes:
		The five sub-loads depend only on in and the tables, never on each other.
*/
func (c *Calculator) Evaluate(in NormalizedInput) LoadResult {
	t := c.tables

	g := getGeometry(Dimensions{
		Length:     in.Length,
		Width:      in.Width,
		Height:     in.Height,
		DoorWidth:  in.DoorWidth,
		DoorHeight: in.DoorHeight,
	})
	deltaTheta := getTemperatureDifference(in.ExternalTemp, in.InternalTemp)

	uFactor := t.ResolveUFactor(in.InsulationType, in.InsulationThickness)
	product, productType := t.ResolveProduct(in.ProductType)
	storageFactor, storageType := t.ResolveStorageFactor(in.StorageType)

	transmission := getTransmissionLoad(uFactor, g.areas, deltaTheta)
	productLoad := getProductLoad(in.DailyLoad, product, in.IncomingTemp, in.OutgoingTemp, in.PullDownTime)
	infiltration := getInfiltrationLoad(g.volume, t.Thermal, deltaTheta, t.ColdRoomAirChangeRate())
	internal := getInternalLoad(
		in.NumberOfPeople,
		t.Thermal.PersonHeatLoad,
		in.WorkingHours,
		in.LightingWattage,
		in.OperatingHours,
		in.EquipmentLoad,
	)
	door := getDoorLoad(in.DoorOpenings, g.areas.Door, deltaTheta)

	totalLoad := floats.Sum([]float64{
		transmission.Total,
		productLoad.Total,
		infiltration.Total,
		internal.Total,
		door.Total,
	})
	withSafety := totalLoad * t.Thermal.SafetyFactor

	return LoadResult{
		Dimensions:            g.dimensions,
		Areas:                 g.areas,
		Volume:                g.volume,
		TemperatureDifference: deltaTheta,
		InsulationType:        in.InsulationType,
		InsulationThickness:   in.InsulationThickness,
		UFactor:               uFactor,
		ProductType:           productType,
		StorageType:           storageType,
		StorageFactor:         storageFactor,
		Storage:               getStorageCapacity(g.volume, product, storageFactor, in.DailyLoad),
		Transmission:          transmission,
		Product:               productLoad,
		Infiltration:          infiltration,
		Internal:              internal,
		Door:                  door,
		TotalLoad:             totalLoad,
		SafetyFactor:          t.Thermal.SafetyFactor,
		TotalLoadWithSafety:   withSafety,
		RefrigerationTons:     withSafety / kwPerTon,
	}
}

// BreakdownRow is one load category of a result.
type BreakdownRow struct {
	Category string  `json:"category"`
	Load     float64 `json:"load"`  // kW
	Share    float64 `json:"share"` // % of TotalLoad
}

// Load categories in display order.
const (
	CategoryTransmission = "Transmission"
	CategoryProduct      = "Product"
	CategoryInfiltration = "Infiltration"
	CategoryInternal     = "Internal"
	CategoryDoor         = "Door"
)

// Breakdown lists the five load categories with their share of the total.
// Shares are zero when the total is zero.
func (r LoadResult) Breakdown() []BreakdownRow {
	names := []string{CategoryTransmission, CategoryProduct, CategoryInfiltration, CategoryInternal, CategoryDoor}
	loads := []float64{r.Transmission.Total, r.Product.Total, r.Infiltration.Total, r.Internal.Total, r.Door.Total}

	shares := make([]float64, len(loads))
	if r.TotalLoad != 0 {
		copy(shares, loads)
		floats.Scale(100/r.TotalLoad, shares)
	}

	rows := make([]BreakdownRow, len(loads))
	for i := range loads {
		rows[i] = BreakdownRow{Category: names[i], Load: loads[i], Share: shares[i]}
	}
	return rows
}

// Finite reports whether every figure of the result is a finite number.
// Zero dimensions or a negative temperature difference can produce NaN or Inf.
func (r LoadResult) Finite() bool {
	values := []float64{
		r.Volume, r.TemperatureDifference, r.UFactor,
		r.Storage.MaxStorageCapacity, r.Storage.StorageUtilization,
		r.Transmission.Total, r.Product.Total, r.Infiltration.Total,
		r.Internal.Total, r.Door.Total,
		r.TotalLoad, r.TotalLoadWithSafety, r.RefrigerationTons,
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
