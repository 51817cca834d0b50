// Package report renders load results as CSV and PDF.
package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"cold_load_calc/load"
)

// Row is the headline figures of one calculated case.
type Row struct {
	Name                  string  `csv:"name"`
	Length                float64 `csv:"length_m"`
	Width                 float64 `csv:"width_m"`
	Height                float64 `csv:"height_m"`
	Volume                float64 `csv:"volume_m3"`
	TemperatureDifference float64 `csv:"temperature_difference_k"`
	UFactor               float64 `csv:"u_factor_w_m2k"`
	ProductType           string  `csv:"product_type"`
	StorageType           string  `csv:"storage_type"`
	MaxStorageCapacity    float64 `csv:"max_storage_capacity_kg"`
	StorageUtilization    float64 `csv:"storage_utilization_pct"`
	Transmission          float64 `csv:"transmission_kw"`
	Product               float64 `csv:"product_kw"`
	Infiltration          float64 `csv:"infiltration_kw"`
	Internal              float64 `csv:"internal_kw"`
	Door                  float64 `csv:"door_kw"`
	TotalLoad             float64 `csv:"total_kw"`
	TotalLoadWithSafety   float64 `csv:"total_with_safety_kw"`
	RefrigerationTons     float64 `csv:"refrigeration_tr"`
}

// NewRow flattens a result into a Row.
func NewRow(name string, r load.LoadResult) Row {
	return Row{
		Name:                  name,
		Length:                r.Dimensions.Length,
		Width:                 r.Dimensions.Width,
		Height:                r.Dimensions.Height,
		Volume:                r.Volume,
		TemperatureDifference: r.TemperatureDifference,
		UFactor:               r.UFactor,
		ProductType:           r.ProductType,
		StorageType:           r.StorageType,
		MaxStorageCapacity:    r.Storage.MaxStorageCapacity,
		StorageUtilization:    r.Storage.StorageUtilization,
		Transmission:          r.Transmission.Total,
		Product:               r.Product.Total,
		Infiltration:          r.Infiltration.Total,
		Internal:              r.Internal.Total,
		Door:                  r.Door.Total,
		TotalLoad:             r.TotalLoad,
		TotalLoadWithSafety:   r.TotalLoadWithSafety,
		RefrigerationTons:     r.RefrigerationTons,
	}
}

// WriteCSV writes a header line and one line per row.
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
