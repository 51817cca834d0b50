package load

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Table file names read by LoadTablesDir.
const (
	UFactorsFile       = "u_factors.csv"
	AirChangeRatesFile = "air_change_rates.csv"
	ConstantsFile      = "constants.csv"
	ProductsFile       = "products.csv"
	StorageFactorsFile = "storage_factors.csv"
)

// ErrInvalidTable is returned for a table file with an unusable row.
var ErrInvalidTable = errors.New("invalid table")

type uFactorRow struct {
	InsulationType string  `csv:"insulation_type"`
	ThicknessMM    float64 `csv:"thickness_mm"`
	UFactor        float64 `csv:"u_factor"`
}

type airChangeRateRow struct {
	Category string  `csv:"category"`
	Rate     float64 `csv:"rate"`
}

type constantRow struct {
	Name  string  `csv:"name"`
	Value float64 `csv:"value"`
}

type productRow struct {
	Name              string  `csv:"name"`
	Density           float64 `csv:"density"`
	StorageEfficiency float64 `csv:"storage_efficiency"`
	SpecificHeatAbove float64 `csv:"specific_heat_above"`
}

type storageFactorRow struct {
	Name   string  `csv:"name"`
	Factor float64 `csv:"factor"`
}

/*
Load the lookup tables from CSV files in a directory.

	Args:
		dir: directory holding any of the table files
	Returns:
		the built-in tables with every row of the files laid over them
	Notes:
		A missing file keeps the built-in table. Rows add new keys or replace
		existing ones; they never remove built-in entries.
*/
func LoadTablesDir(dir string) (Tables, error) {
	t := DefaultTables()

	uRows, err := readTable[uFactorRow](filepath.Join(dir, UFactorsFile))
	if err != nil {
		return Tables{}, err
	}
	for _, r := range uRows {
		if r.InsulationType == "" || r.ThicknessMM <= 0 || r.UFactor <= 0 {
			return Tables{}, fmt.Errorf("%s: %q %g mm: %w", UFactorsFile, r.InsulationType, r.ThicknessMM, ErrInvalidTable)
		}
		if t.Thermal.UFactors[r.InsulationType] == nil {
			t.Thermal.UFactors[r.InsulationType] = make(map[float64]float64)
		}
		t.Thermal.UFactors[r.InsulationType][r.ThicknessMM] = r.UFactor
	}

	acrRows, err := readTable[airChangeRateRow](filepath.Join(dir, AirChangeRatesFile))
	if err != nil {
		return Tables{}, err
	}
	for _, r := range acrRows {
		if r.Category == "" || r.Rate < 0 {
			return Tables{}, fmt.Errorf("%s: %q: %w", AirChangeRatesFile, r.Category, ErrInvalidTable)
		}
		t.Thermal.AirChangeRates[r.Category] = r.Rate
	}

	constRows, err := readTable[constantRow](filepath.Join(dir, ConstantsFile))
	if err != nil {
		return Tables{}, err
	}
	for _, r := range constRows {
		if err := setConstant(&t.Thermal, *r); err != nil {
			return Tables{}, fmt.Errorf("%s: %w", ConstantsFile, err)
		}
	}

	productRows, err := readTable[productRow](filepath.Join(dir, ProductsFile))
	if err != nil {
		return Tables{}, err
	}
	for _, r := range productRows {
		if r.Name == "" || r.Density <= 0 || r.StorageEfficiency <= 0 || r.SpecificHeatAbove <= 0 {
			return Tables{}, fmt.Errorf("%s: %q: %w", ProductsFile, r.Name, ErrInvalidTable)
		}
		t.Products[r.Name] = Product{
			Density:           r.Density,
			StorageEfficiency: r.StorageEfficiency,
			SpecificHeatAbove: r.SpecificHeatAbove,
		}
	}

	sfRows, err := readTable[storageFactorRow](filepath.Join(dir, StorageFactorsFile))
	if err != nil {
		return Tables{}, err
	}
	for _, r := range sfRows {
		if r.Name == "" || r.Factor <= 0 {
			return Tables{}, fmt.Errorf("%s: %q: %w", StorageFactorsFile, r.Name, ErrInvalidTable)
		}
		t.StorageFactors[r.Name] = r.Factor
	}

	return t, nil
}

func setConstant(t *ThermalConstants, r constantRow) error {
	if r.Value <= 0 {
		return fmt.Errorf("%q must be positive: %w", r.Name, ErrInvalidTable)
	}
	switch r.Name {
	case "airDensity":
		t.AirDensity = r.Value
	case "airSpecificHeat":
		t.AirSpecificHeat = r.Value
	case "personHeatLoad":
		t.PersonHeatLoad = r.Value
	case "safetyFactor":
		if r.Value < 1 {
			return fmt.Errorf("safetyFactor must be at least 1: %w", ErrInvalidTable)
		}
		t.SafetyFactor = r.Value
	default:
		return fmt.Errorf("unknown constant %q: %w", r.Name, ErrInvalidTable)
	}
	return nil
}

// readTable returns the rows of a CSV file, or nil if it does not exist.
func readTable[T any](path string) ([]*T, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer file.Close()

	var rows []*T
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}
