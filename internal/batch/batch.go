// Package batch computes many rooms read from a spreadsheet.
package batch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"cold_load_calc/load"
)

// NameColumn is the optional header naming each case.
const NameColumn = "name"

var (
	// ErrEmptySheet is returned when the first sheet has no header row.
	ErrEmptySheet = errors.New("empty sheet")

	// ErrUnknownColumn is returned for a header that names no input field.
	ErrUnknownColumn = errors.New("unknown column")
)

// Case is one room read from a workbook.
type Case struct {
	Name       string
	Room       load.RoomInput
	Conditions load.ConditionsInput
	Product    load.ProductInput
}

func (c *Case) fields() map[string]*load.RawValue {
	out := make(map[string]*load.RawValue)
	for _, m := range []map[string]*load.RawValue{c.Room.Fields(), c.Conditions.Fields(), c.Product.Fields()} {
		for k, v := range m {
			out[strings.ToLower(k)] = v
		}
	}
	return out
}

/*
Read cases from the first sheet of a workbook.

	Args:
		r: xlsx document
	Returns:
		one case per non-blank row below the header
	Notes:
		Header cells name input fields (e.g. "length", "doorOpenings"),
		matched case-insensitively, plus an optional "name" column. Cells are
		read as their stored value, not their formatted display, and kept as
		text so that blanks take their defaults.
*/
func ReadWorkbook(r io.Reader) ([]Case, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	header := make([]string, len(rows[0]))
	known := (&Case{}).fields()
	for j, cell := range rows[0] {
		h := strings.ToLower(strings.TrimSpace(cell))
		if _, ok := known[h]; !ok && h != NameColumn && h != "" {
			return nil, fmt.Errorf("%q: %w", cell, ErrUnknownColumn)
		}
		header[j] = h
	}

	var cases []Case
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}

		var c Case
		fields := c.fields()
		for j, cell := range row {
			if j >= len(header) {
				break
			}
			switch h := header[j]; h {
			case "":
			case NameColumn:
				c.Name = strings.TrimSpace(cell)
			default:
				*fields[h] = load.RawValue(cell)
			}
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("%s!%d", sheet, i+2)
		}
		cases = append(cases, c)
	}

	return cases, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Outcome is the result of one case. Err holds validation problems; the
// result is computed regardless.
type Outcome struct {
	Case   Case
	Result load.LoadResult
	Err    error
}

// Run computes every case.
func Run(calc *load.Calculator, cases []Case) []Outcome {
	out := make([]Outcome, len(cases))
	for i, c := range cases {
		in := calc.Normalize(c.Room, c.Conditions, c.Product)
		res := calc.Evaluate(in)
		err := load.Validate(in)
		if err != nil {
			log.Warn().Str("case", c.Name).Err(err).Msg("case has an invalid configuration")
		}
		log.Debug().Str("case", c.Name).Float64("tons", res.RefrigerationTons).Msg("case computed")
		out[i] = Outcome{Case: c, Result: res, Err: err}
	}
	return out
}
