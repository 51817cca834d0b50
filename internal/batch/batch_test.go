package batch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cold_load_calc/load"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadWorkbook(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"name", "Length", "width", "height", "productType", "externalTemp", "doorOpenings"},
		[]interface{}{"small", 5, 4, 3, "Meat", 32, ""},
		[]interface{}{"", 6.5, 5, 3, "", "", 0},
		[]interface{}{},
		[]interface{}{"large", 12, 10, 6, "Dairy Products", 38, 60},
	)

	cases, err := ReadWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, cases, 3)

	assert.Equal(t, "small", cases[0].Name)
	assert.Equal(t, load.RawValue("5"), cases[0].Room.Length)
	assert.Equal(t, load.RawValue("Meat"), cases[0].Product.ProductType)
	assert.Equal(t, load.RawValue("32"), cases[0].Conditions.ExternalTemp)
	assert.Equal(t, load.RawValue(""), cases[0].Room.DoorOpenings)

	assert.Equal(t, "Sheet1!3", cases[1].Name)
	assert.Equal(t, load.RawValue("6.5"), cases[1].Room.Length)
	assert.Equal(t, load.RawValue("0"), cases[1].Room.DoorOpenings)

	assert.Equal(t, "large", cases[2].Name)
	assert.Equal(t, load.RawValue("60"), cases[2].Room.DoorOpenings)
}

func TestReadWorkbook_IgnoresNumberFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"length", "width", "doorOpenings"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{6.5, 4.25, 1500}))

	integer, err := f.NewStyle(&excelize.Style{NumFmt: 1})
	require.NoError(t, err)
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "A2", "B2", integer))
	require.NoError(t, f.SetCellStyle(sheet, "C2", "C2", thousands))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	cases, err := ReadWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, load.RawValue("6.5"), cases[0].Room.Length)
	assert.Equal(t, load.RawValue("4.25"), cases[0].Room.Width)
	assert.Equal(t, load.RawValue("1500"), cases[0].Room.DoorOpenings)

	in := load.NewCalculator(load.DefaultTables()).Normalize(cases[0].Room, cases[0].Conditions, cases[0].Product)
	assert.Equal(t, 6.5, in.Length)
	assert.Equal(t, 4.25, in.Width)
	assert.Equal(t, 1500.0, in.DoorOpenings)
}

func TestReadWorkbook_UnknownColumn(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"length", "colour"},
		[]interface{}{5, "blue"},
	)

	_, err := ReadWorkbook(buf)
	assert.True(t, errors.Is(err, ErrUnknownColumn))
}

func TestReadWorkbook_Empty(t *testing.T) {
	_, err := ReadWorkbook(workbook(t))
	assert.True(t, errors.Is(err, ErrEmptySheet))
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	_, err := ReadWorkbook(bytes.NewBufferString("length,width\n5,4\n"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	cases := []Case{
		{Name: "defaults"},
		{Name: "warm room", Conditions: load.ConditionsInput{ExternalTemp: "2"}},
	}
	calc := load.NewCalculator(load.DefaultTables())

	out := Run(calc, cases)
	require.Len(t, out, 2)

	assert.NoError(t, out[0].Err)
	assert.Equal(t, load.Compute(load.RoomInput{}, load.ConditionsInput{}, load.ProductInput{}), out[0].Result)

	assert.True(t, errors.Is(out[1].Err, load.ErrInvalidConfiguration))
	assert.Equal(t, "warm room", out[1].Case.Name)
}
