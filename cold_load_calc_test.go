package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cold_load_calc/load"
)

const sampleCase = `{
	"name": "dairy store",
	"room": {"length": 6, "width": 5, "height": 3, "insulationType": "PUF", "insulationThickness": "100"},
	"conditions": {"externalTemp": 35, "internalTemp": 4, "pullDownTime": 6},
	"product": {"productType": "Dairy Products", "dailyLoad": 2500, "incomingTemp": 25, "outgoingTemp": 4}
}`

func TestReadCase_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCase), 0o644))

	c, err := readCase(path)
	require.NoError(t, err)
	assert.Equal(t, "dairy store", c.Name)
	assert.Equal(t, load.RawValue("6"), c.Room.Length)
	assert.Equal(t, load.RawValue("Dairy Products"), c.Product.ProductType)
}

func TestReadCase_URL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"room":{"length":"7"}}`))
	}))
	defer ts.Close()

	c, err := readCase(ts.URL)
	require.NoError(t, err)
	assert.Equal(t, ts.URL, c.Name)
	assert.Equal(t, load.RawValue("7"), c.Room.Length)
}

func TestReadCase_Missing(t *testing.T) {
	_, err := readCase(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRunCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCase), 0o644))

	var out bytes.Buffer
	rows, res, err := runCase(load.NewCalculator(load.DefaultTables()), path, &out)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "dairy store", rows[0].Name)
	assert.Equal(t, "Dairy Products", res.ProductType)

	var printed caseOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	assert.Equal(t, res.RefrigerationTons, printed.Result.RefrigerationTons)
	assert.Empty(t, printed.Warnings)
}

func TestRunCase_NonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"conditions":{"externalTemp":-5}}`), 0o644))

	var out bytes.Buffer
	_, _, err := runCase(load.NewCalculator(load.DefaultTables()), path, &out)
	assert.Error(t, err)
	assert.Zero(t, out.Len())
}

func TestRunBatch(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"name", "length", "width"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"a", 5, 4}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"b", 10, 8}))
	path := filepath.Join(t.TempDir(), "rooms.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	var out bytes.Buffer
	rows, err := runBatch(load.NewCalculator(load.DefaultTables()), path, &out)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[1].Name)
	assert.Equal(t, 240.0, rows[1].Volume)

	var printed []caseOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	require.Len(t, printed, 2)
	assert.Equal(t, "a", printed[0].Name)
	require.NotNil(t, printed[1].Result)
	assert.Equal(t, rows[1].RefrigerationTons, printed[1].Result.RefrigerationTons)
	assert.Empty(t, printed[1].Error)
}

func TestRunBatch_WarningsAndNonFinite(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"name", "externalTemp", "workingHours"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"long shift", 35, 30}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"cold outside", -5, 8}))
	path := filepath.Join(t.TempDir(), "rooms.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	var out bytes.Buffer
	rows, err := runBatch(load.NewCalculator(load.DefaultTables()), path, &out)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var printed []caseOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	require.Len(t, printed, 2)

	require.NotNil(t, printed[0].Result)
	require.NotEmpty(t, printed[0].Warnings)
	assert.Equal(t, "workingHours", printed[0].Warnings[0].Field)

	assert.Nil(t, printed[1].Result)
	assert.Equal(t, errNonFinite.Error(), printed[1].Error)
	assert.NotEmpty(t, printed[1].Warnings)
}

func TestReadCase_URLTimeout(t *testing.T) {
	done := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()
	defer close(done)

	saved := httpClient
	httpClient = &http.Client{Timeout: 50 * time.Millisecond}
	defer func() { httpClient = saved }()

	_, err := readCase(ts.URL)
	assert.Error(t, err)
}
