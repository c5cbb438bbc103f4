package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow(date string) models.FlatRecord {
	nearest := 4.5
	return models.FusedRecord{
		Fire:      models.FireSummary{Intensity: 30, NearestKm: &nearest, Count: 3},
		Latitude:  37.6,
		Longitude: -120.9,
		Date:      date,
		Risk:      models.RiskAssessment{Score: 41.2, Band: models.BandModerate},
	}.Flatten()
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeCSV(&buf, true, []models.FlatRecord{sampleRow("2025-08-04")}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.CSVHeader(), records[0])
	assert.Equal(t, "4.5", records[1][1])
	assert.Equal(t, "MODERATE", records[1][19])
}

func TestWriteDataset_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")

	require.NoError(t, writeDataset(path, false, sampleRow("2025-08-03")))
	require.NoError(t, writeDataset(path, false, sampleRow("2025-08-04")))

	records := readCSV(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-08-04", records[1][17])
}

func TestWriteDataset_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")

	require.NoError(t, writeDataset(path, true, sampleRow("2025-08-03")))
	require.NoError(t, writeDataset(path, true, sampleRow("2025-08-04")))

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, models.CSVHeader(), records[0])
	assert.Equal(t, "2025-08-03", records[1][17])
	assert.Equal(t, "2025-08-04", records[2][17])
}

func TestWriteDataset_BadPath(t *testing.T) {
	err := writeDataset(filepath.Join(t.TempDir(), "missing", "dataset.csv"), false, sampleRow("2025-08-04"))
	assert.Error(t, err)
}
