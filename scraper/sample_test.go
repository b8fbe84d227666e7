package scraper

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRecords(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestGenerate(t *testing.T) {
	outDir := t.TempDir()
	g := NewSampleGenerator(outDir, quietLogger(), 42)
	require.NoError(t, g.Generate())

	parts := readRecords(t, filepath.Join(outDir, "sample_oem_parts.csv"))
	require.Len(t, parts, 1+6*500)
	assert.Equal(t, []string{"oem_part_number", "description_en", "description_pl", "manufacturer", "model", "part_type", "data_source"}, parts[0])
	for _, rec := range parts[1:] {
		assert.NotEmpty(t, rec[0])
		assert.Equal(t, "sample_data", rec[6])
	}

	machines := readRecords(t, filepath.Join(outDir, "sample_machines.csv"))
	require.Greater(t, len(machines), 1)
	row := machines[1]
	assert.Equal(t, "CATERPILLAR", row[0])
	assert.Equal(t, "320D", row[1])
	assert.Equal(t, "32", row[2])
	assert.NotEmpty(t, row[3])
	assert.NotEmpty(t, row[4])
}

func TestGenerate_Deterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	require.NoError(t, NewSampleGenerator(dirA, quietLogger(), 7).Generate())
	require.NoError(t, NewSampleGenerator(dirB, quietLogger(), 7).Generate())

	a, err := os.ReadFile(filepath.Join(dirA, "sample_oem_parts.csv"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, "sample_oem_parts.csv"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
