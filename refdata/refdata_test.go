package refdata

import (
	"testing"

	"github.com/ooxo-pl/machines-data/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMachine(machines []models.VerifiedMachine, manufacturer, model string) *models.VerifiedMachine {
	for i := range machines {
		if machines[i].Manufacturer == manufacturer && machines[i].Model == model {
			return &machines[i]
		}
	}
	return nil
}

func TestAllMachines(t *testing.T) {
	machines := AllMachines()
	assert.GreaterOrEqual(t, len(machines), 100)

	for _, m := range machines {
		assert.NotEmpty(t, m.Manufacturer, "machine %q has no manufacturer", m.Model)
		assert.NotEmpty(t, m.Model, "manufacturer %q has a machine with no model", m.Manufacturer)
		assert.NotEmpty(t, m.Type, "machine %s %s has no type", m.Manufacturer, m.Model)
		assert.Positive(t, m.WeightKg, "machine %s %s has no weight", m.Manufacturer, m.Model)
	}
}

func TestAllMachines_KnownEntries(t *testing.T) {
	machines := AllMachines()

	cat := findMachine(machines, "CATERPILLAR", "320D2")
	require.NotNil(t, cat)
	assert.NotEmpty(t, cat.Engine)

	komatsu := findMachine(machines, "KOMATSU", "PC200-8")
	require.NotNil(t, komatsu)
}

func TestAllMachines_CallersCannotMutateDataset(t *testing.T) {
	first := AllMachines()
	require.NotEmpty(t, first)

	first[0].Manufacturer = "MUTATED"
	if first[0].YearFrom != nil {
		*first[0].YearFrom = 1900
	}

	second := AllMachines()
	assert.NotEqual(t, "MUTATED", second[0].Manufacturer)
	if second[0].YearFrom != nil {
		assert.NotEqual(t, 1900, *second[0].YearFrom)
	}
}

func TestManufacturers(t *testing.T) {
	names := Manufacturers()
	assert.Contains(t, names, "CATERPILLAR")
	assert.Contains(t, names, "KOMATSU")

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate manufacturer %q", n)
		seen[n] = true
	}
}
