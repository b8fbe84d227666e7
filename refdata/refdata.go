// Package refdata holds the hand-curated dataset of verified machine
// specifications, sourced from official manufacturer documentation. It is a
// read-only data asset: the tables are package-private and AllMachines hands
// out a fresh copy on every call.
package refdata

import "github.com/ooxo-pl/machines-data/models"

// AllMachines flattens the per-manufacturer groups into a single list.
func AllMachines() []models.VerifiedMachine {
	var machines []models.VerifiedMachine
	for _, group := range groups {
		for _, m := range group.machines {
			m.Manufacturer = group.manufacturer
			// Clone the year pointers so callers cannot reach back into
			// the tables.
			if m.YearFrom != nil {
				v := *m.YearFrom
				m.YearFrom = &v
			}
			if m.YearTo != nil {
				v := *m.YearTo
				m.YearTo = &v
			}
			machines = append(machines, m)
		}
	}
	return machines
}

// Manufacturers lists the manufacturers covered by the dataset, in group
// order.
func Manufacturers() []string {
	seen := make(map[string]bool)
	var names []string
	for _, group := range groups {
		if !seen[group.manufacturer] {
			seen[group.manufacturer] = true
			names = append(names, group.manufacturer)
		}
	}
	return names
}

type machineGroup struct {
	manufacturer string
	machines     []models.VerifiedMachine
}

func year(y int) *int { return &y }
