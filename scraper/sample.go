package scraper

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/ooxo-pl/machines-data/models"
	"github.com/sirupsen/logrus"
)

// Sample data generation exists because the parts catalog site blocks bulk
// scraping; the patterns below mimic real part-number and model conventions
// so downstream stages see realistic shapes.

type samplePattern struct {
	models       []string
	partPrefixes []string
}

var samplePatterns = []struct {
	manufacturer string
	samplePattern
}{
	{"CATERPILLAR", samplePattern{
		models:       []string{"320D", "320E", "330D", "336D", "349D", "D6T", "D8T", "950H", "966H", "980H"},
		partPrefixes: []string{"1R-", "5I-", "7C-", "9M-", "320-", "326-", "330-"},
	}},
	{"KOMATSU", samplePattern{
		models:       []string{"PC200", "PC210", "PC300", "PC350", "PC400", "WA320", "WA380", "D65", "D85"},
		partPrefixes: []string{"600-", "6136-", "6151-", "6211-", "6742-", "07000-"},
	}},
	{"HITACHI", samplePattern{
		models:       []string{"ZX200", "ZX210", "ZX330", "ZX350", "ZX470", "ZW220", "ZW310"},
		partPrefixes: []string{"4649267", "4654748", "4656608", "4657039", "4658677"},
	}},
	{"VOLVO", samplePattern{
		models:       []string{"EC210", "EC240", "EC290", "EC360", "EC480", "L90", "L120", "L150"},
		partPrefixes: []string{"VOE", "14", "15", "17", "20"},
	}},
	{"DOOSAN", samplePattern{
		models:       []string{"DX225", "DX300", "DX340", "DX420", "DX520", "DL300", "DL420"},
		partPrefixes: []string{"K10", "K90", "2474-", "400-", "65-"},
	}},
	{"JCB", samplePattern{
		models:       []string{"JS200", "JS220", "JS330", "JS370", "3CX", "4CX", "535-95"},
		partPrefixes: []string{"32/", "320/", "333/", "02/", "05/"},
	}},
}

var samplePartTypes = []struct {
	partType string
	namePL   string
	subtypes []string
}{
	{"filter", "Filtr", []string{"oleju", "paliwa", "powietrza", "hydrauliczny", "kabinowy"}},
	{"pump", "Pompa", []string{"hydrauliczna", "paliwa", "wody", "oleju"}},
	{"seal", "Uszczelka", []string{"cylindra", "pompy", "silnika", "skrzyni"}},
	{"bearing", "Łożysko", []string{"wału", "koła", "przekładni", "silnika"}},
	{"gasket", "Uszczelka", []string{"głowicy", "miski olejowej", "pokrywy"}},
	{"belt", "Pasek", []string{"klinowy", "rozrządu", "alternatora"}},
	{"hose", "Wąż", []string{"hydrauliczny", "paliwowy", "chłodnicy"}},
	{"cylinder", "Cylinder", []string{"hydrauliczny", "łyżki", "wysięgnika", "ramienia"}},
}

// SampleGenerator writes sample_oem_parts.csv and sample_machines.csv into
// the downloads directory.
type SampleGenerator struct {
	outDir      string
	partsPerMfg int
	log         *logrus.Logger
	rng         *rand.Rand
}

func NewSampleGenerator(outDir string, log *logrus.Logger, seed int64) *SampleGenerator {
	return &SampleGenerator{
		outDir:      outDir,
		partsPerMfg: 500,
		log:         log,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (g *SampleGenerator) Generate() error {
	var allParts []models.SamplePart
	for _, entry := range samplePatterns {
		allParts = append(allParts, g.partsForManufacturer(entry.manufacturer, entry.samplePattern)...)
	}

	partsPath := filepath.Join(g.outDir, "sample_oem_parts.csv")
	if err := writeCSV(partsPath, allParts); err != nil {
		return fmt.Errorf("failed to write sample parts: %w", err)
	}
	g.log.Infof("Saved %d sample parts to %s", len(allParts), partsPath)

	machines := g.sampleMachines()
	machinesPath := filepath.Join(g.outDir, "sample_machines.csv")
	if err := writeCSV(machinesPath, machines); err != nil {
		return fmt.Errorf("failed to write sample machines: %w", err)
	}
	g.log.Infof("Saved %d sample machines to %s", len(machines), machinesPath)
	return nil
}

func (g *SampleGenerator) partsForManufacturer(mfg string, pattern samplePattern) []models.SamplePart {
	parts := make([]models.SamplePart, 0, g.partsPerMfg)
	for i := 0; i < g.partsPerMfg; i++ {
		pt := samplePartTypes[g.rng.Intn(len(samplePartTypes))]
		subtype := pt.subtypes[g.rng.Intn(len(pt.subtypes))]
		model := pattern.models[g.rng.Intn(len(pattern.models))]

		parts = append(parts, models.SamplePart{
			OemPartNumber: g.partNumber(pattern),
			DescriptionEN: fmt.Sprintf("%s %s for %s %s", titleCase(pt.partType), subtype, mfg, model),
			DescriptionPL: fmt.Sprintf("%s %s do %s %s", pt.namePL, subtype, mfg, model),
			Manufacturer:  mfg,
			Model:         model,
			PartType:      pt.partType,
			DataSource:    "sample_data",
		})
	}
	return parts
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (g *SampleGenerator) partNumber(pattern samplePattern) string {
	prefix := pattern.partPrefixes[g.rng.Intn(len(pattern.partPrefixes))]
	return fmt.Sprintf("%s%04d", prefix, g.rng.Intn(10000))
}

func (g *SampleGenerator) sampleMachines() []models.Machine {
	var machines []models.Machine
	for _, entry := range samplePatterns {
		for _, model := range entry.models {
			yearFrom := 2005 + g.rng.Intn(16)
			yearTo := yearFrom + 3 + g.rng.Intn(8)

			family := model
			if len(model) > 2 {
				family = model[:2]
			}
			machines = append(machines, models.Machine{
				Manufacturer: entry.manufacturer,
				ModelCode:    model,
				ModelFamily:  family,
				YearFrom:     &yearFrom,
				YearTo:       &yearTo,
				DataSource:   "sample_data",
			})
		}
	}
	return machines
}
