package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/mstbench/builder"
)

// ErrUnknownSuite is returned by SuiteByName for a name with no preset.
var ErrUnknownSuite = errors.New("dataset: unknown suite")

// DefaultSuiteSeed seeds every preset suite.
const DefaultSuiteSeed int64 = 42

// Suite describes a family of random connected graphs: one graph per
// entry of Sizes, each with a density drawn from [DensityMin, DensityMax).
type Suite struct {
	Name       string
	Sizes      []int
	DensityMin float64
	DensityMax float64
	Seed       int64
}

// Preset suites.
var (
	Small = Suite{
		Name:       "small",
		Sizes:      []int{10, 20, 30, 40, 50},
		DensityMin: 0.3,
		DensityMax: 0.7,
		Seed:       DefaultSuiteSeed,
	}
	Medium = Suite{
		Name:       "medium",
		Sizes:      []int{50, 75, 100, 125, 150, 175, 200, 225, 250, 300},
		DensityMin: 0.2,
		DensityMax: 0.5,
		Seed:       DefaultSuiteSeed,
	}
	Large = Suite{
		Name:       "large",
		Sizes:      []int{300, 400, 500, 600, 700, 800, 900, 1000, 350, 450},
		DensityMin: 0.15,
		DensityMax: 0.4,
		Seed:       DefaultSuiteSeed,
	}
	ExtraLarge = Suite{
		Name:       "xlarge",
		Sizes:      []int{1000, 1500, 2000, 2500, 3000},
		DensityMin: 0.1,
		DensityMax: 0.3,
		Seed:       DefaultSuiteSeed,
	}
)

// AllSuites returns the presets from smallest to largest.
func AllSuites() []Suite {
	return []Suite{Small, Medium, Large, ExtraLarge}
}

// SuiteByName looks a preset up by its case-insensitive name.
func SuiteByName(name string) (Suite, error) {
	for _, s := range AllSuites() {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Suite{}, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
}

// GenerateSuite builds one graph per size. A single rng seeded with s.Seed
// draws, per size and in order, the density and then the graph seed, so
// the whole suite is reproducible from s alone. Graph ids run from 1.
func GenerateSuite(s Suite) (InputData, error) {
	if s.DensityMin > s.DensityMax {
		return InputData{}, fmt.Errorf("suite %q: %w: min %v > max %v",
			s.Name, builder.ErrInvalidDensity, s.DensityMin, s.DensityMax)
	}

	rng := rand.New(rand.NewSource(s.Seed))
	data := InputData{Graphs: make([]GraphRecord, 0, len(s.Sizes))}
	for i, n := range s.Sizes {
		density := s.DensityMin + rng.Float64()*(s.DensityMax-s.DensityMin)
		g, err := builder.GenerateGraph(n, density, rng.Int63())
		if err != nil {
			return InputData{}, fmt.Errorf("suite %q size %d: %w", s.Name, n, err)
		}
		data.Graphs = append(data.Graphs, FromGraph(i+1, g))
	}
	return data, nil
}

// Combine concatenates the graphs of every part and renumbers them from 1.
func Combine(parts ...InputData) InputData {
	total := 0
	for _, p := range parts {
		total += len(p.Graphs)
	}
	out := InputData{Graphs: make([]GraphRecord, 0, total)}
	for _, p := range parts {
		for _, rec := range p.Graphs {
			rec.ID = len(out.Graphs) + 1
			out.Graphs = append(out.Graphs, rec)
		}
	}
	return out
}
