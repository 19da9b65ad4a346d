package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"ovpkit/domain/histogram"
)

// TitlesGeneratorConfig configures the synthetic job-title generator
type TitlesGeneratorConfig struct {
	TitleCount int     `json:"title_count"`
	MeanOVP    float64 `json:"mean_ovp"`
	StdDevOVP  float64 `json:"std_dev_ovp"`
	Seed       int64   `json:"seed"`
}

// DefaultTitlesConfig returns sensible defaults for title generation
func DefaultTitlesConfig() TitlesGeneratorConfig {
	return TitlesGeneratorConfig{
		TitleCount: 200,
		MeanOVP:    4.2,
		StdDevOVP:  1.1,
		Seed:       42,
	}
}

// families and seniorities are crossed to produce distinct title labels.
var families = []string{
	"Software Engineer", "Data Analyst", "Product Manager", "Designer",
	"Account Executive", "Customer Support", "Operations Specialist",
	"HR Partner", "Financial Analyst", "Field Technician",
}

var seniorities = []string{"Associate", "", "Senior", "Staff", "Lead"}

// TitlesGenerator generates realistic job-title records with OVP scores
// and headcounts, deterministic for a given seed.
type TitlesGenerator struct {
	config TitlesGeneratorConfig
	rng    *rand.Rand
}

// NewTitlesGenerator creates a new titles generator
func NewTitlesGenerator(config TitlesGeneratorConfig) *TitlesGenerator {
	return &TitlesGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateRecords produces the synthetic record set. OVP scores are
// drawn from a normal clamped to [2, 7]; headcounts follow a skewed
// distribution so a few titles dominate, like real org charts.
func (g *TitlesGenerator) GenerateRecords() []histogram.Record {
	records := make([]histogram.Record, 0, g.config.TitleCount)
	for i := 0; i < g.config.TitleCount; i++ {
		family := families[g.rng.Intn(len(families))]
		seniority := seniorities[g.rng.Intn(len(seniorities))]
		title := family
		if seniority != "" {
			title = seniority + " " + family
		}
		title = fmt.Sprintf("%s %d", title, i+1)

		score := g.config.MeanOVP + g.rng.NormFloat64()*g.config.StdDevOVP
		score = math.Min(math.Max(score, 2.0), 7.0)

		headcount := math.Ceil(math.Exp(g.rng.NormFloat64()*1.2 + 2.0))

		records = append(records, histogram.Record{
			Title:     title,
			AvgOVP:    math.Round(score*100) / 100,
			Headcount: headcount,
		})
	}
	return records
}
