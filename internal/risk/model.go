// Package risk derives the economic metrics the facts source does not
// provide: a GDP-per-capita estimate and a geopolitical risk score.
// Both are pure table lookups plus arithmetic - no I/O, no state - so
// repeated calls for the same country always agree.
package risk

import (
	"math"
	"strings"

	"github.com/bilgisen/geopulse/internal/utils"
)

// Model computes the derived metrics from the static reference tables.
type Model struct{}

// NewModel returns the derived-metrics engine. The backing tables are
// built once at init and treated as read-only constants.
func NewModel() *Model {
	return &Model{}
}

// GdpEstimate returns the estimated GDP per capita for a country:
// regional base times per-country multiplier, rounded to a whole unit.
func (m *Model) GdpEstimate(countryName, region string) float64 {
	base, ok := regionalGdpBase[region]
	if !ok {
		base = defaultGdpBase
	}

	mult, ok := countryGdpMultiplier[strings.ToLower(countryName)]
	if !ok {
		mult = defaultGdpMultiplier
	}

	return math.Round(base * mult)
}

// RiskScore returns the geopolitical risk index on a 0.1-10.0 scale,
// lower being safer. Countries with a known factor entry get the
// weighted five-factor sum on top of the regional base; unlisted
// countries get a deterministic pseudo-variation in [-0.5, +0.5]
// derived from a stable hash of the name.
func (m *Model) RiskScore(countryName, region string) float64 {
	score, ok := regionalBaseRisk[region]
	if !ok {
		score = defaultBaseRisk
	}

	if f, known := countryRiskFactors[strings.ToLower(countryName)]; known {
		score += weightPolitical*f.Political +
			weightConflict*f.Conflict +
			weightEconomic*f.Economic +
			weightInstitutional*f.Institutional +
			weightCurrentEvents*f.CurrentEvents
	} else {
		score += utils.StableUnit(strings.ToLower(countryName)) - 0.5
	}

	// 0.1 floor: a score of exactly 0 would imply "no risk".
	score = math.Min(math.Max(score, 0.1), 10.0)

	return math.Round(score*10) / 10
}
