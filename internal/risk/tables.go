package risk

// Static reference data for the derived-metrics engine. The values
// encode a fixed, informal risk taxonomy and are part of the service
// contract: cached records computed from them must stay comparable
// across deployments, so the tables are never recomputed at runtime.

// regionalGdpBase is the per-region base GDP per capita in USD.
var regionalGdpBase = map[string]float64{
	"Africa":   5000,
	"Americas": 20000,
	"Asia":     12000,
	"Europe":   35000,
	"Oceania":  25000,
}

// defaultGdpBase applies when the region is unknown.
const defaultGdpBase = 15000

// countryGdpMultiplier scales the regional base per country.
var countryGdpMultiplier = map[string]float64{
	"norway":         2.3,
	"switzerland":    2.4,
	"denmark":        1.9,
	"united states":  1.8,
	"sweden":         1.7,
	"netherlands":    1.6,
	"germany":        1.5,
	"australia":      1.5,
	"united kingdom": 1.4,
	"canada":         1.4,
	"france":         1.3,
	"japan":          1.3,
	"south korea":    1.2,
	"italy":          1.1,
	"spain":          1.0,
	"china":          0.9,
	"mexico":         0.8,
	"brazil":         0.7,
	"india":          0.6,
	"argentina":      0.6,
}

// defaultGdpMultiplier applies when the country has no entry.
const defaultGdpMultiplier = 0.5

// regionalBaseRisk is the per-region starting point of the risk score.
var regionalBaseRisk = map[string]float64{
	"Africa":   5.5,
	"Americas": 4.0,
	"Asia":     4.5,
	"Europe":   2.0,
	"Oceania":  2.5,
}

// defaultBaseRisk applies when the region is unknown.
const defaultBaseRisk = 3.0

// Factors are the five signed weights behind a country's risk score.
// Negative values lower risk, positive values raise it.
type Factors struct {
	Political     float64 // political stability
	Conflict      float64 // conflict level
	Economic      float64 // economic stability
	Institutional float64 // institutional strength
	CurrentEvents float64 // current-events severity
}

// countryRiskFactors holds the known five-factor entries, keyed by
// lowercased country name. Absence is a defined default path, not an
// error: unlisted countries get the hash-derived pseudo-variation.
var countryRiskFactors = map[string]Factors{
	"norway":         {Political: -2.0, Conflict: -1.5, Economic: -1.5, Institutional: -2.0, CurrentEvents: -1.0},
	"switzerland":    {Political: -2.0, Conflict: -1.8, Economic: -1.8, Institutional: -2.0, CurrentEvents: -1.2},
	"denmark":        {Political: -1.8, Conflict: -1.6, Economic: -1.4, Institutional: -1.9, CurrentEvents: -0.8},
	"sweden":         {Political: -1.7, Conflict: -1.4, Economic: -1.2, Institutional: -1.8, CurrentEvents: -0.6},
	"netherlands":    {Political: -1.6, Conflict: -1.4, Economic: -1.1, Institutional: -1.7, CurrentEvents: -0.5},
	"australia":      {Political: -1.6, Conflict: -1.5, Economic: -1.0, Institutional: -1.7, CurrentEvents: -0.9},
	"japan":          {Political: -1.5, Conflict: -1.2, Economic: -0.7, Institutional: -1.5, CurrentEvents: -0.2},
	"canada":         {Political: -1.4, Conflict: -1.3, Economic: -0.9, Institutional: -1.5, CurrentEvents: -0.4},
	"germany":        {Political: -1.2, Conflict: -1.0, Economic: -0.8, Institutional: -1.4, CurrentEvents: 0.2},
	"united kingdom": {Political: -0.9, Conflict: -0.8, Economic: -0.4, Institutional: -1.2, CurrentEvents: 0.4},
	"france":         {Political: -0.8, Conflict: -0.6, Economic: -0.5, Institutional: -1.1, CurrentEvents: 0.6},
	"united states":  {Political: -0.5, Conflict: 0.3, Economic: -0.6, Institutional: -0.8, CurrentEvents: 0.8},
	"india":          {Political: 0.6, Conflict: 0.9, Economic: 0.4, Institutional: 0.5, CurrentEvents: 0.6},
	"brazil":         {Political: 0.7, Conflict: 0.4, Economic: 0.9, Institutional: 0.6, CurrentEvents: 0.3},
	"china":          {Political: 0.8, Conflict: 0.5, Economic: 0.2, Institutional: 1.0, CurrentEvents: 0.7},
	"russia":         {Political: 2.5, Conflict: 2.8, Economic: 1.8, Institutional: 2.0, CurrentEvents: 2.5},
}

// Weights of the five factors in the weighted sum.
const (
	weightPolitical     = 0.25
	weightConflict      = 0.30
	weightEconomic      = 0.15
	weightInstitutional = 0.20
	weightCurrentEvents = 0.10
)
