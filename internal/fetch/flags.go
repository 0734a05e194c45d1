package fetch

import "strings"

// countryFlags maps lowercased country names to their flag glyph for
// payloads where the upstream does not supply one.
var countryFlags = map[string]string{
	"germany":        "🇩🇪",
	"japan":          "🇯🇵",
	"brazil":         "🇧🇷",
	"norway":         "🇳🇴",
	"united states":  "🇺🇸",
	"united kingdom": "🇬🇧",
	"france":         "🇫🇷",
	"china":          "🇨🇳",
	"india":          "🇮🇳",
	"australia":      "🇦🇺",
	"canada":         "🇨🇦",
	"mexico":         "🇲🇽",
	"argentina":      "🇦🇷",
	"south korea":    "🇰🇷",
	"italy":          "🇮🇹",
	"spain":          "🇪🇸",
	"netherlands":    "🇳🇱",
	"sweden":         "🇸🇪",
	"denmark":        "🇩🇰",
	"switzerland":    "🇨🇭",
}

// PlaceholderFlag is used when neither upstream nor the table knows
// the country.
const PlaceholderFlag = "🏳️"

// FlagFor returns the flag glyph for a country name.
func FlagFor(countryName string) string {
	if flag, ok := countryFlags[strings.ToLower(countryName)]; ok {
		return flag
	}
	return PlaceholderFlag
}
