package analytics

import (
	"sort"

	"users-insights/internal/entities"
)

// TopCountries counts users per country and returns at most limit countries,
// by count descending and then by country name ascending.
func TopCountries(users []entities.User, limit int) []entities.CountryTotal {
	counts := make(map[string]int)
	for _, u := range users {
		counts[u.Country]++
	}

	ranked := make([]entities.CountryTotal, 0, len(counts))
	for country, total := range counts {
		ranked = append(ranked, entities.CountryTotal{Country: country, Total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].Country < ranked[j].Country
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
