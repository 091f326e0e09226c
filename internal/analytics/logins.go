package analytics

import (
	"sort"

	"users-insights/internal/entities"
)

// LoginsPerDay counts log entries of all users per date and drops dates with fewer than
// minTotal entries. Dates are returned in ascending order.
func LoginsPerDay(users []entities.User, minTotal int) []entities.DayLogins {
	counts := make(map[string]int)
	for _, u := range users {
		for _, l := range u.Logs {
			counts[l.Date]++
		}
	}

	res := make([]entities.DayLogins, 0, len(counts))
	for date, total := range counts {
		if total < minTotal {
			continue
		}
		res = append(res, entities.DayLogins{Date: date, Total: total})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date < res[j].Date })
	return res
}
