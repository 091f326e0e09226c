package analytics

import "users-insights/internal/entities"

// Superusers returns users with score >= 900 that are active, in dataset order.
// The returned users share their nested slices with the dataset.
func Superusers(users []entities.User) []entities.User {
	res := make([]entities.User, 0)
	for _, u := range users {
		if u.IsSuperuser() {
			res = append(res, u)
		}
	}
	return res
}
