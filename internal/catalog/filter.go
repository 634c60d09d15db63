package catalog

import (
	"sort"
	"strconv"
	"strings"
)

const (
	SortByRating       = "rating"
	SortByDeliveryTime = "deliveryTime"
	SortByDeliveryFee  = "deliveryFee"
)

// Query is the free-text search, cuisine filter and sort key applied to
// the restaurant list.
type Query struct {
	Search  string
	Cuisine string
	SortBy  string
}

// Filter returns the restaurants matching q, ordered by the chosen sort
// key. It is a pure function: the input slice is never mutated.
func Filter(restaurants []Restaurant, q Query) []Restaurant {
	search := strings.ToLower(q.Search)

	out := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(r.Name), search) ||
			strings.Contains(strings.ToLower(r.Cuisine), search)
		matchesCuisine := q.Cuisine == "" || q.Cuisine == "All" || r.Cuisine == q.Cuisine
		if matchesSearch && matchesCuisine {
			out = append(out, r)
		}
	}

	switch q.SortBy {
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortByDeliveryTime:
		sort.SliceStable(out, func(i, j int) bool {
			return leadingMinutes(out[i].DeliveryTime) < leadingMinutes(out[j].DeliveryTime)
		})
	case SortByDeliveryFee:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DeliveryFee < out[j].DeliveryFee })
	}

	return out
}

// leadingMinutes parses the lower bound of a "25-35 min" style range.
func leadingMinutes(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}
