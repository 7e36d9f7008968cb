package usecase

import (
	"sort"
	"strings"

	"github.com/restaurant-finder/internal/domain"
)

// FilterAndRank keeps POIs whose cuisine or name contains filter
// (case-insensitive), sorts them by name with a stable byte-wise comparison
// and truncates to limit. A blank filter keeps everything. The input slice is
// never modified.
func FilterAndRank(pois []domain.POI, filter string, limit int) []domain.POI {
	filtering := strings.TrimSpace(filter) != ""
	needle := strings.ToLower(filter)

	out := make([]domain.POI, 0, len(pois))
	for _, poi := range pois {
		if !filtering || matchesFilter(poi, needle) {
			out = append(out, poi)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matchesFilter(poi domain.POI, needle string) bool {
	return strings.Contains(strings.ToLower(poi.Cuisine), needle) ||
		strings.Contains(strings.ToLower(poi.Name), needle)
}
