package overpass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/restaurant-finder/internal/domain"
)

var geometryKinds = []domain.ElementType{
	domain.ElementTypeNode,
	domain.ElementTypeWay,
	domain.ElementTypeRelation,
}

// BuildAmenityQuery строит Overpass QL запрос для всех искомых категорий
// во всех трёх типах геометрии. "out center" заставляет интерпретатор
// вернуть центр для way и relation.
func BuildAmenityQuery(box domain.BoundingBox, timeoutSeconds int) string {
	bbox := formatBBox(box)

	var sb strings.Builder
	fmt.Fprintf(&sb, "[out:json][timeout:%d];\n(\n", timeoutSeconds)
	for _, category := range domain.SearchedCategories {
		for _, kind := range geometryKinds {
			fmt.Fprintf(&sb, "  %s[\"amenity\"=\"%s\"](%s);\n", kind, category, bbox)
		}
	}
	sb.WriteString(");\nout center;")

	return sb.String()
}

// formatBBox renders the box in Overpass (south,west,north,east) order.
func formatBBox(box domain.BoundingBox) string {
	return strings.Join([]string{
		formatFloat(box.MinLat),
		formatFloat(box.MinLon),
		formatFloat(box.MaxLat),
		formatFloat(box.MaxLon),
	}, ",")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
