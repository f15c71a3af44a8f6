package request

import (
	"strings"

	"pontomais/internal/domain/catalog"
)

type ListPointsQuery struct {
	State        string   `form:"state"`
	City         string   `form:"city"`
	Neighborhood string   `form:"neighborhood"`
	Category     []string `form:"category"`
}

func (q ListPointsQuery) ToDomain() catalog.Filter {
	cats := make([]string, 0, len(q.Category))
	for _, c := range q.Category {
		for _, part := range strings.Split(c, ",") {
			if part = strings.TrimSpace(part); part != "" {
				cats = append(cats, part)
			}
		}
	}
	return catalog.Filter{
		State:        strings.TrimSpace(q.State),
		City:         strings.TrimSpace(q.City),
		Neighborhood: strings.TrimSpace(q.Neighborhood),
		Categories:   cats,
	}
}

type FilterOptionsQuery struct {
	State string `form:"state"`
	City  string `form:"city"`
}
