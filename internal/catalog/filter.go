package catalog

import (
	"net/url"
	"strings"
)

// State is the services page filter input.
type State struct {
	Category Category
	Search   string
}

// DefaultState shows the whole catalog.
func DefaultState() State {
	return State{Category: CategoryAll}
}

// StateFromQuery reads the category and q parameters. Unknown categories fall
// back to All.
func StateFromQuery(values url.Values) State {
	category, _ := ParseCategory(values.Get("category"))
	return State{
		Category: category,
		Search:   strings.TrimSpace(values.Get("q")),
	}
}

// Query encodes the state back into services page parameters, omitting defaults.
func (s State) Query() url.Values {
	values := url.Values{}
	if s.Category != "" && s.Category != CategoryAll {
		values.Set("category", string(s.Category))
	}
	if s.Search != "" {
		values.Set("q", s.Search)
	}
	return values
}

// Result is the filtered view rendered by the services page.
type Result struct {
	State   State
	Records []Record
	Empty   bool
}

// Apply filters the full catalog.
func (s State) Apply() Result {
	records := Filter(s.Category, s.Search, services)
	return Result{
		State:   s,
		Records: records,
		Empty:   len(records) == 0,
	}
}

// Filter keeps the records in the given category (or any category for All)
// whose title or description contains search, ignoring case. Order is preserved.
func Filter(category Category, search string, records []Record) []Record {
	needle := strings.ToLower(search)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if category != CategoryAll && r.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
