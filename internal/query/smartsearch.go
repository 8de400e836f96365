package query

import "strings"

// ParseSmartSearch converts the smart-search free-text field into query
// fragments. Terms are comma-separated; two or more terms collapse into
// a single OR group:
//
//	""                 -> nil
//	"cat"              -> ["cat"]
//	"cat, dog, puppy"  -> ["(cat OR dog OR puppy)"]
//	" cat ,  , dog"    -> ["(cat OR dog)"]
//
// Pure function: same input always yields the same output.
func ParseSmartSearch(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	var terms []string
	for _, part := range strings.Split(input, ",") {
		if term := strings.TrimSpace(part); term != "" {
			terms = append(terms, term)
		}
	}

	switch len(terms) {
	case 0:
		return nil
	case 1:
		// Single term passes through verbatim, no parentheses
		return terms
	default:
		return []string{"(" + strings.Join(terms, " OR ") + ")"}
	}
}
