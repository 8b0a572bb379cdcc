package intake

import (
	"regexp"
	"strconv"
	"strings"
)

// Location is the floor/place metadata extracted from an issue report. Nil
// FloorNumber means no floor was mentioned; empty Name means no known place
// matched.
type Location struct {
	FloorNumber *int
	Name        string
}

// LocationKeywords binds a canonical location name to its trigger phrases.
// Table order is the tie-break: the first entry with any substring match wins.
type LocationKeywords struct {
	Name     string
	Keywords []string
}

// DefaultLocationKeywords is the canonical place table.
var DefaultLocationKeywords = []LocationKeywords{
	{Name: "Cafeteria", Keywords: []string{"cafeteria", "canteen", "pantry"}},
	{Name: "Reception", Keywords: []string{"reception", "front desk", "lobby"}},
	{Name: "Parking", Keywords: []string{"parking"}},
	{Name: "Terrace", Keywords: []string{"terrace", "rooftop"}},
	{Name: "Washroom", Keywords: []string{"washroom", "restroom", "toilet", "bathroom"}},
	{Name: "Conference Room", Keywords: []string{"conference", "meeting room", "boardroom"}},
	{Name: "Cabin", Keywords: []string{"cabin"}},
	{Name: "Server Room", Keywords: []string{"server room", "server"}},
	{Name: "Electrical Room", Keywords: []string{"electrical room", "panel room"}},
}

// Floor patterns are tried in priority order; the first match wins.
var floorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)(?:st|nd|rd|th)\s*floor`),
	regexp.MustCompile(`floor\s*(?:no\.?\s*|number\s*)?(\d+)`),
	regexp.MustCompile(`(\d+)\s*floor`),
}

// LocationExtractor parses floor numbers and named places out of free text.
// Like the classifier it is a total function over all strings and keeps no
// state between calls.
type LocationExtractor struct {
	table []LocationKeywords
}

func NewLocationExtractor(table []LocationKeywords) *LocationExtractor {
	return &LocationExtractor{table: table}
}

func DefaultLocationExtractor() *LocationExtractor {
	return &LocationExtractor{table: DefaultLocationKeywords}
}

func (e *LocationExtractor) Extract(text string) Location {
	normalized := strings.ToLower(text)

	loc := Location{
		FloorNumber: extractFloor(normalized),
	}

	for _, entry := range e.table {
		for _, keyword := range entry.Keywords {
			if strings.Contains(normalized, keyword) {
				loc.Name = entry.Name
				return loc
			}
		}
	}

	return loc
}

func extractFloor(normalized string) *int {
	for _, pattern := range floorPatterns {
		match := pattern.FindStringSubmatch(normalized)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		return &n
	}

	// Named floors are only consulted when no numeric pattern matched.
	if strings.Contains(normalized, "ground floor") {
		zero := 0
		return &zero
	}
	if strings.Contains(normalized, "basement") {
		minusOne := -1
		return &minusOne
	}

	return nil
}
