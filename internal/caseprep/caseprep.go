// Package caseprep drafts hypothetical debate cases seeded from public
// Australian court judgment pages. Extracts are fetched and reduced to
// readable text, then a model invents new facts inspired by their themes;
// nothing is copied into the generated case.
package caseprep

import "fmt"

// Area selects which body of case law seeds the hypothetical.
type Area string

const (
	AreaConstitutional Area = "constitutional"
	AreaBusiness       Area = "business"
	AreaCriminal       Area = "criminal"
)

// ParseArea validates a user-supplied area name.
func ParseArea(s string) (Area, error) {
	switch Area(s) {
	case AreaConstitutional, AreaBusiness, AreaCriminal:
		return Area(s), nil
	}
	return "", fmt.Errorf("unknown case area %q (want constitutional, business, or criminal)", s)
}

// Extract is one readable source document.
type Extract struct {
	Title string
	URL   string
	Text  string
}

// Case is a generated hypothetical plus the sources that inspired it.
type Case struct {
	Area    Area
	Body    string
	Sources []Extract
}
